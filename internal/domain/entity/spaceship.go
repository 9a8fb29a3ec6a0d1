package entity

// Spaceship is the player actor. It follows the pointer and fires upward.
type Spaceship struct {
	Pos    Vec2
	Width  float64
	Height float64

	alive       bool
	hits        int
	shot        ProjectileParams
	projectiles []*Projectile
}

// NewSpaceship creates a living ship of the given size
func NewSpaceship(width, height float64, shot ProjectileParams) *Spaceship {
	return &Spaceship{
		Width:  width,
		Height: height,
		alive:  true,
		shot:   shot,
	}
}

// Update centers the ship on the pointer and fires once per shoot press.
// shootPressed must be edge-triggered. Returns true when a projectile was spawned.
func (s *Spaceship) Update(dt float64, pointer Vec2, shootPressed bool) bool {
	s.Pos = Vec2{X: pointer.X - s.Width/2, Y: pointer.Y - s.Height/2}

	fired := false
	if shootPressed {
		s.projectiles = append(s.projectiles, NewProjectile(s.Pos, Vec2{X: 0, Y: -1}, s.shot))
		fired = true
	}

	UpdateProjectiles(s.projectiles, dt)
	return fired
}

// OnHit records a hit taken from an enemy projectile
func (s *Spaceship) OnHit() {
	s.hits++
}

// Hits returns the number of hits taken since the last reset
func (s *Spaceship) Hits() int {
	return s.hits
}

// Reset revives the ship and drops all its projectiles
func (s *Spaceship) Reset() {
	s.alive = true
	s.hits = 0
	s.projectiles = nil
}

// Bounds returns the hitbox in screen coordinates
func (s *Spaceship) Bounds() Rect {
	return Rect{X: s.Pos.X, Y: s.Pos.Y, W: s.Width, H: s.Height}
}

// IsAlive reports whether the ship is drawn
func (s *Spaceship) IsAlive() bool {
	return s.alive
}

// Projectiles returns the ship's owned projectiles
func (s *Spaceship) Projectiles() []*Projectile {
	return s.projectiles
}

// SetProjectiles replaces the owned projectiles, used by the cleanup pass
func (s *Spaceship) SetProjectiles(p []*Projectile) {
	s.projectiles = p
}
