package entity

// Vertical bounds outside of which a projectile is spent
const (
	ProjectileMinY = -1.0
	ProjectileMaxY = 1080.0
)

// ProjectileParams describes how spawned projectiles look and move
type ProjectileParams struct {
	Speed  float64
	Width  float64
	Height float64
}

// DefaultProjectileParams returns the stock projectile settings
func DefaultProjectileParams() ProjectileParams {
	return ProjectileParams{Speed: 300, Width: 32, Height: 32}
}

// Projectile is a straight-line shot owned by the actor that fired it
type Projectile struct {
	Start  Vec2
	Pos    Vec2
	Dir    Vec2
	Speed  float64
	Width  float64
	Height float64
	active bool
}

// NewProjectile creates an active projectile at pos heading along dir
func NewProjectile(pos, dir Vec2, params ProjectileParams) *Projectile {
	return &Projectile{
		Start:  pos,
		Pos:    pos,
		Dir:    dir,
		Speed:  params.Speed,
		Width:  params.Width,
		Height: params.Height,
		active: true,
	}
}

// Update advances the projectile and deactivates it once it leaves the screen vertically
func (p *Projectile) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
	if p.Pos.Y < ProjectileMinY || p.Pos.Y > ProjectileMaxY {
		p.active = false
	}
}

// Bounds returns the hitbox in screen coordinates
func (p *Projectile) Bounds() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// SetActive sets the active flag
func (p *Projectile) SetActive(active bool) {
	p.active = active
}

// IsActive reports whether the projectile is still in play
func (p *Projectile) IsActive() bool {
	return p.active
}

// Deactivate marks the projectile as spent
func (p *Projectile) Deactivate() {
	p.active = false
}

// UpdateProjectiles advances every projectile in the slice
func UpdateProjectiles(projectiles []*Projectile, dt float64) {
	for _, p := range projectiles {
		p.Update(dt)
	}
}
