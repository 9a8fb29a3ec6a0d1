package entity

import (
	"math"

	"github.com/younwookim/farmflies/internal/domain/timing"
)

// Roller is the random source an enemy rolls its shots with
type Roller interface {
	NextInt(min, max int) int
	NextFloat(min, max float64) float64
}

// EnemyParams holds movement and shooting tuning for enemies
type EnemyParams struct {
	Width  float64
	Height float64

	// Movement
	Amplitude     float64 // horizontal sine amplitude, px/s
	Frequency     float64 // horizontal sine frequency, rad/s
	VerticalSpeed float64
	VerticalLimit float64

	// Shooting
	MaxRoll          int
	BaseRequiredRoll int
	BaseCooldown     float64
	RetryDelay       float64

	Projectile ProjectileParams
}

// DefaultEnemyParams returns the stock enemy tuning
func DefaultEnemyParams() EnemyParams {
	return EnemyParams{
		Width:            100,
		Height:           100,
		Amplitude:        50,
		Frequency:        2,
		VerticalSpeed:    50,
		VerticalLimit:    200,
		MaxRoll:          100,
		BaseRequiredRoll: 10,
		BaseCooldown:     1.0,
		RetryDelay:       0.01,
		Projectile:       DefaultProjectileParams(),
	}
}

// Enemy drifts in a sine wave, bobs vertically and drops projectiles at random
type Enemy struct {
	Pos Vec2

	direction  float64 // vertical sign, -1 up, +1 down
	elapsed    float64
	alive      bool
	cooldown   timing.Cooldown
	difficulty Difficulty
	params     EnemyParams
	rng        Roller

	projectiles []*Projectile
}

// NewEnemy creates a living enemy at pos. The first shot waits a random 0..1s.
func NewEnemy(pos Vec2, difficulty Difficulty, params EnemyParams, rng Roller) *Enemy {
	return &Enemy{
		Pos:        pos,
		direction:  -1,
		alive:      true,
		cooldown:   timing.NewCooldown(rng.NextFloat(0, 1)),
		difficulty: difficulty,
		params:     params,
		rng:        rng,
	}
}

// Update moves the enemy, runs its shoot decision and advances its projectiles.
// Spent projectiles stay in place until RemoveInactiveProjectiles runs.
func (e *Enemy) Update(dt float64) {
	e.Move(dt)
	e.ProcessShooting(dt)
	UpdateProjectiles(e.projectiles, dt)
}

// Move applies the sine drift and vertical bob, flipping direction past the limits
func (e *Enemy) Move(dt float64) {
	e.elapsed += dt

	dx := e.params.Amplitude * math.Sin(e.params.Frequency*e.elapsed) * dt
	dy := e.params.VerticalSpeed * e.direction * dt
	e.Pos = e.Pos.Add(Vec2{X: dx, Y: dy})

	if e.Pos.Y > e.params.VerticalLimit {
		e.direction = -1
	} else if e.Pos.Y < 0 {
		e.direction = 1
	}
}

// ProcessShooting ticks the cooldown and, once elapsed, rolls for a shot.
// Returns true when a projectile was spawned.
func (e *Enemy) ProcessShooting(dt float64) bool {
	e.cooldown.Tick(dt)
	if !e.cooldown.Ready() {
		return false
	}

	required, cooldown := e.difficulty.ShootingParams(e.params.MaxRoll, e.params.BaseRequiredRoll, e.params.BaseCooldown)

	roll := e.rng.NextInt(1, e.params.MaxRoll)
	if roll <= required {
		e.projectiles = append(e.projectiles, NewProjectile(e.Pos, Vec2{X: 0, Y: 1}, e.params.Projectile))
		e.cooldown.Reset(cooldown)
		return true
	}

	e.cooldown.Reset(e.params.RetryDelay)
	return false
}

// Bounds returns the hitbox in screen coordinates
func (e *Enemy) Bounds() Rect {
	return Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.params.Width, H: e.params.Height}
}

// IsAlive reports whether the enemy has not been shot
func (e *Enemy) IsAlive() bool {
	return e.alive
}

// Kill marks the enemy dead
func (e *Enemy) Kill() {
	e.alive = false
}

// Projectiles returns the enemy's owned projectiles
func (e *Enemy) Projectiles() []*Projectile {
	return e.projectiles
}

// SetProjectiles replaces the owned projectiles, used by the cleanup pass
func (e *Enemy) SetProjectiles(p []*Projectile) {
	e.projectiles = p
}

// Cooldown returns the remaining shoot cooldown
func (e *Enemy) Cooldown() float64 {
	return e.cooldown.Remaining
}

// Direction returns the vertical movement sign
func (e *Enemy) Direction() float64 {
	return e.direction
}

// Difficulty returns the enemy's tier
func (e *Enemy) Difficulty() Difficulty {
	return e.difficulty
}
