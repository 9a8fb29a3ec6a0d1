package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRoller replays fixed rolls in order
type scriptedRoller struct {
	ints   []int
	floats []float64
}

func (r *scriptedRoller) NextInt(min, max int) int {
	if len(r.ints) == 0 {
		return max
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRoller) NextFloat(min, max float64) float64 {
	if len(r.floats) == 0 {
		return min
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func stillParams() EnemyParams {
	p := DefaultEnemyParams()
	p.Amplitude = 0
	p.VerticalSpeed = 0
	return p
}

func TestNewEnemy(t *testing.T) {
	rng := &scriptedRoller{floats: []float64{0.75}}
	e := NewEnemy(Vec2{X: 130, Y: 150}, Easy, DefaultEnemyParams(), rng)

	require.NotNil(t, e)
	assert.True(t, e.IsAlive())
	assert.Equal(t, -1.0, e.Direction())
	assert.Equal(t, 0.75, e.Cooldown())
	assert.Equal(t, Easy, e.Difficulty())
	assert.Empty(t, e.Projectiles())
	assert.Equal(t, Rect{X: 130, Y: 150, W: 100, H: 100}, e.Bounds())
}

func TestEnemy_ShootTrace_Normal(t *testing.T) {
	// maxRoll 100, base threshold 10, base cooldown 1.0
	rng := &scriptedRoller{
		floats: []float64{0.5},
		ints:   []int{50, 5, 11, 10},
	}
	e := NewEnemy(Vec2{X: 0, Y: 100}, Normal, stillParams(), rng)

	const dt = 0.25
	steps := []struct {
		fired    bool
		cooldown float64
	}{
		{false, 0.25}, // counting down
		{false, 0.01}, // ready, rolled 50: retry
		{true, 1.0},   // rolled 5: fire
		{false, 0.75},
		{false, 0.5},
		{false, 0.25},
		{false, 0.01}, // rolled 11: retry
		{true, 1.0},   // rolled 10: boundary fires
	}

	shots := 0
	for i, want := range steps {
		fired := e.ProcessShooting(dt)
		if fired {
			shots++
		}
		assert.Equal(t, want.fired, fired, "step %d", i+1)
		assert.InDelta(t, want.cooldown, e.Cooldown(), 1e-9, "step %d", i+1)
	}

	require.Len(t, e.Projectiles(), shots)
	for _, p := range e.Projectiles() {
		assert.Equal(t, Vec2{X: 0, Y: 1}, p.Dir)
		assert.Equal(t, Vec2{X: 0, Y: 100}, p.Start)
	}
}

func TestEnemy_RetryDelayIgnoresDifficulty(t *testing.T) {
	for _, tier := range []Difficulty{VeryEasy, Insane} {
		rng := &scriptedRoller{floats: []float64{0}, ints: []int{100}}
		e := NewEnemy(Vec2{}, tier, stillParams(), rng)

		assert.False(t, e.ProcessShooting(0.016))
		assert.InDelta(t, 0.01, e.Cooldown(), 1e-9, tier.String())
	}
}

func TestEnemy_Move(t *testing.T) {
	rng := &scriptedRoller{floats: []float64{1}}
	e := NewEnemy(Vec2{X: 0, Y: 100}, Normal, DefaultEnemyParams(), rng)

	e.Move(0.5)

	assert.InDelta(t, 50*math.Sin(2*0.5)*0.5, e.Pos.X, 1e-9)
	assert.InDelta(t, 75.0, e.Pos.Y, 1e-9, "starts moving up")
}

func TestEnemy_ReversesAtLimits(t *testing.T) {
	rng := &scriptedRoller{floats: []float64{1}}
	params := DefaultEnemyParams()
	params.Amplitude = 0

	e := NewEnemy(Vec2{X: 0, Y: 10}, Normal, params, rng)
	e.Move(0.5) // y = -15
	assert.Equal(t, 1.0, e.Direction())

	e.Pos.Y = 199
	e.Move(0.04) // y = 201
	assert.Equal(t, -1.0, e.Direction())
}

func TestEnemy_ExactLimitKeepsDirection(t *testing.T) {
	rng := &scriptedRoller{floats: []float64{1}}
	params := stillParams()

	e := NewEnemy(Vec2{X: 0, Y: 0}, Normal, params, rng)
	e.Move(0.1)
	assert.Equal(t, -1.0, e.Direction(), "y == 0 does not flip")

	e.Pos.Y = params.VerticalLimit
	e.direction = 1
	e.Move(0.1)
	assert.Equal(t, 1.0, e.Direction(), "y == limit does not flip")
}

func TestEnemy_UpdateKeepsSpentProjectiles(t *testing.T) {
	rng := &scriptedRoller{floats: []float64{0}, ints: []int{1}}
	e := NewEnemy(Vec2{X: 0, Y: 1079}, Normal, stillParams(), rng)

	e.Update(0.1)
	require.Len(t, e.Projectiles(), 1)
	assert.False(t, e.Projectiles()[0].IsActive())
}

func TestEnemy_Kill(t *testing.T) {
	e := NewEnemy(Vec2{}, Normal, DefaultEnemyParams(), &scriptedRoller{})
	e.Kill()
	assert.False(t, e.IsAlive())
}
