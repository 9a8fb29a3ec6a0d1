package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceship_CentersOnPointer(t *testing.T) {
	s := NewSpaceship(100, 80, DefaultProjectileParams())

	s.Update(0.016, Vec2{X: 500, Y: 400}, false)

	assert.Equal(t, Vec2{X: 450, Y: 360}, s.Pos)
	assert.Equal(t, Rect{X: 450, Y: 360, W: 100, H: 80}, s.Bounds())
}

func TestSpaceship_FiresOncePerPress(t *testing.T) {
	s := NewSpaceship(100, 80, DefaultProjectileParams())

	assert.True(t, s.Update(0.016, Vec2{X: 500, Y: 900}, true))
	require.Len(t, s.Projectiles(), 1)

	p := s.Projectiles()[0]
	assert.Equal(t, Vec2{X: 0, Y: -1}, p.Dir)
	assert.Less(t, p.Pos.Y, 860.0, "shot moved up in the firing frame")

	assert.False(t, s.Update(0.016, Vec2{X: 500, Y: 900}, false))
	assert.Len(t, s.Projectiles(), 1)
}

func TestSpaceship_OnHitAndReset(t *testing.T) {
	s := NewSpaceship(100, 80, DefaultProjectileParams())
	s.Update(0.016, Vec2{X: 10, Y: 10}, true)

	s.OnHit()
	s.OnHit()
	assert.Equal(t, 2, s.Hits())

	s.Reset()
	assert.Equal(t, 0, s.Hits())
	assert.True(t, s.IsAlive())
	assert.Empty(t, s.Projectiles())
}
