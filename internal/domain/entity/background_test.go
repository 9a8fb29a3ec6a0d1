package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackground_ScrollsAndWraps(t *testing.T) {
	b := NewBackground(1000, 300)

	b.Update(1)
	lower, upper := b.TilePositions()
	assert.InDelta(t, 300.0, lower, 1e-9)
	assert.InDelta(t, -700.0, upper, 1e-9)

	b.Update(3) // offset 1200 wraps to 200
	lower, upper = b.TilePositions()
	assert.InDelta(t, 200.0, lower, 1e-9)
	assert.InDelta(t, -800.0, upper, 1e-9)

	b.Reset()
	lower, _ = b.TilePositions()
	assert.Equal(t, 0.0, lower)
}

func TestBackground_ZeroHeightIsStatic(t *testing.T) {
	b := NewBackground(0, 300)
	b.Update(1)

	lower, _ := b.TilePositions()
	assert.Equal(t, 0.0, lower)
}
