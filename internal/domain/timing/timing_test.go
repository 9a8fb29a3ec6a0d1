package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCooldown_TickAndReady(t *testing.T) {
	c := NewCooldown(0.5)
	assert.False(t, c.Ready())

	c.Tick(0.25)
	assert.False(t, c.Ready())
	assert.Equal(t, 0.25, c.Remaining)

	c.Tick(0.25)
	assert.True(t, c.Ready(), "exactly zero counts as elapsed")

	c.Tick(0.25)
	assert.True(t, c.Ready(), "cooldown does not reset itself")
	assert.Equal(t, -0.25, c.Remaining)

	c.Reset(1.0)
	assert.False(t, c.Ready())
	assert.Equal(t, 1.0, c.Remaining)
}

func TestTimer_FiresAndCarriesRemainder(t *testing.T) {
	tm := NewTimer(1.0)

	assert.False(t, tm.HasTimePassed(0.5))
	assert.False(t, tm.HasTimePassed(0.25))
	assert.True(t, tm.HasTimePassed(0.5))
	assert.Equal(t, 0.25, tm.Elapsed())
	assert.Equal(t, 0.75, tm.Remaining())
}

func TestTimer_Restart(t *testing.T) {
	tm := NewTimer(5.0)
	tm.HasTimePassed(3)
	tm.Restart()

	assert.Equal(t, 0.0, tm.Elapsed())
	assert.Equal(t, 5.0, tm.Remaining())
}

func TestTimer_SetInterval(t *testing.T) {
	tm := NewTimer(1.0)
	tm.SetInterval(2.0)

	assert.Equal(t, 2.0, tm.Interval())
	assert.False(t, tm.HasTimePassed(1.5))
	assert.True(t, tm.HasTimePassed(0.5))
}
