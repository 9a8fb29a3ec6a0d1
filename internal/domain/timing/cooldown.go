// Package timing holds the countdown and interval timers used by actors and scenes.
package timing

// Cooldown is a countdown gating a repeatable action.
// It never resets itself; the owner decides the next duration.
type Cooldown struct {
	Remaining float64
}

// NewCooldown creates a cooldown with the given remaining time.
func NewCooldown(remaining float64) Cooldown {
	return Cooldown{Remaining: remaining}
}

// Tick subtracts dt from the remaining time.
func (c *Cooldown) Tick(dt float64) {
	c.Remaining -= dt
}

// Ready reports whether the cooldown has elapsed.
func (c *Cooldown) Ready() bool {
	return c.Remaining <= 0
}

// Reset sets a new remaining time.
func (c *Cooldown) Reset(duration float64) {
	c.Remaining = duration
}
