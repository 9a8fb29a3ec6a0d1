// Package game provides the main loop that drives the scene manager.
package game

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/application/system"
)

// DefaultMaxDelta caps the step after a stall (window drag, breakpoint)
const DefaultMaxDelta = 0.25

// Game implements ebiten.Game. Each frame it measures the wall-clock delta,
// advances input, then lets the current scene handle input and update.
type Game struct {
	scenes  *scene.Manager
	input   *system.InputSystem
	screenW int
	screenH int

	clock    func() time.Time
	last     time.Time
	maxDelta float64
	dt       float64

	toggleFullscreen func()
	quit             bool
}

// New creates a game loop over scenes. screenW and screenH are the logical
// screen size returned by Layout.
func New(scenes *scene.Manager, input *system.InputSystem, screenW, screenH int) *Game {
	return &Game{
		scenes:   scenes,
		input:    input,
		screenW:  screenW,
		screenH:  screenH,
		clock:    time.Now,
		maxDelta: DefaultMaxDelta,
		toggleFullscreen: func() {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		},
	}
}

// Update runs one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.dt = g.tick()
	g.input.Advance()

	if g.input.IsKeyPress(system.KeyFullscreen) && g.toggleFullscreen != nil {
		g.toggleFullscreen()
	}

	g.scenes.HandleInput(g.dt)
	g.scenes.Update(g.dt)

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// tick returns the seconds since the previous frame, 0 on the first one
func (g *Game) tick() float64 {
	now := g.clock()
	if g.last.IsZero() {
		g.last = now
		return 0
	}

	dt := now.Sub(g.last).Seconds()
	g.last = now

	if dt < 0 {
		return 0
	}
	if dt > g.maxDelta {
		return g.maxDelta
	}
	return dt
}

// Draw clears the screen and renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.scenes.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Quit makes the next Update end the run loop
func (g *Game) Quit() {
	if !g.quit {
		log.Printf("[Game] quit requested")
	}
	g.quit = true
}

// LastDelta returns the delta used by the most recent Update
func (g *Game) LastDelta() float64 {
	return g.dt
}

// SetClock replaces the wall clock. Useful for testing.
func (g *Game) SetClock(clock func() time.Time) {
	g.clock = clock
	g.last = time.Time{}
}

// SetMaxDelta changes the clamp applied to long frames
func (g *Game) SetMaxDelta(d float64) {
	g.maxDelta = d
}

// SetFullscreenToggle replaces what happens on the fullscreen key
func (g *Game) SetFullscreenToggle(fn func()) {
	g.toggleFullscreen = fn
}
