// Package scenetest provides in-memory stand-ins for the services scenes use.
package scenetest

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/application/system"
)

// Switcher records requested scene switches
type Switcher struct {
	Switches []scene.ID
}

func (s *Switcher) Switch(id scene.ID) bool {
	s.Switches = append(s.Switches, id)
	return true
}

// Last returns the most recent switch, if any
func (s *Switcher) Last() (scene.ID, bool) {
	if len(s.Switches) == 0 {
		return 0, false
	}
	return s.Switches[len(s.Switches)-1], true
}

// Input is a hand-driven input snapshot
type Input struct {
	Pressed map[system.Key]bool
	Down    map[system.Key]bool
	X, Y    int
}

func NewInput() *Input {
	return &Input{
		Pressed: make(map[system.Key]bool),
		Down:    make(map[system.Key]bool),
	}
}

func (in *Input) IsKeyPress(k system.Key) bool { return in.Pressed[k] }
func (in *Input) IsKeyDown(k system.Key) bool  { return in.Down[k] || in.Pressed[k] }
func (in *Input) CursorPosition() (int, int)   { return in.X, in.Y }

// Press marks k as pressed this frame
func (in *Input) Press(k system.Key) {
	in.Pressed[k] = true
}

// Release clears every pressed key
func (in *Input) Release() {
	clear(in.Pressed)
}

// Assets has no images or fonts, so scenes take their fallback paths
type Assets struct{}

func (Assets) Image(string) *ebiten.Image     { return nil }
func (Assets) Face(string, float64) text.Face { return nil }

// Sounds records every play and stop
type Sounds struct {
	Played  []string
	Stopped []string
}

func (s *Sounds) Play(name string) { s.Played = append(s.Played, name) }
func (s *Sounds) Stop(name string) { s.Stopped = append(s.Stopped, name) }

// Count returns how many times name was played
func (s *Sounds) Count(name string) int {
	n := 0
	for _, p := range s.Played {
		if p == name {
			n++
		}
	}
	return n
}
