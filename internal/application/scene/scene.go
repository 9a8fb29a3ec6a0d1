// Package scene defines the Scene interface for game screens and the
// Manager that switches between them.
//
// Each game screen (main menu, levels, game over, credits) implements
// Scene. Scenes are registered once at startup and started/stopped on
// every switch.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/farmflies/internal/application/system"
)

// Sound names scenes play through Sounds
const (
	SoundMusic      = "music"
	SoundGameOver   = "gameOver"
	SoundEnemyDeath = "enemyDeath"
	SoundShoot      = "shoot"
	SoundHit        = "hit"
)

// Font names shared by scenes
const (
	FontMain  = "main"
	FontTitle = "title"
)

// Scene represents a game screen
type Scene interface {
	// OnInit is called once when the scene is registered.
	OnInit()

	// OnDestroy is called once when the scene is removed or the manager is destroyed.
	OnDestroy()

	// OnStart is called every time the scene becomes current.
	// Levels use it to restart from scratch.
	OnStart()

	// OnStop is called every time the scene stops being current.
	OnStop()

	// Update advances the scene by dt seconds.
	Update(dt float64)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// HandleInput reacts to this frame's input. Runs before Update.
	HandleInput(dt float64)
}

// Base provides no-op lifecycle hooks. Embed it and implement Update and Draw.
type Base struct{}

func (Base) OnInit()                {}
func (Base) OnDestroy()             {}
func (Base) OnStart()               {}
func (Base) OnStop()                {}
func (Base) HandleInput(dt float64) {}

// Switcher requests a transition to another scene
type Switcher interface {
	Switch(id ID) bool
}

// Input is the per-frame input snapshot scenes read
type Input interface {
	IsKeyPress(k system.Key) bool
	IsKeyDown(k system.Key) bool
	CursorPosition() (x, y int)
}

// Assets looks up loaded images and font faces by name.
// Missing entries return nil.
type Assets interface {
	Image(name string) *ebiten.Image
	Face(name string, size float64) text.Face
}

// Sounds plays and stops named sounds and music
type Sounds interface {
	Play(name string)
	Stop(name string)
}
