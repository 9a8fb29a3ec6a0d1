// Package gameover provides the screen shown after the last life is lost.
package gameover

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/application/scene/ui"
	"github.com/younwookim/farmflies/internal/domain/timing"
	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

var (
	colorBG      = color.RGBA{40, 0, 0, 255}
	colorTitle   = color.RGBA{255, 60, 60, 255}
	colorMessage = color.White
)

const (
	titleFontSize   = 120
	messageFontSize = 48
)

// Deps are the services the screen draws on
type Deps struct {
	Switcher scene.Switcher
	Assets   scene.Assets
	Sounds   scene.Sounds
}

// GameOver counts down and then moves on to its configured next scene
type GameOver struct {
	scene.Base

	cfg      *config.GameConfig
	next     scene.ID
	switcher scene.Switcher
	assets   scene.Assets
	sounds   scene.Sounds

	timer     *timing.Timer
	countdown string
}

// New creates the screen from cfg.GameOver
func New(cfg *config.GameConfig, deps Deps) (*GameOver, error) {
	next, err := scene.ParseID(cfg.GameOver.Next)
	if err != nil {
		return nil, fmt.Errorf("game over: %w", err)
	}

	g := &GameOver{
		cfg:      cfg,
		next:     next,
		switcher: deps.Switcher,
		assets:   deps.Assets,
		sounds:   deps.Sounds,
		timer:    timing.NewTimer(cfg.GameOver.RestartDelay),
	}
	g.updateCountdown()
	return g, nil
}

// OnStart restarts the countdown and the game over tune
func (g *GameOver) OnStart() {
	g.timer.Restart()
	g.updateCountdown()
	g.sounds.Play(scene.SoundGameOver)
	log.Printf("[GameOver] leaving for %s in %.1fs", g.next, g.timer.Interval())
}

func (g *GameOver) OnStop() {
	g.sounds.Stop(scene.SoundGameOver)
}

func (g *GameOver) Update(dt float64) {
	if g.timer.HasTimePassed(dt) {
		g.switcher.Switch(g.next)
		return
	}
	g.updateCountdown()
}

func (g *GameOver) updateCountdown() {
	g.countdown = fmt.Sprintf("Restarting in %d", int(g.timer.Remaining()))
}

func (g *GameOver) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cx := float64(g.cfg.Display.ScreenWidth) / 2
	cy := float64(g.cfg.Display.ScreenHeight) / 2

	ui.DrawCenteredText(screen, "GAME OVER", g.assets.Face(scene.FontTitle, titleFontSize), cx, cy-200, colorTitle)

	face := g.assets.Face(scene.FontMain, messageFontSize)
	ui.DrawCenteredText(screen, g.cfg.GameOver.Message, face, cx, cy, colorMessage)
	ui.DrawCenteredText(screen, g.countdown, face, cx, cy+80, colorMessage)
}

// Countdown returns the caption showing the whole seconds left
func (g *GameOver) Countdown() string {
	return g.countdown
}
