// Package menu provides the title screen.
package menu

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/application/scene/ui"
	"github.com/younwookim/farmflies/internal/application/system"
	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

var (
	colorBG          = color.RGBA{12, 14, 30, 255}
	colorButton      = color.RGBA{0, 200, 0, 255}
	colorButtonHover = color.RGBA{255, 255, 0, 255}
	colorTitle       = color.RGBA{255, 200, 60, 255}
)

const (
	titleFontSize  = 120
	buttonFontSize = 32
)

// Deps are the services the menu draws on
type Deps struct {
	Switcher scene.Switcher
	Input    scene.Input
	Assets   scene.Assets
	// Quit is called when the player leaves from the menu
	Quit func()
}

// Menu shows the title and a start button
type Menu struct {
	scene.Base

	cfg      *config.GameConfig
	switcher scene.Switcher
	input    scene.Input
	assets   scene.Assets
	quit     func()

	start  *ui.Button
	cursor *ui.Cursor
}

// New creates the menu from cfg.Menu
func New(cfg *config.GameConfig, deps Deps) *Menu {
	b := cfg.Menu.Start
	return &Menu{
		cfg:      cfg,
		switcher: deps.Switcher,
		input:    deps.Input,
		assets:   deps.Assets,
		quit:     deps.Quit,
		start:    ui.NewButton(b.Caption, b.X, b.Y, b.Width, b.Height, colorButton, colorButtonHover),
		cursor:   ui.NewCursor(nil),
	}
}

func (m *Menu) OnInit() {
	m.cursor.Image = m.assets.Image("cursor")
}

func (m *Menu) OnStart() {
	log.Printf("[Menu] shown")
}

// HandleInput starts the first level on a click over the button, quits on pause
func (m *Menu) HandleInput(_ float64) {
	mx, my := m.input.CursorPosition()

	if m.start.Clicked(mx, my, m.input.IsKeyPress(system.KeyShoot)) {
		m.switcher.Switch(scene.LevelOne)
		return
	}

	if m.input.IsKeyPress(system.KeyPause) {
		log.Printf("[Menu] quit requested")
		if m.quit != nil {
			m.quit()
		}
	}
}

// Update refreshes the hover state of the start button
func (m *Menu) Update(_ float64) {
	m.start.Update(m.input.CursorPosition())
}

func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w := float64(m.cfg.Display.ScreenWidth)
	ui.DrawCenteredText(screen, m.cfg.Menu.Title, m.assets.Face(scene.FontTitle, titleFontSize), w/2, 80, colorTitle)

	m.start.Draw(screen, m.assets.Face(scene.FontMain, buttonFontSize))

	mx, my := m.input.CursorPosition()
	m.cursor.Draw(screen, mx, my)
}

// StartButton exposes the start button
func (m *Menu) StartButton() *ui.Button {
	return m.start
}
