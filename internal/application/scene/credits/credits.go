// Package credits lists the people behind the game.
package credits

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/application/scene/ui"
	"github.com/younwookim/farmflies/internal/application/system"
	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

var (
	colorBG          = color.RGBA{10, 10, 20, 255}
	colorHeading     = color.RGBA{255, 200, 60, 255}
	colorLine        = color.White
	colorButton      = color.RGBA{0, 200, 0, 255}
	colorButtonHover = color.RGBA{255, 255, 0, 255}
)

const (
	headingFontSize = 96
	lineFontSize    = 40
	lineSpacing     = 70
)

type Deps struct {
	Switcher scene.Switcher
	Input    scene.Input
	Assets   scene.Assets
}

// Credits shows the configured lines and a button back to the menu
type Credits struct {
	scene.Base

	cfg      *config.GameConfig
	switcher scene.Switcher
	input    scene.Input
	assets   scene.Assets

	back   *ui.Button
	cursor *ui.Cursor
}

func New(cfg *config.GameConfig, deps Deps) *Credits {
	b := cfg.Credits.Back
	return &Credits{
		cfg:      cfg,
		switcher: deps.Switcher,
		input:    deps.Input,
		assets:   deps.Assets,
		back:     ui.NewButton(b.Caption, b.X, b.Y, b.Width, b.Height, colorButton, colorButtonHover),
		cursor:   ui.NewCursor(nil),
	}
}

func (c *Credits) OnInit() {
	c.cursor.Image = c.assets.Image("cursor")
}

// HandleInput returns to the menu on a click over the back button or on pause
func (c *Credits) HandleInput(_ float64) {
	mx, my := c.input.CursorPosition()
	if c.back.Clicked(mx, my, c.input.IsKeyPress(system.KeyShoot)) || c.input.IsKeyPress(system.KeyPause) {
		c.switcher.Switch(scene.MainMenu)
	}
}

func (c *Credits) Update(_ float64) {
	c.back.Update(c.input.CursorPosition())
}

func (c *Credits) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cx := float64(c.cfg.Display.ScreenWidth) / 2
	ui.DrawCenteredText(screen, "CREDITS", c.assets.Face(scene.FontTitle, headingFontSize), cx, 120, colorHeading)

	face := c.assets.Face(scene.FontMain, lineFontSize)
	y := 320.0
	for _, line := range c.cfg.Credits.Lines {
		ui.DrawCenteredText(screen, line, face, cx, y, colorLine)
		y += lineSpacing
	}

	c.back.Draw(screen, c.assets.Face(scene.FontMain, lineFontSize))

	mx, my := c.input.CursorPosition()
	c.cursor.Draw(screen, mx, my)
}

// BackButton exposes the back button
func (c *Credits) BackButton() *ui.Button {
	return c.back
}
