// Package ui holds the small drawing helpers shared by scenes: labels,
// buttons and the pointer cursor.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// approximate glyph cell of the debug font
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

// Label is a piece of text drawn with a font face. A nil face falls back to
// the debug font so a missing font never breaks a scene.
type Label struct {
	Text  string
	Face  text.Face
	Color color.Color
	X, Y  float64
}

// Draw renders the label with its top-left corner at (X, Y)
func (l *Label) Draw(screen *ebiten.Image) {
	DrawText(screen, l.Text, l.Face, l.X, l.Y, l.Color)
}

// DrawText renders s at (x, y), falling back to the debug font when face is nil
func DrawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	text.Draw(screen, s, face, op)
}

// DrawCenteredText renders s horizontally centered on cx
func DrawCenteredText(screen *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	w, _ := MeasureText(s, face)
	DrawText(screen, s, face, cx-w/2, y, clr)
}

// MeasureText returns the rendered size of s
func MeasureText(s string, face text.Face) (w, h float64) {
	if face == nil {
		return float64(len(s) * debugCharWidth), debugLineHeight
	}
	return text.Measure(s, face, 0)
}
