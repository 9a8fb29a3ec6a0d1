package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Cursor draws a sprite (or a crosshair when the sprite is missing) at the pointer
type Cursor struct {
	Image *ebiten.Image
	Scale float64
}

// NewCursor creates a cursor. img may be nil.
func NewCursor(img *ebiten.Image) *Cursor {
	return &Cursor{Image: img, Scale: 1}
}

// Draw renders the cursor centered on (mx, my)
func (c *Cursor) Draw(screen *ebiten.Image, mx, my int) {
	x, y := float64(mx), float64(my)

	if c.Image == nil {
		const arm = 10
		vector.StrokeLine(screen, float32(x-arm), float32(y), float32(x+arm), float32(y), 2, color.White, false)
		vector.StrokeLine(screen, float32(x), float32(y-arm), float32(x), float32(y+arm), 2, color.White, false)
		return
	}

	b := c.Image.Bounds()
	w := float64(b.Dx()) * c.Scale
	h := float64(b.Dy()) * c.Scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.Scale, c.Scale)
	op.GeoM.Translate(x-w/2, y-h/2)
	screen.DrawImage(c.Image, op)
}
