package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/farmflies/internal/domain/entity"
)

// DrawSprite stretches img over r. A nil image draws a filled rectangle instead.
func DrawSprite(screen *ebiten.Image, img *ebiten.Image, r entity.Rect, fallback color.Color) {
	if img == nil {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fallback, false)
		return
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)
}
