package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/farmflies/internal/domain/entity"
)

// Button is a clickable rectangle with a centered caption
type Button struct {
	Bounds    entity.Rect
	Caption   string
	Normal    color.Color
	Hover     color.Color
	TextColor color.Color
	hovered   bool
}

// NewButton creates a button at (x, y) of size w x h
func NewButton(caption string, x, y, w, h float64, normal, hover color.Color) *Button {
	return &Button{
		Bounds:    entity.Rect{X: x, Y: y, W: w, H: h},
		Caption:   caption,
		Normal:    normal,
		Hover:     hover,
		TextColor: color.Black,
	}
}

// Update refreshes the hover state from the pointer position
func (b *Button) Update(mx, my int) {
	b.hovered = b.Bounds.Contains(float64(mx), float64(my))
}

// Hovered reports whether the pointer was over the button at the last Update
func (b *Button) Hovered() bool {
	return b.hovered
}

// Clicked reports whether a press happened over the button
func (b *Button) Clicked(mx, my int, pressed bool) bool {
	return pressed && b.Bounds.Contains(float64(mx), float64(my))
}

// Draw renders the button body and caption
func (b *Button) Draw(screen *ebiten.Image, face text.Face) {
	fill := b.Normal
	if b.hovered && b.Hover != nil {
		fill = b.Hover
	}

	r := b.Bounds
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, color.Black, false)

	_, th := MeasureText(b.Caption, face)
	DrawCenteredText(screen, b.Caption, face, r.X+r.W/2, r.Y+(r.H-th)/2, b.TextColor)
}
