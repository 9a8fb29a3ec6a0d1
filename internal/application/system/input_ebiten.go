package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenPoller reads keyboard and mouse state from ebiten
type EbitenPoller struct{}

// IsPressed maps logical keys to ebiten keys and buttons
func (EbitenPoller) IsPressed(k Key) bool {
	switch k {
	case KeyPause:
		return ebiten.IsKeyPressed(ebiten.KeyEscape)
	case KeyShoot:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	case KeySecondary:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case KeyFullscreen:
		return ebiten.IsKeyPressed(ebiten.KeyF11)
	}
	return false
}

// CursorPosition returns the cursor in logical screen coordinates
func (EbitenPoller) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}
