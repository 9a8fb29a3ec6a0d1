package entity

// Background scrolls a pair of stacked tiles downward and wraps them
type Background struct {
	TileHeight float64
	Speed      float64
	offset     float64
}

// NewBackground creates a background for a tile of the given height
func NewBackground(tileHeight, speed float64) *Background {
	return &Background{TileHeight: tileHeight, Speed: speed}
}

// Update scrolls by Speed*dt
func (b *Background) Update(dt float64) {
	if b.TileHeight <= 0 {
		return
	}
	b.offset += b.Speed * dt
	for b.offset >= b.TileHeight {
		b.offset -= b.TileHeight
	}
}

// TilePositions returns the Y of the lower and upper tile
func (b *Background) TilePositions() (lower, upper float64) {
	return b.offset, b.offset - b.TileHeight
}

// Reset puts the first tile back at the top of the screen
func (b *Background) Reset() {
	b.offset = 0
}
