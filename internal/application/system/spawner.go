package system

import (
	"log"

	"github.com/younwookim/farmflies/internal/domain/entity"
)

// GridSpec describes an enemy formation
type GridSpec struct {
	Count    int
	Rows     int
	Columns  int
	XSpacing float64
	YSpacing float64
}

// EnemyFactory builds one enemy at the given grid position
type EnemyFactory func(pos entity.Vec2) *entity.Enemy

// SpawnEnemyGrid appends grid.Count enemies laid out row-major.
// Rows is recomputed from Count and Columns; the last row may be partial.
// Invalid specs are logged and leave enemies unchanged.
func SpawnEnemyGrid(enemies []*entity.Enemy, grid GridSpec, newEnemy EnemyFactory) []*entity.Enemy {
	if grid.Count <= 0 || grid.Rows <= 0 || grid.Columns <= 0 || grid.XSpacing <= 0 || grid.YSpacing <= 0 {
		log.Printf("[Spawner] invalid grid: count=%d rows=%d columns=%d spacing=%.0fx%.0f",
			grid.Count, grid.Rows, grid.Columns, grid.XSpacing, grid.YSpacing)
		return enemies
	}

	rows := (grid.Count + grid.Columns - 1) / grid.Columns
	spawned := 0

	for row := 0; row < rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			if spawned >= grid.Count {
				return enemies
			}
			pos := entity.Vec2{
				X: float64(col) * grid.XSpacing,
				Y: float64(row) * grid.YSpacing,
			}
			enemies = append(enemies, newEnemy(pos))
			spawned++
		}
	}
	return enemies
}
