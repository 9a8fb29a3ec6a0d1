package system

import (
	"github.com/younwookim/farmflies/internal/domain/entity"
)

// CombatSystem resolves hits between shots and actors.
// Hits only mark entities; removal happens in separate filter passes.
type CombatSystem struct {
	// Event callbacks
	OnEnemyKilled func(e *entity.Enemy)
	OnPlayerHit   func()
}

// NewCombatSystem creates a new combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// ResolvePlayerShots kills at most one enemy per active shot and returns the
// surviving enemies.
func (s *CombatSystem) ResolvePlayerShots(enemies []*entity.Enemy, shots []*entity.Projectile) []*entity.Enemy {
	for _, shot := range shots {
		if !shot.IsActive() {
			continue
		}

		bounds := shot.Bounds()
		hit := false
		for _, e := range enemies {
			if !e.IsAlive() || !bounds.Intersects(e.Bounds()) {
				continue
			}

			e.Kill()
			shot.Deactivate()
			if s.OnEnemyKilled != nil {
				s.OnEnemyKilled(e)
			}
			hit = true
			break
		}

		if hit {
			enemies = RemoveDeadEnemies(enemies)
		}
	}
	return enemies
}

// ResolveEnemyShots applies the first enemy shot touching the ship and reports
// whether one did. At most one hit is taken per call.
func (s *CombatSystem) ResolveEnemyShots(enemies []*entity.Enemy, ship *entity.Spaceship) bool {
	hitbox := ship.Bounds()

	for _, e := range enemies {
		if !e.IsAlive() {
			continue
		}
		for _, p := range e.Projectiles() {
			if !p.IsActive() || !p.Bounds().Intersects(hitbox) {
				continue
			}

			ship.OnHit()
			p.Deactivate()
			if s.OnPlayerHit != nil {
				s.OnPlayerHit()
			}
			return true
		}
	}
	return false
}

// Cleanup drops spent projectiles from the ship and every enemy
func (s *CombatSystem) Cleanup(enemies []*entity.Enemy, ship *entity.Spaceship) {
	if ship != nil {
		ship.SetProjectiles(RemoveInactiveProjectiles(ship.Projectiles()))
	}
	for _, e := range enemies {
		e.SetProjectiles(RemoveInactiveProjectiles(e.Projectiles()))
	}
}

// RemoveInactiveProjectiles filters out spent projectiles in place
func RemoveInactiveProjectiles(projectiles []*entity.Projectile) []*entity.Projectile {
	kept := projectiles[:0]
	for _, p := range projectiles {
		if p.IsActive() {
			kept = append(kept, p)
		}
	}
	clear(projectiles[len(kept):])
	return kept
}

// RemoveDeadEnemies filters out dead enemies in place
func RemoveDeadEnemies(enemies []*entity.Enemy) []*entity.Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if e.IsAlive() {
			kept = append(kept, e)
		}
	}
	clear(enemies[len(kept):])
	return kept
}
