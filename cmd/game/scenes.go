package main

import (
	"fmt"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/application/scene/credits"
	"github.com/younwookim/farmflies/internal/application/scene/gameover"
	"github.com/younwookim/farmflies/internal/application/scene/level"
	"github.com/younwookim/farmflies/internal/application/scene/menu"
	"github.com/younwookim/farmflies/internal/domain/random"
	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

// sceneServices are shared by every scene
type sceneServices struct {
	input  scene.Input
	assets scene.Assets
	sounds scene.Sounds
	rng    *random.Source
	quit   func()
}

// registerScenes builds the menu, every configured level, game over and
// credits, and adds them to m
func registerScenes(m *scene.Manager, cfg *config.GameConfig, svc sceneServices) error {
	m.Add(scene.MainMenu, menu.New(cfg, menu.Deps{
		Switcher: m,
		Input:    svc.input,
		Assets:   svc.assets,
		Quit:     svc.quit,
	}))

	for _, lc := range cfg.Levels {
		id, err := scene.ParseID(lc.ID)
		if err != nil {
			return fmt.Errorf("level %q: %w", lc.ID, err)
		}

		lvl, err := level.New(id, cfg, level.Deps{
			Switcher: m,
			Input:    svc.input,
			Assets:   svc.assets,
			Sounds:   svc.sounds,
			RNG:      svc.rng,
		})
		if err != nil {
			return err
		}
		m.Add(id, lvl)
	}

	over, err := gameover.New(cfg, gameover.Deps{
		Switcher: m,
		Assets:   svc.assets,
		Sounds:   svc.sounds,
	})
	if err != nil {
		return err
	}
	m.Add(scene.GameOver, over)

	m.Add(scene.Credits, credits.New(cfg, credits.Deps{
		Switcher: m,
		Input:    svc.input,
		Assets:   svc.assets,
	}))

	return nil
}
