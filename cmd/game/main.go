package main

import (
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/farmflies/internal/application/game"
	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/application/system"
	"github.com/younwookim/farmflies/internal/domain/random"
	"github.com/younwookim/farmflies/internal/infrastructure/assets"
	sound "github.com/younwookim/farmflies/internal/infrastructure/audio"
	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

func main() {
	cfg := loadConfig(embeddedLoader())

	assetFS := os.DirFS(cfg.Assets.Dir)

	library := assets.NewLibrary(assetFS)
	if err := library.LoadAll(cfg.Assets); err != nil {
		log.Printf("[Main] some assets failed to load: %v", err)
	}

	sounds := sound.NewManager(audio.NewContext(sound.SampleRate), assetFS)
	if err := sounds.LoadAll(cfg.Sounds); err != nil {
		log.Printf("[Main] some sounds failed to load: %v", err)
	}
	defer sounds.Close()

	rng := newRandom(cfg.Seed)
	input := system.NewInputSystem(system.EbitenPoller{})

	scenes := scene.NewManager()
	g := game.New(scenes, input, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	if err := registerScenes(scenes, cfg, sceneServices{
		input:  input,
		assets: library,
		sounds: sounds,
		rng:    rng,
		quit:   g.Quit,
	}); err != nil {
		log.Fatalf("Failed to build scenes: %v", err)
	}
	defer scenes.Destroy()

	scenes.LogScenes()
	scenes.Switch(scene.MainMenu)

	ebiten.SetWindowSize(int(float64(cfg.Display.ScreenWidth)*cfg.Display.WindowScale),
		int(float64(cfg.Display.ScreenHeight)*cfg.Display.WindowScale))
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)
	ebiten.SetFullscreen(cfg.Display.Fullscreen)
	if cfg.Display.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// embeddedLoader reads from the configs directory compiled into the binary
func embeddedLoader() *config.Loader {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Printf("[Main] embedded configs unavailable: %v", err)
		return nil
	}
	return config.NewFSLoader(fsys, "configs")
}

// loadConfig reads game.yaml through loader. Any failure falls back to the
// built-in defaults.
func loadConfig(loader *config.Loader) *config.GameConfig {
	if loader == nil {
		return config.Default()
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		log.Printf("[Main] using default config: %v", err)
		return config.Default()
	}
	return cfg
}

func newRandom(seed int64) *random.Source {
	if seed == 0 {
		return random.NewFromClock()
	}
	return random.New(seed)
}
