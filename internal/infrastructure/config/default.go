package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/domain/entity"
)

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  1920,
			ScreenHeight: 1080,
			WindowScale:  0.5,
			Title:        "FARM FLIES",
			Framerate:    60,
			HideCursor:   true,
		},
		Player: PlayerConfig{Width: 100, Height: 100, Lives: 3},
		Projectile: ProjectileConfig{
			Speed:  300,
			Width:  32,
			Height: 32,
		},
		Enemy: EnemyConfig{
			Width:            100,
			Height:           100,
			Amplitude:        50,
			Frequency:        2,
			VerticalSpeed:    50,
			VerticalLimit:    200,
			MaxRoll:          100,
			BaseRequiredRoll: 10,
			BaseCooldown:     1.0,
			RetryDelay:       0.01,
		},
		Background: BackgroundConfig{ScrollSpeed: 300},
		Menu: MenuConfig{
			Title: "FARM FLIES",
			Start: ButtonConfig{Caption: "Start", X: 400, Y: 300, Width: 200, Height: 50},
		},
		GameOver: GameOverConfig{
			Message:      "You have lost all your lives!",
			RestartDelay: 5,
			Next:         "credits",
		},
		Credits: CreditsConfig{
			Lines: []string{
				"Felix Atanasescu - Lead Developer",
				"Andrei Kotlyarenko - Support Programmer",
				"Alina Atanasescu - Support Programmer & QA",
				"Radu Buzatu - Designer & Artist",
			},
			Back: ButtonConfig{Caption: "Back", X: 20, Y: 1010, Width: 150, Height: 50},
		},
		Levels: []LevelConfig{
			{
				ID:               "level_one",
				Number:           1,
				EnemySprite:      "pig",
				ProjectileSprite: "egg",
				Difficulty:       "very_easy",
				Grid:             GridConfig{Count: 45, Rows: 15, Columns: 15, XSpacing: 130, YSpacing: 150},
				Next:             "level_two",
			},
			{
				ID:               "level_two",
				Number:           2,
				EnemySprite:      "cow",
				ProjectileSprite: "egg",
				Difficulty:       "easy",
				Grid:             GridConfig{Count: 45, Rows: 15, Columns: 15, XSpacing: 130, YSpacing: 150},
				Next:             "credits",
			},
		},
		Assets: AssetsConfig{
			Dir: "Assets",
			Images: map[string]string{
				"ship":       "space_ship.png",
				"cow":        "cow.png",
				"pig":        "pig.png",
				"bomb":       "Bomb.png",
				"egg":        "egg.png",
				"background": "background.png",
				"cursor":     "cursor.png",
			},
			Fonts: map[string]string{
				"main":  "Middle.ttf",
				"title": "HelpMe.otf",
			},
		},
		Sounds: []SoundConfig{
			{Name: "music", Path: "yo-suzuki.mp3", Loop: true},
			{Name: "gameOver", Path: "game-over.mp3"},
			{Name: "enemyDeath", Path: "cowDeath.wav"},
			{Name: "shoot", Path: "ship_shooting.wav"},
			{Name: "hit", Path: "spaceship_hit.wav"},
		},
	}
}

// Validate reports every out-of-range value in the config
func (c *GameConfig) Validate() error {
	var errs []error

	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.WindowScale <= 0 {
		errs = append(errs, fmt.Errorf("display.windowScale must be positive, got %v", c.Display.WindowScale))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player.lives must be positive, got %d", c.Player.Lives))
	}
	if c.Projectile.Speed <= 0 {
		errs = append(errs, fmt.Errorf("projectile.speed must be positive, got %v", c.Projectile.Speed))
	}
	if c.Enemy.MaxRoll < 1 {
		errs = append(errs, fmt.Errorf("enemy.maxRoll must be at least 1, got %d", c.Enemy.MaxRoll))
	}
	if c.Enemy.RetryDelay <= 0 {
		errs = append(errs, fmt.Errorf("enemy.retryDelay must be positive, got %v", c.Enemy.RetryDelay))
	}
	if c.GameOver.RestartDelay <= 0 {
		errs = append(errs, fmt.Errorf("gameOver.restartDelay must be positive, got %v", c.GameOver.RestartDelay))
	}
	if _, err := scene.ParseID(c.GameOver.Next); err != nil {
		errs = append(errs, fmt.Errorf("gameOver.next: %w", err))
	}

	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	for i, lvl := range c.Levels {
		if err := lvl.validate(); err != nil {
			errs = append(errs, fmt.Errorf("levels[%d]: %w", i, err))
		}
	}

	for i, s := range c.Sounds {
		if s.Name == "" || s.Path == "" {
			errs = append(errs, fmt.Errorf("sounds[%d]: name and path are required", i))
		}
	}

	return errors.Join(errs...)
}

func (l LevelConfig) validate() error {
	id, err := scene.ParseID(l.ID)
	if err != nil {
		return err
	}
	if id != scene.LevelOne && id != scene.LevelTwo {
		return fmt.Errorf("%s is not a level scene", id)
	}
	if _, err := scene.ParseID(l.Next); err != nil {
		return fmt.Errorf("next: %w", err)
	}
	if _, err := entity.ParseDifficulty(l.Difficulty); err != nil {
		return err
	}
	// grid values are checked by the spawner at spawn time
	return nil
}

// LevelByID returns the level registered under id
func (c *GameConfig) LevelByID(id scene.ID) (LevelConfig, bool) {
	for _, lvl := range c.Levels {
		if parsed, err := scene.ParseID(lvl.ID); err == nil && parsed == id {
			return lvl, true
		}
	}
	return LevelConfig{}, false
}

// EnemyParams converts the enemy section to entity tuning
func (c *GameConfig) EnemyParams() entity.EnemyParams {
	return entity.EnemyParams{
		Width:            c.Enemy.Width,
		Height:           c.Enemy.Height,
		Amplitude:        c.Enemy.Amplitude,
		Frequency:        c.Enemy.Frequency,
		VerticalSpeed:    c.Enemy.VerticalSpeed,
		VerticalLimit:    c.Enemy.VerticalLimit,
		MaxRoll:          c.Enemy.MaxRoll,
		BaseRequiredRoll: c.Enemy.BaseRequiredRoll,
		BaseCooldown:     c.Enemy.BaseCooldown,
		RetryDelay:       c.Enemy.RetryDelay,
		Projectile:       c.ProjectileParams(),
	}
}

// ProjectileParams converts the projectile section to entity tuning
func (c *GameConfig) ProjectileParams() entity.ProjectileParams {
	return entity.ProjectileParams{
		Speed:  c.Projectile.Speed,
		Width:  c.Projectile.Width,
		Height: c.Projectile.Height,
	}
}
