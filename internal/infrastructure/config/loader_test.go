package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/domain/entity"
)

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Display.ScreenWidth)
	assert.Equal(t, 1080, cfg.Display.ScreenHeight)
	assert.Equal(t, "FARM FLIES", cfg.Display.Title)
	assert.Equal(t, 3, cfg.Player.Lives)
	assert.Equal(t, 300.0, cfg.Projectile.Speed)
	assert.Equal(t, 0.01, cfg.Enemy.RetryDelay)
	assert.Equal(t, 5.0, cfg.GameOver.RestartDelay)
	assert.Len(t, cfg.Credits.Lines, 4)

	require.Len(t, cfg.Levels, 2)
	assert.Equal(t, 45, cfg.Levels[0].Grid.Count)
	assert.Equal(t, "very_easy", cfg.Levels[0].Difficulty)
	assert.Equal(t, "pig", cfg.Levels[0].EnemySprite)

	assert.Equal(t, "space_ship.png", cfg.Assets.Images["ship"])
	assert.Len(t, cfg.Sounds, 5)
}

func TestLoader_MatchesDefault(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg, "shipped config mirrors the built-in defaults")
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": &fstest.MapFile{Data: []byte("seed: 42\nplayer:\n  lives: 5\n")},
	}
	loader := NewFSLoader(fsys, "configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 5, cfg.Player.Lives)
	assert.Equal(t, 100.0, cfg.Player.Width, "unset keys keep their default")
	assert.Equal(t, "configs", loader.BasePath())
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing file", fstest.MapFS{}},
		{"bad yaml", fstest.MapFS{"game.yaml": {Data: []byte("display: [")}}},
		{"invalid value", fstest.MapFS{"game.yaml": {Data: []byte("player:\n  lives: 0\n")}}},
		{"unknown difficulty", fstest.MapFS{"game.yaml": {Data: []byte("levels:\n  - id: level_one\n    difficulty: brutal\n    next: credits\n")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "").LoadAll()
			assert.Error(t, err)
		})
	}
}

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Display.Framerate = 0
	cfg.Enemy.MaxRoll = 0
	cfg.Levels[1].ID = "credits"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "framerate")
	assert.Contains(t, err.Error(), "maxRoll")
	assert.Contains(t, err.Error(), "levels[1]")
}

func TestGameConfig_LevelByID(t *testing.T) {
	cfg := Default()

	lvl, ok := cfg.LevelByID(scene.LevelTwo)
	require.True(t, ok)
	assert.Equal(t, 2, lvl.Number)
	assert.Equal(t, "cow", lvl.EnemySprite)

	_, ok = cfg.LevelByID(scene.Credits)
	assert.False(t, ok)
}

func TestGameConfig_EnemyParams(t *testing.T) {
	assert.Equal(t, entity.DefaultEnemyParams(), Default().EnemyParams())
}
