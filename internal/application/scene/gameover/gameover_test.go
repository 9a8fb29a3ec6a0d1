package gameover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/application/scene/scenetest"
	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

func newTestGameOver(t *testing.T) (*GameOver, *scenetest.Switcher, *scenetest.Sounds) {
	t.Helper()
	sw := &scenetest.Switcher{}
	snd := &scenetest.Sounds{}

	g, err := New(config.Default(), Deps{Switcher: sw, Assets: scenetest.Assets{}, Sounds: snd})
	require.NoError(t, err)
	g.OnInit()
	g.OnStart()
	return g, sw, snd
}

func TestNew_BadNext(t *testing.T) {
	cfg := config.Default()
	cfg.GameOver.Next = "nowhere"

	_, err := New(cfg, Deps{})
	assert.Error(t, err)
}

func TestGameOver_Countdown(t *testing.T) {
	g, sw, snd := newTestGameOver(t)

	assert.Equal(t, "Restarting in 5", g.Countdown())
	assert.Equal(t, []string{scene.SoundGameOver}, snd.Played)

	g.Update(0.5)
	assert.Equal(t, "Restarting in 4", g.Countdown(), "partial seconds truncate")

	for i := 0; i < 3; i++ {
		g.Update(1)
	}
	assert.Equal(t, "Restarting in 1", g.Countdown())
	assert.Empty(t, sw.Switches)

	g.Update(1)
	assert.Empty(t, sw.Switches)

	g.Update(0.5)
	assert.Equal(t, []scene.ID{scene.Credits}, sw.Switches)
}

func TestGameOver_RestartOnEntry(t *testing.T) {
	g, sw, snd := newTestGameOver(t)

	g.Update(4)
	g.OnStop()
	assert.Equal(t, []string{scene.SoundGameOver}, snd.Stopped)

	g.OnStart()
	assert.Equal(t, "Restarting in 5", g.Countdown())

	g.Update(4)
	assert.Empty(t, sw.Switches, "elapsed time from the previous visit is discarded")
}
