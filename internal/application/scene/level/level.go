// Package level provides the gameplay scenes: a ship against a grid of enemies.
package level

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/farmflies/internal/application/scene"
	"github.com/younwookim/farmflies/internal/application/scene/ui"
	"github.com/younwookim/farmflies/internal/application/system"
	"github.com/younwookim/farmflies/internal/domain/entity"
	"github.com/younwookim/farmflies/internal/domain/random"
	"github.com/younwookim/farmflies/internal/infrastructure/config"
)

// Colors used when a sprite is missing
var (
	colorBG           = color.RGBA{20, 24, 48, 255}
	colorShip         = color.RGBA{100, 200, 255, 255}
	colorEnemy        = color.RGBA{240, 160, 180, 255}
	colorPlayerShot   = color.RGBA{255, 220, 80, 255}
	colorEnemyShot    = color.RGBA{250, 250, 230, 255}
	colorPauseOverlay = color.RGBA{0, 0, 0, 140}
	colorHUD          = color.White
)

const (
	hudFontSize   = 40
	pauseFontSize = 96
)

// Deps are the services a level draws on
type Deps struct {
	Switcher scene.Switcher
	Input    scene.Input
	Assets   scene.Assets
	Sounds   scene.Sounds
	RNG      *random.Source
}

// Level is one gameplay scene. Every start is a fresh level.
type Level struct {
	scene.Base

	id         scene.ID
	cfg        *config.GameConfig
	level      config.LevelConfig
	difficulty entity.Difficulty
	next       scene.ID

	switcher scene.Switcher
	input    scene.Input
	assets   scene.Assets
	sounds   scene.Sounds
	rng      *random.Source

	combat     *system.CombatSystem
	ship       *entity.Spaceship
	enemies    []*entity.Enemy
	background *entity.Background

	lives   int
	paused  bool
	hudText [2]string
}

// New creates the level registered under id in cfg
func New(id scene.ID, cfg *config.GameConfig, deps Deps) (*Level, error) {
	lvl, ok := cfg.LevelByID(id)
	if !ok {
		return nil, fmt.Errorf("no level configured for %s", id)
	}

	difficulty, err := entity.ParseDifficulty(lvl.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}

	next, err := scene.ParseID(lvl.Next)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}

	rng := deps.RNG
	if rng == nil {
		rng = random.NewFromClock()
	}

	l := &Level{
		id:         id,
		cfg:        cfg,
		level:      lvl,
		difficulty: difficulty,
		next:       next,
		switcher:   deps.Switcher,
		input:      deps.Input,
		assets:     deps.Assets,
		sounds:     deps.Sounds,
		rng:        rng,
		combat:     system.NewCombatSystem(),
		ship:       entity.NewSpaceship(cfg.Player.Width, cfg.Player.Height, cfg.ProjectileParams()),
		lives:      cfg.Player.Lives,
	}

	l.combat.OnEnemyKilled = func(*entity.Enemy) {
		l.sounds.Play(scene.SoundEnemyDeath)
	}
	l.combat.OnPlayerHit = func() {
		l.sounds.Play(scene.SoundHit)
	}

	return l, nil
}

// OnInit sizes the scrolling background from its sprite
func (l *Level) OnInit() {
	tileHeight := float64(l.cfg.Display.ScreenHeight)
	if img := l.assets.Image("background"); img != nil {
		tileHeight = float64(img.Bounds().Dy())
	}
	l.background = entity.NewBackground(tileHeight, l.cfg.Background.ScrollSpeed)
}

// OnStart resets the level: full lives, a new enemy grid, music from the top
func (l *Level) OnStart() {
	if l.background == nil {
		l.OnInit()
	}

	l.lives = l.cfg.Player.Lives
	l.paused = false

	l.enemies = nil
	l.ship.Reset()
	l.background.Reset()
	l.spawnEnemies()
	l.updateHUD()

	l.sounds.Stop(scene.SoundMusic)
	l.sounds.Play(scene.SoundMusic)

	log.Printf("[Level] %s started: %d enemies, %s, %d lives", l.id, len(l.enemies), l.difficulty, l.lives)
}

// OnStop silences the level music
func (l *Level) OnStop() {
	l.sounds.Stop(scene.SoundMusic)
}

// HandleInput toggles pause on the pause key. It runs even while paused.
func (l *Level) HandleInput(_ float64) {
	if l.input.IsKeyPress(system.KeyPause) {
		l.paused = !l.paused
	}
}

// Update runs one simulation step: motion, collision, cleanup, then transitions
func (l *Level) Update(dt float64) {
	if l.paused {
		return
	}

	l.background.Update(dt)

	mx, my := l.input.CursorPosition()
	pointer := entity.Vec2{X: float64(mx), Y: float64(my)}
	if l.ship.Update(dt, pointer, l.input.IsKeyPress(system.KeyShoot)) {
		l.sounds.Play(scene.SoundShoot)
	}

	for _, e := range l.enemies {
		if e.IsAlive() {
			e.Update(dt)
		}
	}

	l.enemies = l.combat.ResolvePlayerShots(l.enemies, l.ship.Projectiles())
	if l.combat.ResolveEnemyShots(l.enemies, l.ship) {
		l.lives--
	}
	l.combat.Cleanup(l.enemies, l.ship)

	l.updateHUD()

	if l.lives <= 0 {
		l.switcher.Switch(scene.GameOver)
		return
	}
	if len(l.enemies) == 0 {
		l.switcher.Switch(l.next)
	}
}

func (l *Level) spawnEnemies() {
	params := l.cfg.EnemyParams()
	grid := system.GridSpec{
		Count:    l.level.Grid.Count,
		Rows:     l.level.Grid.Rows,
		Columns:  l.level.Grid.Columns,
		XSpacing: l.level.Grid.XSpacing,
		YSpacing: l.level.Grid.YSpacing,
	}

	l.enemies = system.SpawnEnemyGrid(l.enemies, grid, func(pos entity.Vec2) *entity.Enemy {
		return entity.NewEnemy(pos, l.difficulty, params, l.rng)
	})
}

func (l *Level) updateHUD() {
	l.hudText[0] = fmt.Sprintf("Level: %d", l.level.Number)
	l.hudText[1] = fmt.Sprintf("Lives: %d", l.lives)
}

// Draw renders background, HUD, ship and enemies
func (l *Level) Draw(screen *ebiten.Image) {
	l.drawBackground(screen)
	l.drawHUD(screen)
	l.drawShip(screen)
	l.drawEnemies(screen)
}

func (l *Level) drawBackground(screen *ebiten.Image) {
	img := l.assets.Image("background")
	if img == nil {
		screen.Fill(colorBG)
		return
	}

	lower, upper := l.background.TilePositions()
	for _, y := range []float64{lower, upper} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(img, op)
	}
}

func (l *Level) drawHUD(screen *ebiten.Image) {
	face := l.assets.Face(scene.FontMain, hudFontSize)
	ui.DrawText(screen, l.hudText[0], face, 20, 20, colorHUD)
	ui.DrawText(screen, l.hudText[1], face, 20, 70, colorHUD)

	if l.paused {
		w, h := float32(l.cfg.Display.ScreenWidth), float32(l.cfg.Display.ScreenHeight)
		vector.DrawFilledRect(screen, 0, 0, w, h, colorPauseOverlay, false)
		ui.DrawCenteredText(screen, "GAME PAUSE", l.assets.Face(scene.FontMain, pauseFontSize),
			float64(w)/2, float64(h)/2-pauseFontSize/2, colorHUD)
	}
}

func (l *Level) drawShip(screen *ebiten.Image) {
	bomb := l.assets.Image("bomb")
	for _, p := range l.ship.Projectiles() {
		ui.DrawSprite(screen, bomb, p.Bounds(), colorPlayerShot)
	}
	if l.ship.IsAlive() {
		ui.DrawSprite(screen, l.assets.Image("ship"), l.ship.Bounds(), colorShip)
	}
}

func (l *Level) drawEnemies(screen *ebiten.Image) {
	sprite := l.assets.Image(l.level.EnemySprite)
	shot := l.assets.Image(l.level.ProjectileSprite)

	for _, e := range l.enemies {
		if e.IsAlive() {
			ui.DrawSprite(screen, sprite, e.Bounds(), colorEnemy)
		}
		for _, p := range e.Projectiles() {
			ui.DrawSprite(screen, shot, p.Bounds(), colorEnemyShot)
		}
	}
}

// ID returns the scene id this level is registered under
func (l *Level) ID() scene.ID {
	return l.id
}

// Lives returns the remaining lives
func (l *Level) Lives() int {
	return l.lives
}

// Paused reports whether the simulation is paused
func (l *Level) Paused() bool {
	return l.paused
}

// Enemies returns the living enemies
func (l *Level) Enemies() []*entity.Enemy {
	return l.enemies
}

// Ship returns the player ship
func (l *Level) Ship() *entity.Spaceship {
	return l.ship
}

// HUD returns the level and lives captions
func (l *Level) HUD() (level, lives string) {
	return l.hudText[0], l.hudText[1]
}
