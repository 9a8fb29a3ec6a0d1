package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Seed       int64            `yaml:"seed"` // 0 seeds from the clock
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Background BackgroundConfig `yaml:"background"`
	Menu       MenuConfig       `yaml:"menu"`
	GameOver   GameOverConfig   `yaml:"gameOver"`
	Credits    CreditsConfig    `yaml:"credits"`
	Levels     []LevelConfig    `yaml:"levels"`
	Assets     AssetsConfig     `yaml:"assets"`
	Sounds     []SoundConfig    `yaml:"sounds"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	WindowScale  float64 `yaml:"windowScale"`
	Title        string  `yaml:"title"`
	Framerate    int     `yaml:"framerate"`
	HideCursor   bool    `yaml:"hideCursor"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lives  int     `yaml:"lives"`
}

type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig tunes enemy movement and the random shoot decision
type EnemyConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Amplitude        float64 `yaml:"amplitude"`
	Frequency        float64 `yaml:"frequency"`
	VerticalSpeed    float64 `yaml:"verticalSpeed"`
	VerticalLimit    float64 `yaml:"verticalLimit"`
	MaxRoll          int     `yaml:"maxRoll"`
	BaseRequiredRoll int     `yaml:"baseRequiredRoll"`
	BaseCooldown     float64 `yaml:"baseCooldown"`
	RetryDelay       float64 `yaml:"retryDelay"`
}

type BackgroundConfig struct {
	ScrollSpeed float64 `yaml:"scrollSpeed"`
}

type ButtonConfig struct {
	Caption string  `yaml:"caption"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type MenuConfig struct {
	Title string       `yaml:"title"`
	Start ButtonConfig `yaml:"start"`
}

type GameOverConfig struct {
	Message      string  `yaml:"message"`
	RestartDelay float64 `yaml:"restartDelay"`
	Next         string  `yaml:"next"`
}

type CreditsConfig struct {
	Lines []string     `yaml:"lines"`
	Back  ButtonConfig `yaml:"back"`
}

type GridConfig struct {
	Count    int     `yaml:"count"`
	Rows     int     `yaml:"rows"`
	Columns  int     `yaml:"columns"`
	XSpacing float64 `yaml:"xSpacing"`
	YSpacing float64 `yaml:"ySpacing"`
}

// LevelConfig describes one gameplay level
type LevelConfig struct {
	ID               string     `yaml:"id"`
	Number           int        `yaml:"number"`
	EnemySprite      string     `yaml:"enemySprite"`
	ProjectileSprite string     `yaml:"projectileSprite"`
	Difficulty       string     `yaml:"difficulty"`
	Grid             GridConfig `yaml:"grid"`
	Next             string     `yaml:"next"`
}

// AssetsConfig maps asset names to paths relative to Dir
type AssetsConfig struct {
	Dir    string            `yaml:"dir"`
	Images map[string]string `yaml:"images"`
	Fonts  map[string]string `yaml:"fonts"`
}

type SoundConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Loop bool   `yaml:"loop"`
}
