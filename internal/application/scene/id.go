package scene

import (
	"fmt"
	"strings"
)

// ID identifies a registered scene
type ID int

const (
	MainMenu ID = iota
	LevelOne
	LevelTwo
	GameOver
	Credits
)

// String returns the string representation of the scene id
func (id ID) String() string {
	switch id {
	case MainMenu:
		return "MainMenu"
	case LevelOne:
		return "LevelOne"
	case LevelTwo:
		return "LevelTwo"
	case GameOver:
		return "GameOver"
	case Credits:
		return "Credits"
	default:
		return "Unknown"
	}
}

// ParseID converts a config name such as "level_two" or "LevelTwo" to an ID
func ParseID(s string) (ID, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	switch key {
	case "mainmenu", "menu":
		return MainMenu, nil
	case "levelone":
		return LevelOne, nil
	case "leveltwo":
		return LevelTwo, nil
	case "gameover":
		return GameOver, nil
	case "credits":
		return Credits, nil
	}
	return MainMenu, fmt.Errorf("unknown scene %q", s)
}
