package entity

import (
	"fmt"
	"strings"
)

// Difficulty tiers adjust how often enemies fire
type Difficulty int

const (
	VeryEasy Difficulty = iota
	Easy
	Normal
	Hard
	VeryHard
	Insane
)

// Shortest cooldown any tier can reach, in seconds
const MinShootCooldown = 0.1

type difficultyModifier struct {
	name     string
	roll     int
	cooldown float64
}

var difficultyModifiers = map[Difficulty]difficultyModifier{
	VeryEasy: {"very_easy", 20, 1.0},
	Easy:     {"easy", 10, 0.5},
	Normal:   {"normal", 0, 0},
	Hard:     {"hard", -5, -0.2},
	VeryHard: {"very_hard", -10, -0.4},
	Insane:   {"insane", -15, -0.6},
}

func (d Difficulty) String() string {
	if m, ok := difficultyModifiers[d]; ok {
		return m.name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty converts a config name such as "very_easy" to a tier
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, m := range difficultyModifiers {
		if m.name == name {
			return d, nil
		}
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

// ShootingParams returns the tier-adjusted roll threshold and cooldown.
// The threshold is clamped to [1, maxRoll] and the cooldown floored at MinShootCooldown.
func (d Difficulty) ShootingParams(maxRoll, baseRequired int, baseCooldown float64) (required int, cooldown float64) {
	m := difficultyModifiers[d]
	required = baseRequired + m.roll
	cooldown = baseCooldown + m.cooldown

	if required < 1 {
		required = 1
	}
	if required > maxRoll {
		required = maxRoll
	}
	if cooldown < MinShootCooldown {
		cooldown = MinShootCooldown
	}
	return required, cooldown
}
