package config

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is a named game speed.
type Difficulty string

const (
	DifficultySlow   Difficulty = "slow"
	DifficultyNormal Difficulty = "normal"
	DifficultyFast   Difficulty = "fast"
)

// Difficulties returns all presets from slowest to fastest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultySlow, DifficultyNormal, DifficultyFast}
}

// ParseDifficulty converts a preset name, case-insensitively.
func ParseDifficulty(name string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(name))) {
	case DifficultySlow:
		return DifficultySlow, nil
	case DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyFast:
		return DifficultyFast, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want slow, normal or fast)", name)
	}
}

// Title returns a display name for menus.
func (d Difficulty) Title() string {
	switch d {
	case DifficultySlow:
		return "Slow"
	case DifficultyFast:
		return "Fast"
	default:
		return "Normal"
	}
}

// ScoreMode returns the key scores are stored under for this preset.
func (d Difficulty) ScoreMode() string {
	return "snake_" + string(d)
}

// Interval returns the tick interval configured for d.
// Unknown presets fall back to the normal interval.
func (c Config) Interval(d Difficulty) time.Duration {
	ms := c.Difficulty.IntervalsMS.forDifficulty(d)
	if ms <= 0 {
		ms = defaultIntervals.Normal
	}
	return time.Duration(ms) * time.Millisecond
}

// DefaultDifficulty returns the configured default preset.
func (c Config) DefaultDifficulty() Difficulty {
	d, err := ParseDifficulty(c.Difficulty.Default)
	if err != nil {
		return DifficultyNormal
	}
	return d
}

func (i IntervalsMS) forDifficulty(d Difficulty) int {
	switch d {
	case DifficultySlow:
		return i.Slow
	case DifficultyFast:
		return i.Fast
	default:
		return i.Normal
	}
}
