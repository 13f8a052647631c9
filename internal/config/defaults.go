package config

import (
	_ "embed"
)

//go:embed defaults/serpentium.yaml
var defaultYAML []byte

var defaultIntervals = IntervalsMS{
	Slow:   150,
	Normal: 100,
	Fast:   70,
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:      700,
			Height:     400,
			SquareSize: 20,
		},
		Snake: SnakeConfig{
			InitialLength: 10,
		},
		Food: FoodConfig{
			Strategy:    "enumerate",
			MaxAttempts: 100,
		},
		Difficulty: DifficultyConfig{
			Default:     string(DifficultyNormal),
			IntervalsMS: defaultIntervals,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
