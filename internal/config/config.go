// Package config provides YAML-based configuration loading and
// difficulty presets for Serpentium.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/serpentium/internal/engine"
)

// Config contains all tunable game settings.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Snake      SnakeConfig      `yaml:"snake"`
	Food       FoodConfig       `yaml:"food"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playable area in pixel units.
type BoardConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SquareSize float64 `yaml:"square_size"`
}

// SnakeConfig defines the starting snake.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// FoodConfig selects the food respawn algorithm.
type FoodConfig struct {
	Strategy    string `yaml:"strategy"`     // "enumerate" or "rejection"
	MaxAttempts int    `yaml:"max_attempts"` // rejection sampling bound
}

// DifficultyConfig maps difficulty presets to tick intervals.
type DifficultyConfig struct {
	Default     string      `yaml:"default"`
	IntervalsMS IntervalsMS `yaml:"intervals_ms"`
}

// IntervalsMS holds the tick interval for each preset, in milliseconds.
type IntervalsMS struct {
	Slow   int `yaml:"slow"`
	Normal int `yaml:"normal"`
	Fast   int `yaml:"fast"`
}

// EngineOptions translates the food settings into engine options.
func (c Config) EngineOptions() ([]engine.Option, error) {
	strategy, err := engine.ParseFoodStrategy(c.Food.Strategy)
	if err != nil {
		return nil, err
	}
	return []engine.Option{
		engine.WithFoodStrategy(strategy),
		engine.WithMaxFoodAttempts(c.Food.MaxAttempts),
	}, nil
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs []error

	// The engine owns the geometry rules; a scratch Initialize applies them.
	if err := engine.New(0).Initialize(c.Board.Width, c.Board.Height, c.Board.SquareSize, c.Snake.InitialLength); err != nil {
		errs = append(errs, fmt.Errorf("config: board: %w", err))
	}
	if _, err := engine.ParseFoodStrategy(c.Food.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if c.Food.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("config: max_attempts %d must not be negative", c.Food.MaxAttempts))
	}
	if c.Difficulty.Default != "" {
		if _, err := ParseDifficulty(c.Difficulty.Default); err != nil {
			errs = append(errs, err)
		}
	}
	for _, d := range Difficulties() {
		if ms := c.Difficulty.IntervalsMS.forDifficulty(d); ms <= 0 {
			errs = append(errs, fmt.Errorf("config: %s interval %dms must be positive", d, ms))
		}
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
