package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/serpentium/internal/config"
	"github.com/vovakirdan/serpentium/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game right away",
	Long: `Start a game immediately, skipping the home screen.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Esc             - Pause
  R                 - Restart
  B                 - Home screen
  Q/Ctrl+C          - Quit

Difficulty options:
  slow    - 150ms per step
  normal  - 100ms per step
  fast    - 70ms per step

Examples:
  serpentium play
  serpentium play --difficulty fast
  serpentium play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: slow, normal, fast")
}

func runPlay(_ *cobra.Command, _ []string) {
	e, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	diff := e.cfg.DefaultDifficulty()
	if flagDifficulty != "" {
		diff, err = config.ParseDifficulty(flagDifficulty)
		if err != nil {
			e.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	runErr := tui.RunApp(tui.AppOptions{
		Config:     e.cfg,
		Store:      e.store,
		Logger:     e.logger,
		Seed:       flagSeed,
		Difficulty: diff,
		Width:      e.width,
		Height:     e.height,
		SkipHome:   true,
	})
	e.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
