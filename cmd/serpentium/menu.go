package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/serpentium/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start on the home screen",
	Long: `Start Serpentium on the home screen.

Pick a speed with the arrow keys or j/k and press Enter to play.
After a game, press b to come back here.

Controls:
  Up/Down/j/k  - Choose speed
  Enter        - Play
  Tab          - High scores
  Q            - Quit

Examples:
  serpentium menu
  serpentium menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	e, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.RunApp(tui.AppOptions{
		Config:     e.cfg,
		Store:      e.store,
		Logger:     e.logger,
		Seed:       flagSeed,
		Difficulty: e.cfg.DefaultDifficulty(),
		Width:      e.width,
		Height:     e.height,
	})
	e.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
