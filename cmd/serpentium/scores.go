package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/serpentium/internal/config"
	"github.com/vovakirdan/serpentium/internal/storage"
)

var (
	flagScoresDifficulty string
	flagClear            bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 scores for each difficulty, or for one with --difficulty.

Examples:
  serpentium scores
  serpentium scores --difficulty fast
  serpentium scores --difficulty slow --clear
  serpentium scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only this difficulty: slow, normal, fast")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the selected scores")
}

func runScores(_ *cobra.Command, _ []string) {
	if err := showScores(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showScores() error {
	diffs := config.Difficulties()
	if flagScoresDifficulty != "" {
		d, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			return err
		}
		diffs = []config.Difficulty{d}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(store, diffs)
	}

	stats, err := loadStats(store, diffs)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	for i, d := range diffs {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, d, stats[d.ScoreMode()]); err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}
	}

	if len(diffs) > 1 {
		if best, err := store.BestScore(); err == nil && best > 0 {
			fmt.Println()
			fmt.Printf("Best overall: %d\n", best)
		}
	}
	return nil
}

// loadStats returns stats keyed by score mode, in one query when every
// difficulty is shown.
func loadStats(store *storage.Store, diffs []config.Difficulty) (map[string]*storage.ModeStats, error) {
	if len(diffs) != 1 {
		return store.AllStats()
	}
	st, err := store.Stats(diffs[0].ScoreMode())
	if err != nil {
		return nil, err
	}
	return map[string]*storage.ModeStats{st.Mode: st}, nil
}

// printScores prints the top 10 of one difficulty. stats is nil when
// the difficulty has never been played.
func printScores(store *storage.Store, d config.Difficulty, stats *storage.ModeStats) error {
	scores, err := store.TopScores(d.ScoreMode(), 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", d.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'serpentium play --difficulty %s' to set the first high score!\n", d)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	if stats != nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func clearScores(store *storage.Store, diffs []config.Difficulty) error {
	if len(diffs) == len(config.Difficulties()) {
		if err := store.ClearAll(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}
	for _, d := range diffs {
		if err := store.ClearScores(d.ScoreMode()); err != nil {
			return err
		}
		fmt.Printf("%s scores cleared.\n", d.Title())
	}
	return nil
}
