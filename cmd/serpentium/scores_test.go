package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/serpentium/internal/config"
	"github.com/vovakirdan/serpentium/internal/storage"
)

// withScoresFlags points the scores command at a fresh database.
func withScoresFlags(t *testing.T, difficulty string, clearFlag bool) string {
	t.Helper()
	oldDB, oldDiff, oldClear := flagDBPath, flagScoresDifficulty, flagClear
	t.Cleanup(func() {
		flagDBPath, flagScoresDifficulty, flagClear = oldDB, oldDiff, oldClear
	})

	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
	flagScoresDifficulty = difficulty
	flagClear = clearFlag
	return flagDBPath
}

func seedScores(t *testing.T, path string) {
	t.Helper()
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, d := range config.Difficulties() {
		if _, err := store.SaveScore(d.ScoreMode(), 5); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func highScore(t *testing.T, path string, d config.Difficulty) int {
	t.Helper()
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	score, err := store.HighScore(d.ScoreMode())
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	return score
}

func TestShowScores(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
	}{
		{"all difficulties", ""},
		{"one difficulty", "slow"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := withScoresFlags(t, tc.difficulty, false)
			seedScores(t, path)

			if err := showScores(); err != nil {
				t.Errorf("showScores() = %v, expected nil", err)
			}
		})
	}
}

func TestShowScoresUnknownDifficulty(t *testing.T) {
	withScoresFlags(t, "insane", false)
	if err := showScores(); err == nil {
		t.Error("showScores() should reject an unknown difficulty")
	}
}

func TestShowScoresClearOne(t *testing.T) {
	path := withScoresFlags(t, "fast", true)
	seedScores(t, path)

	if err := showScores(); err != nil {
		t.Fatalf("showScores() failed: %v", err)
	}
	if got := highScore(t, path, config.DifficultyFast); got != 0 {
		t.Errorf("fast high score = %d, expected 0 after clear", got)
	}
	if got := highScore(t, path, config.DifficultySlow); got != 5 {
		t.Errorf("slow high score = %d, expected 5", got)
	}
}

func TestShowScoresClearAll(t *testing.T) {
	path := withScoresFlags(t, "", true)
	seedScores(t, path)

	if err := showScores(); err != nil {
		t.Fatalf("showScores() failed: %v", err)
	}
	for _, d := range config.Difficulties() {
		if got := highScore(t, path, d); got != 0 {
			t.Errorf("%s high score = %d, expected 0 after clear", d, got)
		}
	}
}

func TestClearScoresReturnsError(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if err := clearScores(store, []config.Difficulty{config.DifficultySlow}); err == nil {
		t.Error("clearScores() on a closed store should return an error")
	}
	if err := clearScores(store, config.Difficulties()); err == nil {
		t.Error("clearScores() on a closed store should return an error")
	}
}
