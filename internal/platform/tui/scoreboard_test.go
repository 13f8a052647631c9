package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/serpentium/internal/config"
	"github.com/vovakirdan/serpentium/internal/storage"
)

type fakeScores struct {
	byMode map[string][]storage.ScoreEntry
	err    error
	asked  []string
}

func (f *fakeScores) TopScores(mode string, limit int) ([]storage.ScoreEntry, error) {
	f.asked = append(f.asked, mode)
	if f.err != nil {
		return nil, f.err
	}
	return f.byMode[mode], nil
}

func updateBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T, expected ScoreboardModel", next)
	}
	return sm, cmd
}

func TestScoreboardTabs(t *testing.T) {
	src := &fakeScores{byMode: map[string][]storage.ScoreEntry{
		"snake_normal": {{Mode: "snake_normal", Score: 9}, {Mode: "snake_normal", Score: 4}},
		"snake_fast":   {{Mode: "snake_fast", Score: 30}},
	}}

	m := NewScoreboardModel(src, nil, config.DifficultyNormal, 80, 24)
	if len(m.scores) != 2 {
		t.Fatalf("loaded %d scores, expected 2", len(m.scores))
	}
	if len(m.table.Rows()) != 2 || m.table.Rows()[0][1] != "9" {
		t.Errorf("table rows = %v", m.table.Rows())
	}

	m, _ = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Difficulty() != config.DifficultyFast || len(m.scores) != 1 {
		t.Errorf("after tab: %v with %d scores", m.Difficulty(), len(m.scores))
	}

	// Wraps around
	m, _ = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Difficulty() != config.DifficultySlow || len(m.scores) != 0 {
		t.Errorf("after wrap: %v with %d scores", m.Difficulty(), len(m.scores))
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty tab should show a placeholder")
	}

	m, _ = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Difficulty() != config.DifficultyFast {
		t.Errorf("after shift+tab: %v, expected fast", m.Difficulty())
	}

	want := []string{"snake_normal", "snake_fast", "snake_slow", "snake_fast"}
	if strings.Join(src.asked, ",") != strings.Join(want, ",") {
		t.Errorf("queried modes %v, expected %v", src.asked, want)
	}
}

func TestScoreboardNilSourceAndErrors(t *testing.T) {
	m := NewScoreboardModel(nil, nil, config.DifficultyNormal, 80, 24)
	if len(m.scores) != 0 {
		t.Error("nil source should show no scores")
	}

	m = NewScoreboardModel(&fakeScores{err: errors.New("boom")}, nil, config.DifficultyNormal, 80, 24)
	if len(m.scores) != 0 {
		t.Error("failed load should show no scores")
	}
}

func TestScoreboardExit(t *testing.T) {
	m := NewScoreboardModel(nil, nil, config.DifficultyNormal, 80, 24)
	back, cmd := updateBoard(t, m, runeKey("b"))
	if cmd == nil || !back.IsGoingBack() || back.IsQuitting() {
		t.Error("b should go back")
	}

	quit, cmd := updateBoard(t, m, runeKey("q"))
	if cmd == nil || !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardView(t *testing.T) {
	src := &fakeScores{byMode: map[string][]storage.ScoreEntry{
		"snake_slow": {{Mode: "snake_slow", Score: 17}},
	}}
	m := NewScoreboardModel(src, nil, config.DifficultySlow, 80, 24)

	out := m.View()
	for _, want := range []string{"HIGH SCORES", "Slow", "Normal", "Fast", "#1", "17"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
