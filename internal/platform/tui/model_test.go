package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/serpentium/internal/config"
	"github.com/vovakirdan/serpentium/internal/engine"
	"github.com/vovakirdan/serpentium/internal/game"
)

func newTestGame(t *testing.T) GameModel {
	t.Helper()
	s, err := game.NewSession(config.Default(), config.DifficultyNormal, nil, nil, 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return NewGameModel(s, nil, 80, 24)
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

// cmdMsgs runs cmd and flattens batches into the messages they produce.
func cmdMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, cmdMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func hasTick(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(TickMsg); ok {
			return true
		}
	}
	return false
}

// hasTitle reports whether msgs set the window title to title.
// The title message type is unexported, so it is matched by its text.
func hasTitle(msgs []tea.Msg, title string) bool {
	for _, msg := range msgs {
		if _, ok := msg.(TickMsg); ok {
			continue
		}
		if fmt.Sprint(msg) == title {
			return true
		}
	}
	return false
}

func TestGameModelInitSchedulesTick(t *testing.T) {
	m := newTestGame(t)
	if m.Init() == nil {
		t.Error("Init() should schedule the first tick")
	}
}

func TestGameModelTickMoves(t *testing.T) {
	m := newTestGame(t)
	before := m.session.Snapshot().Head()

	m, cmd := update(t, m, TickMsg{Gen: m.gen})
	if cmd == nil {
		t.Error("tick while playing should schedule the next tick")
	}
	after := m.session.Snapshot().Head()
	if after.Col != before.Col+1 || after.Row != before.Row {
		t.Errorf("head moved from %v to %v, expected one cell right", before, after)
	}
}

func TestGameModelSteer(t *testing.T) {
	m := newTestGame(t)
	before := m.session.Snapshot().Head()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg{Gen: m.gen})

	after := m.session.Snapshot().Head()
	if after.Row != before.Row-1 || after.Col != before.Col {
		t.Errorf("head moved from %v to %v, expected one cell up", before, after)
	}
}

func TestGameModelPauseStopsTicks(t *testing.T) {
	m := newTestGame(t)

	m, cmd := update(t, m, runeKey("p"))
	if cmd != nil {
		t.Error("pausing should not schedule a tick")
	}
	if m.session.Phase() != engine.PhasePaused {
		t.Fatalf("Phase() = %v, expected paused", m.session.Phase())
	}

	// The tick already in flight arrives and ends the chain
	ticks := m.session.Snapshot().Ticks
	m, cmd = update(t, m, TickMsg{Gen: m.gen})
	if cmd != nil {
		t.Error("tick while paused should not reschedule")
	}
	if m.session.Snapshot().Ticks != ticks {
		t.Error("engine advanced while paused")
	}

	// Resume starts a new chain and orphans the old one
	oldGen := m.gen
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("resuming should schedule a tick")
	}
	if m.gen == oldGen {
		t.Error("resume should start a new tick chain")
	}
	m, cmd = update(t, m, TickMsg{Gen: oldGen})
	if cmd != nil || m.session.Snapshot().Ticks != ticks {
		t.Error("stale tick should be ignored")
	}
}

func TestGameModelGameOverAndRestart(t *testing.T) {
	m := newTestGame(t)

	// Run into the right wall
	var cmd tea.Cmd
	for range 40 {
		m, cmd = update(t, m, TickMsg{Gen: m.gen})
		if m.session.Phase() == engine.PhaseGameOver {
			break
		}
	}
	if m.session.Phase() != engine.PhaseGameOver {
		t.Fatal("expected game over after running into the wall")
	}
	if hasTick(cmdMsgs(cmd)) {
		t.Error("tick chain should stop at game over")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() should show the game over overlay")
	}

	m, cmd = update(t, m, runeKey("r"))
	if cmd == nil {
		t.Error("restart should schedule a tick")
	}
	if m.session.Phase() != engine.PhasePlaying || m.session.Score() != 0 {
		t.Errorf("after restart phase=%v score=%d", m.session.Phase(), m.session.Score())
	}
}

func TestGameModelExit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected GameOutcome
	}{
		{"quit", runeKey("q"), OutcomeQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, OutcomeQuit},
		{"back", runeKey("b"), OutcomeHome},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestGame(t)
			m, cmd := update(t, m, tc.msg)
			if cmd == nil {
				t.Fatal("expected tea.Quit")
			}
			if m.Outcome() != tc.expected {
				t.Errorf("Outcome() = %v, expected %v", m.Outcome(), tc.expected)
			}
			if m.View() != "" {
				t.Error("View() should be empty after exit")
			}
		})
	}
}

func TestGameModelResize(t *testing.T) {
	m := newTestGame(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 30-helpHeight)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("small terminal should show a warning")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestGame(t)
	out := m.View()

	for _, want := range []string{"SERPENTIUM", "Score: 0", "up"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestGameModelWindowTitle(t *testing.T) {
	// One row of three cells with a two-cell snake: the only free cell
	// holds the food, so the first tick eats and the second hits the wall.
	cfg := config.Default()
	cfg.Board.Width = 60
	cfg.Board.Height = 20
	cfg.Snake.InitialLength = 2

	s, err := game.NewSession(cfg, config.DifficultyNormal, nil, nil, 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	m := NewGameModel(s, nil, 80, 24)

	if msgs := cmdMsgs(m.Init()); !hasTitle(msgs, "Snake - Score: 0") || !hasTick(msgs) {
		t.Errorf("Init() messages = %v, expected title and tick", msgs)
	}

	m, cmd := update(t, m, TickMsg{Gen: m.gen})
	if msgs := cmdMsgs(cmd); !hasTitle(msgs, "Snake - Score: 1") || !hasTick(msgs) {
		t.Errorf("after eating, messages = %v, expected new title and tick", msgs)
	}

	m, cmd = update(t, m, TickMsg{Gen: m.gen})
	if msgs := cmdMsgs(cmd); !hasTitle(msgs, "Snake - Score: 1 - Game Over") || hasTick(msgs) {
		t.Errorf("at game over, messages = %v, expected only the game over title", msgs)
	}

	_, cmd = update(t, m, runeKey("r"))
	if msgs := cmdMsgs(cmd); !hasTitle(msgs, "Snake - Score: 0") || !hasTick(msgs) {
		t.Errorf("after restart, messages = %v, expected reset title and tick", msgs)
	}
}

func TestGameModelTitleUnchangedWhileMoving(t *testing.T) {
	m := newTestGame(t)
	m, cmd := update(t, m, TickMsg{Gen: m.gen})
	if m.session.Score() != 0 {
		t.Skip("food was directly ahead")
	}
	if msgs := cmdMsgs(cmd); len(msgs) != 1 || !hasTick(msgs) {
		t.Errorf("messages = %v, expected only the next tick", msgs)
	}
}
