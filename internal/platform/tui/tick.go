// Package tui provides the Bubble Tea front end for Serpentium.
// It handles the terminal UI loop, key bindings and screen navigation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game step.
// Gen identifies the tick chain that scheduled it; ticks from an older
// chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
