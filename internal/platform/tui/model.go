package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/serpentium/internal/core"
	"github.com/vovakirdan/serpentium/internal/engine"
	"github.com/vovakirdan/serpentium/internal/game"
)

// helpHeight is the number of lines below the board used by the help bar.
const helpHeight = 1

// GameOutcome tells the caller what to do after the game screen exits.
type GameOutcome int

const (
	OutcomeQuit GameOutcome = iota
	OutcomeHome
)

// GameModel is the Bubble Tea model for a running snake game.
// The session must already be started.
type GameModel struct {
	session *game.Session
	logger  *log.Logger
	keys    GameKeyMap
	help    help.Model
	screen  *core.Screen
	width   int
	height  int
	gen     int  // current tick chain
	title   string
	newBest bool // last finished game beat the best score
	outcome GameOutcome
	done    bool
}

// NewGameModel creates a game screen for the given session.
// A nil logger discards log output.
func NewGameModel(session *game.Session, logger *log.Logger, width, height int) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = width

	return GameModel{
		session: session,
		logger:  logger,
		keys:    DefaultGameKeyMap(),
		help:    h,
		screen:  core.NewScreen(width, height-helpHeight),
		title:   session.Title(),
		width:   width,
		height:  height,
	}
}

// Init sets the window title and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.title), tickCmd(m.session.Interval(), m.gen))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.outcome = OutcomeQuit
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.outcome = OutcomeHome
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.session.TogglePause() == engine.PhasePlaying {
			return m.resume()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if err := m.session.Restart(); err != nil {
			m.logger.Error("restart failed", "error", err)
			return m, nil
		}
		m.newBest = false
		next, cmd := m.resume()
		return next.withTitle(cmd)
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.session.Steer(dir)
	}
	return m, nil
}

// resume starts a fresh tick chain, orphaning any tick still in flight.
func (m GameModel) resume() (GameModel, tea.Cmd) {
	m.gen++
	return m, tickCmd(m.session.Interval(), m.gen)
}

// withTitle adds a window title update to cmd when the session title changed.
func (m GameModel) withTitle(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	title := m.session.Title()
	if title == m.title {
		return m, cmd
	}
	m.title = title
	return m, tea.Batch(tea.SetWindowTitle(title), cmd)
}

func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	res := m.session.Tick()
	if res.Ended {
		m.newBest = res.NewBest
	}
	if res.Phase != engine.PhasePlaying {
		// Paused or over: the chain stops until resume.
		return m.withTitle(nil)
	}
	return m.withTitle(tickCmd(m.session.Interval(), m.gen))
}

// View renders the board, HUD and help bar.
func (m GameModel) View() string {
	if m.done {
		return ""
	}

	drawGame(m.screen, gameView{
		Snap:       m.session.Snapshot(),
		Difficulty: m.session.Difficulty(),
		Best:       m.session.BestScore(),
		NewBest:    m.newBest,
	})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + centerText(helpStyle.Render(m.help.View(m.keys)), m.width)
}

// Outcome reports why the game screen exited.
func (m GameModel) Outcome() GameOutcome {
	return m.outcome
}
