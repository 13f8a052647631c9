package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/serpentium/internal/config"
)

// HomeAction is what the player picked on the home screen.
type HomeAction int

const (
	HomeQuit HomeAction = iota
	HomePlay
	HomeScores
)

// HomeChoice is the result of the home screen.
type HomeChoice struct {
	Action     HomeAction
	Difficulty config.Difficulty
}

var (
	homeTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	homeSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)
	homeItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	homeDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const logo = `╔═╗╔═╗╦═╗╔═╗╔═╗╔╗╔╔╦╗╦╦ ╦╔╦╗
╚═╗║╣ ╠╦╝╠═╝║╣ ║║║ ║ ║║ ║║║║
╚═╝╚═╝╩╚═╩  ╚═╝╝╚╝ ╩ ╩╚═╝╩ ╩`

// HomeModel is the welcome screen: pick a difficulty, open the scoreboard or quit.
type HomeModel struct {
	difficulties []config.Difficulty
	best         map[config.Difficulty]int
	cursor       int
	keys         MenuKeyMap
	help         help.Model
	width        int
	height       int
	choice       HomeChoice
}

// NewHomeModel creates the home screen with the cursor on initial.
// best holds the best stored score per difficulty and may be nil.
func NewHomeModel(initial config.Difficulty, best map[config.Difficulty]int, width, height int) HomeModel {
	diffs := config.Difficulties()
	cursor := 0
	for i, d := range diffs {
		if d == initial {
			cursor = i
		}
	}

	h := help.New()
	h.Width = width

	return HomeModel{
		difficulties: diffs,
		best:         best,
		cursor:       cursor,
		keys:         DefaultMenuKeyMap(),
		help:         h,
		width:        width,
		height:       height,
	}
}

// Init initializes the model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m HomeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = HomeChoice{Action: HomeQuit}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.difficulties)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choice = HomeChoice{Action: HomePlay, Difficulty: m.Difficulty()}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Scores):
		m.choice = HomeChoice{Action: HomeScores, Difficulty: m.Difficulty()}
		return m, tea.Quit
	}
	return m, nil
}

// Difficulty returns the difficulty under the cursor.
func (m HomeModel) Difficulty() config.Difficulty {
	return m.difficulties[m.cursor]
}

// Choice returns what the player picked. It is HomeQuit until a key exits the screen.
func (m HomeModel) Choice() HomeChoice {
	return m.choice
}

// bestOverall returns the highest stored score across difficulties.
func (m HomeModel) bestOverall() int {
	best := 0
	for _, s := range m.best {
		best = max(best, s)
	}
	return best
}

// View renders the home screen.
func (m HomeModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	for _, line := range strings.Split(logo, "\n") {
		b.WriteString(centerText(homeTitleStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(homeDimStyle.Render(fmt.Sprintf("Best score: %d", m.bestOverall())), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a speed:", m.width))
	b.WriteString("\n\n")

	for i, d := range m.difficulties {
		label := fmt.Sprintf("%-8s best %4d", d.Title(), m.best[d])
		if i == m.cursor {
			label = homeSelectedStyle.Render("▶ " + label)
		} else {
			label = homeItemStyle.Render("  " + label)
		}
		b.WriteString(centerText(label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(homeDimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}
