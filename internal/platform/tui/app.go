package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/serpentium/internal/config"
	"github.com/vovakirdan/serpentium/internal/game"
	"github.com/vovakirdan/serpentium/internal/storage"
)

// AppOptions configures RunApp.
type AppOptions struct {
	Config     config.Config
	Store      *storage.Store // nil disables score persistence
	Logger     *log.Logger
	Seed       int64 // 0 = time-based
	Difficulty config.Difficulty
	Width      int
	Height     int
	SkipHome   bool // go straight into a game at Difficulty
}

// RunApp runs the home → game → home loop until the player quits.
func RunApp(opts AppOptions) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	a := &app{opts: opts, difficulty: opts.Difficulty}
	return a.run()
}

type app struct {
	opts       AppOptions
	difficulty config.Difficulty
	games      int
}

func (a *app) run() error {
	skipHome := a.opts.SkipHome
	for {
		if !skipHome {
			choice, err := a.runHome()
			if err != nil {
				return err
			}
			switch choice.Action {
			case HomeQuit:
				return nil
			case HomeScores:
				a.difficulty = choice.Difficulty
				quit, err := a.runScoreboard()
				if err != nil || quit {
					return err
				}
				continue
			}
			a.difficulty = choice.Difficulty
		}
		skipHome = false

		outcome, err := a.runGame()
		if err != nil {
			return err
		}
		if outcome == OutcomeQuit {
			return nil
		}
	}
}

func (a *app) runHome() (HomeChoice, error) {
	model := NewHomeModel(a.difficulty, a.bestScores(), a.opts.Width, a.opts.Height)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return HomeChoice{}, fmt.Errorf("tui: home screen: %w", err)
	}
	m, ok := final.(HomeModel)
	if !ok {
		return HomeChoice{Action: HomeQuit}, nil
	}
	a.opts.Width, a.opts.Height = m.width, m.height
	return m.Choice(), nil
}

func (a *app) runScoreboard() (quit bool, err error) {
	var source ScoreSource
	if a.opts.Store != nil {
		source = a.opts.Store
	}
	model := NewScoreboardModel(source, a.opts.Logger, a.difficulty, a.opts.Width, a.opts.Height)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return true, nil
	}
	a.opts.Width, a.opts.Height = m.width, m.height
	a.difficulty = m.Difficulty()
	return m.IsQuitting(), nil
}

func (a *app) runGame() (GameOutcome, error) {
	var store game.ScoreStore
	if a.opts.Store != nil {
		store = a.opts.Store
	}

	session, err := game.NewSession(a.opts.Config, a.difficulty, store, a.opts.Logger, a.nextSeed())
	if err != nil {
		return OutcomeQuit, err
	}
	if err := session.Start(); err != nil {
		return OutcomeQuit, err
	}

	model := NewGameModel(session, a.opts.Logger, a.opts.Width, a.opts.Height)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return OutcomeQuit, fmt.Errorf("tui: game: %w", err)
	}
	m, ok := final.(GameModel)
	if !ok {
		return OutcomeQuit, nil
	}
	a.opts.Width, a.opts.Height = m.width, m.height
	return m.Outcome(), nil
}

// nextSeed returns the configured seed offset by the number of games played,
// so a fixed seed replays the same sequence of games.
func (a *app) nextSeed() int64 {
	a.games++
	if a.opts.Seed == 0 {
		return time.Now().UnixNano()
	}
	return a.opts.Seed + int64(a.games-1)
}

// bestScores loads the stored best score for each difficulty.
func (a *app) bestScores() map[config.Difficulty]int {
	best := make(map[config.Difficulty]int)
	if a.opts.Store == nil {
		return best
	}
	for _, d := range config.Difficulties() {
		score, err := a.opts.Store.HighScore(d.ScoreMode())
		if err != nil {
			a.opts.Logger.Warn("could not load best score", "difficulty", d, "error", err)
			continue
		}
		best[d] = score
	}
	return best
}
