// Package game drives a snake engine on behalf of a front end.
//
// A Session owns the engine, the buffered player input and the score
// bookkeeping. It has no clock of its own: callers invoke Tick at the
// interval returned by Interval.
package game

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/serpentium/internal/config"
	"github.com/vovakirdan/serpentium/internal/engine"
)

// ScoreStore persists finished games.
type ScoreStore interface {
	SaveScore(mode string, score int) (int64, error)
	HighScore(mode string) (int, error)
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Phase   engine.Phase
	Moved   bool // engine was playing and advanced one step
	Ate     bool // food was eaten this step
	Ended   bool // this step ended the game
	NewBest bool // the finished game beat the stored best
}

// Session is one player's run of games at a fixed difficulty.
// It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	cfg        config.Config
	difficulty config.Difficulty
	store      ScoreStore
	logger     *log.Logger

	engine  *engine.Engine
	pending engine.Direction
	best    int
	saved   bool
}

// NewSession creates a session. A nil store disables score persistence
// and a nil logger discards log output.
func NewSession(cfg config.Config, diff config.Difficulty, store ScoreStore, logger *log.Logger, seed int64) (*Session, error) {
	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		cfg:        cfg,
		difficulty: diff,
		store:      store,
		logger:     logger,
		engine:     engine.New(seed, opts...),
		pending:    engine.DirRight,
	}, nil
}

// Start begins a new game on the configured board.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reset(); err != nil {
		return err
	}
	s.best = s.loadBest()
	s.logger.Info("game started",
		"difficulty", s.difficulty,
		"columns", s.engine.Columns(),
		"rows", s.engine.Rows(),
		"interval", s.Interval())
	return nil
}

// Restart abandons the current game and starts a fresh one.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reset(); err != nil {
		return err
	}
	s.logger.Debug("game restarted", "difficulty", s.difficulty)
	return nil
}

func (s *Session) reset() error {
	b := s.cfg.Board
	if err := s.engine.Initialize(b.Width, b.Height, b.SquareSize, s.cfg.Snake.InitialLength); err != nil {
		return fmt.Errorf("game: cannot start: %w", err)
	}
	s.pending = engine.DirRight
	s.saved = false
	return nil
}

func (s *Session) loadBest() int {
	if s.store == nil {
		return s.best
	}
	best, err := s.store.HighScore(s.difficulty.ScoreMode())
	if err != nil {
		s.logger.Warn("could not load best score", "error", err)
		return s.best
	}
	return max(best, s.best)
}

// Steer buffers the direction applied on the next Tick.
// Reversals are filtered by the engine, not here.
func (s *Session) Steer(dir engine.Direction) {
	s.mu.Lock()
	s.pending = dir
	s.mu.Unlock()
}

// Tick advances the game by one step using the buffered direction.
func (s *Session) Tick() TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.Phase() != engine.PhasePlaying {
		return TickResult{Phase: s.engine.Phase()}
	}

	before := s.engine.Score()
	s.engine.Move(s.pending)

	res := TickResult{
		Phase: s.engine.Phase(),
		Moved: true,
		Ate:   s.engine.Score() > before,
	}
	if res.Phase == engine.PhaseGameOver && !s.saved {
		res.Ended = true
		res.NewBest = s.finish()
	}
	return res
}

// finish records the final score once and reports whether it is a new best.
func (s *Session) finish() bool {
	s.saved = true
	score := s.engine.Score()
	s.logger.Info("game over",
		"difficulty", s.difficulty,
		"score", score,
		"ticks", s.engine.Ticks())

	if score <= 0 {
		return false
	}
	if s.store != nil {
		if _, err := s.store.SaveScore(s.difficulty.ScoreMode(), score); err != nil {
			s.logger.Error("could not save score", "error", err, "score", score)
		}
	}
	if score > s.best {
		s.best = score
		return true
	}
	return false
}

// TogglePause switches between Playing and Paused. Other phases are left alone.
func (s *Session) TogglePause() engine.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.engine.Phase() {
	case engine.PhasePlaying:
		s.engine.SetState(engine.PhasePaused)
	case engine.PhasePaused:
		s.engine.SetState(engine.PhasePlaying)
	}
	return s.engine.Phase()
}

// Snapshot returns a copy of the current game state.
func (s *Session) Snapshot() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

func (s *Session) Phase() engine.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Phase()
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Score()
}

// BestScore returns the best score for this difficulty, including
// games finished in this session.
func (s *Session) BestScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

// Interval is the time between ticks for the session's difficulty.
func (s *Session) Interval() time.Duration {
	return s.cfg.Interval(s.difficulty)
}

func (s *Session) Difficulty() config.Difficulty {
	return s.difficulty
}

// Title is a one-line status such as "Snake - Score: 3 - Game Over".
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.Phase() == engine.PhaseGameOver {
		return fmt.Sprintf("Snake - Score: %d - Game Over", s.engine.Score())
	}
	return fmt.Sprintf("Snake - Score: %d", s.engine.Score())
}
