// Package engine implements the snake simulation: a deterministic,
// grid-based state machine that owns the snake geometry, direction
// handling, collision detection, food placement and scoring.
// It has no dependencies on timers, terminals or storage; a driver calls
// Move once per tick and reads the state back to render it.
package engine

// Direction is the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// delta returns the grid offset of one step in this direction.
func (d Direction) delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Point is a grid-aligned position in pixel units.
type Point struct {
	X, Y float64
}

// Cell is a position on the grid, in columns and rows.
type Cell struct {
	Col, Row int
}

// Snapshot captures the engine state at one instant. It holds copies,
// so callers may keep or modify it freely.
type Snapshot struct {
	Phase      Phase
	Score      int
	Ticks      uint64
	Direction  Direction
	Columns    int
	Rows       int
	SquareSize float64
	Cells      []Cell // tail first, head last
	Food       Cell
	HasFood    bool
}

// Head returns the head cell, or the zero cell for an empty snake.
func (s Snapshot) Head() Cell {
	if len(s.Cells) == 0 {
		return Cell{}
	}
	return s.Cells[len(s.Cells)-1]
}
