package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Defaults for the optional Initialize parameters.
const (
	DefaultSquareSize    = 20.0
	DefaultInitialLength = 10
)

// MaxCells bounds the grid size so food enumeration stays cheap.
const MaxCells = 1 << 20

// ErrInvalidGeometry is returned by Initialize when the board or the
// initial snake cannot be represented on the grid.
var ErrInvalidGeometry = errors.New("engine: invalid geometry")

// Engine is the snake state machine. It is not safe for concurrent use;
// a driver that reads state from another goroutine must serialize access.
type Engine struct {
	rng          *rand.Rand
	foodStrategy FoodStrategy
	maxAttempts  int

	areaWidth  float64
	areaHeight float64
	squareSize float64
	cols       int
	rows       int

	snake     []Cell // tail at index 0, head last
	direction Direction
	phase     Phase
	score     int
	ticks     uint64
	food      Cell
	hasFood   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithFoodStrategy selects the food respawn algorithm.
func WithFoodStrategy(s FoodStrategy) Option {
	return func(e *Engine) {
		e.foodStrategy = s
	}
}

// WithMaxFoodAttempts bounds rejection sampling. Values below 1 are ignored.
func WithMaxFoodAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithRand replaces the seeded source, mostly for tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// New creates an engine in the NotStarted phase. The seed drives food
// placement, so two engines with the same seed and inputs stay identical.
func New(seed int64, opts ...Option) *Engine {
	e := &Engine{
		rng:          rand.New(rand.NewSource(seed)),
		foodStrategy: FoodEnumerate,
		maxAttempts:  DefaultMaxFoodAttempts,
		phase:        PhaseNotStarted,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InitializeDefault starts a game with the default square size and length.
func (e *Engine) InitializeDefault(areaWidth, areaHeight float64) error {
	return e.Initialize(areaWidth, areaHeight, DefaultSquareSize, DefaultInitialLength)
}

// Initialize starts a new game on an areaWidth x areaHeight board.
// The snake is laid out horizontally from the left edge with its head
// furthest right, on the vertical midpoint row, heading right.
//
// The board dimensions must be positive, the grid may hold at most
// MaxCells cells and the snake must fit in one row; otherwise
// ErrInvalidGeometry is returned and the engine is left as it was.
// A snake may fill its whole row, in which case its first move right
// hits the wall.
func (e *Engine) Initialize(areaWidth, areaHeight, squareSize float64, initialLength int) error {
	if err := validateGeometry(areaWidth, areaHeight, squareSize, initialLength); err != nil {
		return err
	}

	e.areaWidth = areaWidth
	e.areaHeight = areaHeight
	e.squareSize = squareSize
	e.cols = cellsWithin(areaWidth, squareSize)
	e.rows = cellsWithin(areaHeight, squareSize)

	e.direction = DirRight
	e.phase = PhasePlaying
	e.score = 0
	e.ticks = 0
	e.hasFood = false

	startRow := int(math.Floor(areaHeight / squareSize / 2))
	e.snake = make([]Cell, 0, initialLength+1)
	for i := range initialLength {
		e.snake = append(e.snake, Cell{Col: i, Row: startRow})
	}

	e.spawnFood()
	return nil
}

func validateGeometry(areaWidth, areaHeight, squareSize float64, initialLength int) error {
	switch {
	case !(squareSize > 0) || math.IsInf(squareSize, 0):
		return fmt.Errorf("%w: square size %v must be positive", ErrInvalidGeometry, squareSize)
	case !(areaWidth > 0) || math.IsInf(areaWidth, 0):
		return fmt.Errorf("%w: area width %v must be positive", ErrInvalidGeometry, areaWidth)
	case !(areaHeight > 0) || math.IsInf(areaHeight, 0):
		return fmt.Errorf("%w: area height %v must be positive", ErrInvalidGeometry, areaHeight)
	case initialLength < 1:
		return fmt.Errorf("%w: initial length %d must be at least 1", ErrInvalidGeometry, initialLength)
	}

	// Checked in float space so the int conversions below cannot overflow.
	colsF := max(1, math.Ceil(areaWidth/squareSize))
	rowsF := max(1, math.Ceil(areaHeight/squareSize))
	if colsF*rowsF > MaxCells {
		return fmt.Errorf("%w: %vx%v grid exceeds %d cells", ErrInvalidGeometry, colsF, rowsF, MaxCells)
	}

	cols, rows := cellsWithin(areaWidth, squareSize), cellsWithin(areaHeight, squareSize)
	if cols*rows > MaxCells {
		return fmt.Errorf("%w: %dx%d grid exceeds %d cells", ErrInvalidGeometry, cols, rows, MaxCells)
	}
	if initialLength > cols {
		return fmt.Errorf("%w: snake of length %d does not fit in %d columns", ErrInvalidGeometry, initialLength, cols)
	}
	return nil
}

// cellsWithin counts the cells whose origin i*squareSize lies in [0, extent).
// A trailing partial cell counts, matching the pixel wall check in Move.
// The caller must have bounded extent/squareSize.
func cellsWithin(extent, squareSize float64) int {
	n := int(math.Ceil(extent / squareSize))
	for n > 0 && float64(n-1)*squareSize >= extent {
		n--
	}
	for float64(n)*squareSize < extent {
		n++
	}
	return n
}

// SetState assigns the phase directly. It is meant for toggling between
// Playing and Paused; the transition is not validated.
func (e *Engine) SetState(phase Phase) {
	e.phase = phase
}

// Move advances the snake one cell. The requested direction replaces the
// current one unless it is a reversal, which is silently dropped.
// Move does nothing unless the phase is Playing.
func (e *Engine) Move(requested Direction) {
	if e.phase != PhasePlaying || len(e.snake) == 0 {
		return
	}
	e.ticks++

	if requested != e.direction.Opposite() {
		e.direction = requested
	}

	head := e.snake[len(e.snake)-1]
	dc, dr := e.direction.delta()
	next := Cell{Col: head.Col + dc, Row: head.Row + dr}

	if e.outOfBounds(next) {
		e.phase = PhaseGameOver
		return
	}

	ateFood := e.hasFood && next == e.food
	if ateFood {
		e.score++
	}

	// The tail vacates its cell this tick unless the snake grows.
	hazards := e.snake
	if !ateFood {
		hazards = e.snake[1:]
	}
	for _, seg := range hazards {
		if seg == next {
			e.phase = PhaseGameOver
			return
		}
	}

	if ateFood {
		e.snake = append(e.snake, next)
		e.spawnFood()
		return
	}

	copy(e.snake, e.snake[1:])
	e.snake[len(e.snake)-1] = next
}

// outOfBounds reports whether the cell's pixel origin lies outside
// [0, areaWidth) x [0, areaHeight). cols and rows are derived so that
// this is equivalent to comparing grid indices.
func (e *Engine) outOfBounds(c Cell) bool {
	return c.Col < 0 || c.Col >= e.cols || c.Row < 0 || c.Row >= e.rows
}

func (e *Engine) toPoint(c Cell) Point {
	return Point{X: float64(c.Col) * e.squareSize, Y: float64(c.Row) * e.squareSize}
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the number of food items eaten since Initialize.
func (e *Engine) Score() int {
	return e.score
}

// SquareSize returns the cell edge in pixels.
func (e *Engine) SquareSize() float64 {
	return e.squareSize
}

// Direction returns the direction of the last accepted move.
func (e *Engine) Direction() Direction {
	return e.direction
}

// Columns returns the number of cells across the board.
func (e *Engine) Columns() int {
	return e.cols
}

// Rows returns the number of cells down the board.
func (e *Engine) Rows() int {
	return e.rows
}

// Ticks returns how many moves were processed while Playing.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Segments returns a copy of the snake in pixel units, tail first.
func (e *Engine) Segments() []Point {
	points := make([]Point, len(e.snake))
	for i, c := range e.snake {
		points[i] = e.toPoint(c)
	}
	return points
}

// Cells returns a copy of the snake in grid units, tail first.
func (e *Engine) Cells() []Cell {
	cells := make([]Cell, len(e.snake))
	copy(cells, e.snake)
	return cells
}

// Head returns the head position in pixels, or the origin before Initialize.
func (e *Engine) Head() Point {
	if len(e.snake) == 0 {
		return Point{}
	}
	return e.toPoint(e.snake[len(e.snake)-1])
}

// FoodPosition returns the food position in pixels; ok is false when no
// food is on the board.
func (e *Engine) FoodPosition() (p Point, ok bool) {
	if !e.hasFood {
		return Point{}, false
	}
	return e.toPoint(e.food), true
}

// FoodCell is FoodPosition in grid units.
func (e *Engine) FoodCell() (c Cell, ok bool) {
	return e.food, e.hasFood
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:      e.phase,
		Score:      e.score,
		Ticks:      e.ticks,
		Direction:  e.direction,
		Columns:    e.cols,
		Rows:       e.rows,
		SquareSize: e.squareSize,
		Cells:      e.Cells(),
		Food:       e.food,
		HasFood:    e.hasFood,
	}
}
