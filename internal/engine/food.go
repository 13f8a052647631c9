package engine

import "fmt"

// FoodStrategy selects how a new food cell is chosen.
type FoodStrategy int

const (
	// FoodEnumerate lists every free cell and picks one uniformly.
	// It always places food when a free cell exists. O(cells) per spawn.
	FoodEnumerate FoodStrategy = iota

	// FoodRejection samples random cells until one is free, giving up
	// after a bounded number of attempts. Usually O(1), but on a dense
	// board it can report no food even though a free cell exists.
	FoodRejection
)

// DefaultMaxFoodAttempts bounds rejection sampling.
const DefaultMaxFoodAttempts = 100

func (s FoodStrategy) String() string {
	switch s {
	case FoodEnumerate:
		return "enumerate"
	case FoodRejection:
		return "rejection"
	default:
		return "unknown"
	}
}

// ParseFoodStrategy converts a config name into a FoodStrategy.
func ParseFoodStrategy(name string) (FoodStrategy, error) {
	switch name {
	case "", "enumerate":
		return FoodEnumerate, nil
	case "rejection":
		return FoodRejection, nil
	default:
		return FoodEnumerate, fmt.Errorf("engine: unknown food strategy %q", name)
	}
}

// spawnFood places food on a free cell, or clears it if none is found.
func (e *Engine) spawnFood() {
	var (
		cell Cell
		ok   bool
	)
	switch e.foodStrategy {
	case FoodRejection:
		cell, ok = e.sampleFreeCell()
	default:
		cell, ok = e.pickFreeCell()
	}
	e.food = cell
	e.hasFood = ok
}

// pickFreeCell enumerates all free cells and picks one at random.
func (e *Engine) pickFreeCell() (Cell, bool) {
	free := e.freeCells()
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[e.rng.Intn(len(free))], true
}

// sampleFreeCell tries up to maxAttempts random cells.
func (e *Engine) sampleFreeCell() (Cell, bool) {
	if e.cols <= 0 || e.rows <= 0 {
		return Cell{}, false
	}
	for range e.maxAttempts {
		c := Cell{Col: e.rng.Intn(e.cols), Row: e.rng.Intn(e.rows)}
		if !e.isSnakeAt(c) {
			return c, true
		}
	}
	return Cell{}, false
}

// freeCells returns every grid cell not occupied by the snake, row by row.
func (e *Engine) freeCells() []Cell {
	occupied := make(map[Cell]struct{}, len(e.snake))
	for _, seg := range e.snake {
		occupied[seg] = struct{}{}
	}

	free := make([]Cell, 0, max(0, e.cols*e.rows-len(occupied)))
	for row := 0; row < e.rows; row++ {
		for col := 0; col < e.cols; col++ {
			c := Cell{Col: col, Row: row}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	return free
}

// isSnakeAt checks if the snake occupies the given cell.
func (e *Engine) isSnakeAt(c Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}
