package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/serpentium/internal/config"
	"github.com/vovakirdan/serpentium/internal/core"
	"github.com/vovakirdan/serpentium/internal/engine"
)

// cellWidth is the number of terminal columns per board cell.
// Terminal glyphs are about twice as tall as they are wide.
const cellWidth = 2

const (
	headColor  = core.ColorBrightYellow
	bodyColor  = core.ColorGreen
	foodColor  = core.ColorBrightRed
	frameColor = core.ColorGray
)

// gameView is everything drawn for one frame of the game screen.
type gameView struct {
	Snap       engine.Snapshot
	Difficulty config.Difficulty
	Best       int
	NewBest    bool
}

// frameSize returns the screen area needed by a board: HUD line plus boxed grid.
func frameSize(cols, rows int) (w, h int) {
	return cols*cellWidth + 2, rows + 3
}

// drawGame renders a frame centered on the screen.
func drawGame(scr *core.Screen, v gameView) {
	scr.Clear()

	w, h := frameSize(v.Snap.Columns, v.Snap.Rows)
	if scr.Width() < w || scr.Height() < h {
		drawTooSmall(scr, w, h)
		return
	}

	area := core.CenterIn(scr.Bounds(), w, h)
	drawHUD(scr, area, v)

	board := core.NewRect(area.X, area.Y+1, w, h-1)
	scr.DrawBox(board, frameColor)
	inner := board.Inset(1)

	if v.Snap.HasFood {
		drawCell(scr, inner, v.Snap.Food, '█', foodColor)
	}
	for i, c := range v.Snap.Cells {
		color := bodyColor
		if i == len(v.Snap.Cells)-1 {
			color = headColor
		}
		drawCell(scr, inner, c, '█', color)
	}

	switch v.Snap.Phase {
	case engine.PhasePaused:
		drawOverlay(scr, inner, core.ColorYellow, "PAUSED", "", "p to resume")
	case engine.PhaseGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Score: %d", v.Snap.Score)}
		if v.NewBest {
			lines = append(lines, "New best!")
		}
		lines = append(lines, "", "r: play again   b: home")
		drawOverlay(scr, inner, core.ColorBrightRed, lines...)
	}
}

func drawHUD(scr *core.Screen, area core.Rect, v gameView) {
	left := fmt.Sprintf(" SERPENTIUM · %s", v.Difficulty.Title())
	right := fmt.Sprintf("Score: %d   Best: %d ", v.Snap.Score, max(v.Best, v.Snap.Score))

	scr.DrawTextColored(area.X, area.Y, left, core.ColorBrightGreen)
	scr.DrawTextColored(area.Right()-utf8.RuneCountInString(right), area.Y, right, core.ColorWhite)
}

// drawCell fills one board cell, cellWidth characters wide.
func drawCell(scr *core.Screen, inner core.Rect, c engine.Cell, r rune, color core.Color) {
	x := inner.X + c.Col*cellWidth
	y := inner.Y + c.Row
	for i := range cellWidth {
		scr.SetColored(x+i, y, r, color)
	}
}

// drawOverlay draws a boxed message centered in area.
// On a board too small for the message the box is clipped to area.
func drawOverlay(scr *core.Screen, area core.Rect, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	box := core.CenterIn(area,
		core.Clamp(width+4, 0, area.W),
		core.Clamp(len(lines)+2, 0, area.H))
	scr.DrawRect(box, ' ', core.ColorDefault)
	scr.DrawBox(box, color)

	textW := max(0, box.W-2)
	for i, l := range lines {
		if i >= box.H-2 {
			break
		}
		r := []rune(l)
		if len(r) > textW {
			r = r[:textW]
		}
		x := box.X + (box.W-len(r))/2
		scr.DrawTextColored(x, box.Y+1+i, string(r), color)
	}
}

func drawTooSmall(scr *core.Screen, w, h int) {
	y := scr.Height()/2 - 1
	scr.DrawTextCentered(y, "Terminal too small", core.ColorYellow)
	scr.DrawTextCentered(y+1, fmt.Sprintf("need at least %dx%d", w, h+helpHeight), core.ColorGray)
}
