package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// hudRows is the number of screen rows above the board (status line and separator).
const hudRows = 2

// Board glyphs.
const (
	glyphHead  = '@'
	glyphBody  = 'o'
	glyphApple = '*'
)

// BoardView is everything the renderer needs to draw one frame.
// It is built from the engine once and then kept current from TickResults.
type BoardView struct {
	Level    string
	Cols     int
	Rows     int
	Snake    []core.Point // Head first
	Apple    core.Point
	HasApple bool
	Score    int
	Best     int
	Tick     uint64
	State    engine.State
	Next     string // Level unlocked by clearing this one
	Err      error  // Set when the engine stopped with an error
}

// ViewOf captures the current engine state.
func ViewOf(e *engine.Engine) BoardView {
	level := e.Level()
	apple, hasApple := e.Apple()
	return BoardView{
		Level:    level.Name,
		Cols:     level.Cols,
		Rows:     level.Rows,
		Snake:    e.Snake(),
		Apple:    apple,
		HasApple: hasApple,
		Score:    e.Score(),
		Tick:     e.Ticks(),
		State:    e.State(),
		Next:     level.Next,
	}
}

// Apply updates the view with the diff produced by one tick.
func (v *BoardView) Apply(res engine.TickResult) {
	v.Snake = res.Snake
	v.Apple = res.Apple
	v.HasApple = res.HasApple
	v.Score = res.Score
	v.Tick = res.Tick
	v.State = res.State
	if v.Score > v.Best {
		v.Best = v.Score
	}
}

// MinSize returns the smallest screen that fits the board and HUD.
func (v BoardView) MinSize() (w, h int) {
	return v.Cols + 2, v.Rows + 2 + hudRows
}

// DrawBoard renders the view onto dst.
func DrawBoard(dst *core.Screen, v BoardView) {
	dst.Clear()
	drawHUD(dst, v)

	minW, minH := v.MinSize()
	if dst.Width() < minW || dst.Height() < minH {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH), core.ColorOverlay)
		return
	}

	box := core.NewRect(
		(dst.Width()-minW)/2,
		hudRows+(dst.Height()-minH)/2,
		v.Cols+2,
		v.Rows+2,
	)
	dst.DrawBox(box, core.ColorWall)

	origin := core.Point{X: box.X + 1, Y: box.Y + 1}
	if v.HasApple {
		p := origin.Add(v.Apple)
		dst.SetColor(p.X, p.Y, glyphApple, core.ColorApple)
	}

	// Tail first so the head wins if a crash put it on a body cell.
	for i := len(v.Snake) - 1; i >= 0; i-- {
		p := origin.Add(v.Snake[i])
		switch {
		case i > 0:
			dst.SetColor(p.X, p.Y, glyphBody, core.ColorSnakeBody)
		case v.State == engine.StateGameOver:
			dst.SetColor(p.X, p.Y, glyphHead, core.ColorCrash)
		default:
			dst.SetColor(p.X, p.Y, glyphHead, core.ColorSnakeHead)
		}
	}

	switch {
	case v.Err != nil:
		drawOverlay(dst, "Stopped", v.Err.Error(), core.ColorCrash)
	case v.State == engine.StateCleared && v.Next != "":
		drawOverlay(dst, "Level cleared!", fmt.Sprintf("Enter: %s  R: replay", v.Next), core.ColorOverlay)
	case v.State == engine.StateCleared:
		drawOverlay(dst, "Level cleared!", fmt.Sprintf("Final score: %d", v.Score), core.ColorOverlay)
	case v.State == engine.StateGameOver:
		drawOverlay(dst, "Game Over", "Press R to restart", core.ColorCrash)
	case v.State == engine.StatePaused:
		drawOverlay(dst, "Paused", "Press P to continue", core.ColorOverlay)
	}
}

// drawHUD draws the status line and the separator under it.
func drawHUD(dst *core.Screen, v BoardView) {
	hud := fmt.Sprintf(" Snake: %s  Score: %d  Best: %d  Length: %d  [%s]",
		v.Level, v.Score, v.Best, len(v.Snake), v.State)
	dst.DrawText(0, 0, hud, core.ColorHUD)

	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorDim)
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(0, 0, textW+4, 5)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, line1, c)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDim)
}
