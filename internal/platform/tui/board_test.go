package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

func boardLevel() engine.Level {
	return engine.Level{
		Name:     "t",
		Cols:     10,
		Rows:     5,
		Interval: 100 * time.Millisecond,
		Apples:   []core.Point{{X: 8, Y: 0}},
	}
}

func boardView(t *testing.T) BoardView {
	t.Helper()
	e, err := engine.New(boardLevel())
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	return ViewOf(e)
}

func TestDrawBoardPlacesGlyphs(t *testing.T) {
	v := boardView(t)
	screen := core.NewScreen(40, 20)
	DrawBoard(screen, v)

	// Board box is 12x7 centered below the two HUD rows: top-left at (14, 7).
	if got := screen.Get(14, 7); got != '┌' {
		t.Errorf("box corner = %q, expected '┌'", got)
	}

	tests := []struct {
		name  string
		x, y  int
		glyph rune
		color core.Color
	}{
		{"head", 16, 10, glyphHead, core.ColorSnakeHead},
		{"tail", 15, 10, glyphBody, core.ColorSnakeBody},
		{"apple", 23, 8, glyphApple, core.ColorApple},
	}
	for _, tc := range tests {
		cell := screen.GetCell(tc.x, tc.y)
		if cell.Rune != tc.glyph || cell.Color != tc.color {
			t.Errorf("%s at (%d,%d) = %q/%d, expected %q/%d", tc.name, tc.x, tc.y, cell.Rune, cell.Color, tc.glyph, tc.color)
		}
	}

	if hud := screen.Row(0); !strings.Contains(hud, "Snake: t") || !strings.Contains(hud, "Length: 2") {
		t.Errorf("HUD missing level or length: %q", hud)
	}
}

func TestDrawBoardTooSmall(t *testing.T) {
	v := boardView(t)
	screen := core.NewScreen(30, 6)
	DrawBoard(screen, v)

	content := screen.String()
	if !strings.Contains(content, "Window too small") {
		t.Error("expected too-small overlay")
	}
	if strings.ContainsRune(content, glyphHead) {
		t.Error("board should not be drawn when it does not fit")
	}
}

func TestDrawBoardOverlays(t *testing.T) {
	tests := []struct {
		name  string
		state engine.State
		next  string
		err   error
		want  string
	}{
		{"paused", engine.StatePaused, "", nil, "Paused"},
		{"game over", engine.StateGameOver, "", nil, "Game Over"},
		{"cleared with next", engine.StateCleared, "hard", nil, "Enter: hard"},
		{"cleared last", engine.StateCleared, "", nil, "Final score"},
		{"error", engine.StateRunning, "", errors.New("no room"), "no room"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := boardView(t)
			v.State = tc.state
			v.Next = tc.next
			v.Err = tc.err

			screen := core.NewScreen(40, 20)
			DrawBoard(screen, v)
			if !strings.Contains(screen.String(), tc.want) {
				t.Errorf("expected overlay containing %q", tc.want)
			}
		})
	}
}

func TestBoardViewApply(t *testing.T) {
	e, err := engine.New(boardLevel())
	if err != nil {
		t.Fatal(err)
	}
	v := ViewOf(e)

	res, err := e.Tick()
	if err != nil {
		t.Fatal(err)
	}
	v.Apply(res)

	if v.Tick != 1 || v.Snake[0] != (core.Point{X: 2, Y: 2}) {
		t.Errorf("view not updated from tick: tick=%d head=%v", v.Tick, v.Snake[0])
	}
	if v.State != engine.StateRunning {
		t.Errorf("state = %v, expected running", v.State)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(5, 1)
	screen.DrawText(0, 0, "ab", core.ColorHUD)
	screen.SetColor(3, 0, glyphApple, core.ColorApple)

	out := RenderScreen(screen)
	if !strings.Contains(out, "ab") || !strings.ContainsRune(out, glyphApple) {
		t.Errorf("rendered output lost content: %q", out)
	}
}
