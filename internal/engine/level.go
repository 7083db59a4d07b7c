package engine

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Level bundles the grid size, apple candidates and speed of one play session.
// A Level is treated as read-only once handed to New.
type Level struct {
	Name     string
	Cols     int
	Rows     int
	Interval time.Duration // Time between ticks

	// Apples is the ordered list of spawn candidates, cycled with wraparound.
	Apples []core.Point

	// Start optionally overrides the initial body (head first).
	// StartDir is required when Start is set.
	Start    []core.Point
	StartDir core.Direction

	// AllowReversal lets the snake turn straight back into its neck.
	// When false, a request for the opposite of the last travelled
	// direction is ignored.
	AllowReversal bool

	// TargetApples ends the level as cleared once that many apples are
	// eaten. Zero means the level never clears.
	TargetApples int

	// Next names the level that follows a clear.
	Next string
}

// Bounds returns the grid as a rectangle anchored at the origin.
func (l Level) Bounds() core.Rect {
	return core.NewRect(0, 0, l.Cols, l.Rows)
}

// Validate checks that the level can host a session.
func (l Level) Validate() error {
	if l.Cols < 1 {
		return invalid("cols", l.Cols, "need at least 1 column")
	}
	if len(l.Start) == 0 && l.Cols < 2 {
		return invalid("cols", l.Cols, "need at least 2 columns for the default horizontal snake")
	}
	if l.Rows < 1 {
		return invalid("rows", l.Rows, "need at least 1 row")
	}
	if l.Interval <= 0 {
		return invalid("interval", l.Interval, "must be positive")
	}
	if len(l.Apples) == 0 {
		return invalid("apples", len(l.Apples), "need at least one spawn candidate")
	}
	if l.TargetApples < 0 {
		return invalid("target_apples", l.TargetApples, "must not be negative")
	}

	bounds := l.Bounds()
	for i, p := range l.Apples {
		if !bounds.Contains(p) {
			return invalid("apples", p, "candidate %d outside %dx%d grid", i, l.Cols, l.Rows)
		}
	}

	if len(l.Start) > 0 {
		return l.validateStart()
	}
	return nil
}

func (l Level) validateStart() error {
	if len(l.Start) < 2 {
		return invalid("start", l.Start, "snake needs at least 2 segments")
	}
	if !l.StartDir.Valid() {
		return invalid("start_dir", l.StartDir, "must be up, down, left or right")
	}

	bounds := l.Bounds()
	seen := make(map[core.Point]bool, len(l.Start))
	for i, p := range l.Start {
		if !bounds.Contains(p) {
			return invalid("start", p, "segment %d outside %dx%d grid", i, l.Cols, l.Rows)
		}
		if seen[p] {
			return invalid("start", p, "segment %d duplicates an earlier segment", i)
		}
		seen[p] = true
		if i > 0 && !adjacent(l.Start[i-1], p) {
			return invalid("start", p, "segment %d does not touch segment %d", i, i-1)
		}
	}

	if l.Start[0].Add(l.StartDir.Delta()) == l.Start[1] {
		return invalid("start_dir", l.StartDir, "points back into the neck at %v", l.Start[1])
	}
	return nil
}

// adjacent reports whether a and b share an edge.
func adjacent(a, b core.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

// initialBody returns the starting snake and direction for the level.
func (l Level) initialBody() ([]core.Point, core.Direction) {
	if len(l.Start) > 0 {
		body := make([]core.Point, len(l.Start))
		copy(body, l.Start)
		return body, l.StartDir
	}

	row := l.Rows / 2
	return []core.Point{
		{X: 1, Y: row}, // Head
		{X: 0, Y: row},
	}, core.DirRight
}
