package config

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// Build converts the file into engine levels, in file order.
// seed drives random levels that do not pin their own seed; 0 means time based.
func (f File) Build(seed int64) ([]engine.Level, error) {
	levels := make([]engine.Level, 0, len(f.Levels))
	for _, spec := range f.Levels {
		level, err := spec.Level(seed)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// Level converts the spec into a validated engine level.
func (s LevelSpec) Level(seed int64) (engine.Level, error) {
	level := engine.Level{
		Name:          s.Name,
		Cols:          s.Cols,
		Rows:          s.Rows,
		Interval:      time.Duration(s.IntervalMS) * time.Millisecond,
		AllowReversal: s.AllowReversal,
		TargetApples:  s.TargetApples,
		Next:          s.Next,
	}

	var err error
	if s.Random != nil {
		level.Apples, err = s.randomApples(seed)
	} else {
		level.Apples, err = points(s.Apples)
	}
	if err != nil {
		return engine.Level{}, fmt.Errorf("level %q: apples: %w", s.Name, err)
	}

	if len(s.Start) > 0 {
		if level.Start, err = points(s.Start); err != nil {
			return engine.Level{}, fmt.Errorf("level %q: start: %w", s.Name, err)
		}
		if level.StartDir, err = core.ParseDirection(s.StartDir); err != nil {
			return engine.Level{}, fmt.Errorf("level %q: start_dir: %w", s.Name, err)
		}
	}

	if err := level.Validate(); err != nil {
		return engine.Level{}, fmt.Errorf("level %q: %w", s.Name, err)
	}
	return level, nil
}

// randomApples draws distinct cells from the grid.
func (s LevelSpec) randomApples(seed int64) ([]core.Point, error) {
	if s.Cols <= 0 || s.Rows <= 0 {
		return nil, fmt.Errorf("grid %dx%d has no cells", s.Cols, s.Rows)
	}
	if s.Random.Count <= 0 {
		return nil, fmt.Errorf("random count must be positive, got %d", s.Random.Count)
	}

	if s.Random.Seed != 0 {
		seed = s.Random.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cells := s.Cols * s.Rows
	count := min(s.Random.Count, cells)
	perm := rng.Perm(cells)

	apples := make([]core.Point, count)
	for i := range apples {
		apples[i] = core.Point{X: perm[i] % s.Cols, Y: perm[i] / s.Cols}
	}
	return apples, nil
}

func points(specs []PointSpec) ([]core.Point, error) {
	out := make([]core.Point, len(specs))
	for i, p := range specs {
		if len(p) != 2 {
			return nil, fmt.Errorf("entry %d: expected [x, y], got %v", i, []int(p))
		}
		out[i] = core.Point{X: p[0], Y: p[1]}
	}
	return out, nil
}
