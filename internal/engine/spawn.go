package engine

import "github.com/vovakirdan/tui-snake/internal/core"

// SpawnApple places the apple on the first candidate, starting at the spawn
// index and wrapping around the list, that is not covered by the snake. The
// index then points just past the chosen candidate.
//
// At most len(Apples) candidates are tried. When all are covered the
// engine is left untouched and a *NoValidSpawnError is returned.
func (e *Engine) SpawnApple() error {
	p, next, err := e.findSpawn(e.snake)
	if err != nil {
		return err
	}
	e.apple = p
	e.hasApple = true
	e.spawnIndex = next
	return nil
}

// findSpawn returns the chosen candidate and the index following it.
func (e *Engine) findSpawn(body []core.Point) (core.Point, int, error) {
	candidates := e.level.Apples
	n := len(candidates)
	for i := range n {
		idx := (e.spawnIndex + i) % n
		p := candidates[idx]
		if !occupied(body, p) {
			return p, (idx + 1) % n, nil
		}
	}
	return core.Point{}, e.spawnIndex, &NoValidSpawnError{Level: e.level.Name, Candidates: n}
}

func occupied(body []core.Point, p core.Point) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}
