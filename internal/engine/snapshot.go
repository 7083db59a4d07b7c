package engine

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete session state for determinism checks and
// replay dumps.
type Snapshot struct {
	Level      string       `yaml:"level"`
	Tick       uint64       `yaml:"tick"`
	State      string       `yaml:"state"`
	Score      int          `yaml:"score"`
	Direction  string       `yaml:"direction"`
	Pending    string       `yaml:"pending"`
	Snake      []core.Point `yaml:"snake,flow"`
	Apple      *core.Point  `yaml:"apple,omitempty,flow"`
	SpawnIndex int          `yaml:"spawn_index"`
}

// Snapshot returns the current session snapshot.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Level:      e.level.Name,
		Tick:       e.ticks,
		State:      e.state.String(),
		Score:      e.eaten,
		Direction:  e.direction.String(),
		Pending:    e.pending.String(),
		Snake:      e.Snake(),
		SpawnIndex: e.spawnIndex,
	}
	if e.hasApple {
		apple := e.apple
		snap.Apple = &apple
	}
	return snap
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Level != o.Level || s.Tick != o.Tick || s.State != o.State ||
		s.Score != o.Score || s.Direction != o.Direction || s.Pending != o.Pending ||
		s.SpawnIndex != o.SpawnIndex || len(s.Snake) != len(o.Snake) {
		return false
	}
	if (s.Apple == nil) != (o.Apple == nil) {
		return false
	}
	if s.Apple != nil && *s.Apple != *o.Apple {
		return false
	}
	for i := range s.Snake {
		if s.Snake[i] != o.Snake[i] {
			return false
		}
	}
	return true
}
