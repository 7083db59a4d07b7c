// Package engine implements the snake simulation: grid geometry, body state,
// apple placement, movement and collision rules, and the session lifecycle.
//
// The engine is pure. It never sleeps, logs or draws; an external clock calls
// Tick at the level's interval and a renderer consumes the returned TickResult.
// An Engine has a single mutator and holds no lock: callers must not run Tick
// concurrently with any other method.
package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
	StateCleared
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks are possible in this session.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateCleared
}

// Outcome describes what a single tick did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMoved
	OutcomeAte
	OutcomeHitWall
	OutcomeHitSelf
	OutcomeCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHitWall:
		return "hit_wall"
	case OutcomeHitSelf:
		return "hit_self"
	case OutcomeCleared:
		return "cleared"
	default:
		return "none"
	}
}

// TickResult is the state diff produced by one tick.
type TickResult struct {
	Tick    uint64
	State   State
	Outcome Outcome
	Ate     bool

	Head       core.Point
	Vacated    core.Point // Tail cell freed by this tick
	HasVacated bool

	Apple    core.Point
	HasApple bool

	Snake []core.Point // Copy of the body, head first
	Score int
}

// Terminal reports whether the tick ended the session.
func (r TickResult) Terminal() bool {
	return r.State.Terminal()
}

// Engine is one play session on one level.
type Engine struct {
	level Level

	snake     []core.Point // Head at index 0
	direction core.Direction
	pending   core.Direction

	apple      core.Point
	hasApple   bool
	spawnIndex int

	state State
	ticks uint64
	eaten int
}

// New creates a running session for the level.
// It fails with an *InvalidInputError for a malformed level and with a
// *NoValidSpawnError when no candidate is free for the first apple.
func New(level Level) (*Engine, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	// Private copy so later changes to the caller's slices cannot leak in.
	level.Apples = append([]core.Point(nil), level.Apples...)
	level.Start = append([]core.Point(nil), level.Start...)

	body, dir := level.initialBody()
	e := &Engine{
		level:     level,
		snake:     body,
		direction: dir,
		pending:   dir,
	}

	if err := e.SpawnApple(); err != nil {
		return nil, err
	}

	e.state = StateRunning
	return e, nil
}

// SetDirection sets the direction used by the next tick. Between two ticks
// the last accepted call wins.
//
// Unless the level allows reversal, a request for the opposite of the
// direction travelled by the previous tick is ignored.
func (e *Engine) SetDirection(d core.Direction) error {
	if !d.Valid() {
		return invalid("direction", int(d), "must be up, down, left or right")
	}
	if e.state != StateRunning && e.state != StatePaused {
		return fmt.Errorf("%w: cannot steer in state %s", ErrNotRunning, e.state)
	}
	if !e.level.AllowReversal && d == e.direction.Opposite() {
		return nil
	}
	e.pending = d
	return nil
}

// Tick advances the session by one step.
//
// Hitting the border or the body ends the session and is reported through
// the result, not as an error. Errors are reserved for caller bugs
// (ErrNotRunning) and exhausted apple candidates (*NoValidSpawnError), in
// which case the engine is left exactly as it was before the call.
func (e *Engine) Tick() (TickResult, error) {
	if e.state != StateRunning {
		return e.result(OutcomeNone), fmt.Errorf("%w: state is %s", ErrNotRunning, e.state)
	}

	dir := e.pending
	newHead := e.snake[0].Add(dir.Delta())

	if !e.level.Bounds().Contains(newHead) {
		e.ticks++
		e.direction = dir
		e.state = StateGameOver
		return e.result(OutcomeHitWall), nil
	}

	ate := e.hasApple && newHead == e.apple

	body := make([]core.Point, 0, len(e.snake)+1)
	body = append(body, newHead)
	var vacated core.Point
	hasVacated := false
	if ate {
		body = append(body, e.snake...)
	} else {
		tail := len(e.snake) - 1
		body = append(body, e.snake[:tail]...)
		vacated = e.snake[tail]
		hasVacated = true
	}

	eaten := e.eaten
	apple, hasApple, spawnIndex := e.apple, e.hasApple, e.spawnIndex
	cleared := false
	if ate {
		eaten++
		cleared = e.level.TargetApples > 0 && eaten >= e.level.TargetApples
		if cleared {
			hasApple = false
		} else {
			p, next, err := e.findSpawn(body)
			if err != nil {
				return e.result(OutcomeNone), err
			}
			apple, hasApple, spawnIndex = p, true, next
		}
	}

	// Commit.
	e.ticks++
	e.direction = dir
	e.snake = body
	e.eaten = eaten
	e.apple, e.hasApple, e.spawnIndex = apple, hasApple, spawnIndex

	outcome := OutcomeMoved
	switch {
	case hitsBody(body):
		e.state = StateGameOver
		outcome = OutcomeHitSelf
	case cleared:
		e.state = StateCleared
		outcome = OutcomeCleared
	case ate:
		outcome = OutcomeAte
	}

	res := e.result(outcome)
	res.Ate = ate
	res.Vacated, res.HasVacated = vacated, hasVacated
	return res, nil
}

// hitsBody reports whether the head shares a cell with any other segment.
func hitsBody(body []core.Point) bool {
	head := body[0]
	for _, seg := range body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Pause stops the session. Pausing a paused session is a no-op.
func (e *Engine) Pause() error {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
		return nil
	case StatePaused:
		return nil
	default:
		return fmt.Errorf("%w: cannot pause from %s", ErrInvalidTransition, e.state)
	}
}

// Resume restarts a paused session. Resuming a running session is a no-op.
func (e *Engine) Resume() error {
	switch e.state {
	case StatePaused:
		e.state = StateRunning
		return nil
	case StateRunning:
		return nil
	default:
		return fmt.Errorf("%w: cannot resume from %s", ErrInvalidTransition, e.state)
	}
}

func (e *Engine) result(outcome Outcome) TickResult {
	res := TickResult{
		Tick:     e.ticks,
		State:    e.state,
		Outcome:  outcome,
		Apple:    e.apple,
		HasApple: e.hasApple,
		Snake:    e.Snake(),
		Score:    e.eaten,
	}
	if len(e.snake) > 0 {
		res.Head = e.snake[0]
	}
	return res
}

// Level returns the session's level.
func (e *Engine) Level() Level {
	return e.level
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Snake returns a copy of the body, head first.
func (e *Engine) Snake() []core.Point {
	out := make([]core.Point, len(e.snake))
	copy(out, e.snake)
	return out
}

// Head returns the head position.
func (e *Engine) Head() core.Point {
	if len(e.snake) == 0 {
		return core.Point{}
	}
	return e.snake[0]
}

// Len returns the body length.
func (e *Engine) Len() int {
	return len(e.snake)
}

// Occupies reports whether any segment covers p.
func (e *Engine) Occupies(p core.Point) bool {
	return occupied(e.snake, p)
}

// Apple returns the active apple, if any.
func (e *Engine) Apple() (core.Point, bool) {
	return e.apple, e.hasApple
}

// Direction returns the direction travelled by the last tick.
func (e *Engine) Direction() core.Direction {
	return e.direction
}

// Pending returns the direction the next tick will use.
func (e *Engine) Pending() core.Direction {
	return e.pending
}

// SpawnIndex returns the candidate index the next spawn starts from.
func (e *Engine) SpawnIndex() int {
	return e.spawnIndex
}

// Score returns the number of apples eaten.
func (e *Engine) Score() int {
	return e.eaten
}

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}
