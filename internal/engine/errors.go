package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrNoValidSpawn is matched by every *NoValidSpawnError.
	ErrNoValidSpawn = errors.New("engine: no valid apple spawn")

	// ErrNotRunning is returned when an operation needs a running session.
	ErrNotRunning = errors.New("engine: session is not running")

	// ErrInvalidTransition is returned by Pause/Resume from a state that
	// does not allow them.
	ErrInvalidTransition = errors.New("engine: invalid state transition")
)

// InvalidInputError reports a malformed direction or level.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("engine: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field string, value any, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}

// NoValidSpawnError reports that every apple candidate of the level is
// covered by the snake.
type NoValidSpawnError struct {
	Level      string
	Candidates int
}

func (e *NoValidSpawnError) Error() string {
	return fmt.Sprintf("engine: level %q: all %d apple candidates are occupied", e.Level, e.Candidates)
}

func (e *NoValidSpawnError) Is(target error) bool {
	return target == ErrNoValidSpawn
}
