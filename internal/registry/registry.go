// Package registry is the level selector: a process-wide set of immutable
// levels, looked up by name when a session is created.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// LevelInfo contains display metadata about a registered level.
type LevelInfo struct {
	Name     string
	Cols     int
	Rows     int
	Interval string
	Apples   int
	Target   int
	Next     string
	Reversal bool
}

var (
	levels = make(map[string]engine.Level)
	order  []string
	mu     sync.RWMutex
)

// Register adds a level. Registering the same name twice is an error.
func Register(level engine.Level) error {
	if err := level.Validate(); err != nil {
		return fmt.Errorf("registry: level %q: %w", level.Name, err)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := levels[level.Name]; exists {
		return fmt.Errorf("registry: level %q already registered", level.Name)
	}
	levels[level.Name] = level
	order = append(order, level.Name)
	return nil
}

// Load replaces the registered levels with the given set.
func Load(ls []engine.Level) error {
	Reset()
	for _, l := range ls {
		if err := Register(l); err != nil {
			return err
		}
	}
	return nil
}

// Reset removes all registered levels.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	levels = make(map[string]engine.Level)
	order = nil
}

// List returns information about all registered levels in registration order.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(order))
	for _, name := range order {
		l := levels[name]
		result = append(result, LevelInfo{
			Name:     l.Name,
			Cols:     l.Cols,
			Rows:     l.Rows,
			Interval: l.Interval.String(),
			Apples:   len(l.Apples),
			Target:   l.TargetApples,
			Next:     l.Next,
			Reversal: l.AllowReversal,
		})
	}
	return result
}

// Names returns the registered level names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	return append([]string(nil), order...)
}

// Get returns the level registered under name.
func Get(name string) (engine.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := levels[name]
	if !ok {
		return engine.Level{}, fmt.Errorf("registry: unknown level %q", name)
	}
	return l, nil
}

// Exists checks if a level with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := levels[name]
	return ok
}

// Create starts a new session on the named level.
func Create(name string) (*engine.Engine, error) {
	l, err := Get(name)
	if err != nil {
		return nil, err
	}
	return engine.New(l)
}
