package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadLevelsEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadLevels("")
	if err != nil {
		t.Fatalf("LoadLevels() failed: %v", err)
	}

	want := []string{"easy", "medium", "hard", "random"}
	if len(cfg.Levels) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(cfg.Levels))
	}
	for i, name := range want {
		if cfg.Levels[i].Name != name {
			t.Errorf("level %d name = %q, expected %q", i, cfg.Levels[i].Name, name)
		}
	}

	levels, err := cfg.Build(42)
	if err != nil {
		t.Fatalf("default levels should all build, got %v", err)
	}
	for _, l := range levels {
		if _, err := engine.New(l); err != nil {
			t.Errorf("level %q cannot start a session: %v", l.Name, err)
		}
	}
}

func TestLoadLevelsLocalOverridesDefault(t *testing.T) {
	isolate(t)

	yaml := []byte(`levels:
  - name: tiny
    cols: 4
    rows: 3
    interval_ms: 250
    apples: [[3, 0], [0, 2]]
`)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", LevelsFileName), yaml, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLevels("")
	if err != nil {
		t.Fatalf("LoadLevels() failed: %v", err)
	}
	if len(cfg.Levels) != 1 || cfg.Levels[0].Name != "tiny" {
		t.Fatalf("expected local levels file to win, got %+v", cfg.Levels)
	}

	level, err := cfg.Levels[0].Level(0)
	if err != nil {
		t.Fatalf("Level() failed: %v", err)
	}
	if level.Interval != 250*time.Millisecond {
		t.Errorf("Interval = %v, expected 250ms", level.Interval)
	}
	if len(level.Apples) != 2 || level.Apples[1] != (core.Point{X: 0, Y: 2}) {
		t.Errorf("Apples = %v", level.Apples)
	}
}

func TestLoadLevelsCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadLevels(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: [::"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLevels(bad); err == nil {
		t.Error("malformed custom file should fail")
	}
}

func TestParseRejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "levels: []"},
		{"missing name", "levels:\n  - cols: 4\n"},
		{"duplicate", "levels:\n  - name: a\n  - name: a\n"},
		{"unknown next", "levels:\n  - name: a\n    next: b\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestLevelSpecValidation(t *testing.T) {
	spec := LevelSpec{
		Name:       "bad",
		Cols:       5,
		Rows:       5,
		IntervalMS: 100,
		Apples:     []PointSpec{{9, 9}},
	}

	_, err := spec.Level(0)
	if !errors.Is(err, engine.ErrInvalidInput) {
		t.Errorf("out-of-bounds apple error = %v, expected ErrInvalidInput", err)
	}

	spec.Apples = []PointSpec{{1, 2, 3}}
	if _, err := spec.Level(0); err == nil {
		t.Error("malformed point should fail")
	}

	spec.Apples = []PointSpec{{1, 1}}
	spec.Start = []PointSpec{{3, 3}, {3, 4}}
	spec.StartDir = "sideways"
	if _, err := spec.Level(0); err == nil {
		t.Error("unknown start_dir should fail")
	}

	spec.StartDir = "up"
	level, err := spec.Level(0)
	if err != nil {
		t.Fatalf("valid spec failed: %v", err)
	}
	if level.StartDir != core.DirUp || len(level.Start) != 2 {
		t.Errorf("start = %v %v, expected 2 segments moving up", level.Start, level.StartDir)
	}
}

func TestRandomLevelDeterministic(t *testing.T) {
	spec := LevelSpec{
		Name:       "random",
		Cols:       6,
		Rows:       4,
		IntervalMS: 100,
		Random:     &RandomSpec{Count: 10},
	}

	a, err := spec.Level(7)
	if err != nil {
		t.Fatalf("Level() failed: %v", err)
	}
	b, err := spec.Level(7)
	if err != nil {
		t.Fatalf("Level() failed: %v", err)
	}

	if len(a.Apples) != 10 {
		t.Fatalf("expected 10 candidates, got %d", len(a.Apples))
	}
	seen := make(map[core.Point]bool)
	for i := range a.Apples {
		if a.Apples[i] != b.Apples[i] {
			t.Fatalf("same seed produced different candidates at %d: %v vs %v", i, a.Apples[i], b.Apples[i])
		}
		if !a.Bounds().Contains(a.Apples[i]) {
			t.Errorf("candidate %v outside grid", a.Apples[i])
		}
		if seen[a.Apples[i]] {
			t.Errorf("duplicate candidate %v", a.Apples[i])
		}
		seen[a.Apples[i]] = true
	}
}

func TestRandomLevelCountCapped(t *testing.T) {
	spec := LevelSpec{
		Name:       "crowded",
		Cols:       3,
		Rows:       2,
		IntervalMS: 100,
		Random:     &RandomSpec{Count: 100, Seed: 1},
	}

	level, err := spec.Level(0)
	if err != nil {
		t.Fatalf("Level() failed: %v", err)
	}
	if len(level.Apples) != 6 {
		t.Errorf("candidates should be capped at the cell count, got %d", len(level.Apples))
	}

	spec.Random.Count = 0
	if _, err := spec.Level(0); err == nil {
		t.Error("zero random count should fail")
	}
}

func TestFallbackLevelsBuild(t *testing.T) {
	if _, err := Parse(DefaultYAML()); err != nil {
		t.Fatalf("embedded levels do not parse: %v", err)
	}

	levels, err := DefaultFile().Build(0)
	if err != nil {
		t.Fatalf("hardcoded fallback does not build: %v", err)
	}
	if len(levels) != 1 || levels[0].Name != "easy" {
		t.Errorf("unexpected fallback levels: %+v", levels)
	}
}
