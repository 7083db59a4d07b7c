// Package config provides YAML-based level configuration loading for the
// snake engine.
package config

// File is the top-level structure of a levels YAML file.
type File struct {
	Levels []LevelSpec `yaml:"levels"`
}

// LevelSpec describes one level as written in YAML.
type LevelSpec struct {
	Name          string      `yaml:"name"`
	Cols          int         `yaml:"cols"`
	Rows          int         `yaml:"rows"`
	IntervalMS    int         `yaml:"interval_ms"`
	Apples        []PointSpec `yaml:"apples"`
	Start         []PointSpec `yaml:"start"`
	StartDir      string      `yaml:"start_dir"`
	AllowReversal bool        `yaml:"allow_reversal"`
	TargetApples  int         `yaml:"target_apples"`
	Next          string      `yaml:"next"`
	Random        *RandomSpec `yaml:"random"`
}

// PointSpec is an [x, y] pair.
type PointSpec []int

// RandomSpec asks for generated apple candidates instead of a fixed list.
// The list is generated once, when the level is selected, so a session on
// it stays deterministic.
type RandomSpec struct {
	Count int   `yaml:"count"` // Number of candidates to generate
	Seed  int64 `yaml:"seed"`  // 0 = use the session seed
}
