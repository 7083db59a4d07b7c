package config

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultYAML returns the embedded default levels file.
func DefaultYAML() []byte {
	return defaultLevelsYAML
}

// DefaultFile returns a minimal hardcoded level set, used when the embedded
// YAML cannot be parsed.
func DefaultFile() File {
	return File{
		Levels: []LevelSpec{
			{
				Name:       "easy",
				Cols:       20,
				Rows:       12,
				IntervalMS: 300,
				Apples: []PointSpec{
					{8, 6}, {15, 3}, {4, 9}, {17, 10}, {10, 1}, {2, 2},
				},
			},
		},
	}
}
