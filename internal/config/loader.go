package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LevelsFileName is the file name looked up in the user and local config
// directories.
const LevelsFileName = "levels.yaml"

// LoadLevels loads the level file.
// Search order: customPath -> ~/.snake/levels.yaml -> ./configs/levels.yaml -> embedded default.
// Only a custom path reports read or parse errors; the other locations are
// skipped when missing or malformed.
func LoadLevels(customPath string) (File, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return File{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return File{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(LevelsFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", LevelsFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultLevelsYAML)
	if err != nil {
		return DefaultFile(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a levels file and checks that level names are present and
// unique. Level geometry is validated when the level is built.
func Parse(data []byte) (File, error) {
	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, err
	}
	if len(cfg.Levels) == 0 {
		return File{}, fmt.Errorf("no levels defined")
	}

	seen := make(map[string]bool, len(cfg.Levels))
	for i, l := range cfg.Levels {
		if l.Name == "" {
			return File{}, fmt.Errorf("level %d has no name", i)
		}
		if seen[l.Name] {
			return File{}, fmt.Errorf("duplicate level name %q", l.Name)
		}
		seen[l.Name] = true
	}
	for _, l := range cfg.Levels {
		if l.Next != "" && !seen[l.Next] {
			return File{}, fmt.Errorf("level %q: next level %q is not defined", l.Name, l.Next)
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
