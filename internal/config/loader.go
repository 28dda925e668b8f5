package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local override, relative to the working directory.
const LocalPath = "configs/snake.yaml"

// Load loads the platform configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
// Only a broken customPath is an error; broken fallbacks are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// UserPath returns a path inside ~/.snake, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".snake"}, elem...)...)
}
