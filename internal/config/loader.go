package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a game.
// Search order: customPath -> ~/.dodge/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
//
// Files are decoded on top of the embedded default, so a file only needs the
// keys it changes. An explicit customPath must exist and parse; the
// well-known locations are skipped when missing or unreadable.
func Load(gameID, customPath string) (GameConfig, error) {
	cfg, err := Default(gameID)
	if err != nil {
		return cfg, err
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, finish(&cfg, gameID)
	}

	for _, p := range searchPaths(gameID) {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		overlay := cfg
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			continue
		}
		cfg = overlay
		break
	}

	return cfg, finish(&cfg, gameID)
}

// finish pins the ID to the requested game and validates the result.
func finish(cfg *GameConfig, gameID string) error {
	cfg.ID = gameID
	return cfg.Validate()
}

// searchPaths returns the well-known config locations for a game, in priority order.
func searchPaths(gameID string) []string {
	name := gameID + ".yaml"
	var paths []string
	if p := userConfigPath(name); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", name))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}

// Marshal renders a config back to YAML, used by `dodge config`.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal %q: %w", cfg.ID, err)
	}
	return data, nil
}
