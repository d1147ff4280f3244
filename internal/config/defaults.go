package config

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// IDs returns the IDs of all games with an embedded default config, sorted.
func IDs() []string {
	entries, err := defaultFS.ReadDir("defaults")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(ids)
	return ids
}

// DefaultYAML returns the embedded default YAML for a game, or nil if unknown.
func DefaultYAML(gameID string) []byte {
	data, err := defaultFS.ReadFile(path.Join("defaults", gameID+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// Default returns the embedded default configuration for a game.
func Default(gameID string) (GameConfig, error) {
	var cfg GameConfig
	data := DefaultYAML(gameID)
	if data == nil {
		return cfg, fmt.Errorf("config: no default config for game %q", gameID)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: embedded default for %q is broken: %w", gameID, err)
	}
	return cfg, nil
}

// MustDefault is Default for built-in IDs; it panics on unknown IDs.
// Used by game registration and tests.
func MustDefault(gameID string) GameConfig {
	cfg, err := Default(gameID)
	if err != nil {
		panic(err)
	}
	return cfg
}
