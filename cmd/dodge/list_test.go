package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
)

func TestGameTable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	out := gameTable(registry.List())

	for _, want := range []string{"bttf", "Back to the Future", "1200x1200", "right", "300ms", "game over", "rainfall", "title", "comets"} {
		assert.Contains(t, out, want)
	}
}

func TestGameTableUnknownGame(t *testing.T) {
	out := gameTable([]registry.GameInfo{{ID: "pong", Title: "Pong"}})
	assert.Contains(t, out, "Pong (config error)")
}

func TestListFormatting(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"field", fieldSize(config.Playfield{Width: 800, Height: 600}), "800x600"},
		{"fractional field", fieldSize(config.Playfield{Width: 640.5, Height: 360}), "640.5x360"},
		{"interval", spawnEvery(config.SpawnerConfig{Interval: 1.5}), "1.5s"},
		{"game over", onHit(config.Flow{GameOverScreen: true}), "game over"},
		{"title", onHit(config.Flow{}), "title"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %q, expected %q", tc.got, tc.expected)
			}
		})
	}
}
