package dodge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	titles := map[string]string{}
	for _, info := range registry.List() {
		titles[info.ID] = info.Title
	}

	assert.Equal(t, "Back to the Future", titles["bttf"])
	assert.Equal(t, "Rainfall", titles["rainfall"])
	assert.Equal(t, "Comet Run", titles["comets"])
	assert.Equal(t, []string{"bttf", "comets", "rainfall"}, Variants)
}

func TestGameRunsThroughRegistry(t *testing.T) {
	for _, id := range Variants {
		t.Run(id, func(t *testing.T) {
			g, err := registry.Create(id)
			require.NoError(t, err)
			g.Reset(core.RuntimeConfig{Seed: 99, TickRate: 60})

			start := core.NewInputFrame()
			start.Press(core.ActionStart)
			res := g.Step(start, 0)
			assert.Equal(t, core.PhasePlaying, res.State.Phase)

			for range 30 {
				g.Step(core.NewInputFrame(), time.Second/60)
			}
			assert.NotEmpty(t, g.Draw().Texts())
		})
	}
}

func TestConfigFallsBackToDefault(t *testing.T) {
	g := New("comets")
	g.loadFn = func(string, string) (config.GameConfig, error) {
		return config.GameConfig{}, errors.New("disk on fire")
	}

	assert.Equal(t, config.MustDefault("comets"), g.Config())
}

func TestConfigUsesCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bttf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu:\n  title: OUTATIME\n"), 0o644))

	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New("bttf")
	assert.Equal(t, "OUTATIME", g.Config().Menu.Title)
	assert.Equal(t, "Back to the Future", g.Title())
}

func TestStepBeforeReset(t *testing.T) {
	g := New("rainfall")
	assert.Equal(t, core.PhaseMenu, g.State().Phase)
	assert.Nil(t, g.Draw())

	res := g.Step(core.NewInputFrame(), 0)
	assert.Equal(t, core.PhaseMenu, res.State.Phase)
}
