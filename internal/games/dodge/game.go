// Package dodge registers the dodge variants: Back to the Future, Rainfall
// and Comet Run. All three share the world simulation and differ only in
// configuration.
package dodge

import (
	"time"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
	"github.com/vovakirdan/dodge-arcade/internal/world"
)

// Variants lists the built-in game IDs, one per embedded default config.
var Variants = config.IDs()

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a world to the registry interface.
type Game struct {
	id     string
	title  string
	cfg    *config.GameConfig // loaded on first use
	world  *world.World
	loadFn func(id, path string) (config.GameConfig, error)
}

// New creates a game for a built-in variant. The title comes from the
// embedded default so registration never touches the filesystem.
func New(id string) *Game {
	return &Game{
		id:     id,
		title:  config.MustDefault(id).Title,
		loadFn: config.Load,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Config returns the effective config. A config that fails to load falls
// back to the embedded default; the CLI reports such errors before starting.
func (g *Game) Config() config.GameConfig {
	if g.cfg == nil {
		cfg, err := g.loadFn(g.id, configPath)
		if err != nil {
			cfg = config.MustDefault(g.id)
		}
		g.cfg = &cfg
	}
	return *g.cfg
}

// Reset builds a fresh world in the menu phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.world = world.New(g.Config(), rt)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	return g.world.Step(in, dt)
}

// Draw returns the draw list for the current frame.
func (g *Game) Draw() core.DrawList {
	if g.world == nil {
		return nil
	}
	return g.world.Draw()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Phase: core.PhaseMenu}
	}
	return g.world.State()
}

// Register the variants with the registry
func init() {
	for _, id := range Variants {
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}
