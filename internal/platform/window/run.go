package window

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/platform/sound"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
)

// Run opens a window for game and blocks until it closes. Assets are loaded
// before the window opens, so a missing required sprite fails fast.
func Run(game registry.Game, rt core.RuntimeConfig, assetsDir string, logger *log.Logger) error {
	cfg := game.Config()

	assets, err := LoadAssets(cfg, assetsDir, logger)
	if err != nil {
		return err
	}

	rt.Sprites = assets.SpriteSizes()
	game.Reset(rt)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(windowSize(cfg.Playfield.Width, cfg.Playfield.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	logger.Info("session start", "game", game.ID(), "window", true, "font", assets.HasFont)

	g := NewGame(game, assets, sound.NewMixer(assets.Sounds.Set(), logger), logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	logger.Info("session end", "game", game.ID(), "score", game.State().Score)
	return nil
}

// maxWindowSide keeps large playfields on ordinary screens; the logical
// resolution is unchanged and ebiten scales the frame down.
const maxWindowSide = 900

func windowSize(w, h float64) (int, int) {
	if side := max(w, h); side > maxWindowSide {
		k := maxWindowSide / side
		w, h = w*k, h*k
	}
	return int(w), int(h)
}
