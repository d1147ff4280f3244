// Package window is the desktop frontend: an ebiten window at the playfield
// resolution with sprites, TrueType text and audio.
package window

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/png" // sprite decoding
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Assets holds everything loaded from disk for one game. Optional assets
// that failed to load are nil; the flags are resolved once here so the
// frame loop never touches the filesystem.
type Assets struct {
	Player      *ebiten.Image
	Obstacle    *ebiten.Image
	Collectible *ebiten.Image

	MenuBackground *ebiten.Image
	GameBackground *ebiten.Image

	Font    *text.GoTextFaceSource
	HasFont bool

	Sounds *Sounds

	sizes core.SpriteSizes
}

// SpriteSizes returns the on-screen entity sizes implied by the loaded
// sprites and their configured scale. Missing sprites leave zero sizes.
func (a *Assets) SpriteSizes() core.SpriteSizes {
	return a.sizes
}

// LoadAssets loads the sprites, backgrounds, font and sounds named in cfg,
// with relative paths resolved against dir. A missing required sprite is an
// error; anything else that fails is logged and left out.
func LoadAssets(cfg config.GameConfig, dir string, logger *log.Logger) (*Assets, error) {
	a := &Assets{}
	var err error

	sprites := []struct {
		name   string
		sprite config.Sprite
		img    **ebiten.Image
		size   *core.Vec2
	}{
		{"player", cfg.Assets.PlayerSprite, &a.Player, &a.sizes.Player},
		{"obstacle", cfg.Assets.ObstacleSprite, &a.Obstacle, &a.sizes.Obstacle},
		{"collectible", cfg.Assets.CollectibleSprite, &a.Collectible, &a.sizes.Collectible},
	}
	for _, s := range sprites {
		if s.sprite.Path == "" {
			if s.sprite.Required {
				return nil, fmt.Errorf("window: %s sprite is required but no path is configured", s.name)
			}
			continue
		}
		*s.img, err = loadImage(dir, s.sprite.Path)
		if err != nil {
			if s.sprite.Required {
				return nil, fmt.Errorf("window: load %s sprite: %w", s.name, err)
			}
			logger.Warn("sprite unavailable, drawing shapes", "sprite", s.name, "error", err)
			continue
		}
		*s.size = scaledSize(*s.img, s.sprite.Scale)
	}

	a.MenuBackground = optionalImage(dir, cfg.Assets.MenuBackground, "menu background", logger)
	a.GameBackground = optionalImage(dir, cfg.Assets.GameBackground, "game background", logger)

	a.Font, err = loadFont(cfg.Assets.Fonts)
	if err != nil {
		logger.Warn("no usable font, text is hidden", "error", err)
	}
	a.HasFont = a.Font != nil

	a.Sounds = LoadSounds(cfg.Assets, dir, logger)
	return a, nil
}

// resolve makes p absolute against dir unless it already is.
func resolve(dir, p string) string {
	if filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}

func loadImage(dir, p string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(resolve(dir, p))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func optionalImage(dir, p, what string, logger *log.Logger) *ebiten.Image {
	if p == "" {
		return nil
	}
	img, err := loadImage(dir, p)
	if err != nil {
		logger.Warn("image unavailable", "image", what, "error", err)
		return nil
	}
	return img
}

func scaledSize(img *ebiten.Image, scale float64) core.Vec2 {
	if scale <= 0 {
		scale = 1
	}
	b := img.Bounds()
	return core.V(float64(b.Dx())*scale, float64(b.Dy())*scale)
}

// loadFont returns the first candidate that parses as a single TrueType or
// OpenType font.
func loadFont(candidates []string) (*text.GoTextFaceSource, error) {
	var errs []error
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			continue
		}
		return src, nil
	}
	if len(errs) == 0 {
		return nil, errors.New("no font candidates configured")
	}
	return nil, errors.Join(errs...)
}
