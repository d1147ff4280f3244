package window

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestLoadAssetsRequiredSpriteMissing(t *testing.T) {
	cfg := config.MustDefault("bttf")

	_, err := LoadAssets(cfg, t.TempDir(), quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player sprite")
}

func TestLoadAssetsRequiredSpriteWithoutPath(t *testing.T) {
	cfg := config.MustDefault("comets")
	cfg.Assets.ObstacleSprite = config.Sprite{Required: true}

	_, err := LoadAssets(cfg, t.TempDir(), quietLogger())
	assert.ErrorContains(t, err, "obstacle sprite is required")
}

func TestLoadAssetsOptionalDegrade(t *testing.T) {
	cfg := config.MustDefault("rainfall")
	cfg.Assets.Fonts = []string{filepath.Join(t.TempDir(), "missing.ttf")}
	cfg.Assets.MenuBackground = "nope.png"
	cfg.Assets.CollectibleSprite = config.Sprite{Path: "nope.png", Scale: 1}

	a, err := LoadAssets(cfg, t.TempDir(), quietLogger())
	require.NoError(t, err)

	assert.False(t, a.HasFont)
	assert.Nil(t, a.MenuBackground)
	assert.Nil(t, a.Collectible)
	assert.Equal(t, core.SpriteSizes{}, a.SpriteSizes())
	assert.Nil(t, a.Sounds.Menu)
	require.Len(t, a.Sounds.Game, len(cfg.Assets.GameMusic))
	assert.Nil(t, a.Sounds.Game[0])
	require.Len(t, a.Sounds.Failure, len(cfg.Assets.Failure))

	set := a.Sounds.Set()
	assert.Nil(t, set.Menu)
	assert.Nil(t, set.Pickup)
	require.Len(t, set.Game, len(cfg.Assets.GameMusic))
	assert.Nil(t, set.Game[0])
}

func TestLoadSoundsKeepsTrackSlots(t *testing.T) {
	a := config.Assets{
		GameMusic: []config.Sound{
			{Path: "audio/missing-1.wav", Volume: 0.5},
			{Path: "audio/missing-2.wav", Volume: 0.5},
			{Path: ""},
		},
		Failure: []config.Sound{{Path: "audio/missing-sting.wav"}, {Path: "audio/missing-vocal.wav"}},
	}

	s := LoadSounds(a, t.TempDir(), quietLogger())
	assert.Len(t, s.Game, 3)
	assert.Len(t, s.Failure, 2)

	set := s.Set()
	require.Len(t, set.Game, 3)
	for i, tr := range set.Game {
		// A typed nil inside the interface would make the mixer call a nil player.
		assert.True(t, tr == nil, "game track %d should be a nil Track", i)
	}
	require.Len(t, set.Failure, 2)
	assert.True(t, set.Failure[0] == nil)
}

func TestLoadFontNoCandidates(t *testing.T) {
	_, err := loadFont(nil)
	assert.ErrorContains(t, err, "no font candidates")
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := decode("theme.flac", nil)
	assert.ErrorContains(t, err, "unsupported audio format")
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("assets", "audio", "a.wav"), resolve("assets", "audio/a.wav"))
	assert.Equal(t, "/abs/a.wav", resolve("assets", "/abs/a.wav"))
	assert.Equal(t, "a.wav", resolve("", "a.wav"))
}

func TestPalette(t *testing.T) {
	assert.Equal(t, colornames.Red, rgba(core.ColorRed))
	assert.Equal(t, colornames.Whitesmoke, rgba(core.Color(200)))
	for c := core.ColorDefault; c <= core.ColorBlack; c++ {
		_, ok := palette[c]
		assert.True(t, ok, "palette misses %s", c)
	}
}

func TestFitGeoM(t *testing.T) {
	g := fitGeoM(core.V(32, 16), core.NewBox(100, 50, 64, 32))

	x, y := g.Apply(0, 0)
	assert.Equal(t, []float64{100, 50}, []float64{x, y})
	x, y = g.Apply(32, 16)
	assert.Equal(t, []float64{164, 82}, []float64{x, y})
}

func TestCoverGeoM(t *testing.T) {
	// A wide image on a square field scales to the height and crops the sides.
	g := coverGeoM(core.V(400, 200), core.V(1200, 1200))

	x0, y0 := g.Apply(0, 0)
	x1, y1 := g.Apply(400, 200)
	assert.InDelta(t, 0, y0, 1e-9)
	assert.InDelta(t, 1200, y1, 1e-9)
	assert.InDelta(t, -600, x0, 1e-9)
	assert.InDelta(t, 1800, x1, 1e-9)
}

func TestCenterGeoM(t *testing.T) {
	g := centerGeoM(core.V(200, 100), core.V(800, 600))
	x, y := g.Apply(0, 0)
	assert.Equal(t, []float64{300, 250}, []float64{x, y})
}

func TestWindowSize(t *testing.T) {
	w, h := windowSize(800, 600)
	assert.Equal(t, []int{800, 600}, []int{w, h})

	w, h = windowSize(1200, 1200)
	assert.Equal(t, []int{900, 900}, []int{w, h})
}
