package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/platform/sound"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
)

// keyBindings lists the physical keys for each action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionStart: {ebiten.KeySpace, ebiten.KeyEnter},
	core.ActionPause: {ebiten.KeyP},
	core.ActionBack:  {ebiten.KeyEscape},
	core.ActionQuit:  {ebiten.KeyQ},
}

// Game adapts a registry game to ebiten.Game.
type Game struct {
	game    registry.Game
	painter painter
	sink    sound.Sink
	logger  *log.Logger
	input   core.InputFrame
	last    time.Time
	phase   core.Phase
}

// NewGame wires a reset game to its assets. The caller resets the game with
// the sprite sizes from assets first.
func NewGame(game registry.Game, assets *Assets, sink sound.Sink, logger *log.Logger) *Game {
	pf := game.Config().Playfield
	return &Game{
		game:    game,
		painter: painter{assets: assets, field: core.V(pf.Width, pf.Height)},
		sink:    sink,
		logger:  logger,
		input:   core.NewInputFrame(),
		phase:   game.State().Phase,
	}
}

// Update polls the keyboard and advances the game by the wall-clock time
// since the previous update.
func (g *Game) Update() error {
	g.input.Clear()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if action.Directional() && ebiten.IsKeyPressed(k) {
				g.input.Hold(action)
			}
			if !action.Directional() && inpututil.IsKeyJustPressed(k) {
				g.input.Press(action)
			}
		}
	}

	// ebiten cannot reopen a window, so Esc closes it like Q does.
	if g.input.Has(core.ActionQuit) || g.input.Has(core.ActionBack) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := time.Second / time.Duration(ebiten.TPS())
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	res := g.game.Step(g.input, dt)
	if res.State.Phase != g.phase {
		g.logger.Info("phase", "game", g.game.ID(), "from", g.phase, "to", res.State.Phase, "score", res.State.Score)
		g.phase = res.State.Phase
	}
	g.sink.Play(res.Cues)
	return nil
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.paint(screen, g.game.Draw())
}

// Layout fixes the logical screen to the playfield; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	f := g.painter.field
	return int(f.X), int(f.Y)
}
