// Package world holds the shared simulation behind every dodge variant:
// player movement, spawning, movement, collisions, pruning and the
// menu/playing/game-over state machine. It has no frontend dependencies;
// input arrives as core.InputFrame and output leaves as cues and a draw list.
package world

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// World owns all state of one running game. It is not safe for concurrent
// use; the frontend's frame loop is its only caller.
type World struct {
	cfg   config.GameConfig
	field core.Vec2
	rng   *rand.Rand

	player   Player
	entities []Entity
	spawner  *Spawner

	phase  core.Phase
	score  int
	paused bool
	clock  time.Duration // drives the floating menu title

	cues []core.Cue
}

// New creates a world in the Menu phase. Sprite sizes in rt, when set,
// replace the configured entity sizes.
func New(cfg config.GameConfig, rt core.RuntimeConfig) *World {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := &World{
		cfg:      cfg,
		field:    core.V(cfg.Playfield.Width, cfg.Playfield.Height),
		rng:      rand.New(rand.NewSource(seed)),
		entities: make([]Entity, 0, 32),
	}

	w.player.Size = pick(rt.Sprites.Player, core.V(cfg.Player.Width, cfg.Player.Height))
	obstacle := Template{
		Shape: cfg.Obstacles.Shape,
		Size:  pick(rt.Sprites.Obstacle, cfg.Obstacles.Size()),
		Speed: cfg.Obstacles.Speed,
	}
	collectible := Template{
		Shape: cfg.Collectibles.Shape,
		Size:  pick(rt.Sprites.Collectible, cfg.Collectibles.Size()),
		Speed: cfg.Collectibles.Speed,
	}
	w.spawner = NewSpawner(cfg, obstacle, collectible, w.rng)

	w.player.Center(w.field)
	w.enterMenu()
	return w
}

// pick returns override unless it is the zero vector.
func pick(override, fallback core.Vec2) core.Vec2 {
	if override.IsZero() {
		return fallback
	}
	return override
}

// Step advances one frame. dt is the wall-clock time since the previous
// frame and only feeds timers; movement is per frame.
func (w *World) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	switch w.phase {
	case core.PhaseMenu:
		w.updateMenu(in, dt)
	case core.PhasePlaying:
		w.updatePlaying(in, dt)
	case core.PhaseGameOver:
		w.updateGameOver(in)
	}

	res := core.StepResult{State: w.State(), Cues: w.cues}
	w.cues = nil
	return res
}

func (w *World) updateMenu(in core.InputFrame, dt time.Duration) {
	w.clock += dt
	if in.Has(core.ActionStart) {
		w.start()
	}
}

func (w *World) updatePlaying(in core.InputFrame, dt time.Duration) {
	if in.Has(core.ActionPause) {
		w.paused = !w.paused
	}
	if w.paused {
		return
	}

	w.player.Steer(in, w.cfg.Player, w.field)
	w.entities = append(w.entities, w.spawner.Update(dt)...)
	moveEntities(w.entities)

	var out Outcome
	w.entities, out = resolveCollisions(w.player.Bounds(), w.entities)
	if out.Hit {
		w.fail()
		return
	}
	if out.Collected > 0 {
		w.score += out.Points
		w.emit(core.Cue{Kind: core.CuePickup})
	}

	w.entities, _ = Prune(w.entities, w.cfg.Spawner.Edge, w.field)
}

func (w *World) updateGameOver(in core.InputFrame) {
	if in.Has(core.ActionStart) {
		w.enterMenu()
	}
}

// start begins a fresh run from the menu.
func (w *World) start() {
	w.score = 0
	w.paused = false
	clear(w.entities)
	w.entities = w.entities[:0]
	w.player.Center(w.field)
	w.spawner.Reset()

	track := -1
	if n := len(w.cfg.Assets.GameMusic); n > 0 {
		track = w.rng.Intn(n)
	}
	w.emit(core.Cue{Kind: core.CueMenuMusicStop})
	w.emit(core.Cue{Kind: core.CueGameMusicStart, Track: track})
	w.phase = core.PhasePlaying
}

// fail ends the run after an obstacle hit. The score is left as it was.
func (w *World) fail() {
	w.player.Vel = core.Vec2{}
	w.emit(core.Cue{Kind: core.CueGameMusicStop})
	w.emit(core.Cue{Kind: core.CueFailure})
	if w.cfg.Flow.GameOverScreen {
		w.phase = core.PhaseGameOver
		return
	}
	w.enterMenu()
}

func (w *World) enterMenu() {
	w.phase = core.PhaseMenu
	w.paused = false
	w.emit(core.Cue{Kind: core.CueMenuMusicStart})
}

func (w *World) emit(c core.Cue) {
	if c.Kind != core.CueGameMusicStart {
		c.Track = -1
	}
	w.cues = append(w.cues, c)
}

// State returns a snapshot for the frontend.
func (w *World) State() core.GameState {
	return core.GameState{Phase: w.phase, Score: w.score, Paused: w.paused}
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.GameConfig {
	return w.cfg
}

// Field returns the playfield size.
func (w *World) Field() core.Vec2 {
	return w.field
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Entities returns the live entities. The slice is owned by the world and
// only valid until the next Step.
func (w *World) Entities() []Entity {
	return w.entities
}
