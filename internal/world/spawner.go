package world

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Template is the resolved shape, size and speed for one entity kind.
type Template struct {
	Shape config.ShapeKind
	Size  core.Vec2 // bounding size; circles use the smaller side as diameter
	Speed float64
}

// radius returns the circle radius for this template.
func (t Template) radius() float64 {
	return min(t.Size.X, t.Size.Y) / 2
}

// Spawner releases entities from one edge of the field on a fixed
// wall-clock interval.
type Spawner struct {
	elapsed     time.Duration
	interval    time.Duration
	edge        config.Edge
	oneIn       int
	minValue    int
	maxValue    int
	field       core.Vec2
	obstacle    Template
	collectible Template
	rng         *rand.Rand
}

// NewSpawner creates a spawner for the given config. The RNG is shared with
// the world so one seed reproduces a whole run.
func NewSpawner(cfg config.GameConfig, obstacle, collectible Template, rng *rand.Rand) *Spawner {
	return &Spawner{
		interval:    cfg.Spawner.SpawnInterval(),
		edge:        cfg.Spawner.Edge,
		oneIn:       max(cfg.Spawner.CollectibleOneIn, 1),
		minValue:    cfg.Collectibles.MinValue,
		maxValue:    cfg.Collectibles.MaxValue,
		field:       core.V(cfg.Playfield.Width, cfg.Playfield.Height),
		obstacle:    obstacle,
		collectible: collectible,
		rng:         rng,
	}
}

// Reset zeroes the spawn timer.
func (s *Spawner) Reset() {
	s.elapsed = 0
}

// Elapsed returns the time accumulated since the last spawn.
func (s *Spawner) Elapsed() time.Duration {
	return s.elapsed
}

// Update accumulates dt and, once more than the interval has passed, returns
// one obstacle and sometimes a collectible. The timer restarts from zero, so
// a long frame never produces a burst.
func (s *Spawner) Update(dt time.Duration) []Entity {
	s.elapsed += dt
	if s.elapsed <= s.interval {
		return nil
	}
	s.elapsed = 0

	spawned := []Entity{s.spawn(KindObstacle, s.obstacle)}
	if s.rng.Intn(s.oneIn) == 0 {
		c := s.spawn(KindCollectible, s.collectible)
		c.Value = s.value()
		spawned = append(spawned, c)
	}
	return spawned
}

func (s *Spawner) value() int {
	if s.maxValue <= s.minValue {
		return s.minValue
	}
	return s.minValue + s.rng.Intn(s.maxValue-s.minValue+1)
}

// spawn places an entity just outside the spawn edge at a uniform random
// coordinate along that edge.
func (s *Spawner) spawn(kind Kind, t Template) Entity {
	var along float64
	switch s.edge {
	case config.EdgeTop, config.EdgeBottom:
		along = s.rng.Float64() * s.field.X
	default:
		along = s.rng.Float64() * s.field.Y
	}

	return Entity{
		Kind: kind,
		Body: s.place(t, along),
		Vel:  s.direction().Scale(t.Speed),
	}
}

// place builds the shape touching the outside of the spawn edge.
func (s *Spawner) place(t Template, along float64) core.Shape {
	if t.Shape == config.ShapeCircle {
		r := t.radius()
		switch s.edge {
		case config.EdgeLeft:
			return core.NewCircle(-r, along, r)
		case config.EdgeTop:
			return core.NewCircle(along, -r, r)
		case config.EdgeBottom:
			return core.NewCircle(along, s.field.Y+r, r)
		default:
			return core.NewCircle(s.field.X+r, along, r)
		}
	}

	switch s.edge {
	case config.EdgeLeft:
		return core.NewBox(-t.Size.X, along, t.Size.X, t.Size.Y)
	case config.EdgeTop:
		return core.NewBox(along, -t.Size.Y, t.Size.X, t.Size.Y)
	case config.EdgeBottom:
		return core.NewBox(along, s.field.Y, t.Size.X, t.Size.Y)
	default:
		return core.NewBox(s.field.X, along, t.Size.X, t.Size.Y)
	}
}

// direction is the unit vector pointing away from the spawn edge.
func (s *Spawner) direction() core.Vec2 {
	switch s.edge {
	case config.EdgeLeft:
		return core.V(1, 0)
	case config.EdgeTop:
		return core.V(0, 1)
	case config.EdgeBottom:
		return core.V(0, -1)
	default:
		return core.V(-1, 0)
	}
}
