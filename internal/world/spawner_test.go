package world

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

func newTestSpawner(id string, mutate func(*config.GameConfig)) *Spawner {
	cfg := config.MustDefault(id)
	if mutate != nil {
		mutate(&cfg)
	}
	ob := Template{Shape: cfg.Obstacles.Shape, Size: cfg.Obstacles.Size(), Speed: cfg.Obstacles.Speed}
	co := Template{Shape: cfg.Collectibles.Shape, Size: cfg.Collectibles.Size(), Speed: cfg.Collectibles.Speed}
	return NewSpawner(cfg, ob, co, rand.New(rand.NewSource(1)))
}

func TestSpawnerWaitsForInterval(t *testing.T) {
	s := newTestSpawner("bttf", nil)

	for i := range 18 {
		require.Empty(t, s.Update(frame), "frame %d", i)
	}
	spawned := s.Update(frame)
	require.NotEmpty(t, spawned)
	assert.Equal(t, KindObstacle, spawned[0].Kind)
	assert.Zero(t, s.Elapsed())
}

func TestSpawnerExactIntervalDoesNotSpawn(t *testing.T) {
	s := newTestSpawner("bttf", nil)
	assert.Empty(t, s.Update(300*time.Millisecond))
	assert.NotEmpty(t, s.Update(time.Nanosecond))
}

func TestSpawnerNoCatchUp(t *testing.T) {
	s := newTestSpawner("bttf", func(c *config.GameConfig) { c.Spawner.CollectibleOneIn = 1000 })

	var obstacles int
	for _, e := range s.Update(5 * time.Second) {
		if e.Kind == KindObstacle {
			obstacles++
		}
	}
	assert.Equal(t, 1, obstacles)
	assert.Zero(t, s.Elapsed())
}

func TestSpawnerCollectibleRate(t *testing.T) {
	always := newTestSpawner("rainfall", func(c *config.GameConfig) { c.Spawner.CollectibleOneIn = 1 })
	for range 20 {
		got := always.Update(time.Second)
		require.Len(t, got, 2)
		assert.Equal(t, KindCollectible, got[1].Kind)
		assert.GreaterOrEqual(t, got[1].Value, 1)
		assert.LessOrEqual(t, got[1].Value, 3)
	}

	s := newTestSpawner("bttf", nil)
	collectibles := 0
	const rounds = 3000
	for range rounds {
		if len(s.Update(time.Second)) == 2 {
			collectibles++
		}
	}
	assert.InDelta(t, rounds/3, collectibles, rounds*0.05)
}

func TestSpawnerPlacement(t *testing.T) {
	tests := []struct {
		id    string
		check func(t *testing.T, e Entity)
	}{
		{"bttf", func(t *testing.T, e Entity) {
			b := e.Bounds()
			assert.Equal(t, 1200.0, b.X)
			assert.GreaterOrEqual(t, b.Y, 0.0)
			assert.Less(t, b.Y, 1200.0)
			assert.Equal(t, core.V(-5, 0), e.Vel)
		}},
		{"rainfall", func(t *testing.T, e Entity) {
			c, ok := e.Body.(core.Circle)
			require.True(t, ok, "rainfall obstacles are circles")
			assert.Equal(t, -c.R, c.C.Y)
			assert.GreaterOrEqual(t, c.C.X, 0.0)
			assert.Less(t, c.C.X, 800.0)
			assert.Equal(t, core.V(0, 4), e.Vel)
		}},
		{"comets", func(t *testing.T, e Entity) {
			c, ok := e.Body.(core.Circle)
			require.True(t, ok, "comets are circles")
			assert.Equal(t, 800+c.R, c.C.X)
			assert.Equal(t, core.V(-6, 0), e.Vel)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s := newTestSpawner(tt.id, nil)
			for range 50 {
				got := s.Update(time.Second)
				require.NotEmpty(t, got)
				tt.check(t, got[0])
			}
		})
	}
}

func TestSpawnerOtherEdges(t *testing.T) {
	left := newTestSpawner("bttf", func(c *config.GameConfig) { c.Spawner.Edge = config.EdgeLeft })
	e := left.Update(time.Second)[0]
	assert.Equal(t, -48.0, e.Bounds().X)
	assert.Equal(t, core.V(5, 0), e.Vel)

	bottom := newTestSpawner("rainfall", func(c *config.GameConfig) { c.Spawner.Edge = config.EdgeBottom })
	e = bottom.Update(time.Second)[0]
	assert.Equal(t, 600.0, e.Bounds().Y)
	assert.Equal(t, core.V(0, -4), e.Vel)
}
