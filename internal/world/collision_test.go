package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

func TestResolveCollisions(t *testing.T) {
	player := core.NewBox(100, 100, 40, 20)

	tests := []struct {
		name     string
		entities []Entity
		expected Outcome
		left     int
	}{
		{"empty", nil, Outcome{}, 0},
		{
			"miss",
			[]Entity{{Kind: KindObstacle, Body: core.NewBox(200, 200, 10, 10)}},
			Outcome{}, 1,
		},
		{
			"touching edge hits",
			[]Entity{{Kind: KindObstacle, Body: core.NewBox(140, 100, 10, 10)}},
			Outcome{Hit: true}, 1,
		},
		{
			"circle near corner misses",
			[]Entity{{Kind: KindObstacle, Body: core.NewCircle(95, 95, 5)}},
			Outcome{}, 1,
		},
		{
			"circle on corner hits",
			[]Entity{{Kind: KindObstacle, Body: core.NewCircle(97, 96, 5)}},
			Outcome{Hit: true}, 1,
		},
		{
			"batch pickup",
			[]Entity{
				{Kind: KindCollectible, Body: core.NewBox(110, 105, 5, 5), Value: 1},
				{Kind: KindCollectible, Body: core.NewCircle(130, 110, 3), Value: 2},
				{Kind: KindCollectible, Body: core.NewBox(300, 300, 5, 5), Value: 9},
			},
			Outcome{Collected: 2, Points: 3}, 1,
		},
		{
			"obstacle short-circuits pickups",
			[]Entity{
				{Kind: KindCollectible, Body: core.NewBox(110, 105, 5, 5), Value: 1},
				{Kind: KindObstacle, Body: core.NewBox(120, 105, 5, 5)},
			},
			Outcome{Hit: true}, 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, out := resolveCollisions(player, tt.entities)
			assert.Equal(t, tt.expected, out)
			assert.Len(t, left, tt.left)
		})
	}
}
