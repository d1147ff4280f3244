package world

import "github.com/vovakirdan/dodge-arcade/internal/core"

// Outcome is the result of testing the player against every entity.
type Outcome struct {
	Hit       bool // an obstacle overlaps the player
	Collected int  // collectibles taken this frame
	Points    int  // their summed value
}

// resolveCollisions tests obstacles first and stops at the first hit; in
// that case collectibles are left alone. Otherwise every overlapping
// collectible is gathered in one pass and removed as a batch.
func resolveCollisions(player core.Shape, entities []Entity) ([]Entity, Outcome) {
	for _, e := range entities {
		if e.Kind == KindObstacle && core.Overlaps(player, e.Body) {
			return entities, Outcome{Hit: true}
		}
	}

	var out Outcome
	kept := entities[:0]
	for _, e := range entities {
		if e.Kind == KindCollectible && core.Overlaps(player, e.Body) {
			out.Collected++
			out.Points += e.Value
			continue
		}
		kept = append(kept, e)
	}
	clear(entities[len(kept):])
	return kept, out
}
