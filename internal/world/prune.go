package world

import (
	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Exited reports whether a box has fully crossed the edge opposite to where
// it spawned.
func Exited(b core.Box, spawnEdge config.Edge, field core.Vec2) bool {
	switch spawnEdge {
	case config.EdgeLeft:
		return b.X > field.X
	case config.EdgeTop:
		return b.Y > field.Y
	case config.EdgeBottom:
		return b.Bottom() < 0
	default:
		return b.Right() < 0
	}
}

// Prune drops entities that have left the field and returns the survivors
// and how many were removed. Calling it again on its own result removes nothing.
func Prune(entities []Entity, spawnEdge config.Edge, field core.Vec2) ([]Entity, int) {
	kept := entities[:0]
	for _, e := range entities {
		if !Exited(e.Bounds(), spawnEdge, field) {
			kept = append(kept, e)
		}
	}
	removed := len(entities) - len(kept)
	clear(entities[len(kept):])
	return kept, removed
}
