package world

import "github.com/vovakirdan/dodge-arcade/internal/core"

// Kind separates things that end the run from things that score.
type Kind int

const (
	KindObstacle Kind = iota
	KindCollectible
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindCollectible {
		return "collectible"
	}
	return "obstacle"
}

// Entity is an obstacle or collectible drifting across the field.
type Entity struct {
	Kind  Kind
	Body  core.Shape // absolute placement
	Vel   core.Vec2  // constant for the entity's lifetime
	Value int        // points, collectibles only
}

// Bounds returns the entity's bounding box.
func (e Entity) Bounds() core.Box {
	return e.Body.Bounds()
}

// moveEntities translates every entity by its velocity.
func moveEntities(entities []Entity) {
	for i := range entities {
		entities[i].Body = entities[i].Body.Translate(entities[i].Vel)
	}
}
