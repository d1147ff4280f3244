package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use the screen size only for frontends that rasterize; simulation
// happens in the logical playfield described by the game config.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (TUI only)
	ScreenH  int   // Terminal height in characters (TUI only)
	TickRate int   // Frames per second requested from the frontend
	Seed     int64 // RNG seed; 0 means seed from the current time

	// Sprites overrides entity sizes with sprite bounds when a frontend
	// has loaded the textures. Zero vectors keep the configured size.
	Sprites SpriteSizes
}

// SpriteSizes holds on-screen sizes derived from loaded textures.
type SpriteSizes struct {
	Player      Vec2
	Obstacle    Vec2
	Collectible Vec2
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase is the top-level state of a game. Exactly one is active per frame.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameState is a snapshot of the values a frontend cares about.
type GameState struct {
	Phase  Phase
	Score  int
	Paused bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Cues  []Cue // Audio cues fired during this frame, in order
}
