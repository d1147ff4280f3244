package core

// CueKind identifies a fire-and-forget audio trigger.
type CueKind int

const (
	CueMenuMusicStart CueKind = iota
	CueMenuMusicStop
	CueGameMusicStart // Cue.Track selects the gameplay track
	CueGameMusicStop
	CuePickup  // At most once per frame, however many collectibles were taken
	CueFailure // Obstacle hit
)

// String returns the cue name.
func (k CueKind) String() string {
	switch k {
	case CueMenuMusicStart:
		return "menu-music-start"
	case CueMenuMusicStop:
		return "menu-music-stop"
	case CueGameMusicStart:
		return "game-music-start"
	case CueGameMusicStop:
		return "game-music-stop"
	case CuePickup:
		return "pickup"
	case CueFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Cue is a single audio trigger emitted by a game step.
type Cue struct {
	Kind  CueKind
	Track int // Gameplay track index for CueGameMusicStart, -1 when none is configured
}
