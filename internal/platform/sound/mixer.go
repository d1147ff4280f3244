// Package sound maps the cues a world emits onto playable tracks. It knows
// nothing about decoding or devices; the window frontend hands it ebiten
// audio players, tests hand it fakes.
package sound

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Track is anything that can be started, paused and rewound.
// *audio.Player from ebiten satisfies it.
type Track interface {
	Play()
	Pause()
	Rewind() error
}

// Sink consumes the cues of one frame.
type Sink interface {
	Play(cues []core.Cue)
}

// Set is the tracks available to a mixer. Nil entries are silent.
type Set struct {
	Menu    Track
	Game    []Track
	Pickup  Track
	Failure []Track
}

// Mixer plays a Set in response to cues.
type Mixer struct {
	set     Set
	current Track // gameplay track started by the last CueGameMusicStart
	logger  *log.Logger
}

// NewMixer creates a mixer. logger receives rewind failures.
func NewMixer(set Set, logger *log.Logger) *Mixer {
	return &Mixer{set: set, logger: logger}
}

// Play handles cues in order.
func (m *Mixer) Play(cues []core.Cue) {
	for _, c := range cues {
		m.handle(c)
	}
}

func (m *Mixer) handle(c core.Cue) {
	switch c.Kind {
	case core.CueMenuMusicStart:
		m.restart(m.set.Menu)
	case core.CueMenuMusicStop:
		pause(m.set.Menu)
	case core.CueGameMusicStart:
		pause(m.current)
		m.current = nil
		if c.Track >= 0 && c.Track < len(m.set.Game) {
			m.current = m.set.Game[c.Track]
		}
		m.restart(m.current)
	case core.CueGameMusicStop:
		pause(m.current)
	case core.CuePickup:
		m.restart(m.set.Pickup)
	case core.CueFailure:
		for _, t := range m.set.Failure {
			m.restart(t)
		}
	}
}

// restart plays t from the beginning.
func (m *Mixer) restart(t Track) {
	if t == nil {
		return
	}
	if err := t.Rewind(); err != nil && m.logger != nil {
		m.logger.Warn("rewind failed", "error", err)
	}
	t.Play()
}

func pause(t Track) {
	if t != nil {
		t.Pause()
	}
}

// LogSink writes cues to a logger instead of playing them.
type LogSink struct {
	Logger *log.Logger
}

// Play logs each cue at debug level.
func (s LogSink) Play(cues []core.Cue) {
	for _, c := range cues {
		s.Logger.Debug("cue", "kind", c.Kind, "track", c.Track)
	}
}
