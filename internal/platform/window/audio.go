package window

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/platform/sound"
)

// SampleRate is the audio context rate; every file is resampled to it.
const SampleRate = 48000

// audioContext is process-wide; ebiten allows only one.
var audioContext *audio.Context

func audioCtx() *audio.Context {
	if audioContext == nil {
		audioContext = audio.NewContext(SampleRate)
	}
	return audioContext
}

// stream is what every ebiten decoder returns.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// Sounds holds the decoded players for one game.
type Sounds struct {
	Menu    *audio.Player
	Game    []*audio.Player
	Pickup  *audio.Player
	Failure []*audio.Player
}

// LoadSounds decodes every configured sound. Files that cannot be read or
// decoded are logged and left nil; the game simply stays quiet for them.
func LoadSounds(a config.Assets, dir string, logger *log.Logger) *Sounds {
	load := func(s config.Sound, loop bool) *audio.Player {
		if s.Path == "" {
			return nil
		}
		p, err := newPlayer(resolve(dir, s.Path), loop)
		if err != nil {
			logger.Warn("sound unavailable", "path", s.Path, "error", err)
			return nil
		}
		p.SetVolume(s.Volume)
		return p
	}

	out := &Sounds{
		Menu:   load(a.MenuMusic, true),
		Pickup: load(a.Pickup, false),
	}
	// Missing tracks keep their slot: cues index the configured list.
	for _, s := range a.GameMusic {
		out.Game = append(out.Game, load(s, true))
	}
	for _, s := range a.Failure {
		out.Failure = append(out.Failure, load(s, false))
	}
	return out
}

// Set adapts the players to a mixer track set. Nil players become nil
// interfaces in the same slots so the mixer can skip them.
func (s *Sounds) Set() sound.Set {
	track := func(p *audio.Player) sound.Track {
		if p == nil {
			return nil
		}
		return p
	}

	set := sound.Set{Menu: track(s.Menu), Pickup: track(s.Pickup)}
	for _, p := range s.Game {
		set.Game = append(set.Game, track(p))
	}
	for _, p := range s.Failure {
		set.Failure = append(set.Failure, track(p))
	}
	return set
}

// newPlayer decodes a file by extension. Music loops forever.
func newPlayer(path string, loop bool) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := decode(path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if loop {
		return audioCtx().NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	}
	return audioCtx().NewPlayer(s)
}

func decode(path string, r io.ReadSeeker) (stream, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.DecodeWithSampleRate(SampleRate, r)
	case ".mp3":
		return mp3.DecodeWithSampleRate(SampleRate, r)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(SampleRate, r)
	}
	return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
}
