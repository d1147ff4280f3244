package tui

import (
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// HoldWindow is how long a direction stays held after its last key event.
// Terminals only report presses (and auto-repeats), never releases.
const HoldWindow = 200 * time.Millisecond

// HoldTracker turns a stream of key presses into held directions. Each press
// keeps its action held for a fixed number of ticks; auto-repeat refreshes it.
type HoldTracker struct {
	expires *intmap.Map[core.Action, int64] // action -> first tick it is no longer held
	window  int64
	tick    int64
}

// NewHoldTracker creates a tracker whose window covers HoldWindow at tickRate.
func NewHoldTracker(tickRate int) *HoldTracker {
	ticks := int64(HoldWindow * time.Duration(max(tickRate, 1)) / time.Second)
	return &HoldTracker{
		expires: intmap.New[core.Action, int64](8),
		window:  max(ticks, 1),
	}
}

// Press marks a as held from now on. Pressing a direction releases its
// opposite so reversing is immediate.
func (h *HoldTracker) Press(a core.Action) {
	h.expires.Put(a, h.tick+h.window)
	if o := opposite(a); o != core.ActionNone {
		h.expires.Del(o)
	}
}

// Fill adds every still-held action to in and forgets the expired ones.
func (h *HoldTracker) Fill(in *core.InputFrame) {
	for a := core.ActionLeft; a <= core.ActionDown; a++ {
		until, ok := h.expires.Get(a)
		if !ok {
			continue
		}
		if until > h.tick {
			in.Hold(a)
		} else {
			h.expires.Del(a)
		}
	}
}

// Advance moves the tracker to the next tick.
func (h *HoldTracker) Advance() {
	h.tick++
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	h.expires.Clear()
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}
