package world

import (
	"math"
	"testing"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

func testHandling() config.PlayerConfig {
	return config.PlayerConfig{Width: 64, Height: 32, TopSpeed: 7.5, Acceleration: 1.25, Friction: 0.88}
}

func TestSteerVelocityBound(t *testing.T) {
	h := testHandling()
	field := core.V(1200, 1200)

	tests := []struct {
		name string
		in   core.InputFrame
	}{
		{"right", hold(core.ActionRight)},
		{"left", hold(core.ActionLeft)},
		{"diagonal", hold(core.ActionUp, core.ActionLeft)},
		{"opposing", hold(core.ActionUp, core.ActionDown, core.ActionRight)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{Size: core.V(h.Width, h.Height)}
			p.Center(field)
			for i := range 500 {
				p.Steer(tt.in, h, field)
				if math.Abs(p.Vel.X) > h.MaxSpeed()+1e-9 || math.Abs(p.Vel.Y) > h.MaxSpeed()+1e-9 {
					t.Fatalf("frame %d: velocity %+v exceeds %v", i, p.Vel, h.MaxSpeed())
				}
			}
		})
	}
}

func TestSteerAcceleratesAndDecays(t *testing.T) {
	h := testHandling()
	field := core.V(1200, 1200)
	p := Player{Size: core.V(64, 32)}
	p.Center(field)

	p.Steer(hold(core.ActionRight), h, field)
	expected := h.Acceleration * h.Friction
	if math.Abs(p.Vel.X-expected) > 1e-9 {
		t.Errorf("Vel.X = %v, expected %v", p.Vel.X, expected)
	}
	if p.Pos.X <= 600 {
		t.Errorf("Pos.X = %v, expected movement to the right", p.Pos.X)
	}

	for range 200 {
		p.Steer(core.NewInputFrame(), h, field)
	}
	if math.Abs(p.Vel.X) > 1e-6 {
		t.Errorf("Vel.X = %v after coasting, expected friction to stop the player", p.Vel.X)
	}
}

func TestSteerClampsEachAxis(t *testing.T) {
	h := testHandling()
	field := core.V(800, 600)

	tests := []struct {
		name     string
		start    core.Vec2
		vel      core.Vec2
		expected core.Vec2
	}{
		{"left wall keeps vertical motion", core.V(33, 300), core.V(-5, 2), core.V(32, 300 + 2*0.88)},
		{"right wall", core.V(767, 300), core.V(5, 0), core.V(768, 300)},
		{"top wall", core.V(400, 17), core.V(0, -5), core.V(400, 16)},
		{"bottom right corner", core.V(767, 583), core.V(5, 5), core.V(768, 584)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{Pos: tt.start, Vel: tt.vel, Size: core.V(64, 32)}
			p.Steer(core.NewInputFrame(), h, field)

			if math.Abs(p.Pos.X-tt.expected.X) > 1e-9 || math.Abs(p.Pos.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Pos = %+v, expected %+v", p.Pos, tt.expected)
			}
			if !core.NewBox(0, 0, field.X, field.Y).ContainsBox(p.Bounds()) {
				t.Errorf("Bounds() = %+v escaped the field", p.Bounds())
			}
		})
	}
}
