package world

import (
	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Player is the controllable body. Pos is the center of its bounding box.
type Player struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size core.Vec2
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() core.Box {
	return core.CenteredBox(p.Pos, p.Size)
}

// Center puts the player in the middle of the field and stops it.
func (p *Player) Center(field core.Vec2) {
	p.Pos = core.NewBox(0, 0, field.X, field.Y).Center()
	p.Vel = core.Vec2{}
}

// Steer runs one frame of the movement integrator: accelerate along held
// directions, apply friction, cap each axis, move, then clamp into the field.
func (p *Player) Steer(in core.InputFrame, h config.PlayerConfig, field core.Vec2) {
	if in.IsHeld(core.ActionLeft) {
		p.Vel.X -= h.Acceleration
	}
	if in.IsHeld(core.ActionRight) {
		p.Vel.X += h.Acceleration
	}
	if in.IsHeld(core.ActionUp) {
		p.Vel.Y -= h.Acceleration
	}
	if in.IsHeld(core.ActionDown) {
		p.Vel.Y += h.Acceleration
	}

	p.Vel = p.Vel.Scale(h.Friction)

	limit := h.MaxSpeed()
	p.Vel.X = core.ClampF(p.Vel.X, -limit, limit)
	p.Vel.Y = core.ClampF(p.Vel.Y, -limit, limit)

	p.Pos = p.Pos.Add(p.Vel)
	p.clampInto(field)
}

// clampInto pushes the bounding box back inside [0, field]. Each axis is
// handled on its own so sliding along a wall keeps the other component.
func (p *Player) clampInto(field core.Vec2) {
	half := p.Size.Scale(0.5)
	p.Pos.X = core.ClampF(p.Pos.X, half.X, field.X-half.X)
	p.Pos.Y = core.ClampF(p.Pos.Y, half.Y, field.Y-half.Y)
}
