package tui

import (
	"math"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Glyphs used when rasterizing the draw list.
const (
	PlayerChar      = '█'
	ObstacleChar    = '▓'
	CollectibleChar = '◆'
	CircleChar      = '●'
)

// Raster maps logical playfield coordinates onto a cell grid.
type Raster struct {
	field  core.Vec2 // logical size
	sx, sy float64   // cells per logical unit
}

// NewRaster fits a field of the given logical size into w x h cells.
func NewRaster(field core.Vec2, w, h int) Raster {
	return Raster{
		field: field,
		sx:    float64(max(w, 1)) / field.X,
		sy:    float64(max(h, 1)) / field.Y,
	}
}

// Cell converts a logical point to a cell coordinate.
func (r Raster) Cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * r.sx)), int(math.Floor(p.Y * r.sy))
}

// CellRect returns the cells covered by a logical box. Anything visible
// covers at least one cell.
func (r Raster) CellRect(b core.Box) core.Rect {
	x0, y0 := r.Cell(core.V(b.X, b.Y))
	x1 := int(math.Ceil(b.Right() * r.sx))
	y1 := int(math.Ceil(b.Bottom() * r.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Paint draws a draw list onto dst. dst is cleared first.
func (r Raster) Paint(dst *core.Screen, list core.DrawList) {
	dst.Clear()
	for _, cmd := range list {
		switch cmd.Kind {
		case core.DrawBackground:
			r.paintBackground(dst, cmd)
		case core.DrawObstacle:
			r.paintShape(dst, cmd.Shape, ObstacleChar, cmd.Color)
		case core.DrawCollectible:
			r.paintShape(dst, cmd.Shape, CollectibleChar, cmd.Color)
		case core.DrawPlayer:
			r.paintShape(dst, cmd.Shape, PlayerChar, cmd.Color)
		case core.DrawText:
			r.paintText(dst, cmd)
		}
	}
}

// paintBackground frames the playfield during play. Menu and game-over
// screens stay bare.
func (r Raster) paintBackground(dst *core.Screen, cmd core.DrawCmd) {
	if cmd.Background == core.BackgroundGame {
		dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorGray)
	}
}

func (r Raster) paintShape(dst *core.Screen, s core.Shape, ch rune, c core.Color) {
	switch s := s.(type) {
	case core.Circle:
		r.paintCircle(dst, s, c)
	case core.Box:
		dst.DrawRect(r.CellRect(s), ch, c)
	}
}

// paintCircle fills the cells whose centers lie inside the circle, falling
// back to the center cell for circles smaller than a cell.
func (r Raster) paintCircle(dst *core.Screen, circle core.Circle, c core.Color) {
	area := r.CellRect(circle.Bounds())
	painted := false
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			center := core.V((float64(x)+0.5)/r.sx, (float64(y)+0.5)/r.sy)
			if center.Sub(circle.C).LenSq() <= circle.R*circle.R {
				dst.Set(x, y, CircleChar, c)
				painted = true
			}
		}
	}
	if !painted {
		x, y := r.Cell(circle.C)
		dst.Set(x, y, CircleChar, c)
	}
}

// paintText places text at its logical anchor. Terminal text has a single
// size; the Size hint is ignored.
func (r Raster) paintText(dst *core.Screen, cmd core.DrawCmd) {
	x, y := r.Cell(cmd.Pos)
	y = core.Clamp(y, 0, dst.Height()-1)
	if cmd.Align == core.AlignCenter {
		dst.DrawTextCentered(x, y, cmd.Text, cmd.Color)
		return
	}
	dst.DrawText(max(x, 1), max(y, 1), cmd.Text, cmd.Color)
}
