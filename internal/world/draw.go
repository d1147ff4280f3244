package world

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Text sizes in logical units.
const (
	hudTextSize    = 40
	titleTextSize  = 80
	promptTextSize = 30
)

// Draw returns this frame's draw list. Exactly one phase is drawn.
func (w *World) Draw() core.DrawList {
	switch w.phase {
	case core.PhasePlaying:
		return w.drawPlaying()
	case core.PhaseGameOver:
		return w.drawGameOver()
	default:
		return w.drawMenu()
	}
}

// MenuOffset is the vertical float of the menu title and backdrop.
func (w *World) MenuOffset() float64 {
	m := w.cfg.Menu
	return m.FloatAmplitude * math.Sin(w.clock.Seconds()*m.FloatHz*2*math.Pi)
}

func (w *World) drawMenu() core.DrawList {
	off := core.V(0, w.MenuOffset())
	text := core.ParseColor(w.cfg.Theme.Text)

	return core.DrawList{
		{Kind: core.DrawBackground, Background: core.BackgroundMenu, Offset: off},
		{
			Kind: core.DrawText, Text: w.cfg.Menu.Title, Align: core.AlignCenter,
			Pos: core.V(w.field.X/2, w.field.Y/3).Add(off), Size: titleTextSize, Color: text,
		},
		{
			Kind: core.DrawText, Text: w.cfg.Menu.Prompt, Align: core.AlignCenter,
			Pos: core.V(w.field.X/2, w.field.Y*2/3), Size: promptTextSize, Color: text,
		},
	}
}

func (w *World) drawPlaying() core.DrawList {
	theme := w.cfg.Theme
	list := make(core.DrawList, 0, len(w.entities)+5)

	list = append(list, core.DrawCmd{Kind: core.DrawBackground, Background: core.BackgroundGame})
	for _, e := range w.entities {
		if e.Kind == KindObstacle {
			list = append(list, core.DrawCmd{Kind: core.DrawObstacle, Shape: e.Body, Color: core.ParseColor(theme.Obstacle)})
		}
	}
	for _, e := range w.entities {
		if e.Kind == KindCollectible {
			list = append(list, core.DrawCmd{Kind: core.DrawCollectible, Shape: e.Body, Color: core.ParseColor(theme.Collectible)})
		}
	}
	list = append(list, core.DrawCmd{Kind: core.DrawPlayer, Shape: w.player.Bounds(), Color: core.ParseColor(theme.Player)})

	list = append(list, core.DrawCmd{
		Kind: core.DrawText, Text: fmt.Sprintf("Score: %d", w.score),
		Pos: core.V(10, 10), Size: hudTextSize, Color: core.ParseColor(theme.Text),
	})

	if w.paused {
		list = append(list,
			core.DrawCmd{
				Kind: core.DrawText, Text: "PAUSED", Align: core.AlignCenter,
				Pos: core.V(w.field.X/2, w.field.Y/2-50), Size: titleTextSize, Color: core.ParseColor(theme.Alert),
			},
			core.DrawCmd{
				Kind: core.DrawText, Text: "Press P to resume", Align: core.AlignCenter,
				Pos: core.V(w.field.X/2, w.field.Y/2+30), Size: promptTextSize, Color: core.ParseColor(theme.Text),
			},
		)
	}
	return list
}

func (w *World) drawGameOver() core.DrawList {
	cx, cy := w.field.X/2, w.field.Y/2
	text := core.ParseColor(w.cfg.Theme.Text)

	return core.DrawList{
		{Kind: core.DrawBackground, Background: core.BackgroundPlain},
		{
			Kind: core.DrawText, Text: "GAME OVER", Align: core.AlignCenter,
			Pos: core.V(cx, cy-50), Size: titleTextSize, Color: core.ParseColor(w.cfg.Theme.Alert),
		},
		{
			Kind: core.DrawText, Text: fmt.Sprintf("Final Score: %d", w.score), Align: core.AlignCenter,
			Pos: core.V(cx, cy+30), Size: hudTextSize, Color: text,
		},
		{
			Kind: core.DrawText, Text: "Press SPACE for menu", Align: core.AlignCenter,
			Pos: core.V(cx, cy+100), Size: promptTextSize, Color: text,
		},
	}
}
