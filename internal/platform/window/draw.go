package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// palette maps core colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      colornames.Whitesmoke,
	core.ColorRed:          colornames.Red,
	core.ColorGreen:        colornames.Limegreen,
	core.ColorYellow:       colornames.Gold,
	core.ColorBlue:         colornames.Dodgerblue,
	core.ColorMagenta:      colornames.Magenta,
	core.ColorCyan:         colornames.Cyan,
	core.ColorWhite:        colornames.White,
	core.ColorBrightRed:    colornames.Orangered,
	core.ColorBrightYellow: colornames.Yellow,
	core.ColorBrightCyan:   colornames.Aquamarine,
	core.ColorOrange:       colornames.Orange,
	core.ColorGray:         colornames.Gray,
	core.ColorBlack:        colornames.Black,
}

// backdrop is the fill behind everything when no background image is drawn.
var backdrop = colornames.Midnightblue

// rgba returns the window color for c.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// painter draws a draw list onto an ebiten image.
type painter struct {
	assets *Assets
	field  core.Vec2
}

func (p painter) paint(dst *ebiten.Image, list core.DrawList) {
	dst.Fill(backdrop)
	for _, cmd := range list {
		switch cmd.Kind {
		case core.DrawBackground:
			p.background(dst, cmd)
		case core.DrawObstacle:
			p.entity(dst, cmd, p.assets.Obstacle)
		case core.DrawCollectible:
			p.entity(dst, cmd, p.assets.Collectible)
		case core.DrawPlayer:
			p.entity(dst, cmd, p.assets.Player)
		case core.DrawText:
			p.text(dst, cmd)
		}
	}
}

func (p painter) background(dst *ebiten.Image, cmd core.DrawCmd) {
	switch cmd.Background {
	case core.BackgroundMenu:
		if img := p.assets.MenuBackground; img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM = centerGeoM(imageSize(img), p.field)
			op.GeoM.Translate(cmd.Offset.X, cmd.Offset.Y)
			dst.DrawImage(img, op)
		}
	case core.BackgroundGame:
		if img := p.assets.GameBackground; img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM = coverGeoM(imageSize(img), p.field)
			dst.DrawImage(img, op)
		}
	case core.BackgroundPlain:
		dst.Fill(colornames.Black)
	}
}

// entity draws the sprite stretched over the shape's bounds, or a plain
// shape in the command's color when there is no sprite.
func (p painter) entity(dst *ebiten.Image, cmd core.DrawCmd, sprite *ebiten.Image) {
	b := cmd.Shape.Bounds()
	if sprite != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = fitGeoM(imageSize(sprite), b)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(sprite, op)
		return
	}

	c := rgba(cmd.Color)
	switch s := cmd.Shape.(type) {
	case core.Circle:
		vector.DrawFilledCircle(dst, float32(s.C.X), float32(s.C.Y), float32(s.R), c, true)
	default:
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
	}
}

// text draws a text command with the loaded font. Without one, text is skipped.
func (p painter) text(dst *ebiten.Image, cmd core.DrawCmd) {
	if !p.assets.HasFont {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.Pos.X, cmd.Pos.Y)
	op.ColorScale.ScaleWithColor(rgba(cmd.Color))
	if cmd.Align == core.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, cmd.Text, &text.GoTextFace{
		Source: p.assets.Font,
		Size:   cmd.Size,
	}, op)
}

func imageSize(img *ebiten.Image) core.Vec2 {
	b := img.Bounds()
	return core.V(float64(b.Dx()), float64(b.Dy()))
}

// fitGeoM stretches an image of size src over box b.
func fitGeoM(src core.Vec2, b core.Box) ebiten.GeoM {
	size := b.Size()
	var g ebiten.GeoM
	g.Scale(size.X/src.X, size.Y/src.Y)
	g.Translate(b.X, b.Y)
	return g
}

// coverGeoM scales an image uniformly so it covers the whole field, then
// centers it; the overflow is cropped by the screen.
func coverGeoM(src, field core.Vec2) ebiten.GeoM {
	scale := max(field.X/src.X, field.Y/src.Y)
	var g ebiten.GeoM
	g.Scale(scale, scale)
	g.Translate((field.X-src.X*scale)/2, (field.Y-src.Y*scale)/2)
	return g
}

// centerGeoM places an image unscaled in the middle of the field.
func centerGeoM(src, field core.Vec2) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate((field.X-src.X)/2, (field.Y-src.Y)/2)
	return g
}
