package core

// DrawKind selects what a DrawCmd paints.
type DrawKind int

const (
	DrawBackground DrawKind = iota
	DrawObstacle
	DrawCollectible
	DrawPlayer
	DrawText
)

// Align controls horizontal text placement relative to DrawCmd.Pos.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Background identifies which backdrop a DrawBackground command shows.
type Background int

const (
	BackgroundMenu Background = iota
	BackgroundGame
	BackgroundPlain
)

// DrawCmd is one entry of a frame's draw list.
//
// Entity commands carry their collision Shape; text commands carry Text, Pos,
// Size (nominal font size in logical units) and Align. Offset shifts a
// background, used by the floating menu backdrop.
type DrawCmd struct {
	Kind       DrawKind
	Shape      Shape
	Background Background
	Offset     Vec2
	Text       string
	Pos        Vec2
	Size       float64
	Align      Align
	Color      Color
}

// DrawList is the ordered list of commands for one frame. Frontends paint it
// front to back in slice order and never report anything back.
type DrawList []DrawCmd

// Texts returns the strings of all text commands, in order.
func (l DrawList) Texts() []string {
	var out []string
	for _, c := range l {
		if c.Kind == DrawText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns the number of commands of the given kind.
func (l DrawList) Count(kind DrawKind) int {
	n := 0
	for _, c := range l {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
