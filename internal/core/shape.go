package core

// Shape is the closed set of collision shapes: Box and Circle.
// Positions are absolute playfield coordinates.
type Shape interface {
	// Bounds returns the smallest Box enclosing the shape.
	Bounds() Box
	// Translate returns the shape moved by d.
	Translate(d Vec2) Shape

	isShape()
}

// Circle is a disc given by its center and radius.
type Circle struct {
	C Vec2
	R float64
}

// NewCircle creates a circle at (x, y) with radius r.
func NewCircle(x, y, r float64) Circle {
	return Circle{C: Vec2{X: x, Y: y}, R: r}
}

func (Box) isShape()    {}
func (Circle) isShape() {}

// Bounds returns the box itself.
func (b Box) Bounds() Box {
	return b
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec2) Shape {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Box {
	return Box{X: c.C.X - c.R, Y: c.C.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Translate returns the circle moved by d.
func (c Circle) Translate(d Vec2) Shape {
	c.C = c.C.Add(d)
	return c
}

// Intersects reports whether two boxes overlap. Edges are inclusive, so boxes
// that merely touch count as overlapping.
func (b Box) Intersects(o Box) bool {
	return b.X <= o.Right() && o.X <= b.Right() &&
		b.Y <= o.Bottom() && o.Y <= b.Bottom()
}

// IntersectsBox reports whether the circle overlaps the box, by clamping the
// center onto the box and comparing the squared distance to the radius.
func (c Circle) IntersectsBox(b Box) bool {
	nearest := Vec2{
		X: ClampF(c.C.X, b.X, b.Right()),
		Y: ClampF(c.C.Y, b.Y, b.Bottom()),
	}
	return c.C.Sub(nearest).LenSq() <= c.R*c.R
}

// IntersectsCircle reports whether two circles overlap.
func (c Circle) IntersectsCircle(o Circle) bool {
	r := c.R + o.R
	return c.C.Sub(o.C).LenSq() <= r*r
}

// Overlaps tests any pair of shapes. Each pair is handled once and the
// mirrored pair delegates to it, so Overlaps(a, b) == Overlaps(b, a).
func Overlaps(a, b Shape) bool {
	switch a := a.(type) {
	case Box:
		switch b := b.(type) {
		case Box:
			return a.Intersects(b)
		case Circle:
			return b.IntersectsBox(a)
		}
	case Circle:
		switch b := b.(type) {
		case Box:
			return a.IntersectsBox(b)
		case Circle:
			return a.IntersectsCircle(b)
		}
	}
	return false
}
