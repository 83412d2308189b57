package geom

// Position is a bitmask describing where a point lies relative to a
// rectangle. NONE means the point is inside (or on the boundary of) the
// rectangle. Exactly one of North/South may be set together with exactly
// one of East/West, giving the four diagonal combinations used by the
// visibility-graph's endpoint-to-obstacle rules.
type Position int

const (
	None  Position = 0
	North Position = 1 << iota
	South
	East
	West
)

// Rectangle is an axis-aligned integer rectangle anchored at (X, Y) with
// the given Width and Height. Right and Bottom are derived, never stored,
// so two rectangles with equal fields are always equal values.
type Rectangle struct {
	X, Y, Width, Height int
}

// Right returns X + Width.
func (r Rectangle) Right() int { return r.X + r.Width }

// Bottom returns Y + Height.
func (r Rectangle) Bottom() int { return r.Y + r.Height }

// Contains reports whether p lies within r, with the boundary rule that
// the top and left edges are inside and the bottom and right edges are
// not (half-open on both axes).
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsProper reports whether p lies strictly inside r's interior,
// excluding all four edges.
func (r Rectangle) ContainsProper(p Point) bool {
	return p.X > r.X && p.X < r.Right() && p.Y > r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely within r, inclusive of
// shared edges on all four sides.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o share any interior point. Rectangles
// that only touch along an edge or at a corner do not intersect.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Grow returns r expanded outward by n on every side.
func (r Rectangle) Grow(n int) Rectangle {
	return Rectangle{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Center returns the rectangle's center point, rounding toward the
// top-left on odd dimensions (integer division truncates).
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// TopLeft, TopRight, BottomLeft, BottomRight return the rectangle's four
// corners in the obvious arrangement.
func (r Rectangle) TopLeft() Point     { return Point{X: r.X, Y: r.Y} }
func (r Rectangle) TopRight() Point    { return Point{X: r.Right(), Y: r.Y} }
func (r Rectangle) BottomLeft() Point  { return Point{X: r.X, Y: r.Bottom()} }
func (r Rectangle) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// PositionOf returns the bitmask describing where p lies relative to r:
// North if p is above the top edge, South if below the bottom edge, East
// if right of the right edge, West if left of the left edge, combined as
// appropriate, or None if p is on or inside the boundary.
func (r Rectangle) PositionOf(p Point) Position {
	var pos Position
	switch {
	case p.Y < r.Y:
		pos |= North
	case p.Y > r.Bottom():
		pos |= South
	}
	switch {
	case p.X < r.X:
		pos |= West
	case p.X > r.Right():
		pos |= East
	}

	return pos
}
