package geom

// Segment is a straight line between two integer points.
type Segment struct {
	A, B Point
}

// Diagonals returns r's two corner-to-corner diagonals: top-left to
// bottom-right, then top-right to bottom-left.
func (r Rectangle) Diagonals() [2]Segment {
	return [2]Segment{
		{A: r.TopLeft(), B: r.BottomRight()},
		{A: r.TopRight(), B: r.BottomLeft()},
	}
}

// Intersects reports whether s crosses other's interior strictly: shared
// endpoints or merely touching at a point do not count as an
// intersection. This is what lets a segment terminate exactly at an
// obstacle corner without being considered blocked by that same corner.
func (s Segment) Intersects(other Segment) bool {
	d1 := CrossProduct(other.A, other.B, s.A)
	d2 := CrossProduct(other.A, other.B, s.B)
	d3 := CrossProduct(s.A, s.B, other.A)
	d4 := CrossProduct(s.A, s.B, other.B)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// BlockedBy reports whether s crosses either of rect's two diagonals,
// after growing rect outward by spacing on every side. This is the
// "grown diagonals" blocking test used throughout visibility-graph
// construction and the deflection pass: a segment that merely grazes an
// obstacle's corner is not blocked, but one that cuts through its
// spacing-padded interior is.
func (s Segment) BlockedBy(rect Rectangle, spacing int) bool {
	grown := rect.Grow(spacing)
	for _, diag := range grown.Diagonals() {
		if s.Intersects(diag) {
			return true
		}
	}

	return false
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}
