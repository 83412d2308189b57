package geom

import "math"

// Point is an integer (x, y) coordinate. It is a value type; equality is
// component-wise via the == operator.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)

	return math.Hypot(dx, dy)
}

// CrossProduct returns the z-component of (b-a) x (c-a). Its sign tells
// whether c lies to the left (positive), right (negative), or on the
// line through a and b (zero).
func CrossProduct(a, b, c Point) int64 {
	abx := int64(b.X - a.X)
	aby := int64(b.Y - a.Y)
	acx := int64(c.X - a.X)
	acy := int64(c.Y - a.Y)

	return abx*acy - aby*acx
}

// SlopeSign classifies the direction from a to b: +1 if the x and y
// deltas have the same sign, -1 if they have opposite signs, 0 if the
// segment is purely horizontal or vertical.
func SlopeSign(a, b Point) int {
	dx := b.X - a.X
	dy := b.Y - a.Y
	switch {
	case dx == 0 || dy == 0:
		return 0
	case (dx > 0) == (dy > 0):
		return 1
	default:
		return -1
	}
}
