package core

import (
	"math"

	"github.com/katalvlaran/orthoroute/geom"
)

// Obstacle is an axis-aligned rectangle a path must not cross, plus its
// four corner Vertices. The four corners are shared pointers: every Path
// that bends at one of them sees the same Vertex, which is how the
// router keeps shared-corner state consistent across paths without any
// synchronization (see package doc).
//
// Exclude is transient: the router sets it for the duration of a single
// path's solve, and again while deflecting that path's segments, when
// that path's own endpoint lies inside this obstacle, so both
// visibility-graph construction and the deflection pass skip this
// obstacle entirely for that one path.
type Obstacle struct {
	Rect                                        geom.Rectangle
	TopLeft, TopRight, BottomLeft, BottomRight *Vertex
	Spacing *SpacingRef
	Exclude bool
}

// NewObstacle constructs an Obstacle over rect with freshly built corner
// Vertices. spacing is the router's shared spacing cell; it is stored on
// the obstacle only for callers that need a default-spacing reference
// point and is not otherwise read by Obstacle itself.
func NewObstacle(rect geom.Rectangle, spacing *SpacingRef) (*Obstacle, error) {
	if rect.Width < 0 || rect.Height < 0 {
		return nil, ErrInvalidRectangle
	}

	o := &Obstacle{Rect: rect, Spacing: spacing}
	o.TopLeft = newCorner(o, rect.TopLeft(), geom.North|geom.West)
	o.TopRight = newCorner(o, rect.TopRight(), geom.North|geom.East)
	o.BottomLeft = newCorner(o, rect.BottomLeft(), geom.South|geom.West)
	o.BottomRight = newCorner(o, rect.BottomRight(), geom.South|geom.East)

	return o, nil
}

func newCorner(o *Obstacle, p geom.Point, pos geom.Position) *Vertex {
	return &Vertex{
		X: p.X, Y: p.Y,
		OrigX: p.X, OrigY: p.Y,
		Obstacle:           o,
		PositionOnObstacle: pos,
	}
}

// Corners returns the obstacle's four corner vertices in a fixed,
// deterministic order: top-left, top-right, bottom-left, bottom-right.
func (o *Obstacle) Corners() [4]*Vertex {
	return [4]*Vertex{o.TopLeft, o.TopRight, o.BottomLeft, o.BottomRight}
}

// Grow inflates every corner vertex outward by that vertex's own
// Offset*TotalCount, rounded to the nearest integer. Grow must be paired
// with a later Shrink call before those fields change again, or the
// corners will not return to their original coordinates.
func (o *Obstacle) Grow() {
	for _, c := range o.Corners() {
		c.Grow(cornerGrowAmount(c))
	}
}

// Shrink reverses the most recent Grow call.
func (o *Obstacle) Shrink() {
	for _, c := range o.Corners() {
		c.Shrink(cornerGrowAmount(c))
	}
}

func cornerGrowAmount(c *Vertex) int {
	return int(math.Round(c.Offset * float64(c.TotalCount)))
}

// ContainsProper reports whether p lies strictly inside the obstacle's
// original (un-grown) rectangle.
func (o *Obstacle) ContainsProper(p geom.Point) bool {
	return o.Rect.ContainsProper(p)
}
