package router

import (
	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
)

// growObstacles runs up to NumGrowPasses passes: every obstacle's four
// corners are grown outward by their current Offset*TotalCount, every
// working path's segments are tested against the grown corners and
// split where a segment now crosses one, then the obstacles are
// shrunk back before the next pass. The obstacles excluded for a path
// (because they contain one of its endpoints) never deflect that path.
// A pass that deflects nothing stops the remaining passes early.
func (r *Router) growObstacles() {
	for pass := 0; pass < NumGrowPasses; pass++ {
		for _, o := range r.obstacles {
			o.Grow()
		}

		changed := false
		for _, p := range r.workingPaths {
			for _, o := range p.ExcludedObstacles {
				o.Exclude = true
			}
			segs, did := r.deflectSegments(p.GrownSegments)
			for _, o := range p.ExcludedObstacles {
				o.Exclude = false
			}
			if did {
				p.GrownSegments = segs
				changed = true
			}
		}

		for _, o := range r.obstacles {
			o.Shrink()
		}

		if !changed {
			break
		}
	}
}

// deflectSegments walks segs leg by leg and, for each leg that now
// crosses a grown obstacle's diagonal, splices the nearer corner of
// that diagonal in as a new bend point. It returns the (possibly
// unchanged) slice and whether anything was inserted.
func (r *Router) deflectSegments(segs []*core.Vertex) ([]*core.Vertex, bool) {
	changed := false
	for i := 0; i < len(segs)-1; i++ {
		corner, ok := r.deflectLeg(segs[i], segs[i+1])
		if !ok {
			continue
		}
		segs = append(segs[:i+1:i+1], append([]*core.Vertex{corner}, segs[i+1:]...)...)
		changed = true
	}

	return segs, changed
}

// deflectLeg tests the a-b leg against every candidate obstacle's two
// grown diagonals and returns the nearer corner of the first diagonal
// it crosses, skipping an obstacle that owns either endpoint or has its
// Exclude flag set, and skipping a corner that would overlap a spacing-sized guard rectangle
// around a or b (which would make the path hook back on a corner it
// just bent at).
func (r *Router) deflectLeg(a, b *core.Vertex) (*core.Vertex, bool) {
	seg := geom.Segment{A: a.Point(), B: b.Point()}
	spacing := r.spacing.Value

	for _, o := range r.obstacles {
		if o.Exclude || o == a.Obstacle || o == b.Obstacle {
			continue
		}
		grown := o.Rect.Grow(spacing)
		pairs := [2][2]*core.Vertex{
			{o.TopLeft, o.BottomRight},
			{o.TopRight, o.BottomLeft},
		}
		for idx, diag := range grown.Diagonals() {
			if !seg.Intersects(diag) {
				continue
			}
			c1, c2 := pairs[idx][0], pairs[idx][1]
			corner := c1
			if geom.Distance(a.Point(), c2.Point()) < geom.Distance(a.Point(), c1.Point()) {
				corner = c2
			}
			if hooksBack(corner, a, b, spacing) {
				continue
			}

			return corner, true
		}
	}

	return nil, false
}

func hooksBack(corner, a, b *core.Vertex, spacing int) bool {
	guard := func(p geom.Point) geom.Rectangle {
		return geom.Rectangle{X: p.X - spacing, Y: p.Y - spacing, Width: 2 * spacing, Height: 2 * spacing}
	}
	cr := guard(corner.Point())

	return cr.Intersects(guard(a.Point())) || cr.Intersects(guard(b.Point()))
}
