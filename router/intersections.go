package router

import (
	"math"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
)

// checkVertexIntersections narrows each intermediate vertex's offset
// when another obstacle sits close by in the direction the vertex's own
// corner already faces outward. For each unchecked vertex it builds a
// square of side 2*totalCount*spacing+1 anchored at the vertex and
// extending outward along its corner's own quadrant, finds every other
// obstacle that square overlaps, and keeps the smallest candidate
// distance to any of them as NearestObstacle.
func (r *Router) checkVertexIntersections() {
	for _, p := range r.workingPaths {
		segs := p.GrownSegments
		for i := 1; i+1 < len(segs); i++ {
			v := segs[i]
			if v.Obstacle == nil || v.NearestObstacleChecked {
				continue
			}
			v.NearestObstacleChecked = true

			side := 2*v.TotalCount*r.spacing.Value + 1
			square := outwardSquare(v, side)

			for _, o := range r.obstacles {
				if o == v.Obstacle {
					continue
				}
				if !square.Intersects(o.Rect) {
					continue
				}
				if d, ok := candidateDistance(v, o); ok {
					if v.NearestObstacle == 0 || d < v.NearestObstacle {
						v.NearestObstacle = d
					}
				}
			}

			if v.NearestObstacle > 0 {
				v.Offset = math.Max(0, float64(v.NearestObstacle)/2-1) / float64(v.TotalCount)
			}
		}
	}
}

// outwardSquare builds the side x side square anchored at v that
// extends away from v's owning obstacle, in the direction(s) named by
// v.PositionOnObstacle.
func outwardSquare(v *core.Vertex, side int) geom.Rectangle {
	x := v.X
	if v.PositionOnObstacle&geom.West != 0 {
		x -= side
	}
	y := v.Y
	if v.PositionOnObstacle&geom.North != 0 {
		y -= side
	}

	return geom.Rectangle{X: x, Y: y, Width: side, Height: side}
}

// candidateDistance measures the signed distance from v to o along each
// axis, outward in the direction(s) of v's own quadrant, and returns the
// larger of the two. It reports false when o does not actually sit
// outward of v on both axes (the square test above only bounds a
// superset of such obstacles).
func candidateDistance(v *core.Vertex, o *core.Obstacle) (int, bool) {
	var xDist, yDist int
	if v.PositionOnObstacle&geom.West != 0 {
		xDist = v.X - o.Rect.Right()
	} else {
		xDist = o.Rect.X - v.X
	}
	if v.PositionOnObstacle&geom.North != 0 {
		yDist = v.Y - o.Rect.Bottom()
	} else {
		yDist = o.Rect.Y - v.Y
	}
	if xDist <= 0 || yDist <= 0 {
		return 0, false
	}

	if xDist > yDist {
		return xDist, true
	}

	return yDist, true
}
