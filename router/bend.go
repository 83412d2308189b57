package router

import (
	"math"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
	"github.com/katalvlaran/orthoroute/routepath"
)

// bendPaths materializes each path's final integer point list, visiting
// paths in order so that INNIE corners fan outward in visiting order
// (Count increments) and OUTIE corners fan outward in reverse visiting
// order (TotalCount decrements) — the mechanism that gives paths
// sharing a corner distinct, monotone offsets.
func (r *Router) bendPaths(order []*routepath.Path) {
	for _, p := range order {
		segs := p.GrownSegments
		if len(segs) == 0 {
			p.Points = nil

			continue
		}

		points := make([]geom.Point, 0, len(segs))
		points = append(points, segs[0].Point())
		for i := 1; i+1 < len(segs); i++ {
			v := segs[i]
			var modifier int
			if v.Type == core.Outie {
				modifier = v.TotalCount
				v.TotalCount--
			} else {
				v.Count++
				modifier = v.Count
			}
			points = append(points, bentPoint(v, modifier))
		}
		points = append(points, segs[len(segs)-1].Point())

		p.Points = points
	}
}

func bentPoint(v *core.Vertex, modifier int) geom.Point {
	amount := int(math.Round(v.Offset * float64(modifier)))
	dx, dy := 0, 0
	if v.PositionOnObstacle&geom.North != 0 {
		dy -= amount
	}
	if v.PositionOnObstacle&geom.South != 0 {
		dy += amount
	}
	if v.PositionOnObstacle&geom.West != 0 {
		dx -= amount
	}
	if v.PositionOnObstacle&geom.East != 0 {
		dx += amount
	}

	return v.Point().Add(dx, dy)
}
