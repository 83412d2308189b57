package router

import (
	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
	"github.com/katalvlaran/orthoroute/routepath"
)

// Solve runs the eight-phase pipeline and returns the user-visible
// paths. It is a blocking, synchronous call: there are no suspension
// points, and every Vertex touched by a working path may be mutated in
// place along the way.
func (r *Router) Solve() []*routepath.Path {
	r.solveDirtyPaths()
	r.countVertices()
	r.checkVertexIntersections()
	r.growObstacles()
	r.labelPaths()
	order := r.orderPaths()
	r.bendPaths(order)
	r.recombineSubpaths()
	r.recombineChildren()

	return r.userPaths
}

func (r *Router) solveDirtyPaths() {
	for _, p := range r.workingPaths {
		if !p.IsDirty {
			continue
		}
		excluded := obstaclesContaining(r.obstacles, p.Start.Point(), p.End.Point())
		for _, o := range excluded {
			o.Exclude = true
		}
		p.ExcludedObstacles = excluded

		_ = p.Solve(r.obstacles, r.spacing.Value)

		for _, o := range excluded {
			o.Exclude = false
		}
		p.IsDirty = false
	}
}

func obstaclesContaining(obstacles []*core.Obstacle, points ...geom.Point) []*core.Obstacle {
	var found []*core.Obstacle
	for _, o := range obstacles {
		for _, p := range points {
			if o.ContainsProper(p) {
				found = append(found, o)

				break
			}
		}
	}

	return found
}

// countVertices resets every touched vertex's per-solve routing state,
// then increments TotalCount on every intermediate (non-endpoint)
// vertex of every working path.
func (r *Router) countVertices() {
	for _, p := range r.workingPaths {
		for _, v := range p.GrownSegments {
			v.ResetRoutingState(r.spacing.Value)
		}
	}
	for _, p := range r.workingPaths {
		segs := p.GrownSegments
		for i := 1; i+1 < len(segs); i++ {
			segs[i].TotalCount++
			segs[i].AddPath(p.ID)
		}
	}
}
