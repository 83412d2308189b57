package router

import (
	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
	"github.com/katalvlaran/orthoroute/routepath"
)

// AddObstacle inserts a new obstacle over rect and marks dirty every
// working path whose last-known points already touch it, so the next
// Solve re-routes them around it. It reports whether any path was
// dirtied.
func (r *Router) AddObstacle(rect geom.Rectangle) (bool, error) {
	o, err := core.NewObstacle(rect, r.spacing)
	if err != nil {
		return false, err
	}
	r.obstacles = append(r.obstacles, o)

	dirtied := false
	for _, p := range r.workingPaths {
		if pointsTouchRect(p.Points, rect) {
			p.IsDirty = true
			dirtied = true
		}
	}

	return dirtied, nil
}

// RemoveObstacle removes the first obstacle whose rectangle equals rect
// (field equality; if duplicates exist, the first-added one is removed)
// and marks dirty every working path that had a vertex at one of its
// corners or that touched it during its last visibility-graph build. It
// reports whether the obstacle was found.
func (r *Router) RemoveObstacle(rect geom.Rectangle) bool {
	idx := -1
	for i, o := range r.obstacles {
		if o.Rect == rect {
			idx = i

			break
		}
	}
	if idx < 0 {
		return false
	}

	removed := r.obstacles[idx]
	r.obstacles = append(r.obstacles[:idx], r.obstacles[idx+1:]...)

	for _, p := range r.workingPaths {
		if pathTouchedObstacle(p, removed) {
			p.IsDirty = true
		}
	}

	return true
}

// UpdateObstacle removes the obstacle matching old and adds new in its
// place. Calling it with old == new is a no-op on the solved output:
// removing and re-adding the same rectangle dirties exactly the paths
// that already touched it.
func (r *Router) UpdateObstacle(old, updated geom.Rectangle) (bool, error) {
	removed := r.RemoveObstacle(old)
	added, err := r.AddObstacle(updated)

	return removed || added, err
}

func pointsTouchRect(points []geom.Point, rect geom.Rectangle) bool {
	for _, p := range points {
		if rect.Contains(p) {
			return true
		}
	}
	diagonals := rect.Diagonals()
	for i := 0; i+1 < len(points); i++ {
		seg := geom.Segment{A: points[i], B: points[i+1]}
		for _, d := range diagonals {
			if seg.Intersects(d) {
				return true
			}
		}
	}

	return false
}

func pathTouchedObstacle(p *routepath.Path, o *core.Obstacle) bool {
	for _, v := range p.GrownSegments {
		if v.Obstacle == o {
			return true
		}
	}
	for _, vo := range p.VisibleObstacles() {
		if vo == o {
			return true
		}
	}

	return false
}
