package orthoroute

import (
	"fmt"

	"github.com/katalvlaran/orthoroute/geom"
	"github.com/katalvlaran/orthoroute/router"
)

// SolveFor converts obstacles, bendpoints, and a start/end pair into
// typed geometry, runs a single one-shot solve, and returns the
// resulting point list from (x1, y1) to (x2, y2).
//
// obstacles is an ordered sequence of (x, y, width, height) rectangles.
// bendpoints is an ordered sequence of (x, y) mandatory waypoints and
// may be empty. SolveFor returns ErrInvalidInput if any obstacle has a
// negative width or height.
//
// For repeated solves against the same or incrementally changing
// obstacle set, construct a router.Router directly instead: SolveFor
// builds and discards a fresh one on every call.
func SolveFor(obstacles [][4]int, bendpoints [][2]int, x1, y1, x2, y2 int) ([]geom.Point, error) {
	r := router.New()

	for _, o := range obstacles {
		rect := geom.Rectangle{X: o[0], Y: o[1], Width: o[2], Height: o[3]}
		if _, err := r.AddObstacle(rect); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	bends := make([]geom.Point, len(bendpoints))
	for i, b := range bendpoints {
		bends[i] = geom.Point{X: b[0], Y: b[1]}
	}

	path := r.AddPath(geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2}, bends, nil)
	r.Solve()

	return path.Points, nil
}
