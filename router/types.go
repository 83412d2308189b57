package router

import (
	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/routepath"
)

// NumGrowPasses bounds how many times growObstacles inflates obstacle
// corners and re-tests path segments for new intersections per Solve.
const NumGrowPasses = 2

// Router owns every Obstacle and every Path in one routing problem.
// userPaths are the paths callers added; workingPaths are what actually
// gets solved, including the bendpoint-induced child paths and any
// labeling subpaths spawned during the most recent Solve.
type Router struct {
	obstacles []*core.Obstacle
	spacing   *core.SpacingRef

	userPaths    []*routepath.Path
	workingPaths []*routepath.Path
	children     map[*routepath.Path][]*routepath.Path

	nextPathID core.PathID
	byID       map[core.PathID]*routepath.Path
}

// New returns an empty Router at the default spacing.
func New() *Router {
	return &Router{
		spacing:  &core.SpacingRef{Value: core.DefaultSpacing},
		byID:     make(map[core.PathID]*routepath.Path),
		children: make(map[*routepath.Path][]*routepath.Path),
	}
}

// SetSpacing changes the default minimum separation between a path and
// a neighboring obstacle and marks every working path dirty, since
// spacing affects both visibility-graph blocking and offset
// computation.
func (r *Router) SetSpacing(n int) {
	r.spacing.Value = n
	for _, p := range r.workingPaths {
		p.IsDirty = true
	}
}

// GetSpacing returns the current default spacing.
func (r *Router) GetSpacing() int {
	return r.spacing.Value
}

// Obstacles returns the router's obstacles in insertion order.
func (r *Router) Obstacles() []*core.Obstacle {
	return r.obstacles
}

// Paths returns the user-visible paths in insertion order.
func (r *Router) Paths() []*routepath.Path {
	return r.userPaths
}

func (r *Router) allocateID() core.PathID {
	id := r.nextPathID
	r.nextPathID++

	return id
}
