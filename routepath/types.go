package routepath

import (
	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
)

// OvalConstant scales the straight-line start-end distance into the
// pruning threshold used on a path's very first (cold) solve.
const OvalConstant = 1.13

// Epsilon scales the previous solve's cost-to-distance ratio into the
// pruning threshold used on every solve after the first.
const Epsilon = 1.04

// Path is a single routing request between two Vertices. Start and End
// have no owning Obstacle. Bendpoints, if any, are mandatory waypoints a
// Router splits this Path into child Paths around — Path itself never
// routes through its own Bendpoints list.
type Path struct {
	// ID is assigned by the Router that owns this path.
	ID core.PathID

	// Data is an opaque slot a caller may use to attach its own metadata
	// to a path, mirroring core.Vertex's role as shared routing state.
	Data any

	Start, End *core.Vertex
	Bendpoints []geom.Point

	// ExcludedObstacles holds the obstacles the owning Router excluded
	// for this path's most recent solve because they properly contain
	// Start or End.
	ExcludedObstacles []*core.Obstacle

	// Segments is the ordered vertex chain Dijkstra produced, from
	// Start to End inclusive. GrownSegments starts as a copy of
	// Segments and is the one the Router's grow/deflection passes splice
	// corner insertions into.
	Segments      []*core.Vertex
	GrownSegments []*core.Vertex

	// Points is the final materialized integer polyline, set once the
	// Router's bend pass assigns offsets at every bend vertex.
	Points []geom.Point

	IsDirty    bool
	IsInverted bool
	IsMarked   bool

	// Threshold is the pruning bound used on this path's most recent
	// solve; PrevCostRatio is cost/distance from that solve, carried
	// forward to compute the next solve's threshold via Epsilon.
	Threshold     float64
	PrevCostRatio float64

	// SubPath holds at most one path spawned by the labeling pass when a
	// path's corner labels disagree a second time.
	SubPath *Path

	// visibility-graph workspace, rebuilt by each call to solve.
	visibleObstacles    []*core.Obstacle
	visibleObstacleSeen map[*core.Obstacle]bool
	visibleVertices     []*core.Vertex
	visibleVertexSeen   map[*core.Vertex]bool
}

// NewPath returns a Path between start and end with no bendpoints.
func NewPath(start, end *core.Vertex) *Path {
	return &Path{Start: start, End: end}
}

// VisibleObstacles returns the obstacles p's visibility graph touched on
// its most recent solve, in the order they were first pulled in. A
// Router uses this to decide whether removing an obstacle must dirty p.
func (p *Path) VisibleObstacles() []*core.Obstacle {
	return p.visibleObstacles
}

// workItem is a single candidate segment waiting to be tested against
// the obstacle set. ExcludeA and ExcludeB are nil unless this segment is
// one of an obstacle's own perimeter edges, in which case that obstacle
// must not block its own edge.
type workItem struct {
	A, B               *core.Vertex
	ExcludeA, ExcludeB *core.Obstacle
}

func (p *Path) resetWorkspace() {
	p.visibleObstacles = nil
	p.visibleObstacleSeen = make(map[*core.Obstacle]bool)
	p.visibleVertices = []*core.Vertex{p.Start, p.End}
	p.visibleVertexSeen = map[*core.Vertex]bool{p.Start: true, p.End: true}
}

func (p *Path) addVisibleVertex(v *core.Vertex) {
	if p.visibleVertexSeen[v] {
		return
	}
	p.visibleVertexSeen[v] = true
	p.visibleVertices = append(p.visibleVertices, v)
}

func (p *Path) markObstacleVisible(o *core.Obstacle) bool {
	if p.visibleObstacleSeen[o] {
		return false
	}
	p.visibleObstacleSeen[o] = true
	p.visibleObstacles = append(p.visibleObstacles, o)
	for _, c := range o.Corners() {
		p.addVisibleVertex(c)
	}

	return true
}

func link(a, b *core.Vertex) {
	a.Neighbors = append(a.Neighbors, b)
	b.Neighbors = append(b.Neighbors, a)
}
