package core

import "github.com/katalvlaran/orthoroute/geom"

// Vertex is a point in the visibility graph: either one of an Obstacle's
// four corners (Obstacle != nil) or a Path endpoint (Obstacle == nil).
//
// Identity (OrigX, OrigY, Obstacle, PositionOnObstacle) never changes
// after construction. The shortest-path fields (Neighbors, IsPermanent,
// Label, Cost) are workspace for a single Path's single Dijkstra run and
// are reset via ResetSearchState before each path builds its visibility
// graph. The routing-state fields (Type, Count, TotalCount, Offset,
// NearestObstacle*, Paths, CachedCosines) accumulate across every path
// touched during one Router.Solve and are reset via ResetRoutingState at
// the start of that solve.
type Vertex struct {
	X, Y               int
	OrigX, OrigY       int
	Obstacle           *Obstacle
	PositionOnObstacle geom.Position

	// Shortest-path state, rebuilt per path.
	Neighbors   []*Vertex
	IsPermanent bool
	Label       *Vertex
	Cost        float64

	// Routing state, rebuilt per solve.
	Type                   VertexType
	Count                  int
	TotalCount             int
	Offset                 float64
	NearestObstacle        int
	NearestObstacleChecked bool
	Paths                  []PathID
	CachedCosines          map[PathID]float64
}

// NewEndpointVertex returns a Vertex for a Path's start or end point. It
// has no owning Obstacle and no corner position.
func NewEndpointVertex(x, y int) *Vertex {
	return &Vertex{X: x, Y: y, OrigX: x, OrigY: y}
}

// Point returns the vertex's current (possibly grown) coordinates.
func (v *Vertex) Point() geom.Point {
	return geom.Point{X: v.X, Y: v.Y}
}

// OrigPoint returns the vertex's original, never-grown coordinates.
func (v *Vertex) OrigPoint() geom.Point {
	return geom.Point{X: v.OrigX, Y: v.OrigY}
}

// IsEndpoint reports whether v is a Path endpoint rather than an
// Obstacle corner.
func (v *Vertex) IsEndpoint() bool {
	return v.Obstacle == nil
}

// Grow moves v outward by n along the axes its PositionOnObstacle
// bitmask names (north/south/west/east). Grow(n) followed by Grow(-n)
// restores the exact original (X, Y): this is the no-op invariant spec
// requires of grow-then-shrink.
func (v *Vertex) Grow(n int) {
	if v.PositionOnObstacle&geom.North != 0 {
		v.Y -= n
	}
	if v.PositionOnObstacle&geom.South != 0 {
		v.Y += n
	}
	if v.PositionOnObstacle&geom.West != 0 {
		v.X -= n
	}
	if v.PositionOnObstacle&geom.East != 0 {
		v.X += n
	}
}

// Shrink is the inverse of Grow.
func (v *Vertex) Shrink(n int) {
	v.Grow(-n)
}

// ResetSearchState clears the per-path shortest-path workspace so a new
// Path can build its own visibility graph over this (possibly shared)
// vertex without seeing another path's leftover labels.
func (v *Vertex) ResetSearchState() {
	v.Neighbors = nil
	v.IsPermanent = false
	v.Label = nil
	v.Cost = 0
}

// ResetRoutingState clears the per-solve routing state, restoring Offset
// to the router's current default spacing until checkVertexIntersections
// finds a nearer neighboring obstacle.
func (v *Vertex) ResetRoutingState(spacing int) {
	v.Type = NotSet
	v.Count = 0
	v.TotalCount = 0
	v.Offset = float64(spacing)
	v.NearestObstacle = 0
	v.NearestObstacleChecked = false
	v.Paths = nil
	v.CachedCosines = nil
}

// AddPath records that id bends at v, if it isn't already recorded.
func (v *Vertex) AddPath(id PathID) {
	for _, p := range v.Paths {
		if p == id {
			return
		}
	}
	v.Paths = append(v.Paths, id)
}

// Cosine returns the cached bend-angle cosine for path id at v, and
// whether one has been cached yet.
func (v *Vertex) Cosine(id PathID) (float64, bool) {
	if v.CachedCosines == nil {
		return 0, false
	}
	c, ok := v.CachedCosines[id]

	return c, ok
}

// SetCosine caches the bend-angle cosine for path id at v.
func (v *Vertex) SetCosine(id PathID, cos float64) {
	if v.CachedCosines == nil {
		v.CachedCosines = make(map[PathID]float64)
	}
	v.CachedCosines[id] = cos
}
