package router

import (
	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
	"github.com/katalvlaran/orthoroute/routepath"
)

// AddPath registers a routing request from start to end, optionally
// passing through bendpoints in order, and returns the user-visible
// Path handle. If bendpoints is non-empty, the router internally splits
// the request into len(bendpoints)+1 child paths, each routed
// independently between consecutive control points, and recombines
// their points into the returned Path's Points after every Solve.
func (r *Router) AddPath(start, end geom.Point, bendpoints []geom.Point, data any) *routepath.Path {
	parent := routepath.NewPath(core.NewEndpointVertex(start.X, start.Y), core.NewEndpointVertex(end.X, end.Y))
	parent.ID = r.allocateID()
	parent.Data = data
	parent.Bendpoints = bendpoints
	parent.IsDirty = true

	r.userPaths = append(r.userPaths, parent)
	r.byID[parent.ID] = parent
	r.attachChildren(parent)

	return parent
}

// SetBendpoints replaces parent's bendpoints and regenerates its child
// paths, marking all of them dirty.
func (r *Router) SetBendpoints(parent *routepath.Path, bendpoints []geom.Point) error {
	if _, ok := r.byID[parent.ID]; !ok {
		return ErrUnknownPath
	}
	r.detachChildren(parent)
	parent.Bendpoints = bendpoints
	r.attachChildren(parent)

	return nil
}

// RemovePath removes parent and every child path derived from its
// bendpoints.
func (r *Router) RemovePath(parent *routepath.Path) error {
	if _, ok := r.byID[parent.ID]; !ok {
		return ErrUnknownPath
	}
	r.detachChildren(parent)
	delete(r.byID, parent.ID)
	r.userPaths = removePath(r.userPaths, parent)

	return nil
}

func (r *Router) attachChildren(parent *routepath.Path) {
	controlPoints := make([]geom.Point, 0, len(parent.Bendpoints)+2)
	controlPoints = append(controlPoints, parent.Start.Point())
	controlPoints = append(controlPoints, parent.Bendpoints...)
	controlPoints = append(controlPoints, parent.End.Point())

	children := make([]*routepath.Path, 0, len(controlPoints)-1)
	for i := 0; i+1 < len(controlPoints); i++ {
		child := routepath.NewPath(
			core.NewEndpointVertex(controlPoints[i].X, controlPoints[i].Y),
			core.NewEndpointVertex(controlPoints[i+1].X, controlPoints[i+1].Y),
		)
		child.ID = r.allocateID()
		child.IsDirty = true
		r.byID[child.ID] = child
		children = append(children, child)
	}

	r.children[parent] = children
	r.workingPaths = append(r.workingPaths, children...)
}

func (r *Router) detachChildren(parent *routepath.Path) {
	for _, c := range r.children[parent] {
		delete(r.byID, c.ID)
		r.workingPaths = removePath(r.workingPaths, c)
	}
	delete(r.children, parent)
}

func removePath(paths []*routepath.Path, target *routepath.Path) []*routepath.Path {
	out := paths[:0]
	for _, p := range paths {
		if p != target {
			out = append(out, p)
		}
	}

	return out
}
