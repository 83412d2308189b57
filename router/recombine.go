package router

import (
	"github.com/katalvlaran/orthoroute/geom"
	"github.com/katalvlaran/orthoroute/routepath"
)

// recombineSubpaths merges every path's spawned subpath (if any), and
// any subpath that one spawned in turn, back into it: each subpath's grown segments and points are appended minus
// their duplicated leading vertex/point, the parent's end is updated to
// the subpath's end, and the subpath is dropped from workingPaths.
func (r *Router) recombineSubpaths() {
	for _, p := range r.userPaths {
		r.recombineSubpathsOf(p)
	}
	for _, children := range r.children {
		for _, c := range children {
			r.recombineSubpathsOf(c)
		}
	}
}

func (r *Router) recombineSubpathsOf(p *routepath.Path) {
	for p.SubPath != nil {
		sub := p.SubPath
		if len(sub.GrownSegments) > 1 {
			p.GrownSegments = append(p.GrownSegments, sub.GrownSegments[1:]...)
		}
		if len(sub.Points) > 1 {
			p.Points = append(p.Points, sub.Points[1:]...)
		}
		p.End = sub.End
		p.SubPath = sub.SubPath

		delete(r.byID, sub.ID)
		r.workingPaths = removePath(r.workingPaths, sub)
	}
}

// recombineChildren concatenates each parent's bendpoint child paths'
// points, in order, dropping every child's duplicated last point except
// the final child's.
func (r *Router) recombineChildren() {
	for parent, children := range r.children {
		var points []geom.Point
		for i, c := range children {
			if i == len(children)-1 {
				points = append(points, c.Points...)

				continue
			}
			if len(c.Points) > 0 {
				points = append(points, c.Points[:len(c.Points)-1]...)
			}
		}
		parent.Points = points
	}
}
