package router

import (
	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
	"github.com/katalvlaran/orthoroute/routepath"
)

// labelPaths walks every working path depth-first, labeling each
// intermediate vertex INNIE or OUTIE by the sign of the cross product
// between the path's incoming segment and the segment from the vertex
// to its owning obstacle's center, and caching the cosine of the bend
// angle at that vertex for the later ordering pass. A path whose labels
// disagree with its own established pattern once has its isInverted
// flag flipped and every prior label on it retroactively inverted; a
// second disagreement splits it into a subpath instead. Whenever a
// shared vertex is touched, every other unmarked path bending there is
// pushed onto the stack so labeling stays consistent across shared
// corners.
func (r *Router) labelPaths() {
	for _, p := range r.workingPaths {
		p.IsMarked = false
	}

	stack := append([]*routepath.Path(nil), r.workingPaths...)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.IsMarked {
			continue
		}
		p.IsMarked = true
		r.labelOnePath(p, &stack)
	}
}

func (r *Router) labelOnePath(p *routepath.Path, stack *[]*routepath.Path) {
	segs := p.GrownSegments
	disagreements := 0

	for i := 1; i+1 < len(segs); i++ {
		v := segs[i]
		if v.Obstacle == nil {
			continue
		}

		label := cornerLabel(segs[i-1].Point(), v)
		switch {
		case label == core.NotSet:
			label = core.Innie
			if prev := segs[i-1]; prev.Type != core.NotSet {
				label = prev.Type
			}
		case p.IsInverted:
			label = invert(label)
		}

		if v.Type != core.NotSet && v.Type != label {
			disagreements++
			switch disagreements {
			case 1:
				p.IsInverted = !p.IsInverted
				for j := 1; j < i; j++ {
					segs[j].Type = invert(segs[j].Type)
				}
				label = invert(label)
			default:
				r.splitSubpath(p, i, stack)

				return
			}
		}

		v.Type = label
		v.AddPath(p.ID)
		v.SetCosine(p.ID, cosineAt(segs, i))

		for _, other := range r.pathsAt(v, p) {
			if !other.IsMarked {
				*stack = append(*stack, other)
			}
		}
	}
}

// cornerLabel computes v's raw INNIE/OUTIE label from the sign of the
// cross product of the incoming segment (from prev to v) against the
// segment from v to its owning obstacle's center. A zero cross product
// (the path arrives pointed exactly at the center) returns NotSet;
// labelOnePath then inherits the previous vertex's type, defaulting to
// INNIE if there is none.
func cornerLabel(prev geom.Point, v *core.Vertex) core.VertexType {
	center := v.Obstacle.Rect.Center()
	cross := geom.CrossProduct(prev, v.Point(), center)
	switch {
	case cross < 0:
		return core.Innie
	case cross > 0:
		return core.Outie
	default:
		return core.NotSet
	}
}

func invert(t core.VertexType) core.VertexType {
	switch t {
	case core.Innie:
		return core.Outie
	case core.Outie:
		return core.Innie
	default:
		return t
	}
}

func cosineAt(segs []*core.Vertex, i int) float64 {
	inX, inY := segs[i].X-segs[i-1].X, segs[i].Y-segs[i-1].Y
	outX, outY := segs[i+1].X-segs[i].X, segs[i+1].Y-segs[i].Y

	inLen := geom.Distance(geom.Point{}, geom.Point{X: inX, Y: inY})
	outLen := geom.Distance(geom.Point{}, geom.Point{X: outX, Y: outY})
	if inLen == 0 || outLen == 0 {
		return 1
	}

	dot := float64(inX*outX + inY*outY)

	return dot / (inLen * outLen)
}

// splitSubpath detaches segs[i:] from p into a new subpath starting at
// the shared vertex segs[i], leaving p ending there, and pushes the
// subpath onto the stack for its own labeling pass.
func (r *Router) splitSubpath(p *routepath.Path, i int, stack *[]*routepath.Path) {
	segs := p.GrownSegments
	sub := routepath.NewPath(segs[i], p.End)
	sub.ID = r.allocateID()
	sub.GrownSegments = append([]*core.Vertex(nil), segs[i:]...)

	p.SubPath = sub
	p.GrownSegments = segs[:i+1]
	p.End = segs[i]

	r.byID[sub.ID] = sub
	r.workingPaths = append(r.workingPaths, sub)
	*stack = append(*stack, sub)
}

// pathsAt returns every working path other than exclude that has v
// somewhere in its current segment chain.
func (r *Router) pathsAt(v *core.Vertex, exclude *routepath.Path) []*routepath.Path {
	var out []*routepath.Path
	for _, p := range r.workingPaths {
		if p == exclude {
			continue
		}
		for _, w := range p.GrownSegments {
			if w == v {
				out = append(out, p)

				break
			}
		}
	}

	return out
}
