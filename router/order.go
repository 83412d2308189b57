package router

import "github.com/katalvlaran/orthoroute/routepath"

// orderPaths returns the working paths in an order such that, at any
// vertex shared by several of them, the path with the smaller cached
// bend-angle cosine there always precedes the one with the larger
// (reversed for an inverted path): a depth-first visit at each vertex
// first recurses into every not-yet-visited sharing path whose cosine
// at that vertex is smaller (or larger, if this path is inverted), then
// appends this path.
func (r *Router) orderPaths() []*routepath.Path {
	visited := make(map[*routepath.Path]bool, len(r.workingPaths))
	order := make([]*routepath.Path, 0, len(r.workingPaths))

	var visit func(p *routepath.Path)
	visit = func(p *routepath.Path) {
		if visited[p] {
			return
		}
		visited[p] = true

		segs := p.GrownSegments
		for i := 1; i+1 < len(segs); i++ {
			v := segs[i]
			myCos, ok := v.Cosine(p.ID)
			if !ok {
				continue
			}
			for _, other := range r.pathsAt(v, p) {
				if visited[other] {
					continue
				}
				otherCos, ok := v.Cosine(other.ID)
				if !ok {
					continue
				}
				smaller := otherCos < myCos
				if p.IsInverted {
					smaller = otherCos > myCos
				}
				if smaller {
					visit(other)
				}
			}
		}

		order = append(order, p)
	}

	for _, p := range r.workingPaths {
		visit(p)
	}

	return order
}
