package routepath

import (
	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
)

// shortestPath runs a linear-scan Dijkstra variant over p's visible
// vertices and returns the ordered chain from Start to End plus its
// total cost. Selection is linear (not a heap) by design: given the
// same visibility graph, it picks the same next vertex on a cost tie
// every time, which both the retry logic here and the router's
// deterministic-ordering guarantee depend on.
func (p *Path) shortestPath() ([]*core.Vertex, float64, error) {
	p.Start.IsPermanent = true
	p.Start.Label = p.Start
	p.Start.Cost = 0

	current := p.Start
	permanent := 1
	for permanent < len(p.visibleVertices) {
		relax(current)
		next := nextLabeled(p.visibleVertices)
		if next == nil {
			return nil, 0, errNoPath
		}
		next.IsPermanent = true
		permanent++
		current = next
	}

	if !p.End.IsPermanent {
		return nil, 0, errNoPath
	}

	return reconstruct(p.Start, p.End), p.End.Cost, nil
}

func relax(u *core.Vertex) {
	for _, v := range u.Neighbors {
		if v.IsPermanent {
			continue
		}
		cost := u.Cost + distance(u, v)
		if v.Label == nil || cost < v.Cost {
			v.Cost = cost
			v.Label = u
		}
	}
}

// nextLabeled linear-scans candidates for the lowest-cost vertex that
// has been reached (Label != nil) but is not yet permanent.
func nextLabeled(vertices []*core.Vertex) *core.Vertex {
	var best *core.Vertex
	for _, v := range vertices {
		if v.IsPermanent || v.Label == nil {
			continue
		}
		if best == nil || v.Cost < best.Cost {
			best = v
		}
	}

	return best
}

func reconstruct(start, end *core.Vertex) []*core.Vertex {
	chain := []*core.Vertex{end}
	for v := end; v != start; {
		v = v.Label
		chain = append(chain, v)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

func distance(u, v *core.Vertex) float64 {
	return geom.Distance(u.Point(), v.Point())
}
