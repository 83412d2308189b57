package routepath

import "github.com/katalvlaran/orthoroute/core"

// Solve builds p's visibility graph against obstacles and runs Dijkstra
// over it. If the graph has a gap, or the resulting path's cost exceeds
// the pruning threshold computed for this solve, it retries exactly
// once with pruning disabled (threshold 0). If the retry also fails,
// Solve leaves p.Segments and p.Points empty rather than returning an
// error — an unroutable path is a valid outcome the router's caller
// must be able to see on the Path itself.
func (p *Path) Solve(obstacles []*core.Obstacle, spacing int) error {
	threshold := p.computeThreshold()
	chain, cost, err := p.attempt(obstacles, spacing, threshold)
	if err != nil || (threshold > 0 && cost > threshold) {
		chain, cost, err = p.attempt(obstacles, spacing, 0)
	}
	if err != nil {
		p.Segments = nil
		p.GrownSegments = nil
		p.Points = nil
		p.PrevCostRatio = 0

		return nil
	}

	p.Segments = chain
	p.GrownSegments = append([]*core.Vertex(nil), chain...)
	if dist := distance(p.Start, p.End); dist > 0 {
		p.PrevCostRatio = cost / dist
	}

	return nil
}

func (p *Path) attempt(obstacles []*core.Obstacle, spacing int, threshold float64) ([]*core.Vertex, float64, error) {
	p.Threshold = threshold
	if err := p.BuildVisibilityGraph(obstacles, spacing); err != nil {
		return nil, 0, err
	}

	return p.shortestPath()
}
