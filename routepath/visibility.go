package routepath

import (
	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
)

// BuildVisibilityGraph resets p's workspace and every touched vertex's
// search state, then grows a visibility graph outward from a single
// start→end work item: a candidate segment that turns out to be
// obstacle-free becomes a Neighbors link; one that is blocked pulls its
// blocking obstacle's corners into the graph and replaces itself with
// that obstacle's candidate perimeter and pairwise segments. obstacles
// must be in the router's stable insertion order; spacing is the amount
// each obstacle's rectangle is grown by before a segment is tested
// against its diagonals.
func (p *Path) BuildVisibilityGraph(obstacles []*core.Obstacle, spacing int) error {
	p.resetWorkspace()
	p.Start.ResetSearchState()
	p.End.ResetSearchState()

	stack := []workItem{{A: p.Start, B: p.End}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := p.processWorkItem(item, obstacles, spacing, &stack); err != nil {
			return err
		}
	}

	return nil
}

func (p *Path) processWorkItem(item workItem, obstacles []*core.Obstacle, spacing int, stack *[]workItem) error {
	seg := geom.Segment{A: item.A.Point(), B: item.B.Point()}
	if !p.withinThreshold(seg) {
		return nil
	}

	blocker := p.firstBlockingObstacle(seg, item.A, item.B, item.ExcludeA, item.ExcludeB, obstacles, spacing)
	if blocker == nil {
		link(item.A, item.B)

		return nil
	}

	if !p.markObstacleVisible(blocker) {
		return nil
	}
	blocker.TopLeft.ResetSearchState()
	blocker.TopRight.ResetSearchState()
	blocker.BottomLeft.ResetSearchState()
	blocker.BottomRight.ResetSearchState()

	addObstaclePerimeter(blocker, stack)
	for _, other := range p.visibleObstacles {
		if other == blocker {
			continue
		}
		addSegmentsForObstaclePair(blocker, other, stack)
	}
	if err := p.addSegmentsForEndpoint(p.Start, blocker, stack); err != nil {
		return err
	}

	return p.addSegmentsForEndpoint(p.End, blocker, stack)
}

// firstBlockingObstacle returns the first obstacle (in obstacles' order)
// that either blocks the A-B segment outright or properly contains one
// of its endpoints, skipping any obstacle whose Exclude flag is set by
// the router or that matches excludeA/excludeB for this one segment.
func (p *Path) firstBlockingObstacle(seg geom.Segment, a, b *core.Vertex, excludeA, excludeB *core.Obstacle, obstacles []*core.Obstacle, spacing int) *core.Obstacle {
	for _, o := range obstacles {
		if o.Exclude || o == excludeA || o == excludeB {
			continue
		}
		// A segment sharing an endpoint with one of o's own corners
		// exists precisely to touch o and is never blocked by it.
		if a.Obstacle == o || b.Obstacle == o {
			continue
		}
		if seg.BlockedBy(o.Rect, spacing) {
			return o
		}
		if o.ContainsProper(a.Point()) || o.ContainsProper(b.Point()) {
			return o
		}
	}

	return nil
}

func addObstaclePerimeter(o *core.Obstacle, stack *[]workItem) {
	*stack = append(*stack,
		workItem{A: o.TopLeft, B: o.TopRight, ExcludeA: o},
		workItem{A: o.TopRight, B: o.BottomRight, ExcludeA: o},
		workItem{A: o.BottomRight, B: o.BottomLeft, ExcludeA: o},
		workItem{A: o.BottomLeft, B: o.TopLeft, ExcludeA: o},
	)
}

// addSegmentsForObstaclePair pushes the candidate segments a taut path
// could use to go around both o1 and o2 as a single combined silhouette.
// Overlapping obstacles get the four corner-to-corresponding-corner
// segments, plus the two hull-hugging diagonals across any side the two
// rectangles share exactly. Obstacles separated along one or both axes
// get the facing-edge corners and the diagonals across the gap between
// them on each separated axis.
func addSegmentsForObstaclePair(o1, o2 *core.Obstacle, stack *[]workItem) {
	r1, r2 := o1.Rect, o2.Rect

	vertGap := r1.Bottom() <= r2.Y || r2.Bottom() <= r1.Y
	horizGap := r1.Right() <= r2.X || r2.Right() <= r1.X

	if !vertGap && !horizGap {
		*stack = append(*stack,
			workItem{A: o1.TopLeft, B: o2.TopLeft},
			workItem{A: o1.TopRight, B: o2.TopRight},
			workItem{A: o1.BottomLeft, B: o2.BottomLeft},
			workItem{A: o1.BottomRight, B: o2.BottomRight},
		)
		if r1.Y == r2.Y {
			*stack = append(*stack, workItem{A: o1.TopLeft, B: o2.TopRight}, workItem{A: o2.TopLeft, B: o1.TopRight})
		}
		if r1.Bottom() == r2.Bottom() {
			*stack = append(*stack, workItem{A: o1.BottomLeft, B: o2.BottomRight}, workItem{A: o2.BottomLeft, B: o1.BottomRight})
		}
		if r1.X == r2.X {
			*stack = append(*stack, workItem{A: o1.TopLeft, B: o2.BottomLeft}, workItem{A: o2.TopLeft, B: o1.BottomLeft})
		}
		if r1.Right() == r2.Right() {
			*stack = append(*stack, workItem{A: o1.TopRight, B: o2.BottomRight}, workItem{A: o2.TopRight, B: o1.BottomRight})
		}

		return
	}

	if vertGap {
		top, bottom := o1, o2
		if r2.Y < r1.Y {
			top, bottom = o2, o1
		}
		*stack = append(*stack,
			workItem{A: top.BottomLeft, B: bottom.TopLeft},
			workItem{A: top.BottomRight, B: bottom.TopRight},
			workItem{A: top.BottomLeft, B: bottom.TopRight},
			workItem{A: top.BottomRight, B: bottom.TopLeft},
		)
	}
	if horizGap {
		left, right := o1, o2
		if r2.X < r1.X {
			left, right = o2, o1
		}
		*stack = append(*stack,
			workItem{A: left.TopRight, B: right.TopLeft},
			workItem{A: left.BottomRight, B: right.BottomLeft},
			workItem{A: left.TopRight, B: right.BottomLeft},
			workItem{A: left.BottomRight, B: right.TopLeft},
		)
	}
}

// addSegmentsForEndpoint pushes the candidate segments from a path
// endpoint to the two corners of o that are visible from the endpoint's
// position relative to o: the two corners on the side it faces square
// on, the two corners on the diagonal opposite its nearest corner when
// it sits off a diagonal, or the two corners of the edge it sits exactly
// on. Every other position is malformed input.
func (p *Path) addSegmentsForEndpoint(v *core.Vertex, o *core.Obstacle, stack *[]workItem) error {
	pos := o.Rect.PositionOf(v.Point())
	if pos == geom.None {
		pos = boundaryEdge(o.Rect, v.Point())
	}

	switch {
	case pos == geom.North|geom.West, pos == geom.South|geom.East:
		*stack = append(*stack, workItem{A: v, B: o.TopRight}, workItem{A: v, B: o.BottomLeft})
	case pos == geom.North|geom.East, pos == geom.South|geom.West:
		*stack = append(*stack, workItem{A: v, B: o.TopLeft}, workItem{A: v, B: o.BottomRight})
	case pos == geom.North:
		*stack = append(*stack, workItem{A: v, B: o.TopLeft}, workItem{A: v, B: o.TopRight})
	case pos == geom.South:
		*stack = append(*stack, workItem{A: v, B: o.BottomLeft}, workItem{A: v, B: o.BottomRight})
	case pos == geom.East:
		*stack = append(*stack, workItem{A: v, B: o.TopRight}, workItem{A: v, B: o.BottomRight})
	case pos == geom.West:
		*stack = append(*stack, workItem{A: v, B: o.TopLeft}, workItem{A: v, B: o.BottomLeft})
	default:
		return ErrUnmatchedPosition
	}

	return nil
}

// boundaryEdge reports which edge(s) of rect p lies exactly on. It
// returns geom.None if p is not on the boundary (strictly inside or
// strictly outside).
func boundaryEdge(rect geom.Rectangle, p geom.Point) geom.Position {
	var pos geom.Position
	onXSpan := p.X >= rect.X && p.X <= rect.Right()
	onYSpan := p.Y >= rect.Y && p.Y <= rect.Bottom()
	if p.Y == rect.Y && onXSpan {
		pos |= geom.North
	}
	if p.Y == rect.Bottom() && onXSpan {
		pos |= geom.South
	}
	if p.X == rect.X && onYSpan {
		pos |= geom.West
	}
	if p.X == rect.Right() && onYSpan {
		pos |= geom.East
	}

	return pos
}

// computeThreshold returns the pruning bound for the next solve: a
// straight-line multiple on a cold path (PrevCostRatio still zero), or
// an Epsilon multiple of the previous solve's cost ratio otherwise.
func (p *Path) computeThreshold() float64 {
	dist := geom.Distance(p.Start.Point(), p.End.Point())
	if p.PrevCostRatio == 0 {
		return dist * OvalConstant
	}

	return p.PrevCostRatio * Epsilon * dist
}

// withinThreshold reports whether both endpoints of seg could lie on a
// path no longer than p.Threshold. A non-positive threshold disables
// pruning (used on the post-failure retry).
func (p *Path) withinThreshold(seg geom.Segment) bool {
	if p.Threshold <= 0 {
		return true
	}
	start, end := p.Start.Point(), p.End.Point()
	da := geom.Distance(seg.A, start) + geom.Distance(seg.A, end)
	db := geom.Distance(seg.B, start) + geom.Distance(seg.B, end)

	return da <= p.Threshold && db <= p.Threshold
}
