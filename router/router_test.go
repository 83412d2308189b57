package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
	"github.com/katalvlaran/orthoroute/router"
)

func TestSolve_EmptyWorld(t *testing.T) {
	r := router.New()
	p := r.AddPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, nil, nil)

	r.Solve()

	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, p.Points)
}

func TestSolve_BendpointForcesDetour(t *testing.T) {
	r := router.New()
	p := r.AddPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, []geom.Point{{X: 5, Y: 5}}, nil)

	r.Solve()

	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}}, p.Points)
}

func TestSolve_OneObstacleDetour(t *testing.T) {
	r := router.New()
	_, err := r.AddObstacle(geom.Rectangle{X: 4, Y: 0, Width: 2, Height: 10})
	require.NoError(t, err)
	p := r.AddPath(geom.Point{X: 0, Y: 5}, geom.Point{X: 10, Y: 5}, nil, nil)

	r.Solve()

	require.NotEmpty(t, p.Points)
	assert.Equal(t, geom.Point{X: 0, Y: 5}, p.Points[0])
	assert.Equal(t, geom.Point{X: 10, Y: 5}, p.Points[len(p.Points)-1])
	assert.Greater(t, len(p.Points), 2)
}

func TestSolve_EndpointInsideObstacleIsExcluded(t *testing.T) {
	r := router.New()
	_, err := r.AddObstacle(geom.Rectangle{X: 0, Y: 0, Width: 100, Height: 100})
	require.NoError(t, err)
	p := r.AddPath(geom.Point{X: 10, Y: 10}, geom.Point{X: 90, Y: 90}, nil, nil)

	r.Solve()

	assert.Equal(t, []geom.Point{{X: 10, Y: 10}, {X: 90, Y: 90}}, p.Points)
}

func TestSolve_TwoStackedObstaclesIsDeterministic(t *testing.T) {
	build := func() []geom.Point {
		r := router.New()
		_, err := r.AddObstacle(geom.Rectangle{X: 4, Y: 0, Width: 2, Height: 4})
		require.NoError(t, err)
		_, err = r.AddObstacle(geom.Rectangle{X: 4, Y: 6, Width: 2, Height: 4})
		require.NoError(t, err)
		p := r.AddPath(geom.Point{X: 0, Y: 5}, geom.Point{X: 10, Y: 5}, nil, nil)
		r.Solve()

		return p.Points
	}

	first := build()
	for i := 0; i < 4; i++ {
		assert.Equal(t, first, build())
	}
}

func TestSolve_SharedCornerOffsetsAreDistinctAndMonotone(t *testing.T) {
	r := router.New()
	_, err := r.AddObstacle(geom.Rectangle{X: 4, Y: 4, Width: 4, Height: 4})
	require.NoError(t, err)
	pa := r.AddPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, nil, nil)
	pb := r.AddPath(geom.Point{X: 0, Y: 2}, geom.Point{X: 10, Y: 8}, nil, nil)

	r.Solve()

	require.NotEmpty(t, pa.Points)
	require.NotEmpty(t, pb.Points)
	assert.NotEqual(t, pa.Points, pb.Points)

	// Both paths bend once, at the obstacle's top-right corner (8,4). Each
	// bend point is pushed out along that corner's north-east diagonal, one
	// by 1x and the other by 2x the default offset of 4.
	require.Len(t, pa.Points, 3)
	require.Len(t, pb.Points, 3)
	da := pa.Points[1].X - 8
	db := pb.Points[1].X - 8
	assert.Equal(t, geom.Point{X: 8 + da, Y: 4 - da}, pa.Points[1])
	assert.Equal(t, geom.Point{X: 8 + db, Y: 4 - db}, pb.Points[1])
	assert.ElementsMatch(t, []int{4, 8}, []int{da, db})
}

func TestSolve_AddRemoveObstacleIsNoOp(t *testing.T) {
	r := router.New()
	p := r.AddPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, nil, nil)
	r.Solve()
	before := append([]geom.Point(nil), p.Points...)

	rect := geom.Rectangle{X: 50, Y: 50, Width: 5, Height: 5}
	_, err := r.AddObstacle(rect)
	require.NoError(t, err)
	assert.True(t, r.RemoveObstacle(rect))
	r.Solve()

	assert.Equal(t, before, p.Points)
}

func TestSolve_UpdateObstacleWithSameRectIsNoOp(t *testing.T) {
	r := router.New()
	rect := geom.Rectangle{X: 4, Y: 0, Width: 2, Height: 10}
	_, err := r.AddObstacle(rect)
	require.NoError(t, err)
	p := r.AddPath(geom.Point{X: 0, Y: 5}, geom.Point{X: 10, Y: 5}, nil, nil)
	r.Solve()
	before := append([]geom.Point(nil), p.Points...)

	_, err = r.UpdateObstacle(rect, rect)
	require.NoError(t, err)
	r.Solve()

	assert.Equal(t, before, p.Points)
}

func TestSolve_NoSegmentCrossesAnyObstacleInterior(t *testing.T) {
	r := router.New()
	_, err := r.AddObstacle(geom.Rectangle{X: 4, Y: 4, Width: 4, Height: 4})
	require.NoError(t, err)
	_, err = r.AddObstacle(geom.Rectangle{X: 12, Y: 2, Width: 3, Height: 6})
	require.NoError(t, err)
	p := r.AddPath(geom.Point{X: 0, Y: 6}, geom.Point{X: 20, Y: 6}, nil, nil)

	r.Solve()

	require.NotEmpty(t, p.Points)
	for i := 0; i+1 < len(p.Points); i++ {
		seg := geom.Segment{A: p.Points[i], B: p.Points[i+1]}
		for _, o := range r.Obstacles() {
			assert.False(t, seg.BlockedBy(o.Rect, 0), "leg %d must not cross obstacle interior", i)
		}
	}
}

func TestSetSpacing_NeverDecreasesClearance(t *testing.T) {
	build := func(spacing int) []geom.Point {
		r := router.New()
		r.SetSpacing(spacing)
		_, err := r.AddObstacle(geom.Rectangle{X: 4, Y: 0, Width: 2, Height: 10})
		require.NoError(t, err)
		p := r.AddPath(geom.Point{X: 0, Y: 5}, geom.Point{X: 10, Y: 5}, nil, nil)
		r.Solve()

		return p.Points
	}

	small := build(2)
	large := build(8)
	require.NotEmpty(t, small)
	require.NotEmpty(t, large)

	minDist := func(points []geom.Point, rect geom.Rectangle) float64 {
		best := -1.0
		for _, p := range points {
			for _, c := range []geom.Point{rect.TopLeft(), rect.TopRight(), rect.BottomLeft(), rect.BottomRight()} {
				d := geom.Distance(p, c)
				if best < 0 || d < best {
					best = d
				}
			}
		}

		return best
	}

	rect := geom.Rectangle{X: 4, Y: 0, Width: 2, Height: 10}
	assert.GreaterOrEqual(t, minDist(large, rect), minDist(small, rect))
}

func TestRemovePath_DetachesChildren(t *testing.T) {
	r := router.New()
	p := r.AddPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, []geom.Point{{X: 5, Y: 5}}, nil)
	r.Solve()
	require.NoError(t, r.RemovePath(p))
	assert.Empty(t, r.Paths())

	// A new obstacle on the old route dirties no path: the removed path's
	// bendpoint children are gone from the working set too.
	dirtied, err := r.AddObstacle(geom.Rectangle{X: 4, Y: 4, Width: 2, Height: 2})
	require.NoError(t, err)
	assert.False(t, dirtied)
}

func TestGetSpacing_DefaultsToCoreDefault(t *testing.T) {
	r := router.New()
	assert.Equal(t, core.DefaultSpacing, r.GetSpacing())
}
