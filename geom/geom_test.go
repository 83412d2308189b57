package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/orthoroute/geom"
)

func TestRectangle_Contains(t *testing.T) {
	r := geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}

	assert.True(t, r.Contains(geom.Point{X: 0, Y: 0}), "top-left edge is inside")
	assert.True(t, r.Contains(geom.Point{X: 9, Y: 9}))
	assert.False(t, r.Contains(geom.Point{X: 10, Y: 5}), "right edge is excluded")
	assert.False(t, r.Contains(geom.Point{X: 5, Y: 10}), "bottom edge is excluded")
}

func TestRectangle_ContainsProper(t *testing.T) {
	r := geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}

	assert.True(t, r.ContainsProper(geom.Point{X: 5, Y: 5}))
	assert.False(t, r.ContainsProper(geom.Point{X: 0, Y: 5}), "on left edge is not proper-contained")
	assert.False(t, r.ContainsProper(geom.Point{X: 9, Y: 0}), "on top edge is not proper-contained")
}

func TestRectangle_ContainsRect(t *testing.T) {
	outer := geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	inner := geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}

	assert.True(t, outer.ContainsRect(inner), "equal rectangles contain each other inclusively")

	outside := geom.Rectangle{X: 5, Y: 5, Width: 10, Height: 10}
	assert.False(t, outer.ContainsRect(outside))
}

func TestRectangle_Intersects(t *testing.T) {
	a := geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	b := geom.Rectangle{X: 10, Y: 0, Width: 10, Height: 10}
	c := geom.Rectangle{X: 5, Y: 5, Width: 10, Height: 10}

	assert.False(t, a.Intersects(b), "rectangles sharing only an edge do not intersect")
	assert.True(t, a.Intersects(c))
}

func TestRectangle_PositionOf(t *testing.T) {
	r := geom.Rectangle{X: 10, Y: 10, Width: 10, Height: 10}

	cases := []struct {
		name string
		p    geom.Point
		want geom.Position
	}{
		{"inside", geom.Point{X: 15, Y: 15}, geom.None},
		{"north", geom.Point{X: 15, Y: 0}, geom.North},
		{"south", geom.Point{X: 15, Y: 30}, geom.South},
		{"west", geom.Point{X: 0, Y: 15}, geom.West},
		{"east", geom.Point{X: 30, Y: 15}, geom.East},
		{"north-west", geom.Point{X: 0, Y: 0}, geom.North | geom.West},
		{"south-east", geom.Point{X: 30, Y: 30}, geom.South | geom.East},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.PositionOf(tc.p))
		})
	}
}

func TestSegment_Intersects(t *testing.T) {
	cross := geom.Segment{A: geom.Point{X: 0, Y: 5}, B: geom.Point{X: 10, Y: 5}}
	blocker := geom.Segment{A: geom.Point{X: 5, Y: 0}, B: geom.Point{X: 5, Y: 10}}
	assert.True(t, cross.Intersects(blocker))

	touching := geom.Segment{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 0, Y: 5}}
	shareEndpoint := geom.Segment{A: geom.Point{X: 0, Y: 5}, B: geom.Point{X: 5, Y: 5}}
	assert.False(t, touching.Intersects(shareEndpoint), "sharing only an endpoint is not an intersection")
}

func TestSegment_BlockedBy(t *testing.T) {
	rect := geom.Rectangle{X: 4, Y: 0, Width: 2, Height: 10}
	seg := geom.Segment{A: geom.Point{X: 0, Y: 5}, B: geom.Point{X: 10, Y: 5}}

	assert.True(t, seg.BlockedBy(rect, 0))

	// A segment that only reaches the obstacle's corner, growing away from
	// it, should not be blocked by that same corner.
	corner := geom.Segment{A: geom.Point{X: 0, Y: 0}, B: rect.TopLeft()}
	assert.False(t, corner.BlockedBy(rect, 0))
}

func TestCrossProductSign(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	above := geom.Point{X: 5, Y: -5}
	below := geom.Point{X: 5, Y: 5}

	assert.Less(t, geom.CrossProduct(a, b, above), int64(0))
	assert.Greater(t, geom.CrossProduct(a, b, below), int64(0))
	assert.Equal(t, int64(0), geom.CrossProduct(a, b, geom.Point{X: 5, Y: 0}))
}
