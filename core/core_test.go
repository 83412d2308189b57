package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/geom"
)

func TestNewObstacle_Corners(t *testing.T) {
	spacing := &core.SpacingRef{Value: core.DefaultSpacing}
	o, err := core.NewObstacle(geom.Rectangle{X: 4, Y: 0, Width: 2, Height: 10}, spacing)
	require.NoError(t, err)

	assert.Equal(t, geom.Point{X: 4, Y: 0}, o.TopLeft.Point())
	assert.Equal(t, geom.Point{X: 6, Y: 0}, o.TopRight.Point())
	assert.Equal(t, geom.Point{X: 4, Y: 10}, o.BottomLeft.Point())
	assert.Equal(t, geom.Point{X: 6, Y: 10}, o.BottomRight.Point())

	assert.Equal(t, geom.North|geom.West, o.TopLeft.PositionOnObstacle)
	assert.Equal(t, geom.South|geom.East, o.BottomRight.PositionOnObstacle)
	assert.Same(t, o, o.TopLeft.Obstacle)
}

func TestNewObstacle_InvalidRectangle(t *testing.T) {
	_, err := core.NewObstacle(geom.Rectangle{X: 0, Y: 0, Width: -1, Height: 5}, &core.SpacingRef{})
	assert.ErrorIs(t, err, core.ErrInvalidRectangle)
}

func TestVertex_GrowShrinkIsNoOp(t *testing.T) {
	o, err := core.NewObstacle(geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}, &core.SpacingRef{})
	require.NoError(t, err)

	v := o.BottomRight
	before := v.Point()
	v.Grow(7)
	assert.NotEqual(t, before, v.Point())
	v.Shrink(7)
	assert.Equal(t, before, v.Point())
}

func TestObstacle_GrowShrinkRoundTrip(t *testing.T) {
	o, err := core.NewObstacle(geom.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}, &core.SpacingRef{})
	require.NoError(t, err)

	for _, c := range o.Corners() {
		c.Offset = 3
		c.TotalCount = 2
	}
	before := [4]geom.Point{
		o.TopLeft.Point(), o.TopRight.Point(), o.BottomLeft.Point(), o.BottomRight.Point(),
	}
	o.Grow()
	o.Shrink()
	after := [4]geom.Point{
		o.TopLeft.Point(), o.TopRight.Point(), o.BottomLeft.Point(), o.BottomRight.Point(),
	}
	assert.Equal(t, before, after)
}

func TestVertex_ResetRoutingState(t *testing.T) {
	v := core.NewEndpointVertex(1, 2)
	v.Type = core.Innie
	v.TotalCount = 5
	v.AddPath(core.PathID(3))
	v.SetCosine(core.PathID(3), 0.5)

	v.ResetRoutingState(6)

	assert.Equal(t, core.NotSet, v.Type)
	assert.Equal(t, 0, v.TotalCount)
	assert.Equal(t, float64(6), v.Offset)
	assert.Empty(t, v.Paths)
	_, ok := v.Cosine(core.PathID(3))
	assert.False(t, ok)
}

func TestVertex_AddPathIdempotent(t *testing.T) {
	v := core.NewEndpointVertex(0, 0)
	v.AddPath(core.PathID(1))
	v.AddPath(core.PathID(1))
	assert.Equal(t, []core.PathID{1}, v.Paths)
}
