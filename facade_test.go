package orthoroute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthoroute"
	"github.com/katalvlaran/orthoroute/geom"
)

func TestSolveFor_EmptyWorld(t *testing.T) {
	points, err := orthoroute.SolveFor(nil, nil, 0, 0, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, points)
}

func TestSolveFor_Bendpoint(t *testing.T) {
	points, err := orthoroute.SolveFor(nil, [][2]int{{5, 5}}, 0, 0, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}}, points)
}

func TestSolveFor_ObstacleDetour(t *testing.T) {
	points, err := orthoroute.SolveFor([][4]int{{4, 0, 2, 10}}, nil, 0, 5, 10, 5)
	require.NoError(t, err)
	require.NotEmpty(t, points)
	assert.Equal(t, geom.Point{X: 0, Y: 5}, points[0])
	assert.Equal(t, geom.Point{X: 10, Y: 5}, points[len(points)-1])
}

func TestSolveFor_InvalidObstacle(t *testing.T) {
	_, err := orthoroute.SolveFor([][4]int{{0, 0, -1, 5}}, nil, 0, 0, 10, 10)
	assert.ErrorIs(t, err, orthoroute.ErrInvalidInput)
}
