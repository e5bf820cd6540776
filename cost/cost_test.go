package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reentry/cost"
	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/velocity"
)

func square() []geometry.Point {
	return []geometry.Point{
		geometry.NewPoint(0, 0, 0),
		geometry.NewPoint(10, 0, 0),
		geometry.NewPoint(10, 10, 0),
		geometry.NewPoint(0, 10, 0),
	}
}

func TestPathLength(t *testing.T) {
	pts := square()
	assert.Equal(t, 0.0, cost.PathLength(nil, pts))
	assert.Equal(t, 0.0, cost.PathLength([]int{2}, pts))
	assert.InDelta(t, 40.0, cost.PathLength([]int{0, 1, 2, 3, 0}, pts), 1e-12)
	assert.InDelta(t, 10+math.Sqrt(200), cost.PathLength([]int{0, 1, 3}, pts), 1e-12)
}

func TestPathTime_IsotropicIsLengthOverSpeed(t *testing.T) {
	pts := square()
	const v = 250.0
	field := velocity.Uniform(len(pts), geometry.NewPoint(0.3, -0.2, 0.9), v, 1)

	for _, path := range [][]int{{0, 1, 2, 3, 0}, {0, 2, 1, 3}, {3, 1}} {
		got, err := cost.PathTime(path, pts, field)
		require.NoError(t, err)
		assert.InEpsilon(t, cost.PathLength(path, pts)/v, got, 1e-12, "path %v", path)
	}
}

func TestSegmentTime_Anisotropy(t *testing.T) {
	pts := square()
	field := velocity.Uniform(len(pts), geometry.NewPoint(1, 0, 0), 100, 3)

	along, err := cost.SegmentTime(0, 1, pts, field)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/100, along, 1e-12)

	across, err := cost.SegmentTime(1, 2, pts, field)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/300, across, 1e-12)
}

func TestSegmentTime_UsesDepartureVertex(t *testing.T) {
	pts := square()
	field := velocity.Field{
		{Fiber: geometry.NewPoint(1, 0, 0), Speed: 100, Penalty: 1},
		{Fiber: geometry.NewPoint(1, 0, 0), Speed: 200, Penalty: 1},
		{Fiber: geometry.NewPoint(1, 0, 0), Speed: 1, Penalty: 1},
		{Fiber: geometry.NewPoint(1, 0, 0), Speed: 1, Penalty: 1},
	}

	fwd, err := cost.SegmentTime(0, 1, pts, field)
	require.NoError(t, err)
	back, err := cost.SegmentTime(1, 0, pts, field)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, fwd, 1e-12)
	assert.InDelta(t, 0.05, back, 1e-12)
}

func TestSegmentTime_CoincidentPoints(t *testing.T) {
	pts := []geometry.Point{geometry.NewPoint(1, 1, 1), geometry.NewPoint(1, 1, 1)}
	field := velocity.Uniform(2, geometry.NewPoint(0, 0, 1), 10, 2)

	got, err := cost.SegmentTime(0, 1, pts, field)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestSegmentTime_InvalidField(t *testing.T) {
	pts := square()

	_, err := cost.SegmentTime(0, 1, pts, nil)
	require.ErrorIs(t, err, velocity.ErrInvalidVelocityField)

	zeroFibre := velocity.Uniform(len(pts), geometry.Point{}, 100, 1)
	_, err = cost.PathTime([]int{0, 1, 2}, pts, zeroFibre)
	require.ErrorIs(t, err, velocity.ErrInvalidVelocityField)

	stopped := velocity.Uniform(len(pts), geometry.NewPoint(1, 0, 0), 0, 1)
	_, err = cost.SegmentTime(0, 1, pts, stopped)
	require.ErrorIs(t, err, velocity.ErrInvalidVelocityField)
}

func TestMillis(t *testing.T) {
	assert.Equal(t, 0, cost.Millis(0))
	assert.Equal(t, 12, cost.Millis(0.0124))
	assert.Equal(t, 13, cost.Millis(0.0126))
	assert.Equal(t, 400, cost.Millis(0.4))

	pts := square()
	field := velocity.Uniform(len(pts), geometry.NewPoint(1, 0, 0), 100, 1)
	ms, err := cost.PathMillis([]int{0, 1, 2, 3, 0}, pts, field)
	require.NoError(t, err)
	assert.Equal(t, 400, ms)
}
