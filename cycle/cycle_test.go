package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reentry/cycle"
	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/velocity"
)

func TestKey_RotationAndDirectionInvariant(t *testing.T) {
	for _, p := range [][]int{{0, 1, 2, 0}, {1, 2, 0, 1}, {2, 0, 1, 2}, {2, 1, 0, 2}} {
		assert.Equal(t, []int{0, 1, 2}, cycle.KeySet(p), "path %v", p)
		assert.Equal(t, "0,1,2", cycle.Key(p), "path %v", p)
	}
	assert.Equal(t, []int{}, cycle.KeySet([]int{4}))
	assert.Equal(t, "", cycle.Key(nil))

	// a tail before the loop stays part of the key
	assert.Equal(t, []int{1, 3, 5, 7}, cycle.KeySet([]int{7, 5, 3, 1, 5}))
}

func TestKeySet_DoesNotModifyInput(t *testing.T) {
	p := []int{3, 1, 2, 3}
	_ = cycle.KeySet(p)
	assert.Equal(t, []int{3, 1, 2, 3}, p)
}

func TestDedup(t *testing.T) {
	in := [][]int{{0, 1, 2, 0}, {1, 2, 0, 1}, {2, 0, 1, 2}, {0, 1, 3, 0}, {2, 1, 0, 2}}
	out := cycle.Dedup(in)
	assert.Equal(t, [][]int{{0, 1, 2, 0}, {0, 1, 3, 0}}, out)
	assert.Empty(t, cycle.Dedup(nil))
}

func TestRegistry(t *testing.T) {
	reg := cycle.NewRegistry()
	assert.True(t, reg.Add([]int{5, 2, 9, 5}))
	assert.True(t, reg.Add([]int{1, 2, 3, 1}))
	assert.False(t, reg.Add([]int{9, 5, 2, 9}))
	assert.True(t, reg.Add([]int{1, 2, 1})) // {1,2} is a prefix of {1,2,3}
	assert.True(t, reg.Seen([]int{3, 2, 1, 3}))
	assert.False(t, reg.Seen([]int{1, 3, 1}))

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, [][]int{{1, 2}, {1, 2, 3}, {2, 5, 9}}, reg.Keys())
}

func TestBoundsValidate(t *testing.T) {
	require.NoError(t, cycle.DefaultBounds().Validate())

	bad := []cycle.Bounds{
		{MinDist: 5, MaxDist: 4, MinTime: 0, MaxTime: 1},
		{MinDist: -1, MaxDist: 4, MinTime: 0, MaxTime: 1},
		{MinDist: 0, MaxDist: 4, MinTime: 10, MaxTime: 1},
	}
	for _, b := range bad {
		require.ErrorIs(t, b.Validate(), cycle.ErrInvalidBounds, "%+v", b)
	}
}

// squarePoints are the corners of a 10 mm square.
func squarePoints() []geometry.Point {
	return []geometry.Point{
		geometry.NewPoint(0, 0, 0),
		geometry.NewPoint(10, 0, 0),
		geometry.NewPoint(10, 10, 0),
		geometry.NewPoint(0, 10, 0),
	}
}

func TestFilter_DistanceOnly(t *testing.T) {
	pts := squarePoints()
	paths := [][]int{
		{0, 1, 2, 3, 0}, // 40 mm
		{0, 1, 2, 0},    // 20 + 14.14 mm
		{0, 1, 0},       // 20 mm
	}

	got, err := cycle.Filter(paths, pts, nil, cycle.Bounds{MinDist: 20, MaxDist: 40, MaxTime: 1})
	require.NoError(t, err)
	assert.Equal(t, paths, got) // inclusive at both ends, time ignored without a field

	got, err = cycle.Filter(paths, pts, nil, cycle.Bounds{MinDist: 21, MaxDist: 39, MaxTime: 1})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 0}}, got)
}

func TestFilter_TimeAndIdempotence(t *testing.T) {
	pts := squarePoints()
	field := velocity.Uniform(len(pts), geometry.NewPoint(1, 0, 0), 100, 1) // 10 mm → 100 ms
	paths := [][]int{{0, 1, 2, 3, 0}, {0, 1, 2, 0}, {1, 2, 1}}
	b := cycle.Bounds{MinDist: 0, MaxDist: 100, MinTime: 200, MaxTime: 400}

	once, err := cycle.Filter(paths, pts, field, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 0}, {0, 1, 2, 0}, {1, 2, 1}}, once)

	b.MaxTime = 341
	once, err = cycle.Filter(paths, pts, field, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 0}, {1, 2, 1}}, once)

	twice, err := cycle.Filter(once, pts, field, b)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFilter_Errors(t *testing.T) {
	pts := squarePoints()

	_, err := cycle.Filter([][]int{{0, 9, 0}}, pts, nil, cycle.DefaultBounds())
	require.ErrorIs(t, err, cycle.ErrPathIndex)

	_, err = cycle.Filter(nil, pts, velocity.Uniform(2, geometry.NewPoint(1, 0, 0), 1, 1), cycle.DefaultBounds())
	require.ErrorIs(t, err, velocity.ErrInvalidVelocityField)

	_, err = cycle.Filter(nil, pts, nil, cycle.Bounds{MinDist: 2, MaxDist: 1})
	require.ErrorIs(t, err, cycle.ErrInvalidBounds)
}
