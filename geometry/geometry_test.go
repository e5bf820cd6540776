package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reentry/geometry"
)

const eps = 1e-12

func TestDistance(t *testing.T) {
	a := geometry.NewPoint(0, 0, 0)
	b := geometry.NewPoint(3, 4, 12)

	assert.InDelta(t, 13.0, geometry.Distance(a, b), eps)
	assert.InDelta(t, 13.0, geometry.Distance(b, a), eps) // symmetric
	assert.Zero(t, geometry.Distance(b, b))
}

func TestAlignmentRatio(t *testing.T) {
	fiber := geometry.NewPoint(1, 0, 0)

	cases := []struct {
		name   string
		travel geometry.Point
		want   float64
	}{
		{"parallel", geometry.NewPoint(5, 0, 0), 0},
		{"antiparallel folds to parallel", geometry.NewPoint(-2, 0, 0), 0},
		{"perpendicular", geometry.NewPoint(0, 3, 0), 1},
		{"perpendicular z", geometry.NewPoint(0, 0, -1), 1},
		{"45 degrees", geometry.NewPoint(1, 1, 0), 0.5},
		{"135 degrees folds to 45", geometry.NewPoint(-1, 1, 0), 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geometry.AlignmentRatio(tc.travel, fiber)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestAlignmentRatio_ZeroVector(t *testing.T) {
	_, err := geometry.AlignmentRatio(geometry.NewPoint(1, 0, 0), geometry.Point{})
	require.ErrorIs(t, err, geometry.ErrZeroVector)

	_, err = geometry.AlignmentRatio(geometry.Point{}, geometry.NewPoint(1, 0, 0))
	require.ErrorIs(t, err, geometry.ErrZeroVector)
}

// Nearly identical directions must not produce NaN from acos(1+ε).
func TestAlignmentRatio_ClampsCosine(t *testing.T) {
	v := geometry.NewPoint(0.1, 0.2, 0.3)
	got, err := geometry.AlignmentRatio(v, v)
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-6)
}
