// Package cost turns paths over a mesh into lengths (mm) and conduction
// times (s). Both accumulate segment by segment in path order, so a search
// that extends a path one vertex at a time reproduces the exact totals.
//
// Conduction along a segment u→v uses the data of the departure vertex u:
//
//	speed = speed_u × (ratio × (penalty_u − 1) + 1)
//	time  = distance(u, v) / speed
//
// where ratio is geometry.AlignmentRatio(v−u, fiber_u). Coincident points
// contribute zero time.
package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/velocity"
)

// msPerSecond converts seconds to milliseconds.
const msPerSecond = 1000.0

// PathLength sums consecutive distances along path. Paths of 0 or 1
// vertices have length 0.
// Complexity: O(len(path)).
func PathLength(path []int, points []geometry.Point) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		total += geometry.Distance(points[path[i]], points[path[i+1]])
	}

	return total
}

// SegmentTime returns the conduction time in seconds from u to v.
//
// Errors: velocity.ErrInvalidVelocityField if u has no usable entry.
func SegmentTime(u, v int, points []geometry.Point, field velocity.Field) (float64, error) {
	if u < 0 || u >= len(field) {
		return 0, fmt.Errorf("point %d outside field of %d: %w", u, len(field), velocity.ErrInvalidVelocityField)
	}

	travel := geometry.Sub(points[v], points[u])
	if geometry.IsZero(travel) {
		return 0, nil
	}

	e := field[u]
	ratio, err := geometry.AlignmentRatio(travel, e.Fiber)
	if err != nil {
		return 0, fmt.Errorf("point %d fibre: %w", u, velocity.ErrInvalidVelocityField)
	}
	speed := e.Speed * (ratio*(e.Penalty-1) + 1)
	if !(speed > 0) || math.IsInf(speed, 0) {
		return 0, fmt.Errorf("point %d effective speed %g: %w", u, speed, velocity.ErrInvalidVelocityField)
	}

	return geometry.Distance(points[u], points[v]) / speed, nil
}

// PathTime sums SegmentTime along path, in seconds.
// Complexity: O(len(path)).
func PathTime(path []int, points []geometry.Point, field velocity.Field) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		t, err := SegmentTime(path[i], path[i+1], points, field)
		if err != nil {
			return 0, err
		}
		total += t
	}

	return total, nil
}

// Millis converts seconds to whole milliseconds, rounding half to even.
// Every time bound compares this value.
func Millis(seconds float64) int {
	return int(math.RoundToEven(seconds * msPerSecond))
}

// PathMillis is PathTime followed by Millis.
func PathMillis(path []int, points []geometry.Point, field velocity.Field) (int, error) {
	t, err := PathTime(path, points, field)
	if err != nil {
		return 0, err
	}

	return Millis(t), nil
}
