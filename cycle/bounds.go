package cycle

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/reentry/cost"
	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/velocity"
)

var (
	// ErrInvalidBounds is returned for an empty, negative or NaN range.
	ErrInvalidBounds = errors.New("cycle: invalid bounds")

	// ErrPathIndex is returned when a path names a vertex outside the mesh.
	ErrPathIndex = errors.New("cycle: path vertex out of range")
)

// Default search window.
const (
	DefaultMinDist = 8.0   // mm
	DefaultMaxDist = 20.0  // mm
	DefaultMinTime = 100   // ms
	DefaultMaxTime = 99999 // ms
)

// Bounds is the acceptance window of a rotor. Both ranges are inclusive.
type Bounds struct {
	MinDist float64 `yaml:"min_dist"` // mm
	MaxDist float64 `yaml:"max_dist"` // mm
	MinTime int     `yaml:"min_time"` // ms
	MaxTime int     `yaml:"max_time"` // ms
}

// DefaultBounds returns 8–20 mm and 100–99999 ms.
func DefaultBounds() Bounds {
	return Bounds{
		MinDist: DefaultMinDist,
		MaxDist: DefaultMaxDist,
		MinTime: DefaultMinTime,
		MaxTime: DefaultMaxTime,
	}
}

// Validate rejects ranges that can never accept a path.
func (b Bounds) Validate() error {
	switch {
	case math.IsNaN(b.MinDist) || math.IsNaN(b.MaxDist):
		return fmt.Errorf("distance range has NaN: %w", ErrInvalidBounds)
	case b.MinDist < 0 || b.MinDist > b.MaxDist:
		return fmt.Errorf("distance range [%g, %g]: %w", b.MinDist, b.MaxDist, ErrInvalidBounds)
	case b.MinTime < 0 || b.MinTime > b.MaxTime:
		return fmt.Errorf("time range [%d, %d]: %w", b.MinTime, b.MaxTime, ErrInvalidBounds)
	}

	return nil
}

// DistanceOK reports whether d lies in [MinDist, MaxDist].
func (b Bounds) DistanceOK(d float64) bool { return b.MinDist <= d && d <= b.MaxDist }

// TimeOK reports whether ms lies in [MinTime, MaxTime].
func (b Bounds) TimeOK(ms int) bool { return b.MinTime <= ms && ms <= b.MaxTime }

// CheckPath verifies every vertex of p is in [0, n).
func CheckPath(p []int, n int) error {
	for _, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("vertex %d of %d: %w", v, n, ErrPathIndex)
		}
	}

	return nil
}

// Filter keeps the paths whose length and, when field is non-empty,
// rounded conduction time fall inside b. Order is preserved and the input
// is not modified.
//
// Errors: ErrInvalidBounds, ErrPathIndex, velocity.ErrInvalidVelocityField.
// Complexity: O(total path length).
func Filter(paths [][]int, points []geometry.Point, field velocity.Field, b Bounds) ([][]int, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := field.Validate(len(points)); err != nil {
		return nil, err
	}

	out := make([][]int, 0, len(paths))
	for i, p := range paths {
		if err := CheckPath(p, len(points)); err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		if !b.DistanceOK(cost.PathLength(p, points)) {
			continue
		}
		if field.Enabled() {
			ms, err := cost.PathMillis(p, points, field)
			if err != nil {
				return nil, fmt.Errorf("path %d: %w", i, err)
			}
			if !b.TimeOK(ms) {
				continue
			}
		}
		out = append(out, p)
	}

	return out, nil
}
