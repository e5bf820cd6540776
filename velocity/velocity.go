// Package velocity describes the per-point conduction field used to turn
// path lengths into conduction times.
//
// Each point carries a fibre direction, a conduction speed in mm/s and an
// anisotropy penalty factor ≥ 1. Travelling along the fibre uses the speed
// as is; travelling across it multiplies the speed by the penalty factor
// (see cost.SegmentTime).
//
// An empty Field is valid and disables every time-based check.
package velocity

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/reentry/geometry"
)

// ErrInvalidVelocityField is returned when a field cannot produce finite
// conduction times: wrong length, non-positive or non-finite speed,
// zero-magnitude fibre vector, or non-finite penalty.
var ErrInvalidVelocityField = errors.New("velocity: invalid velocity field")

// Entry is the conduction data of one point.
type Entry struct {
	Fiber   geometry.Point // local fibre direction (any non-zero length)
	Speed   float64        // conduction speed, mm/s, > 0
	Penalty float64        // anisotropy penalty factor, ≥ 1 in practice
}

// Field is aligned with the mesh points: Field[i] belongs to point i.
type Field []Entry

// Enabled reports whether time-based checks are active.
func (f Field) Enabled() bool { return len(f) > 0 }

// Validate checks the field against a mesh of n points.
// An empty field is always valid.
//
// Errors: ErrInvalidVelocityField wrapped with the first offending index.
// Complexity: O(n).
func (f Field) Validate(n int) error {
	if len(f) == 0 {
		return nil
	}
	if len(f) != n {
		return fmt.Errorf("field has %d entries for %d points: %w", len(f), n, ErrInvalidVelocityField)
	}
	for i := range f {
		if err := f[i].Validate(); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}

	return nil
}

// Validate checks a single entry.
func (e Entry) Validate() error {
	switch {
	case !(e.Speed > 0) || math.IsInf(e.Speed, 0):
		return fmt.Errorf("speed %g: %w", e.Speed, ErrInvalidVelocityField)
	case geometry.IsZero(e.Fiber) || !finite(e.Fiber):
		return fmt.Errorf("fibre %v: %w", e.Fiber, ErrInvalidVelocityField)
	case math.IsNaN(e.Penalty) || math.IsInf(e.Penalty, 0):
		return fmt.Errorf("penalty %g: %w", e.Penalty, ErrInvalidVelocityField)
	}

	return nil
}

func finite(p geometry.Point) bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Uniform returns a field of n identical entries.
func Uniform(n int, fiber geometry.Point, speed, penalty float64) Field {
	f := make(Field, n)
	for i := range f {
		f[i] = Entry{Fiber: fiber, Speed: speed, Penalty: penalty}
	}

	return f
}
