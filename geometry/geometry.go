package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrZeroVector is returned by AlignmentRatio when either vector has zero
// magnitude, in which case the angle between them is undefined.
var ErrZeroVector = errors.New("geometry: zero-magnitude vector")

const (
	straightAngle = 180.0 // degrees
	rightAngle    = 90.0  // degrees; normalisation divisor of AlignmentRatio
)

// Point is a 3D coordinate in millimetres.
type Point = r3.Vec

// NewPoint builds a Point from its three coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Sub returns the vector p - q.
func Sub(p, q Point) Point {
	return r3.Sub(p, q)
}

// IsZero reports whether v has zero magnitude.
func IsZero(v Point) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return r3.Norm(r3.Sub(p1, p2))
}

// AlignmentRatio measures how far travel deviates from the fibre direction.
// The angle between the two vectors is folded into [0°, 90°] (angles above
// 90° are reflected as 180°-angle, so travelling against the fibre counts as
// travelling along it) and normalised by 90°:
//
//	0 → parallel to the fibre (fastest conduction)
//	1 → perpendicular to the fibre (slowest conduction)
//
// Returns ErrZeroVector if either vector has zero magnitude.
func AlignmentRatio(travel, fiber Point) (float64, error) {
	if IsZero(travel) || IsZero(fiber) {
		return 0, ErrZeroVector
	}

	// cos θ = (v·w) / (|v||w|), clamped: rounding may push it a hair past ±1.
	cos := r3.Dot(travel, fiber) / (r3.Norm(travel) * r3.Norm(fiber))
	cos = math.Max(-1, math.Min(1, cos))

	angle := math.Acos(cos) * straightAngle / math.Pi
	if angle > rightAngle {
		angle = straightAngle - angle
	}

	return angle / rightAngle, nil
}
