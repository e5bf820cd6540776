// Package aggregate derives per-rotor and per-vertex views of a rotor set:
// rotor times, the maximum rotor time seen by each vertex, heatmap colours
// and summary statistics. Nothing here changes the rotors themselves.
package aggregate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/reentry/cost"
	"github.com/katalvlaran/reentry/cycle"
	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/velocity"
)

var (
	// ErrNoVelocityField is returned by Times when the field is empty.
	ErrNoVelocityField = errors.New("aggregate: rotor times need a velocity field")

	// ErrLengthMismatch is returned when times and rotors differ in length.
	ErrLengthMismatch = errors.New("aggregate: times and rotors differ in length")
)

// Heatmap thresholds in ms: ReentryMillis and above is full red,
// MidReentryMillis is yellow.
const (
	ReentryMillis    = 200
	MidReentryMillis = 120
)

// Times returns the rounded conduction time (ms) of every rotor.
// Complexity: O(total rotor length).
func Times(rotors [][]int, points []geometry.Point, field velocity.Field) ([]int, error) {
	if !field.Enabled() {
		return nil, ErrNoVelocityField
	}
	if err := field.Validate(len(points)); err != nil {
		return nil, err
	}

	out := make([]int, len(rotors))
	for i, r := range rotors {
		if err := cycle.CheckPath(r, len(points)); err != nil {
			return nil, fmt.Errorf("rotor %d: %w", i, err)
		}
		ms, err := cost.PathMillis(r, points, field)
		if err != nil {
			return nil, fmt.Errorf("rotor %d: %w", i, err)
		}
		out[i] = ms
	}

	return out, nil
}

// MaxTimePerVertex returns, for each of n vertices, the largest time among
// the rotors that contain it, or 0 when no rotor does.
// Complexity: O(n + total rotor length).
func MaxTimePerVertex(n int, times []int, rotors [][]int) ([]float64, error) {
	if len(times) != len(rotors) {
		return nil, fmt.Errorf("%d times, %d rotors: %w", len(times), len(rotors), ErrLengthMismatch)
	}

	out := make([]float64, n)
	for i, r := range rotors {
		if err := cycle.CheckPath(r, n); err != nil {
			return nil, fmt.Errorf("rotor %d: %w", i, err)
		}
		t := float64(times[i])
		for _, v := range r {
			if t > out[v] {
				out[v] = t
			}
		}
	}

	return out, nil
}

// InRotor marks the vertices that belong to at least one rotor.
// Out-of-range indices are ignored.
func InRotor(n int, rotors [][]int) []bool {
	out := make([]bool, n)
	for _, r := range rotors {
		for _, v := range r {
			if v >= 0 && v < n {
				out[v] = true
			}
		}
	}

	return out
}

// Intensity maps t onto [0, 1] relative to max.
func Intensity(t, max float64) float64 {
	if !(max > 0) || t <= 0 {
		return 0
	}

	return math.Min(t/max, 1)
}

// Summary describes a set of rotor times.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation; 0 below two values
	Min    float64
	Max    float64
}

// Summarize computes Summary over times. An empty input gives the zero Summary.
func Summarize(times []int) Summary {
	if len(times) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(times))
	for i, t := range times {
		xs[i] = float64(t)
	}

	s := Summary{
		Count: len(xs),
		Mean:  stat.Mean(xs, nil),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
	}
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}

	return s
}
