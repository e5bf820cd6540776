// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/reentry/geometry"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for jitter. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpacing sets the grid step and square side in mm. Panics unless s > 0.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithRadius sets the radius of rings, annuli and solids in mm.
// Panics unless r > 0.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithOrigin translates every point added afterwards by o.
func WithOrigin(o geometry.Point) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithJitter perturbs every coordinate by a uniform draw in [-a, a].
// Requires WithSeed or WithRand. Panics if a < 0.
func WithJitter(a float64) BuilderOption {
	if a < 0 || math.IsNaN(a) {
		panic("builder: WithJitter(a<0)")
	}
	return func(c *builderConfig) {
		c.jitter = a
	}
}
