// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng     = nil              (pure/deterministic unless seeded)
//   - spacing = 1 mm             (grid step, square side)
//   - radius  = 1 mm             (rings, annuli, solids)
//   - origin  = (0, 0, 0)
//   - jitter  = 0                (no perturbation)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/reentry/geometry"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for jitter; nil means "no randomness".
	rng *rand.Rand

	spacing float64        // mm, > 0
	radius  float64        // mm, > 0
	origin  geometry.Point // translation applied to every point
	jitter  float64        // mm, ≥ 0; max per-coordinate perturbation
}

const (
	defaultSpacing = 1.0 // mm
	defaultRadius  = 1.0 // mm
	meshEdgeValue  = 1.0 // adjacency entry of a mesh edge
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: defaultSpacing,
		radius:  defaultRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
