// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context using %w.
//   - Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (rows, cols, n,
// segments) is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that jitter was requested without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the draft could not be assembled into
// a valid mesh (nil constructor, index outside the draft).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid constructor parameter that is not
// a size, such as an unknown solid.
var ErrOptionViolation = errors.New("builder: invalid option value")
