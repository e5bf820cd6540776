// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; context is attached with fmt.Errorf("ctx: %w", ErrX).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrMalformedAdjacency classifies every structural rejection of an
	// adjacency matrix. ErrNonSquare and ErrAsymmetry both match it.
	ErrMalformedAdjacency = errors.New("matrix: malformed adjacency")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare error = &classified{msg: "matrix: matrix is not square", class: ErrMalformedAdjacency}

	// ErrAsymmetry signals that entry(i,j) and entry(j,i) disagree on edge presence.
	ErrAsymmetry error = &classified{msg: "matrix: matrix is not symmetric", class: ErrMalformedAdjacency}

	// ErrVertexOutOfRange indicates a triangle referencing a vertex index
	// outside [0, n).
	ErrVertexOutOfRange = errors.New("matrix: vertex index out of range")
)

// classified is a sentinel that also matches a broader class sentinel, so
// errors.Is(ErrNonSquare, ErrMalformedAdjacency) is true.
type classified struct {
	msg   string
	class error
}

func (e *classified) Error() string { return e.msg }

// Is reports whether target is the broader class of this sentinel.
func (e *classified) Is(target error) bool { return target == e.class }
