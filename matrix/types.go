// SPDX-License-Identifier: MIT

package matrix

// Matrix is the storage behind an AdjacencyMatrix: a mutable r×c grid of
// float64 values addressed by vertex index.
//
// All methods are O(1) except Clone, which is O(r·c).
type Matrix interface {
	Rows() int
	Cols() int

	// At returns entry (i, j), or ErrOutOfRange for an index outside the grid.
	At(i, j int) (float64, error)

	// Set stores v at (i, j); same bounds as At.
	Set(i, j int, v float64) error

	// Clone returns an independent copy.
	Clone() Matrix
}
