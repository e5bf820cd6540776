// SPDX-License-Identifier: MIT

// Package matrix provides the dense adjacency storage consumed by the reentry
// searches.
//
// What:
//
//   - Matrix: minimal two-dimensional float64 interface (Rows, Cols, At, Set, Clone).
//   - Dense:  row-major implementation with bounds-checked accessors.
//   - AdjacencyMatrix: square, symmetric Matrix with cached neighbour lists.
//     Any non-zero entry is an edge; an entry of exactly 1 additionally marks
//     a mesh edge (the provenance required by the anatomical finder).
//   - FromTriangles: builds the mesh adjacency of a triangle list.
//
// Validation:
//
//   - ValidateSquare / ValidateSymmetric are the single source of truth for
//     structural checks. A matrix that fails either is a malformed adjacency:
//     errors.Is(err, ErrMalformedAdjacency) holds for both.
//
// Complexity:
//
//   - NewAdjacencyMatrix: O(n²) time (symmetry check + neighbour cache), O(n+E) extra space.
//   - Neighbors / MeshNeighbors: O(1) (cached slices).
//   - FromTriangles: O(n² + T).
package matrix
