// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// meshEdgeValue is the exact entry written for an edge that comes from a
// mesh triangle. Other non-zero values are edges of other provenance.
const meshEdgeValue = 1.0

// defaultReserve is the initial capacity for neighbour slices.
const defaultReserve = 8

// AdjacencyMatrix wraps a square, symmetric Matrix as an undirected graph
// over vertex indices 0..n-1. Neighbour lists are cached at construction so
// the searches read them in O(1); the wrapper is read-only afterwards and
// safe for concurrent readers.
type AdjacencyMatrix struct {
	Mat Matrix // underlying adjacency matrix (not to be mutated after wrapping)

	neighbors     [][]int // j ≠ i with entry(i,j) ≠ 0, ascending
	meshNeighbors [][]int // j ≠ i with entry(i,j) == 1, ascending
}

// NewAdjacencyMatrix validates m and builds the neighbour caches.
// Stage 1 (Validate): non-nil, square, symmetric edge presence.
// Stage 2 (Execute): one row scan per vertex; diagonal entries (self loops) are ignored.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry (the latter two match ErrMalformedAdjacency).
// Complexity: O(n²) time, O(n + E) extra space.
func NewAdjacencyMatrix(m Matrix) (*AdjacencyMatrix, error) {
	if err := ValidateSymmetric(m); err != nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
	}

	n := m.Rows()
	am := &AdjacencyMatrix{
		Mat:           m,
		neighbors:     make([][]int, n),
		meshNeighbors: make([][]int, n),
	}

	// Dense fast path reads the flat row; other implementations go through At.
	dense, isDense := m.(*Dense)

	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		nbrs := make([]int, 0, defaultReserve)
		mesh := make([]int, 0, defaultReserve)
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			if isDense {
				w = dense.row(i)[j]
			} else if w, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
			}
			if w == 0 {
				continue
			}
			nbrs = append(nbrs, j)
			if w == meshEdgeValue {
				mesh = append(mesh, j)
			}
		}
		am.neighbors[i] = nbrs
		am.meshNeighbors[i] = mesh
	}

	return am, nil
}

// VertexCount returns the number of vertices (matrix dimension).
func (am *AdjacencyMatrix) VertexCount() int {
	if am == nil || am.Mat == nil {
		return 0
	}

	return am.Mat.Rows()
}

// Neighbors returns the ascending indices adjacent to u (any non-zero entry).
// The returned slice is shared; callers must not modify it.
func (am *AdjacencyMatrix) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= len(am.neighbors) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrOutOfRange)
	}

	return am.neighbors[u], nil
}

// MeshNeighbors returns the ascending indices joined to u by an entry of
// exactly 1, i.e. by a mesh triangle edge. The returned slice is shared.
func (am *AdjacencyMatrix) MeshNeighbors(u int) ([]int, error) {
	if u < 0 || u >= len(am.meshNeighbors) {
		return nil, fmt.Errorf("MeshNeighbors(%d): %w", u, ErrOutOfRange)
	}

	return am.meshNeighbors[u], nil
}

// HasEdge reports whether u and v are adjacent. Out-of-range indices report false.
func (am *AdjacencyMatrix) HasEdge(u, v int) bool {
	w, err := am.Mat.At(u, v)

	return err == nil && u != v && w != 0
}

// EdgeCount returns the number of undirected edges (self loops excluded).
// Complexity: O(n).
func (am *AdjacencyMatrix) EdgeCount() int {
	total := 0
	for _, nbrs := range am.neighbors {
		total += len(nbrs)
	}

	return total / 2
}

// FromTriangles builds the mesh adjacency of n vertices: for every triangle
// (a, b, c) the three undirected edges ab, bc, ca receive the value 1.
//
// Errors: ErrVertexOutOfRange when a triangle references an index outside [0, n).
// Complexity: O(n² + T).
func FromTriangles(n int, triangles [][3]int) (*AdjacencyMatrix, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("FromTriangles: %w", err)
	}

	var k, e int
	for k = 0; k < len(triangles); k++ {
		tri := triangles[k]
		for e = 0; e < 3; e++ {
			if tri[e] < 0 || tri[e] >= n {
				return nil, fmt.Errorf("FromTriangles: triangle %d vertex %d: %w",
					k, tri[e], ErrVertexOutOfRange)
			}
		}
		// ab, bc, ca in both directions.
		for e = 0; e < 3; e++ {
			u, v := tri[e], tri[(e+1)%3]
			if u == v {
				continue // degenerate triangle side
			}
			_ = m.Set(u, v, meshEdgeValue)
			_ = m.Set(v, u, meshEdgeValue)
		}
	}

	return NewAdjacencyMatrix(m)
}
