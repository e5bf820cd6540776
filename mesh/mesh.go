package mesh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/matrix"
)

var (
	// ErrSizeMismatch is returned when the adjacency dimension differs from
	// the number of points. It matches matrix.ErrMalformedAdjacency.
	ErrSizeMismatch = fmt.Errorf("mesh: adjacency size differs from point count: %w", matrix.ErrMalformedAdjacency)

	// ErrTriangleIndex is returned when a triangle references a missing point.
	ErrTriangleIndex = errors.New("mesh: triangle index out of range")

	// ErrNilAdjacency is returned when New receives a nil adjacency.
	ErrNilAdjacency = errors.New("mesh: adjacency is nil")
)

// Triangle is an ordered triple of point indices forming one face.
type Triangle = [3]int

// Mesh bundles the search inputs. It is immutable once built and may be
// shared by concurrent searches.
type Mesh struct {
	Points    []geometry.Point
	Adjacency *matrix.AdjacencyMatrix
	Triangles []Triangle

	incidence *Incidence
}

// New validates and assembles a Mesh.
// Stage 1: adjacency present and sized like points.
// Stage 2: every triangle index within [0, len(points)).
// Stage 3: build the triangle incidence index.
//
// Complexity: O(N + T).
func New(points []geometry.Point, adj *matrix.AdjacencyMatrix, triangles []Triangle) (*Mesh, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if adj.VertexCount() != len(points) {
		return nil, fmt.Errorf("mesh.New: %d points, %d×%d adjacency: %w",
			len(points), adj.VertexCount(), adj.VertexCount(), ErrSizeMismatch)
	}

	inc, err := NewIncidence(len(points), triangles)
	if err != nil {
		return nil, fmt.Errorf("mesh.New: %w", err)
	}

	return &Mesh{
		Points:    points,
		Adjacency: adj,
		Triangles: triangles,
		incidence: inc,
	}, nil
}

// FromTriangles builds a Mesh whose adjacency is derived from the triangles.
func FromTriangles(points []geometry.Point, triangles []Triangle) (*Mesh, error) {
	adj, err := matrix.FromTriangles(len(points), triangles)
	if err != nil {
		return nil, fmt.Errorf("mesh.FromTriangles: %w", err)
	}

	return New(points, adj, triangles)
}

// Len returns the number of points.
func (m *Mesh) Len() int { return len(m.Points) }

// Incidence returns the per-point triangle index.
func (m *Mesh) Incidence() *Incidence { return m.incidence }

// Incidence maps each point to the triangles containing it.
type Incidence struct {
	triangles []Triangle
	byPoint   [][]int // point → indices into triangles, ascending
}

// NewIncidence indexes triangles by point.
// A triangle listing the same point twice is recorded once for that point.
//
// Errors: ErrTriangleIndex.
// Complexity: O(N + T).
func NewIncidence(n int, triangles []Triangle) (*Incidence, error) {
	inc := &Incidence{triangles: triangles, byPoint: make([][]int, n)}

	for k, tri := range triangles {
		for e, p := range tri {
			if p < 0 || p >= n {
				return nil, fmt.Errorf("triangle %d vertex %d: %w", k, p, ErrTriangleIndex)
			}
			if repeatedBefore(tri, e) {
				continue
			}
			inc.byPoint[p] = append(inc.byPoint[p], k)
		}
	}

	return inc, nil
}

// repeatedBefore reports whether tri[e] already occurs in tri[:e].
func repeatedBefore(tri Triangle, e int) bool {
	for i := 0; i < e; i++ {
		if tri[i] == tri[e] {
			return true
		}
	}

	return false
}

// TrianglesOf returns the indices of the triangles containing p. Shared slice.
func (inc *Incidence) TrianglesOf(p int) []int {
	if p < 0 || p >= len(inc.byPoint) {
		return nil
	}

	return inc.byPoint[p]
}

// SharedTriangles counts the triangles that contain both u and v.
// Complexity: O(deg_T(u)).
func (inc *Incidence) SharedTriangles(u, v int) int {
	count := 0
	for _, k := range inc.TrianglesOf(u) {
		tri := inc.triangles[k]
		if tri[0] == v || tri[1] == v || tri[2] == v {
			count++
		}
	}

	return count
}

// IsBoundaryEdge reports whether fewer than two triangles share the edge (u, v).
func (inc *Incidence) IsBoundaryEdge(u, v int) bool {
	return inc.SharedTriangles(u, v) < 2
}
