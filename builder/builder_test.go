package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reentry/builder"
	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/mesh"
)

// boundaryEdges counts edges shared by fewer than two triangles.
func boundaryEdges(t *testing.T, m *mesh.Mesh) int {
	t.Helper()
	count := 0
	for u := 0; u < m.Len(); u++ {
		nbrs, err := m.Adjacency.MeshNeighbors(u)
		require.NoError(t, err)
		for _, v := range nbrs {
			if u < v && m.Incidence().IsBoundaryEdge(u, v) {
				count++
			}
		}
	}

	return count
}

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantE     int
		wantT     int
		wantBound int
	}{
		{"Square", builder.Square(), 4, 5, 2, 4},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 3*3 + 2*4 + 2*3, 12, 10},
		{"Ring(6)", builder.Ring(6), 6, 6, 0, 6},
		{"Annulus(8)", builder.Annulus(8), 16, 32, 16, 16},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron), 4, 6, 4, 0},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron), 6, 12, 8, 0},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron), 12, 30, 20, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMesh(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, m.Len())
			assert.Equal(t, tc.wantE, m.Adjacency.EdgeCount())
			assert.Len(t, m.Triangles, tc.wantT)
			assert.Equal(t, tc.wantBound, boundaryEdges(t, m))
		})
	}
}

func TestBuildMesh_ComposesWithOffsets(t *testing.T) {
	m, err := builder.BuildMesh(
		[]builder.BuilderOption{builder.WithSpacing(10)},
		builder.Square(),
		builder.Ring(3),
	)
	require.NoError(t, err)
	require.Equal(t, 7, m.Len())
	assert.True(t, m.Adjacency.HasEdge(4, 5))
	assert.True(t, m.Adjacency.HasEdge(6, 4))
	assert.False(t, m.Adjacency.HasEdge(3, 4))
	assert.Equal(t, geometry.NewPoint(10, 10, 0), m.Points[2])
}

func TestOptions_Geometry(t *testing.T) {
	m, err := builder.BuildMesh(
		[]builder.BuilderOption{builder.WithRadius(5), builder.WithOrigin(geometry.NewPoint(1, 2, 3))},
		builder.PlatonicSolid(builder.Icosahedron),
	)
	require.NoError(t, err)
	center := geometry.NewPoint(1, 2, 3)
	for i, p := range m.Points {
		assert.InDelta(t, 5.0, geometry.Distance(p, center), 1e-9, "vertex %d", i)
	}

	ring, err := builder.BuildMesh([]builder.BuilderOption{builder.WithRadius(2)}, builder.Ring(4))
	require.NoError(t, err)
	assert.InDelta(t, 2*2*math.Sin(math.Pi/4), geometry.Distance(ring.Points[0], ring.Points[1]), 1e-12)
}

func TestJitter_DeterministicWithSeed(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(0.1)}
	a, err := builder.BuildMesh(opts, builder.Grid(3, 3))
	require.NoError(t, err)
	b, err := builder.BuildMesh([]builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(0.1)}, builder.Grid(3, 3))
	require.NoError(t, err)
	assert.Equal(t, a.Points, b.Points)
	assert.NotEqual(t, geometry.NewPoint(0, 0, 0), a.Points[0])

	_, err = builder.BuildMesh([]builder.BuilderOption{builder.WithJitter(0.1)}, builder.Grid(3, 3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestBuilders_Errors(t *testing.T) {
	cases := map[string]struct {
		ctor builder.Constructor
		want error
	}{
		"grid rows":       {builder.Grid(1, 5), builder.ErrTooFewVertices},
		"ring":            {builder.Ring(2), builder.ErrTooFewVertices},
		"annulus":         {builder.Annulus(2), builder.ErrTooFewVertices},
		"unknown solid":   {builder.PlatonicSolid(builder.PlatonicName(42)), builder.ErrOptionViolation},
		"nil constructor": {nil, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildMesh(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithRadius(-1) })
	assert.Panics(t, func() { builder.WithJitter(-0.5) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
