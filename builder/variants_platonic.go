// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// variants_platonic.go - canonical data for the triangulated Platonic solids.
//
// Design:
//   - Single source of truth for vertex positions (unit circumsphere) and faces.
//   - Datasets are built deterministically at init and kept immutable.
//   - Icosahedron faces are derived from the pole/ring labelling below.

package builder

import "math"

// PlatonicName enumerates the Platonic solids with triangular faces.
type PlatonicName int

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  F=4
	Octahedron                      // V=6,  F=8
	Icosahedron                     // V=12, F=20
)

var (
	platonicVertices = map[PlatonicName][][3]float64{}
	platonicFaces    = map[PlatonicName][][3]int{}
)

func init() {
	// Tetrahedron: alternate corners of a cube.
	k := 1 / math.Sqrt(3)
	platonicVertices[Tetrahedron] = [][3]float64{{k, k, k}, {k, -k, -k}, {-k, k, -k}, {-k, -k, k}}
	platonicFaces[Tetrahedron] = [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}

	// Octahedron: poles 0 (+z) and 1 (-z); equator 2 (+x), 4 (+y), 3 (-x), 5 (-y).
	platonicVertices[Octahedron] = [][3]float64{
		{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	}
	equator := [4]int{2, 4, 3, 5}
	for i := range equator {
		a, b := equator[i], equator[(i+1)%len(equator)]
		platonicFaces[Octahedron] = append(platonicFaces[Octahedron], [3]int{0, a, b}, [3]int{1, a, b})
	}

	// Icosahedron:
	//   - top pole 0, top ring 1..5 (ring i at 72°·i)
	//   - bottom ring 6..10 (ring i at 72°·i − 36°), bottom pole 11
	//   - top ring i joins bottom ring i and i+1
	const ring = 5
	h := 1 / math.Sqrt(5)
	rr := 2 / math.Sqrt(5)
	verts := [][3]float64{{0, 0, 1}}
	for i := 0; i < ring; i++ {
		a := 2 * math.Pi * float64(i) / ring
		verts = append(verts, [3]float64{rr * math.Cos(a), rr * math.Sin(a), h})
	}
	for i := 0; i < ring; i++ {
		a := 2*math.Pi*float64(i)/ring - math.Pi/ring
		verts = append(verts, [3]float64{rr * math.Cos(a), rr * math.Sin(a), -h})
	}
	verts = append(verts, [3]float64{0, 0, -1})
	platonicVertices[Icosahedron] = verts

	var faces [][3]int
	for i := 0; i < ring; i++ {
		t, t2 := 1+i, 1+(i+1)%ring
		b, b2 := 6+i, 6+(i+1)%ring
		faces = append(faces,
			[3]int{0, t, t2},  // top cap
			[3]int{t, b, b2},  // belt, pointing down
			[3]int{t, b2, t2}, // belt, pointing up
			[3]int{11, b, b2}, // bottom cap
		)
	}
	platonicFaces[Icosahedron] = faces
}
