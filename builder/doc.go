// Package builder provides functional-options building blocks for test and
// demo meshes. Fixtures compose: BuildMesh applies constructors in order and
// each one appends points and faces after those already present.
//
// The package offers:
//
//   - BuildMesh(bopts, cons...): resolve options, run constructors, assemble
//     a validated *mesh.Mesh with mesh-edge adjacency.
//   - Constructors:
//     – Square():            two triangles sharing an interior diagonal.
//     – Grid(rows, cols):    flat triangulated patch, one outer boundary.
//     – Ring(n):             bare n-gon of edges, no faces.
//     – Annulus(segments):   triangulated ring with a central hole.
//     – PlatonicSolid(name): closed Tetrahedron, Octahedron or Icosahedron.
//   - Options: WithSpacing, WithRadius, WithOrigin, WithJitter, WithSeed, WithRand.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical meshes.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices, ...) wrapped with
//     the constructor name; they never panic.
package builder
