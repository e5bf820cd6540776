// Package reentry finds reentry circuits (rotors) on triangulated atrial
// surface meshes.
//
// What is a rotor?
//
//	A closed path over mesh vertices along which an activation wave can keep
//	travelling. Two kinds are searched for:
//		• Anatomical: cycles around holes in the surface (valves, veins),
//		  traced along boundary edges.
//		• Functional: any cycle whose length and conduction time fall inside
//		  a window, timed with per-vertex speeds and fibre anisotropy.
//
// Packages:
//
//	geometry/   points, distances and fibre alignment
//	matrix/     dense matrices and the mesh adjacency view
//	mesh/       mesh assembly, triangle incidence, OBJ reader
//	velocity/   conduction field, tissue tables and sample CSV readers
//	cost/       path length and conduction time
//	cycle/      canonical keys, de-duplication and the length/time window
//	anatomical/ boundary-cycle finder
//	functional/ bounded, optionally parallel cycle search
//	aggregate/  rotor times, per-vertex maxima, heatmap colours, statistics
//	pathstore/  rotor CSV files and the bbolt result cache
//	builder/    synthetic meshes for tests and demos
//	config/     YAML and dotenv configuration
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╱ │
//	    3───2
//
// Two triangles sharing the 0-2 diagonal: one anatomical rotor
// [0 1 2 3 0] and, with 5 mm sides, three functional ones.
//
// The rotorscan command (cmd/rotorscan) wires all of this behind a CLI.
package reentry
