// Package mesh holds the read-only inputs of a reentry search: the point
// cloud, its adjacency matrix and the triangle list, plus the per-point
// triangle incidence used to tell boundary edges from interior ones.
//
// An edge (u, v) lies on the mesh boundary when fewer than two triangles
// contain both u and v. Closed surfaces therefore have no boundary edges,
// and every hole in an open surface is ringed by them.
//
// ReadOBJ loads Wavefront OBJ files (v / vn / f records, 1-based indices)
// into a Mesh whose adjacency carries the value 1 on every triangle edge.
package mesh
