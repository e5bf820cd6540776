// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name): closed
// triangulated surfaces.
//
// Contract:
//   - name ∈ {Tetrahedron, Octahedron, Icosahedron} (triangular faces only);
//     anything else → ErrOptionViolation.
//   - Vertices are scaled to cfg.radius and added in canonical order.
//   - Every edge is shared by exactly two faces, so the surface has no
//     boundary and no anatomical reentry.
//
// Complexity: O(V+F), V ≤ 12, F ≤ 20.

package builder

import "fmt"

// PlatonicSolid returns a Constructor that builds the chosen closed solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Lookup canonical data
		verts, ok := platonicVertices[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		faces, ok := platonicFaces[name]
		if !ok {
			return fmt.Errorf("%s: missing face set for %q: %w", MethodPlatonicSolid, name, ErrConstructFailed)
		}

		// 2) Vertices on the sphere of cfg.radius
		base := d.Len()
		for _, v := range verts {
			d.addPoint(cfg, v[0]*cfg.radius, v[1]*cfg.radius, v[2]*cfg.radius)
		}

		// 3) Faces in canonical order
		for _, f := range faces {
			d.addTriangle(base+f[0], base+f[1], base+f[2])
		}

		return nil
	}
}
