// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// impl_ring.go - implementation of Ring(n): a closed polygon without faces.
//
// Contract:
//   - n ≥ MinRingNodes (else ErrTooFewVertices).
//   - Points lie on a circle of cfg.radius in the z = 0 plane, point i at
//     angle 2πi/n; edges i–(i+1) mod n.
//   - No triangles: every edge is a boundary edge, so the ring is both an
//     anatomical hole and the only functional cycle.
//
// Each side measures 2·r·sin(π/n).

package builder

import "math"

// Ring returns a Constructor for an n-gon of bare edges.
func Ring(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodRing, "n", n, MinRingNodes); err != nil {
			return err
		}

		base := d.Len()
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			d.addPoint(cfg, cfg.radius*math.Cos(theta), cfg.radius*math.Sin(theta), 0)
		}
		for i := 0; i < n; i++ {
			d.addEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}
