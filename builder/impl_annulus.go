// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// impl_annulus.go - implementation of Annulus(segments): a flat ring of
// triangles around a hole.
//
// Contract:
//   - segments ≥ MinAnnulusSegments (else ErrTooFewVertices).
//   - Outer ring: indices base+0..base+segments-1 at radius 2·r.
//   - Inner ring: indices base+segments..base+2·segments-1 at radius r.
//   - Segment i holds triangles {o_i, o_i+1, in_i} and {o_i+1, in_i+1, in_i};
//     radial and diagonal edges are shared by two triangles, ring edges by one.
//
// The two boundaries are the outer rim and the rim of the hole.

package builder

import "math"

// Annulus returns a Constructor for a triangulated annulus.
func Annulus(segments int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodAnnulus, "segments", segments, MinAnnulusSegments); err != nil {
			return err
		}

		base := d.Len()
		for _, radius := range []float64{2 * cfg.radius, cfg.radius} {
			for i := 0; i < segments; i++ {
				theta := 2 * math.Pi * float64(i) / float64(segments)
				d.addPoint(cfg, radius*math.Cos(theta), radius*math.Sin(theta), 0)
			}
		}

		outer := func(i int) int { return base + i%segments }
		inner := func(i int) int { return base + segments + i%segments }
		for i := 0; i < segments; i++ {
			d.addTriangle(outer(i), outer(i+1), inner(i))
			d.addTriangle(outer(i+1), inner(i+1), inner(i))
		}

		return nil
	}
}
