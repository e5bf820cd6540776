// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// impl_square.go - a flat square split by one diagonal.
//
// Layout (side = cfg.spacing, z = 0):
//
//	3 ---- 2
//	|    / |
//	|  /   |
//	0 ---- 1
//
// Triangles {0,1,2} and {0,2,3} share the 0–2 diagonal, which is therefore
// interior; the four sides are boundary edges.

package builder

// Square returns a Constructor for the two-triangle square.
func Square() Constructor {
	return func(d *Draft, cfg builderConfig) error {
		s := cfg.spacing
		a := d.addPoint(cfg, 0, 0, 0)
		b := d.addPoint(cfg, s, 0, 0)
		c := d.addPoint(cfg, s, s, 0)
		e := d.addPoint(cfg, 0, s, 0)
		d.addTriangle(a, b, c)
		d.addTriangle(a, c, e)

		return nil
	}
}
