// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// impl_grid.go - implementation of Grid(rows, cols): a flat triangulated patch.
//
// Contract:
//   - rows, cols ≥ MinGridDim (else ErrTooFewVertices).
//   - Point (r, c) has index base + r*cols + c and sits at (c·s, r·s, 0).
//   - Every cell is split along its rising diagonal (r,c)–(r+1,c+1).
//   - The outer rectangle is the only boundary.
//
// Complexity: O(rows·cols).

package builder

// Grid returns a Constructor that builds a rows×cols triangulated grid.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Validate
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		// 2) Points, row-major
		base := d.Len()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.addPoint(cfg, float64(c)*cfg.spacing, float64(r)*cfg.spacing, 0)
			}
		}

		// 3) Two triangles per cell
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				d.addTriangle(at(r, c), at(r, c+1), at(r+1, c+1))
				d.addTriangle(at(r, c), at(r+1, c+1), at(r+1, c))
			}
		}

		return nil
	}
}
