// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks that edge presence is symmetric:
// entry(i,j) ≠ 0 ⇔ entry(j,i) ≠ 0 for all i<j. Weights may differ; only
// presence is compared, since the searches never read weight values beyond
// zero/non-zero (and the exact value 1 for mesh edges, checked per direction).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry (wrapped with the offending cell).
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := m.Rows()
	if n <= 1 {
		return nil // trivially symmetric
	}

	// Scan the strict upper triangle once in fixed i→j order.
	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if (aij != 0) != (aji != 0) {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w",
					i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}
