// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

import "fmt"

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices otherwise.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}
