// Package builder defines shared constants used by mesh builders.
package builder

// Constructor names, used to prefix errors.
const (
	MethodSquare        = "Square"
	MethodGrid          = "Grid"
	MethodRing          = "Ring"
	MethodAnnulus       = "Annulus"
	MethodPlatonicSolid = "PlatonicSolid"
)

// Minimal sizes.
const (
	MinGridDim         = 2 // points per side
	MinRingNodes       = 3
	MinAnnulusSegments = 3
)
