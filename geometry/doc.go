// Package geometry is the small vector kernel used by the cost functions:
// Euclidean distance between mesh points and the directional alignment
// between a travel vector and the local fibre direction.
//
// Points are gonum r3.Vec values expressed in millimetres, the native unit of
// the cardiac meshes this module consumes.
//
// Complexity:
//
//   - Distance:       O(1)
//   - AlignmentRatio: O(1)
package geometry
