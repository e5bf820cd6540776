// Package functional finds functional reentries (rotors): simple cycles of
// the mesh graph whose length and conduction time fall inside a window.
//
// Search is a branch-and-bound depth-first search run once per start
// vertex. A walk never steps straight back to its predecessor, may close
// only onto its start vertex, and is abandoned on entering a vertex when
//
//  1. its length exceeds Bounds.MaxDist, or
//  2. its length plus the straight distance back to the start exceeds
//     Bounds.MaxDist (no closure can fit any more), or
//  3. a velocity field is given and its rounded time in ms exceeds
//     Bounds.MaxTime.
//
// A closure is accepted when the closed length and time lie inside Bounds
// and no rotor with the same vertex set (see cycle.KeySet) was accepted
// before. Rotors come back in the order a sequential run from start 0
// upwards discovers them, whatever the number of workers.
//
// The walk keeps an explicit stack and an on-path membership slice, so
// ancestor checks are O(1) and depth is not limited by the goroutine stack.
// Lengths and times accumulate one segment at a time in walk order, giving
// the same floating-point totals as cost.PathLength and cost.PathTime.
//
// Complexity:
//
//   - Time:   exponential in the number of vertices inside the distance
//     window in the worst case; the bounds keep real meshes tractable.
//   - Memory: O(N) per worker plus the rotors found.
package functional
