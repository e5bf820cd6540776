// Package pathstore persists rotor sets.
//
// Two representations are provided:
//
//   - a CSV file with a single column headed "0" whose cells are list
//     literals such as "[1, 2, 3, 1]" (Write, Read, Save, Load);
//   - a bbolt-backed Cache of search results keyed by a Fingerprint of the
//     inputs that determine them.
//
// Round trip: Read(Write(P)) == P for every P.
package pathstore
