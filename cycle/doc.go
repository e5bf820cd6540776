// Package cycle holds the rotor identity and acceptance rules shared by the
// anatomical and functional searches.
//
// A closed path lists its vertices in walk order and repeats the first one
// at the end: [0 1 2 0]. Its canonical key is the sorted, duplicate-free
// vertex set with the closing repeat removed, so [0 1 2 0], [1 2 0 1] and
// [2 1 0 2] all describe the same rotor {0, 1, 2}.
//
// Registry records keys in a red-black tree and answers "seen before?" in
// O(k log R) for a key of k vertices and R recorded rotors. It is not safe
// for concurrent writers; searches that fan out keep one registry and merge
// candidates into it from a single goroutine.
//
// Filter re-checks a path collection against distance and time Bounds. It
// never discovers new paths and is idempotent.
package cycle
