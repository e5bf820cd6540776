package cycle

import (
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// KeySet returns the canonical vertex set of closed: the closing repeat is
// dropped, the rest sorted ascending with duplicates removed.
// A path of 0 or 1 vertices has an empty key.
// Complexity: O(k log k).
func KeySet(closed []int) []int {
	if len(closed) < 2 {
		return []int{}
	}

	set := append([]int(nil), closed[:len(closed)-1]...)
	sort.Ints(set)

	// compact in place
	out := set[:1]
	for _, v := range set[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// Key renders KeySet as a comma-joined string, e.g. "0,1,2".
func Key(closed []int) string {
	set := KeySet(closed)

	var sb strings.Builder
	for i, v := range set {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// compareKeys orders key sets lexicographically, shorter prefix first.
func compareKeys(a, b interface{}) int {
	ka, kb := a.([]int), b.([]int)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		switch {
		case ka[i] < kb[i]:
			return -1
		case ka[i] > kb[i]:
			return 1
		}
	}

	return len(ka) - len(kb)
}

// Registry is the set of canonical keys accepted so far.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	tree *redblacktree.Tree
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tree: &redblacktree.Tree{Comparator: compareKeys}}
}

// Seen reports whether the rotor described by closed was recorded.
func (r *Registry) Seen(closed []int) bool {
	_, found := r.tree.Get(KeySet(closed))
	return found
}

// Add records the key of closed and reports whether it was new.
func (r *Registry) Add(closed []int) bool {
	key := KeySet(closed)
	if _, found := r.tree.Get(key); found {
		return false
	}
	r.tree.Put(key, nil)

	return true
}

// Len returns the number of distinct keys recorded.
func (r *Registry) Len() int { return r.tree.Size() }

// Keys returns every recorded key set in lexicographic order.
func (r *Registry) Keys() [][]int {
	out := make([][]int, 0, r.tree.Size())
	it := r.tree.Iterator()
	for it.Next() {
		out = append(out, append([]int(nil), it.Key().([]int)...))
	}

	return out
}

// Dedup keeps the first path of every canonical key, preserving order.
// The input is not modified.
// Complexity: O(P · k log(P·k)).
func Dedup(paths [][]int) [][]int {
	reg := NewRegistry()
	out := make([][]int, 0, len(paths))
	for _, p := range paths {
		if reg.Add(p) {
			out = append(out, p)
		}
	}

	return out
}
