// Package generics implements the one generic map-iteration helper the
// search tree needs that is missing from the stdlib: a deterministic,
// sorted walk over a map with an arbitrary comparable key.
package generics

import (
	"cmp"
	"iter"
	"slices"
)

// SortedKeys returns an iterator over the sorted keys of the given map.
// Go's builtin map iteration order is deliberately randomized; callers
// that need a stable walk (e.g. a deterministic debug dump of a node's
// action-keyed children) extract the keys, sort them, and iterate over
// the sorted slice instead.
//
// It extracts the keys, sorts them and then iterates over, so it's
// convenient but not fast.
func SortedKeys[M interface{ ~map[K]V }, K cmp.Ordered, V any](m M) iter.Seq[K] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return slices.Values(keys)
}
