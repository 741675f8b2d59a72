package hamt

import "iter"

// ForEach performs a depth-first, pre-order walk of the map, invoking fn
// for every (key, value) pair. Returning false from fn stops the walk
// early. Grounded on the teacher's Range.go traversal (the same
// recursive descend-all-children pattern), adapted from byte-offset page
// walking to a generic node[K, V] walk.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	if m.root == nil {
		return
	}
	m.root.iterate(fn)
}

// All returns a range-over-func iterator over every (key, value) pair,
// spec.md §4.5's "All() -> Iterator<[K, V]>" surfaced the Go 1.23 way.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.root == nil {
			return
		}
		m.root.iterate(yield)
	}
}

// Keys returns a range-over-func iterator over the map's keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m.root == nil {
			return
		}
		m.root.iterate(func(k K, _ V) bool { return yield(k) })
	}
}

// Values returns a range-over-func iterator over the map's values.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		if m.root == nil {
			return
		}
		m.root.iterate(func(_ K, v V) bool { return yield(v) })
	}
}

// MapValues rebuilds the map with every value replaced by fn(key, value),
// keeping the key set and hasher identical. It is a free function, not a
// method, because its result type R2 differs from V and a Go method
// cannot introduce its own type parameter (spec.md §4.3's "map(fn) ->
// Map").
func MapValues[K, V, R2 any](m *Map[K, V], fn func(key K, value V) R2) *Map[K, R2] {
	out := Empty[K, R2](m.hasher)
	return out.WithMutations(func(mutable *Map[K, R2]) {
		m.ForEach(func(k K, v V) bool {
			mutable.Set(k, fn(k, v))
			return true
		})
	})
}

// Filter rebuilds the map keeping only the entries for which fn returns
// true (spec.md §4.3's "filter(fn) -> Map").
func Filter[K, V any](m *Map[K, V], fn func(key K, value V) bool) *Map[K, V] {
	out := Empty[K, V](m.hasher)
	return out.WithMutations(func(mutable *Map[K, V]) {
		m.ForEach(func(k K, v V) bool {
			if fn(k, v) {
				mutable.Set(k, v)
			}
			return true
		})
	})
}

// Reduce folds over every (key, value) pair in iteration order, starting
// from initial (spec.md §4.3's "reduce(fn, initial) -> R"). Like
// MapValues and Filter, it is a free function since R is unrelated to V.
func Reduce[K, V, R any](m *Map[K, V], initial R, fn func(acc R, key K, value V) R) R {
	acc := initial
	m.ForEach(func(k K, v V) bool {
		acc = fn(acc, k, v)
		return true
	})
	return acc
}
