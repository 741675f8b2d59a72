package hamt

// Merge folds each source into the receiver, shallow: a key present in a
// later source simply overwrites whatever the receiver (or an earlier
// source) held for it (spec.md §4.6). Nil sources are skipped.
func (m *Map[K, V]) Merge(sources ...*Map[K, V]) *Map[K, V] {
	return m.MergeWith(takeIncoming[K, V], sources...)
}

// MergeWith folds each source into the receiver using merger to combine a
// value already present in the accumulator with the incoming one; for a
// key the accumulator doesn't yet hold, the incoming value is used as-is.
// Runs inside a single implicit transient, so merging N sources allocates
// at most one new trie regardless of N (spec.md §4.6).
func (m *Map[K, V]) MergeWith(merger func(oldValue, newValue V, key K) V, sources ...*Map[K, V]) *Map[K, V] {
	return m.WithMutations(func(mutable *Map[K, V]) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			src.ForEach(func(k K, incoming V) bool {
				if existing, found := mutable.Get(k); found {
					mutable.Set(k, merger(existing, incoming, k))
				} else {
					mutable.Set(k, incoming)
				}
				return true
			})
		}
	})
}

// takeIncoming is the default merger: the incoming source always wins,
// matching spec.md §4.6's plain merge() semantics.
func takeIncoming[K, V any](_, newValue V, _ K) V {
	return newValue
}
