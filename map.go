package hamt

import "github.com/sirgallo/utils"

// Entry is a single key/value pair, used wherever the public API hands
// back or accepts a flat list of associations (ToArray, FromEntries).
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is the user-visible persistent associative map: spec.md §4.3's
// facade over the HAMT root. Grounded on the teacher's PCMap/MMCMap
// structs (root pointer + size-adjacent bookkeeping), generalized from a
// single on-disk byte-keyed trie to an in-memory trie over generic K, V
// with a pluggable Hasher instead of a fixed murmur-of-bytes hash.
//
// The zero value is not useful; construct with Empty, New, FromEntries or
// FromMap.
type Map[K, V any] struct {
	hasher  Hasher[K]
	root    node[K, V]
	size    int
	owner   *ownerToken
	altered bool
}

// Empty returns a new, empty persistent map using the given Hasher.
func Empty[K, V any](hasher Hasher[K]) *Map[K, V] {
	return &Map[K, V]{hasher: hasher}
}

// New returns a new, empty persistent map for a comparable key type,
// using the built-in Default hasher (see hash.go).
func New[K comparable, V any]() *Map[K, V] {
	return Empty[K, V](Default[K]())
}

// FromEntries builds a map from a slice of entries. Duplicate keys
// resolve last-wins, per spec.md §6's Factory contract. Construction runs
// inside an implicit transient so the intermediate tries are never
// snapshotted.
func FromEntries[K, V any](hasher Hasher[K], entries []Entry[K, V]) *Map[K, V] {
	m := Empty[K, V](hasher)
	return m.WithMutations(func(mutable *Map[K, V]) {
		for _, e := range entries {
			mutable.Set(e.Key, e.Value)
		}
	})
}

// FromMap builds a string-keyed map from a mapping-shaped Go record, the
// "construct from a mapping-shaped record" factory spec.md §6 describes.
func FromMap[V any](m map[string]V) *Map[string, V] {
	out := New[string, V]()
	return out.WithMutations(func(mutable *Map[string, V]) {
		for k, v := range m {
			mutable.Set(k, v)
		}
	})
}

// Len returns the number of key/value pairs in the map.
func (m *Map[K, V]) Len() int { return m.size }

// Get returns the value for key and whether it was present, per spec.md
// §4.3's "get(key, notSet?) -> V | notSet | undefined" (the found bool
// plays notSet's role, the idiomatic Go shape for the same contract).
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m.root == nil {
		return utils.GetZero[V](), false
	}
	return m.root.get(m.hasher, 0, m.hasher.Hash(key), key)
}

// GetOrElse is Get with a caller-supplied fallback instead of a found bool.
func (m *Map[K, V]) GetOrElse(key K, fallback V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return fallback
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// withRoot applies a new root/size to the map, implementing the façade's
// own owner-aware in-place-vs-clone rule (spec.md §4.3's state machine): a
// transient façade mutates its own fields and returns itself, exactly
// mirroring node-level ownedBy; an immutable façade returns a new one.
func (m *Map[K, V]) withRoot(newRoot node[K, V], sizeDelta int) *Map[K, V] {
	if m.owner != nil {
		m.root = newRoot
		m.size += sizeDelta
		m.altered = true
		return m
	}
	return &Map[K, V]{hasher: m.hasher, root: newRoot, size: m.size + sizeDelta}
}

// Set inserts or overwrites key with value, returning the resulting map.
// If value is already equal (per equalValues) to the current value, the
// receiver is returned unchanged (spec.md §8's reference-identity
// property).
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	hash := m.hasher.Hash(key)
	sizeDelta := 0

	var newRoot node[K, V]
	if m.root == nil {
		newRoot = &valueNode[K, V]{hash: hash, key: key, value: value}
		sizeDelta = 1
	} else {
		alreadySet := false
		if m.owner != nil {
			old, found := m.root.get(m.hasher, 0, hash, key)
			alreadySet = found && equalValues(old, value)
		}
		newRoot = m.root.update(m.hasher, m.owner, 0, hash, key, value, false, &sizeDelta)
		// A transient edit of an owned root also hands back the same root,
		// so only an unchanged root with no size change is a no-op.
		if newRoot == m.root && sizeDelta == 0 {
			if m.owner != nil && !alreadySet {
				m.altered = true
			}
			return m
		}
	}

	return m.withRoot(newRoot, sizeDelta)
}

// Delete removes key, returning the receiver unchanged if it was absent.
func (m *Map[K, V]) Delete(key K) *Map[K, V] {
	if m.root == nil {
		return m
	}

	hash := m.hasher.Hash(key)
	sizeDelta := 0
	newRoot := m.root.update(m.hasher, m.owner, 0, hash, key, utils.GetZero[V](), true, &sizeDelta)
	if newRoot == m.root && sizeDelta == 0 {
		return m
	}

	return m.withRoot(newRoot, sizeDelta)
}

// Update reads the current value for key (the zero value and found=false
// if absent), applies fn, and sets the result — unless fn's result equals
// what it was given, in which case the receiver is returned unchanged.
// This is spec.md §4.3's "update(key, [notSet,] fn)"; the single-argument
// "update(fn) -> R" chaining form is the free function Apply, since a Go
// method cannot introduce its own type parameter for R.
func (m *Map[K, V]) Update(key K, fn func(value V, found bool) V) *Map[K, V] {
	old, found := m.Get(key)
	updated := fn(old, found)
	if equalValues(old, updated) {
		return m
	}
	return m.Set(key, updated)
}

// Apply invokes fn(m) and returns its result, the free-function form of
// spec.md §4.3's single-argument update(fn) -> R chaining helper.
func Apply[K, V, R any](m *Map[K, V], fn func(*Map[K, V]) R) R {
	return fn(m)
}

// Clear returns an empty map with the receiver's hasher: the receiver
// itself if it is already empty, or emptied in place if it is transient
// (keeping its owner), and otherwise a newly allocated empty Map. There is
// no shared empty instance.
func (m *Map[K, V]) Clear() *Map[K, V] {
	if m.root == nil {
		return m
	}
	if m.owner != nil {
		m.root = nil
		m.size = 0
		m.altered = true
		return m
	}
	return &Map[K, V]{hasher: m.hasher}
}

// AsMutable returns a transient view of m stamped with a fresh owner
// token; if m is already mutable, it is returned unchanged.
func (m *Map[K, V]) AsMutable() *Map[K, V] {
	if m.owner != nil {
		return m
	}
	return &Map[K, V]{hasher: m.hasher, root: m.root, size: m.size, owner: newOwner()}
}

// AsImmutable seals a transient map: its owner is cleared so no further
// operation may mutate its nodes in place, and it is returned. Per
// spec.md §4.3, the original transient handle (this same pointer) must not
// be used as a mutable map again afterwards.
func (m *Map[K, V]) AsImmutable() *Map[K, V] {
	m.owner = nil
	return m
}

// IsMutable reports whether m is currently a transient view.
func (m *Map[K, V]) IsMutable() bool { return m.owner != nil }

// WithMutations runs fn against a transient view of m and seals the result,
// spec.md §4.3's batched-construction entry point. Calling WithMutations on
// a map that is already mutable is a MisuseError (panic): the inner
// AsImmutable would prematurely seal the owner an enclosing WithMutations
// call is still relying on.
func (m *Map[K, V]) WithMutations(fn func(mutable *Map[K, V])) *Map[K, V] {
	if m.owner != nil {
		log.Error("WithMutations called on a map that is already mutable")
		panic(&MisuseError{Reason: "WithMutations may not be invoked on a map that is already mutable"})
	}

	mutable := m.AsMutable()
	fn(mutable)
	return mutable.AsImmutable()
}

// WasAltered reports whether at least one mutation has been applied to
// this transient since it was created by AsMutable.
func (m *Map[K, V]) WasAltered() bool { return m.altered }

// ToArray returns every (key, value) pair as a flat slice. Order matches
// the map's own iteration order (stable for this instance, unspecified
// across separately-constructed maps; spec.md §4.5).
func (m *Map[K, V]) ToArray() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.size)
	m.ForEach(func(k K, v V) bool {
		out = append(out, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return out
}

// ToMap stringifies keys and returns a plain Go map, spec.md §6's
// "toObject()" conversion.
func (m *Map[K, V]) ToMap(stringify func(K) string) map[string]V {
	out := make(map[string]V, m.size)
	m.ForEach(func(k K, v V) bool {
		out[stringify(k)] = v
		return true
	})
	return out
}

// IsMap reports whether x is a *Map[K, V] for the given K, V, spec.md §6's
// isMap type predicate.
func IsMap[K, V any](x any) bool {
	_, ok := x.(*Map[K, V])
	return ok
}
