package hamt

import (
	"hash/maphash"
	"math"
	"sync"

	"github.com/sirgallo/hamt/internal/murmur"
)

// Hasher defines value equality and hashing for keys of type K, the
// pluggable equality/hash protocol spec.md §4.1 requires. It is the Go
// shape of rogpeppe-generic/anyhash's Hasher[T]: a stateless pair of
// methods rather than two free functions, so a Map can carry exactly one
// value and dispatch both operations through it.
type Hasher[K any] interface {
	// Hash returns a 32 bit hash of v. Two keys considered Equal must hash
	// to the same value.
	Hash(v K) uint32
	// Equal reports whether a and b are the same key. Must be reflexive,
	// symmetric and transitive.
	Equal(a, b K) bool
}

// Hashable is the value-object hook for hashing: a user type opts into
// value semantics by implementing it (spec.md §6, "value-object hook").
type Hashable interface {
	HashCode() uint32
}

// Equatable is the value-object hook for equality, parameterized so a type
// can declare what it compares against.
type Equatable[T any] interface {
	Equals(other T) bool
}

// ValueObject is satisfied by any type exposing both hooks.
type ValueObject[T any] interface {
	Equatable[T]
	Hashable
}

var mapHashSeed = maphash.MakeSeed()

// ComparableHasher is the default Hasher for any comparable type: equality
// is Go's own `==`, hashing goes through hash/maphash.WriteComparable
// mixed down to 32 bits with the teacher's Murmur finalizer, the same
// bit-mixing step the string, bytes and numeric hashers end in.
// Grounded on rogpeppe-generic/anyhash.ComparableHasher.
type ComparableHasher[K comparable] struct{}

func (ComparableHasher[K]) Equal(a, b K) bool { return a == b }

func (ComparableHasher[K]) Hash(v K) uint32 {
	var h maphash.Hash
	h.SetSeed(mapHashSeed)
	maphash.WriteComparable(&h, v)
	return murmur.MixUint64(h.Sum64())
}

// StringHasher hashes strings character-by-character via Murmur32, the
// spec's "strings mixed character-by-character" rule, reusing the
// teacher's own byte-slice hash function instead of hashing a pointer.
type StringHasher struct{}

func (StringHasher) Equal(a, b string) bool { return a == b }
func (StringHasher) Hash(v string) uint32   { return murmur.Murmur32([]byte(v), 0) }

// BytesHasher hashes []byte by content, the way the teacher's own
// mmcmap keys (always []byte) are hashed.
type BytesHasher struct{}

func (BytesHasher) Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
func (BytesHasher) Hash(v []byte) uint32 { return murmur.Murmur32(v, 0) }

// IntHasher bit-mixes a platform int, the spec's "numbers bit-mixed" rule.
type IntHasher struct{}

func (IntHasher) Equal(a, b int) bool { return a == b }
func (IntHasher) Hash(v int) uint32   { return murmur.MixUint64(uint64(v)) }

// Int64Hasher is IntHasher for a fixed-width int64 key.
type Int64Hasher struct{}

func (Int64Hasher) Equal(a, b int64) bool { return a == b }
func (Int64Hasher) Hash(v int64) uint32   { return murmur.MixUint64(uint64(v)) }

// Float64Hasher treats +0 and -0 as equal and any two NaNs as equal, per
// spec.md §4.1's "is" contract, by canonicalizing both before mixing.
type Float64Hasher struct{}

func (Float64Hasher) Equal(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b // true for +0 == -0 under IEEE 754 comparison
}

func (Float64Hasher) Hash(v float64) uint32 {
	if math.IsNaN(v) {
		return murmur.MixUint64(0x7ff8000000000000) // canonical NaN bit pattern
	}
	if v == 0 {
		v = 0 // normalizes -0 to +0
	}
	return murmur.MixUint64(math.Float64bits(v))
}

// BoolHasher maps booleans to the sentinel 0/1 the spec calls for.
type BoolHasher struct{}

func (BoolHasher) Equal(a, b bool) bool { return a == b }
func (BoolHasher) Hash(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// valueObjectHasher adapts a ValueObject[K]'s own Equals/HashCode into a
// Hasher[K], the "is" and "hashCode" deferral spec.md §4.1 describes for
// user-defined value objects.
type valueObjectHasher[K ValueObject[K]] struct{}

// NewValueObjectHasher returns a Hasher that defers to K's own Equals/
// HashCode methods.
func NewValueObjectHasher[K ValueObject[K]]() Hasher[K] {
	return valueObjectHasher[K]{}
}

func (valueObjectHasher[K]) Equal(a, b K) bool { return a.Equals(b) }
func (valueObjectHasher[K]) Hash(v K) uint32   { return v.HashCode() }

// dynamicValueObjectHasher is valueObjectHasher's counterpart for
// Default[K], where K is only known to be comparable, not statically
// known to satisfy the ValueObject[K] constraint required to instantiate
// valueObjectHasher/NewValueObjectHasher directly. It defers to K's own
// Equals/HashCode through a runtime interface assertion instead, the
// same dispatch equalValues (valueeq.go) already uses for values.
// Default only ever hands this out after confirming via K's zero value
// that K implements ValueObject[K], so the assertions below always hold.
type dynamicValueObjectHasher[K any] struct{}

func (dynamicValueObjectHasher[K]) Equal(a, b K) bool {
	return any(a).(Equatable[K]).Equals(b)
}

func (dynamicValueObjectHasher[K]) Hash(v K) uint32 {
	return any(v).(Hashable).HashCode()
}

// identityHasher assigns and caches a per-identity integer the first time a
// key of type K (lacking a value-object hook) is hashed, per spec.md
// §4.1's final bullet on "arbitrary reference types". Equality still
// follows K's own comparability; only hashing is identity-cached, since two
// equal-but-distinct instances of a genuinely comparable type should still
// land in the same trie slot.
type identityHasher[K comparable] struct {
	mu      sync.Mutex
	ids     map[K]uint32
	counter uint32
}

// NewIdentityHasher returns a Hasher[K] that hashes by a cached per-value
// identity counter rather than by structural content, and compares with
// `==`. Intended for reference-ish comparable types (pointers, channels)
// that have no meaningful structural hash.
func NewIdentityHasher[K comparable]() Hasher[K] {
	return &identityHasher[K]{ids: make(map[K]uint32)}
}

func (h *identityHasher[K]) Equal(a, b K) bool { return a == b }

func (h *identityHasher[K]) Hash(v K) uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()

	if id, ok := h.ids[v]; ok {
		return id
	}

	h.counter++
	id := murmur.MixUint64(uint64(h.counter))
	h.ids[v] = id
	return id
}

// Default returns the built-in Hasher for any comparable type K. A type
// implementing ValueObject[K] (Equatable[K] + Hashable) is detected first
// and routed to its own Equals/HashCode, mirroring how equalValues
// already auto-detects Equatable[V] for values (valueeq.go) — callers
// never need to opt in explicitly with NewValueObjectHasher. Otherwise it
// type-switches on common primitive kinds to reuse the spec-mandated
// mixing rule for each (strings, int, int64, float64, bools), the same
// "switch (interface{}(k)).(type)" idiom rogpeppe-generic/ctrie uses in
// NewWithFuncs to pick a default hash/equality pair, and falls back to
// ComparableHasher (maphash-backed) for everything else.
func Default[K comparable]() Hasher[K] {
	var zero K
	if _, ok := any(zero).(ValueObject[K]); ok {
		return dynamicValueObjectHasher[K]{}
	}
	switch any(zero).(type) {
	case string:
		return any(StringHasher{}).(Hasher[K])
	case int:
		return any(IntHasher{}).(Hasher[K])
	case int64:
		return any(Int64Hasher{}).(Hasher[K])
	case float64:
		return any(Float64Hasher{}).(Hasher[K])
	case bool:
		return any(BoolHasher{}).(Hasher[K])
	default:
		return ComparableHasher[K]{}
	}
}
