package hamt

import (
	"fmt"

	"github.com/sirgallo/hamt/internal/murmur"
)

// Equal reports whether m and other hold the same key/value pairs,
// independent of trie shape or insertion history (spec.md §4.3's
// "Equal(other) -> bool", and the basis for §8's "M.Equal(N) implies
// M.Hash() == N.Hash()" property).
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m == other {
		return true
	}
	if other == nil || m.size != other.size {
		return false
	}

	equal := true
	m.ForEach(func(k K, v V) bool {
		ov, found := other.Get(k)
		if !found || !equalValues(v, ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Hash returns a hash of the map's contents, combined order-independently
// (XOR) so that it agrees for any two maps built from the same pairs in
// any order, per spec.md §4.3/§8.
func (m *Map[K, V]) Hash() uint32 {
	var combined uint32
	m.ForEach(func(k K, v V) bool {
		perEntry := murmur.MixUint64(uint64(m.hasher.Hash(k))<<32 | uint64(hashAny(v)))
		combined ^= perEntry
		return true
	})
	return combined
}

// hashAny produces a best-effort 32 bit hash for an arbitrary value:
// Hashable's own HashCode if implemented, otherwise a murmur hash of its
// fmt.Sprintf("%#v", ...) rendering. Used only by Map.Hash, where V is not
// known to be a key type with a registered Hasher.
func hashAny(v any) uint32 {
	if h, ok := v.(Hashable); ok {
		return h.HashCode()
	}
	return murmur.Murmur32([]byte(fmt.Sprintf("%#v", v)), 0)
}
