package hamt

import "github.com/sirgallo/utils"

// hashCollisionNode stores every entry sharing one full 32-bit hash, as a
// flat list searched linearly by key equality. It arises only when two
// distinct keys genuinely hash identically (spec.md §3's invariant 3: "≥ 2
// entries with pairwise-equal hashes and pairwise-unequal keys"). Grounded
// on the teacher's leaf-key-mismatch branch of putRecursive, which builds
// an internal node for two colliding leaves; here the colliding bucket is
// its own variant instead of a nested branch, since there are no more
// shard bits left to branch on (see SPEC_FULL.md §3's note on why this is
// independent of shift).
type hashCollisionNode[K, V any] struct {
	owner   *ownerToken
	hash    uint32
	entries []mapEntry[K, V]
}

func (n *hashCollisionNode[K, V]) indexOf(hasher Hasher[K], key K) int {
	for i := range n.entries {
		if hasher.Equal(key, n.entries[i].key) {
			return i
		}
	}
	return -1
}

func (n *hashCollisionNode[K, V]) get(hasher Hasher[K], shift uint, hash uint32, key K) (V, bool) {
	if hash != n.hash {
		return utils.GetZero[V](), false
	}
	if pos := n.indexOf(hasher, key); pos >= 0 {
		return n.entries[pos].value, true
	}
	return utils.GetZero[V](), false
}

func (n *hashCollisionNode[K, V]) cloneFor(owner *ownerToken) *hashCollisionNode[K, V] {
	if ownedBy(n.owner, owner) {
		return n
	}
	entriesCopy := make([]mapEntry[K, V], len(n.entries))
	copy(entriesCopy, n.entries)
	return &hashCollisionNode[K, V]{owner: owner, hash: n.hash, entries: entriesCopy}
}

func (n *hashCollisionNode[K, V]) update(hasher Hasher[K], owner *ownerToken, shift uint, hash uint32, key K, value V, isDelete bool, sizeDelta *int) node[K, V] {
	if hash != n.hash {
		if isDelete {
			return n
		}
		*sizeDelta++
		return mergeIntoArrayMap(hasher, owner, shift, n.entries, key, value)
	}

	pos := n.indexOf(hasher, key)

	if isDelete {
		if pos < 0 {
			return n
		}
		*sizeDelta--
		if len(n.entries) == 2 {
			other := n.entries[0]
			if pos == 0 {
				other = n.entries[1]
			}
			return &valueNode[K, V]{hash: n.hash, key: other.key, value: other.value}
		}
		clone := n.cloneFor(owner)
		clone.entries = shrinkEntries(clone.entries, pos)
		return clone
	}

	if pos >= 0 {
		if equalValues(n.entries[pos].value, value) {
			return n
		}
		clone := n.cloneFor(owner)
		clone.entries[pos] = mapEntry[K, V]{key: key, value: value}
		return clone
	}

	*sizeDelta++
	clone := n.cloneFor(owner)
	clone.entries = extendEntries(clone.entries, mapEntry[K, V]{key: key, value: value})
	return clone
}

func (n *hashCollisionNode[K, V]) iterate(yield func(K, V) bool) bool {
	for _, e := range n.entries {
		if !yield(e.key, e.value) {
			return false
		}
	}
	return true
}
