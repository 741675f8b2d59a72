package hamt

import "github.com/sirgallo/utils"

// arrayMapNode stores up to arrayMapGrowAt-1 entries as a flat list,
// searched linearly. It exists to avoid a tower of singleton
// BitmapIndexedNodes for keys whose hashes happen to share several shard
// prefixes: spec.md §3 sizes it at "≤ 8 entries total at this subtree".
// Grounded on the teacher's flat child handling, generalized from a
// bitmap-indexed single-child case to a genuinely unsharded bucket.
type arrayMapNode[K, V any] struct {
	owner   *ownerToken
	entries []mapEntry[K, V]
}

func (n *arrayMapNode[K, V]) indexOf(hasher Hasher[K], key K) int {
	for i := range n.entries {
		if hasher.Equal(key, n.entries[i].key) {
			return i
		}
	}
	return -1
}

func (n *arrayMapNode[K, V]) get(hasher Hasher[K], shift uint, hash uint32, key K) (V, bool) {
	if pos := n.indexOf(hasher, key); pos >= 0 {
		return n.entries[pos].value, true
	}
	return utils.GetZero[V](), false
}

func (n *arrayMapNode[K, V]) cloneFor(owner *ownerToken) *arrayMapNode[K, V] {
	if ownedBy(n.owner, owner) {
		return n
	}
	entriesCopy := make([]mapEntry[K, V], len(n.entries))
	copy(entriesCopy, n.entries)
	return &arrayMapNode[K, V]{owner: owner, entries: entriesCopy}
}

func (n *arrayMapNode[K, V]) update(hasher Hasher[K], owner *ownerToken, shift uint, hash uint32, key K, value V, isDelete bool, sizeDelta *int) node[K, V] {
	pos := n.indexOf(hasher, key)

	if isDelete {
		if pos < 0 {
			return n
		}
		*sizeDelta--
		if len(n.entries) == 1 {
			return nil
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

	if len(n.entries) < arrayMapGrowAt-1 {
		clone := n.cloneFor(owner)
		clone.entries = extendEntries(clone.entries, mapEntry[K, V]{key: key, value: value})
		return clone
	}

	log.Debug("promoting ArrayMap to BitmapIndexed at shift ", shift)
	return promoteToBitmap(hasher, owner, shift, extendEntries(n.entries, mapEntry[K, V]{key: key, value: value}))
}

func (n *arrayMapNode[K, V]) iterate(yield func(K, V) bool) bool {
	for _, e := range n.entries {
		if !yield(e.key, e.value) {
			return false
		}
	}
	return true
}
