package hamt

import "github.com/sirgallo/utils"

// valueNode is the HAMT's unit leaf: a single (hash, key, value) entry.
// Grounded on the teacher's leaf MMCMapNode/PCMapNode (IsLeaf == true),
// split into its own type per spec.md §3's five-variant table.
type valueNode[K, V any] struct {
	owner *ownerToken
	hash  uint32
	key   K
	value V
}

func (n *valueNode[K, V]) get(hasher Hasher[K], shift uint, hash uint32, key K) (V, bool) {
	if hash == n.hash && hasher.Equal(key, n.key) {
		return n.value, true
	}
	return utils.GetZero[V](), false
}

func (n *valueNode[K, V]) update(hasher Hasher[K], owner *ownerToken, shift uint, hash uint32, key K, value V, isDelete bool, sizeDelta *int) node[K, V] {
	sameKey := hash == n.hash && hasher.Equal(key, n.key)

	if isDelete {
		if sameKey {
			*sizeDelta--
			return nil
		}
		return n
	}

	if sameKey {
		if equalValues(n.value, value) {
			return n
		}
		return n.withOwner(owner, func(c *valueNode[K, V]) { c.value = value })
	}

	*sizeDelta++

	if hash == n.hash {
		log.Debug("hash collision detected creating HashCollisionNode for hash ", hash)
		return &hashCollisionNode[K, V]{
			hash: hash,
			entries: []mapEntry[K, V]{
				{key: n.key, value: n.value},
				{key: key, value: value},
			},
		}
	}

	return mergeIntoArrayMap(hasher, owner, shift, []mapEntry[K, V]{{key: n.key, value: n.value}}, key, value)
}

func (n *valueNode[K, V]) iterate(yield func(K, V) bool) bool {
	return yield(n.key, n.value)
}

// withOwner implements the uniform in-place-vs-clone decision spec.md §4.2
// states once for every node variant: mutate n directly when it is already
// stamped with owner (and owner isn't the "no owner" sentinel), otherwise
// clone first and stamp the clone.
func (n *valueNode[K, V]) withOwner(owner *ownerToken, mutate func(*valueNode[K, V])) *valueNode[K, V] {
	if ownedBy(n.owner, owner) {
		mutate(n)
		return n
	}
	clone := *n
	clone.owner = owner
	mutate(&clone)
	return &clone
}
