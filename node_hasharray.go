package hamt

import "github.com/sirgallo/utils"

// hashArrayMapNode holds a fixed 32-slot array of optional children,
// addressed directly by shard index with no bitmap indirection — the
// variant spec.md §3 reserves for "> 16 children at this level", where the
// bitmap's packed-array savings no longer outweigh a flat array's simpler,
// branch-free indexing.
type hashArrayMapNode[K, V any] struct {
	owner *ownerToken
	count int
	slots [fullSlots]node[K, V]
}

func (n *hashArrayMapNode[K, V]) get(hasher Hasher[K], shift uint, hash uint32, key K) (V, bool) {
	idx := shardIndex(hash, shift)
	child := n.slots[idx]
	if child == nil {
		return utils.GetZero[V](), false
	}
	return child.get(hasher, shift+shiftBits, hash, key)
}

func (n *hashArrayMapNode[K, V]) cloneFor(owner *ownerToken) *hashArrayMapNode[K, V] {
	if ownedBy(n.owner, owner) {
		return n
	}
	clone := &hashArrayMapNode[K, V]{owner: owner, count: n.count}
	clone.slots = n.slots
	return clone
}

func (n *hashArrayMapNode[K, V]) update(hasher Hasher[K], owner *ownerToken, shift uint, hash uint32, key K, value V, isDelete bool, sizeDelta *int) node[K, V] {
	idx := shardIndex(hash, shift)
	child := n.slots[idx]

	if child == nil {
		if isDelete {
			return n
		}
		*sizeDelta++
		clone := n.cloneFor(owner)
		clone.slots[idx] = &valueNode[K, V]{hash: hash, key: key, value: value}
		clone.count++
		return clone
	}

	updatedChild := child.update(hasher, owner, shift+shiftBits, hash, key, value, isDelete, sizeDelta)
	if updatedChild == child {
		return n
	}

	clone := n.cloneFor(owner)
	clone.slots[idx] = updatedChild
	if updatedChild == nil {
		clone.count--
		if clone.count == 0 {
			return nil
		}
		return clone.maybeShrinkToBitmap()
	}
	return clone
}

// maybeShrinkToBitmap collapses back down to a BitmapIndexedNode once
// occupancy reaches spec.md §4.2's explicit shrink threshold of 12 — a
// wider hysteresis window than the general growth-minus-one rule, adopted
// deliberately to reduce churn on this variant's relatively expensive
// 32-slot array (see DESIGN.md).
func (n *hashArrayMapNode[K, V]) maybeShrinkToBitmap() node[K, V] {
	if n.count > hashArrayShrinkAt {
		return n
	}

	log.Debug("demoting HashArrayMap to BitmapIndexed")
	var bitmap uint32
	children := make([]node[K, V], 0, n.count)
	for i, c := range n.slots {
		if c != nil {
			bitmap = setBit(bitmap, i)
			children = append(children, c)
		}
	}
	return &bitmapIndexedNode[K, V]{bitmap: bitmap, children: children}
}

func (n *hashArrayMapNode[K, V]) iterate(yield func(K, V) bool) bool {
	for _, c := range n.slots {
		if c != nil {
			if !c.iterate(yield) {
				return false
			}
		}
	}
	return true
}
