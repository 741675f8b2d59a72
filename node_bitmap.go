package hamt

import "github.com/sirgallo/utils"

// bitmapIndexedNode branches on a 5-bit shard of the hash at its level,
// packing up to 16 children behind a 32-bit presence bitmap (spec.md §3).
// It replaces an ArrayMap once that subtree reaches 9 entries, so it can
// hold fewer than 9 direct children when several entries share a shard.
// Grounded directly on the teacher's internal MMCMapNode/PCMapNode
// (IsLeaf == false): the same Bitmap + Children pair, the same
// setBit/popIndex arithmetic (PCMap.getPosition), the same ExtendTable/
// ShrinkTable array surgery — generalized from byte-slice leaves to a
// generic node[K, V] child type.
type bitmapIndexedNode[K, V any] struct {
	owner    *ownerToken
	bitmap   uint32
	children []node[K, V]
}

func (n *bitmapIndexedNode[K, V]) get(hasher Hasher[K], shift uint, hash uint32, key K) (V, bool) {
	idx := shardIndex(hash, shift)
	if !isBitSet(n.bitmap, idx) {
		return utils.GetZero[V](), false
	}
	pos := popIndex(n.bitmap, idx)
	return n.children[pos].get(hasher, shift+shiftBits, hash, key)
}

func (n *bitmapIndexedNode[K, V]) cloneFor(owner *ownerToken) *bitmapIndexedNode[K, V] {
	if ownedBy(n.owner, owner) {
		return n
	}
	childrenCopy := make([]node[K, V], len(n.children))
	copy(childrenCopy, n.children)
	return &bitmapIndexedNode[K, V]{owner: owner, bitmap: n.bitmap, children: childrenCopy}
}

func (n *bitmapIndexedNode[K, V]) update(hasher Hasher[K], owner *ownerToken, shift uint, hash uint32, key K, value V, isDelete bool, sizeDelta *int) node[K, V] {
	idx := shardIndex(hash, shift)
	pos := popIndex(n.bitmap, idx)

	if !isBitSet(n.bitmap, idx) {
		if isDelete {
			return n
		}
		*sizeDelta++
		newLeaf := &valueNode[K, V]{hash: hash, key: key, value: value}

		if len(n.children) >= bitmapGrowAt-1 {
			log.Debug("promoting BitmapIndexed to HashArrayMap at shift ", shift)
			return n.expand(idx, newLeaf)
		}

		clone := n.cloneFor(owner)
		clone.bitmap = setBit(clone.bitmap, idx)
		clone.children = extendNodes(clone.children, pos, newLeaf)
		return clone
	}

	child := n.children[pos]
	updatedChild := child.update(hasher, owner, shift+shiftBits, hash, key, value, isDelete, sizeDelta)

	if updatedChild == child {
		return n
	}

	if updatedChild == nil {
		if len(n.children) == 1 {
			return nil
		}
		clone := n.cloneFor(owner)
		clone.bitmap = clearBit(clone.bitmap, idx)
		clone.children = shrinkNodes(clone.children, pos)
		return clone.maybeShrinkToArrayMap()
	}

	clone := n.cloneFor(owner)
	clone.children[pos] = updatedChild
	if isDelete {
		return clone.maybeShrinkToArrayMap()
	}
	return clone
}

// expand promotes this node to a 32-slot HashArrayMapNode, the growth
// transition spec.md §3 fixes at 17 children.
func (n *bitmapIndexedNode[K, V]) expand(idx int, newChild node[K, V]) *hashArrayMapNode[K, V] {
	next := &hashArrayMapNode[K, V]{}
	for i := 0; i < fullSlots; i++ {
		if isBitSet(n.bitmap, i) {
			next.slots[i] = n.children[popIndex(n.bitmap, i)]
			next.count++
		}
	}
	next.slots[idx] = newChild
	next.count++
	return next
}

// maybeShrinkToArrayMap collapses back down to a flat ArrayMap once the
// child count reaches the shrink threshold, every remaining child is
// itself leaf-like (a valueNode, arrayMapNode or hashCollisionNode) and
// their entries together fit in one ArrayMap; a nested branch node
// (BitmapIndexed/HashArrayMap) can't be flattened into ArrayMap's flat
// entry list, so the node stays a BitmapIndexedNode in that case.
func (n *bitmapIndexedNode[K, V]) maybeShrinkToArrayMap() node[K, V] {
	if len(n.children) > bitmapShrinkAt {
		return n
	}

	entries := make([]mapEntry[K, V], 0, len(n.children))
	for _, c := range n.children {
		switch cn := c.(type) {
		case *valueNode[K, V]:
			entries = append(entries, mapEntry[K, V]{key: cn.key, value: cn.value})
		case *arrayMapNode[K, V]:
			entries = append(entries, cn.entries...)
		case *hashCollisionNode[K, V]:
			entries = append(entries, cn.entries...)
		default:
			return n
		}
	}

	if len(entries) > arrayMapGrowAt-1 {
		return n
	}

	log.Debug("demoting BitmapIndexed to ArrayMap")
	return &arrayMapNode[K, V]{entries: entries}
}

func (n *bitmapIndexedNode[K, V]) iterate(yield func(K, V) bool) bool {
	for _, c := range n.children {
		if !c.iterate(yield) {
			return false
		}
	}
	return true
}
