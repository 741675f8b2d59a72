package hamt

import "math/bits"

// shiftBits is the width of one trie shard: a 32 bit hash is consumed 5
// bits per level, the same bit chunk size the teacher uses
// (PCMap.BitChunkSize / MMCMap.BitChunkSize).
const shiftBits = 5

// maxShift is the shift of the last level that still has shard bits left to
// discriminate on (32 bits / 5 == 6.4, so level 7 at shift 30 is the last).
// Beyond it any two colliding entries must share the full 32 bit hash, so
// they resolve via hashCollisionNode instead of further bitmap branching.
const maxShift = 30

// shardIndex returns the 5-bit shard of hash at the given shift: the
// sparse index used to address a bitmap/array slot. Grounded on the
// teacher's GetIndex/getSparseIndex.
func shardIndex(hash uint32, shift uint) int {
	return int((hash >> shift) & 0x1f)
}

// popcount is the teacher's CalculateHammingWeight, renamed to the
// conventional Go name; bits.OnesCount32 is the same intrinsic the teacher
// reached for by hand.
func popcount(bitmap uint32) int {
	return bits.OnesCount32(bitmap)
}

// bitpos turns a shard index into its single-bit mask.
func bitpos(index int) uint32 {
	return uint32(1) << uint(index)
}

// isBitSet mirrors the teacher's IsBitSet.
func isBitSet(bitmap uint32, index int) bool {
	return bitmap&bitpos(index) != 0
}

// setBit mirrors the teacher's SetBit: flips the bit on.
func setBit(bitmap uint32, index int) uint32 {
	return bitmap | bitpos(index)
}

// clearBit is the deletion-side counterpart the teacher folds into its
// delete path inline; split out here since it is used by every shrinking
// node variant.
func clearBit(bitmap uint32, index int) uint32 {
	return bitmap &^ bitpos(index)
}

// popIndex returns the position within a packed child array that
// corresponds to a shard index, i.e. the number of set bits below it.
// Grounded on the teacher's getPosition.
func popIndex(bitmap uint32, index int) int {
	mask := bitpos(index) - 1
	return popcount(bitmap & mask)
}

// extendNodes inserts newChild at pos in a freshly allocated slice one
// longer than orig. Grounded on the teacher's ExtendTable.
func extendNodes[K, V any](orig []node[K, V], pos int, newChild node[K, V]) []node[K, V] {
	out := make([]node[K, V], len(orig)+1)
	copy(out[:pos], orig[:pos])
	out[pos] = newChild
	copy(out[pos+1:], orig[pos:])
	return out
}

// shrinkNodes removes the element at pos from a freshly allocated slice one
// shorter than orig. Grounded on the teacher's ShrinkTable.
func shrinkNodes[K, V any](orig []node[K, V], pos int) []node[K, V] {
	out := make([]node[K, V], len(orig)-1)
	copy(out[:pos], orig[:pos])
	copy(out[pos:], orig[pos+1:])
	return out
}

// extendEntries/shrinkEntries are the same array surgery, specialized for
// arrayMapNode's and hashCollisionNode's flat entry lists.
func extendEntries[K, V any](orig []mapEntry[K, V], newEntry mapEntry[K, V]) []mapEntry[K, V] {
	out := make([]mapEntry[K, V], len(orig)+1)
	copy(out, orig)
	out[len(orig)] = newEntry
	return out
}

func shrinkEntries[K, V any](orig []mapEntry[K, V], pos int) []mapEntry[K, V] {
	out := make([]mapEntry[K, V], 0, len(orig)-1)
	out = append(out, orig[:pos]...)
	out = append(out, orig[pos+1:]...)
	return out
}
