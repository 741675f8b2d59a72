// Package murmur implements the Murmur32 non-cryptographic hash function,
// used to turn arbitrary byte slices and bit-mixed primitives into the
// 32 bit hashes the trie shards on.
package murmur

import "encoding/binary"

const (
	// an odd constant that serves as a multiplier during mixing. Distributes bits and improves randomness
	c32_1 = 0x85ebca6b
	// an odd constant also used for mixing. Enhances distribution of hash value
	c32_2 = 0xc2b2ae35
	// added to hash after each chunk is mixed in. Contributes to finalization step
	c32_3 = 0xe6546b64
	// multiplied in the finalization step. Provides additional mixing effect
	c32_4 = 0x1b873593
	// multiplier in the finalization step. Again, improves hash value distribution
	c32_5 = 0x5c4bcea9
)

// Murmur32 hashes data with the given seed.
func Murmur32(data []byte, seed uint32) uint32 {
	hash := seed

	length := uint32(len(data))
	total4ByteChunks := len(data) / 4

	for idx := range make([]int, total4ByteChunks) {
		startIdxOfChunk := idx * 4
		endIdxOfChunk := (idx + 1) * 4
		chunk := binary.LittleEndian.Uint32(data[startIdxOfChunk:endIdxOfChunk])

		rotateRight32(&hash, chunk)
	}

	handleRemainingBytes32(&hash, data)

	hash ^= length
	hash ^= hash >> 16
	hash *= c32_4
	hash ^= hash >> 13
	hash *= c32_5
	hash ^= hash >> 16

	return hash
}

// rotateRight32 applies the mixing/rotation step to a single 4-byte chunk.
func rotateRight32(hash *uint32, chunk uint32) {
	chunk *= c32_1
	chunk = (chunk << 15) | (chunk >> 17) // rotate left by 15
	chunk *= c32_2

	*hash ^= chunk
	*hash = (*hash << 13) | (*hash >> 19) // rotate left by 13
	*hash = *hash*5 + c32_3
}

// handleRemainingBytes32 mixes in the trailing bytes that don't form a full 4-byte chunk.
func handleRemainingBytes32(hash *uint32, dataAsBytes []byte) {
	remaining := dataAsBytes[len(dataAsBytes)-len(dataAsBytes)%4:]

	if len(remaining) > 0 {
		var chunk uint32

		switch len(remaining) {
		case 3:
			chunk |= uint32(remaining[2]) << 16
			fallthrough
		case 2:
			chunk |= uint32(remaining[1]) << 8
			fallthrough
		case 1:
			chunk |= uint32(remaining[0])
			chunk *= c32_1
			chunk = (chunk << 15) | (chunk >> 17) // rotate left by 15
			chunk *= c32_2
			*hash ^= chunk
		}
	}
}

// MixUint64 folds a 64 bit value (a bit-cast float64, a pointer-derived
// identity, ...) down to a 32 bit hash through the same finalization mixer
// Murmur32 uses, so every hash kind in the map ends up equally well
// distributed across the trie's 5-bit shards.
func MixUint64(v uint64) uint32 {
	hash := uint32(v) ^ uint32(v>>32)
	hash ^= hash >> 16
	hash *= c32_4
	hash ^= hash >> 13
	hash *= c32_5
	hash ^= hash >> 16
	return hash
}
