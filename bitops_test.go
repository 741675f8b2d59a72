package hamt

import "testing"

func TestBitops(t *testing.T) {
	t.Run("Test Shard Index", func(t *testing.T) {
		hash := uint32(0b10101_00010_11100_00000_00000_00000_01)
		for shift := uint(0); shift <= maxShift; shift += shiftBits {
			idx := shardIndex(hash, shift)
			if idx < 0 || idx > 31 {
				t.Errorf("shard index %d out of range at shift %d", idx, shift)
			}
		}
	})

	t.Run("Test Set Clear Is Bit Set", func(t *testing.T) {
		var bitmap uint32
		bitmap = setBit(bitmap, 3)
		bitmap = setBit(bitmap, 17)

		if !isBitSet(bitmap, 3) || !isBitSet(bitmap, 17) {
			t.Error("expected bits 3 and 17 to be set")
		}
		if isBitSet(bitmap, 4) {
			t.Error("expected bit 4 to be unset")
		}

		bitmap = clearBit(bitmap, 3)
		if isBitSet(bitmap, 3) {
			t.Error("expected bit 3 to be cleared")
		}
	})

	t.Run("Test Pop Index", func(t *testing.T) {
		var bitmap uint32
		bitmap = setBit(bitmap, 1)
		bitmap = setBit(bitmap, 5)
		bitmap = setBit(bitmap, 9)

		if popIndex(bitmap, 1) != 0 {
			t.Error("expected position 0 for the lowest set bit")
		}
		if popIndex(bitmap, 5) != 1 {
			t.Error("expected position 1 for the middle set bit")
		}
		if popIndex(bitmap, 9) != 2 {
			t.Error("expected position 2 for the highest set bit")
		}
	})

	t.Run("Test Extend And Shrink Entries", func(t *testing.T) {
		entries := []mapEntry[string, int]{{key: "a", value: 1}, {key: "b", value: 2}}
		extended := extendEntries(entries, mapEntry[string, int]{key: "c", value: 3})
		if len(extended) != 3 || extended[2].key != "c" {
			t.Error("expected c appended at the end")
		}

		shrunk := shrinkEntries(extended, 1)
		if len(shrunk) != 2 || shrunk[0].key != "a" || shrunk[1].key != "c" {
			t.Error("expected b removed, a and c remaining in order")
		}
	})
}
