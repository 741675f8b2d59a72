package murmur

import "testing"

func TestMurmur(t *testing.T) {
	t.Run("same input same seed is stable", func(t *testing.T) {
		key := []byte("hello")
		seed := uint32(1)

		first := Murmur32(key, seed)
		second := Murmur32(key, seed)
		if first != second {
			t.Errorf("expected stable hash, got %d then %d", first, second)
		}
	})

	t.Run("different seeds usually diverge", func(t *testing.T) {
		key := []byte("hello")
		if Murmur32(key, 1) == Murmur32(key, 2) {
			t.Errorf("expected reseeding to change the hash")
		}
	})

	t.Run("handles non multiple of 4 length input", func(t *testing.T) {
		for _, key := range [][]byte{[]byte(""), []byte("a"), []byte("ab"), []byte("abc"), []byte("abcd"), []byte("abcde")} {
			_ = Murmur32(key, 0)
		}
	})

	t.Run("MixUint64 is stable and distinct inputs diverge", func(t *testing.T) {
		if MixUint64(42) != MixUint64(42) {
			t.Errorf("expected stable hash for repeated input")
		}
		if MixUint64(42) == MixUint64(43) {
			t.Errorf("expected distinct inputs to usually diverge")
		}
	})
}
