package hamt

import (
	"math"
	"testing"
)

func TestEqualValues(t *testing.T) {
	t.Run("Test NaN Floats Compare Equal", func(t *testing.T) {
		if !equalValues(math.NaN(), math.NaN()) {
			t.Error("expected two NaNs to compare equal")
		}
	})

	t.Run("Test Value Object Hook Is Honored", func(t *testing.T) {
		a := point{1, 2}
		b := point{1, 2}
		c := point{3, 4}
		if !equalValues(a, b) {
			t.Error("expected equal points to compare equal via their Equals hook")
		}
		if equalValues(a, c) {
			t.Error("expected differing points to compare unequal")
		}
	})

	t.Run("Test Struct Fallback Uses Deep Equal", func(t *testing.T) {
		type pair struct{ a, b int }
		if !equalValues(pair{1, 2}, pair{1, 2}) {
			t.Error("expected identical plain structs to compare equal via reflect.DeepEqual")
		}
		if equalValues(pair{1, 2}, pair{1, 3}) {
			t.Error("expected differing plain structs to compare unequal")
		}
	})
}
