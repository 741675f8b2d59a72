package hamt

import "testing"

func TestMapBasics(t *testing.T) {
	t.Run("Test Get Set Delete Round Trip", func(t *testing.T) {
		m := New[string, int]()
		m = m.Set("a", 1).Set("b", 2).Set("c", 3)

		if m.Len() != 3 {
			t.Errorf("expected length 3, got %d", m.Len())
		}
		if v, ok := m.Get("b"); !ok || v != 2 {
			t.Errorf("expected b -> 2, got %v, %v", v, ok)
		}

		m2 := m.Delete("b")
		if m2.Len() != 2 {
			t.Errorf("expected length 2 after delete, got %d", m2.Len())
		}
		if _, ok := m2.Get("b"); ok {
			t.Error("expected b to be gone from the derived map")
		}
		if _, ok := m.Get("b"); !ok {
			t.Error("expected the original map to still have b")
		}
	})

	t.Run("Test GetOrElse And Has", func(t *testing.T) {
		m := New[string, int]().Set("a", 1)
		if v := m.GetOrElse("a", 99); v != 1 {
			t.Errorf("expected 1, got %d", v)
		}
		if v := m.GetOrElse("missing", 99); v != 99 {
			t.Errorf("expected fallback 99, got %d", v)
		}
		if !m.Has("a") || m.Has("missing") {
			t.Error("Has disagreed with Get")
		}
	})

	t.Run("Test Update Inserts Modifies And Skips No Ops", func(t *testing.T) {
		m := New[string, int]()

		m = m.Update("counter", func(v int, found bool) int {
			if !found {
				return 1
			}
			return v + 1
		})
		if v, _ := m.Get("counter"); v != 1 {
			t.Errorf("expected counter at 1, got %d", v)
		}

		m = m.Update("counter", func(v int, found bool) int { return v + 1 })
		if v, _ := m.Get("counter"); v != 2 {
			t.Errorf("expected counter at 2, got %d", v)
		}

		same := m.Update("counter", func(v int, found bool) int { return v })
		if same != m {
			t.Error("expected a no-op update to return the receiver unchanged")
		}
	})

	t.Run("Test Clear", func(t *testing.T) {
		m := New[string, int]().Set("a", 1).Set("b", 2)
		cleared := m.Clear()
		if cleared.Len() != 0 {
			t.Error("expected an empty map after Clear")
		}
		if m.Len() != 2 {
			t.Error("expected the original map untouched by Clear")
		}
	})
}

func TestMapTransients(t *testing.T) {
	t.Run("Test WithMutations Batches Edits Into One Map", func(t *testing.T) {
		base := New[int, int]()
		result := base.WithMutations(func(mutable *Map[int, int]) {
			for i := 0; i < 50; i++ {
				mutable.Set(i, i*i)
			}
		})

		if result.Len() != 50 {
			t.Errorf("expected 50 entries, got %d", result.Len())
		}
		if v, _ := result.Get(7); v != 49 {
			t.Errorf("expected 7*7=49, got %d", v)
		}
		if base.Len() != 0 {
			t.Error("expected the base map to be untouched")
		}
	})

	t.Run("Test AsMutable AsImmutable Round Trip", func(t *testing.T) {
		base := New[string, int]().Set("a", 1)
		mutable := base.AsMutable()
		if !mutable.IsMutable() {
			t.Error("expected a freshly-minted transient to report IsMutable")
		}

		mutable.Set("b", 2)
		mutable.Set("c", 3)

		sealed := mutable.AsImmutable()
		if sealed.IsMutable() {
			t.Error("expected a sealed map to report immutable")
		}
		if sealed.Len() != 3 {
			t.Errorf("expected 3 entries after sealing, got %d", sealed.Len())
		}
		if !sealed.WasAltered() {
			t.Error("expected WasAltered to be true after at least one mutation")
		}
	})

	t.Run("Test Nested WithMutations Panics With MisuseError", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected a panic for nested WithMutations")
			}
			if _, ok := r.(*MisuseError); !ok {
				t.Errorf("expected a *MisuseError, got %T", r)
			}
		}()

		mutable := New[int, int]().AsMutable()
		mutable.WithMutations(func(*Map[int, int]) {})
	})
}

func TestMapEqualityAndHash(t *testing.T) {
	t.Run("Test Equal Ignores Insertion Order", func(t *testing.T) {
		a := New[string, int]().Set("x", 1).Set("y", 2)
		b := New[string, int]().Set("y", 2).Set("x", 1)

		if !a.Equal(b) {
			t.Error("expected maps built in different orders to compare equal")
		}
		if a.Hash() != b.Hash() {
			t.Error("expected equal maps to hash identically")
		}
	})

	t.Run("Test Equal Detects Differing Content", func(t *testing.T) {
		a := New[string, int]().Set("x", 1)
		b := New[string, int]().Set("x", 2)
		if a.Equal(b) {
			t.Error("expected maps with differing values to compare unequal")
		}
	})
}

func TestMapConstructors(t *testing.T) {
	t.Run("Test FromEntries Last Wins On Duplicate Keys", func(t *testing.T) {
		m := FromEntries(Default[string](), []Entry[string, int]{
			{Key: "a", Value: 1},
			{Key: "a", Value: 2},
			{Key: "b", Value: 3},
		})
		if m.Len() != 2 {
			t.Errorf("expected 2 distinct keys, got %d", m.Len())
		}
		if v, _ := m.Get("a"); v != 2 {
			t.Errorf("expected the later value to win, got %d", v)
		}
	})

	t.Run("Test FromMap Round Trips A Go Map", func(t *testing.T) {
		native := map[string]int{"a": 1, "b": 2}
		m := FromMap(native)
		if m.Len() != 2 {
			t.Errorf("expected 2 entries, got %d", m.Len())
		}
		back := m.ToMap(func(k string) string { return k })
		if back["a"] != 1 || back["b"] != 2 {
			t.Errorf("expected round trip to preserve content, got %v", back)
		}
	})
}
