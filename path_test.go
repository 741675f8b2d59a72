package hamt

import "testing"

func TestPathOperations(t *testing.T) {
	t.Run("Test SetIn Creates Intermediate Maps", func(t *testing.T) {
		root := NewAnyMap()
		updated, err := SetIn(root, []any{"user", "address", "city"}, "Springfield")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, ok := GetIn(updated, []any{"user", "address", "city"})
		if !ok || got != "Springfield" {
			t.Errorf("expected Springfield, got %v, %v", got, ok)
		}
		if root.Has("user") {
			t.Error("expected the original root to be untouched")
		}
	})

	t.Run("Test GetIn Returns Not Found For Missing Path", func(t *testing.T) {
		root := NewAnyMap()
		root, _ = SetIn(root, []any{"a", "b"}, 1)

		if _, ok := GetIn(root, []any{"a", "missing"}); ok {
			t.Error("expected a missing path segment to report not found")
		}
		if _, ok := GetIn(root, []any{"a", "b", "c"}); ok {
			t.Error("expected descending through a non-map leaf to report not found")
		}
	})

	t.Run("Test SetIn Reports PathError On Non Map Intermediate", func(t *testing.T) {
		root := NewAnyMap()
		root, _ = SetIn(root, []any{"a"}, 42)

		_, err := SetIn(root, []any{"a", "b"}, "oops")
		if err == nil {
			t.Fatal("expected a PathError when descending through a non-map value")
		}
		if _, ok := err.(*PathError); !ok {
			t.Errorf("expected a *PathError, got %T", err)
		}
	})

	t.Run("Test UpdateIn Applies Fn At Path", func(t *testing.T) {
		root := NewAnyMap()
		root, _ = SetIn(root, []any{"counters", "visits"}, 1)

		root, err := UpdateIn(root, []any{"counters", "visits"}, func(v any, found bool) any {
			if !found {
				return 1
			}
			return v.(int) + 1
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := GetIn(root, []any{"counters", "visits"})
		if got != 2 {
			t.Errorf("expected visits to be 2, got %v", got)
		}
	})

	t.Run("Test DeleteIn Removes Leaf And Is A No Op When Absent", func(t *testing.T) {
		root := NewAnyMap()
		root, _ = SetIn(root, []any{"a", "b"}, 1)

		root, err := DeleteIn(root, []any{"a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := GetIn(root, []any{"a", "b"}); ok {
			t.Error("expected a/b to be gone")
		}

		same, err := DeleteIn(root, []any{"a", "missing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if same != root {
			t.Error("expected deleting an absent path to return the receiver unchanged")
		}
	})

	t.Run("Test GetIn Recurses Through Plain Go Maps And Slices", func(t *testing.T) {
		root := NewAnyMap().Set("user", map[string]any{
			"name":    "Ada",
			"aliases": []any{"countess", "enchantress"},
		})

		name, ok := GetIn(root, []any{"user", "name"})
		if !ok || name != "Ada" {
			t.Errorf("expected Ada, got %v, %v", name, ok)
		}
		alias, ok := GetIn(root, []any{"user", "aliases", 1})
		if !ok || alias != "enchantress" {
			t.Errorf("expected enchantress, got %v, %v", alias, ok)
		}
	})

	t.Run("Test SetIn Shallow Clones A Plain Go Map Intermediate", func(t *testing.T) {
		original := map[string]any{"name": "Ada", "age": 30}
		root := NewAnyMap().Set("user", original)

		updated, err := SetIn(root, []any{"user", "age"}, 31)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if original["age"] != 30 {
			t.Error("expected the original plain map to be untouched")
		}
		age, _ := GetIn(updated, []any{"user", "age"})
		if age != 31 {
			t.Errorf("expected age 31, got %v", age)
		}
	})

	t.Run("Test SetIn Shallow Clones A Plain Go Slice Intermediate", func(t *testing.T) {
		original := []any{"a", "b", "c"}
		root := NewAnyMap().Set("letters", original)

		updated, err := SetIn(root, []any{"letters", 1}, "z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if original[1] != "b" {
			t.Error("expected the original plain slice to be untouched")
		}
		letter, _ := GetIn(updated, []any{"letters", 1})
		if letter != "z" {
			t.Errorf("expected z, got %v", letter)
		}
	})

	t.Run("Test SetIn Reports PathError On Out Of Range Slice Index", func(t *testing.T) {
		root := NewAnyMap().Set("letters", []any{"a", "b"})

		_, err := SetIn(root, []any{"letters", 5}, "z")
		if err == nil {
			t.Fatal("expected a PathError for an out-of-range slice index")
		}
		if _, ok := err.(*PathError); !ok {
			t.Errorf("expected a *PathError, got %T", err)
		}
	})

	t.Run("Test DeleteIn Removes A Key From A Plain Go Map Intermediate", func(t *testing.T) {
		root := NewAnyMap().Set("user", map[string]any{"name": "Ada", "age": 30})

		updated, err := DeleteIn(root, []any{"user", "age"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := GetIn(updated, []any{"user", "age"}); ok {
			t.Error("expected user/age to be gone")
		}
		if name, _ := GetIn(updated, []any{"user", "name"}); name != "Ada" {
			t.Errorf("expected name to survive the deletion, got %v", name)
		}
	})

	t.Run("Test MergeIn Merges Into Nested Map", func(t *testing.T) {
		root := NewAnyMap()
		root, _ = SetIn(root, []any{"config"}, NewAnyMap().Set("debug", false))

		addition := NewAnyMap().Set("debug", true).Set("verbose", true)
		root, err := MergeIn(root, []any{"config"}, addition)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		debug, _ := GetIn(root, []any{"config", "debug"})
		verbose, _ := GetIn(root, []any{"config", "verbose"})
		if debug != true || verbose != true {
			t.Errorf("expected merged config, got debug=%v verbose=%v", debug, verbose)
		}
	})
}
