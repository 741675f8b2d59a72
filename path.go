package hamt

import "reflect"

// AnyMap is Map[any, any], the concrete type spec.md §4.4's path
// operations are defined over. Go's generics forbid a method from
// introducing a type parameter unrelated to its receiver's, and a path
// step may descend into arbitrarily different V types at each level, so
// GetIn/SetIn/UpdateIn/DeleteIn/MergeIn are free functions over this one
// heterogeneous instantiation rather than methods on Map[K, V] (see
// SPEC_FULL.md §4.4).
type AnyMap = Map[any, any]

// NewAnyMap returns a new, empty AnyMap.
func NewAnyMap() *AnyMap {
	return Empty[any, any](ComparableHasher[any]{})
}

// isTraversable reports whether v is something path operations can
// recurse into: this package's own *AnyMap, or — per spec.md §4.4's
// "plain record or plain ordered sequence" — any plain Go map, slice or
// array value found mid-path.
func isTraversable(v any) bool {
	if _, ok := v.(*AnyMap); ok {
		return true
	}
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// containerGet reads segment out of container, whichever traversable
// shape container has: an *AnyMap, a plain Go map keyed by something
// segment is assignable to, or a slice/array indexed by an int segment.
func containerGet(container any, segment any) (any, bool) {
	if am, ok := container.(*AnyMap); ok {
		return am.Get(segment)
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Map:
		key := reflect.ValueOf(segment)
		if !key.IsValid() || !key.Type().AssignableTo(rv.Type().Key()) {
			return nil, false
		}
		value := rv.MapIndex(key)
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	case reflect.Slice, reflect.Array:
		idx, ok := segment.(int)
		if !ok || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	default:
		return nil, false
	}
}

// coerceElem adapts value to elemType, the static element type of the
// plain Go map/slice/array being written into, falling back to the zero
// value of elemType when value is nil.
func coerceElem(value any, elemType reflect.Type) (reflect.Value, bool) {
	if value == nil {
		return reflect.Zero(elemType), true
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(elemType) {
		return reflect.Value{}, false
	}
	return rv, true
}

// containerSet returns a shallow clone of container with segment set to
// value, per spec.md §4.4's "treating it as immutable": a plain Go
// map/slice/array found mid-path is never mutated in place, only the
// *AnyMap case gets this package's own owner-aware structural sharing.
// The bool return reports whether container could accept the write at
// all (wrong key/index type, out-of-range index, or a non-container
// value).
func containerSet(container any, segment any, value any) (any, bool) {
	if am, ok := container.(*AnyMap); ok {
		return am.Set(segment, value), true
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Map:
		key := reflect.ValueOf(segment)
		if !key.IsValid() || !key.Type().AssignableTo(rv.Type().Key()) {
			return nil, false
		}
		elem, ok := coerceElem(value, rv.Type().Elem())
		if !ok {
			return nil, false
		}
		clone := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		for _, k := range rv.MapKeys() {
			clone.SetMapIndex(k, rv.MapIndex(k))
		}
		clone.SetMapIndex(key, elem)
		return clone.Interface(), true
	case reflect.Slice:
		idx, ok := segment.(int)
		if !ok || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		elem, ok := coerceElem(value, rv.Type().Elem())
		if !ok {
			return nil, false
		}
		clone := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(clone, rv)
		clone.Index(idx).Set(elem)
		return clone.Interface(), true
	case reflect.Array:
		idx, ok := segment.(int)
		if !ok || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		elem, ok := coerceElem(value, rv.Type().Elem())
		if !ok {
			return nil, false
		}
		clone := reflect.New(rv.Type()).Elem()
		reflect.Copy(clone, rv)
		clone.Index(idx).Set(elem)
		return clone.Interface(), true
	default:
		return nil, false
	}
}

// containerDelete removes segment from container, reporting whether
// anything actually changed. Plain Go slices/arrays have no well-defined
// "remove this index" operation (spec.md doesn't define shifting later
// indices down), so only *AnyMap and plain Go maps support it; the rest
// are left untouched.
func containerDelete(container any, segment any) (any, bool) {
	if am, ok := container.(*AnyMap); ok {
		updated := am.Delete(segment)
		return updated, updated != am
	}

	rv := reflect.ValueOf(container)
	if rv.Kind() != reflect.Map {
		return container, false
	}

	key := reflect.ValueOf(segment)
	if !key.IsValid() || !key.Type().AssignableTo(rv.Type().Key()) || !rv.MapIndex(key).IsValid() {
		return container, false
	}

	clone := reflect.MakeMapWithSize(rv.Type(), rv.Len()-1)
	for _, k := range rv.MapKeys() {
		if k.Interface() == segment {
			continue
		}
		clone.SetMapIndex(k, rv.MapIndex(k))
	}
	return clone.Interface(), true
}

// GetIn walks path, descending through nested *AnyMap values and plain
// Go maps/slices/arrays at each step, and returns the value found at the
// end of it. It returns (nil, false) if any step is missing or any
// intermediate value is not itself traversable (spec.md §4.4's "returns
// notSet if any step along path is missing").
func GetIn(m *AnyMap, path []any) (any, bool) {
	var current any = m
	for _, segment := range path {
		if current == nil {
			return nil, false
		}
		value, found := containerGet(current, segment)
		if !found {
			return nil, false
		}
		current = value
	}
	return current, true
}

// SetIn sets the value at path, creating intermediate AnyMaps for any
// step that is missing, and recursing into (and shallow-cloning)
// whatever traversable value already occupies a step, per spec.md §4.4.
// It returns a PathError if an intermediate step already holds a value
// that cannot be descended into, or that rejects the write (e.g. an
// out-of-range slice index).
func SetIn(m *AnyMap, path []any, value any) (*AnyMap, error) {
	if len(path) == 0 {
		return nil, &PathError{Path: path, Segment: 0, Value: m}
	}
	result, err := setInAt(m, path, 0, value)
	if err != nil {
		return nil, err
	}
	return result.(*AnyMap), nil
}

func setInAt(container any, path []any, depth int, value any) (any, error) {
	segment := path[depth]

	if depth == len(path)-1 {
		result, ok := containerSet(container, segment, value)
		if !ok {
			return nil, &PathError{Path: path, Segment: depth, Value: container}
		}
		return result, nil
	}

	child, found := containerGet(container, segment)
	if !found {
		child = NewAnyMap()
	} else if !isTraversable(child) {
		return nil, &PathError{Path: path, Segment: depth, Value: child}
	}

	updatedChild, err := setInAt(child, path, depth+1, value)
	if err != nil {
		return nil, err
	}

	result, ok := containerSet(container, segment, updatedChild)
	if !ok {
		return nil, &PathError{Path: path, Segment: depth, Value: container}
	}
	return result, nil
}

// UpdateIn reads the current value at path (nil and found=false if
// missing), applies fn, and sets the result in place, creating
// intermediate AnyMaps as SetIn does (spec.md §4.4).
func UpdateIn(m *AnyMap, path []any, fn func(value any, found bool) any) (*AnyMap, error) {
	current, found := GetIn(m, path)
	return SetIn(m, path, fn(current, found))
}

// DeleteIn removes the value at path, leaving intermediate containers in
// place even if they become empty (spec.md §4.4; trimming empty
// intermediates is left to the caller, matching the teacher's own
// leave-empty-containers-alone style elsewhere in the trie). Deleting a
// path that does not exist is a no-op: m is returned unchanged.
func DeleteIn(m *AnyMap, path []any) (*AnyMap, error) {
	if len(path) == 0 {
		return nil, &PathError{Path: path, Segment: 0, Value: m}
	}
	result, changed, err := deleteInAt(m, path, 0)
	if err != nil {
		return nil, err
	}
	if !changed {
		return m, nil
	}
	return result.(*AnyMap), nil
}

func deleteInAt(container any, path []any, depth int) (any, bool, error) {
	segment := path[depth]

	if depth == len(path)-1 {
		updated, changed := containerDelete(container, segment)
		return updated, changed, nil
	}

	child, found := containerGet(container, segment)
	if !found {
		return container, false, nil
	}
	if !isTraversable(child) {
		return nil, false, &PathError{Path: path, Segment: depth, Value: child}
	}

	updatedChild, changed, err := deleteInAt(child, path, depth+1)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return container, false, nil
	}

	result, ok := containerSet(container, segment, updatedChild)
	if !ok {
		return nil, false, &PathError{Path: path, Segment: depth, Value: container}
	}
	return result, true, nil
}

// MergeIn shallow-merges source into the AnyMap found at path (creating
// intermediate AnyMaps as SetIn does if the path does not yet exist),
// per spec.md §4.4.
func MergeIn(m *AnyMap, path []any, source *AnyMap) (*AnyMap, error) {
	current, found := GetIn(m, path)
	var target *AnyMap
	if !found {
		target = NewAnyMap()
	} else if cm, ok := current.(*AnyMap); ok {
		target = cm
	} else {
		return nil, &PathError{Path: path, Segment: len(path) - 1, Value: current}
	}
	return SetIn(m, path, target.Merge(source))
}
