package hamt

import (
	"math"
	"reflect"
)

// equalValues implements the "is" contract of spec.md §4.1 for the map's
// values: a value-object hook (Equatable[V]) is honored when V implements
// one ("The hook is honored for both keys and value-equality checks (is)",
// spec.md §6); float64 gets the NaN/+0/-0 treatment the spec calls out for
// primitives; everything else falls back to reflect.DeepEqual, the closest
// stdlib equivalent to the source's untyped structural "is".
func equalValues[V any](a, b V) bool {
	av, aok := any(a).(float64)
	bv, bok := any(b).(float64)
	if aok && bok {
		if math.IsNaN(av) && math.IsNaN(bv) {
			return true
		}
		return av == bv
	}

	if ea, ok := any(a).(Equatable[V]); ok {
		return ea.Equals(b)
	}

	return reflect.DeepEqual(a, b)
}
