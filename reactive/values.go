package reactive

import (
	"math"
	"reflect"
)

// identical reports whether two stored values are the same by identity for
// reference-shaped values and by value otherwise. Uncomparable values that
// are not reference-shaped never compare equal.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Handles stand for their targets, and a record stands for the raw map
	// it was promoted from, so wrapped and raw forms of the same value
	// compare identical.
	if ha, ok := a.(*Handle); ok {
		a = ha.target()
	}
	if hb, ok := b.(*Handle); ok {
		b = hb.target()
	}
	if ra, ok := a.(*record); ok {
		a = ra.fields
	}
	if rb, ok := b.(*record); ok {
		b = rb.fields
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	}
	if !av.Type().Comparable() {
		return false
	}
	return a == b
}

// hasChanged is the write guard: a value only counts as changed when it
// differs by identity/value, except that NaN replacing NaN is not a change.
func hasChanged(oldV, newV any) bool {
	if of, ok := oldV.(float64); ok {
		if nf, ok := newV.(float64); ok && math.IsNaN(of) && math.IsNaN(nf) {
			return false
		}
	}
	return !identical(oldV, newV)
}

// unwrapValue strips a handle down to its underlying target before storage,
// so wrapped values never nest inside raw data.
func unwrapValue(v any) any {
	if h, ok := v.(*Handle); ok {
		return h.target()
	}
	return v
}
