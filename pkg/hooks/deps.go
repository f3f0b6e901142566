package hooks

import "reflect"

// depsChanged reports whether an effect with dependency list next must run,
// given the list stored by the last pass that reached the slot.
func depsChanged(prev, next []any) bool {
	if next == nil || prev == nil {
		return true
	}
	if len(prev) != len(next) {
		return true
	}
	for i := range next {
		if !depEqual(prev[i], next[i]) {
			return true
		}
	}
	return false
}

// depEqual compares comparable values with ==. Maps, slices, functions and
// channels compare by identity.
func depEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return safeEqual(a, b)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return va.Pointer() == vb.Pointer() && sameLen(va, vb)
	default:
		return false
	}
}

// safeEqual uses == but treats a panic (a struct holding an uncomparable
// interface value) as inequality.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func sameLen(a, b reflect.Value) bool {
	if a.Kind() != reflect.Slice {
		return true
	}
	return a.Len() == b.Len()
}

// cloneDeps copies a dependency list, preserving nil.
func cloneDeps(deps []any) []any {
	if deps == nil {
		return nil
	}
	out := make([]any, len(deps))
	copy(out, deps)
	return out
}
