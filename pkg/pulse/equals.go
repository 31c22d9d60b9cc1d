package pulse

import "reflect"

// defaultEquals compares two values of any type. Comparable dynamic types
// use ==; slices, maps, and other non-comparable types fall back to
// reflect.DeepEqual. Properties use this unless a custom equality function
// is configured with WithEquals.
func defaultEquals[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	if t := reflect.TypeOf(av); t.Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(a, b)
}
