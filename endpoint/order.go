package endpoint

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
)

// Compare returns -1, 0 or 1 if a is smaller, equal or bigger than b.
func Compare[T TotallyOrdered](a, b Endpoint[T]) int {
	return mustCompare(a, b)
}

// Max returns the bigger of both Endpoints (a if they are equal).
func Max[T TotallyOrdered](a, b Endpoint[T]) Endpoint[T] {
	if Compare(a, b) < 0 {
		return b
	}

	return a
}

// Min returns the smaller of both Endpoints (a if they are equal).
func Min[T TotallyOrdered](a, b Endpoint[T]) Endpoint[T] {
	if Compare(a, b) > 0 {
		return b
	}

	return a
}

// PartialMax returns the bigger of both Endpoints and false if they can not be ordered.
func PartialMax[T constraints.Ordered](a, b Endpoint[T]) (Endpoint[T], bool) {
	result, ok := a.PartialCompare(b)
	if !ok {
		return Endpoint[T]{}, false
	}

	if result < 0 {
		return b, true
	}

	return a, true
}

// PartialMin returns the smaller of both Endpoints and false if they can not be ordered.
func PartialMin[T constraints.Ordered](a, b Endpoint[T]) (Endpoint[T], bool) {
	result, ok := a.PartialCompare(b)
	if !ok {
		return Endpoint[T]{}, false
	}

	if result > 0 {
		return b, true
	}

	return a, true
}

// Comparator compares two Endpoints that are passed as empty interfaces. It can be used as the comparator of the
// ordered containers in github.com/emirpasic/gods.
func Comparator[T TotallyOrdered](a, b interface{}) int {
	return Compare(a.(Endpoint[T]), b.(Endpoint[T]))
}

// mustCompare panics if the Endpoints can not be ordered.
func mustCompare[T constraints.Ordered](a, b Endpoint[T]) int {
	result, ok := a.PartialCompare(b)
	if !ok {
		panic(fmt.Sprintf("endpoints %v and %v can not be ordered", a.value, b.value))
	}

	return result
}
