package interval

import "github.com/iotaledger/hive.go/interval/endpoint"

// CompareSubset orders two Intervals by inclusion. It returns -1 if the Interval is a subset of other, 1 if it is a
// superset and 0 if both describe the same set (all empty Intervals describe the same set). The second return value is
// false if the Intervals overlap without one containing the other, or if their Endpoints can not be ordered.
func (i Interval[T]) CompareSubset(other Interval[T]) (result int, ok bool) {
	if i.isKnownEmpty() && other.isKnownEmpty() {
		return 0, true
	}

	if i.Equal(other) {
		return 0, true
	}

	if i.left.GreaterOrEqual(other.left) && i.right.LessOrEqual(other.right) {
		return -1, true
	}

	if i.left.LessOrEqual(other.left) && i.right.GreaterOrEqual(other.right) {
		return 1, true
	}

	return 0, false
}

// IsSubsetOf returns true if every value of the Interval is contained in other.
func (i Interval[T]) IsSubsetOf(other Interval[T]) bool {
	result, ok := i.CompareSubset(other)

	return ok && result <= 0
}

// IsSupersetOf returns true if every value of other is contained in the Interval.
func (i Interval[T]) IsSupersetOf(other Interval[T]) bool {
	result, ok := i.CompareSubset(other)

	return ok && result >= 0
}

// IsProperSubsetOf returns true if the Interval is a subset of other that is not the same set.
func (i Interval[T]) IsProperSubsetOf(other Interval[T]) bool {
	result, ok := i.CompareSubset(other)

	return ok && result < 0
}

// IsProperSupersetOf returns true if the Interval is a superset of other that is not the same set.
func (i Interval[T]) IsProperSupersetOf(other Interval[T]) bool {
	result, ok := i.CompareSubset(other)

	return ok && result > 0
}

// PartialIntersect returns the Interval of all values that are contained in both Intervals. The second return value
// is false if the Endpoints can not be ordered. The result may be empty.
func (i Interval[T]) PartialIntersect(other Interval[T]) (intersection Interval[T], ok bool) {
	left, leftOK := endpoint.PartialMax(i.left, other.left)
	right, rightOK := endpoint.PartialMin(i.right, other.right)
	if !leftOK || !rightOK {
		return Interval[T]{}, false
	}

	return New(left, right), true
}

// Intersect returns the Interval of all values that are contained in both Intervals. The result may be empty, so
// callers should check IsEmpty.
func Intersect[T endpoint.TotallyOrdered](a, b Interval[T]) Interval[T] {
	return New(endpoint.Max(a.left, b.left), endpoint.Min(a.right, b.right))
}

// isKnownEmpty returns true if the Interval is empty and its Endpoints can be ordered.
func (i Interval[T]) isKnownEmpty() bool {
	empty, ok := i.IsEmpty()

	return ok && empty
}
