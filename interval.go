// Package interval implements intervals over ordered values. Every boundary is an endpoint.Endpoint, so containment,
// the subset order and intersections are all answered by comparing endpoints, no matter which combination of open,
// closed and unbounded sides two intervals use.
//
// Notation         Definition          Factory method
// (a, b)           {x | a < x < b}     Open
// [a, b]           {x | a <= x <= b}   Closed
// (a, b]           {x | a < x <= b}    OpenClosed
// [a, b)           {x | a <= x < b}    ClosedOpen
// (a, +inf)        {x | x > a}         GreaterThan
// [a, +inf)        {x | x >= a}        AtLeast
// (-inf, b)        {x | x < b}         LessThan
// (-inf, b]        {x | x <= b}        AtMost
// [a, a]           {a}                 Singleton
// (-inf, +inf)     {x}                 All
// (+inf, -inf)     {}                  Empty
package interval

import (
	"github.com/iotaledger/hive.go/constraints"

	"github.com/iotaledger/hive.go/interval/endpoint"
)

// Interval is a (possibly empty) contiguous set of values bounded by two Endpoints.
//
// The left Endpoint is not required to be smaller than the right one: an Interval whose left Endpoint is bigger than
// its right Endpoint is empty. Intervals are immutable values; the zero value is the Singleton of the zero value of T.
type Interval[T constraints.Ordered] struct {
	left  endpoint.Endpoint[T]
	right endpoint.Endpoint[T]
}

// New creates an Interval from the given Endpoints.
func New[T constraints.Ordered](left, right endpoint.Endpoint[T]) Interval[T] {
	return Interval[T]{
		left:  left,
		right: right,
	}
}

// Empty returns the canonical empty Interval (+inf, -inf).
func Empty[T constraints.Ordered]() Interval[T] {
	return New(endpoint.PosInf[T](), endpoint.NegInf[T]())
}

// All returns the Interval that contains all values.
func All[T constraints.Ordered]() Interval[T] {
	return New(endpoint.NegInf[T](), endpoint.PosInf[T]())
}

// AtLeast returns an Interval that contains all values greater than or equal to x.
func AtLeast[T constraints.Ordered](x T) Interval[T] {
	return New(endpoint.Closed(x), endpoint.PosInf[T]())
}

// AtMost returns an Interval that contains all values less than or equal to x.
func AtMost[T constraints.Ordered](x T) Interval[T] {
	return New(endpoint.NegInf[T](), endpoint.Closed(x))
}

// GreaterThan returns an Interval that contains all values strictly greater than x.
func GreaterThan[T constraints.Ordered](x T) Interval[T] {
	return New(endpoint.LeftOpen(x), endpoint.PosInf[T]())
}

// LessThan returns an Interval that contains all values strictly less than x.
func LessThan[T constraints.Ordered](x T) Interval[T] {
	return New(endpoint.NegInf[T](), endpoint.RightOpen(x))
}

// Open returns an Interval that contains all values strictly greater than left and strictly less than right.
func Open[T constraints.Ordered](left, right T) Interval[T] {
	return New(endpoint.LeftOpen(left), endpoint.RightOpen(right))
}

// Closed returns an Interval that contains all values greater than or equal to left and less than or equal to right.
func Closed[T constraints.Ordered](left, right T) Interval[T] {
	return New(endpoint.Closed(left), endpoint.Closed(right))
}

// ClosedOpen returns an Interval that contains all values greater than or equal to left and strictly less than right.
func ClosedOpen[T constraints.Ordered](left, right T) Interval[T] {
	return New(endpoint.Closed(left), endpoint.RightOpen(right))
}

// OpenClosed returns an Interval that contains all values strictly greater than left and less than or equal to right.
func OpenClosed[T constraints.Ordered](left, right T) Interval[T] {
	return New(endpoint.LeftOpen(left), endpoint.Closed(right))
}

// Singleton returns an Interval that only contains x.
func Singleton[T constraints.Ordered](x T) Interval[T] {
	return Closed(x, x)
}

// Left returns the left Endpoint of the Interval.
func (i Interval[T]) Left() endpoint.Endpoint[T] {
	return i.left
}

// Right returns the right Endpoint of the Interval.
func (i Interval[T]) Right() endpoint.Endpoint[T] {
	return i.right
}

// IsEmpty returns true if the left Endpoint is bigger than the right Endpoint. The second return value is false if the
// Endpoints can not be ordered, in which case emptiness is unknown.
func (i Interval[T]) IsEmpty() (empty bool, ok bool) {
	result, ok := i.left.PartialCompare(i.right)

	return ok && result > 0, ok
}

// IsAll returns true if the Interval is structurally equal to All. Intervals that cover everything in some other way
// are not recognized.
func (i Interval[T]) IsAll() bool {
	return i == All[T]()
}

// Contains returns true if x lies within the bounds of the Interval. It returns false when a comparison against a
// finite Endpoint is undefined, while the unbounded Endpoints order every value (All contains NaN).
func (i Interval[T]) Contains(x T) bool {
	value := endpoint.Closed(x)

	return i.left.LessOrEqual(value) && value.LessOrEqual(i.right)
}

// Equal returns true if both Intervals have the same Endpoints. Empty Intervals with different Endpoints are not
// equal, even though CompareSubset considers them to be the same set.
func (i Interval[T]) Equal(other Interval[T]) bool {
	return i.left.Equal(other.left) && i.right.Equal(other.right)
}
