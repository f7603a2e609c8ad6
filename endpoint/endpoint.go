package endpoint

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// TotallyOrdered is a constraint that permits the ordered types whose comparison never fails (floats are excluded
// because of NaN). Only Endpoints over these types offer the total order API.
type TotallyOrdered interface {
	constraints.Integer | ~string
}

// Endpoint is one boundary of an interval. It combines a Kind with an optional value and orders open boundaries as if
// they were shifted by an infinitesimal amount, which allows intervals to compare their boundaries without looking at
// the combination of open and closed sides:
//
//	NegInf < RightOpen(x) < Closed(x) < LeftOpen(x) < PosInf
//
// Endpoints are immutable values. Unbounded Endpoints always carry the zero value of T, so == reports structural
// equality.
type Endpoint[T constraints.Ordered] struct {
	kind  Kind
	value T
}

// New creates an Endpoint of the given Kind. The value is ignored for the unbounded kinds.
func New[T constraints.Ordered](kind Kind, value T) Endpoint[T] {
	switch {
	case kind.IsFinite():
		return Endpoint[T]{kind: kind, value: value}
	case kind == KindPosInf, kind == KindNegInf:
		return Endpoint[T]{kind: kind}
	default:
		panic(fmt.Sprintf("unsupported endpoint kind %s", kind))
	}
}

// Closed returns an Endpoint that includes x.
func Closed[T constraints.Ordered](x T) Endpoint[T] {
	return Endpoint[T]{kind: KindClosed, value: x}
}

// LeftOpen returns an Endpoint that starts an interval just after x.
func LeftOpen[T constraints.Ordered](x T) Endpoint[T] {
	return Endpoint[T]{kind: KindLeftOpen, value: x}
}

// RightOpen returns an Endpoint that ends an interval just before x.
func RightOpen[T constraints.Ordered](x T) Endpoint[T] {
	return Endpoint[T]{kind: KindRightOpen, value: x}
}

// PosInf returns the Endpoint that is greater than every other Endpoint.
func PosInf[T constraints.Ordered]() Endpoint[T] {
	return Endpoint[T]{kind: KindPosInf}
}

// NegInf returns the Endpoint that is smaller than every other Endpoint.
func NegInf[T constraints.Ordered]() Endpoint[T] {
	return Endpoint[T]{kind: KindNegInf}
}

// Kind returns the Kind of the Endpoint.
func (e Endpoint[T]) Kind() Kind {
	return e.kind
}

// Value returns the wrapped value and a flag that is false for unbounded Endpoints.
func (e Endpoint[T]) Value() (value T, exists bool) {
	return e.value, e.kind.IsFinite()
}

// IsFinite returns true if the Endpoint wraps a value.
func (e Endpoint[T]) IsFinite() bool {
	return e.kind.IsFinite()
}

// Equal returns true if both Endpoints have the same Kind and the same value.
func (e Endpoint[T]) Equal(other Endpoint[T]) bool {
	return e == other
}

// PartialCompare returns -1, 0 or 1 if the Endpoint is smaller, equal or bigger than other. The second return value
// is false if the wrapped values can not be ordered (NaN), in which case the result is meaningless.
func (e Endpoint[T]) PartialCompare(other Endpoint[T]) (result int, ok bool) {
	switch {
	case e.kind == KindPosInf:
		if other.kind == KindPosInf {
			return 0, true
		}

		return 1, true
	case e.kind == KindNegInf:
		if other.kind == KindNegInf {
			return 0, true
		}

		return -1, true
	case other.kind == KindPosInf:
		return -1, true
	case other.kind == KindNegInf:
		return 1, true
	}

	switch {
	case e.value < other.value:
		return -1, true
	case e.value > other.value:
		return 1, true
	case e.value == other.value:
		return lo.Comparator(tieRank[e.kind], tieRank[other.kind]), true
	default:
		return 0, false
	}
}

// Less returns true if the Endpoint is known to be smaller than other.
func (e Endpoint[T]) Less(other Endpoint[T]) bool {
	result, ok := e.PartialCompare(other)

	return ok && result < 0
}

// LessOrEqual returns true if the Endpoint is known to be smaller than or equal to other.
func (e Endpoint[T]) LessOrEqual(other Endpoint[T]) bool {
	result, ok := e.PartialCompare(other)

	return ok && result <= 0
}

// Greater returns true if the Endpoint is known to be bigger than other.
func (e Endpoint[T]) Greater(other Endpoint[T]) bool {
	result, ok := e.PartialCompare(other)

	return ok && result > 0
}

// GreaterOrEqual returns true if the Endpoint is known to be bigger than or equal to other.
func (e Endpoint[T]) GreaterOrEqual(other Endpoint[T]) bool {
	result, ok := e.PartialCompare(other)

	return ok && result >= 0
}

// String returns a human-readable version of the Endpoint.
func (e Endpoint[T]) String() string {
	if !e.kind.IsFinite() {
		return stringify.Struct("Endpoint",
			stringify.NewStructField("kind", e.kind),
		)
	}

	return stringify.Struct("Endpoint",
		stringify.NewStructField("kind", e.kind),
		stringify.NewStructField("value", fmt.Sprint(e.value)),
	)
}
