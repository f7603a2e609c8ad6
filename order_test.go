package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/interval"
	"github.com/iotaledger/hive.go/interval/endpoint"
)

func sampleIntervals() []interval.Interval[int] {
	return []interval.Interval[int]{
		interval.Empty[int](),
		interval.All[int](),
		interval.AtLeast(2),
		interval.AtMost(2),
		interval.GreaterThan(2),
		interval.LessThan(2),
		interval.Open(1, 3),
		interval.Closed(1, 3),
		interval.ClosedOpen(1, 3),
		interval.OpenClosed(1, 3),
		interval.Singleton(3),
		interval.Open(2, 2),
		interval.Closed(5, 1),
	}
}

func TestInterval_CompareSubset(t *testing.T) {
	result, ok := interval.Closed(1, 2).CompareSubset(interval.Open(1, 2))
	require.True(t, ok)
	require.Equal(t, 1, result)
	require.True(t, interval.Closed(1, 2).IsProperSupersetOf(interval.Open(1, 2)))
	require.True(t, interval.Open(1, 2).IsProperSubsetOf(interval.Closed(1, 2)))

	require.True(t, interval.Empty[int]().IsSupersetOf(interval.Open(1, 1)))
	require.True(t, interval.Empty[int]().IsSubsetOf(interval.Empty[int]()))

	result, ok = interval.Closed(1, 3).CompareSubset(interval.Closed(1, 3))
	require.True(t, ok)
	require.Equal(t, 0, result)

	_, ok = interval.Closed(1, 3).CompareSubset(interval.Closed(2, 4))
	require.False(t, ok)
	require.False(t, interval.Closed(1, 3).IsSubsetOf(interval.Closed(2, 4)))
	require.False(t, interval.Closed(1, 3).IsSupersetOf(interval.Closed(2, 4)))

	require.True(t, interval.AtMost(5).IsProperSupersetOf(interval.LessThan(5)))
	require.True(t, interval.Singleton(4).IsProperSubsetOf(interval.All[int]()))
	require.True(t, interval.GreaterThan(0).IsProperSubsetOf(interval.AtLeast(0)))
	require.False(t, interval.Singleton(4).IsProperSubsetOf(interval.Singleton(4)))
}

// TestInterval_CompareSubsetEmpty tests that all empty Intervals are the same set under the subset order.
func TestInterval_CompareSubsetEmpty(t *testing.T) {
	empties := []interval.Interval[int]{interval.Empty[int](), interval.Open(1, 1), interval.Closed(3, 2), interval.ClosedOpen(4, 4)}

	for _, a := range empties {
		for _, b := range empties {
			result, ok := a.CompareSubset(b)
			require.True(t, ok, "%s vs %s", a, b)
			require.Equal(t, 0, result, "%s vs %s", a, b)
		}
	}

	require.True(t, interval.Empty[int]().IsSubsetOf(interval.Singleton(7)))
}

func TestInterval_CompareSubsetAntisymmetric(t *testing.T) {
	for _, a := range sampleIntervals() {
		for _, b := range sampleIntervals() {
			ab, abOK := a.CompareSubset(b)
			ba, baOK := b.CompareSubset(a)

			require.Equal(t, abOK, baOK, "%s vs %s", a, b)
			if abOK {
				require.Equal(t, ab, -ba, "%s vs %s", a, b)
			}
		}
	}
}

func TestInterval_CompareSubsetNaN(t *testing.T) {
	_, ok := interval.Closed(math.NaN(), 2).CompareSubset(interval.Closed(0.0, 3.0))
	require.False(t, ok)

	result, ok := interval.All[float64]().CompareSubset(interval.LessThan(math.NaN()))
	require.True(t, ok)
	require.Equal(t, 1, result)
}

func TestIntersect(t *testing.T) {
	require.Equal(t, interval.OpenClosed(2, 3), interval.Intersect(interval.Closed(1, 3), interval.Open(2, 4)))
	require.Equal(t, interval.New(endpoint.LeftOpen(2), endpoint.Closed(3)), interval.Intersect(interval.Closed(1, 3), interval.Open(2, 4)))

	require.Equal(t, interval.ClosedOpen(1, 2), interval.Intersect(interval.AtLeast(1), interval.LessThan(2)))
	require.Equal(t, interval.Singleton(2), interval.Intersect(interval.AtMost(2), interval.AtLeast(2)))

	disjoint := interval.Intersect(interval.LessThan(2), interval.AtLeast(2))
	empty, ok := disjoint.IsEmpty()
	require.True(t, ok)
	require.True(t, empty)
	require.Equal(t, interval.ClosedOpen(2, 2), disjoint)
}

func TestIntersect_Properties(t *testing.T) {
	for _, a := range sampleIntervals() {
		require.Equal(t, a, interval.Intersect(a, a), "idempotence of %s", a)
		require.Equal(t, a, interval.Intersect(a, interval.All[int]()), "%s with universe", a)

		empty, ok := interval.Intersect(a, interval.Empty[int]()).IsEmpty()
		require.True(t, ok)
		require.True(t, empty, "%s with empty", a)

		for _, b := range sampleIntervals() {
			ab := interval.Intersect(a, b)
			require.Equal(t, ab, interval.Intersect(b, a), "commutativity of %s and %s", a, b)
			require.True(t, ab.IsSubsetOf(a) || isEmpty(ab), "%s should be a subset of %s", ab, a)
			require.True(t, ab.IsSubsetOf(b) || isEmpty(ab), "%s should be a subset of %s", ab, b)

			for value := -1; value <= 6; value++ {
				require.Equal(t, a.Contains(value) && b.Contains(value), ab.Contains(value), "%d in %s and %s", value, a, b)
			}
		}
	}
}

func TestInterval_PartialIntersect(t *testing.T) {
	intersection, ok := interval.Closed(1.0, 3.0).PartialIntersect(interval.Open(2.0, 4.0))
	require.True(t, ok)
	require.Equal(t, interval.OpenClosed(2.0, 3.0), intersection)

	intersection, ok = interval.AtLeast(1.5).PartialIntersect(interval.All[float64]())
	require.True(t, ok)
	require.Equal(t, interval.AtLeast(1.5), intersection)

	_, ok = interval.Closed(math.NaN(), 3).PartialIntersect(interval.Open(2.0, 4.0))
	require.False(t, ok)

	intersection, ok = interval.Closed(math.NaN(), 3).PartialIntersect(interval.All[float64]())
	require.True(t, ok)
	require.True(t, math.IsNaN(valueOf(intersection.Left())))
}

func isEmpty[T endpoint.TotallyOrdered](i interval.Interval[T]) bool {
	empty, _ := i.IsEmpty()

	return empty
}

func valueOf(e endpoint.Endpoint[float64]) float64 {
	value, _ := e.Value()

	return value
}
