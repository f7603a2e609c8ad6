package thresholdmap

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/interval"
	"github.com/iotaledger/hive.go/interval/endpoint"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

func lowerThresholdMap() *ThresholdMap[int, string] {
	thresholdMap := New[int, string](LowerThresholdMode)
	thresholdMap.Set(endpoint.Closed(0), "a")
	thresholdMap.Set(endpoint.LeftOpen(10), "b")
	thresholdMap.Set(endpoint.RightOpen(20), "c")

	return thresholdMap
}

func upperThresholdMap() *ThresholdMap[int, string] {
	thresholdMap := New[int, string](UpperThresholdMode)
	thresholdMap.Set(endpoint.Closed(0), "a")
	thresholdMap.Set(endpoint.RightOpen(10), "b")
	thresholdMap.Set(endpoint.LeftOpen(20), "c")

	return thresholdMap
}

func TestThresholdMap_LowerThresholdMode(t *testing.T) {
	thresholdMap := lowerThresholdMap()
	require.Equal(t, LowerThresholdMode, thresholdMap.Mode())

	for key, expected := range map[int]string{0: "a", 9: "a", 10: "a", 11: "b", 19: "b", 20: "c", 1000: "c"} {
		value, exists := thresholdMap.Get(key)
		require.True(t, exists, "key %d", key)
		require.Equal(t, expected, value, "key %d", key)
	}

	_, exists := thresholdMap.Get(-1)
	require.False(t, exists)
	require.Nil(t, thresholdMap.GetElement(-1))
	require.Equal(t, endpoint.LeftOpen(10), thresholdMap.GetElement(15).Threshold())
}

func TestThresholdMap_UpperThresholdMode(t *testing.T) {
	thresholdMap := upperThresholdMap()
	require.Equal(t, UpperThresholdMode, thresholdMap.Mode())

	for key, expected := range map[int]string{-100: "a", 0: "a", 1: "b", 9: "b", 10: "c", 20: "c"} {
		value, exists := thresholdMap.Get(key)
		require.True(t, exists, "key %d", key)
		require.Equal(t, expected, value, "key %d", key)
	}

	_, exists := thresholdMap.Get(21)
	require.False(t, exists)
}

func TestThresholdMap_Covering(t *testing.T) {
	lower := lowerThresholdMap()
	for key, expected := range map[int]string{5: "[0, 10]", 15: "(10, 20)", 25: "[20, +inf)"} {
		keys, _, exists := lower.Covering(key)
		require.True(t, exists)
		require.Equal(t, expected, keys.String(), "key %d", key)
	}

	keys, _, exists := lower.Covering(-5)
	require.False(t, exists)
	require.Equal(t, interval.Empty[int](), keys)

	upper := upperThresholdMap()
	for key, expected := range map[int]string{-3: "(-inf, 0]", 5: "(0, 10)", 10: "[10, 20]"} {
		keys, _, exists := upper.Covering(key)
		require.True(t, exists)
		require.Equal(t, expected, keys.String(), "key %d", key)
	}
}

// TestThresholdMap_CoveringMatchesGet tests that the covered Interval contains exactly the keys that map to the same
// threshold.
func TestThresholdMap_CoveringMatchesGet(t *testing.T) {
	for _, thresholdMap := range []*ThresholdMap[int, string]{lowerThresholdMap(), upperThresholdMap()} {
		for key := -5; key <= 25; key++ {
			keys, value, exists := thresholdMap.Covering(key)
			if !exists {
				continue
			}

			require.True(t, keys.Contains(key))
			for other := -5; other <= 25; other++ {
				otherValue, otherExists := thresholdMap.Get(other)
				require.Equal(t, otherExists && otherValue == value, keys.Contains(other), "keys %s and key %d", keys, other)
			}
		}
	}
}

func TestThresholdMap_FloorCeiling(t *testing.T) {
	thresholdMap := lowerThresholdMap()

	floor, value, exists := thresholdMap.Floor(10)
	require.True(t, exists)
	require.Equal(t, endpoint.Closed(0), floor)
	require.Equal(t, "a", value)

	ceiling, value, exists := thresholdMap.Ceiling(10)
	require.True(t, exists)
	require.Equal(t, endpoint.LeftOpen(10), ceiling)
	require.Equal(t, "b", value)

	_, _, exists = thresholdMap.Ceiling(21)
	require.False(t, exists)
	_, _, exists = thresholdMap.Floor(-1)
	require.False(t, exists)
}

func TestThresholdMap_Elements(t *testing.T) {
	thresholdMap := lowerThresholdMap()
	require.Equal(t, 3, thresholdMap.Size())
	require.False(t, thresholdMap.Empty())
	require.Equal(t, []endpoint.Endpoint[int]{endpoint.Closed(0), endpoint.LeftOpen(10), endpoint.RightOpen(20)}, thresholdMap.Thresholds())
	require.Equal(t, []string{"a", "b", "c"}, thresholdMap.Values())
	require.Equal(t, endpoint.Closed(0), thresholdMap.MinElement().Threshold())
	require.Equal(t, "c", thresholdMap.MaxElement().Value())

	thresholdMap.Set(endpoint.Closed(10), "between")
	require.Equal(t, []endpoint.Endpoint[int]{endpoint.Closed(0), endpoint.Closed(10), endpoint.LeftOpen(10), endpoint.RightOpen(20)}, thresholdMap.Thresholds())
	value, _ := thresholdMap.Get(10)
	require.Equal(t, "between", value)

	element, deleted := thresholdMap.Delete(endpoint.Closed(10))
	require.True(t, deleted)
	require.Equal(t, "between", element.Value())
	_, deleted = thresholdMap.Delete(endpoint.Closed(10))
	require.False(t, deleted)

	thresholdMap.DeleteElement(thresholdMap.MaxElement())
	thresholdMap.DeleteElement(nil)
	require.Equal(t, []string{"a", "b"}, thresholdMap.Values())

	thresholdMap.Clear()
	require.True(t, thresholdMap.Empty())
	require.Nil(t, thresholdMap.MinElement())
}

func TestThresholdMap_Iteration(t *testing.T) {
	thresholdMap := lowerThresholdMap()

	var visited []string
	thresholdMap.ForEach(func(element *Element[int, string]) bool {
		visited = append(visited, element.Value())

		return element.Threshold() != endpoint.LeftOpen(10)
	})
	require.Equal(t, []string{"a", "b"}, visited)

	iterator := thresholdMap.Iterator()
	visited = nil
	for iterator.Next() {
		visited = append(visited, iterator.Element().Value())
	}
	require.Equal(t, []string{"a", "b", "c"}, visited)

	require.True(t, iterator.Prev())
	require.Equal(t, "c", iterator.Element().Value())

	iterator.Reset()
	require.True(t, iterator.Next())
	require.Equal(t, endpoint.Closed(0), iterator.Element().Threshold())
}

func TestThresholdMap_InitTwice(t *testing.T) {
	require.Panics(t, func() {
		New[int, string](LowerThresholdMode).Init(UpperThresholdMode)
	})
}

func TestThresholdMap_Serix(t *testing.T) {
	thresholdMap := New[int64, uint64](UpperThresholdMode)
	thresholdMap.Set(endpoint.RightOpen[int64](-5), 1)
	thresholdMap.Set(endpoint.Closed[int64](7), 2)
	thresholdMap.Set(endpoint.PosInf[int64](), 3)

	encoded, err := serix.DefaultAPI.Encode(context.Background(), thresholdMap)
	require.NoError(t, err)

	decoded := new(ThresholdMap[int64, uint64])
	bytesRead, err := serix.DefaultAPI.Decode(context.Background(), encoded, decoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), bytesRead)

	require.Equal(t, UpperThresholdMode, decoded.Mode())
	require.Equal(t, thresholdMap.Thresholds(), decoded.Thresholds())
	require.Equal(t, thresholdMap.Values(), decoded.Values())

	value, exists := decoded.Get(100)
	require.True(t, exists)
	require.Equal(t, uint64(3), value)
}

func TestThresholdMap_Concurrency(t *testing.T) {
	thresholdMap := New[int, int](LowerThresholdMode)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			thresholdMap.Set(endpoint.Closed(i*10), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			thresholdMap.Get(i * 10)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		value, exists := thresholdMap.Get(i*10 + 5)
		require.True(t, exists)
		require.Equal(t, i, value)
	}
}

func TestThresholdMap_DecodeReplacesContent(t *testing.T) {
	source := New[int64, uint64](UpperThresholdMode)
	source.Set(endpoint.Closed[int64](3), 30)
	source.Set(endpoint.LeftOpen[int64](8), 80)
	encoded, err := source.Encode()
	require.NoError(t, err)

	target := New[int64, uint64](LowerThresholdMode)
	target.Set(endpoint.Closed[int64](1), 10)

	_, err = target.Decode(encoded[:len(encoded)-1])
	require.Error(t, err)
	require.Equal(t, LowerThresholdMode, target.Mode())
	require.Equal(t, []endpoint.Endpoint[int64]{endpoint.Closed[int64](1)}, target.Thresholds())
	require.Equal(t, []uint64{10}, target.Values())

	bytesRead, err := target.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), bytesRead)
	require.Equal(t, UpperThresholdMode, target.Mode())
	require.Equal(t, source.Thresholds(), target.Thresholds())
	require.Equal(t, source.Values(), target.Values())
}
