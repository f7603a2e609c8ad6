package thresholdmap

import (
	"context"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"

	"github.com/iotaledger/hive.go/interval"
	"github.com/iotaledger/hive.go/interval/endpoint"
)

// region Mode /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Mode encodes different modes of function for the ThresholdMap that specifies if the defined thresholds act as upper
// or lower thresholds.
type Mode bool

const (
	// LowerThresholdMode interprets the thresholds of the ThresholdMap as lower thresholds which means that querying the
	// map will return the value of the largest threshold that is <= than the queried key.
	LowerThresholdMode Mode = true

	// UpperThresholdMode interprets the thresholds of the ThresholdMap as upper thresholds which means that querying the
	// map will return the value of the smallest threshold that is >= than the queried key.
	UpperThresholdMode Mode = false
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ThresholdMap /////////////////////////////////////////////////////////////////////////////////////////////////

// ThresholdMap is a data structure that allows to map keys bigger or lower than a certain threshold to a given value.
//
// Thresholds are Endpoints, so a threshold decides on its own whether the key it was created for is covered
// (endpoint.Closed), only the keys after it (endpoint.LeftOpen) or only the keys before it (endpoint.RightOpen).
// Keys are looked up as closed Endpoints.
type ThresholdMap[K endpoint.TotallyOrdered, V any] struct {
	mode Mode
	tree *redblacktree.Tree

	sync.RWMutex
}

// New returns a ThresholdMap that operates in the given Mode.
func New[K endpoint.TotallyOrdered, V any](mode Mode) *ThresholdMap[K, V] {
	return new(ThresholdMap[K, V]).Init(mode)
}

// Init initializes the ThresholdMap with the given Mode.
func (t *ThresholdMap[K, V]) Init(mode Mode) *ThresholdMap[K, V] {
	t.Lock()
	defer t.Unlock()
	if t.tree != nil {
		panic("ThresholdMap has already been initialized before")
	}

	t.mode = mode
	t.tree = redblacktree.NewWith(endpoint.Comparator[K])

	return t
}

// Mode returns the mode of this ThresholdMap.
func (t *ThresholdMap[K, V]) Mode() Mode {
	t.RLock()
	defer t.RUnlock()

	return t.mode
}

// Set adds a new threshold that maps all keys >= or <= (depending on the Mode) the threshold to a certain value.
func (t *ThresholdMap[K, V]) Set(threshold endpoint.Endpoint[K], value V) {
	t.Lock()
	defer t.Unlock()
	t.tree.Put(threshold, value)
}

// Get returns the value of the next higher or lower existing threshold (depending on the mode) and a flag that
// indicates if there is a threshold that covers the given key.
func (t *ThresholdMap[K, V]) Get(key K) (value V, exists bool) {
	t.RLock()
	defer t.RUnlock()

	node, exists := t.covering(key)
	if exists {
		value = node.Value.(V)
	}

	return
}

// Covering returns the Interval of keys that share the threshold of the given key, together with the threshold's value
// and a flag that indicates if there is a threshold that covers the given key.
func (t *ThresholdMap[K, V]) Covering(key K) (keys interval.Interval[K], value V, exists bool) {
	t.RLock()
	defer t.RUnlock()

	node, exists := t.covering(key)
	if !exists {
		return interval.Empty[K](), value, false
	}

	threshold := node.Key.(endpoint.Endpoint[K])
	iterator := t.tree.IteratorAt(node)
	switch t.mode {
	case LowerThresholdMode:
		upperBound := endpoint.PosInf[K]()
		if iterator.Next() {
			upperBound = rightBoundBefore(iterator.Key().(endpoint.Endpoint[K]))
		}

		keys = interval.New(leftBoundFrom(threshold), upperBound)
	default:
		lowerBound := endpoint.NegInf[K]()
		if iterator.Prev() {
			lowerBound = leftBoundAfter(iterator.Key().(endpoint.Endpoint[K]))
		}

		keys = interval.New(lowerBound, rightBoundFrom(threshold))
	}

	return keys, node.Value.(V), true
}

// Floor returns the largest threshold that is <= the given key, its value and a boolean flag indicating if it exists.
func (t *ThresholdMap[K, V]) Floor(key K) (floorThreshold endpoint.Endpoint[K], floorValue V, exists bool) {
	t.RLock()
	defer t.RUnlock()
	if node, exists := t.tree.Floor(endpoint.Closed(key)); exists {
		return node.Key.(endpoint.Endpoint[K]), node.Value.(V), true
	}

	return floorThreshold, floorValue, false
}

// Ceiling returns the smallest threshold that is >= the given key, its value and a boolean flag indicating if it
// exists.
func (t *ThresholdMap[K, V]) Ceiling(key K) (ceilingThreshold endpoint.Endpoint[K], ceilingValue V, exists bool) {
	t.RLock()
	defer t.RUnlock()
	if node, exists := t.tree.Ceiling(endpoint.Closed(key)); exists {
		return node.Key.(endpoint.Endpoint[K]), node.Value.(V), true
	}

	return ceilingThreshold, ceilingValue, false
}

// Delete removes a threshold from the map.
func (t *ThresholdMap[K, V]) Delete(threshold endpoint.Endpoint[K]) (element *Element[K, V], success bool) {
	t.Lock()
	defer t.Unlock()
	node := t.lookup(threshold)
	if node == nil {
		return nil, false
	}

	// Remove may move the contents of other nodes into the removed one.
	element = wrapNode[K, V](&redblacktree.Node{Key: node.Key, Value: node.Value})
	t.tree.Remove(threshold)

	return element, true
}

// Thresholds returns a list of thresholds that have been set in the map.
func (t *ThresholdMap[K, V]) Thresholds() []endpoint.Endpoint[K] {
	t.RLock()
	defer t.RUnlock()

	return lo.Map(t.tree.Keys(), func(threshold interface{}) endpoint.Endpoint[K] {
		return threshold.(endpoint.Endpoint[K])
	})
}

// Values returns a list of values that are associated to the thresholds in the map.
func (t *ThresholdMap[K, V]) Values() []V {
	t.RLock()
	defer t.RUnlock()

	return lo.Map(t.tree.Values(), func(value interface{}) V {
		return value.(V)
	})
}

// GetElement returns the Element that is used to store the threshold covering the given key (or nil if none exists).
func (t *ThresholdMap[K, V]) GetElement(key K) *Element[K, V] {
	t.RLock()
	defer t.RUnlock()

	node, _ := t.covering(key)

	return wrapNode[K, V](node)
}

// MinElement returns the smallest threshold in the map (or nil if the map is empty).
func (t *ThresholdMap[K, V]) MinElement() *Element[K, V] {
	t.RLock()
	defer t.RUnlock()

	return wrapNode[K, V](t.tree.Left())
}

// MaxElement returns the largest threshold in the map (or nil if the map is empty).
func (t *ThresholdMap[K, V]) MaxElement() *Element[K, V] {
	t.RLock()
	defer t.RUnlock()

	return wrapNode[K, V](t.tree.Right())
}

// DeleteElement removes the given Element from the map.
func (t *ThresholdMap[K, V]) DeleteElement(element *Element[K, V]) {
	t.Lock()
	defer t.Unlock()
	if element == nil {
		return
	}

	t.tree.Remove(element.Node.Key)
}

// ForEach provides a callback based iterator that iterates through all Elements in the map.
func (t *ThresholdMap[K, V]) ForEach(iterator func(element *Element[K, V]) bool) {
	t.RLock()
	defer t.RUnlock()

	t.forEach(iterator)
}

// Iterator returns an Iterator that walks through the Elements of the map in ascending order of their thresholds.
func (t *ThresholdMap[K, V]) Iterator() *Iterator[K, V] {
	t.RLock()
	defer t.RUnlock()

	return newIterator[K, V](t.tree.Iterator())
}

// Size returns the amount of thresholds that are stored in the map.
func (t *ThresholdMap[K, V]) Size() int {
	t.RLock()
	defer t.RUnlock()

	return t.tree.Size()
}

// Empty returns true of the map has no thresholds.
func (t *ThresholdMap[K, V]) Empty() bool {
	t.RLock()
	defer t.RUnlock()

	return t.tree.Empty()
}

// Clear removes all Elements from the map.
func (t *ThresholdMap[K, V]) Clear() {
	t.Lock()
	defer t.Unlock()
	t.tree.Clear()
}

// Encode returns a serialized byte slice of the object.
func (t *ThresholdMap[K, V]) Encode() ([]byte, error) {
	t.RLock()
	defer t.RUnlock()

	seri := serializer.NewSerializer()

	seri.WriteBool(bool(t.mode), func(err error) error {
		return ierrors.Wrap(err, "failed to write mode")
	})

	seri.WriteNum(uint32(t.tree.Size()), func(err error) error {
		return ierrors.Wrap(err, "failed to write ThresholdMap size to serializer")
	})

	t.forEach(func(element *Element[K, V]) bool {
		seri.WriteBytes(element.Threshold().Bytes(), func(err error) error {
			return ierrors.Wrap(err, "failed to write ThresholdMap threshold to serializer")
		})

		valueBytes, err := serix.DefaultAPI.Encode(context.Background(), element.Value())
		if err != nil {
			seri.AbortIf(func(_ error) error {
				return ierrors.Wrap(err, "failed to serialize ThresholdMap value")
			})

			return false
		}
		seri.WriteBytes(valueBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write ThresholdMap value to serializer")
		})

		return true
	})

	return seri.Serialize()
}

// Decode deserializes bytes into a valid object. The decoded thresholds replace the current content of the map, which
// stays untouched if the bytes can not be decoded.
func (t *ThresholdMap[K, V]) Decode(b []byte) (bytesRead int, err error) {
	var mode Mode
	bytesRead, err = serix.DefaultAPI.Decode(context.Background(), b, &mode)
	if err != nil {
		return 0, ierrors.Wrap(err, "failed to decode mode")
	}

	var mapSize uint32
	bytesReadMapSize, err := serix.DefaultAPI.Decode(context.Background(), b[bytesRead:], &mapSize)
	if err != nil {
		return 0, ierrors.Wrap(err, "failed to decode ThresholdMap size")
	}
	bytesRead += bytesReadMapSize

	tree := redblacktree.NewWith(endpoint.Comparator[K])
	for i := uint32(0); i < mapSize; i++ {
		threshold, bytesReadThreshold, err := endpoint.FromBytes[K](b[bytesRead:])
		if err != nil {
			return 0, ierrors.Wrapf(err, "failed to decode threshold %d", i)
		}
		bytesRead += bytesReadThreshold

		var value V
		bytesReadValue, err := serix.DefaultAPI.Decode(context.Background(), b[bytesRead:], &value)
		if err != nil {
			return 0, ierrors.Wrapf(err, "failed to decode value %d", i)
		}
		bytesRead += bytesReadValue

		tree.Put(threshold, value)
	}

	t.Lock()
	defer t.Unlock()
	t.mode = mode
	t.tree = tree

	return bytesRead, nil
}

// covering returns the node of the threshold that covers the given key according to the Mode.
func (t *ThresholdMap[K, V]) covering(key K) (node *redblacktree.Node, exists bool) {
	switch t.mode {
	case UpperThresholdMode:
		return t.tree.Ceiling(endpoint.Closed(key))
	case LowerThresholdMode:
		return t.tree.Floor(endpoint.Closed(key))
	default:
		panic("unsupported mode")
	}
}

func (t *ThresholdMap[K, V]) forEach(iterator func(element *Element[K, V]) bool) {
	for it := t.tree.Iterator(); it.Next(); {
		if !iterator(wrapNode[K, V](&redblacktree.Node{Key: it.Key(), Value: it.Value()})) {
			break
		}
	}
}

func (t *ThresholdMap[K, V]) lookup(threshold endpoint.Endpoint[K]) *redblacktree.Node {
	node := t.tree.Root
	for node != nil {
		compare := t.tree.Comparator(threshold, node.Key)
		switch {
		case compare == 0:
			return node
		case compare < 0:
			node = node.Left
		case compare > 0:
			node = node.Right
		}
	}

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region bounds ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Keys are looked up as closed Endpoints, so the bounds below pick, for each threshold, the Endpoint that admits exactly
// the same closed keys but can be printed in interval notation.

// leftBoundFrom returns the left bound of the keys k with Closed(k) >= threshold.
func leftBoundFrom[K endpoint.TotallyOrdered](threshold endpoint.Endpoint[K]) endpoint.Endpoint[K] {
	if value, _ := threshold.Value(); threshold.Kind() == endpoint.KindRightOpen {
		return endpoint.Closed(value)
	}

	return threshold
}

// leftBoundAfter returns the left bound of the keys k with Closed(k) > threshold.
func leftBoundAfter[K endpoint.TotallyOrdered](threshold endpoint.Endpoint[K]) endpoint.Endpoint[K] {
	value, _ := threshold.Value()

	switch threshold.Kind() {
	case endpoint.KindClosed:
		return endpoint.LeftOpen(value)
	case endpoint.KindRightOpen:
		return endpoint.Closed(value)
	default:
		return threshold
	}
}

// rightBoundFrom returns the right bound of the keys k with Closed(k) <= threshold.
func rightBoundFrom[K endpoint.TotallyOrdered](threshold endpoint.Endpoint[K]) endpoint.Endpoint[K] {
	if value, _ := threshold.Value(); threshold.Kind() == endpoint.KindLeftOpen {
		return endpoint.Closed(value)
	}

	return threshold
}

// rightBoundBefore returns the right bound of the keys k with Closed(k) < threshold.
func rightBoundBefore[K endpoint.TotallyOrdered](threshold endpoint.Endpoint[K]) endpoint.Endpoint[K] {
	value, _ := threshold.Value()

	switch threshold.Kind() {
	case endpoint.KindClosed:
		return endpoint.RightOpen(value)
	case endpoint.KindLeftOpen:
		return endpoint.Closed(value)
	default:
		return threshold
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
