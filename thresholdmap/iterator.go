package thresholdmap

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/hive.go/interval/endpoint"
)

// Iterator is an object that allows to iterate over the ThresholdMap by providing methods to walk through the map in a
// deterministic order. It starts in front of the first Element, so Next has to be called before Element.
//
// The Iterator reads the map without holding its lock; it must not be used while the map is modified.
type Iterator[K endpoint.TotallyOrdered, V any] struct {
	iterator redblacktree.Iterator
}

// newIterator is the constructor of the Iterator.
func newIterator[K endpoint.TotallyOrdered, V any](iterator redblacktree.Iterator) *Iterator[K, V] {
	return &Iterator[K, V]{
		iterator: iterator,
	}
}

// Next moves the Iterator to the next Element and returns false if there is none.
func (i *Iterator[K, V]) Next() bool {
	return i.iterator.Next()
}

// Prev moves the Iterator to the previous Element and returns false if there is none.
func (i *Iterator[K, V]) Prev() bool {
	return i.iterator.Prev()
}

// Element returns the Element that the Iterator currently points to.
func (i *Iterator[K, V]) Element() *Element[K, V] {
	return wrapNode[K, V](&redblacktree.Node{Key: i.iterator.Key(), Value: i.iterator.Value()})
}

// Reset moves the Iterator back in front of the first Element.
func (i *Iterator[K, V]) Reset() {
	i.iterator.Begin()
}
