package thresholdmap

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/hive.go/interval/endpoint"
)

// Element is a wrapper for the Node used in the underlying red-black RedBlackTree.
type Element[K endpoint.TotallyOrdered, V any] struct {
	*redblacktree.Node
}

// Threshold returns the threshold of the Element.
func (e *Element[K, V]) Threshold() endpoint.Endpoint[K] {
	return e.Node.Key.(endpoint.Endpoint[K])
}

// Value returns the Value of the Element.
func (e *Element[K, V]) Value() V {
	return e.Node.Value.(V)
}

// wrapNode is an internal utility function that wraps the Node of the underlying RedBlackTree with a map Element.
func wrapNode[K endpoint.TotallyOrdered, V any](node *redblacktree.Node) (element *Element[K, V]) {
	if node == nil {
		return
	}

	return &Element[K, V]{node}
}
