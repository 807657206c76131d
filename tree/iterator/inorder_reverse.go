package iterator

import (
	"go.lepak.sg/ordmap/pair"
	"go.lepak.sg/ordmap/tree"
)

var _ Iterator[pair.Pair[int, any]] = (*InOrderReverse[int, any])(nil)

// InOrderReverse is an iterator object over a binary search tree.
// Iteration starts from the *largest* key and runs to
// the *smallest* key.
// The usage should be pretty familiar:
//
//	i := iterator.NewInOrderReverse(root, less)
//	for i.Next() {
//		p := i.Item()
//		... do stuff with p ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[K, V any] struct {
	root, at *tree.Node[K, V]
	less     tree.LessFunc[K]
	started  bool
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root, which must be ordered by less.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[K, V any](
	root *tree.Node[K, V], less tree.LessFunc[K]) *InOrderReverse[K, V] {
	return &InOrderReverse[K, V]{
		root: root,
		less: less,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[K, V]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.at = tree.Last(i.root)
		return i.at != nil
	}

	if i.at == nil {
		return false
	}

	i.at = tree.Predecessor(i.root, i.less, i.at)
	return i.at != nil
}

// Item returns the current key and value of the iterator.
func (i *InOrderReverse[K, V]) Item() pair.Pair[K, V] {
	return pair.Of(i.at.Key, i.at.Value)
}
