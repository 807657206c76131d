package iterator

import (
	"go.lepak.sg/ordmap/pair"
	"go.lepak.sg/ordmap/tree"
)

var _ Iterator[pair.Pair[int, any]] = (*InOrder[int, any])(nil)

// InOrder is an iterator object over a binary search tree.
// The nodes have no parent pointers, so whenever the current node
// has no right subtree the next one is found by walking down from
// the root again, which is why the tree's ordering is needed.
// The usage should be pretty familiar:
//
//	i := iterator.NewInOrder(root, less)
//	for i.Next() {
//		p := i.Item()
//		... do stuff with p ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[K, V any] struct {
	root, at *tree.Node[K, V]
	less     tree.LessFunc[K]
	started  bool
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root,
// which must be ordered by less.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[K, V any](root *tree.Node[K, V], less tree.LessFunc[K]) *InOrder[K, V] {
	return &InOrder[K, V]{
		root: root,
		less: less,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
// Once Next has returned false, it keeps returning false.
func (i *InOrder[K, V]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.at = tree.First(i.root)
		return i.at != nil
	}

	if i.at == nil {
		return false
	}

	i.at = tree.Successor(i.root, i.less, i.at)
	return i.at != nil
}

// Item returns the current key and value of the iterator.
func (i *InOrder[K, V]) Item() pair.Pair[K, V] {
	return pair.Of(i.at.Key, i.at.Value)
}
