package iterator

import (
	"go.lepak.sg/ordmap/pair"
	"go.lepak.sg/ordmap/tree"
)

var _ Iterator[pair.Pair[int, any]] = (*InOrderStack[int, any])(nil)

// InOrderStack is an iterator object over a binary tree.
// It is functionally equivalent to InOrder, but instead of
// walking down from the root again it keeps an internal stack
// of the nodes still to be visited, and so needs no ordering.
// It is the faster choice when the whole tree will be visited.
type InOrderStack[K, V any] struct {
	root  *tree.Node[K, V]
	stack []*tree.Node[K, V]
	done  bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n).
// The next call to Next continues from (2).
// When we pop off a node from i.stack, we'll know
// we should be in the second half of visit, because we
// already did the first half before pushing it.
// We can resume from (2), popping off the node and
// pushing on the left spine of its right child.

// NewInOrderStack creates a new in-order iterator.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewInOrderStack[K, V any](
	root *tree.Node[K, V], heightHint int) *InOrderStack[K, V] {
	return &InOrderStack[K, V]{
		root:  root,
		stack: make([]*tree.Node[K, V], 0, heightHint+1),
	}
}

func (i *InOrderStack[K, V]) push(n *tree.Node[K, V]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *InOrderStack[K, V]) Next() bool {
	if i.done || i.root == nil {
		return false
	}

	if len(i.stack) == 0 {
		i.push(i.root)
		return true
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.push(pop.Right)

	if len(i.stack) == 0 {
		i.done = true
		return false
	}

	return true
}

// Item returns the current key and value of the iterator.
func (i *InOrderStack[K, V]) Item() pair.Pair[K, V] {
	n := i.stack[len(i.stack)-1]
	return pair.Of(n.Key, n.Value)
}
