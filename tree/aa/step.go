package aa

import (
	"go.lepak.sg/ordmap/tree"
)

// First returns the node with the smallest key, or nil if the tree is empty.
func (t *Tree[K, V]) First() *tree.Node[K, V] {
	return tree.First(t.root)
}

// Last returns the node with the largest key, or nil if the tree is empty.
func (t *Tree[K, V]) Last() *tree.Node[K, V] {
	return tree.Last(t.root)
}

// Successor returns the node following n in key order,
// or nil if n holds the largest key.
func (t *Tree[K, V]) Successor(n *tree.Node[K, V]) *tree.Node[K, V] {
	return tree.Successor(t.root, t.less, n)
}

// Predecessor returns the node preceding n in key order,
// or nil if n holds the smallest key.
func (t *Tree[K, V]) Predecessor(n *tree.Node[K, V]) *tree.Node[K, V] {
	return tree.Predecessor(t.root, t.less, n)
}
