package aa

import (
	"go.lepak.sg/ordmap/tree"
)

// Copy returns a deep copy of the tree with the same shape and levels.
// No node is shared with t. Keys and values are copied by assignment,
// so pointer-typed keys or values still point to the same memory.
func (t *Tree[K, V]) Copy() *Tree[K, V] {
	return &Tree[K, V]{
		root:  copyNode(t.root),
		count: t.count,
		less:  t.less,
	}
}

// CopyFrom replaces the contents and ordering of t with a deep copy
// of other. The old nodes of t are released first.
// Copying a tree onto itself does nothing.
func (t *Tree[K, V]) CopyFrom(other *Tree[K, V]) {
	if t == other {
		return
	}

	t.Clear()
	t.root = copyNode(other.root)
	t.count = other.count
	t.less = other.less
}

// pre-order
func copyNode[K, V any](n *tree.Node[K, V]) *tree.Node[K, V] {
	if n == nil {
		return nil
	}

	c := &tree.Node[K, V]{
		Key:   n.Key,
		Value: n.Value,
		Level: n.Level,
	}
	c.Left = copyNode(n.Left)
	c.Right = copyNode(n.Right)

	return c
}

// Clear removes every node from the tree.
func (t *Tree[K, V]) Clear() {
	destroy(t.root)
	t.root = nil
	t.count = 0
}

// destroy unlinks every node, post-order, so that anything
// still holding one of them cannot walk back into the rest.
func destroy[K, V any](n *tree.Node[K, V]) {
	if n == nil {
		return
	}

	destroy(n.Left)
	destroy(n.Right)
	n.Left, n.Right = nil, nil
}
