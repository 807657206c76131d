// Package aa implements an AA-tree: a binary search tree kept balanced
// by an integer level on each node instead of a red/black colour.
//
// Invariants, which Check verifies:
//   - At any node N, every key in N.Left is less than N.Key and every
//     key in N.Right is greater than N.Key, under the tree's LessFunc
//   - No two keys in the tree are equivalent
//   - Leaves have level 1
//   - A left child has a level strictly less than its parent
//   - A right child has a level less than or equal to its parent
//   - A right grandchild has a level strictly less than its grandparent
//
// Nodes carry no parent pointer. Successor and Predecessor walk down
// from the root again when a node has no suitable child.
package aa

import (
	"go.lepak.sg/ordmap/tree"
)

// Tree is an AA-tree. It is not safe for concurrent use.
//
// Tree should not be passed around as a value; use New and keep the
// pointer.
type Tree[K, V any] struct {
	root  *tree.Node[K, V]
	count int
	less  tree.LessFunc[K]
}

// New returns an empty tree ordered by less.
func New[K, V any](less tree.LessFunc[K]) *Tree[K, V] {
	if less == nil {
		panic("nil LessFunc")
	}

	return &Tree[K, V]{
		less: less,
	}
}

// Len returns the number of nodes in the tree. This is a constant-time operation.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Root returns the root node, or nil if the tree is empty.
// Callers must not relink or rekey the nodes they reach from it.
func (t *Tree[K, V]) Root() *tree.Node[K, V] {
	return t.root
}

// Less returns the ordering the tree was created with.
func (t *Tree[K, V]) Less() tree.LessFunc[K] {
	return t.less
}

// Find returns the node whose key is equivalent to k, or nil.
func (t *Tree[K, V]) Find(k K) *tree.Node[K, V] {
	n := t.root

	for n != nil {
		switch tree.Cmp(t.less, k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Insert inserts (k, v) into the tree and returns the node holding k.
// If an equivalent key is already in the tree, nothing changes:
// the existing node is returned with inserted set to false.
func (t *Tree[K, V]) Insert(k K, v V) (n *tree.Node[K, V], inserted bool) {
	t.root, n, inserted = t.insert(t.root, k, v)
	if inserted {
		t.count++
	}
	return
}

func (t *Tree[K, V]) insert(at *tree.Node[K, V], k K, v V) (
	root, n *tree.Node[K, V], inserted bool) {
	if at == nil {
		n = tree.NodeOf(k, v)
		return n, n, true
	}

	switch tree.Cmp(t.less, k, at.Key) {
	case tree.Less:
		at.Left, n, inserted = t.insert(at.Left, k, v)
	case tree.Greater:
		at.Right, n, inserted = t.insert(at.Right, k, v)
	case tree.Equal:
		return at, at, false
	default:
		panic("unreachable")
	}

	return split(skew(at)), n, inserted
}

// Remove removes the key equivalent to k from the tree.
// It returns false if there was no such key.
//
// When the node holding k has two children, its key and value are
// overwritten by those of its in-order successor, and the successor's
// node is the one unlinked. So a node pointer may survive Remove
// while now holding a different key.
func (t *Tree[K, V]) Remove(k K) bool {
	var removed bool
	t.root, removed = t.remove(t.root, k)
	if removed {
		t.count--
	}
	return removed
}

// RemoveNode removes n from the tree, if n is still linked into it.
// It returns false, leaving the tree untouched, if n is nil or
// the tree holds n's key in some other node (or not at all).
func (t *Tree[K, V]) RemoveNode(n *tree.Node[K, V]) bool {
	if n == nil || t.Find(n.Key) != n {
		return false
	}
	return t.Remove(n.Key)
}

func (t *Tree[K, V]) remove(at *tree.Node[K, V], k K) (*tree.Node[K, V], bool) {
	if at == nil {
		return nil, false
	}

	var removed bool

	switch tree.Cmp(t.less, k, at.Key) {
	case tree.Less:
		at.Left, removed = t.remove(at.Left, k)
	case tree.Greater:
		at.Right, removed = t.remove(at.Right, k)
	case tree.Equal:
		if at.Left != nil && at.Right != nil {
			succ := tree.First(at.Right)
			at.Key, at.Value = succ.Key, succ.Value
			at.Right, removed = t.remove(at.Right, succ.Key)
		} else {
			child := at.Left
			if child == nil {
				child = at.Right
			}
			// unlink so that stale references can't reach into the tree
			at.Left, at.Right = nil, nil
			return child, true
		}
	default:
		panic("unreachable")
	}

	if !removed {
		return at, false
	}

	return rebalance(at), true
}
