package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a storage cell of a level-balanced binary search tree.
// Key must never be changed while the node is linked into a tree,
// since that would silently break the ordering of the whole tree.
// Value may be changed freely.
type Node[K, V any] struct {
	Key         K
	Value       V
	Left, Right *Node[K, V]
	// Level is 1 for leaves. A nil child counts as level 0.
	Level int
}

// NodeOf returns a new leaf node holding k and v.
func NodeOf[K, V any](k K, v V) *Node[K, V] {
	return &Node[K, V]{
		Key:   k,
		Value: v,
		Level: 1,
	}
}

// LevelOf returns n.Level, or 0 if n is nil.
func LevelOf[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.Level
}

// First returns the leftmost node of the subtree rooted at n.
func First[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Last returns the rightmost node of the subtree rooted at n.
func Last[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// LessFunc is a strict weak ordering: a and b are equivalent
// when neither LessFunc(a, b) nor LessFunc(b, a) holds.
// Trees never compare keys with anything else, not even ==.
type LessFunc[K any] func(a, b K) bool

// Ordered is the LessFunc for the natural ordering of K.
func Ordered[K constraints.Ordered](a, b K) bool {
	return a < b
}

// Cmp classifies a against b using less.
func Cmp[K any](less LessFunc[K], a, b K) Order {
	if less(a, b) {
		return Less
	} else if less(b, a) {
		return Greater
	} else {
		return Equal
	}
}
