package aa

import (
	"go.lepak.sg/ordmap/tree"
)

// skew removes a left horizontal link:
//
//	     d,2          b,2
//	    /   \        /   \
//	  b,2   e,1 -> a,1   d,2
//	 /   \              /   \
//	a,1  c,1          c,1   e,1
//
// Levels are unchanged.
func skew[K, V any](n *tree.Node[K, V]) *tree.Node[K, V] {
	if n == nil || n.Left == nil || n.Left.Level != n.Level {
		return n
	}
	return n.RotateRight()
}

// split removes two consecutive right horizontal links
// by pulling the middle node up one level:
//
//	  a,1                b,2
//	 /   \              /   \
//	x,0  b,1    ->    a,1   c,1
//	    /   \        /   \
//	  y,0   c,1    x,0   y,0
//
// This is the only place a level ever increases.
func split[K, V any](n *tree.Node[K, V]) *tree.Node[K, V] {
	if n == nil || n.Right == nil || n.Right.Right == nil ||
		n.Right.Right.Level != n.Level {
		return n
	}
	r := n.RotateLeft()
	r.Level++
	return r
}

// rebalance restores the invariants at n after one of its subtrees
// lost a node. All the steps must run even when most are no-ops,
// or a violation two levels down goes unnoticed.
func rebalance[K, V any](n *tree.Node[K, V]) *tree.Node[K, V] {
	lvl := tree.LevelOf(n.Left)
	if r := tree.LevelOf(n.Right); r < lvl {
		lvl = r
	}
	n.Level = lvl + 1

	if n.Right != nil && n.Right.Level > n.Level {
		n.Right.Level = n.Level
	}

	n = skew(n)
	if n.Right != nil {
		n.Right = skew(n.Right)
		if n.Right.Right != nil {
			n.Right.Right = skew(n.Right.Right)
		}
	}

	n = split(n)
	if n.Right != nil {
		n.Right = split(n.Right)
	}

	return n
}
