package aa

import (
	"errors"
	"fmt"

	"go.lepak.sg/ordmap/tree"
)

// ErrInvariant is wrapped by every error returned from Check.
var ErrInvariant = errors.New("aa: invariant broken")

// Check walks the whole tree and returns an error describing the
// first broken invariant it finds, or nil if the tree is sound.
// It is meant for tests and debugging: it visits every node.
func (t *Tree[K, V]) Check() error {
	n, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}

	if n != t.count {
		return fmt.Errorf("%w: count is %d but %d nodes are reachable",
			ErrInvariant, t.count, n)
	}

	return nil
}

// check verifies the subtree at n, whose keys must lie strictly
// between lo and hi where those are non-nil. It returns the number
// of nodes in the subtree.
func (t *Tree[K, V]) check(n, lo, hi *tree.Node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}

	if lo != nil && !t.less(lo.Key, n.Key) {
		return 0, fmt.Errorf("%w: key %v is not greater than %v",
			ErrInvariant, n.Key, lo.Key)
	}
	if hi != nil && !t.less(n.Key, hi.Key) {
		return 0, fmt.Errorf("%w: key %v is not less than %v",
			ErrInvariant, n.Key, hi.Key)
	}

	switch {
	case n.Left == nil && n.Right == nil && n.Level != 1:
		return 0, fmt.Errorf("%w: leaf %v has level %d",
			ErrInvariant, n.Key, n.Level)
	case n.Left != nil && n.Left.Level >= n.Level:
		return 0, fmt.Errorf("%w: left child %v of %v has level %d >= %d",
			ErrInvariant, n.Left.Key, n.Key, n.Left.Level, n.Level)
	case n.Right != nil && n.Right.Level > n.Level:
		return 0, fmt.Errorf("%w: right child %v of %v has level %d > %d",
			ErrInvariant, n.Right.Key, n.Key, n.Right.Level, n.Level)
	case n.Right != nil && n.Right.Right != nil && n.Right.Right.Level >= n.Level:
		return 0, fmt.Errorf("%w: right grandchild %v of %v has level %d >= %d",
			ErrInvariant, n.Right.Right.Key, n.Key, n.Right.Right.Level, n.Level)
	}

	l, err := t.check(n.Left, lo, n)
	if err != nil {
		return 0, err
	}

	r, err := t.check(n.Right, n, hi)
	if err != nil {
		return 0, err
	}

	return l + r + 1, nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
// The root level bounds it: Height() <= 2*Level().
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K, V any](n *tree.Node[K, V]) int {
	if n == nil {
		return 0
	}

	l, r := height(n.Left), height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Level returns the level of the root, or 0 if the tree is empty.
func (t *Tree[K, V]) Level() int {
	return tree.LevelOf(t.root)
}
