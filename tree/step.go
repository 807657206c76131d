package tree

// Successor returns the node following n in the tree rooted at root,
// or nil if n holds the largest key.
// If n has a right subtree, that is the leftmost node there. Otherwise,
// walk down from root towards n.Key; the last node where the walk turned
// left is the answer. No parent pointers are needed.
func Successor[K, V any](root *Node[K, V], less LessFunc[K], n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}

	if n.Right != nil {
		return First(n.Right)
	}

	var succ *Node[K, V]
	for at := root; at != nil; {
		if less(n.Key, at.Key) {
			succ, at = at, at.Left
		} else {
			at = at.Right
		}
	}

	return succ
}

// Predecessor is Successor with left and right flipped.
func Predecessor[K, V any](root *Node[K, V], less LessFunc[K], n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}

	if n.Left != nil {
		return Last(n.Left)
	}

	var pred *Node[K, V]
	for at := root; at != nil; {
		if less(at.Key, n.Key) {
			pred, at = at, at.Right
		} else {
			at = at.Left
		}
	}

	return pred
}
