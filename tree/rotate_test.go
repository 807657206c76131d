package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCompleteTree_2Tall() *Node[int, struct{}] {
	return &Node[int, struct{}]{
		Left: &Node[int, struct{}]{
			Left: &Node[int, struct{}]{
				Key: 1,
			},
			Key: 2,
			Right: &Node[int, struct{}]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &Node[int, struct{}]{
			Left: &Node[int, struct{}]{
				Key: 5,
			},
			Key: 6,
			Right: &Node[int, struct{}]{
				Key: 7,
			},
		},
	}
}

func inorder(n *Node[int, struct{}], out []int) []int {
	if n == nil {
		return out
	}
	out = inorder(n.Left, out)
	out = append(out, n.Key)
	return inorder(n.Right, out)
}

func TestNode_RotateLeft(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should6 := tr.RotateLeft()

	assert.Equal(t, 6, should6.Key)
	assert.Equal(t, 4, should6.Left.Key)
	assert.Equal(t, 7, should6.Right.Key)
	assert.Equal(t, 2, should6.Left.Left.Key)
	assert.Equal(t, 5, should6.Left.Right.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, inorder(should6, nil))
}

func TestNode_RotateRight(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should2 := tr.RotateRight()

	assert.Equal(t, 2, should2.Key)
	assert.Equal(t, 1, should2.Left.Key)
	assert.Equal(t, 4, should2.Right.Key)
	assert.Equal(t, 3, should2.Right.Left.Key)
	assert.Equal(t, 6, should2.Right.Right.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, inorder(should2, nil))
}

func TestNode_RotateNilMiddle(t *testing.T) {
	n := NodeOf(1, struct{}{})
	n.Right = NodeOf(2, struct{}{})

	p := n.RotateLeft()
	assert.Equal(t, 2, p.Key)
	assert.Nil(t, p.Right)
	assert.Equal(t, 1, p.Left.Key)
	assert.Nil(t, p.Left.Right)

	l := p.RotateRight()
	assert.Equal(t, 1, l.Key)
	assert.Equal(t, 2, l.Right.Key)
	assert.Nil(t, l.Left)
}

func TestNode_RotatePanics(t *testing.T) {
	var nilNode *Node[int, struct{}]
	assert.Panics(t, func() { nilNode.RotateLeft() })
	assert.Panics(t, func() { nilNode.RotateRight() })

	leaf := NodeOf(1, struct{}{})
	assert.Panics(t, func() { leaf.RotateLeft() })
	assert.Panics(t, func() { leaf.RotateRight() })
}

func TestCmp(t *testing.T) {
	less := LessFunc[int](Ordered[int])
	assert.Equal(t, Less, Cmp(less, 1, 2))
	assert.Equal(t, Greater, Cmp(less, 2, 1))
	assert.Equal(t, Equal, Cmp(less, 2, 2))

	// equivalence is decided by less alone
	mod10 := func(a, b int) bool { return a%10 < b%10 }
	assert.Equal(t, Equal, Cmp[int](mod10, 3, 13))
	assert.Equal(t, Compare(1, 2), Cmp(less, 1, 2))
}

func TestFirstLast(t *testing.T) {
	tr := newCompleteTree_2Tall()
	assert.Equal(t, 1, First(tr).Key)
	assert.Equal(t, 7, Last(tr).Key)
	assert.Nil(t, First[int, struct{}](nil))
	assert.Nil(t, Last[int, struct{}](nil))
	assert.Equal(t, 0, LevelOf[int, struct{}](nil))
	assert.Equal(t, 1, LevelOf(NodeOf(1, 1)))
}
