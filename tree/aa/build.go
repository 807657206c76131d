package aa

import (
	"math/rand"

	"go.lepak.sg/ordmap/tree"
)

// BuildRandom builds a tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order;
// each value is its key's position in that order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int, int] {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	tr := New[int, int](tree.Ordered[int])
	for i, k := range keys {
		tr.Insert(k, i)
	}

	return tr
}

// RemoveRandom removes up to num random keys in [0, keyRange)
// from tr and returns the keys that were actually removed,
// in removal order.
func RemoveRandom(tr *Tree[int, int], num, keyRange int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	var removed []int
	for _, k := range rd.Perm(keyRange) {
		if len(removed) == num {
			break
		}
		if tr.Remove(k) {
			removed = append(removed, k)
		}
	}

	return removed
}
