package omap

import (
	"go.lepak.sg/ordmap/pair"
	"go.lepak.sg/ordmap/tree/iterator"
)

// ForEach calls f for every entry in ascending key order.
// If f returns false, the iteration is stopped early.
//
// The result of modifying the map while iterating over it is undefined.
func (m *Map[K, V]) ForEach(f func(k K, v V) bool) {
	i := m.Ascend()
	for i.Next() {
		k, v := i.Item().Unpack()
		if !f(k, v) {
			return
		}
	}
}

// Ascend returns an iterator object that yields entries in ascending
// key order. See iterator.Iterator for the usual idiom.
func (m *Map[K, V]) Ascend() *iterator.InOrder[K, V] {
	return iterator.NewInOrder(m.t.Root(), m.t.Less())
}

// Descend returns an iterator object that yields entries in descending
// key order.
func (m *Map[K, V]) Descend() *iterator.InOrderReverse[K, V] {
	return iterator.NewInOrderReverse(m.t.Root(), m.t.Less())
}

// Entries returns a snapshot of every entry in ascending key order.
func (m *Map[K, V]) Entries() []pair.Pair[K, V] {
	out := make([]pair.Pair[K, V], 0, m.Len())

	// an AA-tree is at most twice as tall as its root level
	i := iterator.NewInOrderStack(m.t.Root(), 2*m.t.Level())
	for i.Next() {
		out = append(out, i.Item())
	}

	return out
}

// Keys returns every key in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	m.ForEach(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}
