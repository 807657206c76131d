package omap

import (
	"go.lepak.sg/ordmap/pair"
	"go.lepak.sg/ordmap/tree"
)

// Position is implemented by Iterator and ConstIterator,
// so that either can be compared with the other using Equal.
type Position[K, V any] interface {
	position() (*Map[K, V], *tree.Node[K, V])
}

// cursor holds what both iterator kinds share.
// A nil n is the End position of m.
type cursor[K, V any] struct {
	m *Map[K, V]
	n *tree.Node[K, V]
}

func (c cursor[K, V]) position() (*Map[K, V], *tree.Node[K, V]) {
	return c.m, c.n
}

// Equal reports whether both iterators are on the same entry,
// or both are End, of the same map.
func (c cursor[K, V]) Equal(other Position[K, V]) bool {
	if other == nil {
		return false
	}
	m, n := other.position()
	return c.m == m && c.n == n
}

// IsEnd reports whether the iterator is End.
func (c cursor[K, V]) IsEnd() bool {
	return c.n == nil
}

// Key returns the key of the current entry.
func (c cursor[K, V]) Key() (k K, err error) {
	if c.n == nil {
		err = ErrInvalidIterator
		return
	}
	return c.n.Key, nil
}

// Entry returns a copy of the current entry.
func (c cursor[K, V]) Entry() (p pair.Pair[K, V], err error) {
	if c.n == nil {
		err = ErrInvalidIterator
		return
	}
	return pair.Of(c.n.Key, c.n.Value), nil
}

// Next moves to the following entry, or to End after the last one.
// Calling Next on End returns ErrInvalidIterator.
func (c *cursor[K, V]) Next() error {
	if c.m == nil || c.n == nil {
		return ErrInvalidIterator
	}

	c.n = c.m.t.Successor(c.n)
	return nil
}

// Prev moves to the preceding entry; from End it moves to the last
// entry. Calling Prev on Begin returns ErrInvalidIterator, and so
// does calling it on End of an empty map.
func (c *cursor[K, V]) Prev() error {
	if c.m == nil {
		return ErrInvalidIterator
	}

	if c.n == nil {
		last := c.m.t.Last()
		if last == nil {
			return ErrInvalidIterator
		}
		c.n = last
		return nil
	}

	pred := c.m.t.Predecessor(c.n)
	if pred == nil {
		return ErrInvalidIterator
	}
	c.n = pred
	return nil
}

// Iterator is a position in a Map that allows changing the value
// (never the key) of the entry it is on.
// The zero Iterator belongs to no map and every operation on it fails.
type Iterator[K, V any] struct {
	cursor[K, V]
}

// Value returns a pointer to the value of the current entry.
func (it Iterator[K, V]) Value() (*V, error) {
	if it.n == nil {
		return nil, ErrInvalidIterator
	}
	return &it.n.Value, nil
}

// SetValue replaces the value of the current entry.
func (it Iterator[K, V]) SetValue(v V) error {
	if it.n == nil {
		return ErrInvalidIterator
	}
	it.n.Value = v
	return nil
}

// Const returns a ConstIterator at the same position.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{
		cursor: it.cursor,
	}
}

// ConstIterator is a read-only position in a Map.
type ConstIterator[K, V any] struct {
	cursor[K, V]
}

// Value returns a copy of the value of the current entry.
func (it ConstIterator[K, V]) Value() (v V, err error) {
	if it.n == nil {
		err = ErrInvalidIterator
		return
	}
	return it.n.Value, nil
}
