package omap

import (
	"fmt"

	"go.lepak.sg/ordmap/must"
	"go.lepak.sg/ordmap/pair"
	"go.lepak.sg/ordmap/tree"
	"go.lepak.sg/ordmap/tree/aa"
	"golang.org/x/exp/constraints"
)

// Map is an ordered map from K to V.
// Create one with New or NewFunc. A Map must not be copied by value;
// use Clone or Assign, which copy every entry.
type Map[K, V any] struct {
	t *aa.Tree[K, V]
}

// New returns an empty Map ordered by the natural ordering of K.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](tree.Ordered[K])
}

// NewFunc returns an empty Map ordered by less, which must be a strict
// weak ordering. Two keys are the same key when neither is less than
// the other. NewFunc panics if less is nil.
func NewFunc[K, V any](less func(a, b K) bool) *Map[K, V] {
	if less == nil {
		panic("omap: nil less func")
	}

	return &Map[K, V]{
		t: aa.New[K, V](less),
	}
}

// Clone returns a deep copy of the Map. The copy shares no storage
// with m, but pointer-typed keys and values still point to the same
// memory.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		t: m.t.Copy(),
	}
}

// Assign replaces the contents of m with a deep copy of other,
// including its ordering. Iterators into m are invalidated.
// Assigning a Map to itself does nothing.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other {
		return
	}

	m.t.CopyFrom(other.t)
}

// At returns the value stored for k. If there is none,
// the error wraps ErrKeyNotFound.
func (m *Map[K, V]) At(k K) (v V, err error) {
	n := m.t.Find(k)
	if n == nil {
		err = fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		return
	}

	return n.Value, nil
}

// MustAt is At, but panics if k is not in the map.
func (m *Map[K, V]) MustAt(k K) V {
	return must.Must2(m.At(k))
}

// Index returns a pointer to the value stored for k, first inserting
// the zero V if k is not in the map. It behaves like &m[k] would for
// a builtin map, if that were allowed.
// The pointer refers to the entry's storage, so erasing other keys may
// leave it pointing at a different entry.
func (m *Map[K, V]) Index(k K) *V {
	var zero V
	n, _ := m.t.Insert(k, zero)
	return &n.Value
}

// Insert inserts (k, v) unless an equivalent key is already stored,
// in which case the stored value is left alone.
// It returns an iterator to the entry for k, and whether (k, v)
// was inserted.
func (m *Map[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	n, inserted := m.t.Insert(k, v)
	return m.iter(n), inserted
}

// InsertPair is Insert for a pair.
func (m *Map[K, V]) InsertPair(p pair.Pair[K, V]) (Iterator[K, V], bool) {
	return m.Insert(p.Key, p.Value)
}

// Erase removes the entry denoted by it. It returns ErrInvalidIterator,
// changing nothing, if it came from another map, is End, or no
// longer denotes an entry of m.
func (m *Map[K, V]) Erase(it Iterator[K, V]) error {
	if it.m != m || it.n == nil {
		return ErrInvalidIterator
	}

	if !m.t.RemoveNode(it.n) {
		return ErrInvalidIterator
	}

	return nil
}

// Delete removes the entry for k, if any, and reports whether
// there was one.
func (m *Map[K, V]) Delete(k K) bool {
	return m.t.Remove(k)
}

// Find returns an iterator to the entry for k, or End if there is none.
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	return m.iter(m.t.Find(k))
}

// CFind is Find returning a ConstIterator.
func (m *Map[K, V]) CFind(k K) ConstIterator[K, V] {
	return m.Find(k).Const()
}

// Count returns the number of entries for k, which is 0 or 1.
func (m *Map[K, V]) Count(k K) int {
	if m.t.Find(k) == nil {
		return 0
	}
	return 1
}

// Contains reports whether k is in the map.
func (m *Map[K, V]) Contains(k K) bool {
	return m.Count(k) == 1
}

// Len returns the number of entries. This is a constant-time operation.
func (m *Map[K, V]) Len() int {
	return m.t.Len()
}

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool {
	return m.t.Len() == 0
}

// Clear removes every entry. Iterators into m are invalidated.
func (m *Map[K, V]) Clear() {
	m.t.Clear()
}

// Begin returns an iterator to the entry with the smallest key,
// or End if the map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.iter(m.t.First())
}

// End returns the iterator one past the entry with the largest key.
// It denotes no entry.
func (m *Map[K, V]) End() Iterator[K, V] {
	return m.iter(nil)
}

// CBegin is Begin returning a ConstIterator.
func (m *Map[K, V]) CBegin() ConstIterator[K, V] {
	return m.Begin().Const()
}

// CEnd is End returning a ConstIterator.
func (m *Map[K, V]) CEnd() ConstIterator[K, V] {
	return m.End().Const()
}

// String returns the shape of the underlying tree, for debugging.
func (m *Map[K, V]) String() string {
	return m.t.Sprint(true)
}

func (m *Map[K, V]) iter(n *tree.Node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{
		cursor: cursor[K, V]{
			m: m,
			n: n,
		},
	}
}
