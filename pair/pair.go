// Package pair provides a generic two-element tuple.
package pair

// Pair holds a key and the value associated with it.
// It is a plain value: copying a Pair copies both halves.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Of returns the Pair (k, v).
func Of[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// Unpack returns both halves of p.
func (p Pair[K, V]) Unpack() (K, V) {
	return p.Key, p.Value
}
