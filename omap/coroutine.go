package omap

import (
	"go.lepak.sg/ordmap/pair"
	"go.lepak.sg/ordmap/tree/iterator"
)

// CoIterator is returned from Coroutine and abstracts
// communication with the iterating goroutine.
type CoIterator[K, V any] struct {
	items <-chan pair.Pair[K, V]
	stop  chan<- struct{}
}

// Items returns a channel on which the entries will be sent.
// It is closed after the last entry, or once Stop is called.
func (c CoIterator[K, V]) Items() <-chan pair.Pair[K, V] {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
func (c CoIterator[K, V]) Stop() {
	close(c.stop)
}

// Coroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := m.Coroutine()
//	for p := range co.Items() {
//		... do stuff with p ...
//		if p meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: Coroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop. The map must not be modified until
// the goroutine has exited.
func (m *Map[K, V]) Coroutine() CoIterator[K, V] {
	return coIterate[K, V](m.Ascend())
}

func coIterate[K, V any](i iterator.Iterator[pair.Pair[K, V]]) CoIterator[K, V] {
	out := make(chan pair.Pair[K, V])
	stop := make(chan struct{})

	go func() {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}()

	return CoIterator[K, V]{
		items: out,
		stop:  stop,
	}
}
