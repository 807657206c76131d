package omap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/ordmap/pair"
	"go.uber.org/goleak"
)

func TestCoroutine(t *testing.T) {
	tests := []struct {
		name string
		m    func() *Map[int, string]
		do   func(t *testing.T, co CoIterator[int, string])
	}{
		{
			name: "empty",
			m: func() *Map[int, string] {
				return New[int, string]()
			},
			do: func(t *testing.T, co CoIterator[int, string]) {
				_, ok := <-co.Items()
				assert.False(t, ok)
			},
		},
		{
			name: "all",
			m: func() *Map[int, string] {
				return newFilled(3)
			},
			do: func(t *testing.T, co CoIterator[int, string]) {
				var got []pair.Pair[int, string]
				for p := range co.Items() {
					got = append(got, p)
				}
				assert.Equal(t, []pair.Pair[int, string]{
					pair.Of(10, "a"),
					pair.Of(20, "b"),
					pair.Of(30, "c"),
				}, got)
			},
		},
		{
			name: "stopping",
			m: func() *Map[int, string] {
				return newFilled(3)
			},
			do: func(t *testing.T, co CoIterator[int, string]) {
				assert.Equal(t, pair.Of(10, "a"), <-co.Items())
				co.Stop()
				// a few more items may still arrive before the
				// goroutine notices, but always in order
				last := 10
				for p := range co.Items() {
					assert.Greater(t, p.Key, last)
					last = p.Key
				}
			},
		},
		{
			name: "usage",
			m: func() *Map[int, string] {
				return newFilled(5)
			},
			do: func(t *testing.T, co CoIterator[int, string]) {
				var keys []int
				for p := range co.Items() {
					keys = append(keys, p.Key)
					if p.Key == 20 {
						co.Stop()
						break
					}
				}
				assert.Equal(t, []int{10, 20}, keys)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t, tt.m().Coroutine())
			goleak.VerifyNone(t)
		})
	}
}
