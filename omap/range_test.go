package omap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/ordmap/pair"
)

func TestForEach(t *testing.T) {
	m := newFilled(4)

	var keys []int
	var vals []string
	m.ForEach(func(k int, v string) bool {
		keys = append(keys, k)
		vals = append(vals, v)
		return true
	})
	assert.Equal(t, []int{10, 20, 30, 40}, keys)
	assert.Equal(t, []string{"a", "b", "c", "d"}, vals)

	times := 0
	m.ForEach(func(k int, _ string) bool {
		times++
		assert.Equal(t, 10, k)
		return false
	})
	assert.Equal(t, 1, times)

	New[int, int]().ForEach(func(k, v int) bool {
		t.Errorf("callback was called: %d->%d", k, v)
		return false
	})
}

func TestAscendDescend(t *testing.T) {
	m := newFilled(5)

	var up []int
	a := m.Ascend()
	for a.Next() {
		up = append(up, a.Item().Key)
	}
	assert.Equal(t, []int{10, 20, 30, 40, 50}, up)

	var down []int
	d := m.Descend()
	for d.Next() {
		down = append(down, d.Item().Key)
	}
	assert.Equal(t, []int{50, 40, 30, 20, 10}, down)

	assert.False(t, New[int, int]().Ascend().Next())
	assert.False(t, New[int, int]().Descend().Next())
}

func TestEntries(t *testing.T) {
	m := newFilled(3)

	assert.Equal(t, []pair.Pair[int, string]{
		pair.Of(10, "a"),
		pair.Of(20, "b"),
		pair.Of(30, "c"),
	}, m.Entries())
	assert.Equal(t, []int{10, 20, 30}, m.Keys())

	assert.Empty(t, New[int, int]().Entries())
	assert.Empty(t, New[int, int]().Keys())

	big := New[int, int]()
	for k := 999; k >= 0; k-- {
		big.Insert(k, -k)
	}
	entries := big.Entries()
	assert.Len(t, entries, 1000)
	for i, e := range entries {
		assert.Equal(t, pair.Of(i, -i), e)
	}
}
