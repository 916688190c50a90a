// SPDX-License-Identifier: Unlicense OR MIT

package slotmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertUnique(t *testing.T) {
	var m Map[string]
	seen := make(map[Key]bool)
	for i := 0; i < 100; i++ {
		k := m.Insert("v")
		require.False(t, k.IsZero())
		require.False(t, seen[k], "key %v returned twice", k)
		seen[k] = true
	}
	assert.Equal(t, 100, m.Len())
}

func TestRemoveInvalidatesKey(t *testing.T) {
	var m Map[int]
	k := m.Insert(1)
	v, ok := m.Remove(k)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, m.Contains(k))
	_, ok = m.Get(k)
	assert.False(t, ok)
	_, ok = m.Remove(k)
	assert.False(t, ok, "double remove must fail")
	assert.Equal(t, 0, m.Len())
}

func TestReusedSlotHasNewGeneration(t *testing.T) {
	var m Map[string]
	old := m.Insert("old")
	m.Remove(old)
	k := m.Insert("new")
	require.NotEqual(t, old, k)
	assert.Equal(t, old.Index(), k.Index(), "freed slot should be reused")
	assert.NotEqual(t, old.Generation(), k.Generation())
	_, ok := m.Get(old)
	assert.False(t, ok, "stale key must not alias the new entry")
	v, ok := m.Get(k)
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestGenerationWrapRetiresSlot(t *testing.T) {
	var m Map[int]
	k := m.Insert(1)
	m.slots[k.idx].gen = math.MaxUint32
	k = Key{idx: k.idx, gen: math.MaxUint32}
	_, ok := m.Remove(k)
	require.True(t, ok)
	assert.Empty(t, m.free)
	k2 := m.Insert(2)
	assert.NotEqual(t, k.Index(), k2.Index())
}

func TestZeroKey(t *testing.T) {
	var m Map[int]
	m.Insert(7)
	assert.False(t, m.Contains(Key{}))
	assert.True(t, Key{}.IsZero())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Key
		want int
	}{
		{Key{1, 1}, Key{1, 1}, 0},
		{Key{0, 5}, Key{1, 1}, -1},
		{Key{2, 1}, Key{1, 9}, 1},
		{Key{3, 1}, Key{3, 2}, -1},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.a.Compare(test.b), "%v vs %v", test.a, test.b)
	}
}

func TestRange(t *testing.T) {
	var m Map[int]
	a := m.Insert(1)
	b := m.Insert(2)
	m.Insert(3)
	m.Remove(b)
	var got []int
	m.Range(func(k Key, v int) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []int{1, 3}, got)
	var first Key
	m.Range(func(k Key, v int) bool {
		first = k
		return false
	})
	assert.Equal(t, a, first)
}
