// SPDX-License-Identifier: Unlicense OR MIT

// Package slotmap implements a generational map from small opaque keys to
// values. Keys of removed entries never alias later insertions: a slot is
// reused only with a new generation, and a slot whose generation counter
// would wrap is retired instead.
//
// A Map is not safe for concurrent use.
package slotmap

import (
	"cmp"
	"fmt"
)

// Key identifies an entry of a Map. The zero Key never refers to an entry.
type Key struct {
	idx uint32
	gen uint32
}

// Index returns the slot index of the key.
func (k Key) Index() uint32 { return k.idx }

// Generation returns the generation of the key. Valid keys have a non-zero
// generation.
func (k Key) Generation() uint32 { return k.gen }

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.gen == 0 }

// Compare orders keys by index, then generation.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.idx, o.idx); c != 0 {
		return c
	}
	return cmp.Compare(k.gen, o.gen)
}

func (k Key) String() string {
	return fmt.Sprintf("%dv%d", k.idx, k.gen)
}

type slot[V any] struct {
	// gen is the generation of the current or next occupant.
	gen      uint32
	occupied bool
	val      V
}

// Map is a generational slot map. The zero Map is empty and ready to use.
type Map[V any] struct {
	slots []slot[V]
	free  []uint32
	n     int
}

// Insert stores v in a free slot and returns its key.
func (m *Map[V]) Insert(v V) Key {
	var idx uint32
	if n := len(m.free); n > 0 {
		idx = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		idx = uint32(len(m.slots))
		m.slots = append(m.slots, slot[V]{gen: 1})
	}
	s := &m.slots[idx]
	s.occupied = true
	s.val = v
	m.n++
	return Key{idx: idx, gen: s.gen}
}

// Get returns the value stored under k.
func (m *Map[V]) Get(k Key) (V, bool) {
	if s := m.lookup(k); s != nil {
		return s.val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k refers to a live entry.
func (m *Map[V]) Contains(k Key) bool {
	return m.lookup(k) != nil
}

// Remove deletes the entry for k and returns its value. Every copy of k is
// invalid afterwards.
func (m *Map[V]) Remove(k Key) (V, bool) {
	s := m.lookup(k)
	if s == nil {
		var zero V
		return zero, false
	}
	v := s.val
	var zero V
	s.val = zero
	s.occupied = false
	m.n--
	s.gen++
	if s.gen == 0 {
		// Retire the slot rather than hand out a generation that could
		// collide with a key minted before the wrap.
		return v, true
	}
	m.free = append(m.free, k.idx)
	return v, true
}

// Len returns the number of live entries.
func (m *Map[V]) Len() int { return m.n }

// Range calls f for every live entry in slot order until f returns false.
func (m *Map[V]) Range(f func(k Key, v V) bool) {
	for i := range m.slots {
		s := &m.slots[i]
		if !s.occupied {
			continue
		}
		if !f(Key{idx: uint32(i), gen: s.gen}, s.val) {
			return
		}
	}
}

func (m *Map[V]) lookup(k Key) *slot[V] {
	if k.gen == 0 || int(k.idx) >= len(m.slots) {
		return nil
	}
	s := &m.slots[k.idx]
	if !s.occupied || s.gen != k.gen {
		return nil
	}
	return s
}
