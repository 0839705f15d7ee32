// Package orderedmap provides a map that remembers insertion order.
// The soup package stores element attributes in one, because attribute
// order in a converted document must match the order the markup spelled
// them in.
package orderedmap

import (
	"errors"
	"iter"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		keys: make(map[K]V),
	}
}

// Set appends a new entry. Keys are write-once: setting a key that is
// already present fails with ErrDuplicateEntry and leaves the map
// untouched.
func (m *Map[K, V]) Set(key K, value V) error {
	if _, exists := m.keys[key]; exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Range iterates the entries in insertion order.
func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			if !yield(k, m.keys[k]) {
				break
			}
		}
	}
}
