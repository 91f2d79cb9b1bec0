// Package merge reconciles static and dynamic findings into sorted,
// deduplicated record sequences.
package merge

import "sort"

// OrderedMap is a name-keyed map whose entries are extracted sorted by key.
// Set replaces any existing value, so the last writer wins.
type OrderedMap[V any] struct {
	entries map[string]V
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{entries: map[string]V{}}
}

// Set stores v under key.
func (m *OrderedMap[V]) Set(key string, v V) {
	m.entries[key] = v
}

// Get returns the value under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of keys.
func (m *OrderedMap[V]) Len() int { return len(m.entries) }

// Keys returns the keys in ascending byte order.
func (m *OrderedMap[V]) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sorted returns the values ordered by key.
func (m *OrderedMap[V]) Sorted() []V {
	keys := m.Keys()
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.entries[k])
	}
	return out
}
