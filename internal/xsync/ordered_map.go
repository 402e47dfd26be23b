// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package xsync

import (
	"slices"
	"sync"
)

// OrderedMap is a concurrency-safe map that remembers the order in which keys
// were first inserted. Overwriting a key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	mu   sync.RWMutex
	keys []K
	data map[K]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		data: make(map[K]V),
	}
}

// Set stores the value under the given key.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	m.mu.Lock()
	if _, ok := m.data[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.data[k] = v
	m.mu.Unlock()
}

// Get returns the value stored under the given key.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	m.mu.RLock()
	v, ok := m.data[k]
	m.mu.RUnlock()
	return v, ok
}

// Delete removes the key.
func (m *OrderedMap[K, V]) Delete(k K) {
	m.mu.Lock()
	if _, ok := m.data[k]; ok {
		delete(m.data, k)
		m.keys = slices.DeleteFunc(m.keys, func(key K) bool { return key == k })
	}
	m.mu.Unlock()
}

// Keys returns a snapshot of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.keys)
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Drain removes every entry and returns them in insertion order.
// Entries set after Drain returns belong to the emptied map.
func (m *OrderedMap[K, V]) Drain() ([]K, []V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := m.keys
	values := make([]V, 0, len(keys))
	for _, k := range keys {
		values = append(values, m.data[k])
	}
	m.keys = nil
	m.data = make(map[K]V)
	return keys, values
}

// Reset removes every entry.
func (m *OrderedMap[K, V]) Reset() {
	m.mu.Lock()
	clear(m.data)
	m.keys = nil
	m.mu.Unlock()
}
