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
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	require.Equal(t, 2, m.Len())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	require.False(t, m.SetIfAbsent("a", 10))
	require.True(t, m.SetIfAbsent("c", 3))

	keys := m.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Len(t, m.Values(), 3)

	popped, ok := m.Pop("b")
	require.True(t, ok)
	assert.Equal(t, 2, popped)
	_, ok = m.Pop("b")
	require.False(t, ok)

	count := 0
	m.Range(func(string, int) { count++ })
	assert.Equal(t, 2, count)

	m.Delete("a")
	_, ok = m.Get("a")
	require.False(t, ok)

	m.Reset()
	require.Zero(t, m.Len())
}

func TestOrderedMap(t *testing.T) {
	t.Run("keeps first insertion position on overwrite", func(t *testing.T) {
		m := NewOrderedMap[string, int]()
		m.Set("x", 1)
		m.Set("y", 2)
		m.Set("x", 3)

		assert.Equal(t, []string{"x", "y"}, m.Keys())
		v, ok := m.Get("x")
		require.True(t, ok)
		assert.Equal(t, 3, v)
		assert.Equal(t, 2, m.Len())
	})
	t.Run("delete and reset", func(t *testing.T) {
		m := NewOrderedMap[string, int]()
		m.Set("x", 1)
		m.Set("y", 2)
		m.Set("z", 3)
		m.Delete("y")
		m.Delete("missing")
		assert.Equal(t, []string{"x", "z"}, m.Keys())

		m.Reset()
		assert.Empty(t, m.Keys())
		assert.Zero(t, m.Len())
	})
	t.Run("keys snapshot is detached", func(t *testing.T) {
		m := NewOrderedMap[string, int]()
		m.Set("x", 1)
		keys := m.Keys()
		m.Set("y", 2)
		assert.Equal(t, []string{"x"}, keys)
	})
	t.Run("drain empties the map atomically", func(t *testing.T) {
		m := NewOrderedMap[string, int]()
		m.Set("x", 1)
		m.Set("y", 2)

		keys, values := m.Drain()
		assert.Equal(t, []string{"x", "y"}, keys)
		assert.Equal(t, []int{1, 2}, values)
		assert.Zero(t, m.Len())

		m.Set("z", 3)
		assert.Equal(t, []string{"z"}, m.Keys())
		assert.Equal(t, []string{"x", "y"}, keys)
	})
	t.Run("concurrent writers", func(t *testing.T) {
		m := NewOrderedMap[int, int]()
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				m.Set(i, i)
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 50, m.Len())
		assert.Len(t, m.Keys(), 50)
	})
}
