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

package queue

import (
	"sync"

	"go.uber.org/atomic"
)

// item is a single queued entry
type item[T any] struct {
	value T
	next  *item[T]
}

// Mpsc is an unbounded multi-producer single-consumer FIFO queue.
// Producers may call Push concurrently. Pop and IsEmpty belong to the
// single consumer that drains the queue.
type Mpsc[T any] struct {
	mu     sync.Mutex
	head   *item[T]
	tail   *item[T]
	length *atomic.Int64
}

// NewMpsc creates an empty Mpsc queue
func NewMpsc[T any]() *Mpsc[T] {
	stub := new(item[T])
	return &Mpsc[T]{
		head:   stub,
		tail:   stub,
		length: atomic.NewInt64(0),
	}
}

// Push appends the value at the back of the queue
func (q *Mpsc[T]) Push(value T) {
	n := &item[T]{value: value}
	q.mu.Lock()
	q.tail.next = n
	q.tail = n
	q.mu.Unlock()
	q.length.Inc()
}

// Pop removes the value at the front of the queue.
// It returns false when the queue is empty.
func (q *Mpsc[T]) Pop() (T, bool) {
	var zero T
	q.mu.Lock()
	next := q.head.next
	if next == nil {
		q.mu.Unlock()
		return zero, false
	}
	q.head = next
	value := next.value
	next.value = zero
	q.mu.Unlock()
	q.length.Dec()
	return value, true
}

// Len returns the number of queued values
func (q *Mpsc[T]) Len() int64 {
	return q.length.Load()
}

// IsEmpty reports whether the queue holds no value
func (q *Mpsc[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.head.next == nil
}
