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

package future

import (
	"context"

	"go.uber.org/atomic"
)

// Future represents a value which will be available at some point, or an
// error if that value could not be produced.
//
// A Future is completed exactly once through its Promise. Await may be
// called any number of times from any goroutine and always observes the
// same outcome once the Future is done.
//
// Example usage:
//
//	f := future.New(func() (*message.CmdResult, error) {
//	    return doWork()
//	})
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//
//	result, err := f.Await(ctx)
type Future[T any] interface {
	// Await blocks until the Future is completed or the context is canceled.
	// A canceled context does not complete the Future.
	Await(ctx context.Context) (T, error)
	// Done is closed once the Future is completed.
	Done() <-chan struct{}
	// Result returns the outcome when the Future is completed, nil otherwise.
	Result() *Result[T]
}

// New creates a Future completed with the outcome of the given task.
// The task runs in its own goroutine.
func New[T any](task func() (T, error)) Future[T] {
	promise := NewPromise[T]()
	go func() {
		value, err := task()
		if err != nil {
			promise.Failure(err)
			return
		}
		promise.Success(value)
	}()
	return promise.Future()
}

// Completed returns a Future already completed with the given value.
func Completed[T any](value T) Future[T] {
	promise := NewPromise[T]()
	promise.Success(value)
	return promise.Future()
}

// Failed returns a Future already failed with the given error.
func Failed[T any](err error) Future[T] {
	promise := NewPromise[T]()
	promise.Failure(err)
	return promise.Future()
}

type future[T any] struct {
	done   chan struct{}
	result *Result[T]
}

var _ Future[any] = (*future[any])(nil)

func (x *future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-x.done:
		return x.result.success, x.result.failure
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (x *future[T]) Done() <-chan struct{} {
	return x.done
}

func (x *future[T]) Result() *Result[T] {
	select {
	case <-x.done:
		return x.result
	default:
		return nil
	}
}

// Promise is the writable, single-assignment side of a Future.
type Promise[T any] struct {
	completed *atomic.Bool
	future    *future[T]
}

// NewPromise creates a Promise with a pending Future.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{
		completed: atomic.NewBool(false),
		future:    &future[T]{done: make(chan struct{})},
	}
}

// Success completes the Future with a value.
// It reports false when the Future was already completed.
func (p *Promise[T]) Success(value T) bool {
	return p.complete(&Result[T]{success: value})
}

// Failure fails the Future with an error.
// It reports false when the Future was already completed.
func (p *Promise[T]) Failure(err error) bool {
	return p.complete(&Result[T]{failure: err})
}

// Future returns the Future bound to this Promise.
func (p *Promise[T]) Future() Future[T] {
	return p.future
}

// IsCompleted reports whether the Future has been completed.
func (p *Promise[T]) IsCompleted() bool {
	return p.completed.Load()
}

func (p *Promise[T]) complete(result *Result[T]) bool {
	if !p.completed.CompareAndSwap(false, true) {
		return false
	}
	p.future.result = result
	close(p.future.done)
	return true
}
