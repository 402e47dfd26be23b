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

package errorschain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsChain(t *testing.T) {
	t.Run("With ReturnFirst", func(t *testing.T) {
		e1 := errors.New("err1")
		e2 := errors.New("err2")

		actual := New(ReturnFirst()).AddError(e1).AddError(e2).Error()
		require.ErrorIs(t, actual, e1)
	})

	t.Run("With nil errors", func(t *testing.T) {
		require.NoError(t, New(ReturnFirst()).AddError(nil).Error())
		require.NoError(t, New(ReturnAll()).AddError(nil).Error())
	})

	t.Run("With AddErrorFns ReturnFirst", func(t *testing.T) {
		var calls []string
		fn := func(name string, err error) func() error {
			return func() error { calls = append(calls, name); return err }
		}

		actual := New(ReturnFirst()).
			AddErrorFns(fn("a", nil), fn("b", errors.New("err2")), fn("c", errors.New("err3"))).
			Error()

		require.EqualError(t, actual, "err2")
		require.Equal(t, []string{"a", "b"}, calls)
	})

	t.Run("With AddErrorFn ReturnAll", func(t *testing.T) {
		calledLast := false
		actual := New(ReturnAll()).
			AddErrorFn(func() error { return errors.New("err1") }).
			AddErrorFn(func() error { return errors.New("err2") }).
			AddErrorFn(func() error { calledLast = true; return nil }).
			Error()

		require.EqualError(t, actual, "err1; err2")
		require.True(t, calledLast)
	})
}

func TestAddErrorFnIf(t *testing.T) {
	ctx := context.Background()

	t.Run("condition true", func(t *testing.T) {
		called := false
		chain := New(ReturnAll()).AddErrorFnIf(ctx, true, func(context.Context) error {
			called = true
			return errors.New("err1")
		})
		require.EqualError(t, chain.Error(), "err1")
		require.True(t, called)
	})

	t.Run("condition false", func(t *testing.T) {
		called := false
		chain := New(ReturnAll()).AddErrorFnIf(ctx, false, func(context.Context) error {
			called = true
			return errors.New("err1")
		})
		require.NoError(t, chain.Error())
		require.False(t, called)
	})
}
