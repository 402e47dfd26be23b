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

package addon_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/addonhost/addon"
	gerrors "github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/testkit"
)

func TestRegisterAll(t *testing.T) {
	ctx := context.Background()

	t.Run("invokes every handler with the register context then clears", func(t *testing.T) {
		logs := testkit.NewLogBuffer()
		registry := addon.NewRegistry()
		handshake := addon.NewHandshake(registry, logs.Logger())

		var (
			mu       sync.Mutex
			received = map[string]addon.RegisterContext{}
		)
		token := &struct{ id int }{id: 7}
		for _, name := range []string{"a", "b", "c"} {
			registry.Set(name, func(_ context.Context, regCtx addon.RegisterContext) error {
				mu.Lock()
				received[name] = regCtx
				mu.Unlock()
				return nil
			})
		}

		report := handshake.RegisterAll(ctx, token)
		require.NoError(t, report.Err())
		assert.Equal(t, []string{"a", "b", "c"}, report.Names(addon.StageRegister))
		for _, name := range []string{"a", "b", "c"} {
			assert.Same(t, token, received[name])
			assert.True(t, logs.Contains("Successfully registered addon '"+name+"'"))
		}
		assert.Zero(t, registry.Len())
	})
	t.Run("failures are contained and the registry is still cleared", func(t *testing.T) {
		logs := testkit.NewLogBuffer()
		registry := addon.NewRegistry()
		handshake := addon.NewHandshake(registry, logs.Logger())

		called := map[string]bool{}
		registry.Set("broken", func(context.Context, addon.RegisterContext) error {
			called["broken"] = true
			return errors.New("host said no")
		})
		registry.Set("panicky", func(context.Context, addon.RegisterContext) error {
			called["panicky"] = true
			panic("boom")
		})
		registry.Set("fine", func(context.Context, addon.RegisterContext) error {
			called["fine"] = true
			return nil
		})

		report := handshake.RegisterAll(ctx, nil)
		assert.True(t, called["broken"])
		assert.True(t, called["panicky"])
		assert.True(t, called["fine"])
		require.Len(t, report.Failures(), 2)
		assert.Equal(t, []string{"fine"}, report.Names(addon.StageRegister))

		var panicErr *gerrors.PanicError
		require.ErrorAs(t, report.Failures()[1].Err, &panicErr)

		assert.True(t, logs.Contains("Error during registration of addon 'broken': host said no"))
		assert.True(t, logs.Contains("Error during registration of addon 'panicky'"))
		assert.Zero(t, registry.Len())
	})
	t.Run("handlers added during the pass wait for the next one", func(t *testing.T) {
		registry := addon.NewRegistry()
		handshake := addon.NewHandshake(registry, testkit.NewLogBuffer().Logger())

		lateCalled := false
		registry.Set("early", func(context.Context, addon.RegisterContext) error {
			registry.Set("late", func(context.Context, addon.RegisterContext) error {
				lateCalled = true
				return nil
			})
			return nil
		})

		report := handshake.RegisterAll(ctx, nil)
		assert.Equal(t, []string{"early"}, report.Names(addon.StageRegister))
		assert.False(t, lateCalled)
		assert.Equal(t, []string{"late"}, registry.Names())

		report = handshake.RegisterAll(ctx, nil)
		assert.Equal(t, []string{"late"}, report.Names(addon.StageRegister))
		assert.True(t, lateCalled)
		assert.Zero(t, registry.Len())
	})
	t.Run("declarations from another goroutine during a pass are kept", func(t *testing.T) {
		registry := addon.NewRegistry()
		handshake := addon.NewHandshake(registry, testkit.NewLogBuffer().Logger())

		entered := make(chan struct{})
		release := make(chan struct{})
		registry.Set("slow", func(context.Context, addon.RegisterContext) error {
			close(entered)
			<-release
			return nil
		})

		done := make(chan *addon.Report)
		go func() {
			done <- handshake.RegisterAll(ctx, nil)
		}()

		<-entered
		var lateCalls int
		registry.Set("late", func(context.Context, addon.RegisterContext) error {
			lateCalls++
			return nil
		})
		close(release)

		first := <-done
		assert.Equal(t, []string{"slow"}, first.Names(addon.StageRegister))
		assert.Equal(t, []string{"late"}, registry.Names())

		second := handshake.RegisterAll(ctx, nil)
		assert.Equal(t, []string{"late"}, second.Names(addon.StageRegister))
		assert.Equal(t, 1, lateCalls)
		assert.Zero(t, registry.Len())
	})
	t.Run("second pass registers nothing", func(t *testing.T) {
		registry := addon.NewRegistry()
		handshake := addon.NewHandshake(registry, testkit.NewLogBuffer().Logger())

		calls := 0
		registry.Set("once", func(context.Context, addon.RegisterContext) error {
			calls++
			return nil
		})

		handshake.RegisterAll(ctx, nil)
		report := handshake.RegisterAll(ctx, nil)
		assert.Equal(t, 1, calls)
		assert.Empty(t, report.Outcomes())
	})
	t.Run("canceled context skips handlers", func(t *testing.T) {
		registry := addon.NewRegistry()
		handshake := addon.NewHandshake(registry, testkit.NewLogBuffer().Logger())

		called := false
		registry.Set("x", func(context.Context, addon.RegisterContext) error {
			called = true
			return nil
		})

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		report := handshake.RegisterAll(canceled, nil)
		assert.False(t, called)
		require.ErrorIs(t, report.Err(), context.Canceled)
		assert.Zero(t, registry.Len())
	})
}

func TestRegisterOne(t *testing.T) {
	ctx := context.Background()

	t.Run("missing handler", func(t *testing.T) {
		logs := testkit.NewLogBuffer()
		handshake := addon.NewHandshake(addon.NewRegistry(), logs.Logger())

		outcome := handshake.RegisterOne(ctx, "ghost", nil)
		require.ErrorIs(t, outcome.Err, gerrors.ErrMissingHandler)
		assert.Equal(t, "ghost", outcome.Name)
		assert.True(t, logs.Contains("No register handler found for addon 'ghost'"))
	})
	t.Run("invokes the handler and keeps it", func(t *testing.T) {
		logs := testkit.NewLogBuffer()
		registry := addon.NewRegistry()
		handshake := addon.NewHandshake(registry, logs.Logger())

		calls := 0
		registry.Set("x", func(context.Context, addon.RegisterContext) error {
			calls++
			return nil
		})

		outcome := handshake.RegisterOne(ctx, "x", nil)
		require.NoError(t, outcome.Err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, registry.Len())
		assert.True(t, logs.Contains("Successfully registered addon 'x'"))
	})
	t.Run("handler failure", func(t *testing.T) {
		logs := testkit.NewLogBuffer()
		registry := addon.NewRegistry()
		handshake := addon.NewHandshake(registry, logs.Logger())
		registry.Set("x", func(context.Context, addon.RegisterContext) error { return assert.AnError })

		outcome := handshake.RegisterOne(ctx, "x", nil)
		require.ErrorIs(t, outcome.Err, assert.AnError)
		assert.True(t, logs.Contains("Error during registration of addon 'x'"))
	})
}
