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

package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tochemey/addonhost/engine"
	"github.com/tochemey/addonhost/extension"
	"github.com/tochemey/addonhost/log"
	"github.com/tochemey/addonhost/message"
)

// echo answers "hello" with "hi".
type echo struct {
	extension.BaseExtension
}

func (echo) OnCmd(env extension.Env, cmd *message.Cmd) {
	if cmd.Name() != "hello" {
		extension.BaseExtension{}.OnCmd(env, cmd)
		return
	}

	result := message.NewCmdResult(message.StatusOK, cmd)
	_ = result.SetPropertyString("detail", "hi")
	_ = env.ReturnResult(result)
}

// greeter turns "greet" into a routed "hello" and appends the name to the answer.
type greeter struct {
	extension.BaseExtension
}

func (greeter) OnCmd(env extension.Env, cmd *message.Cmd) {
	name, _ := cmd.GetPropertyString("name")
	err := env.SendCmd(message.NewCmd("hello"), func(env extension.Env, result *message.CmdResult, tenErr *message.TenError) {
		reply := message.NewCmdResult(message.StatusOK, cmd)
		if tenErr != nil {
			reply = message.NewCmdResult(message.StatusError, cmd)
			_ = reply.SetPropertyString("detail", tenErr.Message)
		} else {
			detail, _ := result.GetPropertyString("detail")
			_ = reply.SetPropertyString("detail", detail+" "+name)
		}
		_ = env.ReturnResult(reply)
	})
	if err != nil {
		env.Logger().Error(err)
	}
}

// silent never answers commands.
type silent struct {
	extension.BaseExtension
}

func (silent) OnCmd(extension.Env, *message.Cmd) {}

// panicky panics on every command.
type panicky struct {
	extension.BaseExtension
}

func (panicky) OnCmd(extension.Env, *message.Cmd) {
	panic("cannot handle this")
}

// twice answers every command two times and reports the second attempt.
type twice struct {
	extension.BaseExtension
	second chan error
}

func (x twice) OnCmd(env extension.Env, cmd *message.Cmd) {
	_ = env.ReturnResult(message.NewCmdResult(message.StatusOK, cmd))
	x.second <- env.ReturnResult(message.NewCmdResult(message.StatusOK, cmd))
}

// lazy acknowledges start from another goroutine after a delay.
type lazy struct {
	extension.BaseExtension
	delay time.Duration
}

func (x lazy) OnStart(env extension.Env) {
	go func() {
		time.Sleep(x.delay)
		_ = env.OnStartDone()
	}()
}

// mute never acknowledges configure.
type mute struct {
	extension.BaseExtension
}

func (mute) OnConfigure(extension.Env) {}

// recorder records lifecycle calls.
type recorder struct {
	extension.BaseExtension
	calls chan string
}

func (x recorder) OnConfigure(env extension.Env) {
	x.calls <- env.Name() + ":configure"
	x.BaseExtension.OnConfigure(env)
}

func (x recorder) OnStart(env extension.Env) {
	x.calls <- env.Name() + ":start"
	x.BaseExtension.OnStart(env)
}

func (x recorder) OnStop(env extension.Env) {
	x.calls <- env.Name() + ":stop"
	x.BaseExtension.OnStop(env)
}

func (x recorder) OnDeinit(env extension.Env) {
	x.calls <- env.Name() + ":deinit"
	x.BaseExtension.OnDeinit(env)
}

func addonOf(create func() extension.Extension) extension.Addon {
	return extension.AddonFunc(func(extension.AddonEnv, string) (extension.Extension, error) {
		return create(), nil
	})
}

// newEngine builds an engine with the given addons registered under their map key.
func newEngine(t *testing.T, addons map[string]extension.Addon, opts ...engine.Option) *engine.Engine {
	t.Helper()
	opts = append([]engine.Option{
		engine.WithLogger(log.DiscardLogger),
		engine.WithPhaseTimeout(time.Second),
	}, opts...)

	e, err := engine.New(opts...)
	require.NoError(t, err)

	for name, a := range addons {
		require.NoError(t, e.AddExtensionAddonToCatalog(name))
		require.NoError(t, e.RegisterAddonAsExtension(context.Background(), name, "", a, nil))
	}
	return e
}

// asyncGreeter awaits the routed "hello" through a future instead of a handler.
type asyncGreeter struct {
	extension.BaseExtension
}

func (asyncGreeter) OnCmd(env extension.Env, cmd *message.Cmd) {
	f := env.SendCmdAsync(message.NewCmd("hello"))
	go func() {
		reply := message.NewCmdResult(message.StatusOK, cmd)
		result, err := f.Await(context.Background())
		if err != nil {
			reply = message.NewCmdResult(message.StatusError, cmd)
			_ = reply.SetPropertyString("detail", err.Error())
		} else {
			detail, _ := result.GetPropertyString("detail")
			_ = reply.SetPropertyString("detail", detail+" async")
		}
		_ = env.ReturnResult(reply)
	}()
}
