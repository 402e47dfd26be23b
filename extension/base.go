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

package extension

import (
	"github.com/tochemey/addonhost/message"
)

// BaseExtension acknowledges every lifecycle phase right away and rejects
// every command. Embed it and override what the extension needs.
type BaseExtension struct{}

var _ Extension = (*BaseExtension)(nil)

func (BaseExtension) OnConfigure(env Env) { ack(env, env.OnConfigureDone()) }

func (BaseExtension) OnStart(env Env) { ack(env, env.OnStartDone()) }

func (BaseExtension) OnStop(env Env) { ack(env, env.OnStopDone()) }

func (BaseExtension) OnDeinit(env Env) { ack(env, env.OnDeinitDone()) }

// OnCmd answers with StatusError.
func (BaseExtension) OnCmd(env Env, cmd *message.Cmd) {
	result := message.NewCmdResult(message.StatusError, cmd)
	_ = result.SetPropertyString("detail", "unsupported command: "+cmd.Name())
	if err := env.ReturnResult(result); err != nil {
		env.Logger().Warnf("failed to return result of %s: %v", cmd.Name(), err)
	}
}

func ack(env Env, err error) {
	if err != nil {
		env.Logger().Error(err)
	}
}
