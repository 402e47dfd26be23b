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

package engine

import "github.com/tochemey/addonhost/extension"

// phase is a lifecycle step driven by the engine and acknowledged by the extension.
type phase struct {
	name     string
	entering extension.State
	done     extension.State
	invoke   func(extension.Extension, extension.Env)
}

var (
	configurePhase = phase{
		name:     "configure",
		entering: extension.StateConfiguring,
		done:     extension.StateConfigured,
		invoke:   func(x extension.Extension, env extension.Env) { x.OnConfigure(env) },
	}
	startPhase = phase{
		name:     "start",
		entering: extension.StateStarting,
		done:     extension.StateStarted,
		invoke:   func(x extension.Extension, env extension.Env) { x.OnStart(env) },
	}
	stopPhase = phase{
		name:     "stop",
		entering: extension.StateStopping,
		done:     extension.StateStopped,
		invoke:   func(x extension.Extension, env extension.Env) { x.OnStop(env) },
	}
	deinitPhase = phase{
		name:     "deinit",
		entering: extension.StateDeinitializing,
		done:     extension.StateDeinited,
		invoke:   func(x extension.Extension, env extension.Env) { x.OnDeinit(env) },
	}
)
