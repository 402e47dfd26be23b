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

import (
	"time"

	"github.com/tochemey/addonhost/log"
)

// Option is the interface that applies an Engine option.
type Option interface {
	// Apply sets the Option value of an Engine.
	Apply(*Engine)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Engine)

// Apply applies the Engine option
func (f OptionFunc) Apply(e *Engine) {
	f(e)
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(e *Engine) {
		e.logger = logger
	})
}

// WithPhaseTimeout bounds how long the engine waits for an extension to
// acknowledge a lifecycle phase.
func WithPhaseTimeout(timeout time.Duration) Option {
	return OptionFunc(func(e *Engine) {
		e.phaseTimeout = timeout
	})
}

// WithCmdTimeout bounds how long a command may wait for its result.
// Zero disables the timeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return OptionFunc(func(e *Engine) {
		e.cmdTimeout = timeout
	})
}

// WithRoute sends the commands named cmdName that the extension from emits
// without an explicit destination to the extension to. An empty from
// routes commands sent by the engine itself.
func WithRoute(from, cmdName, to string) Option {
	return OptionFunc(func(e *Engine) {
		e.routes[routeKey{from: from, cmd: cmdName}] = to
	})
}
