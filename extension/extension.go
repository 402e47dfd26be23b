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
	"github.com/tochemey/addonhost/future"
	"github.com/tochemey/addonhost/log"
	"github.com/tochemey/addonhost/message"
)

// Extension is the running behavior created by an Addon.
//
// Each lifecycle method must eventually call the matching acknowledgment on
// the Env (OnConfigureDone, OnStartDone, OnStopDone, OnDeinitDone). The
// acknowledgment may be deferred, for instance until the results of commands
// sent during the phase have arrived. The host never calls two methods of the
// same instance concurrently.
type Extension interface {
	// OnConfigure is called once after creation.
	OnConfigure(env Env)
	// OnStart is called once the instance is configured.
	OnStart(env Env)
	// OnStop is called when the host shuts down.
	OnStop(env Env)
	// OnDeinit is the last call the instance receives.
	OnDeinit(env Env)
	// OnCmd handles a command. The extension answers it with Env.ReturnResult.
	OnCmd(env Env, cmd *message.Cmd)
}

// ResultHandler receives the outcome of a sent command. Exactly one of
// result and err is non-nil. It runs on the sender's own execution context.
type ResultHandler func(env Env, result *message.CmdResult, err *message.TenError)

// Env is the handle an extension instance uses to talk to its host.
type Env interface {
	// Name returns the instance name.
	Name() string
	// Logger returns the instance logger.
	Logger() log.Logger

	OnConfigureDone() error
	OnStartDone() error
	OnStopDone() error
	OnDeinitDone() error

	// SendCmd dispatches cmd without blocking. handler may be nil when the
	// result does not matter.
	SendCmd(cmd *message.Cmd, handler ResultHandler) error
	// SendCmdAsync dispatches cmd and returns a future of its result.
	// The future fails with a *message.TenError on delivery failure.
	SendCmdAsync(cmd *message.Cmd) future.Future[*message.CmdResult]
	// ReturnResult answers a command previously delivered to OnCmd.
	ReturnResult(result *message.CmdResult) error

	// InitPropertyFromJSON merges a JSON object into the instance properties.
	InitPropertyFromJSON(json string) error
	GetPropertyToJSON(path string) (string, error)
	SetPropertyFromJSON(path, json string) error
	IsPropertyExist(path string) bool
	GetPropertyString(path string) (string, error)
	SetPropertyString(path, value string) error
	GetPropertyInt64(path string) (int64, error)
	SetPropertyInt64(path string, value int64) error
	GetPropertyFloat64(path string) (float64, error)
	SetPropertyFloat64(path string, value float64) error
	GetPropertyBool(path string) (bool, error)
	SetPropertyBool(path string, value bool) error
}

// AddonEnv is handed to an Addon when it creates an instance.
type AddonEnv interface {
	// Logger returns the addon logger.
	Logger() log.Logger
	// BaseDir returns the addon base directory, empty when unknown.
	BaseDir() string
}

// Addon is a factory of extension instances.
type Addon interface {
	OnCreateInstance(env AddonEnv, name string) (Extension, error)
}

// Definition produces the Addon of a registered addon. It is invoked once,
// when the registration handler runs.
type Definition func() Addon

// AddonFunc adapts a function into an Addon.
type AddonFunc func(env AddonEnv, name string) (Extension, error)

// OnCreateInstance implements Addon.
func (f AddonFunc) OnCreateInstance(env AddonEnv, name string) (Extension, error) {
	return f(env, name)
}
