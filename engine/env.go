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
	"fmt"

	"github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/extension"
	"github.com/tochemey/addonhost/future"
	"github.com/tochemey/addonhost/log"
	"github.com/tochemey/addonhost/message"
)

// env is the extension.Env of an instance.
type env struct {
	inst *instance
}

var _ extension.Env = (*env)(nil)

func (e *env) Name() string {
	return e.inst.name
}

func (e *env) Logger() log.Logger {
	return e.inst.logger
}

func (e *env) OnConfigureDone() error {
	return e.inst.acknowledge(configurePhase)
}

func (e *env) OnStartDone() error {
	return e.inst.acknowledge(startPhase)
}

func (e *env) OnStopDone() error {
	return e.inst.acknowledge(stopPhase)
}

func (e *env) OnDeinitDone() error {
	return e.inst.acknowledge(deinitPhase)
}

func (e *env) SendCmd(cmd *message.Cmd, handler extension.ResultHandler) error {
	if err := validateCmd(cmd); err != nil {
		return err
	}

	e.inst.engine.dispatch(e.inst.name, cmd, func(result *message.CmdResult, tenErr *message.TenError) {
		if handler == nil {
			return
		}
		e.inst.schedule(func() {
			handler(e, result, tenErr)
		})
	})
	return nil
}

func (e *env) SendCmdAsync(cmd *message.Cmd) future.Future[*message.CmdResult] {
	if err := validateCmd(cmd); err != nil {
		return future.Failed[*message.CmdResult](message.NewTenErrorFromError(err))
	}

	promise := future.NewPromise[*message.CmdResult]()
	e.inst.engine.dispatch(e.inst.name, cmd, settle(promise))
	return promise.Future()
}

func (e *env) ReturnResult(result *message.CmdResult) error {
	if result == nil {
		return errors.ErrNilResult
	}

	req, ok := e.inst.inbound.Pop(result.CmdID())
	if !ok {
		if cmd := result.Cmd(); cmd != nil && cmd.Replied() {
			return fmt.Errorf("%w: %s", errors.ErrResultAlreadyReturned, cmd)
		}
		return fmt.Errorf("%w: %s", errors.ErrUnknownCommand, result.CmdID())
	}

	result.Cmd().MarkReplied()
	if !req.complete(result, nil) {
		e.inst.logger.Warnf("result of %s arrived after the command completed", result.CmdID())
	}
	return nil
}

func (e *env) InitPropertyFromJSON(json string) error {
	return e.inst.props.Merge([]byte(json))
}

func (e *env) GetPropertyToJSON(path string) (string, error) {
	raw, err := e.inst.props.GetJSON(path)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (e *env) SetPropertyFromJSON(path, json string) error {
	return e.inst.props.SetJSON(path, []byte(json))
}

func (e *env) IsPropertyExist(path string) bool {
	return e.inst.props.Has(path)
}

func (e *env) GetPropertyString(path string) (string, error) {
	return e.inst.props.GetString(path)
}

func (e *env) SetPropertyString(path, value string) error {
	return e.inst.props.SetString(path, value)
}

func (e *env) GetPropertyInt64(path string) (int64, error) {
	return e.inst.props.GetInt64(path)
}

func (e *env) SetPropertyInt64(path string, value int64) error {
	return e.inst.props.SetInt64(path, value)
}

func (e *env) GetPropertyFloat64(path string) (float64, error) {
	return e.inst.props.GetFloat64(path)
}

func (e *env) SetPropertyFloat64(path string, value float64) error {
	return e.inst.props.SetFloat64(path, value)
}

func (e *env) GetPropertyBool(path string) (bool, error) {
	return e.inst.props.GetBool(path)
}

func (e *env) SetPropertyBool(path string, value bool) error {
	return e.inst.props.SetBool(path, value)
}

// addonEnv is the extension.AddonEnv handed to addons.
type addonEnv struct {
	logger  log.Logger
	baseDir string
}

var _ extension.AddonEnv = addonEnv{}

func (a addonEnv) Logger() log.Logger {
	return a.logger
}

func (a addonEnv) BaseDir() string {
	return a.baseDir
}

func validateCmd(cmd *message.Cmd) error {
	if cmd == nil {
		return errors.ErrNilCmd
	}
	if cmd.Name() == "" {
		return errors.ErrInvalidCmdName
	}
	return nil
}

// settle completes promise with the outcome of a command.
func settle(promise *future.Promise[*message.CmdResult]) func(*message.CmdResult, *message.TenError) {
	return func(result *message.CmdResult, tenErr *message.TenError) {
		if tenErr != nil {
			promise.Failure(tenErr)
			return
		}
		promise.Success(result)
	}
}
