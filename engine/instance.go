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
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/extension"
	"github.com/tochemey/addonhost/future"
	"github.com/tochemey/addonhost/internal/queue"
	"github.com/tochemey/addonhost/internal/xsync"
	"github.com/tochemey/addonhost/log"
	"github.com/tochemey/addonhost/message"
	"github.com/tochemey/addonhost/property"
)

const (
	idle int32 = iota
	busy
)

// instance is a running extension. Everything the extension is asked to do
// goes through its mailbox, which is drained by at most one goroutine at a
// time, so the extension callbacks never overlap.
type instance struct {
	name      string
	addonName string
	engine    *Engine
	ext       extension.Extension
	logger    log.Logger
	props     *property.Property
	env       *env

	mu    sync.Mutex
	state extension.State
	ack   *future.Promise[extension.State]

	mailbox    *queue.Mpsc[func()]
	processing *atomic.Int32
	inbound    *xsync.Map[string, *request]
}

func newInstance(engine *Engine, name, addonName string, ext extension.Extension, props *property.Property) *instance {
	inst := &instance{
		name:       name,
		addonName:  addonName,
		engine:     engine,
		ext:        ext,
		logger:     engine.logger.With("extension", name, "addon", addonName),
		props:      props,
		state:      extension.StateCreated,
		mailbox:    queue.NewMpsc[func()](),
		processing: atomic.NewInt32(idle),
		inbound:    xsync.NewMap[string, *request](),
	}
	inst.env = &env{inst: inst}
	return inst
}

// State returns the lifecycle state.
func (i *instance) State() extension.State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// schedule enqueues fn on the mailbox.
func (i *instance) schedule(fn func()) {
	i.mailbox.Push(fn)
	i.process()
}

// process drains the mailbox
func (i *instance) process() {
	// Only start a loop when transitioning from idle to busy.
	if !i.processing.CompareAndSwap(idle, busy) {
		return
	}

	go func() {
		for {
			if fn, ok := i.mailbox.Pop(); ok {
				i.run(fn)
				continue
			}

			i.processing.Store(idle)

			// work may have been enqueued between the last Pop and the Store
			if !i.mailbox.IsEmpty() && i.processing.CompareAndSwap(idle, busy) {
				continue
			}
			return
		}
	}()
}

func (i *instance) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			i.logger.Errorf("extension %s panicked: %v", i.name, r)
		}
	}()
	fn()
}

// drive runs a lifecycle phase and waits for its acknowledgment.
func (i *instance) drive(ctx context.Context, p phase) error {
	i.mu.Lock()
	if !i.state.CanTransition(p.entering) {
		state := i.state
		i.mu.Unlock()
		return fmt.Errorf("%w: extension %s cannot %s from %s", errors.ErrInvalidPhaseTransition, i.name, p.name, state)
	}
	i.state = p.entering
	promise := future.NewPromise[extension.State]()
	i.ack = promise
	i.mu.Unlock()

	i.logger.Debugf("extension %s: %s", i.name, p.entering)
	i.schedule(func() {
		defer func() {
			if r := recover(); r != nil {
				promise.Failure(errors.NewPanicErrorFromRecover(r))
			}
		}()
		p.invoke(i.ext, i.env)
	})

	ctx, cancel := context.WithTimeout(ctx, i.engine.phaseTimeout)
	defer cancel()

	if _, err := promise.Future().Await(ctx); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: extension %s did not acknowledge %s within %s",
				errors.ErrPhaseTimeout, i.name, p.name, i.engine.phaseTimeout)
		}
		return fmt.Errorf("extension %s failed to %s: %w", i.name, p.name, err)
	}

	i.logger.Debugf("extension %s: %s", i.name, p.done)
	return nil
}

// acknowledge completes the current phase.
func (i *instance) acknowledge(p phase) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.state != p.entering {
		return fmt.Errorf("%w: extension %s acknowledged %s while %s",
			errors.ErrInvalidPhaseTransition, i.name, p.name, i.state)
	}

	i.state = p.done
	if i.ack != nil {
		i.ack.Success(p.done)
		i.ack = nil
	}
	return nil
}

// deliver hands a command to the extension.
func (i *instance) deliver(cmd *message.Cmd) {
	i.schedule(func() {
		defer func() {
			if r := recover(); r != nil {
				err := errors.NewPanicErrorFromRecover(r)
				i.logger.Errorf("extension %s panicked while handling %s: %v", i.name, cmd.Name(), err)
				if req, ok := i.inbound.Pop(cmd.ID()); ok {
					req.complete(nil, message.NewTenErrorFromError(err))
				}
			}
		}()
		i.ext.OnCmd(i.env, cmd)
	})
}

// abandon fails every command delivered to the instance and still unanswered.
func (i *instance) abandon() {
	for _, id := range i.inbound.Keys() {
		if req, ok := i.inbound.Pop(id); ok {
			err := fmt.Errorf("%w: %s left without answering", errors.ErrExtensionNotRunning, i.name)
			req.complete(nil, message.NewTenErrorFromError(err))
		}
	}
}
