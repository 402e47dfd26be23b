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

package addon

import (
	"context"
	"sync"

	"github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/log"
)

// Handshake runs the registration handlers collected in a Registry.
type Handshake struct {
	mu       sync.Mutex
	registry *Registry
	logger   log.Logger
}

// NewHandshake creates a Handshake over the given registry.
func NewHandshake(registry *Registry, logger log.Logger) *Handshake {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Handshake{
		registry: registry,
		logger:   logger,
	}
}

// RegisterAll takes every handler out of the registry in one step, then
// invokes them in registration order. Handlers installed while the pass
// runs stay in the registry for the next pass. A failing or panicking
// handler is recorded in the returned Report and does not stop the pass.
func (h *Handshake) RegisterAll(ctx context.Context, regCtx RegisterContext) *Report {
	h.mu.Lock()
	defer h.mu.Unlock()

	report := NewReport()
	for _, e := range h.registry.drain() {
		report.Add(h.run(ctx, e.name, e.handler, regCtx))
	}
	return report
}

// RegisterOne invokes the handler of the named addon. The handler stays in
// the registry.
func (h *Handshake) RegisterOne(ctx context.Context, name string, regCtx RegisterContext) Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	handler, ok := h.registry.Get(name)
	if !ok {
		h.logger.Warnf("No register handler found for addon '%s'", name)
		return Outcome{Name: name, Stage: StageRegister, Err: errors.NewErrMissingHandler(name)}
	}
	return h.run(ctx, name, handler, regCtx)
}

func (h *Handshake) run(ctx context.Context, name string, handler Handler, regCtx RegisterContext) Outcome {
	err := invoke(ctx, handler, regCtx)
	if err != nil {
		h.logger.Errorf("Error during registration of addon '%s': %v", name, err)
		return Outcome{Name: name, Stage: StageRegister, Err: err}
	}
	h.logger.Infof("Successfully registered addon '%s'", name)
	return Outcome{Name: name, Stage: StageRegister}
}

func invoke(ctx context.Context, handler Handler, regCtx RegisterContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewPanicErrorFromRecover(r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return err
	}
	return handler(ctx, regCtx)
}
