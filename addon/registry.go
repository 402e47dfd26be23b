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

	"github.com/tochemey/addonhost/internal/xsync"
)

// RegisterContext is an opaque token supplied by the host and handed,
// unmodified, to every registration handler.
type RegisterContext = any

// Handler is a deferred registration action. It is built when an extension
// unit declares its addon and invoked later by the Handshake.
type Handler func(ctx context.Context, regCtx RegisterContext) error

// Registry maps addon names to their registration handlers for one load
// session. Setting an existing name replaces the handler but keeps the
// name at its first insertion position.
type Registry struct {
	handlers *xsync.OrderedMap[string, Handler]
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: xsync.NewOrderedMap[string, Handler](),
	}
}

// Set installs the handler of the named addon.
func (r *Registry) Set(name string, handler Handler) {
	r.handlers.Set(name, handler)
}

// Get returns the handler of the named addon.
func (r *Registry) Get(name string) (Handler, bool) {
	return r.handlers.Get(name)
}

// Names returns a snapshot of the registered names in insertion order.
func (r *Registry) Names() []string {
	return r.handlers.Keys()
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return r.handlers.Len()
}

// Remove drops the handler of the named addon.
func (r *Registry) Remove(name string) {
	r.handlers.Delete(name)
}

// entry is a registered handler with its addon name.
type entry struct {
	name    string
	handler Handler
}

// drain removes every handler and returns them in insertion order.
func (r *Registry) drain() []entry {
	names, handlers := r.handlers.Drain()
	entries := make([]entry, len(names))
	for i, name := range names {
		entries[i] = entry{name: name, handler: handlers[i]}
	}
	return entries
}

// RemoveAll drops every handler.
func (r *Registry) RemoveAll() {
	r.handlers.Reset()
}
