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

package testkit

import (
	"context"
	"slices"
	"sync"

	"github.com/tochemey/addonhost/addon"
	"github.com/tochemey/addonhost/extension"
)

// Registration is one RegisterAddonAsExtension call recorded by Host.
type Registration struct {
	Name    string
	BaseDir string
	Addon   extension.Addon
	RegCtx  addon.RegisterContext
}

// Host is a recording addon.Host.
type Host struct {
	mu            sync.Mutex
	catalog       []string
	registrations []Registration
	catalogErrs   map[string]error
	registerErrs  map[string]error
}

var _ addon.Host = (*Host)(nil)

// NewHost creates an empty recording Host.
func NewHost() *Host {
	return &Host{
		catalogErrs:  make(map[string]error),
		registerErrs: make(map[string]error),
	}
}

// FailCatalog makes cataloging the named addon fail with err.
func (h *Host) FailCatalog(name string, err error) *Host {
	h.mu.Lock()
	h.catalogErrs[name] = err
	h.mu.Unlock()
	return h
}

// FailRegistration makes registering the named addon fail with err.
func (h *Host) FailRegistration(name string, err error) *Host {
	h.mu.Lock()
	h.registerErrs[name] = err
	h.mu.Unlock()
	return h
}

// AddExtensionAddonToCatalog records the name.
func (h *Host) AddExtensionAddonToCatalog(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.catalogErrs[name]; err != nil {
		return err
	}
	h.catalog = append(h.catalog, name)
	return nil
}

// RegisterAddonAsExtension records the registration.
func (h *Host) RegisterAddonAsExtension(_ context.Context, name, baseDir string, a extension.Addon, regCtx addon.RegisterContext) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.registerErrs[name]; err != nil {
		return err
	}
	h.registrations = append(h.registrations, Registration{
		Name:    name,
		BaseDir: baseDir,
		Addon:   a,
		RegCtx:  regCtx,
	})
	return nil
}

// Catalog returns the cataloged names in call order.
func (h *Host) Catalog() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.catalog)
}

// Registrations returns the recorded registrations in call order.
func (h *Host) Registrations() []Registration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.registrations)
}

// RegistrationCount returns how many times the named addon was registered.
func (h *Host) RegistrationCount(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	count := 0
	for _, registration := range h.registrations {
		if registration.Name == name {
			count++
		}
	}
	return count
}

// Registration returns the last registration of the named addon.
func (h *Host) Registration(name string) (Registration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.registrations) - 1; i >= 0; i-- {
		if h.registrations[i].Name == name {
			return h.registrations[i], true
		}
	}
	return Registration{}, false
}
