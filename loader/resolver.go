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

package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"plugin"

	"go.uber.org/multierr"

	"github.com/tochemey/addonhost/addon"
	"github.com/tochemey/addonhost/internal/xsync"
)

// Unit is a loadable extension package. Loading a unit declares its addons
// through the Registrar.
type Unit interface {
	Load(registrar *addon.Registrar) error
}

// UnitFunc adapts a function into a Unit.
type UnitFunc func(registrar *addon.Registrar) error

// Load implements Unit.
func (f UnitFunc) Load(registrar *addon.Registrar) error {
	return f(registrar)
}

// Resolver finds the unit of an extension package.
type Resolver interface {
	// Resolve returns the unit known as qualifiedName. shortName is the
	// package directory name and unitDir its location on disk.
	Resolve(ctx context.Context, qualifiedName, shortName, unitDir string) (Unit, error)
}

// provided holds the units compiled into the binary.
var provided = xsync.NewMap[string, Unit]()

// Provide makes a compiled-in unit resolvable by every StaticResolver.
// Extension packages call it from an init function:
//
//	func init() {
//	    loader.Provide("ten_packages.extension.greeter", loader.UnitFunc(register))
//	}
func Provide(qualifiedName string, unit Unit) {
	provided.Set(qualifiedName, unit)
}

// StaticResolver resolves units registered in the process, either through
// Provide or through Add.
type StaticResolver struct {
	units *xsync.Map[string, Unit]
}

var _ Resolver = (*StaticResolver)(nil)

// NewStaticResolver creates a StaticResolver.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{units: xsync.NewMap[string, Unit]()}
}

// Add makes a unit resolvable by this resolver only.
func (r *StaticResolver) Add(qualifiedName string, unit Unit) *StaticResolver {
	r.units.Set(qualifiedName, unit)
	return r
}

// Resolve implements Resolver.
func (r *StaticResolver) Resolve(_ context.Context, qualifiedName, _, _ string) (Unit, error) {
	if unit, ok := r.units.Get(qualifiedName); ok {
		return unit, nil
	}
	if unit, ok := provided.Get(qualifiedName); ok {
		return unit, nil
	}
	return nil, fmt.Errorf("no compiled-in unit named %s", qualifiedName)
}

// PluginSymbol is the symbol a plugin unit exports.
const PluginSymbol = "Register"

// PluginResolver opens <unitDir>/<shortName>.so built with
// -buildmode=plugin and uses its exported Register function as the unit.
type PluginResolver struct{}

var _ Resolver = PluginResolver{}

// Resolve implements Resolver.
func (PluginResolver) Resolve(_ context.Context, _, shortName, unitDir string) (Unit, error) {
	path := filepath.Join(unitDir, shortName+".so")
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}

	symbol, err := p.Lookup(PluginSymbol)
	if err != nil {
		return nil, err
	}

	switch register := symbol.(type) {
	case func(*addon.Registrar) error:
		return UnitFunc(register), nil
	case *func(*addon.Registrar) error:
		return UnitFunc(*register), nil
	default:
		return nil, fmt.Errorf("%s: symbol %s has type %T", path, PluginSymbol, symbol)
	}
}

// ChainResolver tries its resolvers in order and returns the first unit found.
type ChainResolver []Resolver

var _ Resolver = ChainResolver(nil)

// Resolve implements Resolver.
func (c ChainResolver) Resolve(ctx context.Context, qualifiedName, shortName, unitDir string) (Unit, error) {
	var errs error
	for _, resolver := range c {
		unit, err := resolver.Resolve(ctx, qualifiedName, shortName, unitDir)
		if err == nil {
			return unit, nil
		}
		errs = multierr.Append(errs, err)
	}
	if errs == nil {
		return nil, fmt.Errorf("no resolver configured for %s", qualifiedName)
	}
	return nil, errs
}
