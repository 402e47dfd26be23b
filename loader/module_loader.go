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

	"github.com/tochemey/addonhost/addon"
	"github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/log"
)

// ModuleLoader resolves extension units and loads them into a Registrar.
// Loading is best effort: a failing unit is reported and never stops the
// caller from loading the next one.
type ModuleLoader struct {
	resolver  Resolver
	registrar *addon.Registrar
	logger    log.Logger
}

// NewModuleLoader creates a ModuleLoader.
func NewModuleLoader(resolver Resolver, registrar *addon.Registrar, logger log.Logger) *ModuleLoader {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &ModuleLoader{
		resolver:  resolver,
		registrar: registrar,
		logger:    logger,
	}
}

// Load resolves the unit known as qualifiedName and runs it.
func (l *ModuleLoader) Load(ctx context.Context, qualifiedName, shortName, unitDir string) addon.Outcome {
	outcome := addon.Outcome{Name: shortName, Stage: addon.StageLoad}
	if err := l.load(ctx, qualifiedName, shortName, unitDir); err != nil {
		outcome.Err = errors.NewErrModuleResolution(qualifiedName, err)
		l.logger.Errorf("Error importing module %s: %v", shortName, outcome.Err)
		return outcome
	}

	l.logger.Infof("Imported module: %s", shortName)
	return outcome
}

func (l *ModuleLoader) load(ctx context.Context, qualifiedName, shortName, unitDir string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewPanicErrorFromRecover(r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	unit, err := l.resolver.Resolve(ctx, qualifiedName, shortName, unitDir)
	if err != nil {
		return err
	}
	return unit.Load(l.registrar.ForUnit(unitDir))
}
