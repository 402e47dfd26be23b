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
	"os"
	"path/filepath"

	"github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/extension"
	"github.com/tochemey/addonhost/internal/validation"
	"github.com/tochemey/addonhost/log"
)

// Registrar is what an extension unit uses to declare its addons.
//
// Declaring an addon catalogs its name with the Host right away and stores
// a registration Handler in the session Registry. The Handler binds the
// addon to the Host when the Handshake runs.
type Registrar struct {
	registry *Registry
	host     Host
	logger   log.Logger
	unitDir  string
}

// NewRegistrar creates a Registrar feeding the given registry and host.
func NewRegistrar(registry *Registry, host Host, logger log.Logger) *Registrar {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Registrar{
		registry: registry,
		host:     host,
		logger:   logger,
	}
}

// ForUnit returns a Registrar whose default base directory is the directory
// the unit was loaded from.
func (r *Registrar) ForUnit(unitDir string) *Registrar {
	clone := *r
	clone.unitDir = unitDir
	return &clone
}

// UnitDir returns the directory of the unit being loaded, empty when unknown.
func (r *Registrar) UnitDir() string {
	return r.unitDir
}

// RegisterAsExtension declares an extension addon.
//
// The base directory handed to the Host is, in order of precedence: the
// WithBaseDir option (the directory of the path when it names a file), the
// directory of the unit being loaded, or empty when neither is known.
func (r *Registrar) RegisterAsExtension(name string, def extension.Definition, opts ...RegisterOption) error {
	chain := validation.
		New(validation.FailFast()).
		AddValidator(validation.NewAssertionValidator(r.host != nil, errors.ErrHostRequired)).
		AddValidator(validation.NewAssertionValidator(name != "", errors.ErrAddonNameRequired)).
		AddValidator(validation.NewAssertionValidator(def != nil, errors.ErrAddonDefinitionRequired))
	if err := chain.Validate(); err != nil {
		return err
	}

	config := newRegisterConfig(opts...)
	baseDir := resolveBaseDir(config.baseDir, r.unitDir)
	host := r.host
	logger := r.logger

	r.registry.Set(name, func(ctx context.Context, regCtx RegisterContext) error {
		instance := def()
		if instance == nil {
			err := errors.NewErrRegistrationFailure(name, errors.ErrAddonDefinitionRequired)
			logger.Errorf("Failed to register addon '%s': %v", name, err)
			return err
		}

		if err := host.RegisterAddonAsExtension(ctx, name, baseDir, instance, regCtx); err != nil {
			err = errors.NewErrRegistrationFailure(name, err)
			logger.Errorf("Failed to register addon '%s': %v", name, err)
			return err
		}
		return nil
	})

	if err := host.AddExtensionAddonToCatalog(name); err != nil {
		return err
	}

	r.logger.Debugf("addon '%s' declared (base dir=%q)", name, baseDir)
	return nil
}

func resolveBaseDir(explicit, unitDir string) string {
	if explicit == "" {
		return unitDir
	}
	if info, err := os.Stat(explicit); err == nil && !info.IsDir() {
		return filepath.Dir(explicit)
	}
	return filepath.Clean(explicit)
}
