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
	"os"
	"path/filepath"

	"github.com/tochemey/addonhost/addon"
	"github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/internal/validation"
	"github.com/tochemey/addonhost/log"
	"github.com/tochemey/addonhost/manifest"
)

// Loader runs a load session: it locates the application, reads its
// manifest, loads the extension packages the manifest depends on and
// finally hands the collected registrations to the Host.
type Loader struct {
	host         addon.Host
	startDir     string
	resolver     Resolver
	logger       log.Logger
	extensionDir string

	baseDir   string
	registry  *addon.Registry
	handshake *addon.Handshake
}

// New creates a Loader feeding the given host.
func New(host addon.Host, opts ...Option) (*Loader, error) {
	l := &Loader{
		host:         host,
		resolver:     NewStaticResolver(),
		logger:       log.DefaultLogger,
		extensionDir: ExtensionDir,
		registry:     addon.NewRegistry(),
	}

	for _, opt := range opts {
		opt.Apply(l)
	}

	if err := l.validate(); err != nil {
		return nil, err
	}

	if l.startDir == "" {
		executable, err := os.Executable()
		if err != nil {
			return nil, err
		}
		l.startDir = filepath.Dir(executable)
	}

	l.handshake = addon.NewHandshake(l.registry, l.logger)
	return l, nil
}

// LoadAll locates the app base directory, reads the app manifest and loads
// every extension package the manifest depends on. Only a missing app
// manifest fails the session; unit failures are recorded in the report.
func (l *Loader) LoadAll(ctx context.Context) (*addon.Report, error) {
	baseDir, err := manifest.FindAppBaseDir(l.startDir)
	if err != nil {
		return nil, err
	}

	app, err := manifest.Load(filepath.Join(baseDir, manifest.FileName))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrManifestNotFound, err)
	}

	l.baseDir = baseDir
	l.logger.Debugf("app base directory: %s", baseDir)

	registrar := addon.NewRegistrar(l.registry, l.host, l.logger)
	modules := NewModuleLoader(l.resolver, registrar, l.logger)
	discovery := NewDiscovery(modules, l.extensionDir, l.logger)
	return discovery.Scan(ctx, baseDir, manifest.ExtensionNames(app))
}

// Register runs the registration handshake over the addons declared so far.
func (l *Loader) Register(ctx context.Context, regCtx addon.RegisterContext) *addon.Report {
	return l.handshake.RegisterAll(ctx, regCtx)
}

// RegisterOne runs the registration handler of a single addon.
func (l *Loader) RegisterOne(ctx context.Context, name string, regCtx addon.RegisterContext) addon.Outcome {
	return l.handshake.RegisterOne(ctx, name, regCtx)
}

// BaseDir returns the app base directory found by the last LoadAll.
func (l *Loader) BaseDir() string {
	return l.baseDir
}

// Registry returns the session registry.
func (l *Loader) Registry() *addon.Registry {
	return l.registry
}

func (l *Loader) validate() error {
	return validation.New(validation.FailFast()).
		AddValidator(validation.NewAssertionValidator(l.host != nil, errors.ErrHostRequired)).
		AddAssertion(l.resolver != nil, "resolver is required").
		AddAssertion(l.logger != nil, "logger is required").
		AddValidator(validation.NewEmptyStringValidator("extension dir", l.extensionDir)).
		Validate()
}
