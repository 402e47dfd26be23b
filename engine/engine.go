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
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/tochemey/addonhost/addon"
	"github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/extension"
	"github.com/tochemey/addonhost/future"
	"github.com/tochemey/addonhost/internal/errorschain"
	"github.com/tochemey/addonhost/internal/validation"
	"github.com/tochemey/addonhost/internal/xsync"
	"github.com/tochemey/addonhost/log"
	"github.com/tochemey/addonhost/message"
	"github.com/tochemey/addonhost/property"
)

// PropertyFile holds the default properties of an addon, in its base directory.
const PropertyFile = "property.json"

const (
	// DefaultPhaseTimeout bounds each lifecycle acknowledgment
	DefaultPhaseTimeout = 5 * time.Second
)

type routeKey struct {
	from string
	cmd  string
}

// registeredAddon is an addon bound by the registration handshake.
type registeredAddon struct {
	name    string
	baseDir string
	addon   extension.Addon
}

// Engine is an in-process host for extension addons.
//
// It implements addon.Host, so a loader.Loader can feed it. Once addons are
// registered, CreateExtension instantiates them, Start drives every
// instance through configure and start, and Stop through stop and deinit.
// Commands flow between instances through per-instance mailboxes.
type Engine struct {
	logger       log.Logger
	phaseTimeout time.Duration
	cmdTimeout   time.Duration
	routes       map[routeKey]string

	catalog   *xsync.OrderedMap[string, struct{}]
	addons    *xsync.OrderedMap[string, *registeredAddon]
	instances *xsync.OrderedMap[string, *instance]

	mu      sync.Mutex
	started *atomic.Bool
	stopped *atomic.Bool
}

var _ addon.Host = (*Engine)(nil)

// New creates an Engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		logger:       log.DefaultLogger,
		phaseTimeout: DefaultPhaseTimeout,
		routes:       make(map[routeKey]string),
		catalog:      xsync.NewOrderedMap[string, struct{}](),
		addons:       xsync.NewOrderedMap[string, *registeredAddon](),
		instances:    xsync.NewOrderedMap[string, *instance](),
		started:      atomic.NewBool(false),
		stopped:      atomic.NewBool(false),
	}

	for _, opt := range opts {
		opt.Apply(e)
	}

	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// AddExtensionAddonToCatalog implements addon.Host.
func (e *Engine) AddExtensionAddonToCatalog(name string) error {
	if name == "" {
		return errors.ErrAddonNameRequired
	}
	e.catalog.Set(name, struct{}{})
	e.logger.Debugf("addon %s added to the catalog", name)
	return nil
}

// RegisterAddonAsExtension implements addon.Host.
func (e *Engine) RegisterAddonAsExtension(ctx context.Context, name, baseDir string, a extension.Addon, _ addon.RegisterContext) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a == nil {
		return errors.ErrAddonDefinitionRequired
	}
	if _, ok := e.catalog.Get(name); !ok {
		return fmt.Errorf("%w: %s", errors.ErrAddonNotInCatalog, name)
	}

	e.addons.Set(name, &registeredAddon{
		name:    name,
		baseDir: baseDir,
		addon:   a,
	})
	e.logger.Infof("addon %s registered as extension (base dir=%q)", name, baseDir)
	return nil
}

// Catalog returns the cataloged addon names in declaration order.
func (e *Engine) Catalog() []string {
	return e.catalog.Keys()
}

// Addons returns the registered addon names in registration order.
func (e *Engine) Addons() []string {
	return e.addons.Keys()
}

// Extensions returns the extension instance names in creation order.
func (e *Engine) Extensions() []string {
	return e.instances.Keys()
}

// State returns the lifecycle state of the named instance.
func (e *Engine) State(name string) (extension.State, error) {
	inst, ok := e.instances.Get(name)
	if !ok {
		return extension.StateCreated, errors.NewErrExtensionNotFound(name)
	}
	return inst.State(), nil
}

// CreateExtension instantiates the named addon as the extension instanceName.
// The instance starts with the properties found in the addon base directory.
// When the engine is already started the instance is configured and started
// before CreateExtension returns.
func (e *Engine) CreateExtension(ctx context.Context, addonName, instanceName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped.Load() {
		return errors.ErrEngineStopped
	}

	if err := validation.NewNameValidator("extension name", instanceName).Validate(); err != nil {
		return err
	}

	registered, ok := e.addons.Get(addonName)
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrAddonNotFound, addonName)
	}

	if _, ok := e.instances.Get(instanceName); ok {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateExtension, instanceName)
	}

	props, err := loadProperties(registered.baseDir)
	if err != nil {
		return fmt.Errorf("extension %s: %w", instanceName, err)
	}

	ext, err := createInstance(registered, addonEnv{logger: e.logger, baseDir: registered.baseDir}, instanceName)
	if err != nil {
		return fmt.Errorf("extension %s: %w", instanceName, err)
	}

	inst := newInstance(e, instanceName, addonName, ext, props)
	e.instances.Set(instanceName, inst)
	e.logger.Infof("extension %s created from addon %s", instanceName, addonName)

	if !e.started.Load() {
		return nil
	}

	if err := inst.drive(ctx, configurePhase); err != nil {
		return err
	}
	return inst.drive(ctx, startPhase)
}

// Start configures then starts every created instance. Instances of the same
// phase run concurrently and the engine waits for all acknowledgments of a
// phase before moving to the next one.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped.Load() {
		return errors.ErrEngineStopped
	}

	if !e.started.CompareAndSwap(false, true) {
		return nil
	}

	for _, p := range []phase{configurePhase, startPhase} {
		eg, egCtx := errgroup.WithContext(ctx)
		for _, inst := range e.ordered() {
			if !inst.State().CanTransition(p.entering) {
				continue
			}
			eg.Go(func() error {
				return inst.drive(egCtx, p)
			})
		}

		if err := eg.Wait(); err != nil {
			return err
		}
	}

	e.logger.Infof("engine started with %d extension(s)", e.instances.Len())
	return nil
}

// Stop stops then deinitializes every instance, newest first. Every instance
// is given its chance even when others fail; the failures are combined.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.stopped.CompareAndSwap(false, true) {
		return nil
	}

	instances := e.ordered()
	slices.Reverse(instances)

	chain := errorschain.New(errorschain.ReturnAll())
	for _, inst := range instances {
		chain.AddErrorFnIf(ctx, inst.State() == extension.StateStarted, func(ctx context.Context) error {
			return inst.drive(ctx, stopPhase)
		})
	}

	for _, inst := range instances {
		state := inst.State()
		if !state.CanTransition(extension.StateDeinitializing) {
			if !state.IsTerminal() {
				e.logger.Warnf("extension %s left in state %s", inst.name, state)
			}
			continue
		}
		chain.AddErrorFn(func() error {
			return inst.drive(ctx, deinitPhase)
		})
	}

	for _, inst := range instances {
		inst.abandon()
	}

	e.logger.Info("engine stopped")
	return chain.Error()
}

// SendCmd sends a command on behalf of the engine itself. The returned
// future fails with a *message.TenError when the command cannot be delivered.
func (e *Engine) SendCmd(ctx context.Context, cmd *message.Cmd) future.Future[*message.CmdResult] {
	if err := ctx.Err(); err != nil {
		return future.Failed[*message.CmdResult](message.NewTenErrorFromError(err))
	}

	if err := validateCmd(cmd); err != nil {
		return future.Failed[*message.CmdResult](message.NewTenErrorFromError(err))
	}

	switch {
	case e.stopped.Load():
		return future.Failed[*message.CmdResult](message.NewTenErrorFromError(errors.ErrEngineStopped))
	case !e.started.Load():
		return future.Failed[*message.CmdResult](message.NewTenErrorFromError(errors.ErrEngineNotStarted))
	}

	promise := future.NewPromise[*message.CmdResult]()
	e.dispatch("", cmd, settle(promise))
	return promise.Future()
}

// dispatch routes cmd from the named sender to its target. deliver is
// called exactly once with the outcome.
func (e *Engine) dispatch(from string, cmd *message.Cmd, deliver func(*message.CmdResult, *message.TenError)) {
	cmd.SetSource(from)
	req := newRequest(cmd.ID(), deliver)

	target, err := e.target(from, cmd)
	if err != nil {
		req.complete(nil, message.NewTenErrorFromError(err))
		return
	}

	if !target.inbound.SetIfAbsent(cmd.ID(), req) {
		req.complete(nil, message.NewTenErrorFromError(fmt.Errorf("%w: %s", errors.ErrCmdInFlight, cmd)))
		return
	}

	req.startTimeout(e.cmdTimeout, func() {
		target.inbound.Delete(cmd.ID())
	})
	target.deliver(cmd)
}

func (e *Engine) target(from string, cmd *message.Cmd) (*instance, error) {
	dest := cmd.Dest()
	if dest == "" {
		dest = e.routes[routeKey{from: from, cmd: cmd.Name()}]
	}
	if dest == "" {
		return nil, fmt.Errorf("%w: %s", errors.ErrNoDestination, cmd)
	}

	inst, ok := e.instances.Get(dest)
	if !ok {
		return nil, errors.NewErrExtensionNotFound(dest)
	}

	if state := inst.State(); !state.AcceptsCommands() {
		return nil, fmt.Errorf("%w: %s is %s", errors.ErrExtensionNotRunning, dest, state)
	}
	return inst, nil
}

func (e *Engine) ordered() []*instance {
	names := e.instances.Keys()
	instances := make([]*instance, 0, len(names))
	for _, name := range names {
		if inst, ok := e.instances.Get(name); ok {
			instances = append(instances, inst)
		}
	}
	return instances
}

func (e *Engine) validate() error {
	chain := validation.New(validation.AllErrors()).
		AddAssertion(e.logger != nil, "logger is required").
		AddAssertion(e.phaseTimeout > 0, "phase timeout must be greater than zero").
		AddAssertion(e.cmdTimeout >= 0, "command timeout must not be negative")

	for key, to := range e.routes {
		chain.
			AddValidator(validation.NewEmptyStringValidator("route command", key.cmd)).
			AddValidator(validation.NewNameValidator("route destination", to))
	}
	return chain.Validate()
}

// loadProperties reads the default properties of an addon.
// A missing base directory or property file yields an empty tree.
func loadProperties(baseDir string) (*property.Property, error) {
	if baseDir == "" {
		return property.New(), nil
	}

	data, err := os.ReadFile(filepath.Join(baseDir, PropertyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return property.New(), nil
		}
		return nil, err
	}

	props, err := property.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(baseDir, PropertyFile), err)
	}
	return props, nil
}

func createInstance(registered *registeredAddon, env extension.AddonEnv, name string) (ext extension.Extension, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewPanicErrorFromRecover(r)
		}
	}()

	ext, err = registered.addon.OnCreateInstance(env, name)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, fmt.Errorf("addon %s created no extension", registered.name)
	}
	return ext, nil
}
