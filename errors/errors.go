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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestNotFound is returned when no ancestor directory holds an application manifest.
	// It is the only failure that aborts a load session.
	ErrManifestNotFound = errors.New("app base directory with a valid manifest.json not found")

	// ErrManifestParse is returned when a manifest file cannot be decoded.
	// The manifest locator tolerates it and keeps ascending.
	ErrManifestParse = errors.New("failed to parse manifest")

	// ErrModuleResolution is returned when an extension unit cannot be resolved or loaded.
	ErrModuleResolution = errors.New("cannot find module")

	// ErrRegistrationFailure is returned when the host rejects an addon registration.
	ErrRegistrationFailure = errors.New("addon registration failed")

	// ErrMissingHandler is returned when no registration handler exists for an addon name.
	ErrMissingHandler = errors.New("no register handler found")

	// ErrAddonNameRequired is returned when an addon is registered with an empty name.
	ErrAddonNameRequired = errors.New("addon name is required")

	// ErrAddonDefinitionRequired is returned when an addon is registered without a definition.
	ErrAddonDefinitionRequired = errors.New("addon definition is required")

	// ErrAddonNotInCatalog is returned when the host is asked to register an addon it never cataloged.
	ErrAddonNotInCatalog = errors.New("addon is not in the catalog")

	// ErrAddonNotFound is returned when an extension is created from an unknown addon.
	ErrAddonNotFound = errors.New("addon not found")

	// ErrHostRequired is returned when a registrar is built without a host.
	ErrHostRequired = errors.New("host is required")

	// ErrDuplicateExtension is returned when an extension instance name is already taken.
	ErrDuplicateExtension = errors.New("extension already exists")

	// ErrExtensionNotFound is returned when a command targets an unknown extension instance.
	ErrExtensionNotFound = errors.New("extension not found")

	// ErrExtensionNotRunning is returned when a command reaches an extension that is not started.
	ErrExtensionNotRunning = errors.New("extension is not running")

	// ErrInvalidPhaseTransition is returned when a lifecycle acknowledgment does not match the current phase.
	ErrInvalidPhaseTransition = errors.New("invalid lifecycle phase transition")

	// ErrPhaseTimeout is returned when an extension does not acknowledge a lifecycle phase in time.
	ErrPhaseTimeout = errors.New("lifecycle phase acknowledgment timed out")

	// ErrNilCmd is returned when a nil command is sent.
	ErrNilCmd = errors.New("command is nil")

	// ErrInvalidCmdName is returned when a command has an empty name.
	ErrInvalidCmdName = errors.New("command name is required")

	// ErrNoDestination is returned when a command has neither an explicit destination nor a route.
	ErrNoDestination = errors.New("command has no destination")

	// ErrNilResult is returned when a nil command result is returned.
	ErrNilResult = errors.New("command result is nil")

	// ErrResultAlreadyReturned is returned when a second result is returned for the same command.
	ErrResultAlreadyReturned = errors.New("result already returned for command")

	// ErrCmdInFlight is returned when a command is sent again while its first delivery is pending.
	ErrCmdInFlight = errors.New("command is already in flight")

	// ErrUnknownCommand is returned when a result references a command that is not pending.
	ErrUnknownCommand = errors.New("command is not pending")

	// ErrCmdTimeout is returned when a command receives no result within the configured timeout.
	ErrCmdTimeout = errors.New("command timed out")

	// ErrEngineNotStarted is returned when the engine is used before Start.
	ErrEngineNotStarted = errors.New("engine is not started")

	// ErrEngineStopped is returned when the engine is used after Stop.
	ErrEngineStopped = errors.New("engine is stopped")

	// ErrPropertyNotFound is returned when a property path does not exist.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyTypeMismatch is returned when a property exists with a different JSON type.
	ErrPropertyTypeMismatch = errors.New("property type mismatch")

	// ErrInvalidPropertyPath is returned when a property path cannot be parsed.
	ErrInvalidPropertyPath = errors.New("invalid property path")

	// ErrInvalidJSON is returned when JSON text handed over the boundary is not valid.
	ErrInvalidJSON = errors.New("invalid json")
)

// NewErrModuleResolution wraps the cause of a unit resolution failure.
func NewErrModuleResolution(module string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrModuleResolution, module, err)
}

// NewErrRegistrationFailure wraps the cause of a rejected addon registration.
func NewErrRegistrationFailure(name string, err error) error {
	return fmt.Errorf("%w: addon '%s': %w", ErrRegistrationFailure, name, err)
}

// NewErrMissingHandler returns ErrMissingHandler for the given addon.
func NewErrMissingHandler(name string) error {
	return fmt.Errorf("%w for addon '%s'", ErrMissingHandler, name)
}

// NewErrPropertyNotFound returns ErrPropertyNotFound for the given path.
func NewErrPropertyNotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrPropertyNotFound, path)
}

// NewErrExtensionNotFound returns ErrExtensionNotFound for the given instance name.
func NewErrExtensionNotFound(name string) error {
	return fmt.Errorf("%w: %s", ErrExtensionNotFound, name)
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// NewPanicErrorFromRecover builds a PanicError out of a recovered value.
func NewPanicErrorFromRecover(r any) *PanicError {
	if err, ok := r.(error); ok {
		return NewPanicError(err)
	}
	return NewPanicError(fmt.Errorf("%v", r))
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
