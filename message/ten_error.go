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

package message

import (
	stderrors "errors"
	"fmt"

	"github.com/tochemey/addonhost/errors"
)

// ErrorCode classifies a TenError.
type ErrorCode int

const (
	// ErrCodeGeneric is any failure that has no dedicated code
	ErrCodeGeneric ErrorCode = iota + 1
	// ErrCodeInvalidArgument marks a malformed command
	ErrCodeInvalidArgument
	// ErrCodeNotFound marks an unknown destination
	ErrCodeNotFound
	// ErrCodeNotRunning marks a destination that does not accept commands
	ErrCodeNotRunning
	// ErrCodeTimeout marks a command that got no result in time
	ErrCodeTimeout
)

// TenError is the delivery failure of a command. A command completes with
// either a CmdResult or a TenError, never both.
type TenError struct {
	Code    ErrorCode
	Message string
	cause   error
}

var _ error = (*TenError)(nil)

// NewTenError creates a TenError.
func NewTenError(code ErrorCode, message string) *TenError {
	return &TenError{Code: code, Message: message}
}

// NewTenErrorFromError classifies err and wraps it into a TenError.
func NewTenErrorFromError(err error) *TenError {
	var tenErr *TenError
	if stderrors.As(err, &tenErr) {
		return tenErr
	}

	code := ErrCodeGeneric
	switch {
	case stderrors.Is(err, errors.ErrCmdTimeout):
		code = ErrCodeTimeout
	case stderrors.Is(err, errors.ErrExtensionNotFound),
		stderrors.Is(err, errors.ErrNoDestination):
		code = ErrCodeNotFound
	case stderrors.Is(err, errors.ErrExtensionNotRunning),
		stderrors.Is(err, errors.ErrEngineStopped),
		stderrors.Is(err, errors.ErrEngineNotStarted):
		code = ErrCodeNotRunning
	case stderrors.Is(err, errors.ErrNilCmd),
		stderrors.Is(err, errors.ErrInvalidCmdName),
		stderrors.Is(err, errors.ErrCmdInFlight):
		code = ErrCodeInvalidArgument
	}
	return &TenError{Code: code, Message: err.Error(), cause: err}
}

// Error implements the standard error interface
func (e *TenError) Error() string {
	return fmt.Sprintf("ten error (code=%d): %s", e.Code, e.Message)
}

func (e *TenError) Unwrap() error {
	return e.cause
}
