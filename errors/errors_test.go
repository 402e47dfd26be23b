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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("something went wrong")

	resolutionErr := NewErrModuleResolution("ten_packages.extension.foo", cause)
	require.EqualError(t, resolutionErr, "cannot find module ten_packages.extension.foo: something went wrong")
	assert.ErrorIs(t, resolutionErr, ErrModuleResolution)
	assert.ErrorIs(t, resolutionErr, cause)

	registrationErr := NewErrRegistrationFailure("foo", cause)
	require.EqualError(t, registrationErr, "addon registration failed: addon 'foo': something went wrong")
	assert.ErrorIs(t, registrationErr, ErrRegistrationFailure)
	assert.ErrorIs(t, registrationErr, cause)

	assert.ErrorIs(t, NewErrMissingHandler("foo"), ErrMissingHandler)
	assert.ErrorIs(t, NewErrPropertyNotFound("a.b"), ErrPropertyNotFound)
	assert.ErrorIs(t, NewErrExtensionNotFound("ext"), ErrExtensionNotFound)
}

func TestPanicError(t *testing.T) {
	cause := errors.New("boom")
	panicErr := NewPanicError(cause)
	require.EqualError(t, panicErr, "panic: boom")
	assert.ErrorIs(t, panicErr, cause)

	fromValue := NewPanicErrorFromRecover("kaboom")
	require.EqualError(t, fromValue, "panic: kaboom")

	fromErr := NewPanicErrorFromRecover(cause)
	assert.ErrorIs(t, fromErr, cause)
}
