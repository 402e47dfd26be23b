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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/addonhost/errors"
)

func TestCmd(t *testing.T) {
	cmd := NewCmd("hello").SetDest("simple_echo")
	other := NewCmd("hello")

	assert.Equal(t, "hello", cmd.Name())
	assert.Equal(t, "simple_echo", cmd.Dest())
	assert.NotEmpty(t, cmd.ID())
	assert.NotEqual(t, cmd.ID(), other.ID())
	assert.Empty(t, cmd.Source())

	cmd.SetSource("greeter")
	assert.Equal(t, "greeter", cmd.Source())

	require.NoError(t, cmd.SetPropertyString("name", "nbnb"))
	name, err := cmd.GetPropertyString("name")
	require.NoError(t, err)
	assert.Equal(t, "nbnb", name)

	require.NoError(t, cmd.SetPropertyFromJSON("detail", `{"n":1}`))
	raw, err := cmd.GetPropertyToJSON("detail")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, raw)

	_, err = cmd.GetPropertyInt64("missing")
	require.ErrorIs(t, err, errors.ErrPropertyNotFound)

	assert.False(t, cmd.Replied())
	assert.True(t, cmd.MarkReplied())
	assert.False(t, cmd.MarkReplied())
	assert.True(t, cmd.Replied())
}

func TestCmdResult(t *testing.T) {
	cmd := NewCmd("greet")
	result := NewCmdResult(StatusOK, cmd)

	assert.Equal(t, StatusOK, result.StatusCode())
	assert.Equal(t, cmd.ID(), result.CmdID())
	assert.Equal(t, "greet", result.CmdName())
	assert.Same(t, cmd, result.Cmd())

	require.NoError(t, result.SetPropertyInt64("count", 3))
	count, err := result.GetPropertyInt64("count")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	orphan := NewCmdResult(StatusError, nil)
	assert.Empty(t, orphan.CmdID())
	assert.Equal(t, "ERROR", orphan.StatusCode().String())
	assert.Equal(t, "StatusCode(9)", StatusCode(9).String())
}

func TestTenError(t *testing.T) {
	t.Run("classification", func(t *testing.T) {
		cases := []struct {
			err  error
			code ErrorCode
		}{
			{errors.ErrCmdTimeout, ErrCodeTimeout},
			{errors.NewErrExtensionNotFound("x"), ErrCodeNotFound},
			{errors.ErrNoDestination, ErrCodeNotFound},
			{fmt.Errorf("wrapped: %w", errors.ErrExtensionNotRunning), ErrCodeNotRunning},
			{errors.ErrInvalidCmdName, ErrCodeInvalidArgument},
			{assert.AnError, ErrCodeGeneric},
		}
		for _, c := range cases {
			tenErr := NewTenErrorFromError(c.err)
			assert.Equal(t, c.code, tenErr.Code, c.err.Error())
			assert.ErrorIs(t, tenErr, c.err)
		}
	})
	t.Run("already a TenError", func(t *testing.T) {
		original := NewTenError(ErrCodeTimeout, "late")
		assert.Same(t, original, NewTenErrorFromError(fmt.Errorf("ctx: %w", original)))
		assert.EqualError(t, original, "ten error (code=5): late")
	})
}
