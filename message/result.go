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

import "fmt"

// StatusCode is the outcome of a command.
type StatusCode int

const (
	// StatusOK marks a command that succeeded
	StatusOK StatusCode = iota
	// StatusError marks a command that the receiving extension rejected
	StatusError
)

// String returns the status name
func (s StatusCode) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusError:
		return "ERROR"
	default:
		return fmt.Sprintf("StatusCode(%d)", int(s))
	}
}

// CmdResult is the terminal answer to exactly one Cmd.
type CmdResult struct {
	properties
	status StatusCode
	cmd    *Cmd
}

// NewCmdResult creates the result of the given command.
func NewCmdResult(status StatusCode, cmd *Cmd) *CmdResult {
	return &CmdResult{
		properties: newProperties(),
		status:     status,
		cmd:        cmd,
	}
}

// StatusCode returns the result status.
func (r *CmdResult) StatusCode() StatusCode {
	return r.status
}

// Cmd returns the originating command.
func (r *CmdResult) Cmd() *Cmd {
	return r.cmd
}

// CmdID returns the correlation id of the originating command.
func (r *CmdResult) CmdID() string {
	if r.cmd == nil {
		return ""
	}
	return r.cmd.ID()
}

// CmdName returns the name of the originating command.
func (r *CmdResult) CmdName() string {
	if r.cmd == nil {
		return ""
	}
	return r.cmd.Name()
}

// String returns a readable form of the result.
func (r *CmdResult) String() string {
	return fmt.Sprintf("result(status=%s, cmd=%s, id=%s)", r.status, r.CmdName(), r.CmdID())
}
