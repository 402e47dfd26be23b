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

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Cmd is a named request addressed to an extension. Every Cmd carries a
// unique id that correlates it with its single terminal result.
type Cmd struct {
	properties
	name    string
	id      string
	dest    string
	source  string
	replied *atomic.Bool
}

// NewCmd creates a command with a fresh correlation id.
func NewCmd(name string) *Cmd {
	return &Cmd{
		properties: newProperties(),
		name:       name,
		id:         uuid.NewString(),
		replied:    atomic.NewBool(false),
	}
}

// Name returns the command name.
func (c *Cmd) Name() string {
	return c.name
}

// ID returns the correlation id.
func (c *Cmd) ID() string {
	return c.id
}

// Dest returns the destination extension, empty when the command relies on routing.
func (c *Cmd) Dest() string {
	return c.dest
}

// SetDest addresses the command to the named extension.
func (c *Cmd) SetDest(extension string) *Cmd {
	c.dest = extension
	return c
}

// Source returns the name of the sending extension. It is set by the host
// when the command is sent and is empty for host-originated commands.
func (c *Cmd) Source() string {
	return c.source
}

// SetSource records the sender. Hosts call it when dispatching.
func (c *Cmd) SetSource(extension string) {
	c.source = extension
}

// Replied reports whether a result has been accepted for the command.
func (c *Cmd) Replied() bool {
	return c.replied.Load()
}

// MarkReplied records that a result has been accepted for the command and
// reports whether this call was the first one. Hosts call it when
// accepting a result.
func (c *Cmd) MarkReplied() bool {
	return c.replied.CompareAndSwap(false, true)
}

// String returns a readable form of the command.
func (c *Cmd) String() string {
	return fmt.Sprintf("cmd(name=%s, id=%s, dest=%s)", c.name, c.id, c.dest)
}
