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
	"fmt"
	"sync"
	"time"

	"github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/message"
)

// request tracks a single in-flight command until its terminal outcome.
type request struct {
	id      string
	deliver func(*message.CmdResult, *message.TenError)

	mu        sync.Mutex
	completed bool
	timer     *time.Timer
}

func newRequest(id string, deliver func(*message.CmdResult, *message.TenError)) *request {
	return &request{
		id:      id,
		deliver: deliver,
	}
}

// complete delivers the outcome. Only the first call delivers; it reports
// whether this call was the one.
func (r *request) complete(result *message.CmdResult, tenErr *message.TenError) bool {
	r.mu.Lock()
	if r.completed {
		r.mu.Unlock()
		return false
	}
	r.completed = true
	timer := r.timer
	r.timer = nil
	r.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	r.deliver(result, tenErr)
	return true
}

// startTimeout fails the request with a timeout error once timeout elapses.
// onTimeout runs after the failure has been delivered.
func (r *request) startTimeout(timeout time.Duration, onTimeout func()) {
	if timeout <= 0 {
		return
	}

	timer := time.AfterFunc(timeout, func() {
		err := fmt.Errorf("%w: %s got no result within %s", errors.ErrCmdTimeout, r.id, timeout)
		if r.complete(nil, message.NewTenErrorFromError(err)) {
			onTimeout()
		}
	})

	r.mu.Lock()
	if r.completed {
		r.mu.Unlock()
		timer.Stop()
		return
	}
	r.timer = timer
	r.mu.Unlock()
}
