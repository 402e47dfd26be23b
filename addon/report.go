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
	"slices"
	"sync"

	"go.uber.org/multierr"
)

// Stage names the step of a load session an Outcome belongs to.
type Stage int

const (
	// StageSkip marks an extension directory that is not a declared dependency
	StageSkip Stage = iota
	// StageLoad marks the resolution and loading of an extension unit
	StageLoad
	// StageRegister marks the invocation of a registration handler
	StageRegister
)

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case StageSkip:
		return "skip"
	case StageLoad:
		return "load"
	case StageRegister:
		return "register"
	default:
		return "unknown"
	}
}

// Outcome is the result of one item of a load session.
type Outcome struct {
	Name  string
	Stage Stage
	Err   error
}

// Failed reports whether the item failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Report collects the per-item outcomes of a load session.
// Failures are recorded, never raised, so one bad item cannot stop the others.
type Report struct {
	mu       sync.RWMutex
	outcomes []Outcome
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add records an outcome.
func (r *Report) Add(outcome Outcome) {
	r.mu.Lock()
	r.outcomes = append(r.outcomes, outcome)
	r.mu.Unlock()
}

// Merge appends the outcomes of other.
func (r *Report) Merge(other *Report) *Report {
	if other == nil {
		return r
	}
	outcomes := other.Outcomes()
	r.mu.Lock()
	r.outcomes = append(r.outcomes, outcomes...)
	r.mu.Unlock()
	return r
}

// Outcomes returns every recorded outcome in recording order.
func (r *Report) Outcomes() []Outcome {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.outcomes)
}

// Names returns the names of the successful outcomes of the given stage.
func (r *Report) Names(stage Stage) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for _, outcome := range r.outcomes {
		if outcome.Stage == stage && !outcome.Failed() {
			names = append(names, outcome.Name)
		}
	}
	return names
}

// Failures returns the failed outcomes.
func (r *Report) Failures() []Outcome {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var failures []Outcome
	for _, outcome := range r.outcomes {
		if outcome.Failed() {
			failures = append(failures, outcome)
		}
	}
	return failures
}

// Err combines every recorded failure, nil when all items succeeded.
func (r *Report) Err() error {
	var err error
	for _, failure := range r.Failures() {
		err = multierr.Append(err, failure.Err)
	}
	return err
}
