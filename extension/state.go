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

package extension

// State is a lifecycle phase of an extension instance.
type State int

const (
	StateCreated State = iota
	StateConfiguring
	StateConfigured
	StateStarting
	StateStarted
	StateStopping
	StateStopped
	StateDeinitializing
	StateDeinited
)

var stateNames = map[State]string{
	StateCreated:        "Created",
	StateConfiguring:    "Configuring",
	StateConfigured:     "Configured",
	StateStarting:       "Starting",
	StateStarted:        "Started",
	StateStopping:       "Stopping",
	StateStopped:        "Stopped",
	StateDeinitializing: "Deinitializing",
	StateDeinited:       "Deinited",
}

// transitions lists the states reachable from each state.
// An instance that never started may be deinitialized straight from Configured.
var transitions = map[State][]State{
	StateCreated:        {StateConfiguring},
	StateConfiguring:    {StateConfigured},
	StateConfigured:     {StateStarting, StateDeinitializing},
	StateStarting:       {StateStarted},
	StateStarted:        {StateStopping},
	StateStopping:       {StateStopped},
	StateStopped:        {StateDeinitializing},
	StateDeinitializing: {StateDeinited},
}

// String returns the state name
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// CanTransition reports whether the lifecycle may move from s to next.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AcceptsCommands reports whether commands may be delivered in this state.
func (s State) AcceptsCommands() bool {
	return s == StateStarted
}

// IsTerminal reports whether the instance has finished its lifecycle.
func (s State) IsTerminal() bool {
	return s == StateDeinited
}
