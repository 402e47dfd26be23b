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

package loader

import (
	"github.com/tochemey/addonhost/log"
)

// Option is the interface that applies a Loader option.
type Option interface {
	Apply(*Loader)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Loader)

// Apply applies the Loader option
func (f OptionFunc) Apply(l *Loader) {
	f(l)
}

// WithStartDir sets the directory the app base directory search starts
// from. It defaults to the directory of the running executable.
func WithStartDir(dir string) Option {
	return OptionFunc(func(l *Loader) {
		l.startDir = dir
	})
}

// WithResolver sets the unit resolver. It defaults to a StaticResolver.
func WithResolver(resolver Resolver) Option {
	return OptionFunc(func(l *Loader) {
		l.resolver = resolver
	})
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(l *Loader) {
		l.logger = logger
	})
}

// WithExtensionDir sets the extension directory, relative to the app base directory.
func WithExtensionDir(dir string) Option {
	return OptionFunc(func(l *Loader) {
		l.extensionDir = dir
	})
}
