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

// RegisterOption configures an addon declaration.
type RegisterOption interface {
	apply(*registerConfig)
}

var _ RegisterOption = RegisterOptionFunc(nil)

// RegisterOptionFunc implements the RegisterOption interface.
type RegisterOptionFunc func(*registerConfig)

func (f RegisterOptionFunc) apply(c *registerConfig) {
	f(c)
}

type registerConfig struct {
	baseDir string
}

func newRegisterConfig(opts ...RegisterOption) *registerConfig {
	config := new(registerConfig)
	for _, opt := range opts {
		opt.apply(config)
	}
	return config
}

// WithBaseDir sets the addon base directory. A path naming an existing file
// resolves to the directory holding it. Any other path, including one that
// does not exist yet, is taken as the directory itself; it is never
// trimmed to its parent. Pass the directory, not a source file, when the
// file may be absent at registration time.
func WithBaseDir(path string) RegisterOption {
	return RegisterOptionFunc(func(c *registerConfig) {
		c.baseDir = path
	})
}
