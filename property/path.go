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

package property

import (
	"fmt"
	"strings"

	"github.com/tochemey/addonhost/errors"
)

// splitPath turns a dotted property path such as "a.b[0].c" into the key
// list understood by jsonparser: ["a", "b", "[0]", "c"].
// An empty path addresses the whole tree and yields no keys.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	var keys []string
	for segment := range strings.SplitSeq(path, ".") {
		if segment == "" {
			return nil, invalidPath(path)
		}

		name, rest, hasIndex := strings.Cut(segment, "[")
		if name != "" {
			keys = append(keys, name)
		}

		if !hasIndex {
			continue
		}

		rest = "[" + rest
		for rest != "" {
			end := strings.IndexByte(rest, ']')
			if rest[0] != '[' || end < 2 || !isDigits(rest[1:end]) {
				return nil, invalidPath(path)
			}
			keys = append(keys, rest[:end+1])
			rest = rest[end+1:]
		}
	}
	return keys, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func invalidPath(path string) error {
	return fmt.Errorf("%w: %q", errors.ErrInvalidPropertyPath, path)
}
