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

package testkit

import (
	"bufio"
	"bytes"
	"strings"
	"sync"

	"github.com/buger/jsonparser"

	"github.com/tochemey/addonhost/log"
)

// LogBuffer captures the JSON lines written by a log.Zap logger.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewLogBuffer creates an empty LogBuffer.
func NewLogBuffer() *LogBuffer {
	return &LogBuffer{}
}

// Write implements io.Writer.
func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Logger returns a debug level logger writing into the buffer.
func (b *LogBuffer) Logger() log.Logger {
	return log.NewZap(log.DebugLevel, b)
}

// Messages returns the message of every captured line.
func (b *LogBuffer) Messages() []string {
	b.mu.Lock()
	content := bytes.Clone(b.buf.Bytes())
	b.mu.Unlock()

	var messages []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		msg, err := jsonparser.GetString(scanner.Bytes(), "msg")
		if err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages
}

// Contains reports whether a captured message contains substr.
func (b *LogBuffer) Contains(substr string) bool {
	return b.Count(substr) > 0
}

// Count returns how many captured messages contain substr.
func (b *LogBuffer) Count(substr string) int {
	count := 0
	for _, msg := range b.Messages() {
		if strings.Contains(msg, substr) {
			count++
		}
	}
	return count
}
