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
	"bytes"
	stderrors "errors"
	"fmt"
	"maps"
	"strconv"
	"sync"

	"github.com/buger/jsonparser"
	jsoniter "github.com/json-iterator/go"

	"github.com/tochemey/addonhost/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Property is a concurrency-safe JSON object tree addressed by dotted paths.
// Array elements are addressed with bracketed indices, for example
// "servers[1].host". Values cross the boundary as JSON text.
type Property struct {
	mu   sync.RWMutex
	data []byte
}

// New creates an empty property tree.
func New() *Property {
	return &Property{data: []byte("{}")}
}

// FromJSON creates a property tree out of a JSON object.
func FromJSON(data []byte) (*Property, error) {
	if err := checkObject(data); err != nil {
		return nil, err
	}
	return &Property{data: bytes.Clone(bytes.TrimSpace(data))}, nil
}

// ToJSON returns the whole tree as JSON text.
func (p *Property) ToJSON() []byte {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return bytes.Clone(p.data)
}

// Merge copies every top-level member of the given JSON object into the tree.
// Existing members with the same name are replaced.
func (p *Property) Merge(data []byte) error {
	if err := checkObject(data); err != nil {
		return err
	}

	var members map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidJSON, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var merged map[string]jsoniter.RawMessage
	if err := json.Unmarshal(p.data, &merged); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidJSON, err)
	}
	maps.Copy(merged, members)

	out, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidJSON, err)
	}
	p.data = out
	return nil
}

// Has reports whether the path exists.
func (p *Property) Has(path string) bool {
	_, _, err := p.lookup(path)
	return err == nil
}

// GetJSON returns the JSON text stored at path.
func (p *Property) GetJSON(path string) ([]byte, error) {
	value, dataType, err := p.lookup(path)
	if err != nil {
		return nil, err
	}
	if dataType == jsonparser.String {
		return quote(value), nil
	}
	return bytes.Clone(value), nil
}

// SetJSON stores the JSON value at path, creating intermediate objects.
// An empty path replaces the whole tree and requires a JSON object.
func (p *Property) SetJSON(path string, value []byte) error {
	value = bytes.TrimSpace(value)
	if !valid(value) {
		return fmt.Errorf("%w: %s", errors.ErrInvalidJSON, value)
	}

	keys, err := splitPath(path)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		if err := checkObject(value); err != nil {
			return err
		}
		p.mu.Lock()
		p.data = bytes.Clone(value)
		p.mu.Unlock()
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := checkIndices(p.data, keys, path); err != nil {
		return err
	}

	out, err := jsonparser.Set(bytes.Clone(p.data), value, keys...)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", errors.ErrInvalidPropertyPath, path, err)
	}
	if !valid(out) {
		return invalidPath(path)
	}
	p.data = out
	return nil
}

// Delete removes the value stored at path.
func (p *Property) Delete(path string) error {
	keys, err := splitPath(path)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return invalidPath(path)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, _, _, err := jsonparser.Get(p.data, keys...); err != nil {
		return notFound(path, err)
	}
	p.data = jsonparser.Delete(p.data, keys...)
	return nil
}

// GetString returns the string stored at path.
func (p *Property) GetString(path string) (string, error) {
	value, dataType, err := p.lookup(path)
	if err != nil {
		return "", err
	}
	if dataType != jsonparser.String {
		return "", mismatch(path, "string", dataType)
	}
	return jsonparser.ParseString(value)
}

// GetInt64 returns the integer stored at path.
func (p *Property) GetInt64(path string) (int64, error) {
	value, dataType, err := p.lookup(path)
	if err != nil {
		return 0, err
	}
	if dataType != jsonparser.Number {
		return 0, mismatch(path, "integer", dataType)
	}
	v, err := jsonparser.ParseInt(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errors.ErrPropertyTypeMismatch, path)
	}
	return v, nil
}

// GetFloat64 returns the number stored at path.
func (p *Property) GetFloat64(path string) (float64, error) {
	value, dataType, err := p.lookup(path)
	if err != nil {
		return 0, err
	}
	if dataType != jsonparser.Number {
		return 0, mismatch(path, "number", dataType)
	}
	return jsonparser.ParseFloat(value)
}

// GetBool returns the boolean stored at path.
func (p *Property) GetBool(path string) (bool, error) {
	value, dataType, err := p.lookup(path)
	if err != nil {
		return false, err
	}
	if dataType != jsonparser.Boolean {
		return false, mismatch(path, "boolean", dataType)
	}
	return jsonparser.ParseBoolean(value)
}

// SetString stores a string at path.
func (p *Property) SetString(path, value string) error {
	return p.set(path, value)
}

// SetInt64 stores an integer at path.
func (p *Property) SetInt64(path string, value int64) error {
	return p.set(path, value)
}

// SetFloat64 stores a number at path.
func (p *Property) SetFloat64(path string, value float64) error {
	return p.set(path, value)
}

// SetBool stores a boolean at path.
func (p *Property) SetBool(path string, value bool) error {
	return p.set(path, value)
}

func (p *Property) set(path string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidJSON, err)
	}
	return p.SetJSON(path, raw)
}

func (p *Property) lookup(path string) ([]byte, jsonparser.ValueType, error) {
	keys, err := splitPath(path)
	if err != nil {
		return nil, jsonparser.Unknown, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(keys) == 0 {
		return bytes.Clone(p.data), jsonparser.Object, nil
	}

	value, dataType, _, err := jsonparser.Get(p.data, keys...)
	if err != nil {
		return nil, jsonparser.NotExist, notFound(path, err)
	}
	return bytes.Clone(value), dataType, nil
}

// valid reports whether data holds exactly one JSON value of any kind.
func valid(data []byte) bool {
	var v any
	return json.Unmarshal(data, &v) == nil
}

// checkIndices rejects array indices that do not address an existing
// element. A missing array may only be created through index zero.
func checkIndices(data []byte, keys []string, path string) error {
	for i, key := range keys {
		if key[0] != '[' {
			continue
		}

		index, err := strconv.Atoi(key[1 : len(key)-1])
		if err != nil {
			return invalidPath(path)
		}

		parent, dataType, _, err := jsonparser.Get(data, keys[:i]...)
		switch {
		case stderrors.Is(err, jsonparser.KeyPathNotFoundError):
			if index != 0 {
				return fmt.Errorf("%w: %q: index %d of a missing array", errors.ErrInvalidPropertyPath, path, index)
			}
			continue
		case err != nil:
			return invalidPath(path)
		case dataType != jsonparser.Array:
			return fmt.Errorf("%w: %q: %s is not an array", errors.ErrInvalidPropertyPath, path, dataType)
		}

		length := 0
		if _, err := jsonparser.ArrayEach(parent, func([]byte, jsonparser.ValueType, int, error) { length++ }); err != nil {
			return invalidPath(path)
		}
		if index >= length {
			return fmt.Errorf("%w: %q: index %d out of range [0,%d)", errors.ErrInvalidPropertyPath, path, index, length)
		}
	}
	return nil
}

func checkObject(data []byte) error {
	data = bytes.TrimSpace(data)
	if !valid(data) {
		return fmt.Errorf("%w: %s", errors.ErrInvalidJSON, data)
	}
	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("%w: a JSON object is required", errors.ErrInvalidJSON)
	}
	return nil
}

func quote(raw []byte) []byte {
	out := make([]byte, 0, len(raw)+2)
	out = append(out, '"')
	out = append(out, raw...)
	return append(out, '"')
}

func notFound(path string, cause error) error {
	if stderrors.Is(cause, jsonparser.KeyPathNotFoundError) {
		return errors.NewErrPropertyNotFound(path)
	}
	return fmt.Errorf("%w: %w", errors.NewErrPropertyNotFound(path), cause)
}

func mismatch(path, want string, got jsonparser.ValueType) error {
	return fmt.Errorf("%w: %q holds %s, not %s", errors.ErrPropertyTypeMismatch, path, got, want)
}
