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

import "github.com/tochemey/addonhost/property"

// properties gives commands and results their JSON property tree.
type properties struct {
	tree *property.Property
}

func newProperties() properties {
	return properties{tree: property.New()}
}

// Properties returns the underlying property tree.
func (p properties) Properties() *property.Property {
	return p.tree
}

// GetPropertyToJSON returns the JSON text stored at path.
func (p properties) GetPropertyToJSON(path string) (string, error) {
	raw, err := p.tree.GetJSON(path)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SetPropertyFromJSON stores the JSON text at path.
func (p properties) SetPropertyFromJSON(path, json string) error {
	return p.tree.SetJSON(path, []byte(json))
}

// GetPropertyString returns the string stored at path.
func (p properties) GetPropertyString(path string) (string, error) {
	return p.tree.GetString(path)
}

// SetPropertyString stores a string at path.
func (p properties) SetPropertyString(path, value string) error {
	return p.tree.SetString(path, value)
}

// GetPropertyInt64 returns the integer stored at path.
func (p properties) GetPropertyInt64(path string) (int64, error) {
	return p.tree.GetInt64(path)
}

// SetPropertyInt64 stores an integer at path.
func (p properties) SetPropertyInt64(path string, value int64) error {
	return p.tree.SetInt64(path, value)
}

// GetPropertyFloat64 returns the number stored at path.
func (p properties) GetPropertyFloat64(path string) (float64, error) {
	return p.tree.GetFloat64(path)
}

// SetPropertyFloat64 stores a number at path.
func (p properties) SetPropertyFloat64(path string, value float64) error {
	return p.tree.SetFloat64(path, value)
}

// GetPropertyBool returns the boolean stored at path.
func (p properties) GetPropertyBool(path string) (bool, error) {
	return p.tree.GetBool(path)
}

// SetPropertyBool stores a boolean at path.
func (p properties) SetPropertyBool(path string, value bool) error {
	return p.tree.SetBool(path, value)
}
