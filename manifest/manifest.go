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

package manifest

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/tochemey/addonhost/errors"
)

// FileName is the manifest file expected in every package directory.
const FileName = "manifest.json"

const (
	// TypeApp marks the application manifest
	TypeApp = "app"
	// TypeExtension marks an extension package or dependency
	TypeExtension = "extension"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Dependency is an entry of the manifest dependencies list.
type Dependency struct {
	Type    string `json:"type,omitempty"`
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// Manifest is the package descriptor of an application or extension.
// Only the fields used for discovery are decoded; every other member is ignored.
type Manifest struct {
	Type         string       `json:"type,omitempty"`
	Name         string       `json:"name,omitempty"`
	Version      string       `json:"version,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
}

// IsApp reports whether the manifest describes an application.
func (m *Manifest) IsApp() bool {
	return m != nil && m.Type == TypeApp
}

// Parse decodes a manifest. Only the document itself must be a JSON
// object: members of an unexpected type are left empty and malformed
// dependency entries are dropped.
func Parse(data []byte) (*Manifest, error) {
	var members map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrManifestParse, err)
	}
	if members == nil {
		return nil, fmt.Errorf("%w: a JSON object is required", errors.ErrManifestParse)
	}

	manifest := &Manifest{
		Type:    stringMember(members, "type"),
		Name:    stringMember(members, "name"),
		Version: stringMember(members, "version"),
	}

	var entries []jsoniter.RawMessage
	if err := json.Unmarshal(members["dependencies"], &entries); err != nil {
		return manifest, nil
	}
	for _, entry := range entries {
		var fields map[string]jsoniter.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
			continue
		}
		manifest.Dependencies = append(manifest.Dependencies, Dependency{
			Type:    stringMember(fields, "type"),
			Name:    stringMember(fields, "name"),
			Version: stringMember(fields, "version"),
		})
	}
	return manifest, nil
}

// stringMember returns the named member when it holds a JSON string.
func stringMember(members map[string]jsoniter.RawMessage, name string) string {
	var value string
	if err := json.Unmarshal(members[name], &value); err != nil {
		return ""
	}
	return value
}

// Load reads and decodes the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	manifest, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return manifest, nil
}

// ExtensionNames returns, in declaration order, the names of the
// dependencies of type extension. Entries without a type or a name are
// skipped. Duplicates are kept.
func ExtensionNames(m *Manifest) []string {
	names := make([]string, 0)
	if m == nil {
		return names
	}
	for _, dep := range m.Dependencies {
		if dep.Type == "" || dep.Name == "" {
			continue
		}
		if dep.Type == TypeExtension {
			names = append(names, dep.Name)
		}
	}
	return names
}
