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
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

// ExtensionDir is the location of extension packages under an app base directory.
const ExtensionDir = "ten_packages/extension"

// Dependency is a manifest dependency entry.
type Dependency struct {
	Type    string `json:"type,omitempty"`
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// ExtensionDep builds an extension dependency entry.
func ExtensionDep(name string) Dependency {
	return Dependency{Type: "extension", Name: name, Version: "0.1.0"}
}

// SystemDep builds a non-extension dependency entry.
func SystemDep(name string) Dependency {
	return Dependency{Type: "system", Name: name, Version: "0.1.0"}
}

// AppTree builds an application directory tree inside a test temp dir.
type AppTree struct {
	t    testing.TB
	root string
}

// NewAppTree creates an empty tree rooted at a fresh temporary directory.
func NewAppTree(t testing.TB) *AppTree {
	t.Helper()
	return &AppTree{t: t, root: t.TempDir()}
}

// Root returns the tree root.
func (a *AppTree) Root() string {
	return a.root
}

// Path joins elems to the tree root.
func (a *AppTree) Path(elems ...string) string {
	return filepath.Join(append([]string{a.root}, elems...)...)
}

// AppManifest writes an app manifest.json at the root.
func (a *AppTree) AppManifest(name string, deps ...Dependency) *AppTree {
	return a.Manifest("", "app", name, deps...)
}

// Manifest writes a manifest.json of the given type into dir, relative to the root.
func (a *AppTree) Manifest(dir, kind, name string, deps ...Dependency) *AppTree {
	a.t.Helper()
	content, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(map[string]any{
		"type":         kind,
		"name":         name,
		"version":      "0.1.0",
		"dependencies": deps,
	}, "", "  ")
	require.NoError(a.t, err)
	return a.File(filepath.Join(dir, "manifest.json"), string(content))
}

// Extension creates the package directory of the named extension.
func (a *AppTree) Extension(name string) *AppTree {
	return a.Dir(filepath.Join(ExtensionDir, name))
}

// ExtensionProperty writes the property.json of the named extension.
func (a *AppTree) ExtensionProperty(name, json string) *AppTree {
	return a.File(filepath.Join(ExtensionDir, name, "property.json"), json)
}

// Dir creates a directory relative to the root.
func (a *AppTree) Dir(rel string) *AppTree {
	a.t.Helper()
	require.NoError(a.t, os.MkdirAll(a.Path(rel), 0o755))
	return a
}

// File writes a file relative to the root, creating parent directories.
func (a *AppTree) File(rel, content string) *AppTree {
	a.t.Helper()
	path := a.Path(rel)
	require.NoError(a.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(a.t, os.WriteFile(path, []byte(content), 0o600))
	return a
}

// ExtensionPath returns the package directory of the named extension.
func (a *AppTree) ExtensionPath(name string) string {
	return a.Path(ExtensionDir, name)
}
