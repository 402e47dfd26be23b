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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/addonhost/errors"
)

func TestParse(t *testing.T) {
	t.Run("decodes discovery fields and ignores the rest", func(t *testing.T) {
		m, err := Parse([]byte(`{
			"type": "app",
			"name": "demo",
			"version": "0.1.0",
			"scripts": {"start": "run"},
			"dependencies": [{"type": "extension", "name": "greeter", "version": "1.0.0"}]
		}`))
		require.NoError(t, err)
		assert.True(t, m.IsApp())
		assert.Equal(t, "demo", m.Name)
		require.Len(t, m.Dependencies, 1)
		assert.Equal(t, Dependency{Type: "extension", Name: "greeter", Version: "1.0.0"}, m.Dependencies[0])
	})
	t.Run("members of an unexpected type are left empty", func(t *testing.T) {
		m, err := Parse([]byte(`{
			"type": "app",
			"name": 7,
			"version": 1,
			"dependencies": [
				{"type": "extension", "name": "greeter", "version": {"min": "1.0"}},
				"not an object",
				{"type": ["extension"], "name": "odd"},
				{"path": "../x"},
				{"type": "extension", "name": "echo"}
			]
		}`))
		require.NoError(t, err)
		assert.True(t, m.IsApp())
		assert.Empty(t, m.Name)
		assert.Empty(t, m.Version)
		require.Len(t, m.Dependencies, 4)
		assert.Equal(t, Dependency{Type: "extension", Name: "greeter"}, m.Dependencies[0])
		assert.Equal(t, []string{"greeter", "echo"}, ExtensionNames(m))
	})
	t.Run("dependencies of another type are ignored", func(t *testing.T) {
		m, err := Parse([]byte(`{"type": "app", "dependencies": {"greeter": "1.0"}}`))
		require.NoError(t, err)
		assert.True(t, m.IsApp())
		assert.Empty(t, ExtensionNames(m))
	})
	t.Run("document must be an object", func(t *testing.T) {
		for _, doc := range []string{`[]`, `"app"`, `null`, `42`} {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, errors.ErrManifestParse, doc)
		}
	})
	t.Run("invalid json", func(t *testing.T) {
		_, err := Parse([]byte(`{"type": `))
		require.ErrorIs(t, err, errors.ErrManifestParse)
	})
	t.Run("load reports missing files", func(t *testing.T) {
		_, err := Load(t.TempDir() + "/manifest.json")
		require.Error(t, err)
		require.NotErrorIs(t, err, errors.ErrManifestParse)
	})
}

func TestExtensionNames(t *testing.T) {
	t.Run("keeps declaration order of extension dependencies", func(t *testing.T) {
		m := &Manifest{
			Type: TypeApp,
			Dependencies: []Dependency{
				{Type: "extension", Name: "e1"},
				{Type: "system", Name: "runtime"},
				{Type: "extension", Name: "e2"},
				{Type: "", Name: "untyped"},
				{Type: "extension", Name: ""},
				{Type: "extension", Name: "e3"},
				{Type: "extension", Name: "e1"},
			},
		}
		assert.Equal(t, []string{"e1", "e2", "e3", "e1"}, ExtensionNames(m))
	})
	t.Run("no dependencies", func(t *testing.T) {
		assert.Empty(t, ExtensionNames(&Manifest{Type: TypeApp}))
		assert.NotNil(t, ExtensionNames(nil))
		assert.Empty(t, ExtensionNames(nil))
	})
}
