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

package manifest_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/addonhost/errors"
	"github.com/tochemey/addonhost/manifest"
	"github.com/tochemey/addonhost/testkit"
)

func TestFindAppBaseDir(t *testing.T) {
	t.Run("start directory holds the app manifest", func(t *testing.T) {
		tree := testkit.NewAppTree(t).AppManifest("demo")
		dir, err := manifest.FindAppBaseDir(tree.Root())
		require.NoError(t, err)
		assert.Equal(t, tree.Root(), dir)
	})
	t.Run("app manifest several levels up", func(t *testing.T) {
		for depth := 1; depth <= 4; depth++ {
			tree := testkit.NewAppTree(t).AppManifest("demo")
			var elems []string
			for i := range depth {
				elems = append(elems, "level"+string(rune('a'+i)))
			}
			tree.Dir(filepath.Join(elems...))

			dir, err := manifest.FindAppBaseDir(tree.Path(elems...))
			require.NoError(t, err, "depth %d", depth)
			assert.Equal(t, tree.Root(), dir, "depth %d", depth)
		}
	})
	t.Run("non app and broken manifests are passed over", func(t *testing.T) {
		tree := testkit.NewAppTree(t).
			AppManifest("demo").
			Manifest("ten_packages/extension/greeter", "extension", "greeter").
			File("ten_packages/extension/greeter/src/manifest.json", "{ not json")

		dir, err := manifest.FindAppBaseDir(tree.Path("ten_packages", "extension", "greeter", "src"))
		require.NoError(t, err)
		assert.Equal(t, tree.Root(), dir)
	})
	t.Run("nearest app manifest wins", func(t *testing.T) {
		tree := testkit.NewAppTree(t).
			AppManifest("outer").
			Manifest("inner", "app", "inner").
			Dir("inner/deeper")

		dir, err := manifest.FindAppBaseDir(tree.Path("inner", "deeper"))
		require.NoError(t, err)
		assert.Equal(t, tree.Path("inner"), dir)
	})
	t.Run("unrelated members of another type do not hide the app", func(t *testing.T) {
		tree := testkit.NewAppTree(t).
			AppManifest("outer").
			File("app/manifest.json", `{
				"type": "app",
				"name": "inner",
				"version": 1,
				"dependencies": [{"path": "../x", "version": {"min": "1.0"}}, 42]
			}`).
			Dir("app/bin")

		dir, err := manifest.FindAppBaseDir(tree.Path("app", "bin"))
		require.NoError(t, err)
		assert.Equal(t, tree.Path("app"), dir)
	})
	t.Run("no app manifest up to the root", func(t *testing.T) {
		tree := testkit.NewAppTree(t).Manifest("", "extension", "lonely").Dir("a/b")
		if _, err := manifest.FindAppBaseDir(filepath.Dir(tree.Root())); err == nil {
			t.Skip("an app manifest exists above the temp directory")
		}

		_, err := manifest.FindAppBaseDir(tree.Path("a", "b"))
		require.ErrorIs(t, err, errors.ErrManifestNotFound)
	})
	t.Run("relative start directory", func(t *testing.T) {
		tree := testkit.NewAppTree(t).AppManifest("demo").Dir("bin")
		t.Chdir(tree.Path("bin"))

		dir, err := manifest.FindAppBaseDir(".")
		require.NoError(t, err)
		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		expected, err := filepath.EvalSymlinks(tree.Root())
		require.NoError(t, err)
		assert.Equal(t, expected, resolved)
	})
}
