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
	"context"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tochemey/addonhost/addon"
	"github.com/tochemey/addonhost/log"
)

// ExtensionDir is where extension packages live under an app base directory.
const ExtensionDir = "ten_packages/extension"

// Discovery enumerates the extension packages of an application and loads
// the ones the application depends on.
type Discovery struct {
	modules      *ModuleLoader
	extensionDir string
	logger       log.Logger
}

// NewDiscovery creates a Discovery scanning extensionDir, relative to the
// app base directory. An empty extensionDir defaults to ExtensionDir.
func NewDiscovery(modules *ModuleLoader, extensionDir string, logger log.Logger) *Discovery {
	if extensionDir == "" {
		extensionDir = ExtensionDir
	}
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Discovery{
		modules:      modules,
		extensionDir: extensionDir,
		logger:       logger,
	}
}

// Scan visits every package directory under the extension directory of
// baseDir. Packages named in admissible are loaded, the others skipped.
// Regular files are ignored. A missing extension directory yields an empty
// report and one that cannot be read yields a report holding that failure.
func (d *Discovery) Scan(ctx context.Context, baseDir string, admissible []string) (*addon.Report, error) {
	report := addon.NewReport()
	root := filepath.Join(baseDir, filepath.FromSlash(d.extensionDir))

	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			d.logger.Warnf("extension directory %s does not exist", root)
			return report, nil
		}
		d.logger.Errorf("Error reading extension directory %s: %v", root, err)
		report.Add(addon.Outcome{Name: d.extensionDir, Stage: addon.StageLoad, Err: err})
		return report, nil
	}

	allowed := mapset.NewThreadUnsafeSet(admissible...)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if !isDir(root, entry) {
			continue
		}

		name := entry.Name()
		if !allowed.Contains(name) {
			d.logger.Infof("Skipping module: %s", name)
			report.Add(addon.Outcome{Name: name, Stage: addon.StageSkip})
			continue
		}

		report.Add(d.modules.Load(ctx, d.qualifiedName(name), name, filepath.Join(root, name)))
	}
	return report, nil
}

func (d *Discovery) qualifiedName(name string) string {
	prefix := strings.ReplaceAll(strings.Trim(filepath.ToSlash(d.extensionDir), "/"), "/", ".")
	return prefix + "." + name
}

// isDir follows symlinks so linked packages are discovered too.
func isDir(root string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, entry.Name()))
	return err == nil && info.IsDir()
}
