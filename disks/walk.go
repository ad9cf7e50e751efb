/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package disks enumerates filesystem contents: paths, files, folders, and
// source files. Walks skip tooling litter (.git, node_modules and friends),
// hidden entries, and symlinks; an ignores policy additionally honors the
// root .gitignore. A non-recursive policy stays on the top level.
package disks

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"dirpx.dev/scry/apis"
)

// ErrNotADirectory is returned when an enumeration root is not a directory.
var ErrNotADirectory = errors.New("scry(disks): not a directory")

var skipDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"vendor":       {},
	"testdata":     {},
	"build":        {},
	"dist":         {},
}

// entry is one discovered filesystem item, with its path relative to the
// walk root.
type entry struct {
	rel string
	abs string
	dir bool
}

func walk(ctx context.Context, root string, pol apis.Policy) ([]entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrNotADirectory
	}

	var gi *ignore.GitIgnore
	if pol.Ignores {
		gi = loadGitignore(abs)
	}
	slog.DebugContext(ctx, "walking directory", "root", abs, "recursive", pol.Recursive)

	var entries []entry
	werr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := d.Name()
		if path == abs {
			return nil
		}

		if d.IsDir() {
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
		} else {
			if strings.HasPrefix(name, ".") || d.Type()&os.ModeSymlink != 0 {
				return nil
			}
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		entries = append(entries, entry{rel: rel, abs: path, dir: d.IsDir()})
		if d.IsDir() && !pol.Recursive {
			return filepath.SkipDir
		}
		return nil
	})
	if werr != nil {
		return nil, werr
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].rel < entries[j].rel
	})
	return entries, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// isSourceName reports whether name carries one of the policy suffixes.
func isSourceName(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
