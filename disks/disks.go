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

package disks

import (
	"context"
	"path/filepath"
	"sort"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/report"
)

func enumerate(ctx context.Context, root string, opts []config.Option, keep func(entry, apis.Policy) bool) ([]entry, apis.Policy, error) {
	pol := config.Resolve(opts...)
	all, err := walk(ctx, root, pol)
	if err != nil {
		return nil, pol, err
	}
	var out []entry
	for _, e := range all {
		if keep(e, pol) {
			out = append(out, e)
		}
	}
	return out, pol, nil
}

func listOf(ctx context.Context, root, kind string, opts []config.Option, keep func(entry, apis.Policy) bool) ([]string, error) {
	entries, pol, err := enumerate(ctx, root, opts, keep)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.rel)
	}
	ctxr := report.Context{Target: root, Kind: kind}
	return report.Names(paths, pol, ctxr)
}

func namesOf(ctx context.Context, root, kind string, opts []config.Option, keep func(entry, apis.Policy) bool) ([]string, error) {
	entries, pol, err := enumerate(ctx, root, opts, keep)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var names []string
	for _, e := range entries {
		name := filepath.Base(e.rel)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	ctxr := report.Context{Target: root, Kind: kind}
	return report.Names(names, pol, ctxr)
}

func mapOf(ctx context.Context, root, kind string, opts []config.Option, keep func(entry, apis.Policy) bool) (map[string]string, error) {
	entries, pol, err := enumerate(ctx, root, opts, keep)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.rel] = e.abs
	}
	ctxr := report.Context{Target: root, Kind: kind}
	return report.Map(out, pol, ctxr)
}

func keepAny(entry, apis.Policy) bool { return true }

func keepFile(e entry, _ apis.Policy) bool { return !e.dir }

func keepDir(e entry, _ apis.Policy) bool { return e.dir }

func keepSource(e entry, pol apis.Policy) bool {
	return !e.dir && isSourceName(filepath.Base(e.rel), pol.Suffixes)
}

// ListPaths returns every discovered path under root, relative and sorted.
func ListPaths(ctx context.Context, root string, opts ...config.Option) ([]string, error) {
	return listOf(ctx, root, "path", opts, keepAny)
}

// ListFiles returns the discovered files under root.
func ListFiles(ctx context.Context, root string, opts ...config.Option) ([]string, error) {
	return listOf(ctx, root, "file", opts, keepFile)
}

// ListFolders returns the discovered directories under root.
func ListFolders(ctx context.Context, root string, opts ...config.Option) ([]string, error) {
	return listOf(ctx, root, "folder", opts, keepDir)
}

// ListSources returns the discovered files under root carrying a policy
// suffix.
func ListSources(ctx context.Context, root string, opts ...config.Option) ([]string, error) {
	return listOf(ctx, root, "source", opts, keepSource)
}

// NamePaths returns the distinct base names of every path under root.
func NamePaths(ctx context.Context, root string, opts ...config.Option) ([]string, error) {
	return namesOf(ctx, root, "path", opts, keepAny)
}

// NameFiles returns the distinct base names of the files under root.
func NameFiles(ctx context.Context, root string, opts ...config.Option) ([]string, error) {
	return namesOf(ctx, root, "file", opts, keepFile)
}

// NameFolders returns the distinct base names of the directories under root.
func NameFolders(ctx context.Context, root string, opts ...config.Option) ([]string, error) {
	return namesOf(ctx, root, "folder", opts, keepDir)
}

// NameSources returns the distinct base names of the source files under root.
func NameSources(ctx context.Context, root string, opts ...config.Option) ([]string, error) {
	return namesOf(ctx, root, "source", opts, keepSource)
}

// MapPaths returns every path under root keyed by relative path, valued by
// absolute path.
func MapPaths(ctx context.Context, root string, opts ...config.Option) (map[string]string, error) {
	return mapOf(ctx, root, "path", opts, keepAny)
}

// MapFiles returns the files under root keyed by relative path.
func MapFiles(ctx context.Context, root string, opts ...config.Option) (map[string]string, error) {
	return mapOf(ctx, root, "file", opts, keepFile)
}

// MapFolders returns the directories under root keyed by relative path.
func MapFolders(ctx context.Context, root string, opts ...config.Option) (map[string]string, error) {
	return mapOf(ctx, root, "folder", opts, keepDir)
}

// MapSources returns the source files under root keyed by relative path.
func MapSources(ctx context.Context, root string, opts ...config.Option) (map[string]string, error) {
	return mapOf(ctx, root, "source", opts, keepSource)
}

func hasEntries(ctx context.Context, root string, wanted []string, kind string, opts []config.Option, keep func(entry, apis.Policy) bool) (bool, error) {
	entries, pol, err := enumerate(ctx, root, opts, keep)
	if err != nil {
		return false, err
	}
	present := make(map[string]struct{}, len(entries)*2)
	for _, e := range entries {
		present[e.rel] = struct{}{}
		present[filepath.Base(e.rel)] = struct{}{}
	}
	checker := apis.CheckerFunc(func(_ any, name string) bool {
		_, ok := present[filepath.ToSlash(name)]
		if !ok {
			_, ok = present[filepath.FromSlash(name)]
		}
		return ok
	})
	ctxr := report.Context{Target: root, Kind: kind}
	return report.CheckAllOrAny(root, wanted, checker, pol, ctxr)
}

// HasPaths reports whether root contains the named paths, by relative path
// or base name, combined per the match-all policy.
func HasPaths(ctx context.Context, root string, wanted []string, opts ...config.Option) (bool, error) {
	return hasEntries(ctx, root, wanted, "path", opts, keepAny)
}

// HasFiles reports whether root contains the named files.
func HasFiles(ctx context.Context, root string, wanted []string, opts ...config.Option) (bool, error) {
	return hasEntries(ctx, root, wanted, "file", opts, keepFile)
}

// HasFolders reports whether root contains the named directories.
func HasFolders(ctx context.Context, root string, wanted []string, opts ...config.Option) (bool, error) {
	return hasEntries(ctx, root, wanted, "folder", opts, keepDir)
}

// HasSources reports whether root contains the named source files.
func HasSources(ctx context.Context, root string, wanted []string, opts ...config.Option) (bool, error) {
	return hasEntries(ctx, root, wanted, "source", opts, keepSource)
}
