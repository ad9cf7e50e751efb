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
	"log/slog"
	"path/filepath"
	"sort"

	"dirpx.dev/scry/config"
	"dirpx.dev/scry/modules"
	"dirpx.dev/scry/report"
)

// ListModuleDirs returns the directories under root, root included, that
// directly contain at least one source file.
func ListModuleDirs(ctx context.Context, root string, opts ...config.Option) ([]string, error) {
	entries, pol, err := enumerate(ctx, root, opts, keepSource)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var dirs []string
	for _, e := range entries {
		dir := filepath.Dir(e.abs)
		if _, dup := seen[dir]; dup {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	ctxr := report.Context{Target: root, Kind: "module"}
	return report.Names(dirs, pol, ctxr)
}

// ListModules loads every module directory under root. Under a raising
// policy a directory that fails to load fails the whole enumeration;
// otherwise it is logged and skipped.
func ListModules(ctx context.Context, root string, opts ...config.Option) ([]*modules.Module, error) {
	pol := config.Resolve(opts...)
	dirs, err := ListModuleDirs(ctx, root, opts...)
	if err != nil {
		return nil, err
	}

	var mods []*modules.Module
	for _, dir := range dirs {
		mod, err := modules.Load(ctx, dir, opts...)
		if err != nil {
			if pol.RaiseErrors {
				return nil, err
			}
			slog.WarnContext(ctx, "skipping unloadable module", "dir", dir, "err", err)
			continue
		}
		mods = append(mods, mod)
	}
	ctxr := report.Context{Target: root, Kind: "module"}
	return report.Values(mods, pol, ctxr)
}
