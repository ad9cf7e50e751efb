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

// Package modules loads Go packages from source directories and enumerates
// their top-level declarations: named types, functions, and package-scope
// constants and variables. Loads are memoized per directory; invoke
// ResetCache after editing sources on disk.
package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"go/types"

	"golang.org/x/tools/go/packages"

	"dirpx.dev/scry/config"
)

var (
	// ErrNoPackage is returned when a directory holds no loadable Go package.
	ErrNoPackage = errors.New("scry(modules): no package found in directory")
	// ErrBrokenPackage is returned when a package loads with errors.
	ErrBrokenPackage = errors.New("scry(modules): package loaded with errors")
)

// Module is one loaded Go package rooted at a directory.
type Module struct {
	pkg *packages.Package
	dir string
}

// loadMode requests enough for scope enumeration and position ordering.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Load resolves the Go package rooted at dir. Results are memoized by
// absolute directory.
func Load(ctx context.Context, dir string, opts ...config.Option) (*Module, error) {
	_ = config.Resolve(opts...)

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("scry(modules): resolve %q: %w", dir, err)
	}
	if mod, ok := store.lookup(abs); ok {
		return mod, nil
	}

	slog.DebugContext(ctx, "loading package", "dir", abs)
	cfg := &packages.Config{
		Mode:    loadMode,
		Dir:     abs,
		Context: ctx,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("scry(modules): load %q: %w", abs, err)
	}
	if len(pkgs) == 0 || pkgs[0].Types == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPackage, abs)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		slog.WarnContext(ctx, "package has errors", "dir", abs, "first", pkg.Errors[0].Msg)
		return nil, fmt.Errorf("%w: %s: %s", ErrBrokenPackage, abs, pkg.Errors[0].Msg)
	}

	return store.put(abs, &Module{pkg: pkg, dir: abs}), nil
}

// Name returns the package name.
func (m *Module) Name() string { return m.pkg.Name }

// Path returns the package import path.
func (m *Module) Path() string { return m.pkg.PkgPath }

// Dir returns the absolute directory the package was loaded from.
func (m *Module) Dir() string { return m.dir }

// objects returns the package-scope objects in declaration order.
func (m *Module) objects(privates bool) []types.Object {
	scope := m.pkg.Types.Scope()
	var out []types.Object
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if obj == nil {
			continue
		}
		if !obj.Exported() && !privates {
			continue
		}
		out = append(out, obj)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pos() < out[j].Pos()
	})
	return out
}

func isTypeDecl(obj types.Object) bool {
	_, ok := obj.(*types.TypeName)
	return ok
}

func isFuncDecl(obj types.Object) bool {
	_, ok := obj.(*types.Func)
	return ok
}

// isValueDecl covers package-scope constants and variables.
func isValueDecl(obj types.Object) bool {
	switch obj.(type) {
	case *types.Const, *types.Var:
		return true
	}
	return false
}
