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

package modules

import (
	"go/types"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/report"
)

func names(m *Module, kind string, opts []config.Option, keep func(types.Object) bool) ([]string, error) {
	pol := config.Resolve(opts...)
	var out []string
	for _, obj := range m.objects(pol.IncludePrivates) {
		if keep(obj) {
			out = append(out, obj.Name())
		}
	}
	ctx := report.Context{Target: m.Path(), Kind: kind}
	return report.Names(out, pol, ctx)
}

func has(m *Module, wanted []string, kind string, opts []config.Option, keep func(types.Object) bool) (bool, error) {
	pol := config.Resolve(opts...)
	checker := apis.CheckerFunc(func(_ any, name string) bool {
		obj := m.pkg.Types.Scope().Lookup(name)
		if obj == nil || (!obj.Exported() && !pol.IncludePrivates) {
			return false
		}
		return keep(obj)
	})
	ctx := report.Context{Target: m.Path(), Kind: kind}
	return report.CheckAllOrAny(m, wanted, checker, pol, ctx)
}

// NameTypes returns the names of the package's type declarations in
// declaration order.
func NameTypes(m *Module, opts ...config.Option) ([]string, error) {
	return names(m, "type", opts, isTypeDecl)
}

// NameFuncs returns the names of the package's function declarations in
// declaration order. Methods live on their receiver types and are not
// package-scope, so they never appear here.
func NameFuncs(m *Module, opts ...config.Option) ([]string, error) {
	return names(m, "function", opts, isFuncDecl)
}

// NameObjects returns the names of package-scope constants and variables
// in declaration order.
func NameObjects(m *Module, opts ...config.Option) ([]string, error) {
	return names(m, "object", opts, isValueDecl)
}

// ListTypes returns the package's type declarations in declaration order.
func ListTypes(m *Module, opts ...config.Option) ([]*types.TypeName, error) {
	pol := config.Resolve(opts...)
	var out []*types.TypeName
	for _, obj := range m.objects(pol.IncludePrivates) {
		if tn, ok := obj.(*types.TypeName); ok {
			out = append(out, tn)
		}
	}
	ctx := report.Context{Target: m.Path(), Kind: "type"}
	return report.Values(out, pol, ctx)
}

// ListFuncs returns the package's function declarations in declaration
// order.
func ListFuncs(m *Module, opts ...config.Option) ([]*types.Func, error) {
	pol := config.Resolve(opts...)
	var out []*types.Func
	for _, obj := range m.objects(pol.IncludePrivates) {
		if fn, ok := obj.(*types.Func); ok {
			out = append(out, fn)
		}
	}
	ctx := report.Context{Target: m.Path(), Kind: "function"}
	return report.Values(out, pol, ctx)
}

// ListObjects returns the package-scope constants and variables in
// declaration order.
func ListObjects(m *Module, opts ...config.Option) ([]types.Object, error) {
	pol := config.Resolve(opts...)
	var out []types.Object
	for _, obj := range m.objects(pol.IncludePrivates) {
		if isValueDecl(obj) {
			out = append(out, obj)
		}
	}
	ctx := report.Context{Target: m.Path(), Kind: "object"}
	return report.Values(out, pol, ctx)
}

// MapTypes returns the package's type declarations keyed by name.
func MapTypes(m *Module, opts ...config.Option) (map[string]*types.TypeName, error) {
	pol := config.Resolve(opts...)
	out := map[string]*types.TypeName{}
	for _, obj := range m.objects(pol.IncludePrivates) {
		if tn, ok := obj.(*types.TypeName); ok {
			out[tn.Name()] = tn
		}
	}
	ctx := report.Context{Target: m.Path(), Kind: "type"}
	return report.Map(out, pol, ctx)
}

// MapFuncs returns the package's function declarations keyed by name.
func MapFuncs(m *Module, opts ...config.Option) (map[string]*types.Func, error) {
	pol := config.Resolve(opts...)
	out := map[string]*types.Func{}
	for _, obj := range m.objects(pol.IncludePrivates) {
		if fn, ok := obj.(*types.Func); ok {
			out[fn.Name()] = fn
		}
	}
	ctx := report.Context{Target: m.Path(), Kind: "function"}
	return report.Map(out, pol, ctx)
}

// MapObjects returns package-scope constants and variables keyed by name.
func MapObjects(m *Module, opts ...config.Option) (map[string]types.Object, error) {
	pol := config.Resolve(opts...)
	out := map[string]types.Object{}
	for _, obj := range m.objects(pol.IncludePrivates) {
		if isValueDecl(obj) {
			out[obj.Name()] = obj
		}
	}
	ctx := report.Context{Target: m.Path(), Kind: "object"}
	return report.Map(out, pol, ctx)
}

// HasTypes reports whether the package declares the named types, combined
// per the match-all policy.
func HasTypes(m *Module, wanted []string, opts ...config.Option) (bool, error) {
	return has(m, wanted, "type", opts, isTypeDecl)
}

// HasFuncs reports whether the package declares the named functions.
func HasFuncs(m *Module, wanted []string, opts ...config.Option) (bool, error) {
	return has(m, wanted, "function", opts, isFuncDecl)
}

// HasObjects reports whether the package declares the named constants or
// variables.
func HasObjects(m *Module, wanted []string, opts ...config.Option) (bool, error) {
	return has(m, wanted, "object", opts, isValueDecl)
}
