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

// Package inspector bundles the predicate families behind facade views. A
// view binds one target and a policy resolved at construction with raising
// disabled, so its accessors answer with empty defaults instead of errors.
package inspector

import (
	"context"
	"reflect"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/attrs"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/containers"
	"dirpx.dev/scry/disks"
	"dirpx.dev/scry/modules"
	rx "dirpx.dev/scry/utils/reflect"
)

// quietPolicy resolves opts on top of the defaults and disables raising.
func quietPolicy(opts []config.Option) []config.Option {
	out := make([]config.Option, 0, len(opts)+1)
	out = append(out, opts...)
	out = append(out, config.WithRaise(false))
	return out
}

// ValueView inspects one live value.
type ValueView struct {
	target any
	opts   []config.Option
}

// NewValue binds a value facade. Options are fixed at construction.
func NewValue(target any, opts ...config.Option) *ValueView {
	return &ValueView{target: target, opts: quietPolicy(opts)}
}

var _ apis.Inspector = (*ValueView)(nil)

func (v *ValueView) Target() any      { return v.target }
func (v *ValueView) Describe() string { return rx.Describe(v.target) }

// Attributes returns every member name of the bound value.
func (v *ValueView) Attributes() []string {
	names, _ := attrs.NameAttributes(v.target, v.opts...)
	return names
}

// Fields returns the data member names of the bound value.
func (v *ValueView) Fields() []string {
	names, _ := attrs.NameFields(v.target, v.opts...)
	return names
}

// Variables returns the data member names under their classifier alias.
func (v *ValueView) Variables() []string {
	names, _ := attrs.NameVariables(v.target, v.opts...)
	return names
}

// Methods returns the non-getter method names of the bound value.
func (v *ValueView) Methods() []string {
	names, _ := attrs.NameMethods(v.target, v.opts...)
	return names
}

// Properties returns the getter-shaped method names of the bound value.
func (v *ValueView) Properties() []string {
	names, _ := attrs.NameProperties(v.target, v.opts...)
	return names
}

// Signatures returns the rendered signatures of the callable members.
func (v *ValueView) Signatures() map[string]string {
	sigs, _ := attrs.MapSignatures(v.target, v.opts...)
	return sigs
}

// Values returns the readable member values keyed by name.
func (v *ValueView) Values() map[string]any {
	vals, _ := attrs.MapAttributes(v.target, v.opts...)
	return vals
}

// Has reports whether name is any member of the bound value.
func (v *ValueView) Has(name string) bool {
	ok, _ := attrs.IsAttribute(v.target, name, v.opts...)
	return ok
}

// Shape classifies the bound value as a container or scalar.
func (v *ValueView) Shape() apis.Shape {
	shape, _ := containers.ShapeOf(v.target, v.opts...)
	return shape
}

// TypeView inspects a type without an instance.
type TypeView struct {
	target reflect.Type
	opts   []config.Option
}

// NewType binds a type facade.
func NewType(t reflect.Type, opts ...config.Option) *TypeView {
	return &TypeView{target: t, opts: quietPolicy(opts)}
}

var _ apis.Inspector = (*TypeView)(nil)

func (t *TypeView) Target() any      { return t.target }
func (t *TypeView) Describe() string { return rx.DescribeType(t.target) }

func (t *TypeView) Attributes() []string {
	names, _ := attrs.NameAttributes(t.target, t.opts...)
	return names
}

func (t *TypeView) Fields() []string {
	names, _ := attrs.NameFields(t.target, t.opts...)
	return names
}

func (t *TypeView) Variables() []string {
	names, _ := attrs.NameVariables(t.target, t.opts...)
	return names
}

func (t *TypeView) Methods() []string {
	names, _ := attrs.NameMethods(t.target, t.opts...)
	return names
}

func (t *TypeView) Properties() []string {
	names, _ := attrs.NameProperties(t.target, t.opts...)
	return names
}

func (t *TypeView) Signatures() map[string]string {
	sigs, _ := attrs.MapSignatures(t.target, t.opts...)
	return sigs
}

func (t *TypeView) Has(name string) bool {
	ok, _ := attrs.IsAttribute(t.target, name, t.opts...)
	return ok
}

func (t *TypeView) Shape() apis.Shape {
	shape, _ := containers.ShapeOf(t.target, t.opts...)
	return shape
}

// ModuleView inspects one loaded package.
type ModuleView struct {
	target *modules.Module
	opts   []config.Option
}

// NewModule binds a package facade.
func NewModule(m *modules.Module, opts ...config.Option) *ModuleView {
	return &ModuleView{target: m, opts: quietPolicy(opts)}
}

var _ apis.Inspector = (*ModuleView)(nil)

func (m *ModuleView) Target() any      { return m.target }
func (m *ModuleView) Describe() string { return m.target.Path() }

// Types returns the package's type declaration names.
func (m *ModuleView) Types() []string {
	names, _ := modules.NameTypes(m.target, m.opts...)
	return names
}

// Funcs returns the package's function declaration names.
func (m *ModuleView) Funcs() []string {
	names, _ := modules.NameFuncs(m.target, m.opts...)
	return names
}

// Objects returns the package-scope constant and variable names.
func (m *ModuleView) Objects() []string {
	names, _ := modules.NameObjects(m.target, m.opts...)
	return names
}

// Has reports whether the package declares name in any scope kind.
func (m *ModuleView) Has(name string) bool {
	ok, _ := modules.HasTypes(m.target, []string{name}, m.opts...)
	if ok {
		return true
	}
	if ok, _ = modules.HasFuncs(m.target, []string{name}, m.opts...); ok {
		return true
	}
	ok, _ = modules.HasObjects(m.target, []string{name}, m.opts...)
	return ok
}

// DirView inspects one directory tree.
type DirView struct {
	target string
	opts   []config.Option
}

// NewDir binds a directory facade.
func NewDir(dir string, opts ...config.Option) *DirView {
	return &DirView{target: dir, opts: quietPolicy(opts)}
}

var _ apis.Inspector = (*DirView)(nil)

func (d *DirView) Target() any      { return d.target }
func (d *DirView) Describe() string { return d.target }

// Paths returns every discovered path under the bound directory.
func (d *DirView) Paths(ctx context.Context) []string {
	paths, _ := disks.ListPaths(ctx, d.target, d.opts...)
	return paths
}

// Files returns the files under the bound directory.
func (d *DirView) Files(ctx context.Context) []string {
	files, _ := disks.ListFiles(ctx, d.target, d.opts...)
	return files
}

// Folders returns the directories under the bound directory.
func (d *DirView) Folders(ctx context.Context) []string {
	folders, _ := disks.ListFolders(ctx, d.target, d.opts...)
	return folders
}

// Sources returns the source files under the bound directory.
func (d *DirView) Sources(ctx context.Context) []string {
	sources, _ := disks.ListSources(ctx, d.target, d.opts...)
	return sources
}

// Modules loads and returns the packages rooted under the bound directory.
func (d *DirView) Modules(ctx context.Context) []*modules.Module {
	mods, _ := disks.ListModules(ctx, d.target, d.opts...)
	return mods
}

// Has reports whether the bound directory contains name.
func (d *DirView) Has(ctx context.Context, name string) bool {
	ok, _ := disks.HasPaths(ctx, d.target, []string{name}, d.opts...)
	return ok
}
