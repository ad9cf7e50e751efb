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

package scry

import (
	"context"
	"reflect"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/attrs"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/containers"
	"dirpx.dev/scry/inspector"
	"dirpx.dev/scry/modules"
	rx "dirpx.dev/scry/utils/reflect"
)

// T returns the reflect.Type of X without needing an instance.
func T[X any]() reflect.Type {
	return reflect.TypeOf((*X)(nil)).Elem()
}

// Describe returns the display identity of v: its EntityName when it
// implements apis.Namer, otherwise a "pkg.Type" derived from its type.
func Describe(v any) string {
	return rx.Describe(v)
}

// Defaults returns a copy of the process-wide policy defaults.
func Defaults() apis.Policy {
	return config.Default()
}

// SetDefaults adjusts the process-wide policy defaults. Calls without
// per-call options observe the change immediately.
func SetDefaults(opts ...config.Option) {
	config.SetDefaults(opts...)
}

// ResetDefaults restores the built-in policy defaults. Mainly used by
// tests to get a deterministic state between cases.
func ResetDefaults() {
	config.ResetDefaults()
}

// Inspect builds the most specific facade view for item. See the
// inspector package for the dispatch order.
func Inspect(item any, opts ...config.Option) (apis.Inspector, error) {
	return inspector.Inspect(item, opts...)
}

// Load resolves the Go package rooted at dir. This is a convenience
// wrapper around the modules package.
func Load(ctx context.Context, dir string, opts ...config.Option) (*modules.Module, error) {
	return modules.Load(ctx, dir, opts...)
}

// IsAttribute reports whether name is any member of target.
func IsAttribute(target any, name string, opts ...config.Option) (bool, error) {
	return attrs.IsAttribute(target, name, opts...)
}

// IsMethod reports whether name is a non-getter method of target.
func IsMethod(target any, name string, opts ...config.Option) (bool, error) {
	return attrs.IsMethod(target, name, opts...)
}

// IsProperty reports whether name is a getter-shaped method of target.
func IsProperty(target any, name string, opts ...config.Option) (bool, error) {
	return attrs.IsProperty(target, name, opts...)
}

// IsField reports whether name is a struct field of target.
func IsField(target any, name string, opts ...config.Option) (bool, error) {
	return attrs.IsField(target, name, opts...)
}

// HasAttributes reports whether the named members exist on target,
// combined per the match-all policy.
func HasAttributes(target any, names []string, opts ...config.Option) (bool, error) {
	return attrs.HasAttributes(target, names, opts...)
}

// NameAttributes returns the sorted names of every member of target.
func NameAttributes(target any, opts ...config.Option) ([]string, error) {
	return attrs.NameAttributes(target, opts...)
}

// NameFields returns the sorted names of target's data members.
func NameFields(target any, opts ...config.Option) ([]string, error) {
	return attrs.NameFields(target, opts...)
}

// NameMethods returns the sorted names of target's non-getter methods.
func NameMethods(target any, opts ...config.Option) ([]string, error) {
	return attrs.NameMethods(target, opts...)
}

// Shape classifies target as a scalar, sequence, tuple, mapping, or set.
func Shape(target any, opts ...config.Option) (apis.Shape, error) {
	return containers.ShapeOf(target, opts...)
}
