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

package attrs

import (
	"reflect"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/report"
	rx "dirpx.dev/scry/utils/reflect"
)

// classify resolves name on target and tests its kind with match. A missing
// member reports through the existence arm, a present member of the wrong
// kind through the classification arm.
func classify(target any, name, want string, opts []config.Option, match func(member) bool) (bool, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return false, err
	}
	ctx := report.Context{
		Target:  rx.Describe(target),
		Members: []string{name},
		Kind:    want,
		Want:    want,
	}
	m, ok := p.lookup(name)
	if !ok {
		return report.Bool(false, pol, ctx)
	}
	return report.Classify(match(m), pol, ctx)
}

// IsAttribute reports whether name is any member of target: a field, a
// method, or a property.
func IsAttribute(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "attribute", opts, func(member) bool { return true })
}

// IsClassAttribute reports whether name is a member shared at the type
// level: a promoted field, a method, or a property.
func IsClassAttribute(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "class attribute", opts, func(m member) bool {
		return m.kind != kindInstanceVar
	})
}

// IsInstanceAttribute reports whether name is a member held per instance,
// which for Go values means a direct struct field.
func IsInstanceAttribute(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "instance attribute", opts, func(m member) bool {
		return m.kind == kindInstanceVar
	})
}

// IsVariable reports whether name is a data member of target, direct or
// promoted.
func IsVariable(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "variable", opts, member.isVariable)
}

// IsClassVariable reports whether name is a promoted field, reaching target
// through an embedded type.
func IsClassVariable(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "class variable", opts, func(m member) bool {
		return m.kind == kindClassVar
	})
}

// IsInstanceVariable reports whether name is a field declared directly on
// target's struct type.
func IsInstanceVariable(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "instance variable", opts, func(m member) bool {
		return m.kind == kindInstanceVar
	})
}

// IsMethod reports whether name is a callable member of target that is not
// getter-shaped.
func IsMethod(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "method", opts, member.isMethod)
}

// IsTypeMethod reports whether name is a method in target's value method
// set, callable on any copy of the value.
func IsTypeMethod(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "type method", opts, func(m member) bool {
		return m.kind == kindTypeMethod
	})
}

// IsInstanceMethod reports whether name is a method reachable only through
// a pointer receiver, bound to one addressable instance.
func IsInstanceMethod(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "instance method", opts, func(m member) bool {
		return m.kind == kindInstanceMethod
	})
}

// IsProperty reports whether name is a getter-shaped method of target: no
// arguments beyond the receiver, exactly one result.
func IsProperty(target any, name string, opts ...config.Option) (bool, error) {
	return classify(target, name, "property", opts, func(m member) bool {
		return m.kind == kindProperty
	})
}

// IsField reports whether name is a struct field of target. Unlike the
// other classifiers it demands a struct target and fails with ErrNotAStruct
// otherwise, regardless of policy.
func IsField(target any, name string, opts ...config.Option) (bool, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return false, err
	}
	if p.base.Kind() != reflect.Struct {
		return false, apis.ErrNotAStruct
	}
	ctx := report.Context{
		Target:  rx.Describe(target),
		Members: []string{name},
		Kind:    "field",
		Want:    "field",
	}
	m, ok := p.lookup(name)
	if !ok {
		return report.Bool(false, pol, ctx)
	}
	return report.Classify(m.isVariable(), pol, ctx)
}
