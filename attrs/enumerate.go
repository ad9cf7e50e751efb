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

	"dirpx.dev/scry/config"
	"dirpx.dev/scry/report"
	rx "dirpx.dev/scry/utils/reflect"
)

func nameMembers(target any, kind string, opts []config.Option, match func(member) bool) ([]string, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return nil, err
	}
	ctx := report.Context{Target: rx.Describe(target), Kind: kind}
	return report.Names(p.selectNames(pol.IncludePrivates, match), pol, ctx)
}

func listMembers(target any, kind string, opts []config.Option, match func(member) bool) ([]any, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return nil, err
	}
	var vals []any
	for _, name := range p.selectNames(pol.IncludePrivates, match) {
		m, _ := p.lookup(name)
		if v, ok := p.value(target, m); ok {
			vals = append(vals, v)
		}
	}
	ctx := report.Context{Target: rx.Describe(target), Kind: kind}
	return report.Values(vals, pol, ctx)
}

func mapMembers(target any, kind string, opts []config.Option, match func(member) bool) (map[string]any, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	for _, name := range p.selectNames(pol.IncludePrivates, match) {
		m, _ := p.lookup(name)
		if v, ok := p.value(target, m); ok {
			out[name] = v
		}
	}
	ctx := report.Context{Target: rx.Describe(target), Kind: kind}
	return report.Map(out, pol, ctx)
}

// NameAttributes returns the sorted names of every member of target.
func NameAttributes(target any, opts ...config.Option) ([]string, error) {
	return nameMembers(target, "attribute", opts, func(member) bool { return true })
}

// NameFields returns the sorted names of target's data members.
func NameFields(target any, opts ...config.Option) ([]string, error) {
	return nameMembers(target, "field", opts, member.isVariable)
}

// NameVariables is NameFields under its classifier alias: every variable
// kind is a field and vice versa.
func NameVariables(target any, opts ...config.Option) ([]string, error) {
	return nameMembers(target, "variable", opts, member.isVariable)
}

// NameMethods returns the sorted names of target's non-getter methods.
func NameMethods(target any, opts ...config.Option) ([]string, error) {
	return nameMembers(target, "method", opts, member.isMethod)
}

// NameProperties returns the sorted names of target's getter-shaped methods.
func NameProperties(target any, opts ...config.Option) ([]string, error) {
	return nameMembers(target, "property", opts, func(m member) bool {
		return m.kind == kindProperty
	})
}

// ListAttributes returns the resolved values of every member of target, in
// name order. Values that cannot be read are omitted.
func ListAttributes(target any, opts ...config.Option) ([]any, error) {
	return listMembers(target, "attribute", opts, func(member) bool { return true })
}

// ListFields returns the reflect.StructField descriptors of target's data
// members in name order. MapFields carries the values; the descriptors keep
// index, tag, and type information.
func ListFields(target any, opts ...config.Option) ([]reflect.StructField, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return nil, err
	}
	var fields []reflect.StructField
	for _, name := range p.selectNames(pol.IncludePrivates, member.isVariable) {
		m, _ := p.lookup(name)
		fields = append(fields, m.field)
	}
	ctx := report.Context{Target: rx.Describe(target), Kind: "field"}
	return report.Values(fields, pol, ctx)
}

// ListMethods returns the bound callables of target's non-getter methods in
// name order.
func ListMethods(target any, opts ...config.Option) ([]any, error) {
	return listMembers(target, "method", opts, member.isMethod)
}

// ListProperties returns the computed values of target's properties in name
// order. On type targets the getter is not invoked; the zero value of its
// result stands in.
func ListProperties(target any, opts ...config.Option) ([]any, error) {
	return listMembers(target, "property", opts, func(m member) bool {
		return m.kind == kindProperty
	})
}

// MapAttributes returns every member of target keyed by name.
func MapAttributes(target any, opts ...config.Option) (map[string]any, error) {
	return mapMembers(target, "attribute", opts, func(member) bool { return true })
}

// MapFields returns target's data members keyed by name.
func MapFields(target any, opts ...config.Option) (map[string]any, error) {
	return mapMembers(target, "field", opts, member.isVariable)
}

// MapVariables returns target's data member values keyed by name, under the
// variable alias.
func MapVariables(target any, opts ...config.Option) (map[string]any, error) {
	return mapMembers(target, "variable", opts, member.isVariable)
}

// MapMethods returns target's bound non-getter methods keyed by name.
func MapMethods(target any, opts ...config.Option) (map[string]any, error) {
	return mapMembers(target, "method", opts, member.isMethod)
}

// MapProperties returns target's computed property values keyed by name.
func MapProperties(target any, opts ...config.Option) (map[string]any, error) {
	return mapMembers(target, "property", opts, func(m member) bool {
		return m.kind == kindProperty
	})
}

// value resolves a member against target. The second result is false when
// the value cannot be surfaced, such as an unexported field on a real
// value. Type targets resolve through the zero value; their getters are
// never invoked.
func (p *profile) value(target any, m member) (any, bool) {
	_, typeTarget := target.(reflect.Type)

	if m.isVariable() {
		v := p.instance(target)
		if !v.IsValid() {
			return nil, false
		}
		fv, err := v.FieldByIndexErr(m.field.Index)
		if err != nil || !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}

	if m.kind == kindProperty && typeTarget {
		return reflect.Zero(m.method.Type.Out(0)).Interface(), true
	}

	bound := p.bind(target, m.name)
	if !bound.IsValid() {
		return nil, false
	}
	if m.kind == kindProperty {
		return bound.Call(nil)[0].Interface(), true
	}
	return bound.Interface(), true
}

// instance yields the dereferenced struct value for target, or the zero
// value of the base type when target is a reflect.Type.
func (p *profile) instance(target any) reflect.Value {
	if _, ok := target.(reflect.Type); ok {
		return reflect.Zero(p.base)
	}
	v := reflect.ValueOf(target)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Zero(p.base)
		}
		v = v.Elem()
	}
	return v
}

// bind returns the named method bound to an addressable instance of
// target, so the full pointer method set is reachable.
func (p *profile) bind(target any, name string) reflect.Value {
	if v := reflect.ValueOf(target); v.Kind() == reflect.Pointer && !v.IsNil() && v.Type().Elem() == p.base {
		return v.MethodByName(name)
	}
	pv := reflect.New(p.base)
	if inst := p.instance(target); inst.IsValid() && inst.Type() == p.base {
		pv.Elem().Set(inst)
	}
	return pv.MethodByName(name)
}
