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
	"strings"

	"dirpx.dev/scry/config"
	"dirpx.dev/scry/report"
	rx "dirpx.dev/scry/utils/reflect"
)

// MapSignatures returns the rendered signature of every callable member of
// target, properties included, keyed by name. The receiver is elided, so a
// method func(w *Widget, n int) error renders as "Spin(int) error".
func MapSignatures(target any, opts ...config.Option) (map[string]string, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	for _, m := range p.members {
		if m.isMethod() || m.kind == kindProperty {
			out[m.name] = formatSignature(m)
		}
	}
	ctx := report.Context{Target: rx.Describe(target), Kind: "method"}
	return report.Map(out, pol, ctx)
}

// MapAnnotations returns the declared type of each data member keyed by
// name. The struct field declaration carries the type where a dynamic
// language would carry an annotation.
func MapAnnotations(target any, opts ...config.Option) (map[string]reflect.Type, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return nil, err
	}
	out := map[string]reflect.Type{}
	for _, name := range p.selectNames(pol.IncludePrivates, member.isVariable) {
		m, _ := p.lookup(name)
		out[name] = m.field.Type
	}
	ctx := report.Context{Target: rx.Describe(target), Kind: "annotation"}
	return report.Map(out, pol, ctx)
}

// ListAnnotations returns the declared data member types in name order.
func ListAnnotations(target any, opts ...config.Option) ([]reflect.Type, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return nil, err
	}
	var types []reflect.Type
	for _, name := range p.selectNames(pol.IncludePrivates, member.isVariable) {
		m, _ := p.lookup(name)
		types = append(types, m.field.Type)
	}
	ctx := report.Context{Target: rx.Describe(target), Kind: "annotation"}
	return report.Values(types, pol, ctx)
}

// NameParameters returns the parameter types of the named callable member,
// in declaration order. Runtime reflection carries no parameter names, so
// types stand in for them. A niladic member yields an empty list without
// error.
func NameParameters(target any, method string, opts ...config.Option) ([]string, error) {
	pol := config.Resolve(opts...)
	p, err := profileOf(target, pol)
	if err != nil {
		return nil, err
	}
	ctx := report.Context{
		Target:  rx.Describe(target),
		Members: []string{method},
		Kind:    "method",
	}
	m, ok := p.lookup(method)
	if !ok || m.isVariable() {
		if _, rerr := report.Bool(false, pol, ctx); rerr != nil {
			return nil, rerr
		}
		return []string{}, nil
	}

	fn := m.method.Type
	params := make([]string, 0, fn.NumIn()-1)
	for i := 1; i < fn.NumIn(); i++ {
		params = append(params, fn.In(i).String())
	}
	return params, nil
}

func formatSignature(m member) string {
	fn := m.method.Type
	var b strings.Builder
	b.WriteString(m.name)
	b.WriteByte('(')
	for i := 1; i < fn.NumIn(); i++ {
		if i > 1 {
			b.WriteString(", ")
		}
		if m.method.Type.IsVariadic() && i == fn.NumIn()-1 {
			b.WriteString("...")
			b.WriteString(fn.In(i).Elem().String())
		} else {
			b.WriteString(fn.In(i).String())
		}
	}
	b.WriteByte(')')

	switch fn.NumOut() {
	case 0:
	case 1:
		b.WriteByte(' ')
		b.WriteString(fn.Out(0).String())
	default:
		b.WriteString(" (")
		for i := 0; i < fn.NumOut(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fn.Out(i).String())
		}
		b.WriteByte(')')
	}
	return b.String()
}
