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

package containers

import (
	"reflect"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/report"
	rx "dirpx.dev/scry/utils/reflect"
)

// view is a resolved container target: its shape, base type, and the
// dereferenced value when the target was a value rather than a type.
type view struct {
	shape apis.Shape
	t     reflect.Type
	v     reflect.Value
}

func resolve(target any) (view, error) {
	t := typeOf(target)
	if t == nil {
		return view{}, apis.ErrUnsupportedTarget
	}
	base := deref(t)
	shape := shapeOfType(base)
	if shape == apis.Scalar {
		return view{}, &apis.ShapeError{Target: rx.Describe(target)}
	}

	w := view{shape: shape, t: base}
	if _, isType := target.(reflect.Type); !isType {
		v := reflect.ValueOf(target)
		for v.Kind() == reflect.Pointer && !v.IsNil() {
			v = v.Elem()
		}
		if v.IsValid() && v.Type() == base {
			w.v = v
		}
	}
	return w, nil
}

// ContainedTypes returns the distinct element types held by target, in
// first-seen order. Values report the dynamic types actually present;
// types report the static element type. Mappings and sets report value and
// key types respectively. A recursive policy descends into nested
// containers.
func ContainedTypes(target any, opts ...config.Option) ([]reflect.Type, error) {
	pol := config.Resolve(opts...)
	w, err := resolve(target)
	if err != nil {
		return nil, err
	}
	depth := pol.MaxUnwrap
	if !pol.Recursive {
		depth = 0
	}
	ctx := report.Context{Target: rx.Describe(target), Kind: "contained type"}
	return report.Values(collectTypes(w, depth), pol, ctx)
}

// KeyValueTypes returns the distinct key and value types of a mapping. Any
// other shape is a shape error.
func KeyValueTypes(target any, opts ...config.Option) ([]reflect.Type, []reflect.Type, error) {
	pol := config.Resolve(opts...)
	w, err := resolve(target)
	if err != nil {
		return nil, nil, err
	}
	if w.shape != apis.Mapping {
		return nil, nil, &apis.ShapeError{Target: rx.Describe(target)}
	}

	var keys, vals []reflect.Type
	if w.v.IsValid() && w.v.Len() > 0 {
		iter := w.v.MapRange()
		for iter.Next() {
			keys = appendType(keys, dynamicType(iter.Key()))
			vals = appendType(vals, dynamicType(iter.Value()))
		}
	} else {
		keys = []reflect.Type{w.t.Key()}
		vals = []reflect.Type{w.t.Elem()}
	}

	ctx := report.Context{Target: rx.Describe(target), Kind: "key type"}
	if _, err := report.Values(keys, pol, ctx); err != nil {
		return nil, nil, err
	}
	return keys, vals, nil
}

// HoldsTypes reports whether every element of target is one of the sample
// types. Samples may be values or reflect.Type entries. A tuple whose
// sample list matches its length checks positionally: sample i against
// element i; every other case checks each element against the whole sample
// set.
func HoldsTypes(target any, samples []any, opts ...config.Option) (bool, error) {
	pol := config.Resolve(opts...)
	w, err := resolve(target)
	if err != nil {
		return false, err
	}

	wanted := sampleTypes(samples)
	ctx := report.Context{
		Target:  rx.Describe(target),
		Members: typeNames(wanted),
		Kind:    "contained type",
	}

	// An empty value holds vacuously. Type targets fall through and check
	// the static element type instead.
	if w.v.IsValid() && w.v.Len() == 0 {
		return report.Has(true, pol, ctx)
	}

	els := elements(w)
	if w.shape == apis.Tuple && len(wanted) == len(els) {
		return report.Has(holdsParallel(els, wanted), pol, ctx)
	}
	return report.Has(holdsSerial(els, wanted), pol, ctx)
}

// HoldsKeyValueTypes reports whether a mapping holds the sample key and
// value types, each group quantified per the match-all policy.
func HoldsKeyValueTypes(target any, keySamples, valueSamples []any, opts ...config.Option) (bool, error) {
	pol := config.Resolve(opts...)
	w, err := resolve(target)
	if err != nil {
		return false, err
	}
	if w.shape != apis.Mapping && w.shape != apis.Set {
		return false, &apis.ShapeError{Target: rx.Describe(target)}
	}

	quiet := pol
	quiet.RaiseErrors = false

	keys, vals := mappingTypes(w)
	okKeys, err := matchTypes(keys, sampleTypes(keySamples), quiet)
	if err != nil {
		return false, err
	}
	okVals, err := matchTypes(vals, sampleTypes(valueSamples), quiet)
	if err != nil {
		return false, err
	}

	verdict := okKeys && okVals
	if !pol.MatchAll {
		verdict = okKeys || okVals
	}
	ctx := report.Context{
		Target:  rx.Describe(target),
		Members: append(typeNames(sampleTypes(keySamples)), typeNames(sampleTypes(valueSamples))...),
		Kind:    "key or value type",
	}
	return report.Has(verdict, pol, ctx)
}

// IsNested reports whether target is a container holding at least one
// container element.
func IsNested(target any, opts ...config.Option) (bool, error) {
	pol := config.Resolve(opts...)
	w, err := resolve(target)
	if err != nil {
		return false, err
	}
	nested := false
	for _, t := range collectTypes(w, 0) {
		if shapeOfType(deref(t)) != apis.Scalar {
			nested = true
			break
		}
	}
	ctx := report.Context{Target: rx.Describe(target), Want: "nested container"}
	return report.Classify(nested, pol, ctx)
}

func collectTypes(w view, depth int) []reflect.Type {
	var out []reflect.Type
	for _, el := range elements(w) {
		t := el.t
		out = appendType(out, t)
		if depth > 0 {
			inner := view{shape: shapeOfType(deref(t)), t: deref(t)}
			switch el.v.Kind() {
			case reflect.Slice, reflect.Array, reflect.Map:
				inner.v = el.v
			}
			if inner.shape != apis.Scalar {
				for _, nt := range collectTypes(inner, depth-1) {
					out = appendType(out, nt)
				}
			}
		}
	}
	return out
}

type element struct {
	t reflect.Type
	v reflect.Value
}

// elements yields the element types (and values when available) of a
// container view. Sets yield their keys; mappings their values.
func elements(w view) []element {
	if !w.v.IsValid() || w.v.Len() == 0 {
		switch w.shape {
		case apis.Set:
			return []element{{t: w.t.Key()}}
		case apis.Mapping:
			return []element{{t: w.t.Elem()}}
		default:
			return []element{{t: w.t.Elem()}}
		}
	}

	var out []element
	switch w.shape {
	case apis.Set:
		iter := w.v.MapRange()
		for iter.Next() {
			k := concrete(iter.Key())
			out = append(out, element{t: k.Type(), v: k})
		}
	case apis.Mapping:
		iter := w.v.MapRange()
		for iter.Next() {
			v := concrete(iter.Value())
			out = append(out, element{t: v.Type(), v: v})
		}
	default:
		for i := 0; i < w.v.Len(); i++ {
			e := concrete(w.v.Index(i))
			out = append(out, element{t: e.Type(), v: e})
		}
	}
	return out
}

// holdsSerial checks every element's dynamic type against the whole
// wanted set.
func holdsSerial(els []element, wanted []reflect.Type) bool {
	for _, el := range els {
		hit := false
		for _, want := range wanted {
			if typeMatches(el.t, want) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// holdsParallel checks element i against wanted type i.
func holdsParallel(els []element, wanted []reflect.Type) bool {
	for i, el := range els {
		if !typeMatches(el.t, wanted[i]) {
			return false
		}
	}
	return true
}

// typeMatches treats an interface sample the way a runtime instance check
// would: any implementing type counts.
func typeMatches(t, want reflect.Type) bool {
	if t == nil || want == nil {
		return t == want
	}
	if want.Kind() == reflect.Interface {
		return t.Implements(want)
	}
	return t == want
}

func matchTypes(held, wanted []reflect.Type, pol apis.Policy) (bool, error) {
	checker := apis.CheckerFunc(func(_ any, name string) bool {
		for _, h := range held {
			if h.String() == name {
				return true
			}
		}
		return false
	})
	return report.CheckAllOrAny(nil, typeNames(wanted), checker, pol, report.Context{})
}

func mappingTypes(w view) (keys, vals []reflect.Type) {
	if w.v.IsValid() && w.v.Len() > 0 {
		iter := w.v.MapRange()
		for iter.Next() {
			keys = appendType(keys, dynamicType(iter.Key()))
			vals = appendType(vals, dynamicType(iter.Value()))
		}
		return keys, vals
	}
	return []reflect.Type{w.t.Key()}, []reflect.Type{w.t.Elem()}
}

func sampleTypes(samples []any) []reflect.Type {
	out := make([]reflect.Type, 0, len(samples))
	for _, s := range samples {
		if t, ok := s.(reflect.Type); ok {
			out = append(out, t)
			continue
		}
		out = append(out, reflect.TypeOf(s))
	}
	return out
}

func typeNames(types []reflect.Type) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		if t == nil {
			names = append(names, "<nil>")
			continue
		}
		names = append(names, t.String())
	}
	return names
}

func appendType(types []reflect.Type, t reflect.Type) []reflect.Type {
	for _, have := range types {
		if have == t {
			return types
		}
	}
	return append(types, t)
}

func concrete(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}
	return v
}

func dynamicType(v reflect.Value) reflect.Type {
	return concrete(v).Type()
}
