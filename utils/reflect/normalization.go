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

package reflect

import (
	"errors"
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/scry/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrNotNamed indicates that the provided type (after unwrapping
	// containers) does not contain a named type (e.g., anonymous struct,
	// func, interface{}).
	ErrNotNamed = errors.New("reflect: type has no name")
)

// fallbackMaxUnwrap bounds unwrapping when a policy carries no usable limit.
const fallbackMaxUnwrap = 8

// TypeOf returns the reflect.Type of item. A reflect.Type passed directly is
// returned as-is, so every classifier accepts both values and types as
// targets. A nil item yields nil.
func TypeOf(item any) reflect.Type {
	if item == nil {
		return nil
	}
	if t, ok := item.(reflect.Type); ok {
		return t
	}
	return reflect.TypeOf(item)
}

// Base unwraps pointers until it reaches the underlying target type,
// bounded by pol.MaxUnwrap. Unlike Normalize it never descends into
// slices, maps, or channels: a []T has no members of T.
func Base(t reflect.Type, pol apis.Policy) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	maxUnwrap := pol.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = fallbackMaxUnwrap
	}
	for i := 0; i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr:
			t = t.Elem()
		default:
			return t, nil
		}
	}
	return t, nil
}

// Normalize unwraps containers according to pol (MaxUnwrap) and returns the
// nearest named inner type, or an error if none is found.
//
// Unwrapping policy:
//   - ptr/slice/array/chan -> Elem()
//   - map[K]V: if V is named, return it; else if K is named, return K;
//     else continue unwrapping V.
//   - default: if t.Name() != "", return t; otherwise ErrNotNamed.
func Normalize(t reflect.Type, pol apis.Policy) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	maxUnwrap := pol.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = fallbackMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			et := t.Elem()
			if et != nil && et.Name() != "" {
				return et, nil
			}
			kt := t.Key()
			if kt != nil && kt.Name() != "" {
				return kt, nil
			}
			// Neither side named: keep unwrapping element.
			t = et

		default:
			// Named, return; anonymous -> error.
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrNotNamed
}

// describeCache caches described type names. Describe feeds every raised
// error message, so the hot path is a single sync.Map load.
var describeCache sync.Map // key: reflect.Type, val: string

// Describe returns the described identity of item for error messages and
// facade views. A value implementing apis.Namer wins outright; otherwise the
// result is a stable "pkg.Type" derived from the normalized type, or the
// type's own string form when no named inner type exists.
func Describe(item any) string {
	if item == nil {
		return "<nil>"
	}
	if n, ok := item.(apis.Namer); ok {
		return n.EntityName()
	}
	return DescribeType(TypeOf(item))
}

// DescribeType is Describe for a reflect.Type.
func DescribeType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if v, ok := describeCache.Load(t); ok {
		return v.(string)
	}

	pol := apis.Policy{MaxUnwrap: fallbackMaxUnwrap}
	base, err := Normalize(t, pol)
	if err != nil || base == nil {
		name := t.String()
		describeCache.Store(t, name)
		return name
	}

	name := stripTypeParams(base.Name())
	if p := base.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	describeCache.Store(t, name)
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
