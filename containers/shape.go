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

// Package containers inspects what Go collections hold. A slice is a
// sequence, an array a tuple, a map a mapping, a map to struct{} a set;
// everything else, strings included, is a scalar. Scalars have no contents,
// so asking about their elements is a shape error no policy can silence.
package containers

import (
	"reflect"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
)

var emptyStruct = reflect.TypeOf(struct{}{})

// ShapeOf classifies target into one of the five container shapes. It is
// total: anything that is not a collection is a scalar.
func ShapeOf(target any, opts ...config.Option) (apis.Shape, error) {
	_ = config.Resolve(opts...)
	t := typeOf(target)
	if t == nil {
		return apis.Scalar, apis.ErrUnsupportedTarget
	}
	return shapeOfType(deref(t)), nil
}

func shapeOfType(t reflect.Type) apis.Shape {
	switch t.Kind() {
	case reflect.Slice:
		return apis.Sequence
	case reflect.Array:
		return apis.Tuple
	case reflect.Map:
		if t.Elem() == emptyStruct {
			return apis.Set
		}
		return apis.Mapping
	default:
		return apis.Scalar
	}
}

func typeOf(target any) reflect.Type {
	if target == nil {
		return nil
	}
	if t, ok := target.(reflect.Type); ok {
		return t
	}
	return reflect.TypeOf(target)
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
