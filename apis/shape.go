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

package apis

import "fmt"

// Shape is the closed set of container shapes recognized by the container
// introspection operations. The shape of a target is selected exactly once
// at the entry point and matched explicitly afterwards; there is no open
// registration of additional shapes.
//
// The values are:
//
//   - Scalar   — no container shape. Strings are scalars: they are never
//     treated as sequences by any introspection operation.
//   - Sequence — a slice.
//   - Tuple    — an array; fixed size, which enables positional type checks.
//   - Mapping  — a map with a non-empty value type.
//   - Set      — a map whose value type is struct{}, the conventional Go
//     set encoding.
//
// Shape values are plain integers and safe for concurrent use.
type Shape int

const (
	// Scalar is the shape of every non-container target.
	Scalar Shape = iota
	// Sequence is the shape of slices.
	Sequence
	// Tuple is the shape of arrays.
	Tuple
	// Mapping is the shape of key-value maps.
	Mapping
	// Set is the shape of map[T]struct{} values.
	Set
)

// String returns the canonical name of the shape.
func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case Tuple:
		return "tuple"
	case Mapping:
		return "mapping"
	case Set:
		return "set"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}
