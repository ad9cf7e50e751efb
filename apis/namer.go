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

// Namer identifies a target by a stable, canonical name.
//
// Namer is the zero-reflection fast path for describing targets in error
// messages and facade views. When a value implements Namer, the describing
// logic prefers this interface over any reflect-derived "pkg.Type" name.
//
// EntityName is a type-level contract: it describes the kind of target, not
// a particular instance. The returned name must be non-empty, deterministic
// for a given concrete type, independent of mutable instance state, and safe
// to call from multiple goroutines. Implementations should be constant-time
// and must not perform blocking operations or I/O.
type Namer interface {
	// EntityName returns the canonical, type-level name for this target.
	EntityName() string
}

// NamerFunc adapts a plain function to the Namer interface.
type NamerFunc func() string

// EntityName implements Namer for NamerFunc.
func (f NamerFunc) EntityName() string {
	return f()
}
