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

// Checker is a single-member classification step used by the composite
// dispatch core. The checker set is closed: one checker per predicate
// family (attribute, field, method, property, path kind), not an open
// extension point.
//
// Check answers whether the member named name qualifies on target. It must
// never fail: an unresolvable member is simply false. The surrounding
// dispatch core owns the raise-or-default decision.
//
// Implementations must be safe for concurrent use and must not perform
// blocking operations; the lone exception is the path-kind checkers, which
// stat the filesystem.
type Checker interface {
	Check(target any, name string) bool
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(target any, name string) bool

// Check implements Checker for CheckerFunc.
func (f CheckerFunc) Check(target any, name string) bool {
	return f(target, name)
}
