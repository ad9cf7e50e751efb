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

// Inspector is a read-only view over a wrapped target. Each target category
// (package, directory, type, value) has a specialized implementation that
// exposes the enumeration accessors relevant to it; the common surface is
// intentionally minimal.
//
// Inspectors never mutate the wrapped target and recompute every accessor
// from the live target on each call.
type Inspector interface {
	// Target returns the wrapped target.
	Target() any

	// Describe returns the target's described identity (its Namer name when
	// implemented, otherwise a reflect-derived "pkg.Type" form).
	Describe() string
}

// InspectStrategy is a pluggable facade-selection step. The factory chains
// strategies in a fixed order (package, path, type, value); each either
// claims the item and returns the specialized view, or falls through.
type InspectStrategy interface {
	// TryInspect attempts to build a view for item under pol. It returns
	// (view, true) if the item was claimed; otherwise (nil, false).
	TryInspect(item any, pol Policy) (Inspector, bool)
}
