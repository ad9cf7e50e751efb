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

// Policy carries the effective knobs for a single introspection call.
// It is resolved once at the public entry point (process defaults plus
// per-call options) and passed by value down the call chain; implementations
// must treat it as immutable.
type Policy struct {
	// RaiseErrors controls the failure mode of predicates. When true, a
	// failed check or an unresolvable member yields a typed error; when
	// false, failures degrade to the documented empty default (false, nil
	// slice, empty map) with a nil error.
	RaiseErrors bool

	// MatchAll selects the quantifier for composite checks: all names must
	// match (logical AND) when true, any single match suffices (logical OR)
	// when false.
	MatchAll bool

	// IncludePrivates controls whether unexported members appear in
	// enumerations. Checks against an explicitly named unexported member are
	// always honored regardless of this knob.
	IncludePrivates bool

	// Recursive controls whether directory enumeration descends into
	// subfolders.
	Recursive bool

	// Ignores controls whether directory enumeration honors a .gitignore
	// file found at the enumeration root.
	Ignores bool

	// Suffixes lists the file suffixes recognized as importable source
	// files (e.g. ".go").
	Suffixes []string

	// MaxUnwrap limits pointer/interface/container unwrapping depth when
	// normalizing a target to its base type. Guards against pathological
	// nesting.
	MaxUnwrap int
}
