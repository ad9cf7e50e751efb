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

package config

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/scry/apis"
)

// init publishes the built-in defaults as the initial process snapshot.
func init() {
	p := DefaultPolicy()
	st.Store(&p)
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the process-wide policy snapshot. Readers load it wait-free at every
// predicate call; writers build a brand-new policy and swap it atomically.
// A published policy is never mutated.
var st atomic.Pointer[apis.Policy]

// Default returns a copy of the current process-wide policy. The copy owns
// its own suffix slice, so callers may mutate it freely.
func Default() apis.Policy {
	pol := *st.Load()
	pol.Suffixes = append([]string(nil), pol.Suffixes...)
	return pol
}

// Resolve returns the effective policy for a single call: the current
// process defaults with opts applied on top. This is the entry-point helper
// used by every public predicate.
func Resolve(opts ...Option) apis.Policy {
	pol := Default()
	for _, opt := range opts {
		opt(&pol)
	}
	if pol.MaxUnwrap <= 0 {
		pol.MaxUnwrap = DefaultMaxUnwrap
	}
	return pol
}

// SetDefaults applies opts to the current process defaults and publishes the
// result. Calls made after SetDefaults observe the new defaults immediately.
func SetDefaults(opts ...Option) {
	buildMu.Lock()
	defer buildMu.Unlock()

	pol := Default()
	for _, opt := range opts {
		opt(&pol)
	}
	if pol.MaxUnwrap <= 0 {
		pol.MaxUnwrap = DefaultMaxUnwrap
	}
	st.Store(&pol)
}

// ResetDefaults restores the built-in defaults. This is mainly used by tests
// to get a clean deterministic state between cases.
func ResetDefaults() {
	buildMu.Lock()
	defer buildMu.Unlock()

	p := DefaultPolicy()
	st.Store(&p)
}
