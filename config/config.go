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
	"dirpx.dev/scry/apis"
)

const (
	// DefaultRaiseErrors represents the default for RaiseErrors.
	// When true, failed checks yield typed errors instead of empty defaults.
	DefaultRaiseErrors = true
	// DefaultMatchAll represents the default for MatchAll.
	// When true, composite checks require every name to match.
	DefaultMatchAll = true
	// DefaultIncludePrivates represents the default for IncludePrivates.
	// When false, unexported members are dropped from enumerations.
	DefaultIncludePrivates = false
	// DefaultRecursive represents the default for Recursive.
	// When false, directory enumeration inspects one level only.
	DefaultRecursive = false
	// DefaultIgnores represents the default for Ignores.
	// When true, directory enumeration honors a root .gitignore file.
	DefaultIgnores = false
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// DefaultSuffixes returns the default importable-source suffix set.
func DefaultSuffixes() []string {
	return []string{".go"}
}

// DefaultPolicy is the built-in policy used when the process defaults have
// not been altered.
func DefaultPolicy() apis.Policy {
	return apis.Policy{
		RaiseErrors:     DefaultRaiseErrors,
		MatchAll:        DefaultMatchAll,
		IncludePrivates: DefaultIncludePrivates,
		Recursive:       DefaultRecursive,
		Ignores:         DefaultIgnores,
		Suffixes:        DefaultSuffixes(),
		MaxUnwrap:       DefaultMaxUnwrap,
	}
}

// NewPolicy constructs an apis.Policy from the given options, starting from
// the built-in defaults (not the process defaults).
func NewPolicy(opts ...Option) apis.Policy {
	pol := DefaultPolicy()
	for _, opt := range opts {
		opt(&pol)
	}
	// Ensure MaxUnwrap is valid.
	if pol.MaxUnwrap <= 0 {
		pol.MaxUnwrap = DefaultMaxUnwrap
	}
	return pol
}

// Option is a functional option that mutates an apis.Policy during
// resolution. Options double as per-call overrides on every public
// predicate: an absent option means "use the process default read at call
// time".
type Option func(*apis.Policy)

// WithRaise sets the RaiseErrors knob.
func WithRaise(raise bool) Option {
	return func(p *apis.Policy) {
		p.RaiseErrors = raise
	}
}

// WithMatchAll sets the MatchAll knob.
func WithMatchAll(all bool) Option {
	return func(p *apis.Policy) {
		p.MatchAll = all
	}
}

// WithPrivates sets the IncludePrivates knob.
func WithPrivates(include bool) Option {
	return func(p *apis.Policy) {
		p.IncludePrivates = include
	}
}

// WithRecursive sets the Recursive knob.
func WithRecursive(recursive bool) Option {
	return func(p *apis.Policy) {
		p.Recursive = recursive
	}
}

// WithIgnores sets the Ignores knob.
func WithIgnores(ignores bool) Option {
	return func(p *apis.Policy) {
		p.Ignores = ignores
	}
}

// WithSuffixes replaces the importable-source suffix set.
// An empty call resets to the default.
func WithSuffixes(suffixes ...string) Option {
	return func(p *apis.Policy) {
		if len(suffixes) == 0 {
			p.Suffixes = DefaultSuffixes()
			return
		}
		p.Suffixes = suffixes
	}
}

// WithMaxUnwrap sets the MaxUnwrap knob.
// A non-positive value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(p *apis.Policy) {
		if max <= 0 {
			p.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		p.MaxUnwrap = max
	}
}
