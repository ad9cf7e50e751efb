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

// Package report owns the raise-or-default decision shared by every
// predicate family. A computed result passes through exactly one of the
// reporters below: a truthy result is returned unchanged; a falsy result
// either becomes a typed error (raising policy) or the documented empty
// default for its shape. The branch lives here once so predicates never
// duplicate it.
package report

import (
	"dirpx.dev/scry/apis"
)

// Context identifies the check for error construction.
type Context struct {
	// Target is the described identity of the examined target.
	Target string
	// Members are the names involved in the check, if any.
	Members []string
	// Kind names the member kind checked (attribute, method, property, ...).
	Kind string
	// Want names the classification a single-verdict check tested for.
	Want string
}

// Bool reports a single-member existence result. A falsy result under a
// raising policy yields a MemberError for the checked name.
func Bool(value bool, pol apis.Policy, ctx Context) (bool, error) {
	if value {
		return true, nil
	}
	if pol.RaiseErrors {
		member := ""
		if len(ctx.Members) > 0 {
			member = ctx.Members[0]
		}
		return false, &apis.MemberError{Target: ctx.Target, Member: member}
	}
	return false, nil
}

// Classify reports a single-verdict classification result. A falsy result
// under a raising policy yields a MismatchError.
func Classify(value bool, pol apis.Policy, ctx Context) (bool, error) {
	if value {
		return true, nil
	}
	if pol.RaiseErrors {
		return false, &apis.MismatchError{Target: ctx.Target, Want: ctx.Want}
	}
	return false, nil
}

// Has reports a composite check result. A falsy result under a raising
// policy yields a LookupError whose message shape depends on the quantifier.
func Has(value bool, pol apis.Policy, ctx Context) (bool, error) {
	if value {
		return true, nil
	}
	if pol.RaiseErrors {
		return false, &apis.LookupError{
			Target:   ctx.Target,
			Members:  ctx.Members,
			MatchAll: pol.MatchAll,
			Kind:     ctx.Kind,
		}
	}
	return false, nil
}

// Names reports an enumeration result. An empty enumeration under a raising
// policy yields a LookupError; otherwise the (possibly nil) slice is
// returned as an empty default.
func Names(names []string, pol apis.Policy, ctx Context) ([]string, error) {
	if len(names) > 0 {
		return names, nil
	}
	if pol.RaiseErrors {
		return nil, &apis.LookupError{
			Target:   ctx.Target,
			Members:  ctx.Members,
			MatchAll: pol.MatchAll,
			Kind:     ctx.Kind,
		}
	}
	return []string{}, nil
}

// Values is Names for resolved-value enumerations.
func Values[T any](vals []T, pol apis.Policy, ctx Context) ([]T, error) {
	if len(vals) > 0 {
		return vals, nil
	}
	if pol.RaiseErrors {
		return nil, &apis.LookupError{
			Target:   ctx.Target,
			Members:  ctx.Members,
			MatchAll: pol.MatchAll,
			Kind:     ctx.Kind,
		}
	}
	return []T{}, nil
}

// Map is Names for name-to-value enumerations.
func Map[T any](m map[string]T, pol apis.Policy, ctx Context) (map[string]T, error) {
	if len(m) > 0 {
		return m, nil
	}
	if pol.RaiseErrors {
		return nil, &apis.LookupError{
			Target:   ctx.Target,
			Members:  ctx.Members,
			MatchAll: pol.MatchAll,
			Kind:     ctx.Kind,
		}
	}
	return map[string]T{}, nil
}
