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

package attrs

import (
	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/report"
	rx "dirpx.dev/scry/utils/reflect"
)

// memberChecker adapts a kind test into a Checker over the member table.
func memberChecker(pol apis.Policy, match func(member) bool) apis.CheckerFunc {
	return func(target any, name string) bool {
		p, err := profileOf(target, pol)
		if err != nil {
			return false
		}
		m, ok := p.lookup(name)
		return ok && match(m)
	}
}

func hasMembers(target any, names []string, kind string, opts []config.Option, match func(member) bool) (bool, error) {
	pol := config.Resolve(opts...)
	if _, err := profileOf(target, pol); err != nil {
		return false, err
	}
	ctx := report.Context{Target: rx.Describe(target), Kind: kind}
	return report.CheckAllOrAny(target, names, memberChecker(pol, match), pol, ctx)
}

// HasAttributes reports whether the named members exist on target in any
// kind, combined per the match-all policy.
func HasAttributes(target any, names []string, opts ...config.Option) (bool, error) {
	return hasMembers(target, names, "attribute", opts, func(member) bool { return true })
}

// HasFields reports whether the named data members exist on target.
func HasFields(target any, names []string, opts ...config.Option) (bool, error) {
	return hasMembers(target, names, "field", opts, member.isVariable)
}

// HasMethods reports whether the named non-getter methods exist on target.
func HasMethods(target any, names []string, opts ...config.Option) (bool, error) {
	return hasMembers(target, names, "method", opts, member.isMethod)
}

// HasProperties reports whether the named getter-shaped methods exist on
// target.
func HasProperties(target any, names []string, opts ...config.Option) (bool, error) {
	return hasMembers(target, names, "property", opts, func(m member) bool {
		return m.kind == kindProperty
	})
}

// HasTraits checks target against per-kind name groups in one call. The
// match-all policy quantifies within each group; the group verdicts are
// then conjoined, so every group must hold. Empty groups resolve through
// the usual vacuous rule.
func HasTraits(target any, fields, methods, properties []string, opts ...config.Option) (bool, error) {
	pol := config.Resolve(opts...)
	if _, err := profileOf(target, pol); err != nil {
		return false, err
	}

	groups := []struct {
		names []string
		kind  string
		match func(member) bool
	}{
		{fields, "field", member.isVariable},
		{methods, "method", member.isMethod},
		{properties, "property", func(m member) bool { return m.kind == kindProperty }},
	}

	quiet := pol
	quiet.RaiseErrors = false

	verdict := true
	var all []string
	for _, g := range groups {
		all = append(all, g.names...)
		ctx := report.Context{Target: rx.Describe(target), Kind: g.kind}
		ok, err := report.CheckAllOrAny(target, g.names, memberChecker(pol, g.match), quiet, ctx)
		if err != nil {
			return false, err
		}
		verdict = verdict && ok
	}

	ctx := report.Context{Target: rx.Describe(target), Members: all, Kind: "trait"}
	return report.Has(verdict, pol, ctx)
}
