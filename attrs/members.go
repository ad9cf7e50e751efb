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

// Package attrs classifies and enumerates the members of Go values and
// types: struct fields, methods, and getter-shaped properties. Members are
// partitioned into five disjoint kinds. A direct field belongs to the
// instance; a promoted field comes from an embedded type and is shared
// across everything that embeds it. A method reachable through a value
// receiver binds to the type; one reachable only through a pointer receiver
// binds to the instance. A niladic single-result method is a property.
package attrs

import (
	"reflect"
	"sort"
	"sync"

	"dirpx.dev/scry/apis"
	rx "dirpx.dev/scry/utils/reflect"
)

type memberKind int

const (
	kindInstanceVar memberKind = iota
	kindClassVar
	kindTypeMethod
	kindInstanceMethod
	kindProperty
)

// member is one classified entry of a type's member table.
type member struct {
	name     string
	kind     memberKind
	exported bool
	field    reflect.StructField // set for variable kinds
	method   reflect.Method      // set for method and property kinds
}

func (m member) isVariable() bool {
	return m.kind == kindInstanceVar || m.kind == kindClassVar
}

func (m member) isMethod() bool {
	return m.kind == kindTypeMethod || m.kind == kindInstanceMethod
}

// profile is the full member table of a type, keyed by member name. Go
// forbids a field and a method sharing a name, so the key is unambiguous.
type profile struct {
	base    reflect.Type
	members map[string]member
}

// profiles memoizes member tables by base type; types are immutable at
// runtime so an entry never goes stale.
var profiles sync.Map

// profileOf builds (or recalls) the full member table for target. The
// table always carries unexported fields; the privates policy filters at
// enumeration time, so a member named explicitly resolves either way.
func profileOf(target any, pol apis.Policy) (*profile, error) {
	t := rx.TypeOf(target)
	if t == nil {
		return nil, apis.ErrUnsupportedTarget
	}
	base, err := rx.Base(t, pol)
	if err != nil {
		return nil, apis.ErrUnsupportedTarget
	}

	if cached, ok := profiles.Load(base); ok {
		return cached.(*profile), nil
	}

	p := &profile{base: base, members: map[string]member{}}
	collectFields(p, base)
	collectMethods(p, base)

	actual, _ := profiles.LoadOrStore(base, p)
	return actual.(*profile), nil
}

func collectFields(p *profile, base reflect.Type) {
	if base.Kind() != reflect.Struct {
		return
	}
	for _, f := range reflect.VisibleFields(base) {
		if f.Anonymous {
			continue
		}
		kind := kindInstanceVar
		if len(f.Index) > 1 {
			kind = kindClassVar
		}
		p.members[f.Name] = member{name: f.Name, kind: kind, exported: f.IsExported(), field: f}
	}
}

func collectMethods(p *profile, base reflect.Type) {
	// The pointer method set covers every method; membership in the value
	// method set separates type-bound from instance-bound.
	ptr := reflect.PointerTo(base)
	for i := 0; i < ptr.NumMethod(); i++ {
		m := ptr.Method(i)
		kind := kindInstanceMethod
		if isGetter(m.Type) {
			kind = kindProperty
		} else if _, onValue := base.MethodByName(m.Name); onValue {
			kind = kindTypeMethod
		}
		p.members[m.Name] = member{name: m.Name, kind: kind, exported: true, method: m}
	}
}

// isGetter reports whether a method func type takes nothing but its
// receiver and yields exactly one result.
func isGetter(fn reflect.Type) bool {
	return fn.NumIn() == 1 && fn.NumOut() == 1
}

// lookup resolves a single member by name.
func (p *profile) lookup(name string) (member, bool) {
	m, ok := p.members[name]
	return m, ok
}

// selectNames returns the sorted names of members passing keep, honoring
// the privates policy.
func (p *profile) selectNames(privates bool, keep func(member) bool) []string {
	var names []string
	for _, m := range p.members {
		if !m.exported && !privates {
			continue
		}
		if keep(m) {
			names = append(names, m.name)
		}
	}
	sort.Strings(names)
	return names
}
