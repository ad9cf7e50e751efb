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

package report_test

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/report"
)

func raising() apis.Policy {
	return apis.Policy{RaiseErrors: true, MatchAll: true}
}

func lenient() apis.Policy {
	return apis.Policy{RaiseErrors: false, MatchAll: true}
}

func TestBool(t *testing.T) {
	ctx := report.Context{Target: "demo.Widget", Members: []string{"Spin"}}

	ok, err := report.Bool(true, raising(), ctx)
	if !ok || err != nil {
		t.Fatalf("got (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = report.Bool(false, lenient(), ctx)
	if ok || err != nil {
		t.Fatalf("got (%v, %v), want (false, nil)", ok, err)
	}

	ok, err = report.Bool(false, raising(), ctx)
	if ok {
		t.Fatalf("got true, want false")
	}
	if !errors.Is(err, apis.ErrMemberNotFound) {
		t.Fatalf("got %v, want ErrMemberNotFound", err)
	}
	if want := "Spin is not a member of demo.Widget"; err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestClassify(t *testing.T) {
	ctx := report.Context{Target: "demo.Widget", Want: "method"}

	ok, err := report.Classify(false, raising(), ctx)
	if ok {
		t.Fatalf("got true, want false")
	}
	if !errors.Is(err, apis.ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}

	ok, err = report.Classify(false, lenient(), ctx)
	if ok || err != nil {
		t.Fatalf("got (%v, %v), want (false, nil)", ok, err)
	}
}

func TestHasMessageShape(t *testing.T) {
	ctx := report.Context{
		Target:  "demo.Widget",
		Members: []string{"Spin", "Halt"},
		Kind:    "method",
	}

	pol := raising()
	_, err := report.Has(false, pol, ctx)
	if !errors.Is(err, apis.ErrLookupFailed) {
		t.Fatalf("got %v, want ErrLookupFailed", err)
	}
	if !strings.Contains(err.Error(), "at least one of") {
		t.Fatalf("got %q, want match-all shape", err.Error())
	}

	pol.MatchAll = false
	_, err = report.Has(false, pol, ctx)
	if !strings.Contains(err.Error(), "none of") {
		t.Fatalf("got %q, want match-any shape", err.Error())
	}
}

func TestNames(t *testing.T) {
	ctx := report.Context{Target: "demo.Widget", Kind: "field"}

	names, err := report.Names([]string{"count"}, raising(), ctx)
	if err != nil || len(names) != 1 {
		t.Fatalf("got (%v, %v), want single name", names, err)
	}

	names, err = report.Names(nil, lenient(), ctx)
	if err != nil {
		t.Fatalf("got %v, want nil error", err)
	}
	if names == nil || len(names) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", names)
	}

	if _, err = report.Names(nil, raising(), ctx); !errors.Is(err, apis.ErrLookupFailed) {
		t.Fatalf("got %v, want ErrLookupFailed", err)
	}
}

func TestValuesAndMap(t *testing.T) {
	ctx := report.Context{Target: "demo.Widget", Kind: "attribute"}

	vals, err := report.Values([]int{7}, raising(), ctx)
	if err != nil || len(vals) != 1 {
		t.Fatalf("got (%v, %v), want single value", vals, err)
	}

	vals, err = report.Values[int](nil, lenient(), ctx)
	if err != nil || vals == nil || len(vals) != 0 {
		t.Fatalf("got (%#v, %v), want empty non-nil slice", vals, err)
	}

	m, err := report.Map[int](nil, lenient(), ctx)
	if err != nil || m == nil || len(m) != 0 {
		t.Fatalf("got (%#v, %v), want empty non-nil map", m, err)
	}

	if _, err = report.Map[int](nil, raising(), ctx); !errors.Is(err, apis.ErrLookupFailed) {
		t.Fatalf("got %v, want ErrLookupFailed", err)
	}
}

type hasPrefix struct{}

func (hasPrefix) Check(target any, name string) bool {
	s, _ := target.(string)
	return strings.HasPrefix(s, name)
}

func TestCheckAllOrAny(t *testing.T) {
	ctx := report.Context{Target: "string", Kind: "prefix"}

	tests := []struct {
		label    string
		names    []string
		matchAll bool
		want     bool
	}{
		{"all hold", []string{"go", "gop"}, true, true},
		{"one fails under all", []string{"go", "py"}, true, false},
		{"one holds under any", []string{"py", "go"}, false, true},
		{"none hold under any", []string{"py", "rb"}, false, false},
		{"empty under all", nil, true, true},
		{"empty under any", nil, false, false},
	}

	for _, tc := range tests {
		pol := lenient()
		pol.MatchAll = tc.matchAll
		got, err := report.CheckAllOrAny("gopher", tc.names, hasPrefix{}, pol, ctx)
		if err != nil {
			t.Fatalf("%s: got error %v", tc.label, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestCheckAllOrAnyRaises(t *testing.T) {
	ctx := report.Context{Target: "string", Kind: "prefix"}

	_, err := report.CheckAllOrAny("gopher", []string{"py"}, hasPrefix{}, raising(), ctx)
	if !errors.Is(err, apis.ErrLookupFailed) {
		t.Fatalf("got %v, want ErrLookupFailed", err)
	}

	pol := raising()
	pol.MatchAll = false
	_, err = report.CheckAllOrAny("gopher", nil, hasPrefix{}, pol, ctx)
	if !errors.Is(err, apis.ErrLookupFailed) {
		t.Fatalf("got %v, want ErrLookupFailed", err)
	}
}
