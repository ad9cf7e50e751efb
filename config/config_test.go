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

package config_test

import (
	"testing"

	"dirpx.dev/scry/config"
)

func TestDefaultPolicyValues(t *testing.T) {
	got := config.DefaultPolicy()

	if got.RaiseErrors != config.DefaultRaiseErrors {
		t.Fatalf("RaiseErrors = %v, want %v", got.RaiseErrors, config.DefaultRaiseErrors)
	}
	if got.MatchAll != config.DefaultMatchAll {
		t.Fatalf("MatchAll = %v, want %v", got.MatchAll, config.DefaultMatchAll)
	}
	if got.IncludePrivates != config.DefaultIncludePrivates {
		t.Fatalf("IncludePrivates = %v, want %v", got.IncludePrivates, config.DefaultIncludePrivates)
	}
	if got.Recursive != config.DefaultRecursive {
		t.Fatalf("Recursive = %v, want %v", got.Recursive, config.DefaultRecursive)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if len(got.Suffixes) != 1 || got.Suffixes[0] != ".go" {
		t.Fatalf("Suffixes = %v, want [.go]", got.Suffixes)
	}
}

func TestNewPolicy_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultPolicy()
	got := config.NewPolicy()
	if got.RaiseErrors != def.RaiseErrors || got.MatchAll != def.MatchAll ||
		got.IncludePrivates != def.IncludePrivates || got.MaxUnwrap != def.MaxUnwrap {
		t.Fatalf("NewPolicy() = %+v, want default %+v", got, def)
	}
}

func TestWithRaise(t *testing.T) {
	p := config.NewPolicy(config.WithRaise(false))
	if p.RaiseErrors {
		t.Fatalf("RaiseErrors = %v, want false", p.RaiseErrors)
	}
}

func TestWithMatchAll(t *testing.T) {
	p := config.NewPolicy(config.WithMatchAll(false))
	if p.MatchAll {
		t.Fatalf("MatchAll = %v, want false", p.MatchAll)
	}
}

func TestWithMaxUnwrap_NonPositiveResets(t *testing.T) {
	p := config.NewPolicy(config.WithMaxUnwrap(-1))
	if p.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", p.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestWithSuffixes_EmptyResets(t *testing.T) {
	p := config.NewPolicy(config.WithSuffixes(".py", ".pyc"))
	if len(p.Suffixes) != 2 || p.Suffixes[0] != ".py" {
		t.Fatalf("Suffixes = %v, want [.py .pyc]", p.Suffixes)
	}
	p = config.NewPolicy(config.WithSuffixes())
	if len(p.Suffixes) != 1 || p.Suffixes[0] != ".go" {
		t.Fatalf("Suffixes = %v, want [.go]", p.Suffixes)
	}
}

func TestSetDefaults_ObservedByResolve(t *testing.T) {
	t.Cleanup(config.ResetDefaults)

	config.SetDefaults(config.WithRaise(false), config.WithMatchAll(false))

	got := config.Resolve()
	if got.RaiseErrors {
		t.Fatalf("RaiseErrors = %v, want false after SetDefaults", got.RaiseErrors)
	}
	if got.MatchAll {
		t.Fatalf("MatchAll = %v, want false after SetDefaults", got.MatchAll)
	}
}

func TestResolve_OptionsOverrideDefaults(t *testing.T) {
	t.Cleanup(config.ResetDefaults)

	config.SetDefaults(config.WithRaise(false))

	got := config.Resolve(config.WithRaise(true))
	if !got.RaiseErrors {
		t.Fatalf("RaiseErrors = %v, want true from per-call override", got.RaiseErrors)
	}

	// The process default is untouched.
	if config.Default().RaiseErrors {
		t.Fatalf("process default mutated by per-call override")
	}
}

func TestDefault_CopyOwnsSuffixes(t *testing.T) {
	t.Cleanup(config.ResetDefaults)

	a := config.Default()
	a.Suffixes[0] = ".mutated"

	if config.Default().Suffixes[0] != ".go" {
		t.Fatalf("snapshot suffixes were mutated through a returned copy")
	}
}

func TestResetDefaults(t *testing.T) {
	config.SetDefaults(config.WithRecursive(true), config.WithPrivates(true))
	config.ResetDefaults()

	got := config.Default()
	if got.Recursive || got.IncludePrivates {
		t.Fatalf("ResetDefaults did not restore built-ins: %+v", got)
	}
}
