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

// Package scry answers introspection questions about Go values, types,
// packages, and directories with one uniform vocabulary: has, is, name,
// list, map.
//
// scry is responsible for turning "what does this thing look like?" into
// predicate calls with predictable results. It classifies the members of
// a value (fields, methods, properties), describes what containers hold,
// enumerates the declarations of a loaded package, and walks directory
// trees for files, folders, and sources.
//
// # Design
//
// Every question goes through the same three stages:
//
//   - Policy resolution: each call resolves an effective apis.Policy by
//     copying the process-wide defaults and applying per-call options.
//     The defaults live in a read-mostly atomic snapshot owned by the
//     config package; readers never lock, writers publish a brand-new
//     snapshot.
//
//   - Computation: the predicate families do their work with the reflect
//     package (attrs, containers), golang.org/x/tools/go/packages
//     (modules), or the filesystem (disks).
//
//   - Reporting: the computed result funnels through the report package,
//     which owns the raise-or-default decision. Under a raising policy a
//     negative result becomes a typed error; otherwise the caller gets
//     the documented empty default (false, empty slice, empty map).
//
// # Member model
//
// Go members partition into five disjoint kinds:
//
//   - instance variable: a field declared directly on the struct.
//   - class variable: a field promoted from an embedded type.
//   - type method: a method in the value method set.
//   - instance method: a method reachable only through a pointer receiver.
//   - property: a method taking nothing and returning exactly one result.
//
// An attribute is any member. A field (or variable) is either variable
// kind. Composite checks quantify over names with the match-all policy:
// conjunction by default, disjunction when disabled.
//
// # Containers
//
// Collections classify into shapes: slices are sequences, arrays are
// tuples, maps are mappings, maps to struct{} are sets, and everything
// else, strings included, is a scalar. Element questions on scalars are
// shape errors regardless of policy.
//
// # Packages and directories
//
// The modules package loads Go packages from source directories, memoizes
// them per directory, and enumerates their type, function, constant, and
// variable declarations in declaration order. The disks package walks
// directory trees, skipping tooling litter and honoring .gitignore when
// asked, and can eagerly load every package it finds.
//
// # Facades
//
// The inspector package bundles the families behind views. A strategy
// chain picks the most specific view for an item: loaded package, then
// directory path, then reflect.Type, then plain value. Views resolve their
// policy once at construction with raising disabled, so their accessors
// never return errors.
//
// # Usage
//
// Ask direct questions:
//
//	ok, err := scry.IsMethod(widget, "Spin")
//	names, err := scry.NameFields(widget)
//	shape, err := scry.Shape([]int{1, 2})
//
// Or bind a view once and browse:
//
//	view, _ := scry.Inspect(widget)
//	view.(*inspector.ValueView).Methods()
//
// Process-wide defaults are adjusted with SetDefaults and restored with
// ResetDefaults:
//
//	scry.SetDefaults(config.WithRaise(false))
//	defer scry.ResetDefaults()
//
// # Scope
//
// scry reports what is there. It does not modify values, generate code,
// or make policy decisions about what ought to be there; those belong to
// higher layers.
package scry
