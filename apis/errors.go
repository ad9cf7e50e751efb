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

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMemberNotFound indicates a requested member name does not resolve
	// on the target at all.
	ErrMemberNotFound = errors.New("scry: member not found")
	// ErrLookupFailed indicates a composite check failed under a raising
	// policy.
	ErrLookupFailed = errors.New("scry: lookup failed")
	// ErrTypeMismatch indicates a classification or type predicate failed
	// under a raising policy.
	ErrTypeMismatch = errors.New("scry: type mismatch")
	// ErrNotAStruct indicates field introspection was requested on a target
	// that is not a struct type.
	ErrNotAStruct = errors.New("scry: target is not a struct")
	// ErrUnsupportedShape indicates container introspection was requested on
	// a target with no container shape. This is a programming error, never
	// subject to the non-raising default policy.
	ErrUnsupportedShape = errors.New("scry: unsupported container shape")
	// ErrUnsupportedTarget indicates the facade factory could not claim the
	// provided item.
	ErrUnsupportedTarget = errors.New("scry: unsupported target")
)

// MemberError reports a member name that does not resolve on a target.
type MemberError struct {
	// Target is the described identity of the examined target.
	Target string
	// Member is the name that failed to resolve.
	Member string
}

// Error implements error.
func (e *MemberError) Error() string {
	return fmt.Sprintf("%s is not a member of %s", e.Member, e.Target)
}

// Unwrap returns ErrMemberNotFound so callers can branch with errors.Is.
func (e *MemberError) Unwrap() error { return ErrMemberNotFound }

// LookupError reports a failed composite check. The message shape differs by
// quantifier so tests and operators can tell "all must match but one failed"
// from "none matched".
type LookupError struct {
	// Target is the described identity of the examined target.
	Target string
	// Members are the names that were checked.
	Members []string
	// MatchAll records the quantifier in force when the check failed.
	MatchAll bool
	// Kind optionally names the member kind checked (attribute, method, ...).
	Kind string
}

// Error implements error.
func (e *LookupError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "member"
	}
	names := strings.Join(e.Members, ", ")
	if e.MatchAll {
		return fmt.Sprintf("at least one of [%s] is not a %s of %s", names, kind, e.Target)
	}
	return fmt.Sprintf("none of [%s] is a %s of %s", names, kind, e.Target)
}

// Unwrap returns ErrLookupFailed so callers can branch with errors.Is.
func (e *LookupError) Unwrap() error { return ErrLookupFailed }

// MismatchError reports a failed single-verdict classification.
type MismatchError struct {
	// Target is the described identity of the examined target.
	Target string
	// Want names the classification that failed (e.g. "struct", "nested").
	Want string
}

// Error implements error.
func (e *MismatchError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("%s failed the type check", e.Target)
	}
	return fmt.Sprintf("%s is not %s", e.Target, e.Want)
}

// Unwrap returns ErrTypeMismatch so callers can branch with errors.Is.
func (e *MismatchError) Unwrap() error { return ErrTypeMismatch }

// ShapeError reports container introspection on an unsupported target shape.
type ShapeError struct {
	// Target is the described identity of the examined target.
	Target string
}

// Error implements error.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s has no container shape", e.Target)
}

// Unwrap returns ErrUnsupportedShape so callers can branch with errors.Is.
func (e *ShapeError) Unwrap() error { return ErrUnsupportedShape }
