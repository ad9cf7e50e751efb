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

package report

import (
	"dirpx.dev/scry/apis"
)

// CheckAllOrAny applies checker to every name against target and combines
// the verdicts: conjunction when pol.MatchAll is set, disjunction otherwise.
// An empty name list is vacuously true under conjunction and false under
// disjunction. The combined verdict then funnels through Has.
func CheckAllOrAny(target any, names []string, checker apis.Checker, pol apis.Policy, ctx Context) (bool, error) {
	ctx.Members = names

	if len(names) == 0 {
		return Has(pol.MatchAll, pol, ctx)
	}

	if pol.MatchAll {
		for _, name := range names {
			if !checker.Check(target, name) {
				return Has(false, pol, ctx)
			}
		}
		return true, nil
	}

	for _, name := range names {
		if checker.Check(target, name) {
			return true, nil
		}
	}
	return Has(false, pol, ctx)
}
