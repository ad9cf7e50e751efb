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

package inspector

import (
	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
)

// NewChain builds an inspection chain that tries the given strategies in
// order. Nil strategies are ignored. The returned chain is safe for
// concurrent use provided strategies are safe for concurrent TryInspect
// calls.
func NewChain(strategies ...apis.InspectStrategy) Chain {
	out := make([]apis.InspectStrategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return Chain{strats: out}
}

// Chain is an immutable, order-preserving dispatcher over strategies.
type Chain struct {
	strats []apis.InspectStrategy
}

// Inspect runs strategies in order until one claims the item.
func (c Chain) Inspect(item any, pol apis.Policy) (apis.Inspector, bool) {
	for _, s := range c.strats {
		if view, ok := s.TryInspect(item, pol); ok {
			return view, true
		}
	}
	return nil, false
}

// defaultChain dispatches packages before paths, paths before types, and
// leaves plain values to the terminal strategy.
var defaultChain = NewChain(
	NewModuleStrategy(),
	NewDirStrategy(),
	NewTypeStrategy(),
	NewValueStrategy(),
)

// Inspect builds the most specific view for item: a package view for
// loaded modules, a directory view for paths to existing directories, a
// type view for reflect.Type items, and a value view for everything else.
func Inspect(item any, opts ...config.Option) (apis.Inspector, error) {
	pol := config.Resolve(opts...)
	view, ok := defaultChain.Inspect(item, pol)
	if !ok {
		return nil, apis.ErrUnsupportedTarget
	}
	return view, nil
}
