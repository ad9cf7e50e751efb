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
	"os"
	"reflect"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/modules"
)

// NewModuleStrategy matches loaded packages and stops the chain.
func NewModuleStrategy() apis.InspectStrategy {
	return &moduleStrategy{}
}

type moduleStrategy struct{}

var _ apis.InspectStrategy = (*moduleStrategy)(nil)

func (*moduleStrategy) TryInspect(item any, pol apis.Policy) (apis.Inspector, bool) {
	if m, ok := item.(*modules.Module); ok && m != nil {
		return NewModule(m, optionsFor(pol)...), true
	}
	return nil, false
}

// NewDirStrategy matches strings naming an existing directory.
func NewDirStrategy() apis.InspectStrategy {
	return &dirStrategy{}
}

type dirStrategy struct{}

var _ apis.InspectStrategy = (*dirStrategy)(nil)

func (*dirStrategy) TryInspect(item any, pol apis.Policy) (apis.Inspector, bool) {
	path, ok := item.(string)
	if !ok {
		return nil, false
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, false
	}
	return NewDir(path, optionsFor(pol)...), true
}

// NewTypeStrategy matches bare reflect.Type items.
func NewTypeStrategy() apis.InspectStrategy {
	return &typeStrategy{}
}

type typeStrategy struct{}

var _ apis.InspectStrategy = (*typeStrategy)(nil)

func (*typeStrategy) TryInspect(item any, pol apis.Policy) (apis.Inspector, bool) {
	if t, ok := item.(reflect.Type); ok && t != nil {
		return NewType(t, optionsFor(pol)...), true
	}
	return nil, false
}

// NewValueStrategy matches any non-nil item. It terminates the chain.
func NewValueStrategy() apis.InspectStrategy {
	return &valueStrategy{}
}

type valueStrategy struct{}

var _ apis.InspectStrategy = (*valueStrategy)(nil)

func (*valueStrategy) TryInspect(item any, pol apis.Policy) (apis.Inspector, bool) {
	if item == nil {
		return nil, false
	}
	return NewValue(item, optionsFor(pol)...), true
}

// optionsFor replays a resolved policy as per-call options, so views built
// by strategies inherit the caller's effective policy.
func optionsFor(pol apis.Policy) []config.Option {
	return []config.Option{
		func(p *apis.Policy) { *p = pol },
	}
}
