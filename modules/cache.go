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

package modules

import (
	"sync"
)

// cache memoizes loaded packages by absolute directory. Reads go through
// the sync.Map without locking; the mutex keeps the counter consistent on
// the write side.
type cache struct {
	mu    sync.Mutex
	m     sync.Map // map[string]*Module
	count int
}

var store cache

func (c *cache) lookup(dir string) (*Module, bool) {
	if v, ok := c.m.Load(dir); ok {
		return v.(*Module), true
	}
	return nil, false
}

func (c *cache) put(dir string, mod *Module) *Module {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if v, ok := c.m.Load(dir); ok {
		return v.(*Module)
	}
	c.m.Store(dir, mod)
	c.count++
	return mod
}

func (c *cache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *cache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = sync.Map{}
	c.count = 0
}

// CacheSize returns the number of directories with a memoized load.
func CacheSize() int { return store.size() }

// ResetCache clears every memoized load. Subsequent Load calls hit the
// build system again.
func ResetCache() { store.reset() }

// CachedDirs returns a snapshot of memoized directories (order is
// unspecified).
func CachedDirs() []string {
	dirs := make([]string, 0, store.size())
	store.m.Range(func(key, _ any) bool {
		dirs = append(dirs, key.(string))
		return true
	})
	return dirs
}
