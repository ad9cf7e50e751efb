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

package modules_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/modules"
)

const gadgetsSource = `package gadgets

const Version = "1.0"

var registry = map[string]int{}

type Gadget struct{ ID int }

type secret struct{}

func New(id int) *Gadget { return &Gadget{ID: id} }

func (g *Gadget) Tag() string { return "" }

func helper() {}
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"go.mod":     "module example.test/gadgets\n\ngo 1.21\n",
		"gadgets.go": gadgetsSource,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	t.Cleanup(modules.ResetCache)
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeFixture(t)

	mod, err := modules.Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "gadgets", mod.Name())
	assert.Equal(t, "example.test/gadgets", mod.Path())
	assert.Equal(t, dir, mod.Dir())
}

func TestLoadMemoizes(t *testing.T) {
	dir := writeFixture(t)
	ctx := context.Background()

	first, err := modules.Load(ctx, dir)
	require.NoError(t, err)
	second, err := modules.Load(ctx, dir)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, modules.CacheSize())
	assert.Contains(t, modules.CachedDirs(), dir)

	modules.ResetCache()
	assert.Equal(t, 0, modules.CacheSize())
}

func TestLoadErrors(t *testing.T) {
	empty := t.TempDir()
	t.Cleanup(modules.ResetCache)

	_, err := modules.Load(context.Background(), empty)
	require.Error(t, err)

	broken := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(broken, "go.mod"), []byte("module example.test/broken\n\ngo 1.21\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(broken, "broken.go"), []byte("package broken\n\nfunc Boom() {"), 0o644))

	_, err = modules.Load(context.Background(), broken)
	require.ErrorIs(t, err, modules.ErrBrokenPackage)
}

func TestEnumerations(t *testing.T) {
	dir := writeFixture(t)
	mod, err := modules.Load(context.Background(), dir)
	require.NoError(t, err)

	names, err := modules.NameTypes(mod)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gadget"}, names)

	names, err = modules.NameTypes(mod, config.WithPrivates(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"Gadget", "secret"}, names)

	names, err = modules.NameFuncs(mod, config.WithPrivates(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"New", "helper"}, names, "methods stay off the package scope")

	names, err = modules.NameObjects(mod, config.WithPrivates(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"Version", "registry"}, names)

	typ, err := modules.MapTypes(mod)
	require.NoError(t, err)
	require.Contains(t, typ, "Gadget")
	assert.Equal(t, "Gadget", typ["Gadget"].Name())

	fns, err := modules.ListFuncs(mod)
	require.NoError(t, err)
	require.Len(t, fns, 1)
	assert.Equal(t, "New", fns[0].Name())

	objs, err := modules.MapObjects(mod)
	require.NoError(t, err)
	require.Contains(t, objs, "Version")
}

func TestEnumerationRaisesWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.test/bare\n\ngo 1.21\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bare.go"), []byte("package bare\n"), 0o644))
	t.Cleanup(modules.ResetCache)

	mod, err := modules.Load(context.Background(), dir)
	require.NoError(t, err)

	_, err = modules.NameTypes(mod)
	require.ErrorIs(t, err, apis.ErrLookupFailed)

	names, err := modules.NameTypes(mod, config.WithRaise(false))
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)
}

func TestHasComposites(t *testing.T) {
	dir := writeFixture(t)
	mod, err := modules.Load(context.Background(), dir)
	require.NoError(t, err)

	ok, err := modules.HasTypes(mod, []string{"Gadget"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = modules.HasFuncs(mod, []string{"New", "helper"}, config.WithRaise(false))
	require.NoError(t, err)
	assert.False(t, ok, "unexported names need the privates policy")

	ok, err = modules.HasFuncs(mod, []string{"New", "helper"}, config.WithPrivates(true))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = modules.HasObjects(mod, []string{"Version", "Nope"}, config.WithMatchAll(false))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = modules.HasTypes(mod, []string{"Gadget", "Nope"})
	require.ErrorIs(t, err, apis.ErrLookupFailed)
}
