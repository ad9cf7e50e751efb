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

package inspector_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/scry/apis"
	"dirpx.dev/scry/config"
	"dirpx.dev/scry/inspector"
	"dirpx.dev/scry/modules"
)

type probe struct {
	Count int
}

func (p probe) Spin(steps int) error { return nil }

func (p *probe) Halt() {}

func (p probe) Label() string { return "probe" }

func TestInspectDispatch(t *testing.T) {
	view, err := inspector.Inspect(probe{})
	require.NoError(t, err)
	assert.IsType(t, &inspector.ValueView{}, view)

	view, err = inspector.Inspect(reflect.TypeOf(probe{}))
	require.NoError(t, err)
	assert.IsType(t, &inspector.TypeView{}, view)

	view, err = inspector.Inspect(t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &inspector.DirView{}, view)

	view, err = inspector.Inspect("not a directory")
	require.NoError(t, err)
	assert.IsType(t, &inspector.ValueView{}, view, "plain strings fall through to the value view")

	_, err = inspector.Inspect(nil)
	require.ErrorIs(t, err, apis.ErrUnsupportedTarget)
}

func TestValueView(t *testing.T) {
	view := inspector.NewValue(probe{Count: 3})

	assert.Equal(t, []string{"Count", "Halt", "Label", "Spin"}, view.Attributes())
	assert.Equal(t, []string{"Count"}, view.Fields())
	assert.Equal(t, []string{"Count"}, view.Variables())
	assert.Equal(t, []string{"Halt", "Spin"}, view.Methods())
	assert.Equal(t, []string{"Label"}, view.Properties())
	assert.True(t, view.Has("Spin"))
	assert.False(t, view.Has("Nope"))
	assert.Equal(t, apis.Scalar, view.Shape())
	assert.Equal(t, "Spin(int) error", view.Signatures()["Spin"])
	assert.Equal(t, 3, view.Values()["Count"])
	assert.Contains(t, view.Describe(), "probe")
}

func TestValueViewNeverErrors(t *testing.T) {
	view := inspector.NewValue(42)

	assert.Empty(t, view.Attributes())
	assert.Empty(t, view.Fields())
	assert.False(t, view.Has("anything"))
	assert.Equal(t, apis.Scalar, view.Shape())
}

func TestTypeView(t *testing.T) {
	view := inspector.NewType(reflect.TypeOf(probe{}))

	assert.Equal(t, []string{"Count"}, view.Fields())
	assert.Equal(t, []string{"Count"}, view.Variables())
	assert.Equal(t, []string{"Halt", "Spin"}, view.Methods())
	assert.True(t, view.Has("Label"))
	assert.Equal(t, apis.Scalar, view.Shape())
}

func TestDirView(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.test/probe\n\ngo 1.21\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "probe.go"), []byte("package probe\n\ntype Probe struct{}\n"), 0o644))
	t.Cleanup(modules.ResetCache)
	ctx := context.Background()

	view := inspector.NewDir(root)
	assert.Equal(t, []string{"go.mod", "probe.go"}, view.Files(ctx))
	assert.Equal(t, []string{"probe.go"}, view.Sources(ctx))
	assert.True(t, view.Has(ctx, "probe.go"))
	assert.False(t, view.Has(ctx, "nope.go"))

	mods := view.Modules(ctx)
	require.Len(t, mods, 1)
	assert.Equal(t, "probe", mods[0].Name())
}

func TestModuleView(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.test/probe\n\ngo 1.21\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "probe.go"), []byte("package probe\n\ntype Probe struct{}\n\nfunc New() *Probe { return nil }\n"), 0o644))
	t.Cleanup(modules.ResetCache)

	mod, err := modules.Load(context.Background(), root)
	require.NoError(t, err)

	view, err := inspector.Inspect(mod)
	require.NoError(t, err)
	mv, ok := view.(*inspector.ModuleView)
	require.True(t, ok)

	assert.Equal(t, []string{"Probe"}, mv.Types())
	assert.Equal(t, []string{"New"}, mv.Funcs())
	assert.True(t, mv.Has("Probe"))
	assert.False(t, mv.Has("Nope"))
	assert.Equal(t, "example.test/probe", mv.Describe())
}

func TestViewHonorsOptions(t *testing.T) {
	type hidden struct {
		Shown  int
		hidden int
	}

	view := inspector.NewValue(hidden{}, config.WithPrivates(true))
	assert.Equal(t, []string{"Shown", "hidden"}, view.Fields())
}

func TestCustomChain(t *testing.T) {
	chain := inspector.NewChain(nil, inspector.NewTypeStrategy())

	_, ok := chain.Inspect("text", apis.Policy{})
	assert.False(t, ok, "no terminal strategy in this chain")

	view, ok := chain.Inspect(reflect.TypeOf(0), apis.Policy{})
	require.True(t, ok)
	assert.IsType(t, &inspector.TypeView{}, view)
}
