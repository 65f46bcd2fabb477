// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string  `yaml:"name"`
	Scale float32 `yaml:"scale"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	in := &testStruct{Name: "chair", Scale: 0.01}
	require.NoError(t, Save(in, fn))

	out := &testStruct{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestRead(t *testing.T) {
	out := &testStruct{Name: "keep"}
	require.NoError(t, Read(out, strings.NewReader("")))
	assert.Equal(t, "keep", out.Name)

	require.NoError(t, Read(out, strings.NewReader("scale: 2\n")))
	assert.Equal(t, "keep", out.Name)
	assert.Equal(t, float32(2), out.Scale)

	assert.Error(t, Read(out, strings.NewReader("scale: [")))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"ar.yaml": &fstest.MapFile{Data: []byte("name: lamp\n")}}
	out := &testStruct{}
	require.NoError(t, OpenFS(out, fsys, "ar.yaml"))
	assert.Equal(t, "lamp", out.Name)
	assert.Error(t, OpenFS(out, fsys, "missing.yaml"))
}
