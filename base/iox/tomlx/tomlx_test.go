// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Scale float32
	Tags  []string
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	in := &testStruct{Name: "chair", Scale: 0.01, Tags: []string{"a", "b"}}
	require.NoError(t, Save(in, fn))

	out := &testStruct{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)

	assert.Error(t, Open(out, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"ar.toml": &fstest.MapFile{Data: []byte("Name = \"lamp\"\nScale = 0.5\n")}}
	out := &testStruct{Name: "keep", Tags: []string{"x"}}
	require.NoError(t, OpenFS(out, fsys, "ar.toml"))
	assert.Equal(t, "lamp", out.Name)
	assert.Equal(t, float32(0.5), out.Scale)
	assert.Equal(t, []string{"x"}, out.Tags)

	assert.Error(t, OpenFS(out, fsys, "missing.toml"))
}

func TestReadWrite(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&testStruct{Name: "lamp"}, &b))
	assert.Contains(t, b.String(), "lamp")

	out := &testStruct{}
	require.NoError(t, Read(out, &b))
	assert.Equal(t, "lamp", out.Name)
	assert.Error(t, Read(out, strings.NewReader("Name = ")))
}
