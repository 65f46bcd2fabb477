// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"net/http"
	"path/filepath"
	"testing"

	"cogentcore.org/ar/math32"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBuilder returns a builder with default settings that
// stages downloads in memory.
func newTestBuilder(t *testing.T, assets fs.FS) *Builder {
	t.Helper()
	mfs, err := mem.NewFS()
	require.NoError(t, err)
	return &Builder{
		Settings:   NewSettings(),
		Assets:     assets,
		HTTPClient: http.DefaultClient,
		StagingFS:  mfs,
	}
}

// translation returns transform values that move by the given offset.
func translation(x, y, z float32) []float64 {
	m := math32.Identity4()
	m.SetTranslation(x, y, z)
	return EncodeTransform(*m)
}

func assertVec3(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}

// pngBytes returns a PNG image of the given size in one color.
func pngBytes(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	return b.Bytes()
}

func TestNewBuilder(t *testing.T) {
	s := NewSettings()
	s.StagingDir = filepath.Join(t.TempDir(), "staging", "ar")
	b, err := NewBuilder(s, nil)
	require.NoError(t, err)
	assert.Equal(t, http.DefaultClient, b.HTTPClient)
	assert.DirExists(t, s.StagingDir)

	require.NoError(t, b.stage("a.glb", []byte("data")))
	assert.FileExists(t, filepath.Join(s.StagingDir, "a.glb"))
	b.unstage("a.glb")
	assert.NoFileExists(t, filepath.Join(s.StagingDir, "a.glb"))
}
