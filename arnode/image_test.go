// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageNode(t *testing.T) {
	file := filepath.Join(t.TempDir(), "poster.png")
	require.NoError(t, os.WriteFile(file, pngBytes(t, 40, 20, color.RGBA{255, 0, 0, 255}), 0o644))
	b := newTestBuilder(t, nil)

	gp, err := b.ImageNode("poster", file, translation(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "poster", gp.Name)
	assertVec3(t, math32.Vec3(1, 0, 0), gp.Pose.Pos)

	sld := gp.Child(0).AsSolid()
	require.NotNil(t, sld)
	assertVec3(t, math32.Vec3(0.0025, 0.0025, 0.0025), sld.Pose.Scale)
	pl, ok := sld.Mesh.(*xyz.Plane)
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(40, 20), pl.Size)
	assert.True(t, sld.Material.IsDoubleSided())
	require.NotNil(t, sld.Material.Texture)
	img := sld.Material.Texture.Image()
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 0))
}

func TestImageNodeErrors(t *testing.T) {
	dir := t.TempDir()
	b := newTestBuilder(t, nil)

	_, err := b.ImageNode("img", filepath.Join(dir, "missing.png"), nil)
	assert.ErrorIs(t, err, ErrImageUnreadable)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))
	_, err = b.ImageNode("img", bad, nil)
	assert.ErrorIs(t, err, ErrImageUnreadable)
}
