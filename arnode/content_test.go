// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "parts.glb")
	require.NoError(t, os.WriteFile(model, partsGLB(t, 2), 0o644))
	img := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(img, pngBytes(t, 4, 4, color.RGBA{0, 0, 255, 255}), 0o644))
	b := newTestBuilder(t, fstest.MapFS{"parts.glb": {Data: partsGLB(t, 3)}})

	tests := []struct {
		content  Content
		name     string
		children int
	}{
		{EmbeddedModel{Name: "embedded", Path: "parts.glb"}, "embedded", 3},
		{FilesystemModel{Name: "file", Path: model}, "file", 2},
		{FilesystemModel{Name: "unscaled", Path: model, Unscaled: true}, "unscaled", 2},
		{TextLabel{Name: "text", Text: "Hi"}, "text", 1},
		{ImageAsset{Name: "image", Path: img}, "image", 1},
		{VideoContent{Name: "video"}, "video", 1},
	}
	for _, tt := range tests {
		n, err := b.Build(tt.content, translation(0, 0, 1))
		require.NoError(t, err, tt.name)
		nb := n.AsNodeBase()
		assert.Equal(t, tt.name, nb.Name)
		assert.Equal(t, tt.children, nb.NumChildren(), tt.name)
		assertVec3(t, math32.Vec3(0, 0, 1), nb.Pose.Pos)
	}

	n, err := b.Build(FilesystemModel{Name: "unscaled", Path: model, Unscaled: true}, nil)
	require.NoError(t, err)
	assertVec3(t, math32.Vec3(1, 1, 1), n.AsNodeBase().Child(0).AsNodeBase().Pose.Scale)
}

func TestBuildErrors(t *testing.T) {
	b := newTestBuilder(t, nil)

	n, err := b.Build(RemoteModel{Name: "remote", URL: "https://example.com/m.glb"}, nil)
	assert.ErrorIs(t, err, ErrAsyncContent)
	assert.Nil(t, n)

	n, err = b.Build(TextLabel{Name: "text", Text: " "}, nil)
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Nil(t, n)

	n, err = b.Build(ImageAsset{Name: "image", Path: "missing.png"}, nil)
	assert.ErrorIs(t, err, ErrImageUnreadable)
	assert.Nil(t, n)

	_, err = b.Build(nil, nil)
	assert.Error(t, err)
}

func TestBuildPlane(t *testing.T) {
	b := newTestBuilder(t, nil)
	n, err := b.Build(PlaneAnchorUpdate{Anchor: PlaneAnchor{Extent: math32.Vec3(1, 0, 2)}}, translation(9, 9, 9))
	require.NoError(t, err)
	sld := n.AsSolid()
	require.NotNil(t, sld)
	assertVec3(t, math32.Vec3(0, 0, 0), sld.Pose.Pos)

	up := PlaneAnchorUpdate{Anchor: PlaneAnchor{Extent: math32.Vec3(2, 0, 2), Center: math32.Vec3(1, 0, 1)}, Node: n}
	n2, err := b.Build(up, nil)
	require.NoError(t, err)
	assert.Same(t, sld, n2.AsSolid())
	assert.Equal(t, math32.Vec2(2, 2), sld.Mesh.(*xyz.Plane).Size)
	assertVec3(t, math32.Vec3(1, 0, 1), sld.Pose.Pos)
}
