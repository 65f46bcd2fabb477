// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"image/color"
	"testing"
	"testing/fstest"

	"cogentcore.org/ar/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadObj = `# two quads with different materials
mtllib quad.mtl
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 2 0 0
v 2 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
usemtl red
f 1/1 2/2 3/3 4/4
usemtl blue
f 2 5 6 3
`

const quadMtl = `newmtl red
Kd 1 0 0
d 0.5
newmtl blue
Kd 0 0 1
map_Kd -s 2 2 blue.png
`

func TestDecode(t *testing.T) {
	fsys := fstest.MapFS{
		"models/quad.obj": &fstest.MapFile{Data: []byte(quadObj)},
		"models/quad.mtl": &fstest.MapFile{Data: []byte(quadMtl)},
	}
	gp, err := xyz.OpenFS(fsys, "models/quad.obj")
	require.NoError(t, err)
	assert.Equal(t, "quad.obj", gp.Name)
	require.Equal(t, 1, gp.NumChildren())

	obj := gp.Child(0).AsNodeBase()
	assert.Equal(t, "quad", obj.Name)
	require.Equal(t, 2, obj.NumChildren())

	red := obj.Child(0).AsSolid()
	require.NotNil(t, red)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, red.Material.Color)
	assert.Equal(t, float32(0.5), red.Material.Opacity)
	assert.False(t, red.Material.CullBack)
	ms := red.Mesh.Geometry()
	assert.Equal(t, 4, ms.NumVertex())
	assert.Equal(t, 6, ms.NumIndex())
	assert.Equal(t, 8, len(ms.TexCoord))
	// normals computed from the face
	assert.Equal(t, float32(1), ms.Normal[2])

	blue := obj.Child(1).AsSolid()
	require.NotNil(t, blue)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, blue.Material.Color)
	tex, ok := blue.Material.Texture.(*xyz.TextureFile)
	require.True(t, ok)
	assert.Equal(t, "models/blue.png", tex.File)
	assert.Equal(t, float32(2), blue.Material.Tiling.Repeat.X)
}

func TestDecodeNoMtl(t *testing.T) {
	fsys := fstest.MapFS{
		"tri.obj": &fstest.MapFile{Data: []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")},
	}
	gp, err := xyz.OpenFS(fsys, "tri.obj")
	require.NoError(t, err)
	require.Equal(t, 1, gp.NumChildren())
	sld := gp.Child(0).AsNodeBase().Child(0).AsSolid()
	require.NotNil(t, sld)
	assert.Equal(t, 3, sld.Mesh.Geometry().NumIndex())
	assert.Equal(t, defaultMat.Diffuse, sld.Material.Color)
}

func TestDecodeErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.obj":   &fstest.MapFile{Data: []byte("v 0 0\n")},
		"range.obj": &fstest.MapFile{Data: []byte("v 0 0 0\nf 1 2 3\n")},
	}
	_, err := xyz.OpenFS(fsys, "bad.obj")
	assert.ErrorIs(t, err, xyz.ErrDecode)
	_, err = xyz.OpenFS(fsys, "range.obj")
	assert.ErrorIs(t, err, xyz.ErrDecode)
	_, err = xyz.OpenFS(fsys, "missing.obj")
	assert.ErrorIs(t, err, xyz.ErrUnreadable)
	_, err = xyz.OpenFS(fsys, "model.fbx")
	assert.ErrorIs(t, err, xyz.ErrUnreadable)
}
