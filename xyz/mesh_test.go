// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/ar/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneGeometry(t *testing.T) {
	pl := NewPlane("p", 2, 4)
	pl.NormAxis = math32.Z
	ms := pl.Geometry()
	require.Equal(t, 4, ms.NumVertex())
	assert.Equal(t, math32.ArrayU32{0, 1, 2, 0, 2, 3}, ms.Index)

	bb := ms.BBox()
	assertVec3(t, math32.Vec3(-1, -2, 0), bb.Min)
	assertVec3(t, math32.Vec3(1, 2, 0), bb.Max)
	var v math32.Vector3
	ms.Normal.GetVector3(0, &v)
	assert.Equal(t, math32.Vec3(0, 0, 1), v)
	var uv math32.Vector2
	ms.TexCoord.GetVector2(0, &uv)
	assert.Equal(t, math32.Vec2(0, 1), uv)

	pl.NormNeg = true
	ms = pl.Geometry()
	assert.Equal(t, math32.ArrayU32{0, 2, 1, 0, 3, 2}, ms.Index)
	ms.Normal.GetVector3(0, &v)
	assert.Equal(t, math32.Vec3(0, 0, -1), v)
}

func TestGenMeshTransform(t *testing.T) {
	ms := NewPlane("p", 1, 1).Geometry()
	m := &math32.Matrix4{}
	m.SetTransform(math32.Vec3(0, 1, 0), math32.Quat{W: 1}, math32.Vec3(2, 2, 2))
	ms.Transform(m)
	bb := ms.BBox()
	assertVec3(t, math32.Vec3(-1, 1, -1), bb.Min)
	assertVec3(t, math32.Vec3(1, 1, 1), bb.Max)
	var n math32.Vector3
	ms.Normal.GetVector3(0, &n)
	assertVec3(t, math32.Vec3(0, 1, 0), n)

	ix := append(math32.ArrayU32(nil), ms.Index...)
	m.SetScale(-1, 1, 1)
	ms.Transform(m)
	assert.Equal(t, ix[1], ms.Index[2])
	assert.Equal(t, ix[2], ms.Index[1])
}

func TestGenMeshAppend(t *testing.T) {
	a := NewPlane("a", 1, 1).Geometry()
	b := NewPlane("b", 1, 1).Geometry()
	b.SetColor(1, 0, 0, 0.5)
	a.Append(b)

	assert.Equal(t, 8, a.NumVertex())
	assert.Equal(t, 12, a.NumIndex())
	assert.Equal(t, uint32(4), a.Index[6])
	assert.True(t, a.HasColor)
	assert.True(t, a.Transparent)
	require.Equal(t, 32, len(a.Color))
	assert.Equal(t, float32(0), a.Color[0])
	assert.Equal(t, float32(1), a.Color[16])

	c := a.Clone()
	c.Vertex[0] = 100
	assert.NotEqual(t, float32(100), a.Vertex[0])
}

func TestComputeNormals(t *testing.T) {
	ms := NewPlane("p", 1, 1).Geometry()
	ms.Normal = nil
	ms.ComputeNormals()
	require.Equal(t, 12, len(ms.Normal))
	var n math32.Vector3
	ms.Normal.GetVector3(3, &n)
	assertVec3(t, math32.Vec3(0, 1, 0), n)
}

func TestFlattenedClone(t *testing.T) {
	root := NewGroup("model")
	root.SetPos(0, 0, 5)
	a := NewSolid("a").SetMesh(NewPlane("a", 1, 1)).SetColor(color.RGBA{255, 0, 0, 255})
	b := NewSolid("b").SetMesh(NewPlane("b", 1, 1)).SetColor(color.RGBA{0, 0, 255, 255})
	b.SetPos(2, 0, 0)
	AddChild(root, a)
	AddChild(a, b)

	fs := FlattenedClone(root)
	assert.Equal(t, "model", fs.Name)
	assertVec3(t, math32.Vec3(0, 0, 5), fs.Pose.Pos)
	assert.Equal(t, 0, fs.NumChildren())
	ms := fs.Mesh.Geometry()
	assert.Equal(t, 8, ms.NumVertex())
	bb := ms.BBox()
	assertVec3(t, math32.Vec3(-0.5, 0, -0.5), bb.Min)
	assertVec3(t, math32.Vec3(2.5, 0, 0.5), bb.Max)

	// colors differ, so they are baked per vertex
	assert.True(t, ms.HasColor)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, fs.Material.Color)
	assert.Equal(t, float32(1), ms.Color[0])
	assert.Equal(t, float32(1), ms.Color[16+2])

	// source is unchanged
	assert.Equal(t, 1, root.NumChildren())
	assert.Equal(t, 4, a.Mesh.Geometry().NumVertex())

	b.SetColor(color.RGBA{255, 0, 0, 255})
	fs = FlattenedClone(root)
	assert.False(t, fs.Mesh.Geometry().HasColor)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, fs.Material.Color)
}

type testFrames struct {
	img image.Image
}

func (tf *testFrames) Frame() image.Image {
	return tf.img
}

func TestSurface(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 2, 2))
	frame.Set(0, 0, color.RGBA{255, 0, 0, 255})
	src := &testFrames{}

	sf := NewSurface("video", 4, 4, src)
	img := sf.Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(1, 1))

	src.img = frame
	sf.Render()
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, sf.Image().RGBAAt(1, 1))

	sf.FlipY = true
	sf.Render()
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, sf.Image().RGBAAt(1, 2))
	assert.False(t, sf.Transparent)
}
