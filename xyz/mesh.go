// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/ar/math32"
)

// Mesh parametrizes the mesh-based shape used for rendering a [Solid].
// Only indexed triangle meshes are supported.
// Per-vertex Color is optional.
type Mesh interface {
	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase

	// Geometry returns the indexed triangle data for the mesh,
	// generating it first for parametric shapes.
	Geometry() *GenMesh
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {
	// Name is the name of the mesh.
	Name string

	// HasColor is whether the mesh has per-vertex colors
	// as RGBA float32 values per vertex.
	HasColor bool

	// Transparent is whether the color has transparency;
	// not worth checking manually. This is only valid if
	// [MeshBase.HasColor] is true.
	Transparent bool
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

///////////////////////////////////////////////////////////////
// GenMesh

// GenMesh is a generic, arbitrary Mesh, storing its values
type GenMesh struct {
	MeshBase
	Vertex   math32.ArrayF32
	Normal   math32.ArrayF32
	TexCoord math32.ArrayF32
	Color    math32.ArrayF32
	Index    math32.ArrayU32
}

// NewGenMesh returns a new empty [GenMesh] with the given name.
func NewGenMesh(name string) *GenMesh {
	ms := &GenMesh{}
	ms.Name = name
	return ms
}

func (ms *GenMesh) Geometry() *GenMesh {
	return ms
}

// NumVertex returns the number of [math32.Vector3] vertex points.
func (ms *GenMesh) NumVertex() int {
	return len(ms.Vertex) / 3
}

// NumIndex returns the number of indexes.
func (ms *GenMesh) NumIndex() int {
	return len(ms.Index)
}

// BBox returns the bounding box of the vertex positions.
func (ms *GenMesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	var v math32.Vector3
	for i := 0; i+2 < len(ms.Vertex); i += 3 {
		ms.Vertex.GetVector3(i, &v)
		bb.ExpandByPoint(v)
	}
	return bb
}

// Translate moves all vertex positions by the given offset.
func (ms *GenMesh) Translate(off math32.Vector3) {
	var v math32.Vector3
	for i := 0; i+2 < len(ms.Vertex); i += 3 {
		ms.Vertex.GetVector3(i, &v)
		ms.Vertex.SetVector3(i, v.Add(off))
	}
}

// Transform applies the given transform to all vertex positions
// and normals. Normals are re-normalized after the linear part
// of the matrix is applied.
func (ms *GenMesh) Transform(m *math32.Matrix4) {
	var v math32.Vector3
	for i := 0; i+2 < len(ms.Vertex); i += 3 {
		ms.Vertex.GetVector3(i, &v)
		ms.Vertex.SetVector3(i, v.MulMatrix4(m))
	}
	for i := 0; i+2 < len(ms.Normal); i += 3 {
		ms.Normal.GetVector3(i, &v)
		ms.Normal.SetVector3(i, v.MulMatrix4AsVector4(m, 0).Normal())
	}
	if m.Determinant3() < 0 {
		// mirrored transforms flip the triangle winding
		for i := 0; i+2 < len(ms.Index); i += 3 {
			ms.Index[i+1], ms.Index[i+2] = ms.Index[i+2], ms.Index[i+1]
		}
	}
}

// Append adds the geometry of the other mesh to this one.
// Missing normals, texture coordinates and colors are zero-filled
// so that all arrays stay aligned with the vertices.
func (ms *GenMesh) Append(other *GenMesh) {
	base := uint32(ms.NumVertex())
	on := other.NumVertex()
	ms.Vertex.Append(other.Vertex...)
	ms.Normal.Append(padded(other.Normal, on*3)...)
	ms.TexCoord.Append(padded(other.TexCoord, on*2)...)
	if other.HasColor || ms.HasColor {
		ms.Color = padded(ms.Color, int(base)*4)
		ms.Color.Append(padded(other.Color, on*4)...)
		ms.HasColor = true
		ms.Transparent = ms.Transparent || other.Transparent
	}
	for _, ix := range other.Index {
		ms.Index.Append(base + ix)
	}
}

// SetColor sets all per-vertex colors to the given RGBA values (0-1).
func (ms *GenMesh) SetColor(r, g, b, a float32) {
	n := ms.NumVertex()
	ms.Color = math32.NewArrayF32(0, n*4)
	for i := 0; i < n; i++ {
		ms.Color.Append(r, g, b, a)
	}
	ms.HasColor = true
	ms.Transparent = a < 1
}

// Clone returns a copy of the mesh that does not share any arrays.
func (ms *GenMesh) Clone() *GenMesh {
	nm := &GenMesh{MeshBase: ms.MeshBase}
	nm.Vertex = append(math32.ArrayF32(nil), ms.Vertex...)
	nm.Normal = append(math32.ArrayF32(nil), ms.Normal...)
	nm.TexCoord = append(math32.ArrayF32(nil), ms.TexCoord...)
	nm.Color = append(math32.ArrayF32(nil), ms.Color...)
	nm.Index = append(math32.ArrayU32(nil), ms.Index...)
	return nm
}

// ComputeNormals sets the vertex normals from the triangle faces,
// averaging over the faces that share each vertex.
func (ms *GenMesh) ComputeNormals() {
	n := ms.NumVertex()
	norms := make([]math32.Vector3, n)
	var a, b, c math32.Vector3
	for i := 0; i+2 < len(ms.Index); i += 3 {
		i0, i1, i2 := int(ms.Index[i]), int(ms.Index[i+1]), int(ms.Index[i+2])
		ms.Vertex.GetVector3(i0*3, &a)
		ms.Vertex.GetVector3(i1*3, &b)
		ms.Vertex.GetVector3(i2*3, &c)
		fn := math32.Normal(a, b, c)
		norms[i0].SetAdd(fn)
		norms[i1].SetAdd(fn)
		norms[i2].SetAdd(fn)
	}
	ms.Normal = math32.NewArrayF32(0, n*3)
	for _, nv := range norms {
		ms.Normal.AppendVector3(nv.Normal())
	}
}

func padded(a math32.ArrayF32, n int) math32.ArrayF32 {
	if len(a) >= n {
		return a[:n]
	}
	out := make(math32.ArrayF32, n)
	copy(out, a)
	return out
}
