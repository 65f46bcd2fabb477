// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/ar/math32"
)

// Plane is a flat 2D plane, which can be oriented along any
// axis facing either positive or negative
type Plane struct {
	MeshBase

	// axis along which the normal perpendicular to the plane points.  E.g., if the Y axis is specified, then it is a standard X-Z ground plane -- see also NormNeg for whether it is facing in the positive or negative of the given axis.
	NormAxis math32.Dims

	// if false, the plane normal facing in the positive direction along specified NormAxis, otherwise it faces in the negative if true
	NormNeg bool

	// 2D size of plane
	Size math32.Vector2

	// offset from origin along direction of normal to the plane
	Offset float32
}

// NewPlane returns a new Plane mesh with given name and size,
// with its normal pointing by default in the positive Y axis
// (i.e., a "ground" plane). Offset is 0.
func NewPlane(name string, width, height float32) *Plane {
	pl := &Plane{}
	pl.Name = name
	pl.NormAxis = math32.Y
	pl.Size.Set(width, height)
	return pl
}

// SetSize sets the width and height of the plane.
func (pl *Plane) SetSize(width, height float32) *Plane {
	pl.Size.Set(width, height)
	return pl
}

// planeAxes returns the axes spanned by the width and height of the plane.
func (pl *Plane) planeAxes() (wd, ht math32.Dims) {
	switch pl.NormAxis {
	case math32.X:
		return math32.Z, math32.Y
	case math32.Z:
		return math32.X, math32.Y
	default:
		return math32.X, math32.Z
	}
}

// Geometry generates the 4 vertices and 2 triangles of the plane,
// centered on the origin, with texture coordinates running from
// (0,0) at the top-left to (1,1) at the bottom-right.
func (pl *Plane) Geometry() *GenMesh {
	ms := NewGenMesh(pl.Name)
	wd, ht := pl.planeAxes()
	off := pl.Offset
	nrm := math32.Vector3{}
	if pl.NormNeg {
		off = -off
		nrm.SetDim(pl.NormAxis, -1)
	} else {
		nrm.SetDim(pl.NormAxis, 1)
	}
	corners := [4]math32.Vector2{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}}
	var pts [4]math32.Vector3
	for i, c := range corners {
		p := math32.Vector3{}
		p.SetDim(wd, c.X*pl.Size.X)
		p.SetDim(ht, c.Y*pl.Size.Y)
		p.SetDim(pl.NormAxis, off)
		pts[i] = p
		ms.Vertex.AppendVector3(p)
		ms.Normal.AppendVector3(nrm)
		ms.TexCoord.Append(c.X+0.5, 0.5-c.Y)
	}
	if math32.Normal(pts[0], pts[1], pts[2]).Dot(nrm) >= 0 {
		ms.Index.Append(0, 1, 2, 0, 2, 3)
	} else {
		ms.Index.Append(0, 2, 1, 0, 3, 2)
	}
	return ms
}
