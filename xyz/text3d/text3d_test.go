// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text3d

import (
	"testing"

	"cogentcore.org/ar/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float32) contour {
	return contour{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func triArea(poly contour, tris [][3]int) float32 {
	var a float32
	for _, t := range tris {
		p0, p1, p2 := poly[t[0]], poly[t[1]], poly[t[2]]
		a += p1.Sub(p0).Cross(p2.Sub(p0)) / 2
	}
	return a
}

func TestTriangulateSquareWithHole(t *testing.T) {
	outer := square(0, 0, 4, 4)
	hole := square(1, 1, 3, 3)

	// clockwise outer and counter-clockwise hole, as in CFF fonts
	shs := shapes([]contour{outer.reversed(), hole})
	require.Len(t, shs, 1)
	assert.Greater(t, shs[0].outer.area(), float32(0))
	require.Len(t, shs[0].holes, 1)
	assert.Less(t, shs[0].holes[0].area(), float32(0))

	poly := bridge(shs[0].outer, shs[0].holes)
	assert.Len(t, poly, 10)
	tris := triangulate(poly)
	assert.InDelta(t, 12, triArea(poly, tris), 1e-4)
	for _, tr := range tris {
		p0, p1, p2 := poly[tr[0]], poly[tr[1]], poly[tr[2]]
		assert.GreaterOrEqual(t, p1.Sub(p0).Cross(p2.Sub(p0)), float32(0))
	}
}

func TestTriangulateConcave(t *testing.T) {
	// an L shape
	poly := contour{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	tris := triangulate(poly)
	assert.Len(t, tris, 4)
	assert.InDelta(t, 3, triArea(poly, tris), 1e-5)
}

func TestShapesNested(t *testing.T) {
	// an island inside a hole is a separate outer shape
	cs := []contour{square(0, 0, 10, 10), square(2, 2, 8, 8).reversed(), square(4, 4, 6, 6)}
	shs := shapes(cs)
	require.Len(t, shs, 2)
	assert.Len(t, shs[0].holes, 1)
	assert.Len(t, shs[1].holes, 0)
}

func TestMesh(t *testing.T) {
	opts := Options{}
	opts.Defaults()
	ms, err := Mesh("Ao", opts)
	require.NoError(t, err)
	require.Greater(t, ms.NumVertex(), 0)
	assert.Equal(t, 0, ms.NumIndex()%3)
	assert.Equal(t, len(ms.Vertex), len(ms.Normal))

	bb := ms.BBox()
	assert.InDelta(t, -opts.Depth/2, bb.Min.Z, 1e-5)
	assert.InDelta(t, opts.Depth/2, bb.Max.Z, 1e-5)
	// glyphs sit on the baseline and are smaller than the em size
	assert.InDelta(t, 0, bb.Min.Y, 0.02)
	assert.Less(t, bb.Max.Y, opts.Size)
	assert.Greater(t, bb.Size().X, opts.Size/2)

	two, err := Mesh("Ao\nAo", opts)
	require.NoError(t, err)
	assert.Equal(t, 2*ms.NumVertex(), two.NumVertex())
	assert.Greater(t, two.BBox().Size().Y, opts.Size)
}

func TestMeshBlank(t *testing.T) {
	opts := Options{}
	opts.Defaults()
	ms, err := Mesh("  ", opts)
	require.NoError(t, err)
	assert.Equal(t, 0, ms.NumVertex())
}

func TestMeshFlat(t *testing.T) {
	ms, err := Mesh("I", Options{Size: 1})
	require.NoError(t, err)
	require.Greater(t, ms.NumVertex(), 0)
	var n math32.Vector3
	for i := 0; i < len(ms.Normal); i += 3 {
		ms.Normal.GetVector3(i, &n)
		assert.Equal(t, math32.Vec3(0, 0, 1), n)
	}
}
