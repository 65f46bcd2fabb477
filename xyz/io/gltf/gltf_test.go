// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"fmt"
	"image/color"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
	"cogentcore.org/ar/xyz/xyztest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkParts(t *testing.T, gp *xyz.Group, n int) {
	t.Helper()
	require.Equal(t, n, gp.NumChildren())
	for i := 0; i < n; i++ {
		part := gp.Child(i).AsSolid()
		require.NotNil(t, part)
		assert.Equal(t, math32.Vec3(float32(i), 0, 0), part.Pose.Pos)
		assert.Equal(t, 4, part.Mesh.Geometry().NumVertex())
		assert.Equal(t, 6, part.Mesh.Geometry().NumIndex())
		assert.Equal(t, 8, len(part.Mesh.Geometry().TexCoord))

		require.Equal(t, 1, part.NumChildren())
		child := part.Child(0).AsSolid()
		require.NotNil(t, child)
		assert.Equal(t, "part"+string(rune('0'+i))+"_child", child.Name)
		assert.Equal(t, math32.Vec3(0, 1, 0), child.Pose.Pos)
		assert.NotEqual(t, part.Material.Color, child.Material.Color)
	}
}

func TestDecodeGLB(t *testing.T) {
	b, err := xyztest.GLB(xyztest.Parts(3))
	require.NoError(t, err)
	fsys := fstest.MapFS{"assets/parts.glb": &fstest.MapFile{Data: b}}

	gp, err := xyz.OpenFS(fsys, "assets/parts.glb")
	require.NoError(t, err)
	assert.Equal(t, "parts.glb", gp.Name)
	checkParts(t, gp, 3)

	red := gp.Child(0).AsSolid()
	assert.Equal(t, "part0", red.Name)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, red.Material.Color)
	assert.Equal(t, float32(1), red.Material.Opacity)
}

func TestDecodeJSON(t *testing.T) {
	b, err := xyztest.JSON(xyztest.Parts(2))
	require.NoError(t, err)
	fsys := fstest.MapFS{"parts.gltf": &fstest.MapFile{Data: b}}

	gp, err := xyz.OpenFS(fsys, "parts.gltf")
	require.NoError(t, err)
	checkParts(t, gp, 2)
}

func TestDecodeErrors(t *testing.T) {
	fsys := fstest.MapFS{"bad.glb": &fstest.MapFile{Data: []byte("not a model")}}
	_, err := xyz.OpenFS(fsys, "bad.glb")
	assert.ErrorIs(t, err, xyz.ErrDecode)

	_, err = xyz.OpenFS(fsys, "missing.glb")
	assert.ErrorIs(t, err, xyz.ErrUnreadable)

	doc := xyztest.Parts(1)
	doc.Asset.Version = "1.0"
	b, err := xyztest.JSON(doc)
	require.NoError(t, err)
	fsys["old.gltf"] = &fstest.MapFile{Data: b}
	_, err = xyz.OpenFS(fsys, "old.gltf")
	assert.ErrorIs(t, err, xyz.ErrDecode)

	// each node lists the next one twice
	fsys["shared.gltf"] = &fstest.MapFile{Data: nodesJSON(40, func(i int) []int { return []int{i + 1, i + 1} })}
	_, err = xyz.OpenFS(fsys, "shared.gltf")
	assert.ErrorIs(t, err, xyz.ErrDecode)

	fsys["cycle.gltf"] = &fstest.MapFile{Data: nodesJSON(3, func(i int) []int { return []int{(i + 1) % 3} })}
	_, err = xyz.OpenFS(fsys, "cycle.gltf")
	assert.ErrorIs(t, err, xyz.ErrDecode)
}

// nodesJSON returns a .gltf document with n mesh-less nodes, where the
// children of node i < n-1 are given by children(i), and node 0 is the
// only scene root.
func nodesJSON(n int, children func(i int) []int) []byte {
	nodes := make([]string, n)
	for i := range nodes {
		if i == n-1 && children(i)[0] >= n {
			nodes[i] = "{}"
			continue
		}
		cs := children(i)
		ss := make([]string, len(cs))
		for j, c := range cs {
			ss[j] = fmt.Sprint(c)
		}
		nodes[i] = `{"children":[` + strings.Join(ss, ",") + `]}`
	}
	return []byte(`{"asset":{"version":"2.0"},"scene":0,"scenes":[{"nodes":[0]}],"nodes":[` + strings.Join(nodes, ",") + `]}`)
}

func TestDecodeTree(t *testing.T) {
	// a chain of single children is a valid tree
	fsys := fstest.MapFS{"chain.gltf": &fstest.MapFile{Data: nodesJSON(40, func(i int) []int { return []int{i + 1} })}}
	gp, err := xyz.OpenFS(fsys, "chain.gltf")
	require.NoError(t, err)
	depth := 0
	var n xyz.Node = gp
	for n.AsNodeBase().NumChildren() > 0 {
		n = n.AsNodeBase().Child(0)
		depth++
	}
	assert.Equal(t, 40, depth)
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, CheckVersion("2.0"))
	assert.NoError(t, CheckVersion("2.1"))
	assert.Error(t, CheckVersion("1.0"))
	assert.Error(t, CheckVersion("3.0"))
	assert.Error(t, CheckVersion("abc"))
}
