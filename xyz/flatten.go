// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/ar/math32"
)

// flatPart is one solid of a subtree with its transform
// relative to the subtree root.
type flatPart struct {
	solid *Solid
	xf    math32.Matrix4
}

// FlattenedClone returns a single new [Solid] that merges the meshes of
// the given node and all of its descendants into one [GenMesh], with each
// descendant transform (relative to n) baked into the vertex data.
// The clone has the name and pose of n and no children; n is unchanged.
// The material is a copy of the first solid's material. When the solids
// differ in color or texture, each one's color is baked into per-vertex
// colors and the material color is set to white.
func FlattenedClone(n Node) *Solid {
	nb := n.AsNodeBase()
	fs := NewSolid(nb.Name)
	fs.Pose.CopyFrom(&nb.Pose)

	var parts []flatPart
	collectFlat(n, math32.Identity4(), &parts)
	ms := NewGenMesh(nb.Name)
	fs.SetMesh(ms)
	if len(parts) == 0 {
		return fs
	}

	first := &parts[0].solid.Material
	mixed := false
	for _, p := range parts[1:] {
		if !p.solid.Material.SameAppearance(first) {
			mixed = true
			break
		}
	}
	fs.Material = first.Clone()
	sameTex := true
	for _, p := range parts {
		g := p.solid.Mesh.Geometry().Clone()
		if !p.xf.IsIdentity() {
			g.Transform(&p.xf)
		}
		mt := &p.solid.Material
		if mt.Texture != first.Texture {
			sameTex = false
		}
		if mixed && !g.HasColor {
			g.SetColor(colorFloats(mt.Color, mt.Opacity))
		}
		ms.Append(g)
	}
	if mixed {
		fs.Material.Color = color.RGBA{255, 255, 255, 255}
		fs.Material.Opacity = 1
		if !sameTex {
			fs.Material.NoTexture()
		}
	}
	return fs
}

func collectFlat(n Node, xf *math32.Matrix4, parts *[]flatPart) {
	if sld := n.AsSolid(); sld != nil && sld.Mesh != nil {
		*parts = append(*parts, flatPart{solid: sld, xf: *xf})
	}
	for _, k := range n.AsNodeBase().Children {
		m := k.AsNodeBase().Pose.Transform()
		collectFlat(k, xf.Mul(&m), parts)
	}
}

// colorFloats returns the 0-1 RGBA components of the given color,
// with alpha multiplied by opacity.
func colorFloats(c color.RGBA, opacity float32) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255 * opacity
}
