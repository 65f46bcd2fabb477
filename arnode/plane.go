// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"image/color"
	"log/slog"

	"cogentcore.org/ar/base/iox/imagex"
	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
)

// PlaneAnchor is the geometry of a detected horizontal surface,
// in the local coordinates of its anchor.
type PlaneAnchor struct {

	// Extent is the size of the surface: X is the width and Z the depth.
	Extent math32.Vector3

	// Center is the center of the surface.
	Center math32.Vector3
}

// CreatePlaneNode returns a new solid for the given plane anchor, lying flat
// on the surface. If textureAsset names an image in [Builder.Assets], the
// plane is covered with that image tiled; otherwise it is translucent,
// at [Settings.UnconfirmedOpacity]. The returned node is kept by the
// caller and updated with [Builder.UpdatePlaneNode].
func (b *Builder) CreatePlaneNode(anchor PlaneAnchor, textureAsset string) *xyz.Solid {
	pl := xyz.NewPlane("plane", anchor.Extent.X, anchor.Extent.Z)
	pl.NormAxis = math32.Z // vertical by default, rotated below
	sld := xyz.NewSolid("plane").SetMesh(pl)
	sld.Material.Color = color.RGBA{255, 255, 255, 255}
	sld.Material.Opacity = b.Settings.UnconfirmedOpacity
	if tex := b.planeTexture(textureAsset); tex != nil {
		sld.SetTexture(tex)
		sld.Material.Tiling.Wrap = true
		sld.Material.Opacity = 1
	}
	sld.SetAxisRotation(1, 0, 0, -90)
	sld.SetPos(anchor.Center.X, 0, anchor.Center.Z)
	return sld
}

// planeTexture returns the texture for the given asset, or nil if
// there is none or it cannot be loaded.
func (b *Builder) planeTexture(asset string) xyz.Texture {
	if asset == "" || b.Assets == nil {
		return nil
	}
	img, _, err := imagex.OpenFS(b.Assets, asset)
	if err != nil {
		slog.Debug("arnode.CreatePlaneNode: texture not available", "asset", asset, "error", err)
		return nil
	}
	return xyz.NewTexture(asset, img)
}

// UpdatePlaneNode updates a node made by [Builder.CreatePlaneNode] for a new
// extent and center of its anchor: the plane is resized, the texture tiling
// is set so that tiles keep a constant real-world size of
// [Settings.ImageMillimeterSize], and the node is moved to the new center.
// Nodes that are not plane solids are left unchanged.
func (b *Builder) UpdatePlaneNode(node xyz.Node, anchor PlaneAnchor) {
	if node == nil {
		return
	}
	sld := node.AsSolid()
	if sld == nil {
		return
	}
	pl, ok := sld.Mesh.(*xyz.Plane)
	if !ok || pl == nil {
		return
	}
	pl.SetSize(anchor.Extent.X, anchor.Extent.Z)
	repeat := 1000 / b.Settings.ImageMillimeterSize
	sld.Material.Tiling.Repeat.Set(anchor.Extent.X*repeat, anchor.Extent.Z*repeat)
	sld.SetPos(anchor.Center.X, 0, anchor.Center.Z)
}
