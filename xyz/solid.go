// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
type Solid struct {
	NodeBase

	// Material contains the material properties of the surface (color, shininess, texture, etc).
	Material Material

	// Mesh is the shape of this solid.
	Mesh Mesh `copier:"-"`
}

// NewSolid returns a new [Solid] with the given name and default
// pose and material.
func NewSolid(name string) *Solid {
	sld := &Solid{}
	sld.Name = name
	sld.Defaults()
	return sld
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// Defaults sets default initial settings for solid params.
func (sld *Solid) Defaults() {
	sld.Pose.Defaults()
	sld.Pose.UpdateMatrix()
	sld.Material.Defaults()
}

// SetMesh sets mesh
func (sld *Solid) SetMesh(ms Mesh) *Solid {
	sld.Mesh = ms
	return sld
}

// SetMaterial sets the material.
func (sld *Solid) SetMaterial(mt Material) *Solid {
	sld.Material = mt
	return sld
}

// SetColor sets the [Material.Color]:
// prop: color = main color of surface, used for both ambient and diffuse color in standard Phong model
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetTexture sets material to use given texture
func (sld *Solid) SetTexture(tex Texture) *Solid {
	sld.Material.SetTexture(tex)
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.SetPos(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] scale of the solid
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.Pose.SetScale(x, y, z)
	return sld
}

// SetAxisRotation sets the [Pose.Quat] rotation of the solid,
// from local axis and angle in degrees.
func (sld *Solid) SetAxisRotation(x, y, z, angle float32) *Solid {
	sld.Pose.SetAxisRotation(x, y, z, angle)
	return sld
}

// IsTransparent returns true if the mesh colors or the material are transparent.
func (sld *Solid) IsTransparent() bool {
	if sld.Mesh == nil {
		return false
	}
	if mb := sld.Mesh.AsMeshBase(); mb.HasColor {
		return mb.Transparent
	}
	return sld.Material.IsTransparent()
}

// test for impl
var _ Node = &Solid{}
