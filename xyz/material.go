// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/ar/base/errors"
	"cogentcore.org/ar/math32"
	"github.com/jinzhu/copier"
)

// Tiling are the texture tiling parameters
type Tiling struct {

	// how often to repeat the texture in each direction
	Repeat math32.Vector2

	// offset for when to start the texure in each direction
	Off math32.Vector2

	// Wrap is whether texture coordinates outside 0-1 wrap around
	// (repeat) instead of being clamped to the edge.
	Wrap bool
}

// Defaults sets default tiling params if not yet initialized
func (tl *Tiling) Defaults() {
	if tl.Repeat == (math32.Vector2{}) {
		tl.Repeat.Set(1, 1)
	}
}

// Material describes the material properties of a surface (colors, shininess, texture)
// i.e., phong lighting parameters.
// Main color is used for both ambient and diffuse color, and alpha component
// is used for opacity.  The Emissive color is only for glowing objects.
// The Specular color is always white (multiplied by light color).
type Material struct {

	// Color is the main color of surface, used for both ambient and diffuse color in standard Phong model -- alpha component determines transparency -- note that transparent objects require more complex rendering
	Color color.RGBA

	// Opacity multiplies the overall surface alpha, 0-1.
	Opacity float32

	// Emissive is the color that surface emits independent of any lighting -- i.e., glow -- can be used for marking lights with an object
	Emissive color.RGBA

	// Shiny is the specular shininess factor -- how focally vs. broad the surface shines back directional light -- this is an exponential factor, with 0 = very broad diffuse reflection, and higher values (typically max of 128 or so but can go higher) having a smaller more focal specular reflection.  Also set Reflective factor to change overall shininess effect.
	Shiny float32

	// Reflective is the specular reflectiveness factor -- how much it shines back directional light.  The specular reflection color is always white * the incoming light.
	Reflective float32

	// Bright is an overall multiplier on final computed color value -- can be used to tune the overall brightness of various surfaces relative to each other for a given set of lighting parameters
	Bright float32

	// Tiling is the texture tiling parameters: repeat and offset.
	Tiling Tiling

	// CullBack indicates to cull the back-facing surfaces.
	CullBack bool

	// CullFront indicates to cull the front-facing surfaces.
	CullFront bool

	// Texture is the texture mapped onto the surface, if any.
	Texture Texture `copier:"-"`
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Opacity = 1
	mt.Emissive = color.RGBA{0, 0, 0, 0}
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
	mt.Tiling.Defaults()
	mt.CullBack = true
}

// IsTransparent returns true if texture says it is, or if color has alpha < 255,
// or if the opacity is below 1.
func (mt *Material) IsTransparent() bool {
	if mt.Opacity < 1 {
		return true
	}
	if mt.Texture != nil {
		return mt.Texture.AsTextureBase().Transparent
	}
	return mt.Color.A < 255
}

// IsDoubleSided returns true if neither side of the surface is culled.
func (mt *Material) IsDoubleSided() bool {
	return !mt.CullBack && !mt.CullFront
}

// SetDoubleSided turns off culling of both faces.
func (mt *Material) SetDoubleSided() *Material {
	mt.CullBack = false
	mt.CullFront = false
	return mt
}

// NoTexture resets any texture setting that might have been set
func (mt *Material) NoTexture() {
	mt.Texture = nil
}

// SetTexture sets material to use given texture
func (mt *Material) SetTexture(tex Texture) *Material {
	mt.Texture = tex
	return mt
}

// Clone returns a deep copy of the material. The texture is shared.
func (mt *Material) Clone() Material {
	nm := Material{}
	errors.Log(copier.CopyWithOption(&nm, mt, copier.Option{CaseSensitive: true, DeepCopy: true}))
	nm.Texture = mt.Texture
	return nm
}

// SameAppearance returns true if the two materials would render the
// same surface color and texture.
func (mt *Material) SameAppearance(o *Material) bool {
	return mt.Color == o.Color && mt.Opacity == o.Opacity && mt.Texture == o.Texture
}
