// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"fmt"
	"image/color"

	"cogentcore.org/ar/base/iox/imagex"
	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
)

// ImageNode returns a new group with the given name holding a double-sided
// plane textured with the image file at the given path. The plane has the
// pixel size of the image and is scaled by [Settings.ImageScale] into scene
// units. The transform, if non-nil, is applied to the group so that the
// scale of the plane is never changed by it.
func (b *Builder) ImageNode(name, file string, transform []float64) (*xyz.Group, error) {
	const op = "arnode.ImageNode"
	if err := checkTransform(op, transform); err != nil {
		return nil, err
	}
	img, _, err := imagex.Open(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrImageUnreadable, err)
	}
	sz := img.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 {
		return nil, fmt.Errorf("%s: %w: empty image %q", op, ErrImageUnreadable, file)
	}
	pl := xyz.NewPlane("image", float32(sz.X), float32(sz.Y))
	pl.NormAxis = math32.Z
	sld := xyz.NewSolid("image").SetMesh(pl).SetColor(color.RGBA{255, 255, 255, 255})
	sld.Material.SetDoubleSided()
	sld.SetTexture(xyz.NewTexture(file, img))
	sc := b.Settings.ImageScale
	sld.SetScale(sc, sc, sc)
	return wrap(op, name, sld, transform)
}
