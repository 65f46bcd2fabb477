// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// CloneAsRGBA returns an RGBA copy of the supplied image.
func CloneAsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, src, bounds.Min, draw.Src)
	return img
}

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return CloneAsRGBA(src)
}

// FlipV returns a vertically flipped RGBA copy of the given image,
// for frames whose rows are stored bottom-up.
func FlipV(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	return transform.FlipV(src)
}

// CenterOn returns a new RGBA image of the given size filled with bg,
// with src drawn at its native size in the middle. Parts of src that
// do not fit are cropped symmetrically.
func CenterOn(src image.Image, size image.Point, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if src == nil {
		return dst
	}
	sb := src.Bounds()
	off := image.Pt((size.X-sb.Dx())/2, (size.Y-sb.Dy())/2)
	r := image.Rectangle{Min: off, Max: off.Add(sb.Size())}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
	return dst
}
