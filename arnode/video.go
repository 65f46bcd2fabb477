// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"image"
	"image/color"

	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
)

// VideoSource is a video player that provides its current frame,
// or nil if no frame is available yet.
type VideoSource interface {
	Frame() image.Image
}

// VideoNode returns a new group with the given name holding a double-sided
// plane that shows the frames of the video source. The frames are drawn,
// centered and flipped vertically, on an [xyz.Surface] of
// [Settings.VideoWidth] x [Settings.VideoHeight] pixels, and the plane is
// [Settings.VideoPlaneWidth] wide with the aspect ratio of the surface.
// Call [xyz.Surface.Render] on the surface returned by [VideoSurface]
// to show a new frame. The transform, if non-nil, is applied to the group.
func (b *Builder) VideoNode(name string, src VideoSource, transform []float64) (*xyz.Group, error) {
	const op = "arnode.VideoNode"
	if err := checkTransform(op, transform); err != nil {
		return nil, err
	}
	s := b.Settings
	sf := xyz.NewSurface(name, s.VideoWidth, s.VideoHeight, nil)
	if src != nil {
		sf.Source = src
	}
	sf.FlipY = true
	sf.Render()

	w := s.VideoPlaneWidth
	h := w * float32(s.VideoHeight) / float32(s.VideoWidth)
	pl := xyz.NewPlane("video", w, h)
	pl.NormAxis = math32.Z
	sld := xyz.NewSolid("video").SetMesh(pl).SetColor(color.RGBA{255, 255, 255, 255})
	sld.Material.SetDoubleSided()
	sld.SetTexture(sf)
	return wrap(op, name, sld, transform)
}

// VideoSurface returns the surface of the first video plane
// under the given node, or nil if there is none.
func VideoSurface(n xyz.Node) *xyz.Surface {
	var sf *xyz.Surface
	xyz.WalkDown(n, func(k xyz.Node) bool {
		if sf != nil {
			return false
		}
		if sld := k.AsSolid(); sld != nil {
			if s, ok := sld.Material.Texture.(*xyz.Surface); ok {
				sf = s
				return false
			}
		}
		return true
	})
	return sf
}
