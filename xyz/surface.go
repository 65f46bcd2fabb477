// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"
	"sync"

	"cogentcore.org/ar/base/iox/imagex"
)

// FrameSource provides the current frame of a dynamic 2D source,
// such as a video player. Frame may return nil if no frame is
// available yet.
type FrameSource interface {
	Frame() image.Image
}

// Surface is a dynamic texture of a fixed pixel size that hosts a
// [FrameSource]. Each [Surface.Render] draws the current frame at its
// native size in the center of the canvas, flipped vertically when
// [Surface.FlipY] is set. It is the 3D analog of embedding a 2D scene
// on a plane.
type Surface struct {
	TextureBase

	// Size is the fixed canvas size in pixels.
	Size image.Point

	// Source is the frame source drawn on each render.
	Source FrameSource

	// Background is the color of the canvas outside of the frame.
	Background color.RGBA

	// FlipY flips frames vertically, for sources that deliver
	// rows bottom-up.
	FlipY bool

	mu sync.Mutex
}

// NewSurface returns a new [Surface] of the given pixel size hosting the
// given source, rendered once so that the texture is immediately valid.
func NewSurface(name string, width, height int, src FrameSource) *Surface {
	sf := &Surface{Size: image.Pt(width, height), Source: src}
	sf.Name = name
	sf.Background = color.RGBA{0, 0, 0, 255}
	sf.Render()
	return sf
}

// Render draws the current frame of the source onto the canvas.
func (sf *Surface) Render() *image.RGBA {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	var frame image.Image
	if sf.Source != nil {
		frame = sf.Source.Frame()
	}
	if frame != nil && sf.FlipY {
		frame = imagex.FlipV(frame)
	}
	sf.RGBA = imagex.CenterOn(frame, sf.Size, sf.Background)
	sf.Transparent = false
	return sf.RGBA
}

func (sf *Surface) Image() *image.RGBA {
	sf.mu.Lock()
	img := sf.RGBA
	sf.mu.Unlock()
	if img != nil {
		return img
	}
	return sf.Render()
}
