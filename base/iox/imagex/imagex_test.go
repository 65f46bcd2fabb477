// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(3, 1, color.RGBA{0, 0, 255, 255})
	return img
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".JPG")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	f, err = ExtToFormat("webp")
	assert.NoError(t, err)
	assert.Equal(t, WebP, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("psd")
	assert.Error(t, err)
	assert.Equal(t, "PNG", PNG.String())
}

func TestRead(t *testing.T) {
	encoders := map[Formats]func(w io.Writer, m image.Image) error{
		PNG:  png.Encode,
		BMP:  bmp.Encode,
		TIFF: func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) },
		GIF:  func(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) },
	}
	for f, encode := range encoders {
		var b bytes.Buffer
		require.NoError(t, encode(&b, testImage()))
		im, rf, err := Read(&b)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, rf)
		assert.Equal(t, image.Rect(0, 0, 4, 2), im.Bounds())
	}
	_, _, err := Read(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestOpenFS(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, testImage()))
	fsys := fstest.MapFS{"poster.png": &fstest.MapFile{Data: b.Bytes()}}
	im, f, err := OpenFS(fsys, "poster.png")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, AsRGBA(im).RGBAAt(0, 0))

	_, _, err = OpenFS(fsys, "missing.png")
	assert.Error(t, err)
}

func TestFlipV(t *testing.T) {
	fl := FlipV(testImage())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, fl.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, fl.RGBAAt(3, 0))
	assert.Nil(t, FlipV(nil))
}

func TestCenterOn(t *testing.T) {
	bg := color.RGBA{0, 0, 0, 255}
	dst := CenterOn(testImage(), image.Pt(8, 6), bg)
	assert.Equal(t, image.Rect(0, 0, 8, 6), dst.Bounds())
	assert.Equal(t, bg, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, dst.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, dst.RGBAAt(5, 3))

	assert.Equal(t, bg, CenterOn(nil, image.Pt(2, 2), bg).RGBAAt(1, 1))
}
