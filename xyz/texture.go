// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"

	"cogentcore.org/ar/base/iox/imagex"
)

// Texture is the interface for all textures.
type Texture interface {
	// AsTextureBase returns the [TextureBase] for this texture,
	// which contains the core data and functionality.
	AsTextureBase() *TextureBase

	// Image returns the image for the texture in the [image.RGBA] format used internally.
	Image() *image.RGBA
}

//////////////////////////////////////////////////////////////////////////////////////
// TextureBase

// TextureBase is the base texture implementation.
// It uses an [image.RGBA] as the underlying image storage.
type TextureBase struct {
	// Name is the name of the texture.
	Name string

	// Transprent is whether the texture has transparency.
	Transparent bool

	// RGBA is the cached internal representation of the image.
	RGBA *image.RGBA
}

// NewTexture returns a new in-memory texture from the given image.
func NewTexture(name string, img image.Image) *TextureBase {
	tx := &TextureBase{Name: name}
	tx.SetImage(img)
	return tx
}

func (tx *TextureBase) AsTextureBase() *TextureBase {
	return tx
}

func (tx *TextureBase) Image() *image.RGBA {
	return tx.RGBA
}

// SetImage sets the image, converting it to RGBA and
// updating the Transparent flag.
func (tx *TextureBase) SetImage(img image.Image) {
	tx.RGBA = imagex.AsRGBA(img)
	tx.Transparent = tx.RGBA != nil && !tx.RGBA.Opaque()
}

//////////////////////////////////////////////////////////////////////////////////////
// TextureFile

// TextureFile is a texture loaded from a file
type TextureFile struct {
	TextureBase

	// filesystem for embedded etc
	FS fs.FS

	// filename for the texture
	File string
}

// NewTextureFileFS returns a new texture from file of given name and filename
// in the given filesystem.
func NewTextureFileFS(fsys fs.FS, name string, filename string) *TextureFile {
	tx := &TextureFile{}
	tx.Name = name
	tx.FS = fsys
	tx.File = filename
	return tx
}

func (tx *TextureFile) Image() *image.RGBA {
	if tx.RGBA != nil {
		return tx.RGBA
	}
	if tx.File == "" {
		err := fmt.Errorf("xyz.Texture: %v File must be set to a filename to load texture from", tx.Name)
		slog.Error(err.Error())
		return nil
	}
	img, _, err := imagex.OpenFS(tx.FS, tx.File)
	if err != nil {
		slog.Error("xyz.TextureFile: Image load error", "file:", tx.File, "error", err)
		return nil
	}
	tx.SetImage(img)
	return tx.RGBA
}
