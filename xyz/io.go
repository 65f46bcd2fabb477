// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"cogentcore.org/ar/base/errors"
)

var (
	// ErrUnreadable is returned when a scene file has no registered
	// decoder or cannot be opened.
	ErrUnreadable = errors.New("scene file unreadable")

	// ErrDecode is returned when a scene file was opened
	// but its contents could not be decoded.
	ErrDecode = errors.New("scene file decode failed")
)

// Decoder parses 3D object / scene file(s) and imports into a Group.
// This interface is implemented by the different format-specific decoders.
type Decoder interface {
	// New returns a new instance of the decoder used for a specific decoding
	New() Decoder

	// Desc returns the description of this decoder
	Desc() string

	// SetFileFS sets the file name being used for decoding, within the
	// given filesystem -- needed in case of loading other files such as
	// textures / materials / buffers from the same directory.
	// Returns a list of files that should be loaded along with the main one, if needed.
	// For example, .obj decoder adds a corresponding .mtl file.
	SetFileFS(fsys fs.FS, fname string) []string

	// Decode reads the given data and decodes it into the decoder state.
	// Some formats (e.g., Wavefront .obj) have separate .obj and .mtl files
	// which are passed as two reader args.
	Decode(rs []io.Reader) error

	// SetGroup adds the decoded objects as children of the given group.
	SetGroup(gp *Group)
}

// Decoders is the master list of decoders, indexed by the primary
// extension (lowercase, with the leading dot).
// .obj = Wavefront object file -- only has mesh data, not scene info.
// .gltf, .glb = glTF 2.0 scenes.
var Decoders = map[string]Decoder{}

// DecoderFor returns a new decoder instance for the given file name,
// based on its extension.
func DecoderFor(fname string) (Decoder, error) {
	ext := strings.ToLower(path.Ext(fname))
	dt, has := Decoders[ext]
	if !has {
		return nil, fmt.Errorf("xyz.DecoderFor: file extension: %q not found in Decoders list for file %v: %w", ext, fname, ErrUnreadable)
	}
	return dt.New(), nil
}

// DecodeFileFS decodes the given file in the given filesystem
// using a decoder based on the file extension.
// Returns decoder instance with full decoded state.
func DecodeFileFS(fsys fs.FS, fname string) (Decoder, error) {
	dec, err := DecoderFor(fname)
	if err != nil {
		return nil, err
	}
	files := dec.SetFileFS(fsys, fname)
	nf := len(files)

	fls := make([]fs.File, nf)
	rs := make([]io.Reader, nf)
	defer func() {
		for _, fi := range fls {
			if fi != nil {
				fi.Close()
			}
		}
	}()

	for i, f := range files {
		fls[i], err = fsys.Open(f)
		if err != nil {
			return nil, fmt.Errorf("xyz.DecodeFileFS: %w: %w", ErrUnreadable, err)
		}
		rs[i] = fls[i]
	}
	err = dec.Decode(rs)
	if err != nil {
		return nil, fmt.Errorf("xyz.DecodeFileFS: %v: %w: %w", fname, ErrDecode, err)
	}
	return dec, nil
}

// OpenFS opens object(s) from given file in the given filesystem into
// a new group named after the file, using a decoder based on the file extension.
func OpenFS(fsys fs.FS, fname string) (*Group, error) {
	dec, err := DecodeFileFS(fsys, fname)
	if err != nil {
		return nil, err
	}
	gp := NewGroup(path.Base(fname))
	dec.SetGroup(gp)
	return gp, nil
}
