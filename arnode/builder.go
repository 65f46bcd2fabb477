// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arnode builds positioned, scaled, textured xyz scene nodes for
// an augmented-reality view from content descriptions: 3D model files
// (embedded, on the filesystem, or remote), text labels, images, video
// sources, and detected plane anchors.
//
// The nodes returned are owned by the caller, which inserts them into
// its own scene. Only plane nodes are retained by the caller and updated
// in place as the tracked anchor changes.
package arnode

import (
	"fmt"
	"io/fs"
	"net/http"

	"cogentcore.org/ar/xyz"
	"github.com/hack-pad/hackpadfs"

	// registers the model decoders
	_ "cogentcore.org/ar/xyz/io/gltf"
	_ "cogentcore.org/ar/xyz/io/obj"
)

// Builder builds scene nodes from content descriptions.
// A Builder can be used from multiple goroutines, except that
// a plane node must only be updated by one goroutine at a time.
type Builder struct {

	// Settings are the calibration constants used for all nodes.
	Settings *Settings

	// Assets is the filesystem of embedded (application bundled) assets,
	// used for [EmbeddedModel] content and plane textures.
	Assets fs.FS

	// HTTPClient is the client used to download remote models.
	HTTPClient *http.Client

	// StagingFS is the writable filesystem that downloaded models
	// are staged in while they are imported.
	StagingFS hackpadfs.FS
}

// NewBuilder returns a new [Builder] with the given settings (defaults
// if nil) and embedded asset filesystem, using [http.DefaultClient]
// and staging downloads in [Settings.StagingDir] on the OS filesystem.
// It returns an [ErrInvalidSettings] error if the settings do not pass
// [Settings.Validate].
func NewBuilder(settings *Settings, assets fs.FS) (*Builder, error) {
	if settings == nil {
		settings = NewSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("arnode.NewBuilder: %w", err)
	}
	sfs, err := NewStagingFS(settings.StagingDir)
	if err != nil {
		return nil, err
	}
	b := &Builder{
		Settings:   settings,
		Assets:     assets,
		HTTPClient: http.DefaultClient,
		StagingFS:  sfs,
	}
	return b, nil
}

// wrap returns a new group with the given name holding the given node,
// with the given transform applied to the group.
func wrap(op, name string, n xyz.Node, transform []float64) (*xyz.Group, error) {
	gp := xyz.NewGroup(name)
	xyz.AddChild(gp, n)
	if err := ApplyTransform(gp, transform); err != nil {
		return nil, wrapOp(op, err)
	}
	return gp, nil
}
