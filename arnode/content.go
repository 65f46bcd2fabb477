// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"fmt"

	"cogentcore.org/ar/xyz"
)

// Content describes something to build a node for.
// It is one of [EmbeddedModel], [FilesystemModel], [RemoteModel],
// [TextLabel], [ImageAsset], [VideoContent] or [PlaneAnchorUpdate].
type Content interface {
	isContent()
}

// EmbeddedModel is a model file in [Builder.Assets].
type EmbeddedModel struct {
	Name string
	Path string
}

// FilesystemModel is a model file on the OS filesystem.
type FilesystemModel struct {
	Name string
	Path string

	// Unscaled skips the unit scale correction, for models
	// that are already in scene units.
	Unscaled bool
}

// RemoteModel is a model file to download. It can only be built with
// [Builder.FetchModel].
type RemoteModel struct {
	Name string
	URL  string
}

// TextLabel is a text string shown as extruded 3D text.
type TextLabel struct {
	Name string
	Text string
}

// ImageAsset is an image file on the OS filesystem.
type ImageAsset struct {
	Name string
	Path string
}

// VideoContent is a video source shown on a plane.
type VideoContent struct {
	Name   string
	Source VideoSource
}

// PlaneAnchorUpdate is a new or changed plane anchor. If Node is nil a new
// plane node is created with the optional Texture asset; otherwise Node,
// made by an earlier build, is updated in place.
type PlaneAnchorUpdate struct {
	Anchor  PlaneAnchor
	Node    xyz.Node
	Texture string
}

func (EmbeddedModel) isContent()     {}
func (FilesystemModel) isContent()   {}
func (RemoteModel) isContent()       {}
func (TextLabel) isContent()         {}
func (ImageAsset) isContent()        {}
func (VideoContent) isContent()      {}
func (PlaneAnchorUpdate) isContent() {}

// Build returns the node for the given content, with the transform, if
// non-nil, applied to its outer group. Plane nodes are positioned by their
// anchor and ignore the transform. A [RemoteModel] returns [ErrAsyncContent];
// use [Builder.FetchModel] for it.
func (b *Builder) Build(c Content, transform []float64) (xyz.Node, error) {
	switch c := c.(type) {
	case EmbeddedModel:
		return asNode(b.ImportModel(c.Name, ModelSource{Kind: EmbeddedSource, Path: c.Path}, b.ImportFlattened(), transform))
	case FilesystemModel:
		opts := b.ImportFlattened()
		if c.Unscaled {
			opts = b.ImportUnscaled()
		}
		return asNode(b.ImportModel(c.Name, ModelSource{Kind: FilesystemSource, Path: c.Path}, opts, transform))
	case RemoteModel:
		return nil, fmt.Errorf("arnode.Build: %q: %w", c.URL, ErrAsyncContent)
	case TextLabel:
		return asNode(b.TextNode(c.Name, c.Text, transform))
	case ImageAsset:
		return asNode(b.ImageNode(c.Name, c.Path, transform))
	case VideoContent:
		return asNode(b.VideoNode(c.Name, c.Source, transform))
	case PlaneAnchorUpdate:
		if c.Node == nil {
			return b.CreatePlaneNode(c.Anchor, c.Texture), nil
		}
		b.UpdatePlaneNode(c.Node, c.Anchor)
		return c.Node, nil
	}
	return nil, fmt.Errorf("arnode.Build: unknown content type %T", c)
}

// asNode returns the group as an [xyz.Node], which is nil on error.
func asNode(gp *xyz.Group, err error) (xyz.Node, error) {
	if err != nil {
		return nil, err
	}
	return gp, nil
}
