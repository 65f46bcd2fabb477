// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"fmt"
	"io/fs"
	"path"
	"slices"

	"cogentcore.org/ar/base/fsx"
	"cogentcore.org/ar/xyz"
)

// SourceKinds are the places that a model file can be opened from.
type SourceKinds int32

const (
	// EmbeddedSource is a path relative to [Builder.Assets].
	EmbeddedSource SourceKinds = iota

	// FilesystemSource is a path on the OS filesystem.
	FilesystemSource

	// StagedSource is a path relative to [Builder.StagingFS].
	StagedSource
)

func (k SourceKinds) String() string {
	switch k {
	case EmbeddedSource:
		return "Embedded"
	case FilesystemSource:
		return "Filesystem"
	case StagedSource:
		return "Staged"
	}
	return fmt.Sprintf("SourceKinds(%d)", int32(k))
}

// ModelSource is the location of a model file.
type ModelSource struct {
	Kind SourceKinds
	Path string
}

// ImportOptions control how the top-level children of an imported
// model are attached to the wrapper group.
type ImportOptions struct {

	// UnitScale multiplies the scale of each top-level child;
	// zero leaves the scale unchanged.
	UnitScale float32

	// Flatten replaces each top-level child with a single solid
	// that merges its whole subtree ([xyz.FlattenedClone]).
	// Otherwise children are attached as they are.
	Flatten bool
}

// ImportFlattened returns the options for embedded and filesystem models:
// unit scale corrected and flattened.
func (b *Builder) ImportFlattened() ImportOptions {
	return ImportOptions{UnitScale: b.Settings.UnitScale, Flatten: true}
}

// ImportUnscaled returns the options for filesystem models whose units
// already match the scene: flattened without scale correction.
func (b *Builder) ImportUnscaled() ImportOptions {
	return ImportOptions{Flatten: true}
}

// ImportDirect returns the options for downloaded models: unit scale
// corrected, with the children attached without flattening.
func (b *Builder) ImportDirect() ImportOptions {
	return ImportOptions{UnitScale: b.Settings.UnitScale}
}

// sourceFS returns the filesystem and file name for the given source.
func (b *Builder) sourceFS(src ModelSource) (fs.FS, string, error) {
	switch src.Kind {
	case EmbeddedSource:
		if b.Assets == nil {
			return nil, "", fmt.Errorf("no embedded assets for %q", src.Path)
		}
		return b.Assets, path.Clean(src.Path), nil
	case FilesystemSource:
		return fsx.DirFS(src.Path)
	case StagedSource:
		if b.StagingFS == nil {
			return nil, "", fmt.Errorf("no staging filesystem for %q", src.Path)
		}
		return b.StagingFS, src.Path, nil
	}
	return nil, "", fmt.Errorf("unknown model source kind %v", src.Kind)
}

// ImportModel opens the model file (.gltf, .glb, or .obj) at the given
// source and returns a new group with the given name that holds the
// top-level children of its scene, attached according to the options.
// The transform, if non-nil, is applied to the group.
func (b *Builder) ImportModel(name string, src ModelSource, opts ImportOptions, transform []float64) (*xyz.Group, error) {
	const op = "arnode.ImportModel"
	if err := checkTransform(op, transform); err != nil {
		return nil, err
	}
	fsys, fname, err := b.sourceFS(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrSourceUnreadable, err)
	}
	scene, err := xyz.OpenFS(fsys, fname)
	if err != nil {
		return nil, importError(op, err)
	}

	gp := xyz.NewGroup(name)
	for _, k := range slices.Clone(scene.Children) {
		if opts.UnitScale != 0 {
			k.AsNodeBase().Pose.MulScale(opts.UnitScale)
		}
		if opts.Flatten {
			xyz.AddChild(gp, xyz.FlattenedClone(k))
		} else {
			xyz.AddChild(gp, k)
		}
	}
	if err := ApplyTransform(gp, transform); err != nil {
		return nil, wrapOp(op, err)
	}
	return gp, nil
}
