// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"cogentcore.org/ar/base/errors"
	"cogentcore.org/ar/xyz"
	"github.com/h2non/filetype"
	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/mitchellh/go-homedir"
)

// NewStagingFS returns the directory of the OS filesystem at the given path
// as a writable filesystem, creating the directory if needed.
// A leading ~ in the path is expanded to the home directory.
func NewStagingFS(dir string) (hackpadfs.FS, error) {
	dir, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("arnode.NewStagingFS: %w: %w", ErrStagingFailure, err)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("arnode.NewStagingFS: %w: %w", ErrStagingFailure, err)
	}
	ofs := osfs.NewFS()
	fpath, err := ofs.FromOSPath(dir)
	if err != nil {
		return nil, fmt.Errorf("arnode.NewStagingFS: %w: %w", ErrStagingFailure, err)
	}
	if err := hackpadfs.MkdirAll(ofs, fpath, 0o755); err != nil {
		return nil, fmt.Errorf("arnode.NewStagingFS: %w: %w", ErrStagingFailure, err)
	}
	sfs, err := ofs.Sub(fpath)
	if err != nil {
		return nil, fmt.Errorf("arnode.NewStagingFS: %w: %w", ErrStagingFailure, err)
	}
	return sfs, nil
}

var (
	glbType  = filetype.NewType("glb", "model/gltf-binary")
	gltfType = filetype.NewType("gltf", "model/gltf+json")
)

func init() {
	filetype.AddMatcher(glbType, func(buf []byte) bool {
		return bytes.HasPrefix(buf, []byte("glTF"))
	})
	filetype.AddMatcher(gltfType, func(buf []byte) bool {
		js := bytes.TrimLeft(buf, " \t\r\n")
		return len(js) > 0 && js[0] == '{' && bytes.Contains(js, []byte(`"asset"`))
	})
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

// stagedName returns the name of the staging file for a model downloaded
// from the given URL: the sanitized last element of the URL path, with an
// extension from the sniffed content if it has no known model extension.
func stagedName(u *url.URL, data []byte) string {
	name := ""
	if u != nil {
		name = path.Base(u.Path)
	}
	if name == "/" {
		name = ""
	}
	name = unsafeName.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "model"
	}
	ext := strings.ToLower(path.Ext(name))
	if _, ok := xyz.Decoders[ext]; ok {
		return name
	}
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		name += "." + kind.Extension
	}
	return name
}

// stage writes the data to the named staging file, replacing any
// existing file of the same name.
func (b *Builder) stage(name string, data []byte) error {
	if err := hackpadfs.Remove(b.StagingFS, name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrStagingFailure, err)
	}
	if err := hackpadfs.WriteFullFile(b.StagingFS, name, data, 0o644); err != nil {
		if rerr := hackpadfs.Remove(b.StagingFS, name); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
			slog.Error("arnode.FetchModel: could not remove partial staged file", "file", name, "error", rerr)
		}
		return fmt.Errorf("%w: %w", ErrStagingFailure, err)
	}
	return nil
}

// unstage removes the named staging file, logging any error.
func (b *Builder) unstage(name string) {
	if err := hackpadfs.Remove(b.StagingFS, name); err != nil {
		slog.Error("arnode.FetchModel: could not remove staged file", "file", name, "error", err)
	}
}
