// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/ar/base/errors"
	"cogentcore.org/ar/base/iox/tomlx"
	"cogentcore.org/ar/base/iox/yamlx"
)

// Settings are the calibration constants and resources used by a [Builder].
type Settings struct {

	// StagingDir is the directory that downloaded models are staged in
	// while they are imported. A leading ~ is expanded to the home directory.
	StagingDir string

	// UnitScale is the scale correction applied to the top-level children
	// of imported models, whose units are 100x the scene units.
	UnitScale float32

	// ImageMillimeterSize is the real-world size of one tile of a plane
	// texture, in millimeters.
	ImageMillimeterSize float32

	// UnconfirmedOpacity is the opacity of untextured plane nodes,
	// marking a surface that is not yet confirmed.
	UnconfirmedOpacity float32

	// ImageScale is the uniform scale that brings pixel-sized image
	// planes into scene units.
	ImageScale float32

	// TextSize is the font size of text labels, in scene units.
	TextSize float32

	// TextDepth is the extrusion depth of text labels, in scene units.
	TextDepth float32

	// TextCurveSegments is the number of segments used to flatten
	// each curve of the glyph outlines.
	TextCurveSegments int

	// TextColor is the color of text labels.
	TextColor color.RGBA

	// VideoWidth and VideoHeight are the pixel size of the surface
	// that video frames are drawn on.
	VideoWidth  int
	VideoHeight int

	// VideoPlaneWidth is the width of video planes in scene units;
	// the height follows the aspect ratio of the video surface.
	VideoPlaneWidth float32

	// UserAgent is sent with remote model requests if non-empty.
	UserAgent string
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.StagingDir = "~/Documents/ar"
	s.UnitScale = 0.01
	s.ImageMillimeterSize = 65
	s.UnconfirmedOpacity = 0.3
	s.ImageScale = 0.0025
	s.TextSize = 0.5
	s.TextDepth = 0.14
	s.TextCurveSegments = 6
	s.TextColor = color.RGBA{0, 66, 66, 255}
	s.VideoWidth = 1920
	s.VideoHeight = 1080
	s.VideoPlaneWidth = 3
}

// NewSettings returns new default settings.
func NewSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Validate returns an [ErrInvalidSettings] error if any size, scale or
// count is not positive, or the opacity is outside of [0, 1].
func (s *Settings) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, not %g", name, v))
		}
	}
	positive("UnitScale", float64(s.UnitScale))
	positive("ImageMillimeterSize", float64(s.ImageMillimeterSize))
	positive("ImageScale", float64(s.ImageScale))
	positive("TextSize", float64(s.TextSize))
	positive("TextDepth", float64(s.TextDepth))
	positive("TextCurveSegments", float64(s.TextCurveSegments))
	positive("VideoWidth", float64(s.VideoWidth))
	positive("VideoHeight", float64(s.VideoHeight))
	positive("VideoPlaneWidth", float64(s.VideoPlaneWidth))
	if !(s.UnconfirmedOpacity >= 0 && s.UnconfirmedOpacity <= 1) {
		errs = append(errs, fmt.Errorf("UnconfirmedOpacity must be in [0, 1], not %g", s.UnconfirmedOpacity))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// settingsFormat returns the settings encoding for the file extension.
func settingsFormat(op, file string) (string, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "", fmt.Errorf("%s: unsupported settings file type %q", op, file)
}

// OpenSettings returns the default settings overridden by the values in
// the given file, which is read as TOML or YAML based on its extension.
// The result is validated with [Settings.Validate].
func OpenSettings(file string) (*Settings, error) {
	const op = "arnode.OpenSettings"
	format, err := settingsFormat(op, file)
	if err != nil {
		return nil, err
	}
	s := NewSettings()
	if format == "toml" {
		err = tomlx.Open(s, file)
	} else {
		err = yamlx.Open(s, file)
	}
	return checkSettings(op, s, err)
}

// OpenSettingsFS is [OpenSettings] for a file in the given filesystem,
// such as settings embedded with the application assets.
func OpenSettingsFS(fsys fs.FS, file string) (*Settings, error) {
	const op = "arnode.OpenSettingsFS"
	format, err := settingsFormat(op, file)
	if err != nil {
		return nil, err
	}
	s := NewSettings()
	if format == "toml" {
		err = tomlx.OpenFS(s, fsys, file)
	} else {
		err = yamlx.OpenFS(s, fsys, file)
	}
	return checkSettings(op, s, err)
}

func checkSettings(op string, s *Settings, err error) (*Settings, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Save writes the settings to the given file as TOML or YAML
// based on its extension.
func (s *Settings) Save(file string) error {
	format, err := settingsFormat("arnode.Settings.Save", file)
	if err != nil {
		return err
	}
	if format == "toml" {
		return tomlx.Save(s, file)
	}
	return yamlx.Save(s, file)
}
