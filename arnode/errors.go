// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"fmt"

	"cogentcore.org/ar/base/errors"
	"cogentcore.org/ar/xyz"
)

var (
	// ErrSourceUnreadable is returned when a model file has an unknown
	// format, does not exist, or cannot be opened.
	ErrSourceUnreadable = errors.New("model source unreadable")

	// ErrParseFailure is returned when a model file was opened but
	// does not contain a valid scene description.
	ErrParseFailure = errors.New("model parse failure")

	// ErrNetworkFailure is returned for transport errors and for any
	// HTTP status other than 200.
	ErrNetworkFailure = errors.New("network failure")

	// ErrStagingFailure is returned when a downloaded model cannot be
	// written to the staging directory.
	ErrStagingFailure = errors.New("staging failure")

	// ErrImageUnreadable is returned when an image file cannot be opened
	// or decoded.
	ErrImageUnreadable = errors.New("image unreadable")

	// ErrInvalidTransform is returned for a transform that does not
	// have exactly 16 values.
	ErrInvalidTransform = errors.New("invalid transform")

	// ErrEmptyText is returned for a text label with nothing to render.
	ErrEmptyText = errors.New("empty text")

	// ErrInvalidSettings is returned for settings with a size, scale
	// or count that is not positive.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrAsyncContent is returned by [Builder.Build] for content that can
	// only be built asynchronously, such as a [RemoteModel].
	ErrAsyncContent = errors.New("content must be built asynchronously")
)

// importError maps a scene decoding error to the model import errors.
func importError(op string, err error) error {
	switch {
	case errors.Is(err, xyz.ErrDecode):
		return fmt.Errorf("%s: %w: %w", op, ErrParseFailure, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrSourceUnreadable, err)
	}
}
