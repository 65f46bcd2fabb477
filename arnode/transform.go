// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"fmt"

	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
)

// DecodeTransform returns the 4x4 transform for the given 16 values,
// which list the four columns of the matrix one after the other.
// Any other number of values is an [ErrInvalidTransform].
func DecodeTransform(vals []float64) (math32.Matrix4, error) {
	if len(vals) != 16 {
		return math32.Matrix4{}, fmt.Errorf("%w: %d values instead of 16", ErrInvalidTransform, len(vals))
	}
	return math32.Matrix4FromArray(math32.ToFloat32(vals))
}

// EncodeTransform returns the 16 values of the transform in the order
// read by [DecodeTransform].
func EncodeTransform(m math32.Matrix4) []float64 {
	vals := make([]float64, 16)
	for i, v := range m {
		vals[i] = float64(v)
	}
	return vals
}

// ApplyTransform sets the pose of the node from the given transform values.
// A nil transform leaves the node unchanged.
func ApplyTransform(n xyz.Node, vals []float64) error {
	if vals == nil {
		return nil
	}
	m, err := DecodeTransform(vals)
	if err != nil {
		return err
	}
	n.AsNodeBase().SetMatrix(&m)
	return nil
}

// checkTransform validates the transform before any work is done.
func checkTransform(op string, vals []float64) error {
	if vals == nil {
		return nil
	}
	if _, err := DecodeTransform(vals); err != nil {
		return wrapOp(op, err)
	}
	return nil
}

func wrapOp(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
