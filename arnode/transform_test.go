// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"testing"

	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRoundTrip(t *testing.T) {
	cases := [][]float64{
		{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		{0.5, 0.1, -0.2, 0, 0.3, 1.5, 0, 0, 0, 0, 2, 0, 10, -20, 30.25, 1},
		{1e-3, 2e-3, 3e-3, 4e-3, 5, 6, 7, 8, -9, -10, -11, -12, 1e3, 2e3, 3e3, 1},
	}
	for _, vals := range cases {
		m, err := DecodeTransform(vals)
		require.NoError(t, err)
		assert.InDeltaSlice(t, vals, EncodeTransform(m), 1e-4)
	}
}

func TestDecodeTransformColumns(t *testing.T) {
	// the fourth column holds the translation
	m, err := DecodeTransform(translation(1, 2, 3))
	require.NoError(t, err)
	assertVec3(t, math32.Vec3(1, 2, 3), math32.Vec3(0, 0, 0).MulMatrix4(&m))
}

func TestDecodeTransformInvalid(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 32} {
		m, err := DecodeTransform(make([]float64, n))
		assert.ErrorIs(t, err, ErrInvalidTransform)
		assert.Equal(t, math32.Matrix4{}, m)
	}
}

func TestApplyTransform(t *testing.T) {
	gp := xyz.NewGroup("g")
	gp.SetPos(1, 1, 1)
	require.NoError(t, ApplyTransform(gp, nil))
	assertVec3(t, math32.Vec3(1, 1, 1), gp.Pose.Pos)

	require.NoError(t, ApplyTransform(gp, translation(4, 5, 6)))
	assertVec3(t, math32.Vec3(4, 5, 6), gp.Pose.Pos)
	assertVec3(t, math32.Vec3(1, 1, 1), gp.Pose.Scale)

	err := ApplyTransform(gp, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidTransform)
	assertVec3(t, math32.Vec3(4, 5, 6), gp.Pose.Pos)
}
