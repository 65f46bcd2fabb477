// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"fmt"
	"strings"

	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
	"cogentcore.org/ar/xyz/text3d"
)

// TextNode returns a new group with the given name holding an extruded
// 3D label of the text, in [Settings.TextColor]. The label is positioned
// so that the origin is at the bottom center of its bounding box, centered
// in depth. The transform, if non-nil, is applied to the group.
func (b *Builder) TextNode(name, text string, transform []float64) (*xyz.Group, error) {
	const op = "arnode.TextNode"
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyText)
	}
	if err := checkTransform(op, transform); err != nil {
		return nil, err
	}
	s := b.Settings
	ms, err := text3d.Mesh(text, text3d.Options{Size: s.TextSize, Depth: s.TextDepth, CurveSegments: s.TextCurveSegments})
	if err != nil {
		return nil, wrapOp(op, err)
	}
	if ms.NumVertex() == 0 {
		return nil, fmt.Errorf("%s: %w: no glyphs for %q", op, ErrEmptyText, text)
	}
	bb := ms.BBox()
	ms.Translate(math32.Vec3(-(bb.Min.X+bb.Max.X)/2, -bb.Min.Y, -(bb.Min.Z+bb.Max.Z)/2))

	sld := xyz.NewSolid("text").SetMesh(ms).SetColor(s.TextColor)
	return wrap(op, name, sld, transform)
}
