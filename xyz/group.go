// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/ar/math32"
)

// Group collects individual elements in a scene but does not have a Mesh or Material of
// its own.  It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase
}

// NewGroup returns a new [Group] with the given name and a default pose.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Defaults()
	return gp
}

func (gp *Group) Defaults() {
	gp.Pose.Defaults()
	gp.Pose.UpdateMatrix()
}

// SetPos sets the [Pose.Pos] position of the group
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.SetPos(x, y, z)
	return gp
}

// SetScale sets the [Pose.Scale] scale of the group
func (gp *Group) SetScale(x, y, z float32) *Group {
	gp.Pose.SetScale(x, y, z)
	return gp
}

// SetAxisRotation sets the [Pose.Quat] rotation of the group,
// from local axis and angle in degrees.
func (gp *Group) SetAxisRotation(x, y, z, angle float32) *Group {
	gp.Pose.SetAxisRotation(x, y, z, angle)
	return gp
}

// BBox returns the bounding box of all solids under this group,
// in the coordinates of the group (its own pose is not applied).
func (gp *Group) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, k := range gp.Children {
		m := k.AsNodeBase().Pose.Transform()
		for _, sb := range subtreeBoxes(k) {
			bb.ExpandByBox(sb.MulMatrix4(&m))
		}
	}
	return bb
}

// subtreeBoxes returns the mesh bounding boxes of the given node and its
// descendants, each in the local coordinates of n.
func subtreeBoxes(n Node) []math32.Box3 {
	var bbs []math32.Box3
	if sld := n.AsSolid(); sld != nil && sld.Mesh != nil {
		bbs = append(bbs, sld.Mesh.Geometry().BBox())
	}
	for _, k := range n.AsNodeBase().Children {
		m := k.AsNodeBase().Pose.Transform()
		for _, sb := range subtreeBoxes(k) {
			bbs = append(bbs, sb.MulMatrix4(&m))
		}
	}
	return bbs
}

// test for impl
var _ Node = &Group{}
