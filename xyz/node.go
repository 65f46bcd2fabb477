// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides the scene-node types used to assemble
// augmented-reality content: groups, solids, meshes, materials
// and textures, positioned by a [Pose] relative to their parent.
package xyz

import (
	"cogentcore.org/ar/math32"
)

// Node is the common interface for all xyz scene nodes.
type Node interface {
	// AsNodeBase returns the [NodeBase] for this node, which contains
	// the name, pose, and children shared by all nodes.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is a [Solid] node (else a [Group]).
	IsSolid() bool

	// AsSolid returns the node as a [Solid] (nil if not).
	AsSolid() *Solid
}

// NodeBase is the basic node, which has a name, a pose, and children.
type NodeBase struct {

	// Name is the name of the node, used by callers to find it.
	Name string

	// Pose is the complete specification of position, orientation,
	// and scale relative to the parent.
	Pose Pose

	// Parent is the parent of this node (nil for a root).
	Parent Node `copier:"-"`

	// Children are the child nodes, positioned relative to this one.
	Children []Node `copier:"-"`
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

// SetMatrix sets the local transform from the given matrix,
// decomposing it into the position, rotation and scale of the [Pose].
func (nb *NodeBase) SetMatrix(m *math32.Matrix4) {
	nb.Pose.SetMatrix(m)
}

// NumChildren returns the number of children.
func (nb *NodeBase) NumChildren() int {
	return len(nb.Children)
}

// Child returns the child at given index.
func (nb *NodeBase) Child(i int) Node {
	return nb.Children[i]
}

// ChildByName returns the first child with the given name, or nil.
func (nb *NodeBase) ChildByName(name string) Node {
	for _, k := range nb.Children {
		if k.AsNodeBase().Name == name {
			return k
		}
	}
	return nil
}

// AddChild adds the given child to parent, removing it from
// any existing parent first.
func AddChild(parent, child Node) {
	cb := child.AsNodeBase()
	if cb.Parent != nil {
		RemoveChild(cb.Parent, child)
	}
	pb := parent.AsNodeBase()
	pb.Children = append(pb.Children, child)
	cb.Parent = parent
}

// RemoveChild removes the given child from parent, if present.
func RemoveChild(parent, child Node) {
	pb := parent.AsNodeBase()
	for i, k := range pb.Children {
		if k == child {
			pb.Children = append(pb.Children[:i], pb.Children[i+1:]...)
			child.AsNodeBase().Parent = nil
			return
		}
	}
}

// WalkDown calls the given function on the node and all of its descendants,
// in depth-first order. The function returns false to skip the children
// of the node it was called on.
func WalkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range n.AsNodeBase().Children {
		WalkDown(k, fun)
	}
}
