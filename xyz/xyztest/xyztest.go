// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyztest provides glTF scene fixtures for tests,
// built programmatically with github.com/qmuntal/gltf/modeler.
package xyztest

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Colors are the base colors of the parts of [Parts], cycled by index.
var Colors = [][4]float64{
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
}

// quad returns the positions and indexes of a unit quad in the X-Y plane
// centered on the origin.
func quad() ([][3]float32, []uint32) {
	return [][3]float32{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0}},
		[]uint32{0, 1, 2, 0, 2, 3}
}

// Parts returns a document whose default scene has n top-level parts
// named "part0", "part1", ... Each part is a quad mesh translated by
// its index along X, with one nested child quad (named "part0_child", ...)
// offset by 1 along Y, so that every part is a subtree of two solids
// with different colors.
func Parts(n int) *gltf.Document {
	doc := gltf.NewDocument()
	pos, idx := quad()
	pi := modeler.WritePosition(doc, pos)
	ii := modeler.WriteIndices(doc, idx)
	ni := modeler.WriteNormal(doc, [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}})
	ti := modeler.WriteTextureCoord(doc, [][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}})

	for ci, c := range Colors {
		bc := c
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name:                 fmt.Sprintf("color%d", ci),
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: &bc},
		})
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: fmt.Sprintf("quad%d", ci),
			Primitives: []*gltf.Primitive{{
				Indices:    gltf.Index(ii),
				Attributes: map[string]int{gltf.POSITION: pi, gltf.NORMAL: ni, gltf.TEXCOORD_0: ti},
				Material:   gltf.Index(ci),
			}},
		})
	}

	for i := 0; i < n; i++ {
		child := len(doc.Nodes)
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        fmt.Sprintf("part%d_child", i),
			Mesh:        gltf.Index((i + 1) % len(Colors)),
			Matrix:      gltf.DefaultMatrix,
			Translation: [3]float64{0, 1, 0},
			Rotation:    gltf.DefaultRotation,
			Scale:       gltf.DefaultScale,
		})
		part := len(doc.Nodes)
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        fmt.Sprintf("part%d", i),
			Mesh:        gltf.Index(i % len(Colors)),
			Children:    []int{child},
			Matrix:      gltf.DefaultMatrix,
			Translation: [3]float64{float64(i), 0, 0},
			Rotation:    gltf.DefaultRotation,
			Scale:       gltf.DefaultScale,
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, part)
	}
	return doc
}

// GLB returns the document encoded as a binary glTF container.
func GLB(doc *gltf.Document) ([]byte, error) {
	var b bytes.Buffer
	enc := gltf.NewEncoder(&b)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// JSON returns the document encoded as a .gltf JSON file,
// with all buffers embedded as base64 data URIs.
func JSON(doc *gltf.Document) ([]byte, error) {
	for _, buf := range doc.Buffers {
		if buf.URI == "" {
			buf.URI = "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Data)
		}
	}
	var b bytes.Buffer
	enc := gltf.NewEncoder(&b)
	enc.AsBinary = false
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
