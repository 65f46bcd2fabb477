// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltf decodes glTF 2.0 scenes (*.gltf, *.glb) into xyz nodes,
// using github.com/qmuntal/gltf. Meshes, node transforms, and
// metallic-roughness base colors and textures are supported;
// animation, skinning, cameras and lights are not.
package gltf

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"path"

	"cogentcore.org/ar/base/errors"
	"cogentcore.org/ar/base/fsx"
	"cogentcore.org/ar/base/iox/imagex"
	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
	"github.com/Masterminds/semver/v3"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func init() {
	xyz.Decoders[".gltf"] = &Decoder{}
	xyz.Decoders[".glb"] = &Decoder{}
}

// SupportedVersions is the semver constraint on the asset version of decoded files.
const SupportedVersions = "^2.0"

var versionConstraint = errors.Must1(semver.NewConstraint(SupportedVersions))

// Decoder decodes a glTF document and converts it to xyz nodes.
// It implements the xyz.Decoder interface and an instance
// is registered to handle .gltf and .glb files.
type Decoder struct {
	FS   fs.FS          // filesystem holding the file and its resources
	File string         // file name (without path)
	Dir  string         // path to the file
	Doc  *gltf.Document // the decoded document

	root      *xyz.Group
	visited   map[int]bool
	materials map[int]xyz.Material
	textures  map[int]xyz.Texture
}

func (dec *Decoder) New() xyz.Decoder {
	di := new(Decoder)
	di.materials = make(map[int]xyz.Material)
	di.textures = make(map[int]xyz.Texture)
	return di
}

func (dec *Decoder) Desc() string {
	return ".gltf, .glb = glTF 2.0 format, as JSON with external or embedded (data URI) resources, or as a binary GLB container.  Supports meshes, node transforms, and base color materials and textures."
}

func (dec *Decoder) SetFileFS(fsys fs.FS, fname string) []string {
	dec.FS = fsys
	dec.Dir, dec.File = path.Split(fname)
	return []string{fname}
}

// Decode reads the document and converts its default scene into xyz nodes.
func (dec *Decoder) Decode(rs []io.Reader) error {
	if len(rs) == 0 {
		return errors.New("gltf.Decoder: no readers passed")
	}
	var fsys fs.FS = dec.FS
	if fsys != nil && dec.Dir != "" {
		fsys = fsx.Sub(fsys, path.Clean(dec.Dir))
	}
	doc := new(gltf.Document)
	if err := gltf.NewDecoderFS(rs[0], fsys).Decode(doc); err != nil {
		return err
	}
	if err := CheckVersion(doc.Asset.Version); err != nil {
		return err
	}
	dec.Doc = doc
	dec.root = xyz.NewGroup(dec.File)
	dec.visited = make(map[int]bool)
	for _, ni := range dec.rootNodes() {
		n, err := dec.node(ni)
		if err != nil {
			return err
		}
		xyz.AddChild(dec.root, n)
	}
	return nil
}

// CheckVersion returns an error if the given asset version is not 2.x.
func CheckVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("gltf: invalid asset version %q: %w", version, err)
	}
	if !versionConstraint.Check(v) {
		return fmt.Errorf("gltf: unsupported asset version %q", version)
	}
	return nil
}

// SetGroup moves the decoded top-level nodes under the given group.
func (dec *Decoder) SetGroup(gp *xyz.Group) {
	if dec.root == nil {
		return
	}
	kids := append([]xyz.Node(nil), dec.root.Children...)
	for _, k := range kids {
		xyz.AddChild(gp, k)
	}
	dec.root = nil
}

// rootNodes returns the node indexes of the default scene (or scene 0).
// Documents without scenes use all nodes that are not a child of another.
func (dec *Decoder) rootNodes() []int {
	doc := dec.Doc
	if len(doc.Scenes) > 0 {
		si := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			si = *doc.Scene
		}
		return doc.Scenes[si].Nodes
	}
	isChild := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// node converts the node at the given index and its children.
// Nodes must form strict trees: a node reached a second time,
// through a cycle or a shared child, is an error.
func (dec *Decoder) node(idx int) (xyz.Node, error) {
	doc := dec.Doc
	if idx < 0 || idx >= len(doc.Nodes) {
		return nil, fmt.Errorf("gltf: node index %d out of range", idx)
	}
	if dec.visited[idx] {
		return nil, fmt.Errorf("gltf: node %d has more than one parent", idx)
	}
	dec.visited[idx] = true
	gn := doc.Nodes[idx]
	name := gn.Name
	if name == "" {
		name = fmt.Sprintf("node_%d", idx)
	}

	var n xyz.Node
	if gn.Mesh != nil {
		sls, err := dec.mesh(*gn.Mesh)
		if err != nil {
			return nil, err
		}
		if len(sls) == 1 {
			sls[0].Name = name
			n = sls[0]
		} else {
			gp := xyz.NewGroup(name)
			for _, s := range sls {
				xyz.AddChild(gp, s)
			}
			n = gp
		}
	} else {
		n = xyz.NewGroup(name)
	}
	setPose(n.AsNodeBase(), gn)

	for _, ci := range gn.Children {
		c, err := dec.node(ci)
		if err != nil {
			return nil, err
		}
		xyz.AddChild(n, c)
	}
	return n, nil
}

// setPose sets the node pose from the matrix if present, else from TRS.
func setPose(nb *xyz.NodeBase, gn *gltf.Node) {
	mtx := gn.MatrixOrDefault()
	if mtx != gltf.DefaultMatrix {
		m := math32.Matrix4{}
		m.FromArray(math32.ToFloat32(mtx[:]), 0)
		nb.SetMatrix(&m)
		return
	}
	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault()
	s := gn.ScaleOrDefault()
	nb.Pose.Pos.Set(float32(t[0]), float32(t[1]), float32(t[2]))
	nb.Pose.Quat.Set(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]))
	nb.Pose.Scale.Set(float32(s[0]), float32(s[1]), float32(s[2]))
	nb.Pose.UpdateMatrix()
}

// mesh returns one solid per triangle primitive of the given mesh.
func (dec *Decoder) mesh(idx int) ([]*xyz.Solid, error) {
	doc := dec.Doc
	if idx < 0 || idx >= len(doc.Meshes) {
		return nil, fmt.Errorf("gltf: mesh index %d out of range", idx)
	}
	gm := doc.Meshes[idx]
	name := gm.Name
	if name == "" {
		name = fmt.Sprintf("mesh_%d", idx)
	}
	var sls []*xyz.Solid
	for pi, p := range gm.Primitives {
		if p.Mode != gltf.PrimitiveTriangles {
			slog.Debug("gltf.Decoder: skipping non-triangle primitive", "mesh", name, "mode", p.Mode)
			continue
		}
		pnm := name
		if len(gm.Primitives) > 1 {
			pnm = fmt.Sprintf("%s_%d", name, pi)
		}
		ms, err := dec.primitive(pnm, p)
		if err != nil {
			return nil, err
		}
		if ms == nil {
			continue
		}
		sld := xyz.NewSolid(pnm)
		sld.SetMesh(ms)
		mt, err := dec.material(p.Material)
		if err != nil {
			return nil, err
		}
		sld.SetMaterial(mt)
		sls = append(sls, sld)
	}
	return sls, nil
}

func (dec *Decoder) accessor(idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(dec.Doc.Accessors) {
		return nil, fmt.Errorf("gltf: accessor index %d out of range", idx)
	}
	return dec.Doc.Accessors[idx], nil
}

// primitive reads the vertex data of the given primitive into a mesh.
// It returns nil if the primitive has no positions.
func (dec *Decoder) primitive(name string, p *gltf.Primitive) (*xyz.GenMesh, error) {
	doc := dec.Doc
	pi, ok := p.Attributes[gltf.POSITION]
	if !ok {
		return nil, nil
	}
	acr, err := dec.accessor(pi)
	if err != nil {
		return nil, err
	}
	pos, err := modeler.ReadPosition(doc, acr, nil)
	if err != nil {
		return nil, err
	}
	ms := xyz.NewGenMesh(name)
	for _, v := range pos {
		ms.Vertex.Append(v[0], v[1], v[2])
	}
	nv := len(pos)

	if p.Indices != nil {
		acr, err := dec.accessor(*p.Indices)
		if err != nil {
			return nil, err
		}
		idxs, err := modeler.ReadIndices(doc, acr, nil)
		if err != nil {
			return nil, err
		}
		for _, ix := range idxs {
			if int(ix) >= nv {
				return nil, fmt.Errorf("gltf: index %d out of range for %d vertices", ix, nv)
			}
		}
		ms.Index = idxs
	} else {
		for i := 0; i < nv; i++ {
			ms.Index.Append(uint32(i))
		}
	}

	if ni, ok := p.Attributes[gltf.NORMAL]; ok {
		acr, err := dec.accessor(ni)
		if err != nil {
			return nil, err
		}
		nrm, err := modeler.ReadNormal(doc, acr, nil)
		if err != nil {
			return nil, err
		}
		if len(nrm) == nv {
			for _, v := range nrm {
				ms.Normal.Append(v[0], v[1], v[2])
			}
		}
	}
	if len(ms.Normal) == 0 {
		ms.ComputeNormals()
	}

	if ti, ok := p.Attributes[gltf.TEXCOORD_0]; ok {
		acr, err := dec.accessor(ti)
		if err != nil {
			return nil, err
		}
		uvs, err := modeler.ReadTextureCoord(doc, acr, nil)
		if err != nil {
			return nil, err
		}
		if len(uvs) == nv {
			for _, v := range uvs {
				ms.TexCoord.Append(v[0], v[1])
			}
		}
	}
	return ms, nil
}

// material returns the xyz material for the given material index,
// or the glTF default material (white, single-sided) for nil.
func (dec *Decoder) material(idx *int) (xyz.Material, error) {
	mt := xyz.Material{}
	mt.Defaults()
	mt.Color = color.RGBA{255, 255, 255, 255}
	if idx == nil {
		return mt, nil
	}
	if m, ok := dec.materials[*idx]; ok {
		return m, nil
	}
	doc := dec.Doc
	if *idx < 0 || *idx >= len(doc.Materials) {
		return mt, fmt.Errorf("gltf: material index %d out of range", *idx)
	}
	gm := doc.Materials[*idx]
	if gm.DoubleSided {
		mt.SetDoubleSided()
	}
	ef := gm.EmissiveFactor
	mt.Emissive = floatColor(ef[0], ef[1], ef[2], 1)
	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		bc := [4]float64{1, 1, 1, 1}
		if pbr.BaseColorFactor != nil {
			bc = *pbr.BaseColorFactor
		}
		mt.Color = floatColor(bc[0], bc[1], bc[2], 1)
		if gm.AlphaMode == gltf.AlphaBlend {
			mt.Opacity = float32(bc[3])
		}
		if ti := pbr.BaseColorTexture; ti != nil {
			tex, err := dec.texture(ti.Index)
			if err != nil {
				return mt, err
			}
			mt.SetTexture(tex)
			mt.Tiling.Wrap = true
		}
	}
	dec.materials[*idx] = mt
	return mt, nil
}

// texture returns the texture for the given texture index. Images in
// buffer views or data URIs are decoded immediately; external images
// are loaded lazily from the filesystem.
func (dec *Decoder) texture(idx int) (xyz.Texture, error) {
	if tx, ok := dec.textures[idx]; ok {
		return tx, nil
	}
	doc := dec.Doc
	if idx < 0 || idx >= len(doc.Textures) || doc.Textures[idx].Source == nil {
		return nil, fmt.Errorf("gltf: texture index %d invalid", idx)
	}
	si := *doc.Textures[idx].Source
	if si < 0 || si >= len(doc.Images) {
		return nil, fmt.Errorf("gltf: image index %d out of range", si)
	}
	im := doc.Images[si]
	name := im.Name
	if name == "" {
		name = fmt.Sprintf("image_%d", si)
	}

	var tx xyz.Texture
	switch {
	case im.BufferView != nil:
		if *im.BufferView < 0 || *im.BufferView >= len(doc.BufferViews) {
			return nil, fmt.Errorf("gltf: buffer view index %d out of range", *im.BufferView)
		}
		data, err := modeler.ReadBufferView(doc, doc.BufferViews[*im.BufferView])
		if err != nil {
			return nil, err
		}
		img, _, err := imagex.Read(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gltf: image %q: %w", name, err)
		}
		tx = xyz.NewTexture(name, img)
	case im.IsEmbeddedResource():
		data, err := im.MarshalData()
		if err != nil {
			return nil, err
		}
		img, _, err := imagex.Read(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gltf: image %q: %w", name, err)
		}
		tx = xyz.NewTexture(name, img)
	default:
		uri, err := url.PathUnescape(im.URI)
		if err != nil {
			uri = im.URI
		}
		tx = xyz.NewTextureFileFS(dec.FS, name, path.Join(dec.Dir, uri))
	}
	dec.textures[idx] = tx
	return tx, nil
}

// floatColor returns a color from 0-1 components.
func floatColor(r, g, b, a float64) color.RGBA {
	cv := func(v float64) uint8 {
		return uint8(math32.Clamp(float32(v), 0, 1)*255 + 0.5)
	}
	return color.RGBA{cv(r), cv(g), cv(b), cv(a)}
}
