// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text3d generates extruded 3D meshes for text labels from
// the outlines of an embedded font (Latin Modern Sans 10).
package text3d

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"cogentcore.org/ar/base/errors"
	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Options are the parameters of the generated text mesh.
type Options struct {

	// Size is the em size of the font, in scene units.
	Size float32

	// Depth is the extrusion depth along Z, in scene units.
	// A zero depth generates only the front face.
	Depth float32

	// CurveSegments is the number of line segments used to flatten
	// each curved segment of the glyph outlines.
	CurveSegments int

	// LineSpacing is the distance between the baselines of
	// successive lines, as a multiple of Size.
	LineSpacing float32
}

// Defaults sets the default options.
func (o *Options) Defaults() {
	o.Size = 0.5
	o.Depth = 0.14
	o.CurveSegments = 6
	o.LineSpacing = 1.2
}

func (o *Options) update() {
	if o.Size <= 0 {
		o.Size = 0.5
	}
	if o.CurveSegments <= 0 {
		o.CurveSegments = 6
	}
	if o.LineSpacing <= 0 {
		o.LineSpacing = 1.2
	}
}

var (
	faceOnce sync.Once
	theFace  *font.Face

	// shaping is not safe for concurrent use
	shapeMu sync.Mutex
	shaper  shaping.HarfbuzzShaper
)

// Face returns the embedded font face used for all text meshes.
func Face() *font.Face {
	faceOnce.Do(func() {
		faces := errors.Must1(font.ParseTTC(bytes.NewReader(lmsans10regular.TTF)))
		theFace = faces[0]
	})
	return theFace
}

// glyph is one shaped glyph, positioned in font units.
type glyph struct {
	id     font.GID
	origin math32.Vector2
}

// layout shapes each line of the text, returning the glyphs positioned
// with the first baseline at y = 0 and lines going down.
func layout(face *font.Face, text string, spacing float32) []glyph {
	upem := int(face.Upem())
	var gls []glyph
	for li, line := range strings.Split(text, "\n") {
		rs := []rune(line)
		if len(rs) == 0 {
			continue
		}
		in := shaping.Input{
			Text:      rs,
			RunStart:  0,
			RunEnd:    len(rs),
			Direction: di.DirectionLTR,
			Face:      face,
			Size:      fixed.I(upem),
			Script:    language.Latin,
			Language:  language.NewLanguage("en"),
		}
		shapeMu.Lock()
		out := shaper.Shape(in)
		shapeMu.Unlock()
		pen := math32.Vec2(0, -float32(li)*spacing*float32(upem))
		for _, g := range out.Glyphs {
			org := pen.Add(math32.Vec2(fromFixed(g.XOffset), fromFixed(g.YOffset)))
			gls = append(gls, glyph{id: g.GlyphID, origin: org})
			pen.X += fromFixed(g.XAdvance)
			pen.Y += fromFixed(g.YAdvance)
		}
	}
	return gls
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Mesh returns the extruded mesh of the given text, NFC normalized,
// with the baseline of the first line on y = 0, starting at x = 0,
// and centered in depth on z = 0. Lines are separated by newlines.
// Characters without an outline in the font, such as spaces,
// advance the pen but add no geometry.
func Mesh(text string, opts Options) (*xyz.GenMesh, error) {
	opts.update()
	text = norm.NFC.String(text)
	face := Face()
	if face == nil {
		return nil, fmt.Errorf("text3d.Mesh: font not available")
	}
	scale := opts.Size / float32(face.Upem())
	ms := xyz.NewGenMesh(text)
	for _, g := range layout(face, text, opts.LineSpacing) {
		if g.id == 0 {
			continue // .notdef
		}
		ol, ok := face.GlyphData(g.id).(font.GlyphOutline)
		if !ok || len(ol.Segments) == 0 {
			continue
		}
		cs := outline(ol, g.origin, scale, opts.CurveSegments)
		for _, sh := range shapes(cs) {
			extrude(ms, sh, opts.Depth)
		}
	}
	return ms, nil
}

// outline flattens the glyph outline into closed contours,
// offset by the glyph origin (in font units) and then scaled.
func outline(ol font.GlyphOutline, origin math32.Vector2, scale float32, segs int) []contour {
	var cs []contour
	var cur contour
	var last math32.Vector2
	pt := func(p opentype.SegmentPoint) math32.Vector2 {
		return math32.Vec2(p.X, p.Y).Add(origin).MulScalar(scale)
	}
	add := func(p math32.Vector2) {
		if len(cur) > 0 && cur[len(cur)-1] == p {
			return
		}
		cur = append(cur, p)
	}
	closeContour := func() {
		if len(cur) > 1 && cur[0] == cur[len(cur)-1] {
			cur = cur[:len(cur)-1]
		}
		if len(cur) >= 3 && cur.area() != 0 {
			cs = append(cs, cur)
		}
		cur = nil
	}
	for _, s := range ol.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			closeContour()
			last = pt(s.Args[0])
			add(last)
		case opentype.SegmentOpLineTo:
			last = pt(s.Args[0])
			add(last)
		case opentype.SegmentOpQuadTo:
			p0, p1, p2 := last, pt(s.Args[0]), pt(s.Args[1])
			for k := 1; k <= segs; k++ {
				t := float32(k) / float32(segs)
				u := 1 - t
				add(p0.MulScalar(u * u).Add(p1.MulScalar(2 * u * t)).Add(p2.MulScalar(t * t)))
			}
			last = p2
		case opentype.SegmentOpCubeTo:
			p0, p1, p2, p3 := last, pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2])
			for k := 1; k <= segs; k++ {
				t := float32(k) / float32(segs)
				u := 1 - t
				add(p0.MulScalar(u * u * u).Add(p1.MulScalar(3 * u * u * t)).Add(p2.MulScalar(3 * u * t * t)).Add(p3.MulScalar(t * t * t)))
			}
			last = p3
		}
	}
	closeContour()
	return cs
}

// extrude adds the front and back caps and the side walls of the
// shape to the mesh, with the front facing +Z at z = depth/2.
// Side walls get flat outward normals.
func extrude(ms *xyz.GenMesh, sh shape, depth float32) {
	poly := bridge(sh.outer, sh.holes)
	tris := triangulate(poly)
	if len(tris) == 0 {
		return
	}
	zf, zb := depth/2, -depth/2

	base := uint32(ms.NumVertex())
	for _, p := range poly {
		ms.Vertex.Append(p.X, p.Y, zf)
		ms.Normal.Append(0, 0, 1)
	}
	for _, t := range tris {
		ms.Index.Append(base+uint32(t[0]), base+uint32(t[1]), base+uint32(t[2]))
	}
	if depth <= 0 {
		return
	}

	base = uint32(ms.NumVertex())
	for _, p := range poly {
		ms.Vertex.Append(p.X, p.Y, zb)
		ms.Normal.Append(0, 0, -1)
	}
	for _, t := range tris {
		ms.Index.Append(base+uint32(t[0]), base+uint32(t[2]), base+uint32(t[1]))
	}

	walls := append([]contour{sh.outer}, sh.holes...)
	for _, c := range walls {
		for i, p := range c {
			q := c[(i+1)%len(c)]
			d := q.Sub(p)
			nrm := math32.Vec3(d.Y, -d.X, 0).Normal()
			b := uint32(ms.NumVertex())
			ms.Vertex.Append(p.X, p.Y, zf, q.X, q.Y, zf, q.X, q.Y, zb, p.X, p.Y, zb)
			ms.Normal.AppendVector3(nrm, nrm, nrm, nrm)
			ms.Index.Append(b, b+2, b+1, b, b+3, b+2)
		}
	}
}
