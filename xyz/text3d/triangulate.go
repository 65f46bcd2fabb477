// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text3d

import (
	"slices"

	"cogentcore.org/ar/math32"
)

// contour is a closed polyline; the last point connects to the first.
type contour []math32.Vector2

// area returns the signed area of the contour, positive for
// counter-clockwise winding.
func (c contour) area() float32 {
	var a float32
	for i, p := range c {
		q := c[(i+1)%len(c)]
		a += p.Cross(q)
	}
	return a / 2
}

// contains returns whether the point is inside the contour (even-odd rule).
func (c contour) contains(p math32.Vector2) bool {
	in := false
	for i, a := range c {
		b := c[(i+1)%len(c)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

func (c contour) reversed() contour {
	r := slices.Clone(c)
	slices.Reverse(r)
	return r
}

// shape is an outer contour with the holes directly inside it.
type shape struct {
	outer contour
	holes []contour
}

// shapes groups the contours of a glyph into outer contours and their holes
// by nesting depth, independent of the winding convention of the font.
// Outer contours are returned counter-clockwise and holes clockwise.
func shapes(cs []contour) []shape {
	n := len(cs)
	depth := make([]int, n)
	areas := make([]float32, n)
	for i, c := range cs {
		areas[i] = math32.Abs(c.area())
		for j, o := range cs {
			if i != j && o.contains(c[0]) {
				depth[i]++
			}
		}
	}
	var shs []shape
	outer := make(map[int]int) // contour index to shape index
	for i, c := range cs {
		if depth[i]%2 != 0 {
			continue
		}
		if c.area() < 0 {
			c = c.reversed()
		}
		outer[i] = len(shs)
		shs = append(shs, shape{outer: c})
	}
	for i, c := range cs {
		if depth[i]%2 == 0 {
			continue
		}
		// the parent is the smallest outer contour one level up that contains it
		parent := -1
		for j, o := range cs {
			if _, ok := outer[j]; !ok || depth[j] != depth[i]-1 || !o.contains(c[0]) {
				continue
			}
			if parent < 0 || areas[j] < areas[parent] {
				parent = j
			}
		}
		if parent < 0 {
			continue
		}
		if c.area() > 0 {
			c = c.reversed()
		}
		si := outer[parent]
		shs[si].holes = append(shs[si].holes, c)
	}
	return shs
}

// bridge merges the holes into the outer contour through zero-width
// channels, returning one simple polygon that can be ear clipped.
// Each hole is joined at its rightmost vertex to a visible vertex of
// the outer polygon found by casting a ray in the +X direction.
func bridge(outer contour, holes []contour) contour {
	poly := slices.Clone(outer)
	hs := slices.Clone(holes)
	slices.SortFunc(hs, func(a, b contour) int {
		ax, bx := a[rightmost(a)].X, b[rightmost(b)].X
		switch {
		case ax > bx:
			return -1
		case ax < bx:
			return 1
		}
		return 0
	})
	for _, h := range hs {
		mi := rightmost(h)
		m := h[mi]
		pi := visibleVertex(poly, m)
		if pi < 0 {
			continue
		}
		np := make(contour, 0, len(poly)+len(h)+2)
		np = append(np, poly[:pi+1]...)
		np = append(np, h[mi:]...)
		np = append(np, h[:mi+1]...)
		np = append(np, poly[pi:]...)
		poly = np
	}
	return poly
}

func rightmost(c contour) int {
	mi := 0
	for i, p := range c {
		if p.X > c[mi].X || (p.X == c[mi].X && p.Y < c[mi].Y) {
			mi = i
		}
	}
	return mi
}

// visibleVertex returns the index of a vertex of poly that is visible
// from m, which lies inside poly.
func visibleVertex(poly contour, m math32.Vector2) int {
	n := len(poly)
	best := math32.Infinity
	bi := -1
	for i, a := range poly {
		b := poly[(i+1)%n]
		if a.Y == b.Y || (a.Y-m.Y)*(b.Y-m.Y) > 0 {
			continue
		}
		x := a.X + (m.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x < m.X || x >= best {
			continue
		}
		best = x
		if a.X > b.X {
			bi = i
		} else {
			bi = (i + 1) % n
		}
	}
	if bi < 0 {
		return -1
	}
	ip := math32.Vec2(best, m.Y)
	p := poly[bi]
	if p == ip {
		return bi
	}
	// vertices inside the triangle (m, ip, p) may block the view of p:
	// the one with the smallest angle to the ray is visible
	minAng := math32.Infinity
	for i, v := range poly {
		if i == bi || v == p || !inTriangle(v, m, ip, p) {
			continue
		}
		d := v.Sub(m)
		ang := math32.Abs(math32.Atan2(d.Y, d.X))
		if ang < minAng || (ang == minAng && v.DistanceToSquared(m) < poly[bi].DistanceToSquared(m)) {
			minAng = ang
			bi = i
		}
	}
	return bi
}

// inTriangle returns whether p is inside or on the triangle abc,
// of either winding.
func inTriangle(p, a, b, c math32.Vector2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// triangulate ear clips the counter-clockwise simple polygon,
// returning triangles as counter-clockwise index triples.
func triangulate(poly contour) [][3]int {
	if len(poly) < 3 {
		return nil
	}
	idx := make([]int, len(poly))
	for i := range idx {
		idx[i] = i
	}
	var tris [][3]int
	for len(idx) > 3 {
		n := len(idx)
		clipped := false
		for i := 0; i < n; i++ {
			a, b, c := idx[(i+n-1)%n], idx[i], idx[(i+1)%n]
			pa, pb, pc := poly[a], poly[b], poly[c]
			cr := pb.Sub(pa).Cross(pc.Sub(pb))
			if math32.Abs(cr) < 1e-9 {
				// collinear or spike: drop the vertex without a triangle
				idx = slices.Delete(idx, i, i+1)
				clipped = true
				break
			}
			if cr < 0 || !isEar(poly, idx, pa, pb, pc) {
				continue
			}
			tris = append(tris, [3]int{a, b, c})
			idx = slices.Delete(idx, i, i+1)
			clipped = true
			break
		}
		if !clipped {
			// self-intersecting remainder: clip anyway so that we terminate
			tris = append(tris, [3]int{idx[n-1], idx[0], idx[1]})
			idx = idx[1:]
		}
	}
	pa, pb, pc := poly[idx[0]], poly[idx[1]], poly[idx[2]]
	if pb.Sub(pa).Cross(pc.Sub(pb)) > 0 {
		tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	}
	return tris
}

func isEar(poly contour, idx []int, a, b, c math32.Vector2) bool {
	for _, i := range idx {
		p := poly[i]
		if p == a || p == b || p == c {
			continue
		}
		if inTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}
