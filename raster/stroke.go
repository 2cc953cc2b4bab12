// seehuhn.de/go/cloth - cloth simulation and software rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is assembled from simple pieces: one quadrilateral per
// segment, one wedge or disc per join and one piece per cap. All pieces
// have the same orientation and are filled together with the nonzero
// rule, so overlaps are painted once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}
	if r.pieces == nil {
		r.pieces = &path.Data{}
	}
	r.pieces.Cmds = r.pieces.Cmds[:0]
	r.pieces.Coords = r.pieces.Coords[:0]

	var start vec.Vec2
	drawn := false
	flush := func(closed bool) {
		if drawn {
			r.strokeSubpath(closed)
		}
		r.subpath = r.subpath[:0]
		drawn = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		var pt vec.Vec2
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			start = p.Coords[k]
			r.subpath = append(r.subpath, start)
			k++
			continue
		case path.CmdClose:
			flush(true)
			continue
		case path.CmdLineTo:
			pt = p.Coords[k]
			k++
		case path.CmdQuadTo:
			pt = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			pt = p.Coords[k+2]
			k += 3
		}
		if len(r.subpath) == 0 {
			// a segment after Close starts again at the subpath start
			r.subpath = append(r.subpath, start)
		}
		r.extendSubpath(pt)
		drawn = true
	}
	flush(false)

	r.fill(r.pieces, fillNonZero, emit)
}

// extendSubpath appends pt unless it repeats the previous point.
func (r *Rasterizer) extendSubpath(pt vec.Vec2) {
	n := len(r.subpath)
	if pt.Sub(r.subpath[n-1]).Length() < zeroLengthThreshold {
		return
	}
	r.subpath = append(r.subpath, pt)
}

// strokeSubpath adds the outline pieces for the points collected in
// r.subpath.
func (r *Rasterizer) strokeSubpath(closed bool) {
	pts := r.subpath
	if closed && len(pts) > 1 && pts[len(pts)-1].Sub(pts[0]).Length() < zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}
	d := r.Width / 2

	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		// a lone point has no direction; only a round cap marks it
		if r.Cap == graphics.LineCapRound {
			r.addDisc(pts[0], d)
		}
		return
	case len(pts) == 2:
		closed = false
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		t := unit(b.Sub(a))
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addPiece(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		p := pts[i]
		r.addJoin(p, unit(p.Sub(prev)), unit(next.Sub(p)), d)
	}

	if !closed {
		r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
		r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), d)
	}
}

// addJoin adds the join geometry at p between the incoming direction t1
// and the outgoing direction t2. Only the outer side needs filling; the
// inner side is covered by the segment quadrilaterals.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	sin := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.Dot(t2)
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}

	// the outer side is opposite to the direction of the turn
	side := -1.0
	if sin < 0 {
		side = 1.0
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)
	a := p.Add(n1.Mul(d))
	b := p.Add(n2.Mul(d))

	bisector := n1.Add(n2)
	bl := bisector.Length()
	if r.Join == graphics.LineJoinMiter && bl > 0 && 2/bl <= r.MiterLimit {
		tip := p.Add(bisector.Mul(2 * d / (bl * bl)))
		r.addPiece(p, a, tip, b)
		return
	}
	r.addPiece(p, a, b)
}

// addCap adds the cap at the end point p, where t points away from the
// line.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		ext := t.Mul(d)
		r.addPiece(p.Add(nrm), p.Add(nrm).Add(ext), p.Sub(nrm).Add(ext), p.Sub(nrm))
	}
}

// addDisc adds a polygonal disc around c. The number of vertices is
// chosen so that the polygon stays within Flatness of the true circle
// in device space.
func (r *Rasterizer) addDisc(c vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 8
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.ring = r.ring[:0]
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.ring = append(r.ring, vec.Vec2{X: c.X + radius*cos, Y: c.Y + radius*sin})
	}
	r.addPiece(r.ring...)
}

// addPiece appends a closed polygon to the stroke outline, reversing it
// if needed so that all pieces share the same orientation.
func (r *Rasterizer) addPiece(pts ...vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area == 0 {
		return
	}
	if area < 0 {
		r.pieces.MoveTo(pts[len(pts)-1])
		for i := len(pts) - 2; i >= 0; i-- {
			r.pieces.LineTo(pts[i])
		}
	} else {
		r.pieces.MoveTo(pts[0])
		for _, p := range pts[1:] {
			r.pieces.LineTo(p)
		}
	}
	r.pieces.Close()
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}
