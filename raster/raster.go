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

// Package raster converts polygons to anti-aliased pixel coverage.
//
// Coverage is the exact fraction of each pixel's area inside the shape.
// It is delivered one scanline at a time through an emit callback, so the
// caller decides how to composite it.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. The slice holds the
// values for pixels xMin, xMin+1, ...; it is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	yMin   float64
	yMax   float64
}

// Rasterizer turns polygon outlines into coverage values.
// Internal buffers grow as needed and are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the tolerance in device pixels used when
	// approximating round joins and caps by polygons.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the miter length relative to the stroke width.
	// Longer miters are drawn as bevels.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// device-space bounding box of the collected edges
	bboxEmpty        bool
	devXMin, devXMax float64
	devYMin, devYMax float64

	// stroke outline buffers
	pieces  *path.Data
	subpath []vec.Vec2
	ring    []vec.Vec2
}

// NewRasterizer returns a Rasterizer for the given clip rectangle,
// with an identity CTM and the canvas defaults for stroking.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores all public fields to their defaults and sets a new clip
// rectangle. Internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasterizer) fill(p *path.Data, rule fillRule, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	r.walkEdges(p)

	xMin, xMax, yMin, yMax, ok := r.deviceBounds()
	if !ok {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, rule, emit)
}

// walkEdges adds one edge per line segment of p, closing every subpath.
// Curve segments contribute the chord to their end point.
func (r *Rasterizer) walkEdges(p *path.Data) {
	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}
}

// addEdge transforms a user-space segment to device space and records it.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}
	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
		yMin: min(y0, y1),
		yMax: max(y0, y1),
	}
	r.edges = append(r.edges, e)

	if r.bboxEmpty {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = e.yMin, e.yMax
		r.bboxEmpty = false
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, e.yMin)
	r.devYMax = max(r.devYMax, e.yMax)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// deviceBounds returns the pixel range touched by the collected edges,
// clamped to the clip rectangle.
func (r *Rasterizer) deviceBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	clipX0, clipX1 := r.Clip.LLx, r.Clip.URx
	clipY0, clipY1 := r.Clip.LLy, r.Clip.URy

	// clamp in float space first so that huge coordinates cannot
	// overflow the int conversion
	x0 := math.Floor(max(r.devXMin, clipX0))
	x1 := math.Floor(min(r.devXMax, clipX1)) + 1
	y0 := math.Floor(max(r.devYMin, clipY0))
	y1 := math.Floor(min(r.devYMax, clipY1)) + 1

	xMin, xMax = int(x0), min(int(x1), int(clipX1))
	yMin, yMax = int(y0), min(int(y1), int(clipY1))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage model:
//
// Every edge crossing a pixel adds two numbers to it:
//
//	cover = sign * dy             signed vertical extent inside the pixel
//	area  = cover * (1 - xFrac)   the part of that extent right of the edge
//
// where sign is +1 for edges running down and -1 for edges running up.
// Scanning a row from left to right, the signed area of the shape inside
// pixel i is accum + area[i], after which accum += cover[i]. The fill rule
// maps that signed area to a coverage value.

// scan processes the scanlines yMin..yMax-1 with an active edge list.
func (r *Rasterizer) scan(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin, b.yMin)
	})

	r.active = r.active[:0]
	next := 0
	for next < len(r.edges) && r.edges[next].yMax <= float64(yMin) {
		next++
	}

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && r.edges[next].yMin < bottom {
			if r.edges[next].yMax > top {
				r.active = append(r.active, next)
			}
			next++
		}
		if len(r.active) == 0 {
			if next >= len(r.edges) {
				return
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			accumulate(e, top, bottom, r.cover, r.area, xMin, xMax)
			i++
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if span, offset := trimZeros(r.cover); span != nil {
			emit(y, xMin+offset, span)
		}
	}
}

// accumulate adds the contribution of e within the scanline [top, bottom)
// to the row buffers, which cover the pixel columns xMin..xMax-1.
// Work is bounded by the clip width, however far the edge extends.
func accumulate(e *edge, top, bottom float64, cover, area []float32, xMin, xMax int) {
	yTop := max(top, e.yMin)
	yBot := min(bottom, e.yMax)
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	lo, hi := min(xa, xb), max(xa, xb)
	pixLo := math.Floor(lo)
	pixHi := math.Floor(hi)

	left, right := float64(xMin), float64(xMax)
	if pixHi < left {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLo >= right {
		return
	}

	if pixLo == pixHi {
		c := sign * float32(yBot-yTop)
		xFrac := (xa+xb)/2 - pixLo
		idx := int(pixLo) - xMin
		cover[idx] += c
		area[idx] += c * float32(1-xFrac)
		return
	}

	dydx := 1 / e.dxdy
	yAt := func(x float64) float64 {
		return min(max(e.y0+dydx*(x-e.x0), yTop), yBot)
	}

	if pixLo < left {
		// the part of the edge left of the buffer shifts the whole row
		yCut := yAt(left)
		var dy float64
		if xa < xb {
			dy = yCut - yTop
		} else {
			dy = yBot - yCut
		}
		if dy > 0 {
			c := sign * float32(dy)
			cover[0] += c
			area[0] += c
		}
		pixLo = left
	}
	pixHi = min(pixHi, right-1)

	for pix := pixLo; pix <= pixHi; pix++ {
		ya := yAt(pix)
		yb := yAt(pix + 1)
		segTop, segBot := min(ya, yb), max(ya, yb)
		dy := segBot - segTop
		if dy <= 0 {
			continue
		}
		c := sign * float32(dy)
		xMid := e.x0 + e.dxdy*((segTop+segBot)/2-e.y0)
		xFrac := xMid - pix
		idx := int(pix) - xMin
		cover[idx] += c
		area[idx] += c * float32(1-xFrac)
	}
}

// integrateNonZero turns the row buffers into coverage values, in place.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// integrateEvenOdd turns the row buffers into coverage values, in place.
func integrateEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		m := raw - 2*float32(int(raw/2))
		d := 1 - m
		if d < 0 {
			d = -d
		}
		cover[i] = 1 - d
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the tolerance for round joins and caps, in
	// device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the HTML canvas and PDF defaults.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent for an
	// edge to contribute coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest segment considered by Stroke.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the sine of the turning angle below which
	// two stroked segments need no join.
	collinearityThreshold = 1e-6
)
