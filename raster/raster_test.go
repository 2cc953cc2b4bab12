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
	"image"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// canvas collects coverage values in a w×h grid.
type canvas struct {
	w, h int
	pix  []float32
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, pix: make([]float32, w*h)}
}

func (c *canvas) emit(y, xMin int, coverage []float32) {
	for i, v := range coverage {
		x := xMin + i
		if x < 0 || x >= c.w || y < 0 || y >= c.h {
			panic("coverage emitted outside the clip rectangle")
		}
		c.pix[y*c.w+x] = v
	}
}

func (c *canvas) at(x, y int) float32 {
	return c.pix[y*c.w+x]
}

func (c *canvas) clip() rect.Rect {
	return rect.Rect{URx: float64(c.w), URy: float64(c.h)}
}

func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// TestTriangleCoverage verifies exact coverage values for a thin triangle.
// The triangle (0,0)→(10,0)→(10,1) has the diagonal edge y = x/10, so
// pixel x is covered to (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	c := newCanvas(10, 1)
	r := NewRasterizer(c.clip())
	r.FillNonZero(polygon(pt(0, 0), pt(10, 0), pt(10, 1)), c.emit)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if got := c.at(x, 0); math.Abs(float64(got-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, got)
		}
	}
}

func TestRectangleCoverage(t *testing.T) {
	c := newCanvas(8, 8)
	r := NewRasterizer(c.clip())
	r.FillNonZero(polygon(pt(2, 2), pt(6, 2), pt(6, 6), pt(2, 6)), c.emit)

	for y := range 8 {
		for x := range 8 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 1
			}
			if got := c.at(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestHalfPixelEdges(t *testing.T) {
	c := newCanvas(4, 1)
	r := NewRasterizer(c.clip())
	r.FillNonZero(polygon(pt(0.5, 0), pt(2.5, 0), pt(2.5, 1), pt(0.5, 1)), c.emit)

	want := []float32{0.5, 1, 0.5, 0}
	for x, w := range want {
		if got := c.at(x, 0); got != w {
			t.Errorf("pixel %d: got %g, want %g", x, got, w)
		}
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := polygon(pt(1, 1), pt(7, 1), pt(7, 7), pt(1, 7))
	p = p.MoveTo(pt(3, 3)).LineTo(pt(5, 3)).LineTo(pt(5, 5)).LineTo(pt(3, 5)).Close()

	cases := []struct {
		name   string
		fill   func(r *Rasterizer, p *path.Data, emit EmitFunc)
		center float32
	}{
		{"nonzero", (*Rasterizer).FillNonZero, 1},
		{"evenodd", (*Rasterizer).FillEvenOdd, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCanvas(8, 8)
			r := NewRasterizer(c.clip())
			tc.fill(r, p, c.emit)

			if got := c.at(4, 4); got != tc.center {
				t.Errorf("center: got %g, want %g", got, tc.center)
			}
			if got := c.at(1, 1); got != 1 {
				t.Errorf("ring: got %g, want 1", got)
			}
			if got := c.at(0, 0); got != 0 {
				t.Errorf("outside: got %g, want 0", got)
			}
		})
	}
}

func TestClipOutside(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	called := false
	r.FillNonZero(polygon(pt(20, 20), pt(30, 20), pt(25, 30)), func(int, int, []float32) {
		called = true
	})
	if called {
		t.Error("shape outside the clip rectangle produced coverage")
	}
}

func TestHugeCoordinates(t *testing.T) {
	c := newCanvas(16, 16)
	r := NewRasterizer(c.clip())
	r.FillNonZero(polygon(pt(-1e12, 0), pt(1e12, 0), pt(8, 16)), c.emit)

	for i, v := range c.pix {
		if v < 0 || v > 1 || math.IsNaN(float64(v)) {
			t.Fatalf("pixel %d: coverage %g out of range", i, v)
		}
	}
	if got := c.at(8, 8); got != 1 {
		t.Errorf("pixel (8,8): got %g, want 1", got)
	}
}

func TestNonFiniteEdgesIgnored(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	called := false
	r.FillNonZero(polygon(pt(math.NaN(), 0), pt(math.Inf(1), 5), pt(0, math.Inf(-1))), func(int, int, []float32) {
		called = true
	})
	if called {
		t.Error("non-finite polygon produced coverage")
	}
}

func TestCTMTranslation(t *testing.T) {
	c := newCanvas(8, 8)
	r := NewRasterizer(c.clip())
	r.CTM = matrix.Matrix{1, 0, 0, 1, 4, 4}
	r.FillNonZero(polygon(pt(-1, -1), pt(1, -1), pt(1, 1), pt(-1, 1)), c.emit)

	for _, p := range []image.Point{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		if got := c.at(p.X, p.Y); got != 1 {
			t.Errorf("pixel %v: got %g, want 1", p, got)
		}
	}
	if got := c.at(2, 2); got != 0 {
		t.Errorf("pixel (2,2): got %g, want 0", got)
	}
}

func TestStrokeCaps(t *testing.T) {
	cases := []struct {
		cap        graphics.LineCapStyle
		leftOfLine float32
	}{
		{graphics.LineCapButt, 0},
		{graphics.LineCapSquare, 1},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			c := newCanvas(10, 8)
			r := NewRasterizer(c.clip())
			r.Width = 2
			r.Cap = tc.cap
			r.Stroke((&path.Data{}).MoveTo(pt(2, 4)).LineTo(pt(8, 4)), c.emit)

			for x := 2; x < 8; x++ {
				for _, y := range []int{3, 4} {
					if got := c.at(x, y); got != 1 {
						t.Errorf("pixel (%d,%d): got %g, want 1", x, y, got)
					}
				}
			}
			if got := c.at(5, 2); got != 0 {
				t.Errorf("above the line: got %g, want 0", got)
			}
			if got := c.at(1, 3); got != tc.leftOfLine {
				t.Errorf("beyond the start: got %g, want %g", got, tc.leftOfLine)
			}
		})
	}
}

func TestStrokeClosedTriangle(t *testing.T) {
	for _, join := range []graphics.LineJoinStyle{
		graphics.LineJoinMiter,
		graphics.LineJoinBevel,
		graphics.LineJoinRound,
	} {
		t.Run(join.String(), func(t *testing.T) {
			c := newCanvas(64, 64)
			r := NewRasterizer(c.clip())
			r.Width = 2
			r.Join = join
			r.Stroke(polygon(pt(10, 10), pt(50, 10), pt(30, 50)), c.emit)

			if got := c.at(30, 25); got != 0 {
				t.Errorf("interior: got %g, want 0", got)
			}
			if got := c.at(30, 9); got != 1 {
				t.Errorf("top edge, outer half: got %g, want 1", got)
			}
			if got := c.at(30, 10); got != 1 {
				t.Errorf("top edge, inner half: got %g, want 1", got)
			}
			if got := c.at(5, 30); got != 0 {
				t.Errorf("outside: got %g, want 0", got)
			}
		})
	}
}

func TestStrokeMiterTip(t *testing.T) {
	// A right angle corner at (10,10): the miter fills the corner pixel,
	// the bevel cuts it in half.
	cases := []struct {
		join graphics.LineJoinStyle
		want float32
	}{
		{graphics.LineJoinMiter, 1},
		{graphics.LineJoinBevel, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.join.String(), func(t *testing.T) {
			c := newCanvas(20, 20)
			r := NewRasterizer(c.clip())
			r.Width = 2
			r.Join = tc.join
			r.Stroke((&path.Data{}).MoveTo(pt(2, 10)).LineTo(pt(10, 10)).LineTo(pt(10, 18)), c.emit)

			if got := c.at(10, 9); math.Abs(float64(got-tc.want)) > 1e-6 {
				t.Errorf("corner pixel: got %g, want %g", got, tc.want)
			}
		})
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 0
	r.Stroke(polygon(pt(1, 1), pt(8, 1), pt(4, 8)), func(int, int, []float32) {
		t.Error("zero width stroke produced coverage")
	})
}

func TestReset(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 4, URy: 4})
	r.Width = 3
	r.Join = graphics.LineJoinRound
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}

	clip := rect.Rect{URx: 8, URy: 8}
	r.Reset(clip)
	if r.Width != 1 || r.Join != graphics.LineJoinMiter || r.CTM != matrix.Identity || r.Clip != clip {
		t.Errorf("Reset did not restore the defaults: %+v", r)
	}
	if r.MiterLimit != defaultMiterLimit || r.Flatness != defaultFlatness {
		t.Errorf("unexpected defaults: miter limit %g, flatness %g", r.MiterLimit, r.Flatness)
	}
}

func TestBlendRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(2, 0, color.RGBA{0, 0, 0, 255})

	emit := BlendRGBA(img, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	emit(0, 0, []float32{1, 0.5, 0.5})
	emit(1, 0, []float32{1}) // outside the image

	if got := img.RGBAAt(0, 0); got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("full coverage: got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{100, 50, 25, 128}) {
		t.Errorf("half coverage on transparent: got %v", got)
	}
	if got := img.RGBAAt(2, 0); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("half coverage on black: got %v", got)
	}
}
