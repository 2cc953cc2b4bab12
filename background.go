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

package cloth

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/cloth/raster"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	// BackgroundColor is the page colour behind the cloth.
	BackgroundColor = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff}

	gridColor = color.NRGBA{R: 0x64, G: 0xff, B: 0xda, A: 8} // 3% opacity
)

const (
	gridSpacing   = 50
	gridLineWidth = 0.5
	gridParallax  = 10 // pixels of grid shift per radian of rotation
)

// DrawBackground paints the page colour and a faint grid into dst.
// The grid shifts with the camera rotation.
func DrawBackground(dst *image.RGBA, cam Camera) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(BackgroundColor), image.Point{}, draw.Src)
	if b.Empty() {
		return
	}

	w, h := float64(b.Dx()), float64(b.Dy())
	offX := math.Mod(cam.RotationY*gridParallax, gridSpacing)
	offY := math.Mod(cam.RotationX*gridParallax, gridSpacing)
	if math.IsNaN(offX) || math.IsNaN(offY) {
		return
	}

	p := &path.Data{}
	for x := -offX; x < w; x += gridSpacing {
		p.MoveTo(vec.Vec2{X: x, Y: 0}).LineTo(vec.Vec2{X: x, Y: h})
	}
	for y := -offY; y < h; y += gridSpacing {
		p.MoveTo(vec.Vec2{X: 0, Y: y}).LineTo(vec.Vec2{X: w, Y: y})
	}

	r := raster.NewRasterizer(rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	})
	r.CTM = matrix.Matrix{1, 0, 0, 1, float64(b.Min.X), float64(b.Min.Y)}
	r.Width = gridLineWidth
	r.Stroke(p, raster.BlendRGBA(dst, gridColor))
}
