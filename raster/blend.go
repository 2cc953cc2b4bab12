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
)

// BlendRGBA returns an emit callback which composites c onto img using
// the source-over operator, with the coverage values scaling the alpha
// of c. Device pixel (x, y) is img's pixel (x, y); spans outside the
// image bounds are cut off.
func BlendRGBA(img *image.RGBA, c color.NRGBA) EmitFunc {
	alpha := float32(c.A) / 255
	sr, sg, sb := float32(c.R), float32(c.G), float32(c.B)
	b := img.Bounds()

	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X || cov <= 0 {
				continue
			}
			a := alpha * cov
			k := 1 - a
			o := img.PixOffset(x, y)
			px := img.Pix[o : o+4 : o+4]
			px[0] = clampByte(sr*a + float32(px[0])*k)
			px[1] = clampByte(sg*a + float32(px[1])*k)
			px[2] = clampByte(sb*a + float32(px[2])*k)
			px[3] = clampByte(255*a + float32(px[3])*k)
		}
	}
}

func clampByte(v float32) uint8 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
