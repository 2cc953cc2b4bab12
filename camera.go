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
	"math"

	"seehuhn.de/go/geom/vec"
)

// maxScreenCoord bounds projected coordinates. Points further out come
// from vertices at or behind the camera plane.
const maxScreenCoord = 1 << 20

// Camera is a viewing pose. The cloth is rotated about the vertical axis
// by RotationY, then about the horizontal axis by RotationX, and finally
// projected with perspective.
type Camera struct {
	// Distance controls the strength of the perspective. A point at depth
	// z is scaled by Distance/(Distance+z).
	Distance float64

	RotationX float64
	RotationY float64
}

// DefaultCamera is the initial pose of the viewer.
var DefaultCamera = Camera{
	Distance:  600,
	RotationX: -math.Pi / 6,
	RotationY: math.Pi / 4,
}

// Project maps a point in world space to an offset from the viewport
// centre. The second return value is false if the point cannot be
// projected, because it lies on the camera plane or maps too far away.
func (c Camera) Project(x, y, z float64) (vec.Vec2, bool) {
	sinY, cosY := math.Sincos(c.RotationY)
	x1 := x*cosY - z*sinY
	z1 := x*sinY + z*cosY

	sinX, cosX := math.Sincos(c.RotationX)
	y2 := y*cosX - z1*sinX
	z2 := y*sinX + z1*cosX

	div := c.Distance + z2
	if div == 0 {
		return vec.Vec2{}, false
	}
	scale := c.Distance / div
	p := vec.Vec2{X: x1 * scale, Y: y2 * scale}
	if !(math.Abs(p.X) <= maxScreenCoord && math.Abs(p.Y) <= maxScreenCoord) {
		return vec.Vec2{}, false
	}
	return p, true
}
