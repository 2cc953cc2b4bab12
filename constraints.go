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

import "math"

// relaxIterations is the number of positional relaxation passes per tick.
const relaxIterations = 3

// applySpringForces moves the endpoints of every spring towards its rest
// length, scaled by strength. Each endpoint receives half of the
// correction.
func applySpringForces(vertices []Vertex, springs []Spring, strength float64) {
	for _, s := range springs {
		a, b := &vertices[s.A], &vertices[s.B]
		dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
		d := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if d == 0 {
			continue
		}
		k := (s.RestLength - d) / d * strength / 2
		shift(a, b, dx*k, dy*k, dz*k)
	}
}

// relax runs the positional relaxation passes over all springs.
func relax(vertices []Vertex, springs []Spring) {
	for range relaxIterations {
		for _, s := range springs {
			relaxSpring(vertices, s)
		}
	}
}

// relaxSpring moves both free endpoints of s by half the length error,
// so that a spring between two free vertices is restored exactly.
func relaxSpring(vertices []Vertex, s Spring) {
	a, b := &vertices[s.A], &vertices[s.B]
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if d == 0 {
		return
	}
	k := (s.RestLength - d) / d / 2
	shift(a, b, dx*k, dy*k, dz*k)
}

// shift moves a by -(ox, oy, oz) and b by +(ox, oy, oz).
// Fixed vertices stay where they are.
func shift(a, b *Vertex, ox, oy, oz float64) {
	if !a.Fixed {
		a.X -= ox
		a.Y -= oy
		a.Z -= oz
	}
	if !b.Fixed {
		b.X += ox
		b.Y += oy
		b.Z += oz
	}
}
