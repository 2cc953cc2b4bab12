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

// integrate advances every free vertex by one damped Verlet step.
// Gravity acts along +Y, which points down on screen.
func integrate(vertices []Vertex, gravity, damping float64) {
	for i := range vertices {
		v := &vertices[i]
		if v.Fixed {
			continue
		}
		x, y, z := v.X, v.Y, v.Z
		v.X += (x - v.OldX) * damping
		v.Y += (y-v.OldY)*damping + gravity
		v.Z += (z - v.OldZ) * damping
		v.OldX, v.OldY, v.OldZ = x, y, z
	}
}
