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
	"testing"

	"github.com/stretchr/testify/assert"
)

func springLength(v []Vertex, s Spring) float64 {
	a, b := v[s.A], v[s.B]
	return math.Sqrt((b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y) + (b.Z-a.Z)*(b.Z-a.Z))
}

func TestRelaxSpring(t *testing.T) {
	cases := []struct {
		name   string
		fixedA bool
		fixedB bool
		want   float64 // violation after one pass
	}{
		{"free", false, false, 0},
		{"one end fixed", true, false, 0.5},
		{"other end fixed", false, true, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := []Vertex{
				{X: 0, Y: 0, Z: 0, Fixed: tc.fixedA},
				{X: 0, Y: 2, Z: 0, Fixed: tc.fixedB},
			}
			s := Spring{A: 0, B: 1, RestLength: 1}
			before := math.Abs(springLength(v, s) - s.RestLength)

			relaxSpring(v, s)

			after := math.Abs(springLength(v, s) - s.RestLength)
			assert.Less(t, after, before)
			assert.InDelta(t, tc.want, after, 1e-12)
		})
	}
}

func TestRelaxSpringCompressed(t *testing.T) {
	v := []Vertex{{X: 1}, {X: 1.5, Y: 0.1, Z: -0.2}}
	s := Spring{A: 0, B: 1, RestLength: 3}
	before := math.Abs(springLength(v, s) - s.RestLength)
	relaxSpring(v, s)
	after := math.Abs(springLength(v, s) - s.RestLength)
	assert.Less(t, after, before)
}

func TestZeroLengthSpring(t *testing.T) {
	v := []Vertex{{X: 1, Y: 2, Z: 3}, {X: 1, Y: 2, Z: 3}}
	s := []Spring{{A: 0, B: 1, RestLength: 5}}

	applySpringForces(v, s, 0.5)
	relax(v, s)

	assert.Equal(t, Vertex{X: 1, Y: 2, Z: 3}, v[0])
	assert.Equal(t, Vertex{X: 1, Y: 2, Z: 3}, v[1])
}

func TestFixedVerticesNeverMove(t *testing.T) {
	v := []Vertex{
		{X: 0, Y: 0, Z: 0, OldX: 0, OldY: -1, OldZ: 0, Fixed: true},
		{X: 3, Y: 0, Z: 0, OldX: 3, OldY: 0, OldZ: 0},
	}
	s := []Spring{{A: 0, B: 1, RestLength: 1}}

	integrate(v, 0.5, 0.99)
	applySpringForces(v, s, 0.5)
	relax(v, s)

	assert.Equal(t, Vertex{OldY: -1, Fixed: true}, v[0])
	assert.Less(t, springLength(v, s[0]), 3.0)
}

func TestIntegrate(t *testing.T) {
	v := []Vertex{{X: 1, Y: 2, Z: 3, OldX: 0, OldY: 2, OldZ: 4}}
	integrate(v, 0.5, 0.5)
	assert.Equal(t, Vertex{X: 1.5, Y: 2.5, Z: 2.5, OldX: 1, OldY: 2, OldZ: 3}, v[0])
}

func TestSpringForcePass(t *testing.T) {
	v := []Vertex{{X: 0}, {X: 4}}
	s := []Spring{{A: 0, B: 1, RestLength: 2}}

	// the force pass only moves part of the way towards the rest length
	applySpringForces(v, s, 0.5)
	assert.InDelta(t, 0.5, v[0].X, 1e-12)
	assert.InDelta(t, 3.5, v[1].X, 1e-12)
}
