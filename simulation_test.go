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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	s, err := New(800, 600, DefaultSegments, DefaultClothSize)
	require.NoError(t, err)

	assert.Equal(t, DefaultParams, s.Params)
	assert.Equal(t, Perspective, s.Mode)
	assert.Equal(t, 121, s.VertexCount())
	assert.Equal(t, 200, s.TriangleCount())
	assert.Zero(t, s.Time())
	assert.Zero(t, s.Ticks())

	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestNewInvalid(t *testing.T) {
	_, err := New(-1, 600, 10, 400)
	assert.ErrorIs(t, err, ErrInvalidViewport)
	_, err = New(800, 600, 0, 400)
	assert.ErrorIs(t, err, ErrInvalidSegments)
	_, err = New(800, 600, 10, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestResize(t *testing.T) {
	s, err := New(800, 600, 2, 100)
	require.NoError(t, err)

	require.NoError(t, s.Resize(1024, 768))
	w, h := s.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	assert.ErrorIs(t, s.Resize(-5, 10), ErrInvalidViewport)
	w, h = s.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestCornersStayPut(t *testing.T) {
	s, err := New(800, 600, 6, 300)
	require.NoError(t, err)
	s.Gravity = 2

	m := s.Mesh()
	corners := m.Corners()
	var before [4]Vertex
	for i, idx := range corners {
		before[i] = m.Vertices[idx]
	}

	for range 200 {
		s.Advance()
	}
	for i, idx := range corners {
		assert.Equal(t, before[i], m.Vertices[idx], "corner %d", idx)
	}
}

func TestEquilibrium(t *testing.T) {
	s, err := New(800, 600, 5, 200)
	require.NoError(t, err)
	s.Gravity = 0
	s.OscillationAmplitude = 0

	before := slices.Clone(s.Mesh().Vertices)
	s.Advance()
	for i, v := range s.Mesh().Vertices {
		assert.InDelta(t, before[i].X, v.X, 1e-9, "vertex %d", i)
		assert.InDelta(t, before[i].Y, v.Y, 1e-9, "vertex %d", i)
		assert.InDelta(t, before[i].Z, v.Z, 1e-9, "vertex %d", i)
	}
}

func TestOscillation(t *testing.T) {
	s, err := New(800, 600, 4, 200)
	require.NoError(t, err)
	c := s.Mesh().Center()

	for tick := 1; tick <= 90; tick++ {
		s.Advance()
		v := s.Mesh().Vertices[c]
		want := s.OscillationAmplitude * math.Sin(float64(tick)*TickDuration*s.OscillationSpeed)
		require.InDelta(t, want, v.Y, 1e-9, "tick %d", tick)
		require.Equal(t, v.Y, v.OldY, "tick %d", tick)
	}
	assert.Equal(t, 90, s.Ticks())
	assert.InDelta(t, 1.5, s.Time(), 1e-12)
}

func TestOscillationSkipsFixedCenter(t *testing.T) {
	s, err := New(100, 100, 1, 100)
	require.NoError(t, err)

	s.Advance()
	v := s.Mesh().Vertices[s.Mesh().Center()]
	assert.True(t, v.Fixed)
	assert.Zero(t, v.Y)
}

// TestSmallCloth follows a 2×2 cloth through its first tick.
func TestSmallCloth(t *testing.T) {
	s, err := New(800, 600, 2, 100)
	require.NoError(t, err)
	assert.Equal(t, 9, s.VertexCount())
	assert.Equal(t, 8, s.TriangleCount())

	m := s.Mesh()
	for i, v := range m.Vertices {
		assert.Equal(t, slices.Contains([]int{0, 2, 6, 8}, i), v.Fixed, "vertex %d", i)
	}
	require.Equal(t, 4, m.Center())

	s.Advance()
	assert.InDelta(t, 50*math.Sin(TickDuration*2), m.Vertices[4].Y, 1e-12)

	// without the oscillation, gravity pulls the centre down (+Y)
	s2, err := New(800, 600, 2, 100)
	require.NoError(t, err)
	v := s2.Mesh().Vertices
	integrate(v, s2.Gravity, s2.Damping)
	applySpringForces(v, s2.Mesh().Springs, s2.SpringStrength)
	relax(v, s2.Mesh().Springs)
	assert.Greater(t, v[4].Y, 0.0)
}

func TestTunablesTakeEffect(t *testing.T) {
	a, err := New(800, 600, 4, 200)
	require.NoError(t, err)
	b, err := New(800, 600, 4, 200)
	require.NoError(t, err)
	a.OscillationAmplitude = 0
	b.OscillationAmplitude = 0
	b.Gravity = 0

	for range 10 {
		a.Advance()
		b.Advance()
	}
	// vertex 1 is a free vertex on the edge of the cloth
	assert.Greater(t, a.Mesh().Vertices[1].Y, 0.0)
	assert.InDelta(t, 0, b.Mesh().Vertices[1].Y, 1e-9)
}
