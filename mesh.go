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
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSegments is returned when a mesh has fewer than one
	// segment per side.
	ErrInvalidSegments = errors.New("cloth: invalid segment count")

	// ErrInvalidSize is returned for a cloth size which is not a positive,
	// finite number.
	ErrInvalidSize = errors.New("cloth: invalid cloth size")
)

// Vertex is a point mass of the cloth.
// The previous position is used to infer the velocity.
type Vertex struct {
	X, Y, Z          float64
	OldX, OldY, OldZ float64
	Mass             float64 // reserved, always 1
	Fixed            bool
}

// Spring is a distance constraint between two vertices.
type Spring struct {
	A, B       int
	RestLength float64
}

// Triangle lists the vertex indices of a face.
// All faces of a mesh share the same winding.
type Triangle [3]int

// Mesh is a square grid of vertices together with its springs and faces.
type Mesh struct {
	Segments  int
	Size      float64
	Vertices  []Vertex
	Springs   []Spring
	Triangles []Triangle
}

// NewMesh builds a flat cloth of the given size, divided into
// segments×segments cells. The cloth lies in the plane y=0, centred on
// the origin, and its four corners are pinned.
func NewMesh(segments int, size float64) (*Mesh, error) {
	if segments < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSegments, segments)
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSize, size)
	}

	m := &Mesh{Segments: segments, Size: size}
	n := segments + 1
	m.Vertices = make([]Vertex, 0, n*n)
	for row := range n {
		for col := range n {
			x := (float64(col)/float64(segments) - 0.5) * size
			z := (float64(row)/float64(segments) - 0.5) * size
			m.Vertices = append(m.Vertices, Vertex{
				X: x, Z: z,
				OldX: x, OldZ: z,
				Mass: 1,
			})
		}
	}

	rest := size / float64(segments)
	diag := rest * math.Sqrt2
	m.Springs = make([]Spring, 0, 2*segments*n+2*segments*segments)
	for row := range n {
		for col := range n {
			idx := m.Index(row, col)
			if col < segments {
				m.Springs = append(m.Springs, Spring{A: idx, B: idx + 1, RestLength: rest})
			}
			if row < segments {
				m.Springs = append(m.Springs, Spring{A: idx, B: idx + n, RestLength: rest})
			}
			if row < segments && col < segments {
				m.Springs = append(m.Springs,
					Spring{A: idx, B: idx + n + 1, RestLength: diag},
					Spring{A: idx + 1, B: idx + n, RestLength: diag})
			}
		}
	}

	m.Triangles = make([]Triangle, 0, 2*segments*segments)
	for row := range segments {
		for col := range segments {
			topLeft := m.Index(row, col)
			topRight := topLeft + 1
			bottomLeft := topLeft + n
			bottomRight := bottomLeft + 1
			m.Triangles = append(m.Triangles,
				Triangle{topLeft, topRight, bottomLeft},
				Triangle{topRight, bottomRight, bottomLeft})
		}
	}

	for _, idx := range m.Corners() {
		m.Vertices[idx].Fixed = true
	}
	return m, nil
}

// Index returns the position of the vertex at (row, col) in m.Vertices.
func (m *Mesh) Index(row, col int) int {
	return row*(m.Segments+1) + col
}

// Corners returns the indices of the four corner vertices.
func (m *Mesh) Corners() [4]int {
	s := m.Segments
	return [4]int{m.Index(0, 0), m.Index(0, s), m.Index(s, 0), m.Index(s, s)}
}

// Center returns the index of the vertex driven by the oscillation.
func (m *Mesh) Center() int {
	return m.Index(m.Segments/2, m.Segments/2)
}
