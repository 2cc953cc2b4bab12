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
	"slices"

	"golang.org/x/image/draw"
)

// ErrInvalidViewport is returned for negative viewport dimensions.
var ErrInvalidViewport = errors.New("cloth: invalid viewport")

const (
	// DefaultSegments is the number of cells along each side of the cloth.
	DefaultSegments = 10

	// DefaultClothSize is the side length of the cloth in world units.
	DefaultClothSize = 400

	// TickDuration is the simulated time covered by one call to
	// [Simulation.Advance].
	TickDuration = 1.0 / 60
)

// Simulation is an animated cloth.
//
// The embedded Params may be changed between ticks. A Simulation is not
// safe for concurrent use; the caller runs each tick and render on one
// goroutine.
type Simulation struct {
	Params

	// Mode selects the rendering variant used by Render and Frame.
	Mode Mode

	// Renderer holds the drawing buffers. Its Logger may be set to
	// trace rendering anomalies.
	Renderer *Renderer

	mesh          *Mesh
	width, height int
	time          float64
	ticks         int
}

// New creates a simulation with a viewport of width×height pixels and a
// cloth of the given size, divided into segments×segments cells. The
// tunables start out as [DefaultParams].
func New(width, height, segments int, clothSize float64) (*Simulation, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidViewport, width, height)
	}
	mesh, err := NewMesh(segments, clothSize)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		Params:   DefaultParams,
		Renderer: &Renderer{},
		mesh:     mesh,
		width:    width,
		height:   height,
	}, nil
}

// Advance runs one tick of the simulation: Verlet integration, the spring
// force pass, positional relaxation and finally the oscillation of the
// centre vertex.
func (s *Simulation) Advance() {
	s.time += TickDuration
	s.ticks++

	v := s.mesh.Vertices
	integrate(v, s.Gravity, s.Damping)
	applySpringForces(v, s.mesh.Springs, s.SpringStrength)
	relax(v, s.mesh.Springs)
	s.oscillate()
}

// oscillate moves the centre vertex to its scripted height. The old
// position is moved along, so that no velocity is introduced.
func (s *Simulation) oscillate() {
	c := &s.mesh.Vertices[s.mesh.Center()]
	if c.Fixed {
		return
	}
	c.Y = s.OscillationAmplitude * math.Sin(s.time*s.OscillationSpeed)
	c.OldY = c.Y
}

// Render draws the cloth into dst, as seen from cam.
// The simulation state is not changed.
func (s *Simulation) Render(dst draw.Image, cam Camera) RenderStats {
	if s.Renderer == nil {
		s.Renderer = &Renderer{}
	}
	return s.Renderer.Render(dst, s, cam)
}

// Frame returns the draw list for the current state, as seen from cam.
// The returned frame is owned by the caller.
func (s *Simulation) Frame(cam Camera) *Frame {
	if s.Renderer == nil {
		s.Renderer = &Renderer{}
	}
	f := s.Renderer.buildFrame(s, cam)
	res := *f
	res.Faces = slices.Clone(f.Faces)
	f.Faces = f.Faces[:0]
	return &res
}

// Resize changes the viewport size. The viewport is used to centre the
// cloth.
func (s *Simulation) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %d×%d", ErrInvalidViewport, width, height)
	}
	s.width, s.height = width, height
	return nil
}

// Size returns the viewport size.
func (s *Simulation) Size() (width, height int) {
	return s.width, s.height
}

// VertexCount returns the number of vertices of the cloth.
func (s *Simulation) VertexCount() int {
	return len(s.mesh.Vertices)
}

// TriangleCount returns the number of faces of the cloth.
func (s *Simulation) TriangleCount() int {
	return len(s.mesh.Triangles)
}

// Time returns the simulated time.
func (s *Simulation) Time() float64 {
	return s.time
}

// Ticks returns the number of completed calls to Advance.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Mesh gives read access to the cloth geometry.
// Callers must not modify the mesh.
func (s *Simulation) Mesh() *Mesh {
	return s.mesh
}
