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
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Mode selects how a simulation is drawn.
type Mode int

const (
	// Perspective draws the shaded cloth as seen by a [Camera].
	Perspective Mode = iota

	// Orthographic draws the cloth from above, rotated by 45 degrees,
	// without lighting. The camera is ignored.
	Orthographic
)

func (m Mode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

// Face is a shaded triangle, ready to be drawn.
// The points are given in user space; [Frame.CTM] maps them to the device.
type Face struct {
	Points [3]vec.Vec2
	Fill   color.NRGBA
	Stroke color.NRGBA
	Glow   color.NRGBA // transparent if the face has no glow
}

// Frame is a device independent draw list for one rendering of a
// simulation. Faces are listed in drawing order.
type Frame struct {
	Width, Height int
	CTM           matrix.Matrix
	LineWidth     float64
	Faces         []Face

	// Skipped counts the triangles which could not be projected.
	Skipped int
}

const (
	faceLineWidth = 1.5

	// heights from -100 to +100 map to the full colour range
	heightOffset = 100
	heightRange  = 200

	ambientFloor  = 0.3
	lightBias     = 0.7
	maxLightLevel = 1.5
)

// lightDir is the normalised direction towards the light.
var lightDir = normalize(0.5, 1, 0.3)

func normalize(x, y, z float64) [3]float64 {
	l := math.Sqrt(x*x + y*y + z*z)
	return [3]float64{x / l, y / l, z / l}
}

// intensity returns the Lambert light level of the face (v0, v1, v2).
// Degenerate faces get the ambient floor, independent of brightness.
func intensity(v0, v1, v2 *Vertex, brightness float64) float64 {
	ax, ay, az := v1.X-v0.X, v1.Y-v0.Y, v1.Z-v0.Z
	bx, by, bz := v2.X-v0.X, v2.Y-v0.Y, v2.Z-v0.Z
	nx := ay*bz - az*by
	ny := az*bx - ax*bz
	nz := ax*by - ay*bx

	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return ambientFloor
	}
	dot := (nx*lightDir[0] + ny*lightDir[1] + nz*lightDir[2]) / l
	return clamp(dot+lightBias, ambientFloor, maxLightLevel) * brightness
}

// heightFactor maps the average height of a face to [0, 1].
func heightFactor(avgY float64) float64 {
	return clamp((avgY+heightOffset)/heightRange, 0, 1)
}

// hsla converts a CSS style colour to NRGBA. Hue is in degrees,
// saturation and lightness in percent, alpha in [0, 1]. Out of range
// values are clamped.
func hsla(hue, sat, light, alpha float64) color.NRGBA {
	c := colorful.Hsl(hue, clamp(sat/100, 0, 1), clamp(light/100, 0, 1)).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp(alpha, 0, 1) * 255))}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// buildFrame fills r.frame with the faces of s as seen from cam.
func (r *Renderer) buildFrame(s *Simulation, cam Camera) *Frame {
	f := &r.frame
	f.Width = s.width
	f.Height = s.height
	f.LineWidth = faceLineWidth
	f.Faces = f.Faces[:0]
	f.Skipped = 0

	switch s.Mode {
	case Orthographic:
		r.orthographicFaces(s, f)
	default:
		r.perspectiveFaces(s, f, cam)
	}
	return f
}

func (r *Renderer) perspectiveFaces(s *Simulation, f *Frame, cam Camera) {
	f.CTM = matrix.Matrix{1, 0, 0, 1, float64(s.width) / 2, float64(s.height) / 2}

	verts := s.mesh.Vertices
	r.projected = slices.Grow(r.projected[:0], len(verts))[:len(verts)]
	r.valid = slices.Grow(r.valid[:0], len(verts))[:len(verts)]
	for i := range verts {
		v := &verts[i]
		r.projected[i], r.valid[i] = cam.Project(v.X, v.Y, v.Z)
	}

	tris := s.mesh.Triangles
	r.depth = slices.Grow(r.depth[:0], len(tris))[:len(tris)]
	r.order = r.order[:0]
	for i, t := range tris {
		r.depth[i] = (verts[t[0]].Z + verts[t[1]].Z + verts[t[2]].Z) / 3
		r.order = append(r.order, i)
	}
	// back to front
	slices.SortStableFunc(r.order, func(a, b int) int {
		return cmp.Compare(r.depth[b], r.depth[a])
	})

	for _, i := range r.order {
		t := tris[i]
		if !r.valid[t[0]] || !r.valid[t[1]] || !r.valid[t[2]] {
			f.Skipped++
			continue
		}
		v0, v1, v2 := &verts[t[0]], &verts[t[1]], &verts[t[2]]

		light := intensity(v0, v1, v2, s.Brightness)
		h := heightFactor((v0.Y + v1.Y + v2.Y) / 3)
		hue := 220 - 140*h
		lightness := 50 * light * s.Contrast

		f.Faces = append(f.Faces, Face{
			Points: [3]vec.Vec2{r.projected[t[0]], r.projected[t[1]], r.projected[t[2]]},
			Fill:   hsla(hue, 80+20*h, lightness, 0.9),
			Stroke: hsla(hue, 90, lightness*1.2, 0.8),
			Glow:   hsla(hue, 100, 70, (1-h)*0.3),
		})
	}
}

func (r *Renderer) orthographicFaces(s *Simulation, f *Frame) {
	c := math.Sqrt2 / 2 // cos and sin of 45°
	f.CTM = matrix.Matrix{c, c, -c, c, float64(s.width) / 2, float64(s.height) / 2}

	verts := s.mesh.Vertices
	for _, t := range s.mesh.Triangles {
		v0, v1, v2 := &verts[t[0]], &verts[t[1]], &verts[t[2]]
		pts := [3]vec.Vec2{{X: v0.X, Y: v0.Z}, {X: v1.X, Y: v1.Z}, {X: v2.X, Y: v2.Z}}
		if !finitePoints(pts) {
			f.Skipped++
			continue
		}

		hue := 220 - 140*heightFactor((v0.Y+v1.Y+v2.Y)/3)
		f.Faces = append(f.Faces, Face{
			Points: pts,
			Fill:   hsla(hue, 85, 65, 0.8),
			Stroke: hsla(hue, 95, 75, 0.9),
		})
	}
}

func finitePoints(pts [3]vec.Vec2) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
