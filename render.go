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
	"log/slog"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/draw"

	"seehuhn.de/go/cloth/raster"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// glowRadius is the radius of the Gaussian blur applied to the glow layer.
const glowRadius = 5

// RenderStats summarises a call to [Simulation.Render].
type RenderStats struct {
	Drawn   int // triangles drawn
	Skipped int // triangles which could not be projected
}

// Renderer rasterises frames of a simulation. It keeps scratch buffers
// between calls, so that steady state rendering does not allocate much.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Logger, if set, receives debug messages about skipped triangles.
	Logger *slog.Logger

	frame     Frame
	projected []vec.Vec2
	valid     []bool
	depth     []float64
	order     []int

	ras   *raster.Rasterizer
	tri   *path.Data
	cloth *image.RGBA
	glow  *image.RGBA
}

// Render draws s as seen from cam into dst. Device pixel (0, 0) is the
// top left corner of dst.Bounds().
func (r *Renderer) Render(dst draw.Image, s *Simulation, cam Camera) RenderStats {
	f := r.buildFrame(s, cam)
	stats := RenderStats{Drawn: len(f.Faces), Skipped: f.Skipped}
	if r.Logger != nil && stats.Skipped > 0 {
		r.Logger.Debug("skipped triangles",
			"mode", s.Mode,
			"skipped", stats.Skipped,
			"drawn", stats.Drawn)
	}

	if !dst.Bounds().Empty() {
		r.paint(dst, f)
	}

	// per-frame state must not leak into the next call
	f.Faces = f.Faces[:0]
	f.Skipped = 0
	return stats
}

// paint rasterises the faces of f into two layers, blurs the glow layer
// and composites both onto dst.
func (r *Renderer) paint(dst draw.Image, f *Frame) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	r.cloth = layer(r.cloth, w, h)
	hasGlow := false
	for i := range f.Faces {
		if f.Faces[i].Glow.A > 0 {
			hasGlow = true
			break
		}
	}
	if hasGlow {
		r.glow = layer(r.glow, w, h)
	}

	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	if r.ras == nil {
		r.ras = raster.NewRasterizer(clip)
	} else {
		r.ras.Reset(clip)
	}
	r.ras.CTM = f.CTM
	r.ras.Width = f.LineWidth
	r.ras.Join = graphics.LineJoinMiter
	if r.tri == nil {
		r.tri = &path.Data{}
	}

	for i := range f.Faces {
		face := &f.Faces[i]
		r.tri.Cmds = r.tri.Cmds[:0]
		r.tri.Coords = r.tri.Coords[:0]
		r.tri.MoveTo(face.Points[0]).LineTo(face.Points[1]).LineTo(face.Points[2]).Close()

		if face.Glow.A > 0 {
			emit := raster.BlendRGBA(r.glow, face.Glow)
			r.ras.FillNonZero(r.tri, emit)
			r.ras.Stroke(r.tri, emit)
		}
		r.ras.FillNonZero(r.tri, raster.BlendRGBA(r.cloth, face.Fill))
		r.ras.Stroke(r.tri, raster.BlendRGBA(r.cloth, face.Stroke))
	}

	if hasGlow {
		draw.Draw(dst, b, blur.Gaussian(r.glow, glowRadius), image.Point{}, draw.Over)
	}
	draw.Draw(dst, b, r.cloth, image.Point{}, draw.Over)
}

// layer returns a transparent w×h image, reusing img if possible.
func layer(img *image.RGBA, w, h int) *image.RGBA {
	if img == nil || img.Rect.Dx() != w || img.Rect.Dy() != h {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	clear(img.Pix)
	return img
}
