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

package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/cloth"
)

// wheelPixels converts one notch of the mouse wheel into a scroll
// distance in pixels.
const wheelPixels = 100

// viewer implements ebiten.Game. Simulation ticks run in Update, frames
// are rendered in Draw; ebiten calls both on the same goroutine.
type viewer struct {
	sim      *cloth.Simulation
	defaults cloth.Params
	orbit    *cloth.Orbit
	logger   *slog.Logger
	paused   bool

	dragging     bool
	lastX, lastY int

	frame *image.RGBA
	stats cloth.RenderStats
}

func newViewer(sim *cloth.Simulation, defaults cloth.Params, logger *slog.Logger) *viewer {
	return &viewer{
		sim:      sim,
		defaults: defaults,
		orbit:    cloth.NewOrbit(),
		logger:   logger,
	}
}

func (v *viewer) Update() error {
	v.handleKeys()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if v.dragging {
			v.orbit.Drag(float64(x-v.lastX), float64(y-v.lastY))
		} else {
			v.orbit.Drag(0, 0)
			v.dragging = true
		}
		v.lastX, v.lastY = x, y
	} else if v.dragging {
		v.dragging = false
		v.orbit.Release()
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		v.orbit.Zoom(-wy * wheelPixels)
	}

	v.orbit.Step()
	if !v.paused {
		v.sim.Advance()
	}
	return nil
}

func (v *viewer) handleKeys() {
	p := &v.sim.Params
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		if p.Gravity != 0 {
			p.Gravity = 0
		} else {
			p.Gravity = v.defaults.Gravity
		}
		v.logger.Debug("gravity", "value", p.Gravity)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		if v.sim.Mode == cloth.Perspective {
			v.sim.Mode = cloth.Orthographic
		} else {
			v.sim.Mode = cloth.Perspective
		}
		v.logger.Debug("view mode", "mode", v.sim.Mode)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		v.orbit.AutoRotate = !v.orbit.AutoRotate
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		v.paused = !v.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		adjust(&p.Brightness, 0.1, 0.5, 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		adjust(&p.Brightness, -0.1, 0.5, 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		adjust(&p.Contrast, 0.1, 0.8, 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		adjust(&p.Contrast, -0.1, 0.8, 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		adjust(&p.OscillationAmplitude, 5, 10, 100)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		adjust(&p.OscillationAmplitude, -5, 10, 100)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		adjust(&p.OscillationSpeed, 0.1, 0.5, 5)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		adjust(&p.OscillationSpeed, -0.1, 0.5, 5)
	}
}

// reset restores the default view and the tunables which can be changed
// from the keyboard.
func (v *viewer) reset() {
	v.orbit.Reset()
	v.sim.Mode = cloth.Perspective

	p := &v.sim.Params
	p.Brightness = v.defaults.Brightness
	p.Contrast = v.defaults.Contrast
	p.OscillationAmplitude = v.defaults.OscillationAmplitude
	p.OscillationSpeed = v.defaults.OscillationSpeed
	p.Gravity = v.defaults.Gravity
}

func adjust(val *float64, delta, lo, hi float64) {
	*val = max(lo, min(hi, *val+delta))
}

func (v *viewer) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if v.frame == nil || v.frame.Rect.Dx() != b.Dx() || v.frame.Rect.Dy() != b.Dy() {
		v.frame = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}

	cam := v.orbit.Camera
	cloth.DrawBackground(v.frame, cam)
	v.stats = v.sim.Render(v.frame, cam)
	screen.WritePixels(v.frame.Pix)

	gravity := "on"
	if v.sim.Gravity == 0 {
		gravity = "off"
	}
	msg := fmt.Sprintf("FPS: %.0f\nVertices: %d\nTriangles: %d\nView: %s\n"+
		"Gravity: %s\nBrightness: %.1f  Contrast: %.1f\nAmplitude: %.0f  Speed: %.1f",
		ebiten.ActualFPS(), v.sim.VertexCount(), v.sim.TriangleCount(), v.sim.Mode,
		gravity, v.sim.Brightness, v.sim.Contrast,
		v.sim.OscillationAmplitude, v.sim.OscillationSpeed)
	if v.stats.Skipped > 0 {
		msg += fmt.Sprintf("\nSkipped: %d", v.stats.Skipped)
	}
	if v.paused {
		msg += "\nPAUSED"
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := v.sim.Size()
	if w != outsideWidth || h != outsideHeight {
		if err := v.sim.Resize(outsideWidth, outsideHeight); err != nil {
			v.logger.Warn("cannot resize", "error", err)
			return w, h
		}
		v.logger.Debug("resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}
