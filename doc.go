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

// Package cloth simulates a pinned square of cloth and renders it with a
// small software rasterizer.
//
// The cloth is a grid of point masses joined by structural and shear
// springs. Each tick integrates the points with damped Verlet steps,
// relaxes the springs and drives the centre point up and down. Frames
// are drawn back to front with per-face Lambert shading.
package cloth

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
