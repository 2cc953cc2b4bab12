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

package testcases

import (
	"math"

	"seehuhn.de/go/cloth"
)

var perspectiveCases = []TestCase{
	{
		Name:   "rest",
		Width:  800,
		Height: 600,
		Camera: cloth.DefaultCamera,
	},
	{
		Name:   "half_second",
		Width:  800,
		Height: 600,
		Ticks:  30,
		Camera: cloth.DefaultCamera,
	},
	{
		Name:   "two_seconds",
		Width:  800,
		Height: 600,
		Ticks:  120,
		Camera: cloth.DefaultCamera,
	},
	{
		// the oscillation is at its lowest point
		Name:   "trough",
		Width:  800,
		Height: 600,
		Ticks:  141,
		Camera: cloth.DefaultCamera,
	},
	{
		Name:   "top_down",
		Width:  600,
		Height: 600,
		Ticks:  60,
		Camera: view(-math.Pi/2, 0),
	},
	{
		Name:   "side_view",
		Width:  800,
		Height: 400,
		Ticks:  60,
		Camera: view(0, 0),
	},
	{
		Name:   "from_below",
		Width:  800,
		Height: 600,
		Ticks:  60,
		Camera: view(math.Pi/4, math.Pi/3),
	},
	{
		Name:   "close",
		Width:  800,
		Height: 600,
		Ticks:  60,
		Camera: cloth.Camera{Distance: 300, RotationX: -math.Pi / 6, RotationY: math.Pi / 4},
	},
	{
		Name:   "far",
		Width:  800,
		Height: 600,
		Ticks:  60,
		Camera: cloth.Camera{Distance: 1000, RotationX: -math.Pi / 6, RotationY: math.Pi / 4},
	},
	{
		Name:   "small_canvas",
		Width:  160,
		Height: 120,
		Ticks:  45,
		Camera: cloth.Camera{Distance: 1000, RotationX: -math.Pi / 4, RotationY: math.Pi / 6},
	},
}
