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

import "seehuhn.de/go/cloth"

var degenerateCases = []TestCase{
	{
		// the near edge of the cloth lies on the camera plane
		Name:   "camera_plane",
		Width:  800,
		Height: 600,
		Camera: cloth.Camera{Distance: 200},
	},
	{
		// the camera sits inside the cloth
		Name:   "camera_inside",
		Width:  800,
		Height: 600,
		Ticks:  30,
		Camera: cloth.Camera{Distance: 50, RotationY: 0.3},
	},
	{
		Name:   "zero_distance",
		Width:  800,
		Height: 600,
		Ticks:  30,
		Camera: cloth.Camera{},
	},
	{
		Name:   "empty_canvas",
		Width:  0,
		Height: 0,
		Ticks:  10,
		Camera: cloth.DefaultCamera,
	},
}
