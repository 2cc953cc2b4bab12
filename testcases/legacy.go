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

var legacyCases = []TestCase{
	{
		Name:   "rest",
		Width:  800,
		Height: 600,
		Mode:   cloth.Orthographic,
	},
	{
		Name:   "one_second",
		Width:  800,
		Height: 600,
		Ticks:  60,
		Mode:   cloth.Orthographic,
	},
	{
		Name:      "coarse",
		Segments:  3,
		ClothSize: 300,
		Width:     600,
		Height:    600,
		Ticks:     40,
		Mode:      cloth.Orthographic,
	},
	{
		// the camera has no effect in orthographic mode
		Name:   "camera_ignored",
		Width:  800,
		Height: 600,
		Ticks:  60,
		Mode:   cloth.Orthographic,
		Camera: cloth.Camera{Distance: 1, RotationX: 2, RotationY: 3},
	},
}
