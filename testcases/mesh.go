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

var meshCases = []TestCase{
	{
		// the centre is a corner and does not oscillate
		Name:      "single_cell",
		Segments:  1,
		ClothSize: 200,
		Width:     400,
		Height:    400,
		Ticks:     30,
		Camera:    cloth.DefaultCamera,
	},
	{
		Name:      "two_by_two",
		Segments:  2,
		ClothSize: 100,
		Width:     800,
		Height:    600,
		Ticks:     1,
		Camera:    cloth.DefaultCamera,
	},
	{
		Name:     "odd_segments",
		Segments: 5,
		Width:    800,
		Height:   600,
		Ticks:    60,
		Camera:   cloth.DefaultCamera,
	},
	{
		Name:     "fine",
		Segments: 30,
		Width:    800,
		Height:   600,
		Ticks:    60,
		Camera:   cloth.DefaultCamera,
	},
	{
		Name:      "large_cloth",
		ClothSize: 800,
		Width:     800,
		Height:    600,
		Ticks:     60,
		Camera:    cloth.DefaultCamera,
	},
}
