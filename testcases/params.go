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

var paramCases = []TestCase{
	{
		Name:   "no_gravity",
		Width:  800,
		Height: 600,
		Ticks:  90,
		Camera: cloth.DefaultCamera,
		Tune:   func(p *cloth.Params) { p.Gravity = 0 },
	},
	{
		Name:   "negative_gravity",
		Width:  800,
		Height: 600,
		Ticks:  90,
		Camera: cloth.DefaultCamera,
		Tune:   func(p *cloth.Params) { p.Gravity = -0.5 },
	},
	{
		Name:   "bright",
		Width:  800,
		Height: 600,
		Ticks:  60,
		Camera: cloth.DefaultCamera,
		Tune:   func(p *cloth.Params) { p.Brightness = 2 },
	},
	{
		Name:   "dim",
		Width:  800,
		Height: 600,
		Ticks:  60,
		Camera: cloth.DefaultCamera,
		Tune:   func(p *cloth.Params) { p.Brightness = 0.5 },
	},
	{
		Name:   "high_contrast",
		Width:  800,
		Height: 600,
		Ticks:  60,
		Camera: cloth.DefaultCamera,
		Tune:   func(p *cloth.Params) { p.Contrast = 2 },
	},
	{
		Name:   "large_amplitude",
		Width:  800,
		Height: 600,
		Ticks:  45,
		Camera: cloth.DefaultCamera,
		Tune:   func(p *cloth.Params) { p.OscillationAmplitude = 150 },
	},
	{
		Name:   "fast_oscillation",
		Width:  800,
		Height: 600,
		Ticks:  60,
		Camera: cloth.DefaultCamera,
		Tune:   func(p *cloth.Params) { p.OscillationSpeed = 8 },
	},
	{
		Name:   "stiff",
		Width:  800,
		Height: 600,
		Ticks:  90,
		Camera: cloth.DefaultCamera,
		Tune:   func(p *cloth.Params) { p.SpringStrength = 1 },
	},
	{
		Name:   "loose",
		Width:  800,
		Height: 600,
		Ticks:  90,
		Camera: cloth.DefaultCamera,
		Tune: func(p *cloth.Params) {
			p.SpringStrength = 0.05
			p.Damping = 0.9
		},
	},
}
