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
	"fmt"

	"seehuhn.de/go/cloth"
)

// TestCase defines a single rendering scenario.
type TestCase struct {
	Name      string  // lowercase a-z, 0-9 and _ only
	Segments  int     // cells per side (zero means cloth.DefaultSegments)
	ClothSize float64 // side length (zero means cloth.DefaultClothSize)
	Width     int     // canvas width in pixels
	Height    int     // canvas height in pixels
	Ticks     int     // simulation ticks before the frame is taken
	Camera    cloth.Camera
	Mode      cloth.Mode

	// Tune, if not nil, adjusts the tunables before the first tick.
	Tune func(p *cloth.Params)
}

// Setup creates the simulation for tc and runs it for tc.Ticks ticks.
func (tc TestCase) Setup() (*cloth.Simulation, error) {
	segments := tc.Segments
	if segments == 0 {
		segments = cloth.DefaultSegments
	}
	size := tc.ClothSize
	if size == 0 {
		size = cloth.DefaultClothSize
	}

	sim, err := cloth.New(tc.Width, tc.Height, segments, size)
	if err != nil {
		return nil, fmt.Errorf("test case %q: %w", tc.Name, err)
	}
	sim.Mode = tc.Mode
	if tc.Tune != nil {
		tc.Tune(&sim.Params)
		if err := sim.Params.Validate(); err != nil {
			return nil, fmt.Errorf("test case %q: %w", tc.Name, err)
		}
	}
	for range tc.Ticks {
		sim.Advance()
	}
	return sim, nil
}

// view returns the default camera, rotated by the given angles.
func view(rotX, rotY float64) cloth.Camera {
	cam := cloth.DefaultCamera
	cam.RotationX = rotX
	cam.RotationY = rotY
	return cam
}
