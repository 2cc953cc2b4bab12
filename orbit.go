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

import "math"

// Orbit is an interactive camera which follows a target pose.
// The rotation is smoothed, the distance is applied immediately.
type Orbit struct {
	Camera

	// TargetX and TargetY are the rotations the camera moves towards.
	TargetX, TargetY float64

	// AutoRotate spins the target about the vertical axis while the
	// user is not dragging, by 0.01·AutoRotateSpeed radians per step.
	AutoRotate      bool
	AutoRotateSpeed float64

	dragging bool
}

const (
	orbitSmoothing  = 0.1
	orbitStep       = 0.01 // radians per step of auto rotation
	dragSensitivity = 0.01 // radians per pixel
	zoomSensitivity = 0.5
	minDistance     = 300
	maxDistance     = 1000
)

// NewOrbit returns an auto-rotating orbit camera in the default pose.
func NewOrbit() *Orbit {
	o := &Orbit{Camera: DefaultCamera, AutoRotateSpeed: 1}
	o.Reset()
	return o
}

// Reset points the camera back at the default pose and enables auto
// rotation. The rotation then moves there smoothly.
func (o *Orbit) Reset() {
	o.Distance = DefaultCamera.Distance
	o.TargetX = DefaultCamera.RotationX
	o.TargetY = DefaultCamera.RotationY
	o.AutoRotate = true
}

// Drag turns the target by a pointer movement of (dx, dy) pixels.
// Calling Drag suspends auto rotation until [Orbit.Release].
func (o *Orbit) Drag(dx, dy float64) {
	o.dragging = true
	o.TargetY += dx * dragSensitivity
	o.TargetX = clamp(o.TargetX+dy*dragSensitivity, -math.Pi/2, math.Pi/2)
}

// Release ends a drag.
func (o *Orbit) Release() {
	o.dragging = false
}

// Zoom changes the distance by a scroll amount, in pixels.
func (o *Orbit) Zoom(delta float64) {
	o.Distance = clamp(o.Distance+delta*zoomSensitivity, minDistance, maxDistance)
}

// Step moves the camera one frame towards the target.
func (o *Orbit) Step() {
	o.RotationX += (o.TargetX - o.RotationX) * orbitSmoothing
	o.RotationY += (o.TargetY - o.RotationY) * orbitSmoothing
	if o.AutoRotate && !o.dragging {
		o.TargetY += orbitStep * o.AutoRotateSpeed
	}
}
