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
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	DrawBackground(img, Camera{})

	bg := color.RGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff}
	assert.Equal(t, bg, img.RGBAAt(25, 25), "between grid lines")

	// with no rotation the grid lines pass through x=0, 50 and 100
	line := img.RGBAAt(50, 25)
	assert.NotEqual(t, bg, line)
	assert.Greater(t, line.G, bg.G)
	assert.Equal(t, uint8(0xff), line.A)
}

func TestDrawBackgroundShift(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 100, 100))
	b := image.NewRGBA(image.Rect(0, 0, 100, 100))
	DrawBackground(a, Camera{})
	DrawBackground(b, Camera{RotationY: 1})
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestDrawBackgroundOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(200, 300, 260, 360))
	DrawBackground(img, Camera{})
	bg := color.RGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff}
	assert.Equal(t, bg, img.RGBAAt(225, 325))
	assert.NotEqual(t, bg, img.RGBAAt(250, 325))
}
