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

// Command genpdf writes every test case as a vector PDF in grayscale. If
// Ghostscript is installed, the PDFs are also rendered to PNG files, for
// comparison with the output of the software rasterizer.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/cloth/testcases"
)

const refDir = "testdata/reference"

// backgroundGray is the luminance of the viewer's page colour.
const backgroundGray = 0.04

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}
	_, gsErr := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Width <= 0 || tc.Height <= 0 {
				continue
			}
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if gsErr != nil {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	sim, err := tc.Setup()
	if err != nil {
		return err
	}
	frame := sim.Frame(tc.Camera)

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(backgroundGray))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left, frames use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	page.Transform(frame.CTM)

	page.SetLineWidth(frame.LineWidth)
	page.SetLineJoin(graphics.LineJoinMiter)

	triangle := func(p [3]vec.Vec2) {
		page.MoveTo(p[0].X, p[0].Y)
		page.LineTo(p[1].X, p[1].Y)
		page.LineTo(p[2].X, p[2].Y)
		page.ClosePath()
	}

	for _, face := range frame.Faces {
		page.SetFillColor(pdfcolor.DeviceGray(gray(face.Fill)))
		page.SetStrokeColor(pdfcolor.DeviceGray(gray(face.Stroke)))

		triangle(face.Points)
		page.Fill()
		triangle(face.Points)
		page.Stroke()
	}

	return page.Close()
}

// gray converts c to a gray level, pre-composited onto the background.
func gray(c color.NRGBA) float64 {
	lum := (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
	a := float64(c.A) / 255
	return lum*a + backgroundGray*(1-a)
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
