// Command export renders every test case to a PNG file and writes an index
// of the rendered frames in JSON format.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/anthonynsimon/bild/imgio"

	"seehuhn.de/go/cloth"
	"seehuhn.de/go/cloth/testcases"
)

const outDir = "testdata/frames"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Frames []jsonFrame `json:"frames"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			frame, err := render(name, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.Frames = append(out.Frames, frame)
		}
	}

	f, err := os.Create(filepath.Join(outDir, "frames.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonFrame struct {
	Name      string  `json:"name"`
	File      string  `json:"file,omitempty"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Mode      string  `json:"mode"`
	Ticks     int     `json:"ticks"`
	Time      float64 `json:"time"`
	Vertices  int     `json:"vertices"`
	Triangles int     `json:"triangles"`
	Drawn     int     `json:"drawn"`
	Skipped   int     `json:"skipped"`
}

func render(name string, tc testcases.TestCase) (jsonFrame, error) {
	sim, err := tc.Setup()
	if err != nil {
		return jsonFrame{}, err
	}

	img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	cloth.DrawBackground(img, tc.Camera)
	stats := sim.Render(img, tc.Camera)

	frame := jsonFrame{
		Name:      name,
		Width:     tc.Width,
		Height:    tc.Height,
		Mode:      sim.Mode.String(),
		Ticks:     sim.Ticks(),
		Time:      sim.Time(),
		Vertices:  sim.VertexCount(),
		Triangles: sim.TriangleCount(),
		Drawn:     stats.Drawn,
		Skipped:   stats.Skipped,
	}

	// PNG cannot store empty images
	if img.Bounds().Empty() {
		return frame, nil
	}
	frame.File = name + ".png"
	err = imgio.Save(filepath.Join(outDir, frame.File), img, imgio.PNGEncoder())
	if err != nil {
		return jsonFrame{}, err
	}
	return frame, nil
}
