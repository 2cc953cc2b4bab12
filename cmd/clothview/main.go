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

// Command clothview shows the cloth simulation in a window.
//
// Drag with the left mouse button to turn the cloth, use the mouse wheel
// to zoom. Keys:
//
//	G       toggle gravity
//	L       toggle the orthographic view
//	A       toggle auto rotation
//	P       pause
//	R       reset the view and the tunables
//	B / V   brightness up / down
//	C / X   contrast up / down
//	Up/Down oscillation amplitude
//	Right/Left oscillation speed
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"seehuhn.de/go/cloth"
)

type options struct {
	segments  int
	size      float64
	width     int
	height    int
	config    string
	legacy    bool
	debug     bool
	writeConf bool
}

func main() {
	var opts options
	cmd := &cobra.Command{
		Use:           "clothview",
		Short:         "Interactive cloth simulation",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.segments, "segments", cloth.DefaultSegments, "cells along each side of the cloth")
	flags.Float64Var(&opts.size, "size", cloth.DefaultClothSize, "side length of the cloth")
	flags.IntVar(&opts.width, "width", 1280, "window width in pixels")
	flags.IntVar(&opts.height, "height", 800, "window height in pixels")
	flags.StringVar(&opts.config, "config", "", "TOML file with simulation parameters")
	flags.BoolVar(&opts.legacy, "legacy", false, "start in the orthographic view")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.writeConf, "print-config", false, "print the parameters in TOML format and exit")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "clothview:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	params := cloth.DefaultParams
	if opts.config != "" {
		f, err := os.Open(opts.config)
		if err != nil {
			return err
		}
		params, err = cloth.LoadParams(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", opts.config, err)
		}
		logger.Info("loaded parameters", "file", opts.config)
	}
	if opts.writeConf {
		return params.WriteTOML(os.Stdout)
	}

	sim, err := cloth.New(opts.width, opts.height, opts.segments, opts.size)
	if err != nil {
		return err
	}
	sim.Params = params
	sim.Renderer.Logger = logger
	if opts.legacy {
		sim.Mode = cloth.Orthographic
	}
	logger.Debug("simulation created",
		"vertices", sim.VertexCount(),
		"triangles", sim.TriangleCount(),
		"mode", sim.Mode)

	g := newViewer(sim, params, logger)

	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle("Cloth Simulation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
