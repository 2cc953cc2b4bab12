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
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidParams is returned by [Params.Validate] and [LoadParams] for
// out-of-range tunables.
var ErrInvalidParams = errors.New("cloth: invalid parameters")

// Params holds the tunables of a simulation.
// The fields may be changed between ticks.
type Params struct {
	// Gravity is added to the vertical velocity of every free vertex each
	// tick. Zero disables gravity, negative values pull upwards.
	Gravity float64 `toml:"gravity"`

	// Damping scales the inferred velocity each tick. It must lie in [0, 1).
	Damping float64 `toml:"damping"`

	SpringStrength float64 `toml:"spring_strength"`

	Brightness float64 `toml:"brightness"`
	Contrast   float64 `toml:"contrast"`

	OscillationAmplitude float64 `toml:"oscillation_amplitude"`
	OscillationSpeed     float64 `toml:"oscillation_speed"`
}

// DefaultParams are the tunables of a new simulation.
var DefaultParams = Params{
	Gravity:              0.5,
	Damping:              0.99,
	SpringStrength:       0.5,
	Brightness:           1.2,
	Contrast:             1.3,
	OscillationAmplitude: 50,
	OscillationSpeed:     2,
}

// Validate checks that all values are finite and within range.
func (p *Params) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"gravity", p.Gravity},
		{"damping", p.Damping},
		{"spring_strength", p.SpringStrength},
		{"brightness", p.Brightness},
		{"contrast", p.Contrast},
		{"oscillation_amplitude", p.OscillationAmplitude},
		{"oscillation_speed", p.OscillationSpeed},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
	}

	if p.Damping < 0 || p.Damping >= 1 {
		return fmt.Errorf("%w: damping %g not in [0, 1)", ErrInvalidParams, p.Damping)
	}
	if p.Brightness < 0 {
		return fmt.Errorf("%w: negative brightness %g", ErrInvalidParams, p.Brightness)
	}
	if p.Contrast < 0 {
		return fmt.Errorf("%w: negative contrast %g", ErrInvalidParams, p.Contrast)
	}
	return nil
}

// LoadParams reads tunables in TOML format from r.
// Keys missing from the input keep their default values, unknown keys
// are an error.
func LoadParams(r io.Reader) (Params, error) {
	p := DefaultParams
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Params{}, fmt.Errorf("cloth: decoding parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// WriteTOML writes p in the format read by [LoadParams].
func (p *Params) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}
