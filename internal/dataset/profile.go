// SPDX-License-Identifier: MIT
package dataset

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Profile is a sampled distribution along a path, such as the stress across
// a beam section.
type Profile struct {
	Path   []float64 `yaml:"path"`
	Values []float64 `yaml:"values"`
}

// LoadProfile reads a profile from .yaml/.yml (path/values keys) or .csv
// (path,value rows).
func LoadProfile(path string) (Profile, error) {
	file, f, err := open(path)
	if err != nil {
		return Profile{}, err
	}
	defer file.Close()

	if f == formatCSV {
		return ReadProfileCSV(file)
	}

	return DecodeProfileYAML(file)
}

// DecodeProfileYAML reads a path/values document.
func DecodeProfileYAML(r io.Reader) (Profile, error) {
	var p Profile
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("dataset: decode profile: %w", err)
	}
	if len(p.Path) != len(p.Values) {
		return Profile{}, fmt.Errorf("%w: %d path points, %d values", ErrMalformed, len(p.Path), len(p.Values))
	}

	return p, nil
}

// ReadProfileCSV reads path,value rows. Every cell past the header must be
// a finite number.
func ReadProfileCSV(r io.Reader) (Profile, error) {
	xs, ys, err := readColumns(r)
	if err != nil {
		return Profile{}, err
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return Profile{}, fmt.Errorf("%w: sample %d is not a finite path,value pair", ErrMalformed, i)
		}
	}

	return Profile{Path: xs, Values: ys}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
