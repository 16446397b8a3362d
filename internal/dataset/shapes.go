// SPDX-License-Identifier: MIT
package dataset

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/geometry"
)

// ShapeSpec is the YAML form of one shape.
//
//	- {type: rectangle, center: [0, 0], width: 2, height: 1}
//	- {type: circle, center: [3, 0], radius: 1}
//	- {type: prism, center: [0, 0, 0], width: 1, height: 1, depth: 1}
//	- {type: sphere, center: [0, 0, 0], radius: 2}
type ShapeSpec struct {
	Type   string    `yaml:"type"`
	Center []float64 `yaml:"center"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Depth  float64   `yaml:"depth"`
	Radius float64   `yaml:"radius"`
}

type shapesFile struct {
	Shapes []ShapeSpec `yaml:"shapes"`
}

// Shape converts the spec into its geometry value. Sizes are not checked
// here; the consumer validates them.
func (s ShapeSpec) Shape() (geometry.Shape, error) {
	want := 2
	kind := strings.ToLower(s.Type)
	if kind == "prism" || kind == "sphere" {
		want = 3
	}
	if len(s.Center) != want {
		return nil, fmt.Errorf("%w: %s needs a %d-component center, got %d", ErrMalformed, s.Type, want, len(s.Center))
	}

	switch kind {
	case "rectangle":
		return geometry.Rectangle{Center: [2]float64{s.Center[0], s.Center[1]}, Width: s.Width, Height: s.Height}, nil
	case "circle":
		return geometry.Circle{Center: [2]float64{s.Center[0], s.Center[1]}, Radius: s.Radius}, nil
	case "prism":
		return geometry.RectangularPrism{
			Center: [3]float64{s.Center[0], s.Center[1], s.Center[2]},
			Width:  s.Width, Height: s.Height, Depth: s.Depth,
		}, nil
	case "sphere":
		return geometry.Sphere{Center: [3]float64{s.Center[0], s.Center[1], s.Center[2]}, Radius: s.Radius}, nil
	}

	return nil, fmt.Errorf("%w: unknown shape type %q", ErrMalformed, s.Type)
}

// LoadShapes reads a YAML shape set.
func LoadShapes(path string) ([]geometry.Shape, error) {
	file, f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if f != formatYAML {
		return nil, fmt.Errorf("shapes from %s: %w", path, ErrUnsupportedFormat)
	}

	return DecodeShapesYAML(file)
}

// DecodeShapesYAML reads a document with a top-level shapes list.
func DecodeShapesYAML(r io.Reader) ([]geometry.Shape, error) {
	var doc shapesFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dataset: decode shapes: %w", err)
	}
	out := make([]geometry.Shape, len(doc.Shapes))
	var err error
	for i, spec := range doc.Shapes {
		if out[i], err = spec.Shape(); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}

	return out, nil
}
