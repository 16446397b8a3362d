// SPDX-License-Identifier: MIT

// Package dataset reads the CLI input files: (x, y) samples, sampled
// profiles (path/values) and shape sets.
//
// Samples and profiles come as YAML or as two-column CSV (an optional
// non-numeric header row is skipped); shapes are YAML only. The format is
// chosen by extension.
//
// A sample coordinate that is missing, empty or not a number is read as NaN
// and left for regression.CleanPoints to drop. Profiles are rejected with
// ErrMalformed instead, since every path point carries a value.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/regression"
)

var (
	// ErrUnsupportedFormat indicates an extension the loader cannot read.
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")

	// ErrMalformed indicates content that parses but does not describe the
	// expected dataset.
	ErrMalformed = errors.New("dataset: malformed dataset")
)

type format int

const (
	formatYAML format = iota
	formatCSV
)

func detect(path string) (format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".csv":
		return formatCSV, nil
	default:
		return 0, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
}

func open(path string) (*os.File, format, error) {
	f, err := detect(path)
	if err != nil {
		return nil, 0, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("dataset: %w", err)
	}

	return file, f, nil
}

// coordinate is a leniently decoded YAML number. Absent, null and
// non-numeric values read as NaN.
type coordinate struct {
	v   float64
	set bool
}

func (c *coordinate) UnmarshalYAML(node *yaml.Node) error {
	if err := node.Decode(&c.v); err != nil {
		c.v = math.NaN()
	}
	c.set = true

	return nil
}

func (c *coordinate) value() float64 {
	if c == nil || !c.set {
		return math.NaN()
	}

	return c.v
}

type pointRecord struct {
	X coordinate `yaml:"x"`
	Y coordinate `yaml:"y"`
}

// samplesFile is the YAML layout of a sample set: either a points list or
// parallel x/y arrays. Column entries are pointers so a null keeps its
// slot instead of being dropped from the sequence.
type samplesFile struct {
	Points []pointRecord `yaml:"points"`
	X      []*coordinate `yaml:"x"`
	Y      []*coordinate `yaml:"y"`
}

// LoadPoints reads (x, y) samples from a .yaml/.yml or .csv file.
func LoadPoints(path string) ([]regression.Point, error) {
	file, f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if f == formatCSV {
		return ReadPointsCSV(file)
	}

	return DecodePointsYAML(file)
}

// DecodePointsYAML reads a samples document.
//
//	points: [{x: 0, y: 1}, {x: 1, y: 3}]
//	# or
//	x: [0, 1]
//	y: [1, 3]
func DecodePointsYAML(r io.Reader) ([]regression.Point, error) {
	var doc samplesFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dataset: decode samples: %w", err)
	}
	if len(doc.Points) > 0 {
		out := make([]regression.Point, len(doc.Points))
		for i, p := range doc.Points {
			out[i] = regression.Point{X: p.X.value(), Y: p.Y.value()}
		}

		return out, nil
	}
	if len(doc.X) != len(doc.Y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrMalformed, len(doc.X), len(doc.Y))
	}
	out := make([]regression.Point, len(doc.X))
	for i := range doc.X {
		out[i] = regression.Point{X: doc.X[i].value(), Y: doc.Y[i].value()}
	}

	return out, nil
}

// ReadPointsCSV reads x,y rows.
func ReadPointsCSV(r io.Reader) ([]regression.Point, error) {
	xs, ys, err := readColumns(r)
	if err != nil {
		return nil, err
	}
	out := make([]regression.Point, len(xs))
	for i := range xs {
		out[i] = regression.Point{X: xs[i], Y: ys[i]}
	}

	return out, nil
}

// readColumns parses a two-column CSV. A first row in which neither cell is
// a number is taken as a header; any other cell that does not parse reads
// as NaN.
func readColumns(r io.Reader) (xs, ys []float64, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var row int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: csv: %w", err)
		}
		row++
		x, errX := strconv.ParseFloat(rec[0], 64)
		y, errY := strconv.ParseFloat(rec[1], 64)
		if row == 1 && errX != nil && errY != nil {
			continue
		}
		if errX != nil {
			x = math.NaN()
		}
		if errY != nil {
			y = math.NaN()
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	return xs, ys, nil
}
