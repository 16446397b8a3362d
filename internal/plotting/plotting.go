// SPDX-License-Identifier: MIT

// Package plotting renders fitted models and stretch decompositions with
// gonum/plot. The output format follows the file extension (.png, .svg,
// .pdf, ...).
package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvnum/integrate"
	"github.com/katalvlaran/lvnum/regression"
)

// ErrNoData indicates an empty sample set.
var ErrNoData = errors.New("plotting: nothing to plot")

// Size is the canvas size in centimetres.
type Size struct {
	Width, Height float64
}

// DefaultSize is a 16×10 cm canvas.
var DefaultSize = Size{Width: 16, Height: 10}

// functionSamples is the resolution of a plotted model curve.
const functionSamples = 200

// positive and negative fill the stretch bars.
var (
	positive = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x80}
	negative = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0x80}
)

// FitPlot draws the samples as a scatter and the model as a curve over their
// x range, then saves the chart to out.
func FitPlot(m *regression.Model, data []regression.Point, size Size, out string) error {
	if len(data) == 0 {
		return ErrNoData
	}
	xys := make(plotter.XYs, len(data))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, p := range data {
		xys[i].X, xys[i].Y = p.X, p.Y
		lo, hi = math.Min(lo, p.X), math.Max(hi, p.X)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s fit", m.Kind)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	curve := plotter.NewFunction(m.Predict)
	curve.XMin, curve.XMax = lo, hi
	curve.Samples = functionSamples
	curve.Color = positive

	p.Add(scatter, curve)
	p.Legend.Add("samples", scatter)
	p.Legend.Add(m.Equation.WithCoefficients, curve)

	return save(p, size, out)
}

// StretchPlot draws the sampled profile as a polyline and each stretch as a
// bar of height Resultant/(End-Start) spanning [Start, End], so the bar area
// equals the stretch resultant.
func StretchPlot(path, values []float64, stretches []integrate.Stretch, size Size, out string) error {
	if len(path) == 0 || len(path) != len(values) {
		return ErrNoData
	}
	xys := make(plotter.XYs, len(path))
	for i := range path {
		xys[i].X, xys[i].Y = path[i], values[i]
	}

	p := plot.New()
	p.Title.Text = "resultant stretches"
	p.X.Label.Text = "path"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())

	for _, s := range stretches {
		width := s.End - s.Start
		if width <= 0 {
			continue
		}
		h := s.Resultant / width
		bar, err := plotter.NewPolygon(plotter.XYs{
			{X: s.Start, Y: 0}, {X: s.End, Y: 0}, {X: s.End, Y: h}, {X: s.Start, Y: h},
		})
		if err != nil {
			return fmt.Errorf("plotting: %w", err)
		}
		bar.Color = positive
		if s.Resultant < 0 {
			bar.Color = negative
		}
		bar.LineStyle.Width = 0
		p.Add(bar)
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	p.Add(line)
	p.Legend.Add("profile", line)

	return save(p, size, out)
}

func save(p *plot.Plot, size Size, out string) error {
	if err := p.Save(vg.Length(size.Width)*vg.Centimeter, vg.Length(size.Height)*vg.Centimeter, out); err != nil {
		return fmt.Errorf("plotting: save %s: %w", out, err)
	}

	return nil
}
