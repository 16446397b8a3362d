// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/internal/cli"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the command tree and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := cli.Execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func decode(t *testing.T, out string, v any) {
	t.Helper()
	require.NoError(t, yaml.Unmarshal([]byte(out), v), out)
}

type fitResult struct {
	Kind         string             `yaml:"kind"`
	Coefficients []float64          `yaml:"coefficients"`
	Metrics      map[string]float64 `yaml:"metrics"`
	Equation     map[string]string  `yaml:"equation"`
}

func TestFit(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "line.csv", "x,y\n0,1\n1,3\n")

	out, _, err := run(t, "fit", "--data", data)
	require.NoError(t, err)
	var res fitResult
	decode(t, out, &res)
	assert.Equal(t, "linear", res.Kind)
	assert.Equal(t, []float64{2, 1}, res.Coefficients)
	assert.Equal(t, "y = 1 + 2 * x", res.Equation["withCoefficients"])
	assert.Len(t, res.Metrics, 6)
}

func TestFit_ConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	var b strings.Builder
	b.WriteString("points:\n")
	for x := 0; x < 10; x++ {
		fmt.Fprintf(&b, "  - {x: %d, y: %d}\n", x, x*x+2)
	}
	data := writeFile(t, dir, "parabola.yaml", b.String())
	cfg := writeFile(t, dir, "lvnum.toml", "[regression]\nkind = \"quadratic\"\nsolver = \"qr\"\n")

	out, _, err := run(t, "--config", cfg, "fit", "--data", data)
	require.NoError(t, err)
	var res fitResult
	decode(t, out, &res)
	assert.Equal(t, "quadratic", res.Kind)
	require.Len(t, res.Coefficients, 3)
	assert.InDelta(t, 1, res.Coefficients[0], 1e-9)
	assert.InDelta(t, 2, res.Coefficients[2], 1e-9)

	out, _, err = run(t, "--config", cfg, "fit", "--data", data, "--kind", "polynomial", "--order", "3")
	require.NoError(t, err)
	decode(t, out, &res)
	assert.Equal(t, "polynomial", res.Kind)
	assert.Len(t, res.Coefficients, 4)
}

func TestFit_PlotAndLogs(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "s.yaml", "x: [1, 2, 3, 4]\ny: [2, 4, 5, 4]\n")
	chart := filepath.Join(dir, "fit.svg")

	_, stderr, err := run(t, "--log-format", "json", "fit", "--data", data, "--plot", chart)
	require.NoError(t, err)
	assert.FileExists(t, chart)
	assert.Contains(t, stderr, `"msg":"fit complete"`)
}

func TestFit_Errors(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := run(t, "fit")
	require.Error(t, err)
	assert.Contains(t, stderr, "data")

	single := writeFile(t, dir, "one.csv", "0,1\n")
	_, _, err = run(t, "fit", "--data", single)
	require.Error(t, err)

	_, _, err = run(t, "fit", "--data", single, "--solver", "svd")
	require.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "log:\n  level: loud\n")
	_, _, err = run(t, "--config", bad, "fit", "--data", single)
	require.Error(t, err)
}

func TestStretches(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "profile.yaml", "path: [-1, 1]\nvalues: [-1, 1]\n")
	chart := filepath.Join(dir, "stretches.png")

	out, _, err := run(t, "stretches", "--data", data, "--plot", chart)
	require.NoError(t, err)
	assert.FileExists(t, chart)

	var res struct {
		Force     float64 `yaml:"force"`
		Stretches []struct {
			Start, End, Resultant, Centroid float64
		} `yaml:"stretches"`
	}
	decode(t, out, &res)
	assert.Zero(t, res.Force)
	require.Len(t, res.Stretches, 2)
	assert.InDelta(t, -0.5, res.Stretches[0].Resultant, 1e-14)
	assert.InDelta(t, 2.0/3, res.Stretches[1].Centroid, 1e-14)

	short := writeFile(t, dir, "short.yaml", "path: [0]\nvalues: [1]\n")
	_, _, err = run(t, "stretches", "--data", short)
	require.Error(t, err)
}

func TestQuad(t *testing.T) {
	var res struct {
		Value     float64 `yaml:"value"`
		Order     int     `yaml:"order"`
		Intervals int     `yaml:"intervals"`
	}

	// 1 - 2x + 4x³ on [0, 3]
	out, _, err := run(t, "quad", "--poly", "1,-2,0,4", "--from", "0", "--to", "3", "--order", "2")
	require.NoError(t, err)
	decode(t, out, &res)
	assert.InDelta(t, 75, res.Value, 1e-10)
	assert.Equal(t, 2, res.Order)

	// piecewise-linear profile: trapezoid areas 1.5 + 2.5
	dir := t.TempDir()
	data := writeFile(t, dir, "profile.csv", "path,value\n0,1\n1,2\n2,3\n")
	out, _, err = run(t, "quad", "--data", data)
	require.NoError(t, err)
	decode(t, out, &res)
	assert.InDelta(t, 4, res.Value, 1e-12)
	assert.Equal(t, 2, res.Intervals)
	assert.Equal(t, 10, res.Order, "order comes from the configuration")

	_, _, err = run(t, "quad")
	require.Error(t, err)
	_, _, err = run(t, "quad", "--poly", "1", "--data", data)
	require.Error(t, err)
	_, _, err = run(t, "quad", "--poly", "1,x")
	require.Error(t, err)
	_, _, err = run(t, "quad", "--poly", "1", "--order", "0")
	require.Error(t, err)
}

func TestMonteCarlo(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "shapes.yaml", "shapes:\n  - {type: circle, center: [0, 0], radius: 1}\n")

	out, stderr, err := run(t, "--log-level", "debug", "montecarlo", "--data", data, "--points", "2000", "--iterations", "5", "--seed", "3")
	require.NoError(t, err)
	var res struct {
		Estimate   float64 `yaml:"estimate"`
		Dimension  int     `yaml:"dimension"`
		Points     int     `yaml:"points"`
		Iterations int     `yaml:"iterations"`
		Seed       int64   `yaml:"seed"`
	}
	decode(t, out, &res)
	assert.InDelta(t, math.Pi, res.Estimate, 0.1)
	assert.Equal(t, 2, res.Dimension)
	assert.Equal(t, 2000, res.Points)
	assert.Equal(t, 5, res.Iterations)
	assert.Equal(t, int64(3), res.Seed)
	assert.Equal(t, 5, strings.Count(stderr, "monte carlo iteration"))

	again, _, err := run(t, "montecarlo", "--data", data, "--points", "2000", "--iterations", "5", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same output")

	_, _, err = run(t, "montecarlo", "--data", data, "--points", "0")
	require.Error(t, err)

	mixed := writeFile(t, dir, "mixed.yaml", "shapes:\n  - {type: circle, center: [0, 0], radius: 1}\n  - {type: sphere, center: [0, 0, 0], radius: 1}\n")
	_, _, err = run(t, "montecarlo", "--data", mixed)
	require.Error(t, err)
}

func TestRoot(t *testing.T) {
	var res struct {
		Root      float64 `yaml:"root"`
		Value     float64 `yaml:"value"`
		Bracketed bool    `yaml:"bracketed"`
	}

	// x² - x - 2 on [0, 10]
	out, _, err := run(t, "root", "--poly=-2,-1,1", "--lower", "0", "--upper", "10")
	require.NoError(t, err)
	decode(t, out, &res)
	assert.InDelta(t, 2, res.Root, 1e-7)
	assert.True(t, res.Bracketed)

	// x + 12 on [-10, 10]: no sign change
	out, stderr, err := run(t, "root", "--poly", "12,1", "--lower=-10", "--upper", "10")
	require.NoError(t, err)
	decode(t, out, &res)
	assert.InDelta(t, -10, res.Root, 1e-7)
	assert.False(t, res.Bracketed)
	assert.Contains(t, stderr, "no sign change")

	_, _, err = run(t, "root", "--poly", "1,0,1", "--lower=-10", "--upper", "10", "--tol", "0", "--max-iterations", "2")
	require.Error(t, err)
}
