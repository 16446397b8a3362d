// SPDX-License-Identifier: MIT

// Package config loads the lvnum CLI configuration from YAML or TOML.
//
// Load starts from Default and overlays the file, so a file only needs the
// keys it changes. Command-line flags override the loaded values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/integrate"
	"github.com/katalvlaran/lvnum/regression"
	"github.com/katalvlaran/lvnum/rootfind"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat indicates a file extension other than .yaml,
	// .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Config is the complete CLI configuration.
type Config struct {
	Log        LogConfig        `yaml:"log" toml:"log"`
	Regression RegressionConfig `yaml:"regression" toml:"regression"`
	Quadrature QuadratureConfig `yaml:"quadrature" toml:"quadrature"`
	MonteCarlo MonteCarloConfig `yaml:"montecarlo" toml:"montecarlo"`
	RootFind   RootFindConfig   `yaml:"rootfind" toml:"rootfind"`
	Plot       PlotConfig       `yaml:"plot" toml:"plot"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // text, json
}

// RegressionConfig holds fit defaults.
type RegressionConfig struct {
	Kind   string `yaml:"kind" toml:"kind"`
	Order  int    `yaml:"order" toml:"order"`
	Solver string `yaml:"solver" toml:"solver"`
}

// QuadratureConfig holds Gauss-Legendre defaults.
type QuadratureConfig struct {
	Order            int     `yaml:"order" toml:"order"`
	NewtonIterations int     `yaml:"newton_iterations" toml:"newton_iterations"`
	NewtonTolerance  float64 `yaml:"newton_tolerance" toml:"newton_tolerance"`
}

// MonteCarloConfig holds sampling defaults.
type MonteCarloConfig struct {
	Points     int   `yaml:"points" toml:"points"`
	Iterations int   `yaml:"iterations" toml:"iterations"`
	Seed       int64 `yaml:"seed" toml:"seed"`
}

// RootFindConfig holds Brent defaults.
type RootFindConfig struct {
	Tolerance     float64 `yaml:"tolerance" toml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations" toml:"max_iterations"`
}

// PlotConfig sizes rendered charts, in centimetres.
type PlotConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Default mirrors the library defaults.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Regression: RegressionConfig{
			Kind:   string(regression.DefaultKind),
			Order:  regression.DefaultPolynomialOrder,
			Solver: regression.SolverNormalEquations.String(),
		},
		Quadrature: QuadratureConfig{
			Order:            10,
			NewtonIterations: integrate.DefaultNewtonIterations,
			NewtonTolerance:  integrate.DefaultNewtonTolerance,
		},
		MonteCarlo: MonteCarloConfig{
			Points:     integrate.DefaultPoints,
			Iterations: integrate.DefaultIterations,
		},
		RootFind: RootFindConfig{
			Tolerance:     1e-7,
			MaxIterations: rootfind.DefaultMaxIterations,
		},
		Plot: PlotConfig{Width: 16, Height: 10},
	}
}

// Load reads path over Default and validates the result. The format is
// chosen by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if _, err = toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against what the libraries accept.
func (c *Config) Validate() error {
	var problems []string
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q", c.Log.Level))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		problems = append(problems, fmt.Sprintf("log.format %q", c.Log.Format))
	}
	if !regression.Kind(c.Regression.Kind).Valid() {
		problems = append(problems, fmt.Sprintf("regression.kind %q", c.Regression.Kind))
	}
	if c.Regression.Order < 0 {
		problems = append(problems, "regression.order must be >= 0")
	}
	if _, err := regression.ParseSolver(c.Regression.Solver); err != nil {
		problems = append(problems, fmt.Sprintf("regression.solver %q", c.Regression.Solver))
	}
	if c.Quadrature.Order < 1 || c.Quadrature.Order > integrate.MaxOrder {
		problems = append(problems, fmt.Sprintf("quadrature.order must be in [1, %d]", integrate.MaxOrder))
	}
	if c.Quadrature.NewtonIterations < 1 {
		problems = append(problems, "quadrature.newton_iterations must be >= 1")
	}
	if c.Quadrature.NewtonTolerance < 0 {
		problems = append(problems, "quadrature.newton_tolerance must be >= 0")
	}
	if c.MonteCarlo.Points < 1 || c.MonteCarlo.Iterations < 1 {
		problems = append(problems, "montecarlo.points and montecarlo.iterations must be >= 1")
	}
	if c.RootFind.Tolerance < 0 {
		problems = append(problems, "rootfind.tolerance must be >= 0")
	}
	if c.RootFind.MaxIterations < 1 {
		problems = append(problems, "rootfind.max_iterations must be >= 1")
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		problems = append(problems, "plot.width and plot.height must be > 0")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}
