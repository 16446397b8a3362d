// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "linear", cfg.Regression.Kind)
	assert.Equal(t, 1000, cfg.MonteCarlo.Points)
	assert.Equal(t, 50, cfg.MonteCarlo.Iterations)
	assert.Equal(t, 100, cfg.Quadrature.NewtonIterations)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "lvnum.yaml", `
log:
  level: debug
regression:
  kind: quadratic
  solver: qr
montecarlo:
  seed: 11
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep their defaults")
	assert.Equal(t, "quadratic", cfg.Regression.Kind)
	assert.Equal(t, "qr", cfg.Regression.Solver)
	assert.Equal(t, int64(11), cfg.MonteCarlo.Seed)
	assert.Equal(t, 1000, cfg.MonteCarlo.Points)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "lvnum.toml", `
[log]
format = "json"

[quadrature]
order = 15
newton_tolerance = 1e-14

[rootfind]
tolerance = 1e-9
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 15, cfg.Quadrature.Order)
	assert.Equal(t, 1e-14, cfg.Quadrature.NewtonTolerance)
	assert.Equal(t, 1e-9, cfg.RootFind.Tolerance)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "lvnum.json", `{}`))
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(writeFile(t, "bad.yaml", "log: [unclosed"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "invalid.yaml", "quadrature:\n  order: 0\nlog:\n  level: loud\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "quadrature.order")
	assert.Contains(t, err.Error(), "log.level")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown kind", func(c *config.Config) { c.Regression.Kind = "spline" }},
		{"unknown solver", func(c *config.Config) { c.Regression.Solver = "svd" }},
		{"negative order", func(c *config.Config) { c.Regression.Order = -1 }},
		{"order above max", func(c *config.Config) { c.Quadrature.Order = 1000 }},
		{"no points", func(c *config.Config) { c.MonteCarlo.Points = 0 }},
		{"negative tolerance", func(c *config.Config) { c.RootFind.Tolerance = -1 }},
		{"flat plot", func(c *config.Config) { c.Plot.Height = 0 }},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
