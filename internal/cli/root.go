// SPDX-License-Identifier: MIT

// Package cli builds the lvnum command tree.
//
// Every subcommand reads its defaults from the loaded configuration, lets
// explicitly set flags override them, writes its result as YAML to stdout
// and logs to stderr through one slog.Logger.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/internal/config"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand returns a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvnum",
		Short: "Numerical methods toolkit",
		Long: `lvnum fits curves, integrates sampled and analytic functions,
estimates areas and volumes by Monte Carlo and finds roots.

Commands:
  fit         least-squares regression of (x, y) samples
  stretches   constant-sign decomposition of a sampled profile
  quad        Gauss-Legendre quadrature
  montecarlo  area/volume of a union of shapes
  root        Brent root of a polynomial`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (.yaml, .yml or .toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newFitCommand(a),
		newStretchesCommand(a),
		newQuadCommand(a),
		newMonteCarloCommand(a),
		newFindRootCommand(a),
	)

	return root
}

// Execute runs the command tree on args and reports failures on stderr.
func Execute(args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "lvnum: %v\n", err)
		return err
	}

	return nil
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	if a.logFormat != "" {
		cfg.Log.Format = strings.ToLower(a.logFormat)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
	a.logger.Debug("configuration loaded", slog.String("path", a.configPath))

	return nil
}
