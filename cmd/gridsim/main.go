package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/db47h/gridsim"
	"github.com/db47h/gridsim/internal/config"
	"github.com/db47h/gridsim/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string
	maxRows   int

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "gridsim",
		Short: "Grid based logic circuit simulator",
		Long: `gridsim evaluates combinational logic circuits laid out on a grid.

Circuits are read from text grid files: the first line is a header, every
following line describes a column of sources (Q<id>), sinks (L<id>), gates
(W, r, R, B) and empty cells (X).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "Path to a YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	pf.IntVar(&a.maxRows, "max-rows", 0, "Maximum number of truth table rows")

	rootCmd.AddCommand(
		newVersionCmd(),
		newTableCmd(a),
		newEvalCmd(a),
		newListCmd(a),
	)
	return rootCmd
}

// setup loads the configuration, applies command line overrides and builds
// the logger.
func (a *app) setup(cmd *cobra.Command, errOut io.Writer) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if flags.Changed("max-rows") {
		cfg.Engine.MaxRows = a.maxRows
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log, err = logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, errOut)
	return err
}

// loadGrid reads the grid file at path into a new grid.
func (a *app) loadGrid(path string) (*gridsim.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open grid")
	}
	defer f.Close()

	g := gridsim.NewGrid(
		gridsim.WithLogger(a.log),
		gridsim.WithMaxRows(a.cfg.Engine.MaxRows),
	)
	if _, err = g.Load(f); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return g, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridsim version %s\n", version)
		},
	}
}
