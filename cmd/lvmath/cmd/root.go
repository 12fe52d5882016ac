// SPDX-License-Identifier: MIT

// Package cmd holds the lvmath command tree.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmath"
	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/logger"
)

// globals are the persistent flags shared by every subcommand.
type globals struct {
	cfgFile   string
	matrix    string
	number    string
	precision int
	verbose   int
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "lvmath",
		Short: "Typed numeric functions from the command line",
		Long: `lvmath evaluates catalog functions (linspace, range, mean, var, subset, ...)
over numbers, BigNumbers, Fractions, complex values and matrices.

Arguments are parsed as literals: 1.5, 1/3, 2+3i, true, "1:10", or JSON
([[1,2],[3,4]], {"mathjs":"BigNumber","value":"0.1"}).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.cfgFile, "config", "", "configuration file (.yaml, .yml or .toml)")
	pf.StringVar(&g.matrix, "matrix", "", "collection output: Matrix or Array")
	pf.StringVar(&g.number, "number", "", "number kind for parsed literals: number, BigNumber or Fraction")
	pf.IntVar(&g.precision, "precision", 0, "significant digits of BigNumber values")
	pf.CountVarP(&g.verbose, "verbose", "v", "log to stderr (-v info, -vv debug)")

	root.AddCommand(
		newCallCmd(g),
		newListCmd(g),
		newServeCmd(g),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}

	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "lvmath: %v\n", err)
}

// loadConfig applies defaults, then the config file, then explicit flags.
func (g *globals) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if g.cfgFile != "" {
		c, err := config.Load(g.cfgFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = c
	}
	flags := cmd.Flags()
	if flags.Changed("matrix") {
		cfg.Matrix = config.MatrixOutput(g.matrix)
	}
	if flags.Changed("number") {
		cfg.Number = config.NumberKind(g.number)
	}
	if flags.Changed("precision") {
		cfg.Precision = g.precision
	}

	return cfg, cfg.Validate()
}

func (g *globals) logger(cmd *cobra.Command) *slog.Logger {
	return logger.New(logger.Verbose(g.verbose), cmd.ErrOrStderr())
}

// newMath builds the library for the effective configuration.
func (g *globals) newMath(cmd *cobra.Command) (*lvmath.Math, error) {
	cfg, err := g.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return lvmath.New(lvmath.WithConfig(cfg), lvmath.WithLogger(g.logger(cmd)))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
