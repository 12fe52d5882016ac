// SPDX-License-Identifier: MIT

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmath"
	"github.com/katalvlaran/lvmath/logger"
	"github.com/katalvlaran/lvmath/server"
)

func newServeCmd(g *globals) *cobra.Command {
	var addr string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the function catalog over HTTP",
		Long: `Serve the function catalog over HTTP until interrupted.

  GET  /healthz
  GET  /config
  GET  /functions
  POST /functions/{name}   {"args":[...],"transform":false}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			// A server logs at least at info level.
			log, h := logger.NewAsync(logger.Verbose(max(g.verbose, 1)), cmd.ErrOrStderr(), 0)
			defer h.Close()

			m, err := lvmath.New(lvmath.WithConfig(cfg), lvmath.WithLogger(log))
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(m, server.WithAddr(addr), server.WithLogger(log)).Run(ctx)
		},
	}
	c.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")

	return c
}
