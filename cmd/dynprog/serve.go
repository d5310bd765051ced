package main

import (
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynprog/internal/api"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solvers over HTTP until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if addr != "" {
				cfg.ListenAddr = addr
			}
			logger := ctxlog.Logger(cmd.Context())
			logger.Info("dynprog: starting",
				"listen_addr", cfg.ListenAddr,
				"max_capacity", cfg.MaxCapacity,
				"max_sequence", cfg.MaxSequence,
				"max_cells", cfg.MaxCells,
			)

			return api.NewServer(cfg, logger).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides DYNPROG_LISTEN_ADDR)")

	return cmd
}
