package main

import (
	"log/slog"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynprog/internal/config"
)

// app carries state resolved once in the root PersistentPreRunE.
type app struct {
	envFiles []string
	cfg      config.Config
}

// newRootCmd builds the command tree. A fresh tree per call keeps tests
// independent of each other.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dynprog",
		Short: "Dynamic-programming solvers: 0/1 knapsack, LCS and LPS.",
		Long: `dynprog solves three classic dynamic-programming problems: ` +
			`0/1 knapsack maximum value, longest common subsequence length ` +
			`and longest palindromic subsequence length. Each subcommand ` +
			`prints its result; "serve" exposes the same solvers over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.envFiles...)
			if err != nil {
				return err
			}
			a.cfg = cfg
			cmd.SetContext(ctxlog.NewJSONLogger(cmd.Context(), cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: cfg.LogLevel}))

			return nil
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil,
		"env files to load before reading DYNPROG_* variables (default .env)")

	root.AddCommand(
		newKnapsackCmd(),
		newLCSCmd(),
		newLPSCmd(),
		newServeCmd(a),
	)

	return root
}
