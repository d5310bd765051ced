package main

import (
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynprog/lcs"
	"github.com/katalvlaran/dynprog/lps"
)

func newLCSCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:     "lcs A B",
		Short:   "Length of the longest common subsequence of two strings.",
		Example: `  dynprog lcs WHOWEEKLY HOWONLY --show`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := lcs.DefaultOptions()
			opts.ReturnSubsequence = show
			res, err := lcs.Compute([]rune(args[0]), []rune(args[1]), &opts)
			if err != nil {
				return err
			}
			ctxlog.Logger(cmd.Context()).Debug("lcs", "a", len(args[0]), "b", len(args[1]), "length", res.Length)

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, res.Length); err != nil {
				return err
			}
			if show {
				_, err = fmt.Fprintln(out, string(res.Subsequence))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "also print one longest common subsequence")

	return cmd
}

func newLPSCmd() *cobra.Command {
	var show, table bool

	cmd := &cobra.Command{
		Use:     "lps S",
		Short:   "Length of the longest palindromic subsequence of a string.",
		Example: `  dynprog lps BANANO --table`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := []rune(args[0])
			n := lps.LengthOf(s)
			ctxlog.Logger(cmd.Context()).Debug("lps", "s", len(s), "length", n)

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, n); err != nil {
				return err
			}
			if show {
				if _, err := fmt.Fprintln(out, string(lps.Subsequence(s))); err != nil {
					return err
				}
			}
			if table {
				for _, row := range lps.Table(s) {
					if _, err := fmt.Fprintln(out, row); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "also print one longest palindromic subsequence")
	cmd.Flags().BoolVar(&table, "table", false, "also print the subproblem matrix")

	return cmd
}
