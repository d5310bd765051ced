package main

import (
	"fmt"
	"strconv"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/dynprog/internal/api"
	"github.com/katalvlaran/dynprog/knapsack"
)

func newKnapsackCmd() *cobra.Command {
	var (
		capacity int
		rawItems string
		selectIt bool
	)

	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Maximum total value of items fitting in the given capacity.",
		Example: `  dynprog knapsack --capacity 15 --items '[[10,7],[9,8],[5,6]]'
  dynprog knapsack --capacity 15 --items '[{"weight":10,"value":7}]' --select`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !gjson.Valid(rawItems) {
				return fmt.Errorf("--items is not valid JSON: %w", api.ErrMalformed)
			}
			items, err := api.DecodeItems(gjson.Parse(rawItems))
			if err != nil {
				return err
			}
			ctxlog.Logger(cmd.Context()).Debug("knapsack", "capacity", capacity, "items", len(items))

			out := cmd.OutOrStdout()
			if !selectIt {
				best, err := knapsack.MaxValue(capacity, items)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, formatValue(best))
				return err
			}

			sel, err := knapsack.Select(capacity, items)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "value=%s weight=%d indices=%v\n", formatValue(sel.Value), sel.Weight, sel.Indices)
			return err
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 0, "knapsack capacity (non-negative)")
	cmd.Flags().StringVar(&rawItems, "items", "[]", `items as JSON: [[weight,value],...] or [{"weight":w,"value":v},...]`)
	cmd.Flags().BoolVar(&selectIt, "select", false, "also print the chosen item indices")

	return cmd
}

// formatValue prints integral values without a fractional part.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
