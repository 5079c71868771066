package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newParamsCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List parameter ids, ranges and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := g.newEngine()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "ID\tMin\tMax\tDefault\tUnit\tSmoothing\n")
			fmt.Fprintf(tw, "--\t---\t---\t-------\t----\t---------\n")
			for _, d := range e.Port().Params() {
				unit := d.Unit
				if unit == "" {
					unit = "-"
				}
				fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%s\t%s\n",
					d.ID, d.Range.Min, d.Range.Max, d.Range.Default, unit, d.Mode)
			}
			return tw.Flush()
		},
	}
}
