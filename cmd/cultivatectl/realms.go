package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/Cultivation_Go/internal/realm"
)

func newRealmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "realms",
		Short: "List the realm ladder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LEVEL\tNAME\tTHRESHOLD")
			for _, r := range realm.Ladder {
				fmt.Fprintf(tw, "%d\t%s\t%d\n", r.Level, r.Name, r.Threshold)
			}
			return tw.Flush()
		},
	}
}
