package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/db47h/gridsim"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE",
		Short: "List the entities of a circuit with their current signals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tX\tY\tLABEL\tSIGNAL")
			for _, e := range g.Entities() {
				label := "-"
				if e.Kind == gridsim.Source || e.Kind == gridsim.Sink {
					label = e.Label()
				}
				signal := fmt.Sprint(e.Signal())
				if e.Kind.IsGate() {
					signal = fmt.Sprintf("%v/%v", e.OutTop, e.OutBottom)
				}
				fmt.Fprintf(tw, "%v\t%d\t%d\t%s\t%s\n", e.Kind, e.X, e.Y, label, signal)
			}
			return tw.Flush()
		},
	}
}
