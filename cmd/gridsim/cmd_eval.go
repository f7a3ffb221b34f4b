package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// parseAssignment parses a source assignment of the form ID=BOOL.
func parseAssignment(s string) (id int, v bool, err error) {
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return 0, false, errors.Errorf("invalid assignment %q: expected ID=BOOL", s)
	}
	if id, err = strconv.Atoi(strings.TrimSpace(s[:i])); err != nil {
		return 0, false, errors.Wrapf(err, "invalid source id in %q", s)
	}
	if v, err = strconv.ParseBool(strings.TrimSpace(s[i+1:])); err != nil {
		return 0, false, errors.Wrapf(err, "invalid value in %q", s)
	}
	return id, v, nil
}

func newEvalCmd(a *app) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Set source values and print sink values",
		Example: `  gridsim eval nand.txt --set 1=true --set 2=true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			for _, s := range sets {
				id, v, err := parseAssignment(s)
				if err != nil {
					return err
				}
				if g.SetSource(id, v) == 0 {
					return errors.Errorf("no source with id %d", id)
				}
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range g.Sources() {
				fmt.Fprintf(tw, "%s\t%v\n", e.Label(), e.Value)
			}
			for _, e := range g.Sinks() {
				fmt.Fprintf(tw, "%s\t%v\n", e.Label(), e.Received)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set a source value (ID=BOOL), may be repeated")
	return cmd
}
