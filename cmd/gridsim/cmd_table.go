package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/db47h/gridsim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "table FILE",
		Short: "Print the truth table of a circuit",
		Long: `Print the truth table of a circuit.

Sources are enumerated as a binary counter, the first source being the most
significant bit. Tables larger than --max-rows rows are truncated and a
warning is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			tbl, err := g.TruthTable()
			if err != nil && errors.Cause(err) != gridsim.ErrTruncated {
				return err
			}
			switch format {
			case "text":
				err = writeText(cmd.OutOrStdout(), tbl)
			case "csv":
				err = writeCSV(cmd.OutOrStdout(), tbl)
			default:
				return errors.Errorf("invalid format %q", format)
			}
			if err != nil {
				return err
			}
			if tbl.Truncated {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: table truncated to %d of %d rows\n", len(tbl.Rows), tbl.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or csv")
	return cmd
}

func boolStrings(row []bool) []string {
	s := make([]string, len(row))
	for i, v := range row {
		s[i] = strconv.FormatBool(v)
	}
	return s
}

func writeText(w io.Writer, tbl *gridsim.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tbl.Header, "\t"))
	for _, row := range tbl.Rows {
		fmt.Fprintln(tw, strings.Join(boolStrings(row), "\t"))
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, tbl *gridsim.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tbl.Header); err != nil {
		return err
	}
	for _, row := range tbl.Rows {
		if err := cw.Write(boolStrings(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
