package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"iban-gateway/pkg/iban"
)

func newCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "Lists every country that issues IBANs with its format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tLENGTH\tFORMAT\tNATIONAL CHECK")
			for _, c := range iban.Countries() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", c.Code, c.Name, c.Length, c.Layout, c.Check)
			}
			return tw.Flush()
		},
	}
}
