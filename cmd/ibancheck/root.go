package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errInvalidInput makes the process exit non-zero once every input was reported.
var errInvalidInput = errors.New("one or more inputs are not valid IBANs")

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func newRootCmd() *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:           "ibancheck",
		Short:         "Validate International Bank Account Numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newValidateCmd(),
		newCountriesCmd(),
		newCheckDigitsCmd(),
	)
	return rootCmd
}
