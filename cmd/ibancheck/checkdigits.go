package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"iban-gateway/pkg/iban"
	strutil "iban-gateway/pkg/string"
)

func newCheckDigitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkdigits <country> <bban>",
		Short: "Computes the check digits for a BBAN and prints the full IBAN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strutil.ToUpperASCII(args[0])
			bban := iban.Normalize(args[1])

			digits, err := iban.CheckDigits(code, bban)
			if err != nil {
				return err
			}
			id, err := iban.Validate(code + digits + bban)
			if err != nil {
				return fmt.Errorf("bban does not fit the %s format: %w", code, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.Formatted())
			return nil
		},
	}
}
