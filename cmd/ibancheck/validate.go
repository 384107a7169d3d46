package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"iban-gateway/internal/iban/models"
	"iban-gateway/pkg/iban"
)

type validateResult struct {
	Input       string `json:"input"`
	Valid       bool   `json:"valid"`
	IBAN        string `json:"iban,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	BankCode    string `json:"bank_code,omitempty"`
	Account     string `json:"account,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func newValidateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate [IBAN...]",
		Short: "Validates IBANs given as arguments, or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			results := make([]validateResult, 0, len(inputs))
			allValid := true
			for _, input := range inputs {
				id, err := iban.Validate(input)
				r := toValidateResult(models.NewResult(input, id, err))
				allValid = allValid && r.Valid
				results = append(results, r)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					printResult(out, r)
				}
			}

			if !allValid {
				return errInvalidInput
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

func toValidateResult(r models.Result) validateResult {
	if !r.Valid {
		return validateResult{Input: r.Input, Reason: r.Reason.String()}
	}
	return validateResult{
		Input:       r.Input,
		Valid:       true,
		IBAN:        r.IBAN.Formatted(),
		CountryCode: r.IBAN.CountryCode(),
		BankCode:    r.IBAN.BankCode(),
		Account:     r.IBAN.AccountDigits(),
	}
}

func printResult(w io.Writer, r validateResult) {
	if r.Valid {
		fmt.Fprintf(w, "%s\t%s\tcountry=%s bank=%s account=%s\n", r.IBAN, green("valid"), r.CountryCode, r.BankCode, r.Account)
		return
	}
	reason, _ := reasonByName(r.Reason)
	fmt.Fprintf(w, "%s\t%s\t%s: %s\n", r.Input, red("invalid"), r.Reason, reason.Message())
}

func reasonByName(name string) (iban.Reason, bool) {
	for _, reason := range iban.Reasons() {
		if reason.String() == name {
			return reason, true
		}
	}
	return 0, false
}

// readLines returns the non-blank lines of r with surrounding space trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}
