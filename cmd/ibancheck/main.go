// Command ibancheck validates IBANs and inspects the country registry from the
// command line.
//
//	ibancheck validate "DE89 3704 0044 0532 0130 00"
//	cat ibans.txt | ibancheck validate --json
//	ibancheck countries
//	ibancheck checkdigits GB WEST12345698765432
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintln(os.Stderr, "ibancheck:", err)
		}
		os.Exit(1)
	}
}
