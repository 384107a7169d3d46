package models

import (
	"iban-gateway/pkg/iban"
)

// UnknownCountry labels results whose input did not start with a supported code.
const UnknownCountry = "unknown"

// Result is the outcome of validating one input.
type Result struct {
	// Input is the caller's text exactly as received.
	Input  string
	IBAN   iban.IBAN
	Valid  bool
	Reason iban.Reason
}

// NewResult builds a Result from the return values of iban.Validate.
// Errors that carry no reason are reported as InvalidIBAN.
func NewResult(input string, id iban.IBAN, err error) Result {
	if err == nil {
		return Result{Input: input, IBAN: id, Valid: true}
	}
	reason, ok := iban.ReasonOf(err)
	if !ok {
		reason = iban.InvalidIBAN
	}
	return Result{Input: input, Reason: reason}
}

// CountryLabel returns a bounded-cardinality country label for metrics: the
// detected country code, or UnknownCountry.
func (r Result) CountryLabel() string {
	if r.Valid {
		return r.IBAN.CountryCode()
	}
	raw := iban.Normalize(r.Input)
	if len(raw) < 2 {
		return UnknownCountry
	}
	if _, ok := iban.LookupCountry(raw[:2]); !ok {
		return UnknownCountry
	}
	return raw[:2]
}

// ResultLabel is "valid" or "invalid".
func (r Result) ResultLabel() string {
	if r.Valid {
		return "valid"
	}
	return "invalid"
}

// BatchSummary counts the outcomes of a batch.
type BatchSummary struct {
	Valid   int
	Invalid int
}

// Summarize counts valid and invalid results.
func Summarize(results []Result) BatchSummary {
	var s BatchSummary
	for _, r := range results {
		if r.Valid {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}
