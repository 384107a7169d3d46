package iban

import (
	"lukechampine.com/uint128"
)

// Span is a half-open byte range [Start, End) into a normalized IBAN.
// An End of zero or below counts back from the end of the string, so
// Span{8, 0} runs to the end and Span{7, -2} drops a two-character suffix.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Bounds resolves the span against a string of the given length.
func (s Span) Bounds(length int) (start, end int) {
	end = s.End
	if end <= 0 {
		end = length + end
	}
	return s.Start, end
}

// Slice returns the part of raw covered by the span. raw must already have
// the length of the country the span belongs to.
func (s Span) Slice(raw string) string {
	start, end := s.Bounds(len(raw))
	return raw[start:end]
}

// parseUint128 parses a base-10 string of digits. The registry never declares
// an account span longer than 28 digits, well inside 128 bits.
func parseUint128(digits string) (uint128.Uint128, error) {
	if digits == "" {
		return uint128.Zero, ErrAccountNotNumeric
	}
	var v uint128.Uint128
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return uint128.Zero, ErrAccountNotNumeric
		}
		v = v.Mul64(10).Add64(uint64(digits[i] - '0'))
	}
	return v, nil
}
