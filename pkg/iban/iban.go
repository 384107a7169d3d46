// Package iban validates International Bank Account Numbers.
//
// Validate checks an input against the country registry, the country's
// character layout, any national checksum the country defines and finally the
// ISO 7064 MOD 97-10 checksum shared by every IBAN. A successful validation
// yields an IBAN value whose fields (bank code, account number) are sliced out
// on demand.
//
// Everything in this package is a pure function of its input; the registry is
// read-only after package initialisation and all calls are safe to run
// concurrently.
//
// Usage:
//
//	id, err := iban.Validate("DE89 3704 0044 0532 0130 00")
//	if errors.Is(err, iban.ErrInvalidIBAN) {
//	    // checksum mismatch
//	}
//	id.BankCode() // "37040044"
package iban

import (
	"strings"
	"unicode"

	"lukechampine.com/uint128"
)

// MaxLength is the longest IBAN the standard allows.
const MaxLength = 34

// IBAN is a validated International Bank Account Number. The zero value is
// not a valid IBAN; obtain one through Validate.
type IBAN struct {
	code CountryCode
	raw  string
}

// Validate checks whether input is a valid IBAN. Whitespace anywhere in the
// input is ignored. On failure the returned error is a *ValidationError whose
// reason names the first rule that failed, in this order: TooLong,
// InvalidChar, InvalidCountryCode, InvalidLength, InvalidFormat,
// CountryCheckFailed, InvalidIBAN.
func Validate(input string) (IBAN, error) {
	raw := Normalize(input)

	if len(raw) > MaxLength {
		return IBAN{}, ErrTooLong
	}
	for i := 0; i < len(raw); i++ {
		if !isASCIIAlnum(raw[i]) {
			return IBAN{}, ErrInvalidChar
		}
	}
	if len(raw) < 2 {
		return IBAN{}, ErrInvalidCountryCode
	}
	country, ok := countriesByCode[CountryCode(raw[:2])]
	if !ok {
		return IBAN{}, ErrInvalidCountryCode
	}
	if len(raw) != country.Length {
		return IBAN{}, ErrInvalidLength
	}
	if !country.Layout.Matches(raw) {
		return IBAN{}, ErrInvalidFormat
	}
	if !country.Check.Verify(raw) {
		return IBAN{}, ErrCountryCheckFailed
	}
	if !checksumOK(raw) {
		return IBAN{}, ErrInvalidIBAN
	}
	return IBAN{code: country.Code, raw: raw}, nil
}

// MustValidate is like Validate but panics on invalid input. It is meant for
// package-level fixtures and tests.
func MustValidate(input string) IBAN {
	id, err := Validate(input)
	if err != nil {
		panic(err)
	}
	return id
}

// IsValid reports whether input is a valid IBAN.
func IsValid(input string) bool {
	_, err := Validate(input)
	return err == nil
}

// Normalize removes all whitespace from input. Case is preserved.
func Normalize(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
}

// String returns the normalized IBAN without spaces.
func (i IBAN) String() string {
	return i.raw
}

// IsZero reports whether i was not produced by Validate.
func (i IBAN) IsZero() bool {
	return i.raw == ""
}

// CountryCode returns the two-letter country code, for example "GB".
func (i IBAN) CountryCode() string {
	return string(i.code)
}

// Country returns the format descriptor of the IBAN's country.
func (i IBAN) Country() Country {
	country, _ := LookupCountry(string(i.code))
	return country
}

// CheckDigits returns the two check digits following the country code.
func (i IBAN) CheckDigits() string {
	if len(i.raw) < 4 {
		return ""
	}
	return i.raw[2:4]
}

// BBAN returns the country-specific part after the check digits.
func (i IBAN) BBAN() string {
	if len(i.raw) < 4 {
		return ""
	}
	return i.raw[4:]
}

// BankCode returns the national bank identifier.
func (i IBAN) BankCode() string {
	country, ok := countriesByCode[i.code]
	if !ok {
		return ""
	}
	return country.BankCode.Slice(i.raw)
}

// AccountDigits returns the account number field as written in the IBAN.
func (i IBAN) AccountDigits() string {
	country, ok := countriesByCode[i.code]
	if !ok {
		return ""
	}
	return country.Account.Slice(i.raw)
}

// AccountNumber returns the account number field as an integer. It fails with
// ErrAccountNotNumeric when the field holds letters, which some countries
// allow.
func (i IBAN) AccountNumber() (uint128.Uint128, error) {
	return parseUint128(i.AccountDigits())
}

// Formatted returns the IBAN in print format: upper case in groups of four.
func (i IBAN) Formatted() string {
	upper := strings.ToUpper(i.raw)
	var b strings.Builder
	b.Grow(len(upper) + len(upper)/4)
	for pos := 0; pos < len(upper); pos += 4 {
		if pos > 0 {
			b.WriteByte(' ')
		}
		end := min(pos+4, len(upper))
		b.WriteString(upper[pos:end])
	}
	return b.String()
}
