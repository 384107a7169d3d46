package iban

import "errors"

// Reason identifies the first validation rule an input violated. The
// declaration order is the order Validate applies the rules in.
type Reason uint8

const (
	TooLong Reason = iota + 1
	InvalidChar
	InvalidCountryCode
	InvalidLength
	InvalidFormat
	CountryCheckFailed
	InvalidIBAN
)

// String returns the stable snake_case code used in JSON bodies, metric
// labels and logs.
func (r Reason) String() string {
	switch r {
	case TooLong:
		return "too_long"
	case InvalidChar:
		return "invalid_char"
	case InvalidCountryCode:
		return "invalid_country_code"
	case InvalidLength:
		return "invalid_length"
	case InvalidFormat:
		return "invalid_format"
	case CountryCheckFailed:
		return "country_check_failed"
	case InvalidIBAN:
		return "invalid_iban"
	default:
		return "unknown"
	}
}

// Message is a human-readable description of the reason.
func (r Reason) Message() string {
	switch r {
	case TooLong:
		return "input is longer than 34 characters"
	case InvalidChar:
		return "input contains a character that is not ASCII alphanumeric"
	case InvalidCountryCode:
		return "input does not start with a supported country code"
	case InvalidLength:
		return "input length does not match the detected country"
	case InvalidFormat:
		return "input does not match the format of the detected country"
	case CountryCheckFailed:
		return "national checksum of the detected country failed"
	case InvalidIBAN:
		return "mod 97 checksum is invalid"
	default:
		return "unknown validation failure"
	}
}

// Reasons lists every reason in pipeline order.
func Reasons() []Reason {
	return []Reason{TooLong, InvalidChar, InvalidCountryCode, InvalidLength, InvalidFormat, CountryCheckFailed, InvalidIBAN}
}

// ValidationError reports why an input is not a valid IBAN.
type ValidationError struct {
	Reason Reason
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "iban: " + e.Reason.Message()
}

// Is matches any *ValidationError with the same reason, so the sentinels
// below work with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

var (
	ErrTooLong            = &ValidationError{Reason: TooLong}
	ErrInvalidChar        = &ValidationError{Reason: InvalidChar}
	ErrInvalidCountryCode = &ValidationError{Reason: InvalidCountryCode}
	ErrInvalidLength      = &ValidationError{Reason: InvalidLength}
	ErrInvalidFormat      = &ValidationError{Reason: InvalidFormat}
	ErrCountryCheckFailed = &ValidationError{Reason: CountryCheckFailed}
	ErrInvalidIBAN        = &ValidationError{Reason: InvalidIBAN}
)

// ErrAccountNotNumeric is returned by IBAN.AccountNumber for countries whose
// account number field may contain letters.
var ErrAccountNotNumeric = errors.New("iban: account number is not numeric")

// ReasonOf extracts the validation reason from err.
func ReasonOf(err error) (Reason, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return 0, false
}
