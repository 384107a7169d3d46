package validation

import (
	"fmt"

	dErrors "iban-gateway/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum request body size for single-item endpoints (64 KB).
	MaxBodySize = 64 * 1024

	// MaxBatchBodySize is the maximum request body size for batch endpoints (1 MB).
	MaxBatchBodySize = 1024 * 1024
)

// Slice element count limits
const (
	// DefaultMaxBatchItems is the default number of IBANs accepted per batch request.
	DefaultMaxBatchItems = 500
)

// String element length limits
const (
	// MaxIBANInputLength caps a raw IBAN field before whitespace is stripped.
	// Longer inputs are rejected as malformed requests rather than validated.
	MaxIBANInputLength = 256

	// MaxCountryCodeLength is the maximum length of a country code path parameter.
	MaxCountryCodeLength = 2
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("too many %s: max %d allowed", fieldName, max))
	}
	return nil
}

// CheckSliceNotEmpty validates that a slice holds at least one element.
func CheckSliceNotEmpty(fieldName string, count int) error {
	if count == 0 {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must not be empty", fieldName))
	}
	return nil
}

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckEachStringLength validates that each string in a slice does not exceed the maximum length.
func CheckEachStringLength(fieldName string, values []string, max int) error {
	for i, v := range values {
		if len(v) > max {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s[%d] exceeds max length of %d", fieldName, i, max))
		}
	}
	return nil
}
