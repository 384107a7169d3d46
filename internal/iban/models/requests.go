package models

import (
	"iban-gateway/pkg/iban"
	s "iban-gateway/pkg/string"
	"iban-gateway/pkg/validation"
)

// ValidateRequest is the body of POST /iban/validate.
type ValidateRequest struct {
	IBAN string `json:"iban" validate:"required,notblank,max=256"`
}

func (r *ValidateRequest) Validate() error {
	return validation.Validate(r)
}

// BatchRequest is the body of POST /iban/validate/batch. The upper bound on
// the number of items is configuration, so the handler enforces it.
type BatchRequest struct {
	IBANs []string `json:"ibans" validate:"required,min=1,dive,max=256"`
}

func (r *BatchRequest) Validate() error {
	return validation.Validate(r)
}

// CheckDigitsRequest is the body of POST /iban/check-digits.
type CheckDigitsRequest struct {
	CountryCode string `json:"country_code" validate:"required,len=2,ibancountry"`
	BBAN        string `json:"bban" validate:"required,max=30,alnum_ascii"`
}

// Normalize upper-cases the country code and strips whitespace from the BBAN.
func (r *CheckDigitsRequest) Normalize() {
	s.TrimStrings(&r.CountryCode)
	r.CountryCode = s.ToUpperASCII(r.CountryCode)
	r.BBAN = iban.Normalize(r.BBAN)
}

func (r *CheckDigitsRequest) Validate() error {
	return validation.Validate(r)
}
