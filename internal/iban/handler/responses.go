package handler

import (
	"iban-gateway/internal/iban/models"
	"iban-gateway/pkg/iban"
)

// ValidationResponse describes one validated input. Fields extracted from the
// IBAN are present only when it is valid; Reason and Message only when it is not.
type ValidationResponse struct {
	Valid         bool   `json:"valid"`
	IBAN          string `json:"iban,omitempty"`
	Formatted     string `json:"formatted,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
	CheckDigits   string `json:"check_digits,omitempty"`
	BBAN          string `json:"bban,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	AccountDigits string `json:"account_digits,omitempty"`
	// AccountNumber is the account field as a decimal integer, omitted when
	// the country allows letters in it.
	AccountNumber string `json:"account_number,omitempty"`
	Reason        string `json:"reason,omitempty"`
	Message       string `json:"message,omitempty"`
}

type BatchResponse struct {
	Results      []ValidationResponse `json:"results"`
	ValidCount   int                  `json:"valid_count"`
	InvalidCount int                  `json:"invalid_count"`
}

type CountryResponse struct {
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Length        int       `json:"length"`
	Layout        string    `json:"layout"`
	BankCode      iban.Span `json:"bank_code"`
	Account       iban.Span `json:"account"`
	NationalCheck bool      `json:"national_check"`
	// CheckAlgorithm names the national checksum; empty when there is none.
	CheckAlgorithm string `json:"check_algorithm,omitempty"`
}

type CountriesResponse struct {
	Countries []CountryResponse `json:"countries"`
}

type CheckDigitsResponse struct {
	CheckDigits string `json:"check_digits"`
	IBAN        string `json:"iban"`
	Formatted   string `json:"formatted"`
}

func toValidationResponse(r models.Result) ValidationResponse {
	if !r.Valid {
		return ValidationResponse{
			Reason:  r.Reason.String(),
			Message: r.Reason.Message(),
		}
	}
	resp := ValidationResponse{
		Valid:         true,
		IBAN:          r.IBAN.String(),
		Formatted:     r.IBAN.Formatted(),
		CountryCode:   r.IBAN.CountryCode(),
		CheckDigits:   r.IBAN.CheckDigits(),
		BBAN:          r.IBAN.BBAN(),
		BankCode:      r.IBAN.BankCode(),
		AccountDigits: r.IBAN.AccountDigits(),
	}
	if n, err := r.IBAN.AccountNumber(); err == nil {
		resp.AccountNumber = n.String()
	}
	return resp
}

func toBatchResponse(results []models.Result) BatchResponse {
	summary := models.Summarize(results)
	resp := BatchResponse{
		Results:      make([]ValidationResponse, len(results)),
		ValidCount:   summary.Valid,
		InvalidCount: summary.Invalid,
	}
	for i, r := range results {
		resp.Results[i] = toValidationResponse(r)
	}
	return resp
}

func toCountryResponse(c iban.Country) CountryResponse {
	resp := CountryResponse{
		Code:          c.Code.String(),
		Name:          c.Name,
		Length:        c.Length,
		Layout:        c.Layout.String(),
		BankCode:      c.BankCode,
		Account:       c.Account,
		NationalCheck: c.Check != iban.NoNationalCheck,
	}
	if resp.NationalCheck {
		resp.CheckAlgorithm = c.Check.String()
	}
	return resp
}

func toCountriesResponse(countries []iban.Country) CountriesResponse {
	resp := CountriesResponse{Countries: make([]CountryResponse, len(countries))}
	for i, c := range countries {
		resp.Countries[i] = toCountryResponse(c)
	}
	return resp
}
