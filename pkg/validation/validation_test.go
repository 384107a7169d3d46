package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "iban-gateway/pkg/domain-errors"
)

type payment struct {
	Payee       string `validate:"required,notblank"`
	CountryCode string `validate:"omitempty,ibancountry"`
	BBAN        string `validate:"omitempty,max=30,alnum_ascii"`
}

func TestValidate(t *testing.T) {
	valid := payment{Payee: "ACME", CountryCode: "GB", BBAN: "west12345698765432"}

	tests := []struct {
		name    string
		mutate  func(p *payment)
		wantMsg string
	}{
		{"valid", func(p *payment) {}, ""},
		{"missing payee", func(p *payment) { p.Payee = "" }, "payee is required"},
		{"blank payee", func(p *payment) { p.Payee = "   " }, "payee must not be blank"},
		{"unknown country", func(p *payment) { p.CountryCode = "XX" }, "country_code must be a supported IBAN country code"},
		{"lower-case country", func(p *payment) { p.CountryCode = "gb" }, "country_code must be a supported IBAN country code"},
		{"punctuation in BBAN", func(p *payment) { p.BBAN = "WEST-1234" }, "bban must contain only ASCII letters and digits"},
		{"long BBAN", func(p *payment) { p.BBAN = "1234567890123456789012345678901" }, "bban must be at most 30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := Validate(p)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestErrorMessageFallback(t *testing.T) {
	assert.Equal(t, "invalid request body", ErrorMessage(errors.New("not a validator error")))
}
