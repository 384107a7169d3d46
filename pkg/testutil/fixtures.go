package testutil

import (
	"fmt"

	"iban-gateway/pkg/iban"
)

// SampleIBANs provides known-good IBANs for tests, keyed by purpose.
var SampleIBANs = struct {
	Germany       string
	UnitedKingdom string
	Belgium       string
	Czech         string
	Malta         string
	Norway        string
}{
	Germany:       "DE89 3704 0044 0532 0130 00",
	UnitedKingdom: "GB82 WEST 1234 5698 7654 32",
	Belgium:       "BE68 5390 0754 7034",
	Czech:         "CZ65 0800 0000 1920 0014 5399",
	Malta:         "MT84 MALT 0110 0001 2345 MTLC AST0 01S",
	Norway:        "NO93 8601 1117 947",
}

// IBANBuilder provides a fluent interface for building test IBANs with
// correct or deliberately broken check digits.
type IBANBuilder struct {
	country     string
	bban        string
	checkDigits string
}

// NewIBANBuilder starts from the German sample BBAN.
func NewIBANBuilder() *IBANBuilder {
	return &IBANBuilder{country: "DE", bban: "370400440532013000"}
}

func (b *IBANBuilder) WithCountry(code string) *IBANBuilder {
	b.country = code
	return b
}

func (b *IBANBuilder) WithBBAN(bban string) *IBANBuilder {
	b.bban = bban
	return b
}

// WithCheckDigits overrides the computed check digits.
func (b *IBANBuilder) WithCheckDigits(digits string) *IBANBuilder {
	b.checkDigits = digits
	return b
}

// Build assembles the IBAN. Check digits are computed unless overridden;
// a country or BBAN the engine rejects produces "00" check digits.
func (b *IBANBuilder) Build() string {
	digits := b.checkDigits
	if digits == "" {
		computed, err := iban.CheckDigits(b.country, b.bban)
		if err != nil {
			computed = "00"
		}
		digits = computed
	}
	return b.country + digits + b.bban
}

// BuildMany returns n distinct valid IBANs for the builder's country by
// varying the trailing digits of the BBAN.
func (b *IBANBuilder) BuildMany(n int) []string {
	out := make([]string, 0, n)
	width := len(fmt.Sprint(n))
	if width > len(b.bban) {
		width = len(b.bban)
	}
	prefix := b.bban[:len(b.bban)-width]
	for i := 0; i < n; i++ {
		bban := fmt.Sprintf("%s%0*d", prefix, width, i)
		out = append(out, NewIBANBuilder().WithCountry(b.country).WithBBAN(bban).Build())
	}
	return out
}
