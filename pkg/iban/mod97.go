package iban

import (
	"fmt"
	"strings"
)

// mod97 computes the ISO 7064 MOD 97-10 remainder of an IBAN: the first four
// characters move to the end, letters expand to 10..35 and the resulting
// decimal string is reduced one digit at a time. raw must be ASCII alphanumeric.
func mod97(raw string) int {
	if len(raw) < 4 {
		return remainder(0, raw)
	}
	r := remainder(0, raw[4:])
	return remainder(r, raw[:4])
}

// remainder continues a running mod-97 reduction over s.
func remainder(r int, s string) int {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case isDigit(ch):
			r = (r*10 + int(ch-'0')) % 97
		case 'A' <= ch && ch <= 'Z':
			r = (r*100 + int(ch-'A') + 10) % 97
		case 'a' <= ch && ch <= 'z':
			r = (r*100 + int(ch-'a') + 10) % 97
		}
	}
	return r
}

// checksumOK reports whether the IBAN remainder is exactly 1.
func checksumOK(raw string) bool {
	return mod97(raw) == 1
}

// CheckDigits computes the two IBAN check digits for a BBAN in the given
// country. The country must be supported and the BBAN must be ASCII alphanumeric.
func CheckDigits(countryCode, bban string) (string, error) {
	code := strings.ToUpper(countryCode)
	if _, ok := LookupCountry(code); !ok {
		return "", ErrInvalidCountryCode
	}
	for i := 0; i < len(bban); i++ {
		if !isASCIIAlnum(bban[i]) {
			return "", ErrInvalidChar
		}
	}
	r := remainder(0, bban)
	r = remainder(r, code+"00")
	return fmt.Sprintf("%02d", 98-r), nil
}
