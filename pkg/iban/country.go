package iban

import (
	"cmp"
	"slices"
)

// CountryCode is a two-letter code of a country that issues IBANs.
type CountryCode string

// String returns the code itself.
func (c CountryCode) String() string {
	return string(c)
}

// Country describes how IBANs of one country are formed.
//
// Invariant: Length equals Layout.Len() for every registered country.
type Country struct {
	Code   CountryCode
	Name   string
	Length int
	Layout Layout
	// BankCode locates the national bank identifier.
	BankCode Span
	// Account locates the account number. Some countries append a national
	// check or currency suffix after it, so the span may count from the end.
	Account Span
	Check   NationalCheck
}

// registry is built once and never modified afterwards, so concurrent reads
// need no locking. Formats follow the SWIFT IBAN registry; "AA" is the
// pseudo-country reserved for test and demo accounts.
var registry = []Country{
	{Code: "AA", Name: "Test and demo accounts", Length: 16, Layout: bban(n(4), c(8)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "AD", Name: "Andorra", Length: 24, Layout: bban(n(8), c(12)), BankCode: Span{4, 8}, Account: Span{12, 0}},
	{Code: "AE", Name: "United Arab Emirates", Length: 23, Layout: bban(n(3), n(16)), BankCode: Span{4, 7}, Account: Span{9, 0}},
	{Code: "AL", Name: "Albania", Length: 28, Layout: bban(n(8), c(16)), BankCode: Span{4, 7}, Account: Span{12, 0}, Check: AlbanianCheck},
	{Code: "AT", Name: "Austria", Length: 20, Layout: bban(n(16)), BankCode: Span{4, 9}, Account: Span{9, 0}},
	{Code: "AZ", Name: "Azerbaijan", Length: 28, Layout: bban(c(4), n(20)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "BA", Name: "Bosnia and Herzegovina", Length: 20, Layout: bban(n(16)), BankCode: Span{4, 7}, Account: Span{10, -2}},
	{Code: "BE", Name: "Belgium", Length: 16, Layout: bban(n(12)), BankCode: Span{4, 7}, Account: Span{7, -2}, Check: BelgianCheck},
	{Code: "BG", Name: "Bulgaria", Length: 22, Layout: bban(a(4), n(6), c(8)), BankCode: Span{4, 8}, Account: Span{14, 0}},
	{Code: "BH", Name: "Bahrain", Length: 22, Layout: bban(a(4), c(14)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "BR", Name: "Brazil", Length: 29, Layout: bban(n(23), a(1), c(1)), BankCode: Span{4, 12}, Account: Span{17, -2}},
	{Code: "BY", Name: "Belarus", Length: 28, Layout: bban(c(4), n(4), c(16)), BankCode: Span{4, 8}, Account: Span{12, 0}},
	{Code: "CH", Name: "Switzerland", Length: 21, Layout: bban(n(5), c(12)), BankCode: Span{4, 9}, Account: Span{9, 0}},
	{Code: "CR", Name: "Costa Rica", Length: 22, Layout: bban(n(18)), BankCode: Span{5, 8}, Account: Span{8, 0}},
	{Code: "CY", Name: "Cyprus", Length: 28, Layout: bban(n(8), c(16)), BankCode: Span{4, 7}, Account: Span{12, 0}},
	{Code: "CZ", Name: "Czech Republic", Length: 24, Layout: bban(n(20)), BankCode: Span{4, 8}, Account: Span{14, 0}, Check: CzechCheck},
	{Code: "DE", Name: "Germany", Length: 22, Layout: bban(n(18)), BankCode: Span{4, 12}, Account: Span{12, 0}},
	{Code: "DK", Name: "Denmark", Length: 18, Layout: bban(n(14)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "DO", Name: "Dominican Republic", Length: 28, Layout: bban(a(4), n(20)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "EE", Name: "Estonia", Length: 20, Layout: bban(n(16)), BankCode: Span{4, 6}, Account: Span{8, -1}},
	{Code: "EG", Name: "Egypt", Length: 29, Layout: bban(n(25)), BankCode: Span{4, 8}, Account: Span{12, 0}},
	{Code: "ES", Name: "Spain", Length: 24, Layout: bban(n(20)), BankCode: Span{4, 8}, Account: Span{14, 0}},
	{Code: "FI", Name: "Finland", Length: 18, Layout: bban(n(14)), BankCode: Span{4, 10}, Account: Span{10, -1}},
	{Code: "FO", Name: "Faroe Islands", Length: 18, Layout: bban(n(14)), BankCode: Span{4, 8}, Account: Span{8, -1}},
	{Code: "FR", Name: "France", Length: 27, Layout: bban(n(10), c(11), n(2)), BankCode: Span{4, 9}, Account: Span{14, -2}},
	{Code: "GB", Name: "United Kingdom", Length: 22, Layout: bban(a(4), n(14)), BankCode: Span{4, 8}, Account: Span{14, 0}},
	{Code: "GE", Name: "Georgia", Length: 22, Layout: bban(c(2), n(16)), BankCode: Span{4, 6}, Account: Span{6, 0}},
	{Code: "GI", Name: "Gibraltar", Length: 23, Layout: bban(a(4), c(15)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "GL", Name: "Greenland", Length: 18, Layout: bban(n(14)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "GR", Name: "Greece", Length: 27, Layout: bban(n(7), c(16)), BankCode: Span{4, 7}, Account: Span{11, 0}},
	{Code: "GT", Name: "Guatemala", Length: 28, Layout: bban(c(4), c(20)), BankCode: Span{4, 8}, Account: Span{12, 0}},
	{Code: "HR", Name: "Croatia", Length: 21, Layout: bban(n(17)), BankCode: Span{4, 11}, Account: Span{11, 0}},
	{Code: "HU", Name: "Hungary", Length: 28, Layout: bban(n(24)), BankCode: Span{4, 7}, Account: Span{12, -1}},
	{Code: "IE", Name: "Ireland", Length: 22, Layout: bban(c(4), n(14)), BankCode: Span{8, 14}, Account: Span{14, 0}},
	{Code: "IL", Name: "Israel", Length: 23, Layout: bban(n(19)), BankCode: Span{4, 7}, Account: Span{10, 0}},
	{Code: "IQ", Name: "Iraq", Length: 23, Layout: bban(a(4), n(15)), BankCode: Span{4, 8}, Account: Span{11, 0}},
	{Code: "IS", Name: "Iceland", Length: 26, Layout: bban(n(22)), BankCode: Span{4, 6}, Account: Span{10, 16}},
	{Code: "IT", Name: "Italy", Length: 27, Layout: bban(a(1), n(10), c(12)), BankCode: Span{5, 10}, Account: Span{15, 0}},
	{Code: "JO", Name: "Jordan", Length: 30, Layout: bban(a(4), n(22)), BankCode: Span{4, 8}, Account: Span{12, 0}},
	{Code: "KW", Name: "Kuwait", Length: 30, Layout: bban(a(4), c(22)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "KZ", Name: "Kazakhstan", Length: 20, Layout: bban(n(3), c(13)), BankCode: Span{4, 7}, Account: Span{7, 0}},
	{Code: "LB", Name: "Lebanon", Length: 28, Layout: bban(n(4), c(20)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "LC", Name: "Saint Lucia", Length: 32, Layout: bban(a(4), c(24)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "LI", Name: "Liechtenstein", Length: 21, Layout: bban(n(5), c(12)), BankCode: Span{4, 9}, Account: Span{9, 0}},
	{Code: "LT", Name: "Lithuania", Length: 20, Layout: bban(n(16)), BankCode: Span{4, 9}, Account: Span{9, 0}},
	{Code: "LU", Name: "Luxembourg", Length: 20, Layout: bban(n(3), c(13)), BankCode: Span{4, 7}, Account: Span{7, 0}},
	{Code: "LV", Name: "Latvia", Length: 21, Layout: bban(a(4), c(13)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "LY", Name: "Libya", Length: 25, Layout: bban(n(21)), BankCode: Span{4, 7}, Account: Span{10, 0}},
	{Code: "MC", Name: "Monaco", Length: 27, Layout: bban(n(10), c(11), n(2)), BankCode: Span{4, 9}, Account: Span{14, -2}},
	{Code: "MD", Name: "Moldova", Length: 24, Layout: bban(c(2), c(18)), BankCode: Span{4, 6}, Account: Span{6, 0}},
	{Code: "ME", Name: "Montenegro", Length: 22, Layout: bban(n(18)), BankCode: Span{4, 7}, Account: Span{7, -2}},
	{Code: "MK", Name: "North Macedonia", Length: 19, Layout: bban(n(3), c(10), n(2)), BankCode: Span{4, 7}, Account: Span{7, -2}},
	{Code: "MR", Name: "Mauritania", Length: 27, Layout: bban(n(23)), BankCode: Span{4, 9}, Account: Span{14, 0}},
	{Code: "MT", Name: "Malta", Length: 31, Layout: bban(a(4), n(5), c(18)), BankCode: Span{4, 8}, Account: Span{13, 0}},
	{Code: "MU", Name: "Mauritius", Length: 30, Layout: bban(a(4), n(19), a(3)), BankCode: Span{4, 10}, Account: Span{12, -6}},
	{Code: "NL", Name: "Netherlands", Length: 18, Layout: bban(a(4), n(10)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "NO", Name: "Norway", Length: 15, Layout: bban(n(11)), BankCode: Span{4, 8}, Account: Span{8, -1}},
	{Code: "PK", Name: "Pakistan", Length: 24, Layout: bban(c(4), n(16)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "PL", Name: "Poland", Length: 28, Layout: bban(n(24)), BankCode: Span{4, 7}, Account: Span{12, 0}},
	{Code: "PS", Name: "Palestine", Length: 29, Layout: bban(c(4), n(21)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "PT", Name: "Portugal", Length: 25, Layout: bban(n(21)), BankCode: Span{4, 8}, Account: Span{12, -2}},
	{Code: "QA", Name: "Qatar", Length: 29, Layout: bban(a(4), c(21)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "RO", Name: "Romania", Length: 24, Layout: bban(a(4), c(16)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "RS", Name: "Serbia", Length: 22, Layout: bban(n(18)), BankCode: Span{4, 7}, Account: Span{7, -2}},
	{Code: "SA", Name: "Saudi Arabia", Length: 24, Layout: bban(n(2), c(18)), BankCode: Span{4, 6}, Account: Span{6, 0}},
	{Code: "SC", Name: "Seychelles", Length: 31, Layout: bban(a(4), n(20), a(3)), BankCode: Span{4, 10}, Account: Span{13, -3}},
	{Code: "SD", Name: "Sudan", Length: 18, Layout: bban(n(14)), BankCode: Span{4, 6}, Account: Span{6, 0}},
	{Code: "SE", Name: "Sweden", Length: 24, Layout: bban(n(20)), BankCode: Span{4, 7}, Account: Span{7, 0}},
	{Code: "SI", Name: "Slovenia", Length: 19, Layout: bban(n(15)), BankCode: Span{4, 6}, Account: Span{8, -2}},
	{Code: "SK", Name: "Slovakia", Length: 24, Layout: bban(n(20)), BankCode: Span{4, 8}, Account: Span{14, 0}},
	{Code: "SM", Name: "San Marino", Length: 27, Layout: bban(a(1), n(10), c(12)), BankCode: Span{5, 10}, Account: Span{15, 0}},
	{Code: "ST", Name: "Sao Tome and Principe", Length: 25, Layout: bban(n(21)), BankCode: Span{4, 8}, Account: Span{12, 0}},
	{Code: "SV", Name: "El Salvador", Length: 28, Layout: bban(a(4), n(20)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "TL", Name: "Timor-Leste", Length: 23, Layout: bban(n(19)), BankCode: Span{4, 7}, Account: Span{7, -2}},
	{Code: "TN", Name: "Tunisia", Length: 24, Layout: bban(n(20)), BankCode: Span{4, 6}, Account: Span{9, -2}},
	{Code: "TR", Name: "Turkey", Length: 26, Layout: bban(n(5), c(17)), BankCode: Span{4, 9}, Account: Span{10, 0}},
	{Code: "UA", Name: "Ukraine", Length: 29, Layout: bban(n(6), c(19)), BankCode: Span{4, 10}, Account: Span{10, 0}},
	{Code: "VA", Name: "Vatican City", Length: 22, Layout: bban(n(3), n(15)), BankCode: Span{4, 7}, Account: Span{7, 0}},
	{Code: "VG", Name: "British Virgin Islands", Length: 24, Layout: bban(c(4), n(16)), BankCode: Span{4, 8}, Account: Span{8, 0}},
	{Code: "XK", Name: "Kosovo", Length: 20, Layout: bban(n(4), n(10), n(2)), BankCode: Span{4, 8}, Account: Span{8, 0}},
}

var countriesByCode = indexCountries(registry)

func indexCountries(countries []Country) map[CountryCode]Country {
	index := make(map[CountryCode]Country, len(countries))
	for _, country := range countries {
		index[country.Code] = country
	}
	return index
}

// LookupCountry returns the format of the country with the given code.
// Codes are matched exactly, so "de" is not DE.
func LookupCountry(code string) (Country, bool) {
	country, ok := countriesByCode[CountryCode(code)]
	if !ok {
		return Country{}, false
	}
	return country.clone(), true
}

// Countries returns every supported country sorted by code.
func Countries() []Country {
	out := make([]Country, 0, len(registry))
	for _, country := range registry {
		out = append(out, country.clone())
	}
	slices.SortFunc(out, func(x, y Country) int { return cmp.Compare(x.Code, y.Code) })
	return out
}

// clone copies the layout so callers cannot modify the shared registry.
func (c Country) clone() Country {
	c.Layout = slices.Clone(c.Layout)
	return c
}
