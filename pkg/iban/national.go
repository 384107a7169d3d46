package iban

// NationalCheck identifies a country-specific checksum that runs on top of the
// universal mod-97 check. The zero value means the country defines none.
type NationalCheck uint8

const (
	NoNationalCheck NationalCheck = iota
	// AlbanianCheck weights the 8-digit bank/branch code by 9,7,3,1 and
	// compares the sum mod 10 with the digit that follows it.
	AlbanianCheck
	// BelgianCheck compares the first 10 BBAN digits mod 97 with the last two.
	BelgianCheck
	// CzechCheck runs mod-11 over both the account number and the branch prefix.
	CzechCheck
)

var nationalChecks = map[NationalCheck]func(raw string) bool{
	AlbanianCheck: albanianCheck,
	BelgianCheck:  belgianCheck,
	CzechCheck:    czechCheck,
}

// Verify runs the check against a structurally valid IBAN.
// Countries without a rule always pass.
func (c NationalCheck) Verify(raw string) bool {
	verify, ok := nationalChecks[c]
	if !ok {
		return true
	}
	return verify(raw)
}

// String returns the rule name used in the country listing.
func (c NationalCheck) String() string {
	switch c {
	case AlbanianCheck:
		return "albanian_weighted_mod10"
	case BelgianCheck:
		return "belgian_mod97"
	case CzechCheck:
		return "czech_weighted_mod11"
	default:
		return "none"
	}
}

var (
	albanianWeights    = []int{9, 7, 3, 1, 9, 7, 3, 1}
	czechAccountWeight = []int{6, 3, 7, 9, 10, 5, 8, 4, 2, 1}
	czechBranchWeight  = []int{10, 5, 8, 4, 2, 1}
)

func albanianCheck(raw string) bool {
	if len(raw) < 13 {
		return false
	}
	sum, ok := weightedSum(raw[4:12], albanianWeights)
	if !ok || !isDigit(raw[12]) {
		return false
	}
	return sum%10 == int(raw[12]-'0')
}

func belgianCheck(raw string) bool {
	if len(raw) != 16 {
		return false
	}
	r := remainder(0, raw[4:14])
	check, ok := digitsValue(raw[14:16])
	if !ok {
		return false
	}
	return r == check
}

func czechCheck(raw string) bool {
	if len(raw) != 24 {
		return false
	}
	account, ok := weightedSum(raw[14:24], czechAccountWeight)
	if !ok || account%11 != 0 {
		return false
	}
	branch, ok := weightedSum(raw[8:14], czechBranchWeight)
	return ok && branch%11 == 0
}

// weightedSum multiplies each digit of s by the weight at the same position.
// It returns false when s holds a non-digit or does not line up with weights.
func weightedSum(s string, weights []int) (int, bool) {
	if len(s) != len(weights) {
		return 0, false
	}
	total := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		total += int(s[i]-'0') * weights[i]
	}
	return total, true
}

func digitsValue(s string) (int, bool) {
	v := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, true
}
