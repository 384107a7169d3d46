package iban

import (
	"strconv"
	"strings"
)

// CharClass is the set of characters allowed in one segment of a country layout.
type CharClass uint8

const (
	// Digit accepts ASCII 0-9.
	Digit CharClass = iota + 1
	// Upper accepts ASCII A-Z only.
	Upper
	// Alnum accepts ASCII 0-9, A-Z and a-z.
	Alnum
)

// Accepts reports whether b belongs to the class.
func (c CharClass) Accepts(b byte) bool {
	switch c {
	case Digit:
		return isDigit(b)
	case Upper:
		return 'A' <= b && b <= 'Z'
	case Alnum:
		return isASCIIAlnum(b)
	default:
		return false
	}
}

// notation returns the IBAN registry letter for the class (n, a, c).
func (c CharClass) notation() string {
	switch c {
	case Digit:
		return "n"
	case Upper:
		return "a"
	case Alnum:
		return "c"
	default:
		return "?"
	}
}

// Segment is a fixed-width run of characters of a single class.
type Segment struct {
	Class CharClass
	Len   int
}

// Layout is the positional pattern an IBAN must match, from the country code
// through the last BBAN character.
type Layout []Segment

// Len returns the number of characters the layout describes.
func (l Layout) Len() int {
	total := 0
	for _, seg := range l {
		total += seg.Len
	}
	return total
}

// Matches reports whether raw has exactly the layout's length and every
// character belongs to the class of the segment covering it.
func (l Layout) Matches(raw string) bool {
	if len(raw) != l.Len() {
		return false
	}
	pos := 0
	for _, seg := range l {
		for i := pos; i < pos+seg.Len; i++ {
			if !seg.Class.Accepts(raw[i]) {
				return false
			}
		}
		pos += seg.Len
	}
	return true
}

// String renders the layout in IBAN registry notation, e.g. "2!a2!n4!a14!n".
func (l Layout) String() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(strconv.Itoa(seg.Len))
		b.WriteString("!")
		b.WriteString(seg.Class.notation())
	}
	return b.String()
}

// n, a and c build segments the way the IBAN registry writes them.
func n(length int) Segment { return Segment{Class: Digit, Len: length} }
func a(length int) Segment { return Segment{Class: Upper, Len: length} }
func c(length int) Segment { return Segment{Class: Alnum, Len: length} }

// bban prefixes a BBAN layout with the country code and check digits that
// every IBAN starts with.
func bban(segments ...Segment) Layout {
	layout := make(Layout, 0, len(segments)+2)
	layout = append(layout, a(2), n(2))
	return append(layout, segments...)
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isASCIIAlnum(b byte) bool {
	return isDigit(b) || ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}
