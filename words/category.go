package words

import "github.com/textlayer/uax29/internal/ucd"

// Category is a bitmask of the UAX #29 Word_Break property values a code
// point can carry. Other is the zero value: a code point that participates
// in no special pairing rule and only WB999 applies to it.
type Category uint32

const Other Category = 0

const (
	CR Category = 1 << iota
	LF
	Newline
	Extend
	Format
	ZWJ
	RegionalIndicator
	Katakana
	HebrewLetter
	ALetter
	SingleQuote
	DoubleQuote
	MidNumLet
	MidLetter
	MidNum
	Numeric
	ExtendNumLet
	WSegSpace
)

// AHLetter is the union WB5-WB7 and WB13a/WB13b treat as a single letter
// class (ALetter or Hebrew_Letter).
const AHLetter = ALetter | HebrewLetter

// MidNumLetQ is the union WB6/WB7/WB11/WB12 treat as a mid-word numeric or
// letter separator (MidNumLet or a Single_Quote).
const MidNumLetQ = MidNumLet | SingleQuote

func (c Category) is(other Category) bool {
	return c&other != 0
}

// lookup returns the Word_Break category for the rune at the start of s,
// and the rune's width in bytes. It returns (Other, 0) for an empty string.
func lookup(s string) (Category, int) {
	if len(s) == 0 {
		return Other, 0
	}
	r, w := decodeRune(s)

	switch {
	case r == '\r':
		return CR, w
	case r == '\n':
		return LF, w
	case ucd.WordNewline(r):
		return Newline, w
	case ucd.ZWJ(r):
		return ZWJ, w
	case ucd.WordExtend(r):
		return Extend, w
	case ucd.Format(r):
		return Format, w
	case ucd.RegionalIndicator(r):
		return RegionalIndicator, w
	case ucd.Katakana(r):
		return Katakana, w
	case ucd.HebrewLetter(r):
		return HebrewLetter, w
	case ucd.ALetter(r):
		return ALetter, w
	case ucd.SingleQuote(r):
		return SingleQuote, w
	case ucd.DoubleQuote(r):
		return DoubleQuote, w
	case ucd.MidNumLet(r):
		return MidNumLet, w
	case ucd.MidLetter(r):
		return MidLetter, w
	case ucd.MidNum(r):
		return MidNum, w
	case ucd.Numeric(r):
		return Numeric, w
	case ucd.ExtendNumLet(r):
		return ExtendNumLet, w
	case ucd.WSegSpace(r):
		return WSegSpace, w
	default:
		return Other, w
	}
}

// lookupLast returns the Word_Break category for the rune ending at the
// end of s, and the rune's width in bytes.
func lookupLast(s string) (Category, int) {
	if len(s) == 0 {
		return Other, 0
	}
	_, w := decodeLastRune(s)
	cat, _ := lookup(s[len(s)-w:])
	return cat, w
}
