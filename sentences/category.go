package sentences

import "github.com/textlayer/uax29/internal/ucd"

// Category is a bitmask of the UAX #29 Sentence_Break property values a
// code point can carry. Other is the zero value.
type Category uint32

const Other Category = 0

const (
	CR Category = 1 << iota
	LF
	Sep
	Extend
	Format
	Sp
	Lower
	Upper
	OLetter
	Numeric
	ATerm
	STerm
	Close
	SContinue
)

func (c Category) is(other Category) bool {
	return c&other != 0
}

// lookup returns the Sentence_Break category for the rune at the start of
// s, and the rune's width in bytes. It returns (Other, 0) for an empty
// string.
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
	case ucd.SentenceSep(r):
		return Sep, w
	case ucd.ZWJ(r), ucd.WordExtend(r):
		return Extend, w
	case ucd.SentenceFormat(r):
		return Format, w
	case ucd.SentenceSp(r):
		return Sp, w
	case ucd.Lower(r):
		return Lower, w
	case ucd.Upper(r):
		return Upper, w
	case ucd.OLetter(r):
		return OLetter, w
	case ucd.Numeric(r):
		return Numeric, w
	case ucd.ATerm(r):
		return ATerm, w
	case ucd.STerm(r):
		return STerm, w
	case ucd.Close(r):
		return Close, w
	case ucd.SContinue(r):
		return SContinue, w
	default:
		return Other, w
	}
}
