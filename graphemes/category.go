package graphemes

import "github.com/textlayer/uax29/internal/ucd"

// Category is a bitmask of the UAX #29 Grapheme_Cluster_Break property
// values a code point can carry. Any is the zero value: an unclassified
// code point participates in no special pairing rule and only GB999
// applies to it.
type Category uint32

// Grapheme_Cluster_Break property values, see
// https://unicode.org/reports/tr29/#Grapheme_Cluster_Break_Property_Values
const Any Category = 0

const (
	Control Category = 1 << iota
	CR
	LF
	Extend
	ZWJ
	RegionalIndicator
	Prepend
	SpacingMark
	L
	V
	T
	LV
	LVT
	EBase
	EModifier
	EBaseGAZ
	GlueAfterZwj
)

// is reports whether c has any bit of other set.
func (c Category) is(other Category) bool {
	return c&other != 0
}

// lookup returns the Grapheme_Cluster_Break category for the rune at the
// start of s, and the rune's width in bytes. It returns (Any, 0) for an
// empty string.
func lookup(s string) (Category, int) {
	if len(s) == 0 {
		return Any, 0
	}
	r, w := decodeRune(s)

	switch {
	case r == '\r':
		return CR, w
	case r == '\n':
		return LF, w
	case ucd.RegionalIndicator(r):
		return RegionalIndicator, w
	case ucd.Prepend(r):
		return Prepend, w
	case ucd.L(r):
		return L, w
	case ucd.V(r):
		return V, w
	case ucd.T(r):
		return T, w
	case ucd.LV(r):
		return LV, w
	case ucd.LVT(r):
		return LVT, w
	case ucd.EBaseGAZ(r):
		return EBaseGAZ, w
	case ucd.EBase(r):
		return EBase, w
	case ucd.EModifier(r):
		return EModifier, w
	case ucd.GlueAfterZwj(r):
		return GlueAfterZwj, w
	case ucd.ZWJ(r):
		return ZWJ, w
	case ucd.SpacingMark(r):
		return SpacingMark, w
	case ucd.GraphemeExtend(r):
		return Extend, w
	case ucd.GraphemeControl(r):
		return Control, w
	default:
		return Any, w
	}
}

// lookupLast returns the Grapheme_Cluster_Break category for the rune
// ending at the end of s, and the rune's width in bytes.
func lookupLast(s string) (Category, int) {
	if len(s) == 0 {
		return Any, 0
	}
	r, w := decodeLastRune(s)
	cat, _ := lookup(s[len(s)-w:])
	return cat, w
}
