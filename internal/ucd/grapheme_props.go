package ucd

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// GraphemeControl is defined here: https://unicode.org/reports/tr29/#Control
// (the control, format, line separator, paragraph separator, surrogate, and
// private-use general categories, minus CR, LF, Prepend, and ZWJ which have
// their own values; unassigned code points are not included).
func GraphemeControl(r rune) bool {
	if r == '\r' || r == '\n' || ZWJ(r) {
		return false
	}
	if Prepend(r) {
		return false
	}
	switch {
	case unicode.Is(unicode.Cc, r),
		unicode.Is(unicode.Cf, r),
		unicode.Is(unicode.Zl, r),
		unicode.Is(unicode.Zp, r),
		unicode.Is(unicode.Cs, r),
		unicode.Is(unicode.Co, r):
		return true
	}
	return false
}

var prependTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0600, 0x0605, 1},
		{0x06DD, 0x06DD, 1},
		{0x070F, 0x070F, 1},
		{0x08E2, 0x08E2, 1},
		{0x0D4E, 0x0D4E, 1},
	},
	R32: []unicode.Range32{
		{0x110BD, 0x110BD, 1},
		{0x110CD, 0x110CD, 1},
		{0x111C2, 0x111C3, 1},
		{0x1193F, 0x1193F, 1},
		{0x11941, 0x11941, 1},
		{0x11A3A, 0x11A3A, 1},
		{0x11A84, 0x11A89, 1},
		{0x11D46, 0x11D46, 1},
	},
}

// Prepend is defined here: https://unicode.org/reports/tr29/#Prepend
func Prepend(r rune) bool {
	return unicode.Is(prependTable, r)
}

// spacingMarkExcludeTable lists spacing combining marks (general category
// Mc) that UAX #29 does not classify as SpacingMark; SpacingMark rejects
// them (here, three Myanmar signs).
var spacingMarkExcludeTable = rangetable.New(
	0x102B, 0x102C, 0x1038,
)

// SpacingMark is defined here: https://unicode.org/reports/tr29/#SpacingMark
func SpacingMark(r rune) bool {
	if unicode.Is(spacingMarkExcludeTable, r) {
		return false
	}
	return unicode.Is(unicode.Mc, r)
}

// GraphemeExtend is defined here: https://unicode.org/reports/tr29/#Extend
// Like WordExtend, but also includes the emoji modifier (skin tone) range,
// which the Grapheme_Cluster_Break property classifies as Extend even
// though the separate Emoji_Modifier property is used by the legacy GB10
// pairing rule this library implements.
func GraphemeExtend(r rune) bool {
	if EModifier(r) {
		return true
	}
	return WordExtend(r)
}

// Hangul syllable block, per https://unicode.org/reports/tr29/#Hangul_Syllable_Type.
const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

// L is a Hangul leading consonant (Choseong).
func L(r rune) bool {
	return (r >= 0x1100 && r <= 0x115F) || (r >= 0xA960 && r <= 0xA97C)
}

// V is a Hangul vowel (Jungseong).
func V(r rune) bool {
	return (r >= 0x1160 && r <= 0x11A7) || (r >= 0xD7B0 && r <= 0xD7C6)
}

// T is a Hangul trailing consonant (Jongseong).
func T(r rune) bool {
	return (r >= 0x11A8 && r <= 0x11FF) || (r >= 0xD7CB && r <= 0xD7FB)
}

// isPrecomposedSyllable reports whether r is in the precomposed Hangul
// syllable block, and whether it has a trailing consonant (LVT) or not (LV).
func isPrecomposedSyllable(r rune) (isSyllable, hasTrailing bool) {
	if r < hangulSBase || r >= hangulSBase+hangulSCount {
		return false, false
	}
	sIndex := int(r) - hangulSBase
	return true, sIndex%hangulTCount != 0
}

// LV is a precomposed Hangul syllable with no trailing consonant.
func LV(r rune) bool {
	isSyllable, hasTrailing := isPrecomposedSyllable(r)
	return isSyllable && !hasTrailing
}

// LVT is a precomposed Hangul syllable with a trailing consonant.
func LVT(r rune) bool {
	isSyllable, hasTrailing := isPrecomposedSyllable(r)
	return isSyllable && hasTrailing
}

// eBaseTable lists representative Emoji_Modifier_Base code points: emoji
// that combine with a following skin-tone modifier (GB10).
var eBaseTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x261D, 0x261D, 1},
		{0x26F9, 0x26F9, 1},
		{0x270A, 0x270D, 1},
	},
	R32: []unicode.Range32{
		{0x1F385, 0x1F385, 1},
		{0x1F3C2, 0x1F3C4, 1},
		{0x1F3C7, 0x1F3C7, 1},
		{0x1F3CA, 0x1F3CC, 1},
		{0x1F442, 0x1F443, 1},
		{0x1F446, 0x1F450, 1},
		{0x1F470, 0x1F478, 1},
		{0x1F47C, 0x1F47C, 1},
		{0x1F481, 0x1F483, 1},
		{0x1F485, 0x1F487, 1},
		{0x1F48F, 0x1F48F, 1},
		{0x1F491, 0x1F491, 1},
		{0x1F4AA, 0x1F4AA, 1},
		{0x1F574, 0x1F575, 1},
		{0x1F57A, 0x1F57A, 1},
		{0x1F590, 0x1F590, 1},
		{0x1F595, 0x1F596, 1},
		{0x1F645, 0x1F647, 1},
		{0x1F64B, 0x1F64F, 1},
		{0x1F6A3, 0x1F6A3, 1},
		{0x1F6B4, 0x1F6B6, 1},
		{0x1F6C0, 0x1F6C0, 1},
		{0x1F6CC, 0x1F6CC, 1},
		{0x1F90F, 0x1F90F, 1},
		{0x1F918, 0x1F91F, 1},
		{0x1F926, 0x1F926, 1},
		{0x1F930, 0x1F939, 1},
		{0x1F93D, 0x1F93E, 1},
		{0x1F9B5, 0x1F9B6, 1},
		{0x1F9B8, 0x1F9B9, 1},
		{0x1F9CD, 0x1F9CF, 1},
		{0x1F9D1, 0x1F9DD, 1},
	},
}

// EBase is defined here: https://unicode.org/reports/tr51/ (Emoji_Modifier_Base).
func EBase(r rune) bool {
	return unicode.Is(eBaseTable, r)
}

var eModifierTable = &unicode.RangeTable{
	R32: []unicode.Range32{
		{0x1F3FB, 0x1F3FF, 1},
	},
}

// EModifier is defined here: https://unicode.org/reports/tr51/ (Emoji_Modifier,
// the Fitzpatrick skin-tone modifiers).
func EModifier(r rune) bool {
	return unicode.Is(eModifierTable, r)
}

// eBaseGAZTable lists emoji that act as Emoji_Modifier_Base and may also
// directly follow a ZWJ in an emoji-ZWJ sequence (GB11): the person and
// family-member emoji.
var eBaseGAZTable = &unicode.RangeTable{
	R32: []unicode.Range32{
		{0x1F466, 0x1F469, 1},
		{0x1F46E, 0x1F46E, 1},
		{0x1F46F, 0x1F46F, 1},
		{0x1F471, 0x1F471, 1},
		{0x1F473, 0x1F473, 1},
		{0x1F477, 0x1F477, 1},
		{0x1F481, 0x1F482, 1},
		{0x1F486, 0x1F487, 1},
		{0x1F575, 0x1F575, 1},
		{0x1F645, 0x1F647, 1},
		{0x1F64B, 0x1F64B, 1},
		{0x1F64D, 0x1F64E, 1},
		{0x1F6A3, 0x1F6A3, 1},
		{0x1F6B4, 0x1F6B6, 1},
		{0x1F926, 0x1F926, 1},
		{0x1F937, 0x1F939, 1},
		{0x1F9B8, 0x1F9B9, 1},
		{0x1F9D1, 0x1F9DD, 1},
	},
}

// EBaseGAZ is defined here: https://unicode.org/reports/tr51/ (the subset of
// Emoji_Modifier_Base that also appears in Gender_ZWJ_Sequences).
func EBaseGAZ(r rune) bool {
	return unicode.Is(eBaseGAZTable, r)
}

// glueAfterZwjTable lists emoji that may follow a ZWJ without themselves
// being a base (e.g. the heart in "couple with heart", the speech bubble in
// gender-neutral role sequences).
var glueAfterZwjTable = rangetable.New(
	0x2764, // heavy black heart
	0x1F48B, // kiss mark
	0x1F5E8, // left speech bubble
)

// GlueAfterZwj is defined here: https://unicode.org/reports/tr51/
// (Emoji_Component values that glue onto a preceding ZWJ sequence).
func GlueAfterZwj(r rune) bool {
	return unicode.Is(glueAfterZwjTable, r)
}
