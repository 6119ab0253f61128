package ucd

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// SentenceSep is defined here: https://unicode.org/reports/tr29/#Sep
// (paragraph separator code points, distinct from CR/LF).
func SentenceSep(r rune) bool {
	return r == 0x2029 || unicode.Is(unicode.Zl, r) || unicode.Is(unicode.Zp, r)
}

// SentenceFormat is defined here: https://unicode.org/reports/tr29/#Format
func SentenceFormat(r rune) bool {
	return Format(r)
}

var sentenceSpTable = rangetable.Merge(unicode.Zs, rangetable.New(0x0009, 0x000B, 0x000C))

// SentenceSp is defined here: https://unicode.org/reports/tr29/#Sp
func SentenceSp(r rune) bool {
	return unicode.Is(sentenceSpTable, r)
}

// Lower is defined here: https://unicode.org/reports/tr29/#Lower
func Lower(r rune) bool {
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}

// Upper is defined here: https://unicode.org/reports/tr29/#Upper
func Upper(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsTitle(r) || unicode.Is(unicode.Other_Uppercase, r)
}

// OLetter is defined here: https://unicode.org/reports/tr29/#OLetter
// (an alphabetic code point that is not Lower, Upper, a CJK ideograph, or a
// script this rule otherwise treats specially).
func OLetter(r rune) bool {
	if Lower(r) || Upper(r) {
		return false
	}
	switch {
	case
		unicode.Is(unicode.Hiragana, r),
		unicode.Is(unicode.Katakana, r),
		unicode.Is(unicode.Ideographic, r):
		return false
	}
	return Alphabetic(r)
}

var aTermTable = rangetable.New(
	'.',
	0x2024, // one dot leader
	0xFE52,
	0xFF0E,
)

// ATerm is defined here: https://unicode.org/reports/tr29/#ATerm
func ATerm(r rune) bool {
	return unicode.Is(aTermTable, r)
}

var sTermTable = rangetable.New(
	'!', '?',
	0x203C, // double exclamation mark
	0x203D, // interrobang
	0x2047, 0x2048, 0x2049,
	0x2E18, // inverted interrobang
	0xFE56, 0xFE57,
	0xFF01, 0xFF1F,
)

// STerm is defined here: https://unicode.org/reports/tr29/#STerm
func STerm(r rune) bool {
	return unicode.Is(sTermTable, r)
}

// Close is defined here: https://unicode.org/reports/tr29/#Close
// (opening/closing punctuation — quotes, brackets, parentheses). The ASCII
// quotation mark and apostrophe are Po by general category but are listed
// explicitly as Close in the UCD's SentenceBreakProperty data.
func Close(r rune) bool {
	switch r {
	case '"', '\'':
		return true
	}
	switch {
	case
		unicode.Is(unicode.Ps, r),
		unicode.Is(unicode.Pe, r),
		unicode.Is(unicode.Pi, r),
		unicode.Is(unicode.Pf, r):
		return true
	}
	return false
}

var sContinueTable = rangetable.New(
	',', ':', ';',
	0x3001, 0x3002, // ideographic comma/full stop
	0xFF0C, 0xFF1B,
)

// SContinue is defined here: https://unicode.org/reports/tr29/#SContinue
func SContinue(r rune) bool {
	return unicode.Is(sContinueTable, r)
}
