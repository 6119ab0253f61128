// Package transform provides a few handy post-segmentation conveniences —
// case-folding, normalization, and diacritic removal — for callers who want
// to clean up a token right after a words or sentences iterator yields it.
// It does not re-specify either concern as a segmentation algorithm; it is
// a thin wrapper over golang.org/x/text/unicode/norm, golang.org/x/text/cases,
// and golang.org/x/text/runes, which can accept anything that conforms to
// the transform.Transformer interface.
package transform

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Func transforms a byte slice into a new one.
type Func func([]byte) []byte

// Lower transforms text to lowercase, language-neutral.
var Lower Func = bytesVia(cases.Lower(language.Und))

// Upper transforms text to uppercase, language-neutral.
var Upper Func = bytesVia(cases.Upper(language.Und))

// Title transforms text to title case, language-neutral.
var Title Func = bytesVia(cases.Title(language.Und))

// NFC normalizes Unicode text to the NFC form.
// https://unicode.org/reports/tr15/#Norm_Forms
var NFC Func = norm.NFC.Bytes

// NFD normalizes Unicode text to the NFD form.
// https://unicode.org/reports/tr15/#Norm_Forms
var NFD Func = norm.NFD.Bytes

// NFKC normalizes Unicode text to the NFKC form.
// https://unicode.org/reports/tr15/#Norm_Forms
var NFKC Func = norm.NFKC.Bytes

// NFKD normalizes Unicode text to the NFKD form.
// https://unicode.org/reports/tr15/#Norm_Forms
var NFKD Func = norm.NFKD.Bytes

// RemoveDiacritics 'flattens' characters with diacritics, such as accents.
// For example, café → cafe, façade → facade. It decomposes to NFD, drops
// nonspacing marks, and recomposes, so its output is in NFC form.
// https://stackoverflow.com/q/24588295
var RemoveDiacritics Func = bytesVia(diacriticsTransformer())

func diacriticsTransformer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// bytesVia adapts a transform.Transformer into a Func, eliding the error:
// these transformers never fail on well-formed UTF-8 input.
func bytesVia(t transform.Transformer) Func {
	return func(b []byte) []byte {
		result, _, err := transform.Bytes(t, b)
		if err != nil {
			return b
		}
		return result
	}
}
