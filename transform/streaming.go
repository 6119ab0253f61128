package transform

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// LowerTransformer and UpperTransformer expose the same case-folding as
// Lower and Upper, but as transform.Transformer values so they can be
// chained with transform.NewReader ahead of a words.NewScanner or
// sentences.NewScanner — folding a stream's case before segmenting it,
// without buffering the whole input first.
var (
	LowerTransformer transform.Transformer = cases.Lower(language.Und)
	UpperTransformer transform.Transformer = cases.Upper(language.Und)

	// DiacriticsTransformer removes diacritics from a stream, as
	// RemoveDiacritics does for a byte slice.
	DiacriticsTransformer transform.Transformer = diacriticsTransformer()
)
