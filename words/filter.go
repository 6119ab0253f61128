package words

// IsWord reports whether s — a single token produced by a Words iterator —
// is a lexical word (contains at least one code point whose Word_Break
// category is ALetter, Hebrew_Letter, Numeric, Katakana, or ExtendNumLet)
// as opposed to a run of whitespace or ordinary punctuation. Hiragana and
// ideographic characters fall in none of these categories, so a token made
// only of them is not a word.
func IsWord(s string) bool {
	rest := s
	for len(rest) > 0 {
		cat, w := lookup(rest)
		if cat.is(AHLetter | Numeric | Katakana | ExtendNumLet) {
			return true
		}
		rest = rest[w:]
	}
	return false
}

// Lexical wraps Words, yielding only the tokens IsWord accepts. It's the
// filtered variant callers want for tokenization and search indexing,
// where whitespace and standalone punctuation aren't meaningful tokens.
type Lexical struct {
	w *Words
}

// NewLexical returns a Lexical iterator over the words of s.
func NewLexical(s string) *Lexical {
	return &Lexical{w: NewWords(s)}
}

// Next advances to the next lexical word and reports whether one was
// found.
func (l *Lexical) Next() bool {
	for l.w.Next() {
		if IsWord(l.w.Str()) {
			return true
		}
	}
	return false
}

// Str returns the current lexical word.
func (l *Lexical) Str() string {
	return l.w.Str()
}

// Bytes returns the current lexical word as a byte slice.
func (l *Lexical) Bytes() []byte {
	return l.w.Bytes()
}

// Positions returns the byte offsets [start, end) of the current lexical
// word.
func (l *Lexical) Positions() (start, end int) {
	return l.w.Positions()
}
