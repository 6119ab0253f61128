package words

// Segments returns every word in s, in order, including non-lexical tokens
// (whitespace, punctuation) as their own entries.
func Segments(s string) []string {
	w := NewWords(s)
	var out []string
	for w.Next() {
		out = append(out, w.Str())
	}
	return out
}

// LexicalSegments returns every lexical word in s, in order, skipping
// whitespace- or punctuation-only tokens.
func LexicalSegments(s string) []string {
	l := NewLexical(s)
	var out []string
	for l.Next() {
		out = append(out, l.Str())
	}
	return out
}

// Count returns the number of word tokens (lexical or not) in s.
func Count(s string) int {
	w := NewWords(s)
	n := 0
	for w.Next() {
		n++
	}
	return n
}
