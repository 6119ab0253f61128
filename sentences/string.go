package sentences

// Segments returns every sentence in s, in order, including trailing
// whitespace the rules fold into each one.
func Segments(s string) []string {
	it := NewSentences(s)
	var out []string
	for it.Next() {
		out = append(out, it.Str())
	}
	return out
}

// Count returns the number of sentences in s.
func Count(s string) int {
	it := NewSentences(s)
	n := 0
	for it.Next() {
		n++
	}
	return n
}
