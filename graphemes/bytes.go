package graphemes

// SegmentsBytes returns every grapheme cluster in b, in order, in extended
// grapheme cluster mode. Each returned slice aliases b; callers that mutate
// or retain b beyond the call should copy instead.
func SegmentsBytes(b []byte) [][]byte {
	g := NewGraphemes(string(b))
	var out [][]byte
	for g.Next() {
		start, end := g.Positions()
		out = append(out, b[start:end])
	}
	return out
}

// CountBytes is Count for a byte slice.
func CountBytes(b []byte) int {
	return Count(string(b))
}
