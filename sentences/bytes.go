package sentences

// SegmentsBytes is Segments for a byte slice. Each returned slice aliases
// b; callers that mutate or retain b beyond the call should copy instead.
func SegmentsBytes(b []byte) [][]byte {
	it := NewSentences(string(b))
	var out [][]byte
	for it.Next() {
		start, end := it.Positions()
		out = append(out, b[start:end])
	}
	return out
}

// CountBytes is Count for a byte slice.
func CountBytes(b []byte) int {
	return Count(string(b))
}
