package sentences

// Sentences iterates forward over the sentences of a string per UAX #29
// Sentence_Break rules. Unlike the word and grapheme segmenters, this
// library does not offer a reverse sentence iterator: SB8's lookahead for
// an eventual Lower makes a mirrored backward rule set materially more
// intricate for a boundary type callers overwhelmingly consume forward
// (paragraph-to-sentence splitting, summarization windows).
type Sentences struct {
	data       string
	start, end int
}

// NewSentences returns an iterator over the sentences of s.
func NewSentences(s string) *Sentences {
	return &Sentences{data: s}
}

// Str returns the current sentence, including any trailing whitespace the
// rules fold into it.
func (it *Sentences) Str() string {
	return it.data[it.start:it.end]
}

// Bytes returns the current sentence as a byte slice.
func (it *Sentences) Bytes() []byte {
	return []byte(it.data[it.start:it.end])
}

// Positions returns the byte offsets [start, end) of the current sentence.
func (it *Sentences) Positions() (start, end int) {
	return it.start, it.end
}

// Reset returns the iterator to its initial state.
func (it *Sentences) Reset() {
	it.start, it.end = 0, 0
}

// Next advances to the next sentence and reports whether one was found.
func (it *Sentences) Next() bool {
	if it.end >= len(it.data) {
		return false
	}
	start := it.end
	it.start, it.end = start, nextBoundary(it.data, start)
	return true
}
