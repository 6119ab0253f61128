package words

type direction int

const (
	dirNone direction = iota
	dirForward
	dirBackward
)

// Words iterates over the words of a string per UAX #29 Word_Break rules,
// forward with Next or backward with Previous. Unlike the grapheme
// segmenter, words don't need a chunk-at-a-time cursor: apart from the
// Regional_Indicator pairing of WB15/WB16, which counts back over the
// preceding run of RIs, the rule set's longest lookback/lookahead (the
// MidLetter/MidNum family) reaches a single code point on either side, so
// the whole-string iterator suffices for every caller this library targets.
type Words struct {
	data       string
	start, end int
	dir        direction
}

// NewWords returns an iterator over the words of s.
func NewWords(s string) *Words {
	return &Words{data: s}
}

// Str returns the current word, including any interior whitespace or
// punctuation the rules fold into it (this is "split_word_bounds": every
// byte of s is covered by exactly one token, word or not).
func (w *Words) Str() string {
	return w.data[w.start:w.end]
}

// Bytes returns the current word as a byte slice.
func (w *Words) Bytes() []byte {
	return []byte(w.data[w.start:w.end])
}

// Positions returns the byte offsets [start, end) of the current word.
func (w *Words) Positions() (start, end int) {
	return w.start, w.end
}

// Reset returns the iterator to its initial state.
func (w *Words) Reset() {
	w.start, w.end = 0, 0
	w.dir = dirNone
}

// Next advances to the next word and reports whether one was found.
func (w *Words) Next() bool {
	w.dir = dirForward
	if w.end >= len(w.data) {
		return false
	}
	start := w.end
	w.start, w.end = start, nextBoundary(w.data, start)
	return true
}

// Previous moves to the word immediately before the current position and
// reports whether one was found. The first call on a freshly constructed
// iterator starts from the end of the string.
func (w *Words) Previous() bool {
	if w.dir == dirNone {
		w.start, w.end = len(w.data), len(w.data)
	}
	w.dir = dirBackward
	if w.start <= 0 {
		return false
	}
	end := w.start
	w.start, w.end = prevBoundary(w.data, end), end
	return true
}
