package sentences

import (
	"bufio"
	"io"
)

// SplitFunc is a bufio.SplitFunc that splits on sentence boundaries, for
// use with bufio.Scanner.Split when streaming input too large to read into
// memory first.
func SplitFunc(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	s := string(data)
	end := nextBoundary(s, 0)
	if end == 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	if end == len(data) && !atEOF {
		// SB8's unbounded lookahead for an eventual Lower means a sentence
		// boundary found at the very end of the buffer might still be
		// undone by more input; ask bufio.Scanner to grow the buffer first.
		return 0, nil, nil
	}
	return end, data[:end], nil
}

// NewScanner returns a bufio.Scanner over r that yields one sentence per
// Scan.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(SplitFunc)
	return sc
}

// Segmenter wraps a bufio.Scanner configured with SplitFunc, giving
// callers a narrower Next/Bytes/Text/Err surface for reading sentences from
// an io.Reader one at a time.
type Segmenter struct {
	scanner *bufio.Scanner
}

// NewSegmenter returns a Segmenter over r.
func NewSegmenter(r io.Reader) *Segmenter {
	return &Segmenter{scanner: NewScanner(r)}
}

// Next advances to the next sentence and reports whether one was found.
func (s *Segmenter) Next() bool {
	return s.scanner.Scan()
}

// Bytes returns the current sentence.
func (s *Segmenter) Bytes() []byte {
	return s.scanner.Bytes()
}

// Text returns the current sentence as a string.
func (s *Segmenter) Text() string {
	return s.scanner.Text()
}

// Err returns the first non-EOF error encountered while reading.
func (s *Segmenter) Err() error {
	return s.scanner.Err()
}
