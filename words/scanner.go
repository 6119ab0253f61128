package words

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// SplitFunc is a bufio.SplitFunc that splits on word boundaries, for use
// with bufio.Scanner.Split when streaming input too large to read into
// memory first.
func SplitFunc(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if !atEOF {
		// Hold back a trailing incomplete UTF-8 sequence until the rest of
		// it has been read.
		for i := len(data) - 1; i >= 0 && i > len(data)-utf8.UTFMax; i-- {
			if utf8.RuneStart(data[i]) {
				if !utf8.FullRune(data[i:]) {
					data = data[:i]
				}
				break
			}
		}
	}

	s := string(data)
	end := nextBoundary(s, 0)
	if end == 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	// A break at end can depend on the rune there and the one after it.
	if _, w := utf8.DecodeRuneInString(s[end:]); end+w >= len(data) && !atEOF {
		// The token may still be extended by code points in the next
		// read (a MidLetter/MidNum separator near the buffer's edge, for
		// instance); ask bufio.Scanner to grow the buffer before deciding.
		return 0, nil, nil
	}
	return end, data[:end], nil
}

// NewScanner returns a bufio.Scanner over r that yields one word per Scan.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(SplitFunc)
	return sc
}

// Segmenter wraps a bufio.Scanner configured with SplitFunc, giving
// callers a narrower Next/Bytes/Text/Err surface for reading words from an
// io.Reader one at a time.
type Segmenter struct {
	scanner *bufio.Scanner
}

// NewSegmenter returns a Segmenter over r.
func NewSegmenter(r io.Reader) *Segmenter {
	return &Segmenter{scanner: NewScanner(r)}
}

// Next advances to the next word and reports whether one was found.
func (s *Segmenter) Next() bool {
	return s.scanner.Scan()
}

// Bytes returns the current word.
func (s *Segmenter) Bytes() []byte {
	return s.scanner.Bytes()
}

// Text returns the current word as a string.
func (s *Segmenter) Text() string {
	return s.scanner.Text()
}

// Err returns the first non-EOF error encountered while reading.
func (s *Segmenter) Err() error {
	return s.scanner.Err()
}
