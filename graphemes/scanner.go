package graphemes

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// SplitFunc is a bufio.SplitFunc that splits on grapheme cluster
// boundaries in extended mode. Use it with bufio.Scanner.Split for
// streaming input too large, or too open-ended, to read into memory first.
func SplitFunc(data []byte, atEOF bool) (advance int, token []byte, err error) {
	return splitFunc(data, atEOF, true)
}

// SplitFuncLegacy is SplitFunc in legacy grapheme cluster mode.
func SplitFuncLegacy(data []byte, atEOF bool) (advance int, token []byte, err error) {
	return splitFunc(data, atEOF, false)
}

func splitFunc(data []byte, atEOF bool, isExtended bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if !atEOF {
		// Hold back a trailing incomplete UTF-8 sequence until the rest of
		// it has been read, so it is never classified byte by byte.
		for i := len(data) - 1; i >= 0 && i > len(data)-utf8.UTFMax; i-- {
			if utf8.RuneStart(data[i]) {
				if !utf8.FullRune(data[i:]) {
					data = data[:i]
				}
				break
			}
		}
	}

	g := &Graphemes{data: string(data), isExtended: isExtended, backRiRunAt: -1}
	if !g.Next() {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	if g.end == len(data) && !atEOF {
		// The cluster may still be extended by code points in the next
		// read; ask bufio.Scanner to grow the buffer before deciding.
		return 0, nil, nil
	}
	return g.end, data[g.start:g.end], nil
}

// NewScanner returns a bufio.Scanner over r that yields one grapheme
// cluster per Scan, in extended mode.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(SplitFunc)
	return sc
}

// NewScannerLegacy is NewScanner in legacy grapheme cluster mode.
func NewScannerLegacy(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(SplitFuncLegacy)
	return sc
}

// Segmenter wraps a bufio.Scanner configured with SplitFunc, giving callers
// a narrower Next/Bytes/Text/Err surface for reading grapheme clusters from
// an io.Reader one at a time without pulling in bufio.Scanner's buffer
// tuning knobs.
type Segmenter struct {
	scanner *bufio.Scanner
}

// NewSegmenter returns a Segmenter over r in extended mode.
func NewSegmenter(r io.Reader) *Segmenter {
	return &Segmenter{scanner: NewScanner(r)}
}

// NewSegmenterLegacy is NewSegmenter in legacy grapheme cluster mode.
func NewSegmenterLegacy(r io.Reader) *Segmenter {
	return &Segmenter{scanner: NewScannerLegacy(r)}
}

// Next advances to the next grapheme cluster and reports whether one was
// found.
func (s *Segmenter) Next() bool {
	return s.scanner.Scan()
}

// Bytes returns the current grapheme cluster.
func (s *Segmenter) Bytes() []byte {
	return s.scanner.Bytes()
}

// Text returns the current grapheme cluster as a string.
func (s *Segmenter) Text() string {
	return s.scanner.Text()
}

// Err returns the first non-EOF error encountered while reading.
func (s *Segmenter) Err() error {
	return s.scanner.Err()
}
