package graphemes

// direction tracks which way a Graphemes iterator last moved, so that
// switching between Next and Previous can invalidate the cache the other
// direction built up.
type direction int

const (
	dirNone direction = iota
	dirForward
	dirBackward
)

// Graphemes iterates over the grapheme clusters of a string, forward with
// Next or backward with Previous, without needing a GraphemeCursor's
// chunk-at-a-time resumption protocol: the whole string is available, so
// lookback for GB10/GB12/GB13 can read it directly.
//
// A Graphemes value is not safe for concurrent use, but is cheap to create;
// the zero value is not usable, use NewGraphemes or NewGraphemesLegacy.
type Graphemes struct {
	data       string
	isExtended bool

	start, end int
	dir        direction

	// backRiRun/backRiRunAt cache the parity of the Regional_Indicator run
	// ending at byte offset backRiRunAt, so that Previous does not rescan
	// an entire run of flag-emoji code points from its start on every
	// step backward through it.
	backRiRun   int
	backRiRunAt int
}

// NewGraphemes returns an iterator over s in extended grapheme cluster mode
// (GB9a/GB9b honored: a SpacingMark joins the cluster before it and a
// Prepend joins the code point after it).
func NewGraphemes(s string) *Graphemes {
	return &Graphemes{data: s, isExtended: true, backRiRunAt: -1}
}

// NewGraphemesLegacy returns an iterator over s in legacy grapheme cluster
// mode, where SpacingMark and Prepend code points each start their own
// cluster rather than extending the adjacent one.
func NewGraphemesLegacy(s string) *Graphemes {
	return &Graphemes{data: s, isExtended: false, backRiRunAt: -1}
}

// Str returns the current grapheme cluster as a string.
func (g *Graphemes) Str() string {
	return g.data[g.start:g.end]
}

// Bytes returns the current grapheme cluster as a byte slice.
func (g *Graphemes) Bytes() []byte {
	return []byte(g.data[g.start:g.end])
}

// Positions returns the byte offsets [start, end) of the current grapheme
// cluster within the original string.
func (g *Graphemes) Positions() (start, end int) {
	return g.start, g.end
}

// Reset returns the iterator to its initial state, as if newly constructed.
func (g *Graphemes) Reset() {
	g.start, g.end = 0, 0
	g.dir = dirNone
	g.resetRunCache()
}

func (g *Graphemes) resetRunCache() {
	g.backRiRun, g.backRiRunAt = 0, -1
}

// Next advances to the next grapheme cluster and reports whether one was
// found. Call Str, Bytes, or Positions to read it.
func (g *Graphemes) Next() bool {
	if g.dir == dirBackward {
		g.resetRunCache()
	}
	g.dir = dirForward

	if g.end >= len(g.data) {
		return false
	}

	start := g.end
	pos := start
	before, w := lookup(g.data[pos:])
	pos += w

	for pos < len(g.data) {
		after, w2 := lookup(g.data[pos:])
		brk := false

		switch classify(before, after) {
		case NotBreak:
		case Break:
			brk = true
		case CheckCRLF:
			brk = !(before == CR && after == LF)
		case Extended:
			brk = !g.isExtended
		case Regional:
			if countTrailingRI(g.data[start:pos])%2 == 0 {
				brk = true
			}
		case Emoji:
			brk = !precededByEmojiBase(g.data[start:pos])
		}

		if brk {
			break
		}
		before = after
		pos += w2
	}

	g.start, g.end = start, pos
	return true
}

// Previous moves to the grapheme cluster immediately before the current
// position and reports whether one was found. Call Str, Bytes, or
// Positions to read it. The first call to Previous on a freshly
// constructed iterator starts from the end of the string.
func (g *Graphemes) Previous() bool {
	if g.dir == dirForward {
		g.resetRunCache()
	}
	if g.dir == dirNone {
		g.start, g.end = len(g.data), len(g.data)
	}
	g.dir = dirBackward

	if g.start <= 0 {
		return false
	}

	end := g.start
	pos := end
	after, w := lookupLast(g.data[:pos])
	pos -= w
	if after == RegionalIndicator && g.backRiRunAt == end {
		// The cached run ending at end includes after; step past it.
		g.backRiRun--
		g.backRiRunAt = pos
	}

	for pos > 0 {
		before, w2 := lookupLast(g.data[:pos])
		brk := false
		outcome := classify(before, after)

		switch outcome {
		case NotBreak:
		case Break:
			brk = true
		case CheckCRLF:
			brk = !(before == CR && after == LF)
		case Extended:
			brk = !g.isExtended
		case Regional:
			if g.backRiRunAt != pos {
				g.backRiRun = countTrailingRI(g.data[:pos])
				g.backRiRunAt = pos
			}
			if g.backRiRun%2 == 0 {
				brk = true
			}
		case Emoji:
			brk = !precededByEmojiBase(g.data[:pos])
		}

		if brk {
			break
		}
		after = before
		pos -= w2
		if outcome == Regional {
			g.backRiRun--
			g.backRiRunAt = pos
		}
	}

	g.start, g.end = pos, end
	return true
}

// countTrailingRI returns the number of consecutive Regional_Indicator
// runes ending at the end of s.
func countTrailingRI(s string) int {
	count := 0
	rest := s
	for len(rest) > 0 {
		cat, w := lookupLast(rest)
		if cat != RegionalIndicator {
			break
		}
		count++
		rest = rest[:len(rest)-w]
	}
	return count
}

// precededByEmojiBase reports whether the Extend run at the end of s is
// preceded by an E_Base or E_Base_GAZ code point, resolving GB10.
func precededByEmojiBase(s string) bool {
	rest := s
	for len(rest) > 0 {
		cat, w := lookupLast(rest)
		if cat == Extend {
			rest = rest[:len(rest)-w]
			continue
		}
		return cat.is(EBase | EBaseGAZ)
	}
	return false
}
