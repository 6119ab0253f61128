package words

// skipExtend advances p past any run of Extend, Format, or ZWJ code points,
// which WB4 makes transparent: they attach to whatever precedes them and
// never themselves carry a word-break decision.
func skipExtend(s string, p int) int {
	for p < len(s) {
		cat, w := lookup(s[p:])
		if !cat.is(Extend | Format | ZWJ) {
			break
		}
		p += w
	}
	return p
}

// skipExtendBack is skipExtend, scanning backward from p.
func skipExtendBack(s string, p int) int {
	for p > 0 {
		cat, w := lookupLast(s[:p])
		if !cat.is(Extend | Format | ZWJ) {
			break
		}
		p -= w
	}
	return p
}

// lookaheadJoins reports whether the significant rune at or after byte
// offset p (after skipping any of its own trailing Extend/Format/ZWJ) has
// a category matching want. Used to resolve the MidLetter/MidNum family of
// rules (WB6/7/7b/7c/11/12), which only absorb the separator when the rune
// on its far side matches.
func lookaheadJoins(s string, p int, want Category) (newPos int, matched Category, ok bool) {
	if p >= len(s) {
		return 0, Other, false
	}
	cat, w := lookup(s[p:])
	if !cat.is(want) {
		return 0, Other, false
	}
	return skipExtend(s, p+w), cat, true
}

// lookbehindJoins is lookaheadJoins, scanning backward from p.
func lookbehindJoins(s string, p int, want Category) (newPos int, matched Category, ok bool) {
	if p <= 0 {
		return 0, Other, false
	}
	cat, w := lookupLast(s[:p])
	if !cat.is(want) {
		return 0, Other, false
	}
	return skipExtendBack(s, p-w), cat, true
}

// nextBoundary returns the byte offset of the next Word_Break boundary
// after start (start itself when start is at or past the end of s),
// implementing WB1-WB16 (WB3c is out of scope: this
// library's word category table has no Extended_Pictographic property, see
// the design notes on emoji-sequence handling).
func nextBoundary(s string, start int) int {
	if start >= len(s) {
		return start
	}

	first, w := lookup(s[start:])
	pos := start + w

	if first == CR {
		if pos < len(s) {
			if nxt, w2 := lookup(s[pos:]); nxt == LF {
				return pos + w2 // WB3
			}
		}
		return pos // WB3a
	}
	if first.is(LF | Newline) {
		return pos // WB3a
	}

	pos = skipExtend(s, pos) // WB4
	eff := first

	for pos < len(s) {
		raw, w := lookup(s[pos:])

		if raw.is(CR | LF | Newline) {
			return pos // WB3a: break before
		}

		switch {
		case eff == WSegSpace && raw == WSegSpace:
			// WB3d
			pos = skipExtend(s, pos+w)
			eff = raw
		case eff.is(AHLetter) && raw.is(AHLetter):
			// WB5
			pos = skipExtend(s, pos+w)
			eff = raw
		case eff.is(AHLetter) && raw.is(MidLetter|MidNumLetQ):
			// WB6/WB7
			if n, matched, ok := lookaheadJoins(s, pos+w, AHLetter); ok {
				pos, eff = n, matched
			} else if eff == HebrewLetter && raw == SingleQuote {
				// WB7a
				pos = skipExtend(s, pos+w)
				eff = raw
			} else {
				return pos
			}
		case eff == HebrewLetter && raw == SingleQuote:
			// WB7a
			pos = skipExtend(s, pos+w)
			eff = raw
		case eff == HebrewLetter && raw == DoubleQuote:
			// WB7b/WB7c
			if n, matched, ok := lookaheadJoins(s, pos+w, HebrewLetter); ok {
				pos, eff = n, matched
			} else {
				return pos
			}
		case eff.is(Numeric) && raw.is(Numeric):
			// WB8
			pos = skipExtend(s, pos+w)
			eff = raw
		case eff.is(AHLetter) && raw.is(Numeric):
			// WB9
			pos = skipExtend(s, pos+w)
			eff = raw
		case eff.is(Numeric) && raw.is(AHLetter):
			// WB10
			pos = skipExtend(s, pos+w)
			eff = raw
		case eff.is(Numeric) && raw.is(MidNum|MidNumLetQ):
			// WB11/WB12
			if n, matched, ok := lookaheadJoins(s, pos+w, Numeric); ok {
				pos, eff = n, matched
			} else {
				return pos
			}
		case eff.is(Katakana) && raw.is(Katakana):
			// WB13
			pos = skipExtend(s, pos+w)
			eff = raw
		case eff.is(AHLetter|Numeric|Katakana|ExtendNumLet) && raw.is(ExtendNumLet):
			// WB13a
			pos = skipExtend(s, pos+w)
			eff = raw
		case eff.is(ExtendNumLet) && raw.is(AHLetter|Numeric|Katakana):
			// WB13b
			pos = skipExtend(s, pos+w)
			eff = raw
		case eff.is(RegionalIndicator) && raw.is(RegionalIndicator):
			// WB15/WB16
			if countTrailingRI(s[start:pos])%2 == 1 {
				pos = skipExtend(s, pos+w)
				eff = raw
			} else {
				return pos
			}
		default:
			return pos // WB999
		}
	}

	return pos
}

// prevBoundary is nextBoundary, scanning backward from end to find the
// boundary immediately before it. The rule conditions mirror nextBoundary
// exactly; only the direction of traversal (and hence which side of a pair
// is `raw` vs `eff`) differs.
func prevBoundary(s string, end int) int {
	if end <= 0 {
		return 0
	}

	last, w := lookupLast(s[:end])
	pos := end - w

	if last == LF {
		if pos > 0 {
			if prev, w2 := lookupLast(s[:pos]); prev == CR {
				return pos - w2 // WB3
			}
		}
		return pos // WB3a
	}
	if last.is(CR | Newline) {
		return pos // WB3a
	}

	pos = skipExtendBack(s, pos)
	eff := last

	for pos > 0 {
		raw, w := lookupLast(s[:pos])

		if raw.is(CR | LF | Newline) {
			return pos
		}

		switch {
		case eff == WSegSpace && raw == WSegSpace:
			pos = skipExtendBack(s, pos-w)
			eff = raw
		case eff.is(AHLetter) && raw.is(AHLetter):
			pos = skipExtendBack(s, pos-w)
			eff = raw
		case eff.is(AHLetter) && raw.is(MidLetter|MidNumLetQ):
			if n, matched, ok := lookbehindJoins(s, pos-w, AHLetter); ok {
				pos, eff = n, matched
			} else {
				return pos
			}
		case eff == SingleQuote && raw == HebrewLetter:
			pos = skipExtendBack(s, pos-w)
			eff = raw
		case eff.is(HebrewLetter) && raw == DoubleQuote:
			if n, matched, ok := lookbehindJoins(s, pos-w, HebrewLetter); ok {
				pos, eff = n, matched
			} else {
				return pos
			}
		case eff.is(Numeric) && raw.is(Numeric):
			pos = skipExtendBack(s, pos-w)
			eff = raw
		case eff.is(Numeric) && raw.is(AHLetter):
			pos = skipExtendBack(s, pos-w)
			eff = raw
		case eff.is(AHLetter) && raw.is(Numeric):
			pos = skipExtendBack(s, pos-w)
			eff = raw
		case eff.is(Numeric) && raw.is(MidNum|MidNumLetQ):
			if n, matched, ok := lookbehindJoins(s, pos-w, Numeric); ok {
				pos, eff = n, matched
			} else {
				return pos
			}
		case eff.is(Katakana) && raw.is(Katakana):
			pos = skipExtendBack(s, pos-w)
			eff = raw
		case eff.is(ExtendNumLet) && raw.is(AHLetter|Numeric|Katakana|ExtendNumLet):
			pos = skipExtendBack(s, pos-w)
			eff = raw
		case eff.is(AHLetter|Numeric|Katakana) && raw.is(ExtendNumLet):
			pos = skipExtendBack(s, pos-w)
			eff = raw
		case eff.is(RegionalIndicator) && raw.is(RegionalIndicator):
			if countTrailingRI(s[:pos])%2 == 1 {
				pos = skipExtendBack(s, pos-w)
				eff = raw
			} else {
				return pos
			}
		default:
			return pos
		}
	}

	return pos
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
