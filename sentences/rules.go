package sentences

// skipExtend advances p past any run of Extend or Format code points,
// which SB5 makes transparent to every other rule.
func skipExtend(s string, p int) int {
	for p < len(s) {
		cat, w := lookup(s[p:])
		if !cat.is(Extend | Format) {
			break
		}
		p += w
	}
	return p
}

// peekCategory returns the category of the first significant rune at or
// after p, skipping any of its own leading Extend/Format run, without
// consuming it. ok is false at end of string.
func peekCategory(s string, p int) (cat Category, width int, nextP int, ok bool) {
	p = skipExtend(s, p)
	if p >= len(s) {
		return Other, 0, p, false
	}
	cat, w := lookup(s[p:])
	return cat, w, p, true
}

// sb8Lookahead implements SB8's "(¬(OLetter|Upper|Lower|Sep|CR|LF|STerm|
// ATerm))* Lower" lookahead: starting at p (the position right after an
// ATerm's Close*Sp* run), it scans forward for an eventual Lower, failing
// as soon as it meets a rune that rule explicitly excludes from the run.
func sb8Lookahead(s string, p int) bool {
	for {
		cat, w, next, ok := peekCategory(s, p)
		if !ok {
			return false
		}
		switch {
		case cat.is(Lower):
			return true
		case cat.is(OLetter | Upper | Sep | CR | LF | STerm | ATerm):
			return false
		default:
			p = next + w
		}
	}
}

// nextBoundary returns the byte offset of the next Sentence_Break boundary
// after start (start itself when start is at or past the end of s),
// implementing SB1-SB11.
func nextBoundary(s string, start int) int {
	if start >= len(s) {
		return start
	}

	pos := start
	lastUpper := false // tracks whether the most recent Lower/Upper/OLetter was Upper, for SB7

	for {
		cat, w, p, ok := peekCategory(s, pos)
		if !ok {
			return len(s)
		}
		pos = p

		switch {
		case cat.is(CR):
			pos += w
			if pos < len(s) {
				if nxt, w2 := lookup(s[pos:]); nxt.is(LF) {
					return pos + w2 // SB3
				}
			}
			return pos // SB4
		case cat.is(LF | Sep):
			return pos + w // SB4

		case cat.is(Upper):
			lastUpper = true
			pos += w
			continue
		case cat.is(Lower | OLetter):
			lastUpper = false
			pos += w
			continue

		case cat.is(ATerm):
			// SB6: ATerm x Numeric
			if nc, _, _, ok := peekCategory(s, pos+w); ok && nc.is(Numeric) {
				pos += w
				lastUpper = false
				continue
			}
			// SB7: Upper ATerm x Upper
			if lastUpper {
				if nc, _, _, ok := peekCategory(s, pos+w); ok && nc.is(Upper) {
					pos += w
					lastUpper = true
					continue
				}
			}
			pos += w
			if brk, end := closeSpAndDecide(s, pos); brk {
				return end
			} else {
				pos = end
				lastUpper = false
				continue
			}

		case cat.is(STerm):
			pos += w
			if brk, end := closeSpAndDecide(s, pos); brk {
				return end
			} else {
				pos = end
				lastUpper = false
				continue
			}

		default:
			lastUpper = false
			pos += w
			continue
		}
	}
}

// closeSpAndDecide consumes the Close* Sp* run following an ATerm or
// STerm at p, then resolves SB8/SB8a/SB9/SB10/SB11: it returns brk=true
// and the boundary offset if the sentence ends there, or brk=false and the
// new scan position if the sentence continues past it.
func closeSpAndDecide(s string, p int) (brk bool, pos int) {
	for {
		cat, w, next, ok := peekCategory(s, p)
		if !ok || !cat.is(Close) {
			p = next
			break
		}
		p = next + w
	}
	for {
		cat, w, next, ok := peekCategory(s, p)
		if !ok || !cat.is(Sp) {
			p = next
			break
		}
		p = next + w
	}

	cat, w, next, ok := peekCategory(s, p)
	if !ok {
		return true, len(s)
	}
	p = next

	switch {
	case cat.is(CR):
		p += w
		if p < len(s) {
			if nxt, w2 := lookup(s[p:]); nxt.is(LF) {
				return true, p + w2 // SB9/SB10 absorb the CRLF, SB4 breaks right after
			}
		}
		return true, p
	case cat.is(LF | Sep):
		return true, p + w // SB9/SB10 absorb it, SB4 breaks right after

	case cat.is(SContinue | STerm | ATerm):
		return false, p + w // SB8a

	default:
		if sb8Lookahead(s, p) {
			return false, p // SB8: an eventual Lower follows, no break here
		}
		return true, p // SB11
	}
}
