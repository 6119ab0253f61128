package graphemes

// GraphemeCursor is a resumable, chunk-at-a-time grapheme cluster boundary
// finder. Unlike Graphemes, it does not require the whole string to be
// resident at once: callers feed it one window ("chunk") of the text at a
// time, anchored at chunk_start within the conceptual whole string, and it
// reports either a boundary decision or an Incomplete error describing what
// additional text it needs to proceed.
//
// This mirrors the GraphemeCursor API of the Rust unicode-segmentation
// crate, which exists for editors and other callers that hold text in a
// rope or gap buffer and cannot cheaply materialize it as one contiguous
// string.
type GraphemeCursor struct {
	offset     int
	textLen    int
	isExtended bool

	pending pendingScan
}

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingRegional
	pendingEmoji
)

// pendingScan holds the state of an in-progress backward scan across chunk
// boundaries, needed to resolve GB10 (Emoji) and GB12/GB13 (Regional)
// decisions whose lookback can run past the start of the current chunk.
type pendingScan struct {
	kind     pendingKind
	resolved bool
	frontier int // next EndOffset to request via PreContextError, if unresolved

	riCount   int  // pendingRegional: count of consecutive Regional_Indicator runes found so far
	emojiBase bool // pendingEmoji: whether the Extend run was preceded by an E_Base/E_Base_GAZ
}

// NewCursor creates a cursor positioned at offset within a string of the
// given total length. isExtended selects extended grapheme cluster mode
// (GB9a/GB9b are honored) versus legacy mode (they are not).
func NewCursor(offset, textLen int, isExtended bool) *GraphemeCursor {
	return &GraphemeCursor{offset: offset, textLen: textLen, isExtended: isExtended}
}

// CurCursor returns the cursor's current byte offset.
func (c *GraphemeCursor) CurCursor() int {
	return c.offset
}

// SetCursor moves the cursor to offset, discarding any in-progress
// cross-chunk scan. Callers resuming after an Incomplete error that they
// resolved by re-deriving the boundary some other way use this to
// reposition before continuing.
func (c *GraphemeCursor) SetCursor(offset int) {
	c.offset = offset
	c.pending = pendingScan{}
}

// ProvideContext feeds the cursor an earlier chunk of text, ending exactly
// at the EndOffset named by the most recent PreContextError, to let it
// continue a backward scan that ran off the start of the previous chunk.
// After calling ProvideContext, the caller retries the IsBoundary (or
// NextBoundary/PrevBoundary) call that produced the error; it may return
// another PreContextError with an earlier EndOffset if chunk still wasn't
// enough.
func (c *GraphemeCursor) ProvideContext(chunk string, chunkStart int) {
	switch c.pending.kind {
	case pendingRegional:
		if c.pending.resolved {
			return
		}
		pos := len(chunk)
		for pos > 0 {
			cat, w := lookupLast(chunk[:pos])
			if cat != RegionalIndicator {
				c.pending.resolved = true
				return
			}
			c.pending.riCount++
			pos -= w
		}
		if chunkStart == 0 {
			c.pending.resolved = true
			return
		}
		c.pending.frontier = chunkStart
	case pendingEmoji:
		if c.pending.resolved {
			return
		}
		pos := len(chunk)
		for pos > 0 {
			cat, w := lookupLast(chunk[:pos])
			if cat == Extend {
				pos -= w
				continue
			}
			c.pending.emojiBase = cat.is(EBase | EBaseGAZ)
			c.pending.resolved = true
			return
		}
		if chunkStart == 0 {
			c.pending.resolved = true
			c.pending.emojiBase = false
			return
		}
		c.pending.frontier = chunkStart
	}
}

// IsBoundary reports whether the cursor's current offset is a grapheme
// cluster boundary, given chunk as the window of text starting at byte
// chunkStart. chunk must cover the cursor's offset (chunkStart <= offset <=
// chunkStart+len(chunk)); if it covers too little text on either side to
// decide, IsBoundary returns a PrevChunkError, NextChunkError, or
// PreContextError describing what more it needs.
func (c *GraphemeCursor) IsBoundary(chunk string, chunkStart int) (bool, error) {
	if c.offset < chunkStart || c.offset > chunkStart+len(chunk) {
		return false, ErrInvalidOffset
	}
	if c.offset == 0 {
		return true, nil // GB1: sot
	}
	if c.offset == c.textLen {
		return true, nil // GB2: eot
	}

	rel := c.offset - chunkStart

	var before Category
	switch {
	case rel > 0:
		var w int
		before, w = lookupLast(chunk[:rel])
		if w == 0 {
			return false, ErrInvalidOffset
		}
	case chunkStart == 0:
		return true, nil
	default:
		return false, &PrevChunkError{}
	}

	var after Category
	switch {
	case rel < len(chunk):
		var w int
		after, w = lookup(chunk[rel:])
		if w == 0 {
			return false, ErrInvalidOffset
		}
	case chunkStart+len(chunk) == c.textLen:
		return true, nil
	default:
		return false, &NextChunkError{}
	}

	switch classify(before, after) {
	case NotBreak:
		return false, nil
	case Break:
		return true, nil
	case CheckCRLF:
		return !(before == CR && after == LF), nil
	case Extended:
		return !c.isExtended, nil
	case Regional:
		return c.regionalBoundary(chunk, chunkStart, rel)
	case Emoji:
		return c.emojiBoundary(chunk, chunkStart, rel)
	default:
		return true, nil
	}
}

// regionalBoundary resolves GB12/GB13: a boundary occurs between two
// Regional_Indicator code points only when an even number of consecutive
// RIs immediately precede the candidate boundary.
func (c *GraphemeCursor) regionalBoundary(chunk string, chunkStart, rel int) (bool, error) {
	if c.pending.kind != pendingRegional {
		c.pending = pendingScan{kind: pendingRegional}
		pos := rel
		for pos > 0 {
			cat, w := lookupLast(chunk[:pos])
			if cat != RegionalIndicator {
				c.pending.resolved = true
				break
			}
			c.pending.riCount++
			pos -= w
		}
		if !c.pending.resolved {
			if chunkStart == 0 {
				c.pending.resolved = true
			} else {
				c.pending.frontier = chunkStart
			}
		}
	}
	if !c.pending.resolved {
		return false, &PreContextError{EndOffset: c.pending.frontier}
	}
	even := c.pending.riCount%2 == 0
	c.pending = pendingScan{}
	return even, nil
}

// emojiBoundary resolves GB10: Extend* (E_Base | E_Base_GAZ) x E_Modifier
// does not break, so this scans back across the Extend run before the
// modifier to find what precedes it.
func (c *GraphemeCursor) emojiBoundary(chunk string, chunkStart, rel int) (bool, error) {
	if c.pending.kind != pendingEmoji {
		c.pending = pendingScan{kind: pendingEmoji}
		pos := rel
		for pos > 0 {
			cat, w := lookupLast(chunk[:pos])
			if cat == Extend {
				pos -= w
				continue
			}
			c.pending.emojiBase = cat.is(EBase | EBaseGAZ)
			c.pending.resolved = true
			break
		}
		if !c.pending.resolved {
			if chunkStart == 0 {
				c.pending.resolved = true
				c.pending.emojiBase = false
			} else {
				c.pending.frontier = chunkStart
			}
		}
	}
	if !c.pending.resolved {
		return false, &PreContextError{EndOffset: c.pending.frontier}
	}
	found := c.pending.emojiBase
	c.pending = pendingScan{}
	return !found, nil
}

// NextBoundary advances the cursor to the next grapheme cluster boundary
// strictly after its current offset (or leaves it at the end of the text
// if it is already there) and returns the new offset. chunk and
// chunkStart must cover the cursor's position the same way they do for
// IsBoundary; on an Incomplete error the cursor's offset is left unchanged
// so the call can be retried once the caller has resolved it.
func (c *GraphemeCursor) NextBoundary(chunk string, chunkStart int) (int, error) {
	for {
		if c.offset >= c.textLen {
			c.offset = c.textLen
			return c.offset, nil
		}
		rel := c.offset - chunkStart
		if rel < 0 {
			return 0, &PrevChunkError{}
		}
		if rel >= len(chunk) {
			return 0, &NextChunkError{}
		}
		_, w := lookup(chunk[rel:])
		if w == 0 {
			return 0, ErrInvalidOffset
		}
		c.offset += w
		boundary, err := c.IsBoundary(chunk, chunkStart)
		if err != nil {
			c.offset -= w
			return 0, err
		}
		if boundary {
			return c.offset, nil
		}
	}
}

// PrevBoundary moves the cursor to the previous grapheme cluster boundary
// strictly before its current offset and returns the new offset. Same
// chunk/chunkStart and Incomplete-retry contract as NextBoundary.
func (c *GraphemeCursor) PrevBoundary(chunk string, chunkStart int) (int, error) {
	for {
		if c.offset <= 0 {
			c.offset = 0
			return 0, nil
		}
		rel := c.offset - chunkStart
		if rel <= 0 {
			return 0, &PrevChunkError{}
		}
		if rel > len(chunk) {
			return 0, &NextChunkError{}
		}
		_, w := lookupLast(chunk[:rel])
		if w == 0 {
			return 0, ErrInvalidOffset
		}
		c.offset -= w
		boundary, err := c.IsBoundary(chunk, chunkStart)
		if err != nil {
			c.offset += w
			return 0, err
		}
		if boundary {
			return c.offset, nil
		}
	}
}
