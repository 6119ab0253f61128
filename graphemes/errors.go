package graphemes

import "fmt"

// Incomplete is the interface implemented by every error a GraphemeCursor
// can return when it cannot decide a boundary from the chunk(s) it has been
// given so far. Callers distinguish the specific case with errors.As.
type Incomplete interface {
	error
	incomplete()
}

// PreContextError means the cursor needs the caller to call ProvideContext
// with the text strictly before EndOffset before it can resolve a boundary
// that depends on context outside the current chunk (for example, a long
// run of Regional_Indicator or Extend code points that may cross a chunk
// boundary).
type PreContextError struct {
	EndOffset int
}

func (e *PreContextError) Error() string {
	return fmt.Sprintf("graphemes: need pre-context ending at offset %d", e.EndOffset)
}

func (e *PreContextError) incomplete() {}

// PrevChunkError means the cursor's current chunk doesn't extend far
// enough backward to resolve a boundary near its start; the caller must
// retry the call with a chunk that starts earlier and still covers the
// cursor's offset.
type PrevChunkError struct{}

func (e *PrevChunkError) Error() string {
	return "graphemes: need an earlier chunk of the string"
}

func (e *PrevChunkError) incomplete() {}

// NextChunkError means the cursor's current chunk doesn't extend far
// enough forward to resolve a boundary near its end; the caller must retry
// the call with a chunk that extends further forward and still covers the
// cursor's offset.
type NextChunkError struct{}

func (e *NextChunkError) Error() string {
	return "graphemes: need a later chunk of the string"
}

func (e *NextChunkError) incomplete() {}

// ErrInvalidOffset is returned by IsBoundary, NextBoundary, and
// PrevBoundary when the cursor's offset lies outside the bounds of the
// chunk they were given. It implements Incomplete like the other cursor
// errors, but reports a caller contract violation rather than a need for
// more text.
var ErrInvalidOffset = &invalidOffsetError{}

type invalidOffsetError struct{}

func (e *invalidOffsetError) Error() string {
	return "graphemes: offset is not a valid rune boundary within the chunk"
}

func (e *invalidOffsetError) incomplete() {}
