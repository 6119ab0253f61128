package graphemes

import (
	"errors"
	"testing"
)

func TestCursorNextBoundarySequence(t *testing.T) {
	s := "ab"
	c := NewCursor(0, len(s), true)

	got, err := c.NextBoundary(s, 0)
	if err != nil || got != 1 {
		t.Fatalf("first NextBoundary = (%d, %v), want (1, nil)", got, err)
	}
	got, err = c.NextBoundary(s, 0)
	if err != nil || got != 2 {
		t.Fatalf("second NextBoundary = (%d, %v), want (2, nil)", got, err)
	}
	got, err = c.NextBoundary(s, 0)
	if err != nil || got != 2 {
		t.Fatalf("NextBoundary at end = (%d, %v), want (2, nil)", got, err)
	}
}

func TestCursorPrevBoundarySequence(t *testing.T) {
	s := "ab"
	c := NewCursor(len(s), len(s), true)

	got, err := c.PrevBoundary(s, 0)
	if err != nil || got != 1 {
		t.Fatalf("first PrevBoundary = (%d, %v), want (1, nil)", got, err)
	}
	got, err = c.PrevBoundary(s, 0)
	if err != nil || got != 0 {
		t.Fatalf("second PrevBoundary = (%d, %v), want (0, nil)", got, err)
	}
}

func TestCursorCRLFNotABoundary(t *testing.T) {
	s := "a\r\nb"
	c := NewCursor(2, len(s), true)
	boundary, err := c.IsBoundary(s, 0)
	if err != nil {
		t.Fatalf("IsBoundary: %v", err)
	}
	if boundary {
		t.Error("expected offset between CR and LF to not be a boundary")
	}
}

func TestCursorSetCursorAndCurCursor(t *testing.T) {
	c := NewCursor(0, 10, true)
	c.SetCursor(5)
	if c.CurCursor() != 5 {
		t.Errorf("CurCursor() = %d, want 5", c.CurCursor())
	}
}

func TestCursorRegionalNeedsPreContext(t *testing.T) {
	// Build a string where the chunk given to IsBoundary starts mid-way
	// through a run of three Regional_Indicator code points, forcing a
	// PreContextError so the caller must supply the missing prefix.
	ri := "\U0001F1E6" // REGIONAL INDICATOR SYMBOL LETTER A
	full := ri + ri + ri
	chunkStart := len(ri)
	chunk := full[chunkStart:] // last two RIs only

	c := NewCursor(len(ri)*2, len(full), true)
	_, err := c.IsBoundary(chunk, chunkStart)

	var preCtx *PreContextError
	if !errors.As(err, &preCtx) {
		t.Fatalf("IsBoundary = (_, %v), want a PreContextError", err)
	}
	if preCtx.EndOffset != chunkStart {
		t.Errorf("PreContextError.EndOffset = %d, want %d", preCtx.EndOffset, chunkStart)
	}

	c.ProvideContext(full[:chunkStart], 0)
	boundary, err := c.IsBoundary(chunk, chunkStart)
	if err != nil {
		t.Fatalf("IsBoundary after ProvideContext: %v", err)
	}
	// Three RIs: the first two pair up into one flag cluster, leaving the
	// third to start a cluster of its own, so this offset does break.
	if !boundary {
		t.Error("expected a boundary between the 2nd and 3rd regional indicator")
	}
}

func TestCursorChunkTooShortErrors(t *testing.T) {
	s := "ab"
	c := NewCursor(1, len(s), true)
	_, err := c.IsBoundary("a", 0)
	var nextErr *NextChunkError
	if !errors.As(err, &nextErr) {
		t.Fatalf("IsBoundary with short chunk = (_, %v), want NextChunkError", err)
	}
}

func TestCursorOffsetOutsideChunkIsInvalidOffset(t *testing.T) {
	// The cursor's offset falls entirely outside the given chunk's window
	// (not merely missing context on one side): this is a caller contract
	// violation, not a retriable Incomplete error.
	s := "abcd"
	c := NewCursor(3, len(s), true)
	_, err := c.IsBoundary("ab", 0)
	if !errors.Is(err, ErrInvalidOffset) {
		t.Fatalf("IsBoundary with offset outside chunk = (_, %v), want ErrInvalidOffset", err)
	}
}
