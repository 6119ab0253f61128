package sentences

import "testing"

func collect(s string) []string {
	it := NewSentences(s)
	var out []string
	for it.Next() {
		out = append(out, it.Str())
	}
	return out
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSentencesSimple(t *testing.T) {
	s := "She left. He stayed."
	want := []string{"She left. ", "He stayed."}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesAbbreviationNotException(t *testing.T) {
	// The plain algorithm has no abbreviation dictionary: "Dr." breaks like
	// any other Upper/Lower ATerm, since the 'r' immediately preceding the
	// period is Lower, not Upper, so SB7 doesn't suppress the break either.
	s := "Dr. Smith arrived."
	want := []string{"Dr. ", "Smith arrived."}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesSB7UpperInitials(t *testing.T) {
	// SB7: Upper ATerm x Upper keeps "U.S." from breaking mid-initialism.
	s := "U.S. policy changed."
	want := []string{"U.S. policy changed."}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesSB6NumberNotBreak(t *testing.T) {
	// SB6: ATerm x Numeric keeps "3.14" from splitting at the decimal point.
	s := "Pi is 3.14 roughly."
	want := []string{"Pi is 3.14 roughly."}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesSB8LowercaseContinuation(t *testing.T) {
	// SB8: an ATerm followed eventually by a lowercase letter (skipping
	// only non-letter/non-terminator runes) does not break — "etc." here
	// reads as an abbreviation continuing the same sentence.
	s := "We bought milk, eggs, etc. at the store."
	want := []string{"We bought milk, eggs, etc. at the store."}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesSB8aSTermCloseChain(t *testing.T) {
	// SB8a: STerm/ATerm/Close/SContinue chain: a quoted question followed by
	// a comma continuation does not break before the comma clause.
	s := "Is it \"done?\", she asked."
	want := []string{"Is it \"done?\", she asked."}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesSB9ClosingQuote(t *testing.T) {
	// SB9: Close* absorbs a closing quote after the terminator, SB11 breaks
	// right after.
	s := "She said \"go.\" He left."
	want := []string{"She said \"go.\" ", "He left."}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesCRLF(t *testing.T) {
	s := "One.\r\nTwo."
	want := []string{"One.\r\n", "Two."}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesParagraphSeparator(t *testing.T) {
	s := "First. Second."
	want := []string{"First. ", "Second."}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesEmptyString(t *testing.T) {
	it := NewSentences("")
	if it.Next() {
		t.Error("expected Next to return false on empty string")
	}
}

func TestSentencesNoTerminalPunctuation(t *testing.T) {
	s := "no ending punctuation here"
	want := []string{s}
	if got := collect(s); !equalSlices(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentencesSegmentsAndCount(t *testing.T) {
	s := "One. Two. Three."
	segs := Segments(s)
	if Count(s) != len(segs) {
		t.Errorf("Count(%q) = %d, want %d", s, Count(s), len(segs))
	}
	b := []byte(s)
	bsegs := SegmentsBytes(b)
	if len(bsegs) != len(segs) {
		t.Errorf("SegmentsBytes has %d entries, want %d", len(bsegs), len(segs))
	}
	if CountBytes(b) != len(segs) {
		t.Errorf("CountBytes = %d, want %d", CountBytes(b), len(segs))
	}
}
