package graphemes

import "testing"

func collectForward(s string) []string {
	g := NewGraphemes(s)
	var out []string
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func collectBackward(s string) []string {
	g := NewGraphemes(s)
	var out []string
	for g.Previous() {
		out = append(out, g.Str())
	}
	// Previous yields clusters in reverse order; restore left-to-right
	// order for easy comparison against the forward case.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
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

func TestGraphemesASCII(t *testing.T) {
	want := []string{"h", "e", "l", "l", "o"}
	if got := collectForward("hello"); !equalSlices(got, want) {
		t.Errorf("forward: got %q, want %q", got, want)
	}
	if got := collectBackward("hello"); !equalSlices(got, want) {
		t.Errorf("backward: got %q, want %q", got, want)
	}
}

func TestGraphemesCRLF(t *testing.T) {
	want := []string{"a", "\r\n", "b"}
	if got := collectForward("a\r\nb"); !equalSlices(got, want) {
		t.Errorf("forward: got %q, want %q", got, want)
	}
	if got := collectBackward("a\r\nb"); !equalSlices(got, want) {
		t.Errorf("backward: got %q, want %q", got, want)
	}
}

func TestGraphemesCombiningMark(t *testing.T) {
	s := "éclair" // e + combining acute accent, then "clair"
	want := []string{"é", "c", "l", "a", "i", "r"}
	if got := collectForward(s); !equalSlices(got, want) {
		t.Errorf("forward: got %q, want %q", got, want)
	}
	if got := collectBackward(s); !equalSlices(got, want) {
		t.Errorf("backward: got %q, want %q", got, want)
	}
}

func TestGraphemesFlagPairs(t *testing.T) {
	// Three flags in a row: six Regional_Indicator code points pair up
	// 2-by-2 per GB12/GB13.
	us := "\U0001F1FA\U0001F1F8"    // US
	gb := "\U0001F1EC\U0001F1E7"    // GB
	jp := "\U0001F1EF\U0001F1F5"    // JP
	s := us + gb + jp
	want := []string{us, gb, jp}
	if got := collectForward(s); !equalSlices(got, want) {
		t.Errorf("forward: got %q, want %q", got, want)
	}
	if got := collectBackward(s); !equalSlices(got, want) {
		t.Errorf("backward: got %q, want %q", got, want)
	}
}

func TestGraphemesHangulSyllableBlock(t *testing.T) {
	// Choseong + Jungseong + Jongseong, spelled out rather than the
	// precomposed syllable, should still form one cluster (GB6-GB8).
	s := "각"
	want := []string{s}
	if got := collectForward(s); !equalSlices(got, want) {
		t.Errorf("forward: got %q, want %q", got, want)
	}
	if got := collectBackward(s); !equalSlices(got, want) {
		t.Errorf("backward: got %q, want %q", got, want)
	}
}

func TestGraphemesZWJSequence(t *testing.T) {
	// Family emoji: man + ZWJ + woman + ZWJ + girl, one cluster (GB9/GB11).
	man := "\U0001F468"
	woman := "\U0001F469"
	girl := "\U0001F467"
	zwj := "‍"
	s := man + zwj + woman + zwj + girl
	want := []string{s}
	if got := collectForward(s); !equalSlices(got, want) {
		t.Errorf("forward: got %q, want %q", got, want)
	}
	if got := collectBackward(s); !equalSlices(got, want) {
		t.Errorf("backward: got %q, want %q", got, want)
	}
}

func TestGraphemesEmojiModifier(t *testing.T) {
	// Waving hand + skin tone modifier: one cluster (GB10).
	wave := "\U0001F44B"
	tone := "\U0001F3FD"
	s := wave + tone
	want := []string{s}
	if got := collectForward(s); !equalSlices(got, want) {
		t.Errorf("forward: got %q, want %q", got, want)
	}
	if got := collectBackward(s); !equalSlices(got, want) {
		t.Errorf("backward: got %q, want %q", got, want)
	}
}

func TestGraphemesReset(t *testing.T) {
	g := NewGraphemes("ab")
	if !g.Next() || g.Str() != "a" {
		t.Fatalf("expected first cluster a")
	}
	g.Reset()
	if !g.Next() || g.Str() != "a" {
		t.Fatalf("expected first cluster a after reset")
	}
}

func TestGraphemesEmptyString(t *testing.T) {
	g := NewGraphemes("")
	if g.Next() {
		t.Error("expected Next to return false on empty string")
	}
	if g.Previous() {
		t.Error("expected Previous to return false on empty string")
	}
}

func TestGraphemesLegacyMode(t *testing.T) {
	// A spacing mark after a base letter: extended mode merges them,
	// legacy mode splits them (GB9a only applies in extended mode).
	base := "अ"        // DEVANAGARI LETTER A
	mark := "ः"   // DEVANAGARI SIGN VISARGA, a spacing mark
	s := base + mark

	ext := collectForward(s)
	if len(ext) != 1 {
		t.Errorf("extended mode: got %d clusters %q, want 1", len(ext), ext)
	}

	g := NewGraphemesLegacy(s)
	var legacy []string
	for g.Next() {
		legacy = append(legacy, g.Str())
	}
	if len(legacy) != 2 {
		t.Errorf("legacy mode: got %d clusters %q, want 2", len(legacy), legacy)
	}
}
