package graphemes

import "testing"

func TestLookupBasics(t *testing.T) {
	cases := []struct {
		s    string
		cat  Category
		want int
	}{
		{"a", Any, 1},
		{"\r", CR, 1},
		{"\n", LF, 1},
		{"̀", Extend, 2},        // combining grave accent
		{"‍", ZWJ, 3},           // ZERO WIDTH JOINER
		{"\U0001F1E6", RegionalIndicator, 4}, // REGIONAL INDICATOR SYMBOL LETTER A
		{"ᄀ", L, 3},             // HANGUL CHOSEONG KIYEOK
		{"ᅡ", V, 3},             // HANGUL JUNGSEONG A
		{"ᆨ", T, 3},             // HANGUL JONGSEONG KIYEOK
		{"가", LV, 3},            // HANGUL SYLLABLE GA (no trailing consonant)
		{"각", LVT, 3},           // HANGUL SYLLABLE GAG (has trailing consonant)
		{"\U0001F3FB", EModifier, 4}, // EMOJI MODIFIER FITZPATRICK TYPE-1-2
	}
	for _, c := range cases {
		gotCat, gotW := lookup(c.s)
		if gotCat != c.cat || gotW != c.want {
			t.Errorf("lookup(%q) = (%v, %d), want (%v, %d)", c.s, gotCat, gotW, c.cat, c.want)
		}
	}
}

func TestLookupEmpty(t *testing.T) {
	cat, w := lookup("")
	if cat != Any || w != 0 {
		t.Errorf("lookup(\"\") = (%v, %d), want (Any, 0)", cat, w)
	}
}

func TestLookupLastMatchesLookup(t *testing.T) {
	s := "abᄀ"
	cat, w := lookupLast(s)
	wantCat, wantW := lookup("ᄀ")
	if cat != wantCat || w != wantW {
		t.Errorf("lookupLast(%q) = (%v, %d), want (%v, %d)", s, cat, w, wantCat, wantW)
	}
}

func TestCategoryIs(t *testing.T) {
	c := L | V
	if !c.is(L) {
		t.Error("expected L|V to include L")
	}
	if !c.is(V) {
		t.Error("expected L|V to include V")
	}
	if c.is(T) {
		t.Error("expected L|V to not include T")
	}
	if Any.is(Control) {
		t.Error("Any should not match any bit")
	}
}
