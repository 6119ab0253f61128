package graphemes

import "testing"

func TestClassifyCRLF(t *testing.T) {
	if got := classify(CR, LF); got != CheckCRLF {
		t.Errorf("CR x LF = %v, want CheckCRLF", got)
	}
	if got := classify(CR, Control); got != CheckCRLF {
		t.Errorf("CR x Control = %v, want CheckCRLF", got)
	}
	if got := classify(Control, Any); got != Break {
		t.Errorf("Control x Any = %v, want Break", got)
	}
}

func TestClassifyHangul(t *testing.T) {
	cases := []struct {
		before, after Category
		want          PairOutcome
	}{
		{L, L, NotBreak},
		{L, V, NotBreak},
		{L, LV, NotBreak},
		{L, LVT, NotBreak},
		{LV, V, NotBreak},
		{LV, T, NotBreak},
		{V, T, NotBreak},
		{LVT, T, NotBreak},
		{T, T, NotBreak},
		{L, T, Break},
		{V, L, Break},
	}
	for _, c := range cases {
		if got := classify(c.before, c.after); got != c.want {
			t.Errorf("classify(%v, %v) = %v, want %v", c.before, c.after, got, c.want)
		}
	}
}

func TestClassifyExtendZWJ(t *testing.T) {
	if got := classify(Any, Extend); got != NotBreak {
		t.Errorf("Any x Extend = %v, want NotBreak", got)
	}
	if got := classify(Any, ZWJ); got != NotBreak {
		t.Errorf("Any x ZWJ = %v, want NotBreak", got)
	}
	if got := classify(Any, SpacingMark); got != Extended {
		t.Errorf("Any x SpacingMark = %v, want Extended", got)
	}
	if got := classify(Prepend, Any); got != Extended {
		t.Errorf("Prepend x Any = %v, want Extended", got)
	}
}

func TestClassifyEmojiAndRegional(t *testing.T) {
	if got := classify(EBase, EModifier); got != NotBreak {
		t.Errorf("EBase x EModifier = %v, want NotBreak", got)
	}
	if got := classify(EBaseGAZ, EModifier); got != NotBreak {
		t.Errorf("EBaseGAZ x EModifier = %v, want NotBreak", got)
	}
	if got := classify(Extend, EModifier); got != Emoji {
		t.Errorf("Extend x EModifier = %v, want Emoji", got)
	}
	if got := classify(ZWJ, GlueAfterZwj); got != NotBreak {
		t.Errorf("ZWJ x GlueAfterZwj = %v, want NotBreak", got)
	}
	if got := classify(ZWJ, EBaseGAZ); got != NotBreak {
		t.Errorf("ZWJ x EBaseGAZ = %v, want NotBreak", got)
	}
	if got := classify(RegionalIndicator, RegionalIndicator); got != Regional {
		t.Errorf("RI x RI = %v, want Regional", got)
	}
}

func TestClassifyDefaultBreak(t *testing.T) {
	if got := classify(Any, Any); got != Break {
		t.Errorf("Any x Any = %v, want Break", got)
	}
}
