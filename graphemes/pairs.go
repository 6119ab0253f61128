package graphemes

// PairOutcome is the result of classifying the pair (before, after) of
// adjacent grapheme categories, per https://unicode.org/reports/tr29/#Grapheme_Cluster_Boundary_Rules.
type PairOutcome int

const (
	// NotBreak means the rules forbid a boundary between before and after.
	NotBreak PairOutcome = iota
	// Break means the rules require a boundary between before and after.
	Break
	// Extended means "break unless operating in extended grapheme cluster
	// mode" (GB9a/GB9b).
	Extended
	// CheckCRLF means before and after are both drawn from {Control, CR,
	// LF}; the caller must break unless the pair is exactly CR,LF (GB3).
	CheckCRLF
	// Regional means before and after are both Regional_Indicator; the
	// caller must count the run of preceding RIs to decide parity
	// (GB12/GB13).
	Regional
	// Emoji means before is Extend and after is E_Modifier; the caller
	// must scan back past the Extend run to see whether an E_Base or
	// E_Base_GAZ precedes it (GB10).
	Emoji
)

// crlfControl is the union of categories GB3/GB4/GB5 jointly govern.
const crlfControl = Control | CR | LF

// classify implements the pair classifier C2: given the categories of the
// code points immediately before and after a candidate boundary, it
// returns the outcome the cursor and iterator must act on. The row order
// below is exhaustive and the first match applies, mirroring the GB1–GB999
// rule order in https://unicode.org/reports/tr29/#Grapheme_Cluster_Boundary_Rules.
func classify(before, after Category) PairOutcome {
	switch {
	case before.is(crlfControl) && after.is(crlfControl):
		// GB3: CR x LF; GB4/GB5 otherwise break. The caller resolves this
		// by checking for the literal two-byte CR,LF sequence.
		return CheckCRLF
	case before.is(crlfControl) || after.is(crlfControl):
		// GB4, GB5
		return Break
	case before.is(L) && after.is(L|V|LV|LVT):
		// GB6
		return NotBreak
	case before.is(LV|V) && after.is(V|T):
		// GB7
		return NotBreak
	case before.is(LVT|T) && after.is(T):
		// GB8
		return NotBreak
	case after.is(Extend | ZWJ):
		// GB9
		return NotBreak
	case after.is(SpacingMark):
		// GB9a
		return Extended
	case before.is(Prepend):
		// GB9b
		return Extended
	case before.is(EBase|EBaseGAZ) && after.is(EModifier):
		// GB10, the simple case: base and modifier are adjacent.
		return NotBreak
	case before.is(Extend) && after.is(EModifier):
		// GB10, needs lookback across the Extend run for an E_Base or
		// E_Base_GAZ.
		return Emoji
	case before.is(ZWJ) && after.is(GlueAfterZwj|EBaseGAZ):
		// GB11
		return NotBreak
	case before.is(RegionalIndicator) && after.is(RegionalIndicator):
		// GB12, GB13
		return Regional
	default:
		// GB999
		return Break
	}
}
