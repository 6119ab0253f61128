// Package graphemes splits text into user-perceived characters (grapheme
// clusters) per UAX #29: https://unicode.org/reports/tr29/
//
// Graphemes and GraphemeCursor both produce the same boundaries; Graphemes
// is the simpler API for a string held entirely in memory, and
// GraphemeCursor is for callers — ropes, gap buffers, streaming editors —
// that can only offer the text one chunk at a time and need to resume
// across chunk boundaries.
package graphemes
