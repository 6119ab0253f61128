// Package words splits text into words per UAX #29 Word_Break rules:
// https://unicode.org/reports/tr29/
//
// Words yields every token — including interstitial whitespace and
// punctuation, each as its own token — so that concatenating every token
// Words produces reconstructs the input exactly. Lexical wraps Words to
// keep only the tokens that contain a letter, digit, or similar: the
// subset most callers mean by "word".
package words
