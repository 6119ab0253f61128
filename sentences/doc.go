// Package sentences splits text into sentences per UAX #29 Sentence_Break
// rules: https://unicode.org/reports/tr29/
//
// Sentences is a forward-only iterator; each sentence includes any
// trailing closing punctuation and whitespace the rules fold into it, so
// concatenating every sentence reconstructs the input exactly.
package sentences
