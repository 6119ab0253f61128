// Package uax29 provides Unicode text segmentation (UAX #29) for words, sentences and graphemes.
//
// See the words, sentences, and graphemes packages for details and usage.
//
// For more information on the UAX #29 spec: https://unicode.org/reports/tr29/
package uax29
