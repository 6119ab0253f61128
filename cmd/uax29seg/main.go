// Command uax29seg segments text into graphemes, words, or sentences and
// prints one token per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/textlayer/uax29/graphemes"
	"github.com/textlayer/uax29/sentences"
	"github.com/textlayer/uax29/words"
)

var (
	mode    = flag.String("mode", "words", "segmentation mode: graphemes, words, or sentences")
	offsets = flag.Bool("offsets", false, "print byte offsets alongside each token")
	legacy  = flag.Bool("legacy", false, "use legacy (non-extended) grapheme clusters in graphemes mode")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	var r io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	if err := run(r, os.Stdout, *mode, *offsets, *legacy); err != nil {
		log.Fatal(err)
	}
}

func run(r io.Reader, w io.Writer, mode string, offsets, legacy bool) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	switch mode {
	case "graphemes":
		return runGraphemes(r, bw, offsets, legacy)
	case "words":
		return runWords(r, bw, offsets)
	case "sentences":
		return runSentences(r, bw, offsets)
	default:
		return fmt.Errorf("unknown -mode %q: want graphemes, words, or sentences", mode)
	}
}

func runGraphemes(r io.Reader, w io.Writer, offsets, legacy bool) error {
	var sc *bufio.Scanner
	if legacy {
		sc = graphemes.NewScannerLegacy(r)
	} else {
		sc = graphemes.NewScanner(r)
	}

	pos := 0
	for sc.Scan() {
		tok := sc.Bytes()
		if offsets {
			fmt.Fprintf(w, "%d\t%q\n", pos, tok)
		} else {
			fmt.Fprintf(w, "%q\n", tok)
		}
		pos += len(tok)
	}
	return sc.Err()
}

func runWords(r io.Reader, w io.Writer, offsets bool) error {
	sc := words.NewScanner(r)
	pos := 0
	for sc.Scan() {
		tok := sc.Bytes()
		if offsets {
			fmt.Fprintf(w, "%d\t%q\n", pos, tok)
		} else {
			fmt.Fprintf(w, "%q\n", tok)
		}
		pos += len(tok)
	}
	return sc.Err()
}

func runSentences(r io.Reader, w io.Writer, offsets bool) error {
	sc := sentences.NewScanner(r)
	pos := 0
	for sc.Scan() {
		tok := sc.Bytes()
		if offsets {
			fmt.Fprintf(w, "%d\t%q\n", pos, tok)
		} else {
			fmt.Fprintf(w, "%q\n", tok)
		}
		pos += len(tok)
	}
	return sc.Err()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "usage: uax29seg [flags] [file]\n\n")
	fmt.Fprintf(os.Stderr, "Segments stdin, or file if given, per UAX #29 and prints one token per line.\n\n")
	flag.PrintDefaults()
}
