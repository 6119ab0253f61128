package transform_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	xtransform "golang.org/x/text/transform"

	"github.com/textlayer/uax29/transform"
)

func TestLowerUpper(t *testing.T) {
	if got := string(transform.Lower([]byte("Café"))); got != "café" {
		t.Errorf("Lower: got %q", got)
	}
	if got := string(transform.Upper([]byte("café"))); got != "CAFÉ" {
		t.Errorf("Upper: got %q", got)
	}
}

func TestTitle(t *testing.T) {
	if got := string(transform.Title([]byte("hello world"))); got != "Hello World" {
		t.Errorf("Title: got %q", got)
	}
}

func TestNormalizationForms(t *testing.T) {
	composed := "café" // NFC: é (U+00E9) as a single precomposed code point
	decomposed := "café"

	if got := string(transform.NFD([]byte(composed))); got != decomposed {
		t.Errorf("NFD: got %q, want %q", got, decomposed)
	}
	if got := string(transform.NFC([]byte(decomposed))); got != composed {
		t.Errorf("NFC: got %q, want %q", got, composed)
	}
}

func TestRemoveDiacritics(t *testing.T) {
	cases := map[string]string{
		"café":    "cafe",
		"façade":  "facade",
		"naïve":   "naive",
		"roundtrip": "roundtrip",
	}
	for in, want := range cases {
		if got := string(transform.RemoveDiacritics([]byte(in))); got != want {
			t.Errorf("RemoveDiacritics(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStreamingLowerTransformer(t *testing.T) {
	r := xtransform.NewReader(strings.NewReader("CAFÉ"), transform.LowerTransformer)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, []byte("café")) {
		t.Errorf("got %q, want %q", got, "café")
	}
}

func TestStreamingDiacriticsTransformer(t *testing.T) {
	r := xtransform.NewReader(strings.NewReader("café"), transform.DiacriticsTransformer)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, []byte("cafe")) {
		t.Errorf("got %q, want %q", got, "cafe")
	}
}
