package keytext_test

import (
	"errors"
	"testing"

	"github.com/idelchi/bananapeel/internal/keytext"
	"github.com/idelchi/bananapeel/internal/peel"
)

func TestFormatParse(t *testing.T) {
	t.Parallel()

	key := peel.Key{RNGInitState: 1, RNGInitSeq: 2, Base64Len: 3, NoiseLen: 4}

	text, err := keytext.Format(key)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	const want = "AQAAAAAAAAACAAAAAAAAAAMAAAAAAAAABAAAAA=="
	if text != want {
		t.Errorf("Format() = %q, want %q", text, want)
	}

	got, err := keytext.Parse("  " + text + "\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got != key {
		t.Errorf("Parse() = %+v, want %+v", got, key)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not base64":  "not*base64",
		"short":       "AQAAAAAAAAA=",
		"empty":       "",
		"extra bytes": "AQAAAAAAAAACAAAAAAAAAAMAAAAAAAAABAAAAAAA",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := keytext.Parse(text); !errors.Is(err, peel.ErrKeyFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrKeyFormat", text, err)
			}
		})
	}
}
