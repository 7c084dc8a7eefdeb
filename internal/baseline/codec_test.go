package baseline

import (
	"bytes"
	"testing"
)

func TestBaselineRoundTrips(t *testing.T) {
	input := bytes.Repeat([]byte("baseline corpus text, quite repetitive. "), 64)
	for _, codec := range All() {
		compressed, err := codec.Compress(input)
		if err != nil {
			t.Fatalf("%s compress: %v", codec.Name(), err)
		}
		if len(compressed) >= len(input) {
			t.Fatalf("%s did not shrink repetitive input (%d -> %d)",
				codec.Name(), len(input), len(compressed))
		}
		out, err := codec.Decompress(compressed, len(input))
		if err != nil {
			t.Fatalf("%s decompress: %v", codec.Name(), err)
		}
		if !bytes.Equal(out, input) {
			t.Fatalf("%s round trip mismatch", codec.Name())
		}
	}
}

func TestBaselineEmptyInput(t *testing.T) {
	for _, codec := range All() {
		compressed, err := codec.Compress(nil)
		if err != nil {
			t.Fatalf("%s compress empty: %v", codec.Name(), err)
		}
		out, err := codec.Decompress(compressed, 0)
		if err != nil {
			t.Fatalf("%s decompress empty: %v", codec.Name(), err)
		}
		if len(out) != 0 {
			t.Fatalf("%s expected empty output, got %d bytes", codec.Name(), len(out))
		}
	}
}
