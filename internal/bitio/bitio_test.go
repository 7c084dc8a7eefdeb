package bitio

import (
	"bytes"
	"testing"
)

func TestWriterMSBFirst(t *testing.T) {
	w := NewWriter()
	// 1,0,1,1 -> 0b1011_0000 after padding
	w.WriteBit(1)
	w.WriteBit(0)
	w.WriteBit(1)
	w.WriteBit(1)
	got := w.Bytes()
	if !bytes.Equal(got, []byte{0xB0}) {
		t.Fatalf("expected [0xB0], got %#v", got)
	}
	if w.NumBits() != 4 {
		t.Fatalf("expected 4 bits, got %d", w.NumBits())
	}
}

func TestWriteCode(t *testing.T) {
	w := NewWriter()
	w.WriteCode(0b101, 3)
	w.WriteCode(0b01, 2)
	// 10101 -> 0b1010_1000
	got := w.Bytes()
	if !bytes.Equal(got, []byte{0xA8}) {
		t.Fatalf("expected [0xA8], got %#v", got)
	}
}

func TestWriterEmpty(t *testing.T) {
	w := NewWriter()
	if len(w.Bytes()) != 0 {
		t.Fatalf("expected no bytes for empty writer")
	}
}

func TestReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	pattern := []int{1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1}
	for _, b := range pattern {
		w.WriteBit(b)
	}

	r := NewReader(w.Bytes())
	for i, want := range pattern {
		bit, err := r.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: unexpected error: %v", i, err)
		}
		if bit != want {
			t.Fatalf("bit %d: expected %d, got %d", i, want, bit)
		}
	}
	// Remaining bits are zero padding, then EOF.
	for r.Remaining() > 0 {
		bit, err := r.ReadBit()
		if err != nil {
			t.Fatalf("unexpected error reading padding: %v", err)
		}
		if bit != 0 {
			t.Fatalf("expected zero padding, got %d", bit)
		}
	}
	if _, err := r.ReadBit(); err != ErrEOF {
		t.Fatalf("expected ErrEOF, got %v", err)
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(nil)
	if _, err := r.ReadBit(); err != ErrEOF {
		t.Fatalf("expected ErrEOF on empty input, got %v", err)
	}
}
