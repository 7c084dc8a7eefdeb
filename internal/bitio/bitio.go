// Package bitio provides MSB-first bit-level reading and writing for
// the Huffman bitstream. The first bit written lands in bit position 7
// of the first byte; a final partial byte is padded with zero bits.
package bitio

import "errors"

// ErrEOF is returned when reading past the end of the available bits.
var ErrEOF = errors.New("bitio: no more bits to read")

// Writer accumulates bits into an in-memory buffer, MSB-first.
type Writer struct {
	data    []byte
	numBits int
}

// NewWriter creates an empty bit writer.
func NewWriter() *Writer {
	return &Writer{data: make([]byte, 0, 256)}
}

// WriteBit appends a single bit (0 or 1).
func (w *Writer) WriteBit(bit int) {
	byteIndex := w.numBits / 8
	bitIndex := w.numBits % 8

	if byteIndex >= len(w.data) {
		w.data = append(w.data, 0)
	}
	if bit != 0 {
		w.data[byteIndex] |= 1 << (7 - bitIndex)
	}
	w.numBits++
}

// WriteCode appends the low n bits of value, most significant first.
func (w *Writer) WriteCode(value uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.WriteBit(int((value >> i) & 1))
	}
}

// NumBits returns the number of bits written so far.
func (w *Writer) NumBits() int { return w.numBits }

// Bytes returns the accumulated bytes. The last byte is zero-padded on
// its low-order side when the bit count is not a multiple of 8.
func (w *Writer) Bytes() []byte {
	numBytes := (w.numBits + 7) / 8
	out := make([]byte, numBytes)
	copy(out, w.data[:numBytes])
	return out
}

// Reader reads bits sequentially from a byte slice, MSB-first.
type Reader struct {
	data     []byte
	position int
}

// NewReader creates a bit reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads and consumes the next bit. It returns ErrEOF once the
// underlying bytes are exhausted.
func (r *Reader) ReadBit() (int, error) {
	if r.position >= len(r.data)*8 {
		return 0, ErrEOF
	}
	byteIndex := r.position / 8
	bitIndex := r.position % 8
	bit := (r.data[byteIndex] >> (7 - bitIndex)) & 1
	r.position++
	return int(bit), nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return len(r.data)*8 - r.position
}
