// Package lzss implements an LZSS sliding-window dictionary coder.
//
// The stream has no header. Tokens are grouped eight at a time under a
// flag byte: bit i set means token i is a match record of three bytes
// (offset low, offset high, length), bit i clear means token i is a
// single literal byte. Offsets count backwards from the end of the
// already-produced output; matches may overlap their own destination.
//
// The parse is greedy and single-pass with no lazy matching. That is a
// deliberate simplicity tradeoff: changing it would change the wire
// bytes, which downstream tooling compares byte for byte.
package lzss

import (
	"encoding/binary"
	"errors"
	"os"

	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/outpath"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/types"
)

// Fixed coder parameters. Length fits one byte on the wire, so
// maxMatch can never exceed 255.
const (
	windowSize = 4096 // how far back a match may reach
	maxMatch   = 18   // longest match emitted by the encoder
	minMatch   = 3    // shorter matches are emitted as literals
)

// Status codes reported through Result.Error.
const (
	statusInput  int32 = -1 // input missing or unreadable
	statusOutput int32 = -2 // output path unwritable
	statusDecode int32 = -3 // malformed or truncated token stream
)

var errBadStream = errors.New("lzss: malformed token stream")

// match is a back-reference into already-produced output.
type match struct {
	offset int // distance back from the current position, 1..windowSize
	length int // 0 means no usable match
}

// findMatch scans the window for the longest match of in[pos:]. The
// scan starts at the oldest window position, and only a strictly
// longer match replaces the current best, so the earliest offset wins
// ties. Matches shorter than minMatch are discarded.
func findMatch(in []byte, pos int) match {
	var best match
	if pos == 0 {
		return best
	}

	windowStart := 0
	if pos > windowSize {
		windowStart = pos - windowSize
	}
	maxLen := maxMatch
	if pos+maxLen > len(in) {
		maxLen = len(in) - pos
	}

	for j := windowStart; j < pos; j++ {
		k := 0
		for k < maxLen && in[j+k] == in[pos+k] {
			k++
		}
		if k > best.length {
			best = match{offset: pos - j, length: k}
			if k == maxLen {
				break
			}
		}
	}

	if best.length < minMatch {
		return match{}
	}
	return best
}

// compress encodes in into the flag-grouped token stream.
func compress(in []byte) []byte {
	out := make([]byte, 0, len(in)/2+16)
	pos := 0

	for pos < len(in) {
		flagIndex := len(out)
		out = append(out, 0)
		var flags byte

		for bit := 0; bit < 8 && pos < len(in); bit++ {
			m := findMatch(in, pos)
			if m.length > 0 {
				flags |= 1 << bit
				var off [2]byte
				binary.LittleEndian.PutUint16(off[:], uint16(m.offset))
				out = append(out, off[0], off[1], byte(m.length))
				pos += m.length
			} else {
				out = append(out, in[pos])
				pos++
			}
		}
		out[flagIndex] = flags
	}
	return out
}

// decompress decodes a token stream. Copies are done one byte at a
// time so a match may overlap its own output when offset < length.
func decompress(in []byte) ([]byte, error) {
	out := make([]byte, 0, len(in)*2)
	pos := 0

	for pos < len(in) {
		flags := in[pos]
		pos++
		for bit := 0; bit < 8 && pos < len(in); bit++ {
			if flags&(1<<bit) != 0 {
				if pos+3 > len(in) {
					// Truncated match record.
					return nil, errBadStream
				}
				offset := int(binary.LittleEndian.Uint16(in[pos : pos+2]))
				length := int(in[pos+2])
				pos += 3

				if offset == 0 || length == 0 || offset > len(out) {
					return nil, errBadStream
				}
				start := len(out) - offset
				for k := 0; k < length; k++ {
					out = append(out, out[start+k])
				}
			} else {
				out = append(out, in[pos])
				pos++
			}
		}
	}
	return out, nil
}

// CompressFile compresses path into path+".lzss".
func CompressFile(path string) types.Result {
	var r types.Result

	data, err := os.ReadFile(path)
	if err != nil {
		r.Error = statusInput
		return r
	}
	r.BytesIn = uint32(len(data))

	encoded := compress(data)
	if err := os.WriteFile(outpath.LzssCompressed(path), encoded, 0644); err != nil {
		r.Error = statusOutput
		return r
	}
	r.BytesOut = uint32(len(encoded))
	return r
}

// DecompressFile decodes a token stream produced by CompressFile. See
// outpath.LzssDecompressed for output naming.
func DecompressFile(path string) types.Result {
	var r types.Result

	data, err := os.ReadFile(path)
	if err != nil {
		r.Error = statusInput
		return r
	}
	r.BytesIn = uint32(len(data))

	decoded, err := decompress(data)
	if err != nil {
		r.Error = statusDecode
		return r
	}

	if err := os.WriteFile(outpath.LzssDecompressed(path), decoded, 0644); err != nil {
		r.Error = statusOutput
		return r
	}
	r.BytesOut = uint32(len(decoded))
	return r
}
