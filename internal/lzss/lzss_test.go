package lzss

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripBuffers(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0x42}},
		{"run of one symbol", bytes.Repeat([]byte("a"), 10)},
		{"long run", bytes.Repeat([]byte{0}, 5000)},
		{"repeating phrase", bytes.Repeat([]byte("compress me "), 300)},
		{"no matches", []byte("abcdefghijklmnopqrstuvwxyz")},
		{"binary", func() []byte {
			b := make([]byte, 3000)
			state := uint32(7)
			for i := range b {
				state = state*1103515245 + 12345
				b[i] = byte(state >> 16)
			}
			return b
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := compress(tc.input)
			decoded, err := decompress(encoded)
			require.NoError(t, err)
			if len(tc.input) == 0 {
				require.Empty(t, decoded)
			} else {
				require.Equal(t, tc.input, decoded)
			}
		})
	}
}

func TestOverlappingMatchDecodes(t *testing.T) {
	// "aaaaaaaaaa" compresses to a literal 'a' followed by a match with
	// offset 1 and length 9: the copy source overlaps the destination
	// and must be resolved byte by byte.
	input := bytes.Repeat([]byte("a"), 10)
	encoded := compress(input)

	// flags, literal 'a', offLo, offHi, len
	require.Equal(t, []byte{0x02, 'a', 0x01, 0x00, 0x09}, encoded)

	decoded, err := decompress(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestGreedyEarliestOffsetWinsTies(t *testing.T) {
	// Two identical candidates in the window: the match must reference
	// the oldest one (largest offset).
	input := []byte("abcXabcYabc")
	encoded := compress(input)
	decoded, err := decompress(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)

	// Literals a,b,c,X then a match for "abc", literal Y, then the
	// trailing "abc" as a match pointing back 8 positions, not 4.
	want := []byte{
		0x50,             // flags: tokens 4 and 6 are matches
		'a', 'b', 'c', 'X',
		0x04, 0x00, 0x03, // match: offset 4, length 3
		'Y',
		0x08, 0x00, 0x03, // match: offset 8 (earliest candidate), length 3
	}
	require.Equal(t, want, encoded)
}

func TestDecodeRejectsZeroOffset(t *testing.T) {
	// Match token with offset 0.
	_, err := decompress([]byte{0x01, 0x00, 0x00, 0x03})
	require.Error(t, err)
}

func TestDecodeRejectsOffsetBeyondOutput(t *testing.T) {
	// Literal 'a' then a match reaching 2 bytes back.
	_, err := decompress([]byte{0x02, 'a', 0x02, 0x00, 0x01})
	require.Error(t, err)
}

func TestDecodeRejectsZeroLength(t *testing.T) {
	_, err := decompress([]byte{0x02, 'a', 0x01, 0x00, 0x00})
	require.Error(t, err)
}

func TestDecodeRejectsTruncatedMatchRecord(t *testing.T) {
	// Flag promises a match but only two of its three bytes follow.
	_, err := decompress([]byte{0x01, 0x01, 0x00})
	require.Error(t, err)
}

func TestDecodeTrailingFlagByte(t *testing.T) {
	// A flag byte with no tokens after it ends the stream.
	decoded, err := decompress([]byte{0x00})
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.bin")
	input := bytes.Repeat([]byte("the quick brown fox. "), 100)
	require.NoError(t, os.WriteFile(src, input, 0644))

	cr := CompressFile(src)
	require.Equal(t, int32(0), cr.Error)
	require.Equal(t, uint32(len(input)), cr.BytesIn)
	require.Less(t, cr.BytesOut, cr.BytesIn)

	dr := DecompressFile(src + ".lzss")
	require.Equal(t, int32(0), dr.Error)

	// Decompression strips the suffix, landing back on the source path.
	out, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestDecompressFallbackNaming(t *testing.T) {
	dir := t.TempDir()
	// A valid stream under a name without the .lzss suffix.
	path := filepath.Join(dir, "blob")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 'h', 'i'}, 0644))

	r := DecompressFile(path)
	require.Equal(t, int32(0), r.Error)

	out, err := os.ReadFile(path + ".orig")
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), out)
}

func TestCompressMissingInput(t *testing.T) {
	r := CompressFile(filepath.Join(t.TempDir(), "nope"))
	require.Equal(t, statusInput, r.Error)
}

func TestDecompressReportsDecodeStatus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.lzss")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x00, 0x00, 0x03}, 0644))
	r := DecompressFile(path)
	require.Equal(t, statusDecode, r.Error)
}
