// Package huffman implements a static per-file Huffman entropy coder.
//
// Compressed container ("HUF1"):
//
//	magic       4 bytes  "HUF1"
//	origSize    u32 LE   original file length in bytes
//	symbolCount u16 LE   number of distinct symbols
//	pairs       symbolCount x (symbol u8, frequency u32 LE), ascending symbol order
//	bitstream   MSB-first packed codes, final partial byte zero-padded
//
// The frequency pairs fully describe the tree: the decoder rebuilds it
// with the same merge algorithm and obtains an identical structure.
package huffman

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/bitio"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/outpath"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/types"
)

var magic = []byte("HUF1")

// Status codes reported through Result.Error.
const (
	statusInput  int32 = -1 // input missing or unreadable
	statusOutput int32 = -2 // output path unwritable
	statusFormat int32 = -3 // malformed or truncated container
)

// headerSize is the fixed part of the container before the pairs.
const headerSize = 4 + 4 + 2

// CompressFile compresses path into path+".huff".
func CompressFile(path string) types.Result {
	var r types.Result

	data, err := os.ReadFile(path)
	if err != nil {
		r.Error = statusInput
		return r
	}
	r.BytesIn = uint32(len(data))

	var buf bytes.Buffer
	buf.Write(magic)

	if len(data) == 0 {
		// Degenerate but valid: header only, zero symbols.
		var fixed [6]byte
		buf.Write(fixed[:])
	} else {
		freqs := countFrequencies(data)
		t := buildTree(freqs)
		codes := t.buildCodeTable()

		var u32 [4]byte
		binary.LittleEndian.PutUint32(u32[:], uint32(len(data)))
		buf.Write(u32[:])

		var u16 [2]byte
		binary.LittleEndian.PutUint16(u16[:], uint16(freqs.distinctSymbols()))
		buf.Write(u16[:])

		for sym := 0; sym < 256; sym++ {
			if freqs[sym] == 0 {
				continue
			}
			buf.WriteByte(byte(sym))
			binary.LittleEndian.PutUint32(u32[:], uint32(freqs[sym]))
			buf.Write(u32[:])
		}

		bw := bitio.NewWriter()
		for _, b := range data {
			c := codes[b]
			bw.WriteCode(c.bits, c.n)
		}
		buf.Write(bw.Bytes())
	}

	if err := os.WriteFile(outpath.HuffmanCompressed(path), buf.Bytes(), 0644); err != nil {
		r.Error = statusOutput
		return r
	}
	r.BytesOut = uint32(buf.Len())
	return r
}

// DecompressFile decompresses a ".huff" container produced by
// CompressFile. See outpath.HuffmanDecompressed for output naming.
func DecompressFile(path string) types.Result {
	var r types.Result

	data, err := os.ReadFile(path)
	if err != nil {
		r.Error = statusInput
		return r
	}
	r.BytesIn = uint32(len(data))

	origSize, freqs, body, ok := parseContainer(data)
	if !ok {
		r.Error = statusFormat
		return r
	}

	outPath := outpath.HuffmanDecompressed(path)

	if origSize == 0 {
		if err := os.WriteFile(outPath, nil, 0644); err != nil {
			r.Error = statusOutput
			return r
		}
		return r
	}

	t := buildTree(freqs)
	if t.root == noChild {
		// Nonzero original size with an empty symbol table.
		r.Error = statusFormat
		return r
	}

	out := make([]byte, 0, origSize)
	br := bitio.NewReader(body)
	for uint32(len(out)) < origSize {
		idx := t.root
		for !t.nodes[idx].isLeaf() {
			bit, err := br.ReadBit()
			if err != nil {
				// Bitstream exhausted before origSize bytes.
				r.Error = statusFormat
				return r
			}
			if bit == 0 {
				idx = t.nodes[idx].left
			} else {
				idx = t.nodes[idx].right
			}
		}
		out = append(out, t.nodes[idx].symbol)
	}

	if err := os.WriteFile(outPath, out, 0644); err != nil {
		r.Error = statusOutput
		return r
	}
	r.BytesOut = uint32(len(out))
	return r
}

// parseContainer validates the header and splits data into the decoded
// frequency table and the remaining bitstream bytes. It reads only the
// bytes the header announces; trailing data is ignored.
func parseContainer(data []byte) (origSize uint32, freqs freqTable, body []byte, ok bool) {
	if len(data) < headerSize || !bytes.Equal(data[:4], magic) {
		return 0, freqs, nil, false
	}
	origSize = binary.LittleEndian.Uint32(data[4:8])
	symbolCount := int(binary.LittleEndian.Uint16(data[8:10]))

	pos := headerSize
	for i := 0; i < symbolCount; i++ {
		if pos+5 > len(data) {
			return 0, freqs, nil, false
		}
		sym := data[pos]
		freqs[sym] = uint64(binary.LittleEndian.Uint32(data[pos+1 : pos+5]))
		pos += 5
	}
	return origSize, freqs, data[pos:], true
}
