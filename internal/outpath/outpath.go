// Package outpath derives codec output paths from input paths. Every
// function is total: each input path maps to exactly one output path,
// with the fallback rules spelled out per function. Callers are not
// protected from overwriting an existing file at the derived path.
package outpath

import (
	"path/filepath"
	"strings"
)

// Suffixes appended by the compressors and markers used by the
// decompressors. Shared here so the pairing stays visible.
const (
	HuffmanSuffix = ".huff"
	LzssSuffix    = ".lzss"
	DCTSuffix     = ".dct"

	// DecompressedMarker is inserted into Huffman decompress outputs so
	// they do not collide with the original file.
	DecompressedMarker = "_DC"

	// OrigFallback is appended when an LZSS input lacks the expected
	// compressed suffix.
	OrigFallback = ".orig"

	pgmSuffix  = ".pgm"
	jpegSuffix = ".jpg"
)

// HuffmanCompressed returns the output path for Huffman compression.
func HuffmanCompressed(in string) string { return in + HuffmanSuffix }

// HuffmanDecompressed returns the output path for Huffman decompression.
// Rules, in order:
//  1. in lacks the ".huff" suffix: append "_DC" to in unchanged.
//  2. strip ".huff"; the remaining name has a trailing extension:
//     insert "_DC" before that extension ("name.ext" -> "name_DC.ext").
//  3. no extension remains: append "_DC".
//
// The extension search looks only at the final path element, so dotted
// directory names cannot capture the marker.
func HuffmanDecompressed(in string) string {
	if !strings.HasSuffix(in, HuffmanSuffix) {
		return in + DecompressedMarker
	}
	stripped := strings.TrimSuffix(in, HuffmanSuffix)

	base := filepath.Base(stripped)
	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		// No extension (or a dotfile like ".bashrc").
		return stripped + DecompressedMarker
	}
	ext := base[dot:]
	return strings.TrimSuffix(stripped, ext) + DecompressedMarker + ext
}

// LzssCompressed returns the output path for LZSS compression.
func LzssCompressed(in string) string { return in + LzssSuffix }

// LzssDecompressed strips the ".lzss" suffix when present; otherwise it
// appends ".orig".
func LzssDecompressed(in string) string {
	if strings.HasSuffix(in, LzssSuffix) {
		return strings.TrimSuffix(in, LzssSuffix)
	}
	return in + OrigFallback
}

// DCTCompressed returns the output path for the coefficient container.
func DCTCompressed(in string) string { return in + DCTSuffix }

// DCTDecompressed returns the grayscale raster output path.
func DCTDecompressed(in string) string { return in + pgmSuffix }

// JPEGPreview returns the path of the one-way JPEG preview artifact.
func JPEGPreview(in string) string { return in + jpegSuffix }
