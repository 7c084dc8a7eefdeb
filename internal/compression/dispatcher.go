// Package compression dispatches compress and decompress requests to
// the codec selected by an Algorithm value, and exposes the uniform
// Result contract to callers. Codecs are independent: they share no
// state and never call each other.
package compression

import (
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/dctimg"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/huffman"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/lzss"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/types"
)

// Compress compresses the file at path with the selected codec. An
// algorithm outside the closed enumeration yields
// types.StatusUnknownAlgorithm without touching the filesystem.
func Compress(algo types.Algorithm, path string) types.Result {
	switch algo {
	case types.AlgoHuffman:
		return huffman.CompressFile(path)
	case types.AlgoLZSS:
		return lzss.CompressFile(path)
	case types.AlgoDCT:
		return dctimg.CompressFile(path)
	default:
		return types.Failure(types.StatusUnknownAlgorithm)
	}
}

// Decompress decompresses the file at path with the selected codec.
func Decompress(algo types.Algorithm, path string) types.Result {
	switch algo {
	case types.AlgoHuffman:
		return huffman.DecompressFile(path)
	case types.AlgoLZSS:
		return lzss.DecompressFile(path)
	case types.AlgoDCT:
		return dctimg.DecompressFile(path)
	default:
		return types.Failure(types.StatusUnknownAlgorithm)
	}
}

// CompressFolder is unimplemented upstream and always fails with
// types.StatusNotImplemented. It never touches the filesystem.
func CompressFolder(algo types.Algorithm, folder string) types.Result {
	_ = algo
	_ = folder
	return types.Failure(types.StatusNotImplemented)
}
