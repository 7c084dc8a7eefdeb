package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]Algorithm{
		"huffman": AlgoHuffman,
		"LZSS":    AlgoLZSS,
		" dct ":   AlgoDCT,
	} {
		got, ok := ParseAlgorithm(name)
		require.True(t, ok, "name %q", name)
		require.Equal(t, want, got)
	}

	_, ok := ParseAlgorithm("gzip")
	require.False(t, ok)
}

func TestAlgorithmValidity(t *testing.T) {
	require.True(t, AlgoHuffman.Valid())
	require.True(t, AlgoDCT.Valid())
	require.False(t, Algorithm(42).Valid())
	require.Equal(t, "unknown", Algorithm(42).String())
}

func TestRatio(t *testing.T) {
	require.Equal(t, 0.5, Result{BytesIn: 100, BytesOut: 50}.Ratio())
	require.Equal(t, 0.0, Result{BytesIn: 0, BytesOut: 50}.Ratio())
}

func TestOK(t *testing.T) {
	require.True(t, Result{}.OK())
	require.False(t, Failure(StatusUnknownAlgorithm).OK())
}
