package compression

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/types"
)

func TestCompressDispatchesToEachCodec(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(src, []byte("dispatch me, dispatch me"), 0644))

	for _, algo := range []types.Algorithm{types.AlgoHuffman, types.AlgoLZSS} {
		r := Compress(algo, src)
		require.Equal(t, int32(0), r.Error, "algo %s", algo)
		require.NotZero(t, r.BytesOut, "algo %s", algo)
	}
	// DCT rejects non-image input but still dispatches.
	r := Compress(types.AlgoDCT, src)
	require.NotEqual(t, types.StatusUnknownAlgorithm, r.Error)
	require.NotEqual(t, int32(0), r.Error)
}

func TestRoundTripThroughDispatcher(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	input := []byte("round and round and round we go")
	require.NoError(t, os.WriteFile(src, input, 0644))

	require.Equal(t, int32(0), Compress(types.AlgoHuffman, src).Error)
	require.Equal(t, int32(0), Decompress(types.AlgoHuffman, src+".huff").Error)

	out, err := os.ReadFile(filepath.Join(dir, "notes_DC.txt"))
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestUnknownAlgorithmRejectedBeforeFilesystem(t *testing.T) {
	// The path does not exist; an unknown algorithm must be rejected
	// without ever producing an input error.
	bogus := types.Algorithm(42)
	r := Compress(bogus, "/definitely/not/a/file")
	require.Equal(t, types.StatusUnknownAlgorithm, r.Error)
	require.Zero(t, r.BytesIn)
	require.Zero(t, r.BytesOut)

	r = Decompress(bogus, "/definitely/not/a/file")
	require.Equal(t, types.StatusUnknownAlgorithm, r.Error)
}

func TestCompressFolderAlwaysFails(t *testing.T) {
	dir := t.TempDir()
	before, err := os.ReadDir(dir)
	require.NoError(t, err)

	r := CompressFolder(types.AlgoHuffman, dir)
	require.Equal(t, types.StatusNotImplemented, r.Error)
	require.Zero(t, r.BytesIn)
	require.Zero(t, r.BytesOut)

	// No filesystem writes happened.
	after, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Equal(t, len(before), len(after))

	// The failure is fixed regardless of arguments.
	require.Equal(t, types.StatusNotImplemented, CompressFolder(types.Algorithm(42), "").Error)
}
