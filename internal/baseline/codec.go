// Package baseline wraps general-purpose in-memory compressors used by
// the ratio report to put the file codecs' compression ratios in
// context. Baselines operate on buffers, not files, and carry none of
// the Result contract.
package baseline

// Codec compresses and decompresses in-memory buffers.
type Codec interface {
	// Name returns the short identifier used in reports.
	Name() string
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte, decompressedSize int) ([]byte, error)
}

// All returns the registered baseline codecs in report order.
func All() []Codec {
	return []Codec{&LZ4Codec{}, NewZstdCodec()}
}
