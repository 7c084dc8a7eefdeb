package baseline

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec is the zstd baseline at default level.
type ZstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstdCodec builds a reusable zstd encoder/decoder pair. The
// stateless EncodeAll/DecodeAll calls are safe for repeated use.
func NewZstdCodec() *ZstdCodec {
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	dec, _ := zstd.NewReader(nil)
	return &ZstdCodec{enc: enc, dec: dec}
}

func (c *ZstdCodec) Name() string { return "zstd" }

func (c *ZstdCodec) Compress(src []byte) ([]byte, error) {
	return c.enc.EncodeAll(src, nil), nil
}

func (c *ZstdCodec) Decompress(src []byte, decompressedSize int) ([]byte, error) {
	dst, err := c.dec.DecodeAll(src, make([]byte, 0, decompressedSize))
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return dst, nil
}
