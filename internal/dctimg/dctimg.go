// Package dctimg implements the block-transform image codec: decode to
// RGB, convert to luma, pad to 8x8 blocks, forward DCT and quantize,
// and serialize the "DCT1" coefficient container.
//
// Container layout:
//
//	magic    4 bytes  "DCT1"
//	width    u16 LE   original (unpadded) width
//	height   u16 LE   original (unpadded) height
//	channels u8       always 1 (grayscale)
//	blocks   per padded 8x8 block, 64 x s16 LE quantized coefficients,
//	         blocks in raster order
//
// The coefficient container is the codec's round-trip contract. The
// JPEG preview (WriteJPEGPreview) is a one-way artifact re-encoded
// through the standard JPEG encoder at quality 85; the decompressor
// deliberately refuses it with statusNoJPEGDecoder.
package dctimg

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/jpeg"
	"math"
	"os"

	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/outpath"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/types"
)

var magic = []byte("DCT1")

// previewQuality is the fixed quality passed to the JPEG encoder for
// the one-way preview artifact.
const previewQuality = 85

// Status codes reported through Result.Error.
const (
	statusInput         int32 = -1 // input missing, unreadable, or empty
	statusBadPPM        int32 = -2 // recognized PPM input is malformed
	statusOutput        int32 = -3 // output path unwritable
	statusBadHeader     int32 = -4 // bad magic or invalid dimensions
	statusBadChannels   int32 = -5 // container channel count is not 1
	statusTruncated     int32 = -6 // coefficient data shorter than the header implies
	statusDecodeFailure int32 = -7 // registered image decoder could not decode the input
	statusNoJPEGDecoder int32 = -8 // artifact is a JPEG; only the DCT1 container has a decoder
)

// headerSize is the DCT1 container header length.
const headerSize = 4 + 2 + 2 + 1

// blockBytes is the serialized size of one coefficient block.
const blockBytes = 64 * 2

// maxDimension keeps width and height inside the u16 header fields.
const maxDimension = math.MaxUint16

// decodeInput decodes the source image, preferring the native PPM path.
func decodeInput(data []byte) (*rgbBuffer, int32) {
	if isPPM(data) {
		img, err := parsePPM(data)
		if err != nil {
			return nil, statusBadPPM
		}
		if img.width > maxDimension || img.height > maxDimension {
			return nil, statusBadPPM
		}
		return img, 0
	}
	img, err := decodeRegistered(data)
	if err != nil {
		return nil, statusDecodeFailure
	}
	if img.width > maxDimension || img.height > maxDimension {
		return nil, statusDecodeFailure
	}
	return img, 0
}

// CompressFile transforms the image at path into path+".dct".
func CompressFile(path string) types.Result {
	var r types.Result

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		r.Error = statusInput
		return r
	}
	r.BytesIn = uint32(len(data))

	img, status := decodeInput(data)
	if status != 0 {
		r.Error = status
		return r
	}

	padded, pw, ph := padToBlocks(img.toLuma(), img.width, img.height)

	var buf bytes.Buffer
	buf.Write(magic)
	var u16 [2]byte
	binary.LittleEndian.PutUint16(u16[:], uint16(img.width))
	buf.Write(u16[:])
	binary.LittleEndian.PutUint16(u16[:], uint16(img.height))
	buf.Write(u16[:])
	buf.WriteByte(1) // grayscale

	var block [64]float32
	for by := 0; by < ph/blockSize; by++ {
		for bx := 0; bx < pw/blockSize; bx++ {
			for y := 0; y < blockSize; y++ {
				row := (by*blockSize + y) * pw
				for x := 0; x < blockSize; x++ {
					block[y*blockSize+x] = padded[row+bx*blockSize+x]
				}
			}
			coeffs := forwardDCT(&block)
			quantized := quantize(&coeffs)
			for _, c := range quantized {
				binary.LittleEndian.PutUint16(u16[:], uint16(c))
				buf.Write(u16[:])
			}
		}
	}

	if err := os.WriteFile(outpath.DCTCompressed(path), buf.Bytes(), 0644); err != nil {
		r.Error = statusOutput
		return r
	}
	r.BytesOut = uint32(buf.Len())
	return r
}

// DecompressFile reconstructs a grayscale PGM from a DCT1 container at
// path, writing it to path+".pgm". JPEG preview artifacts have no
// decoder and report statusNoJPEGDecoder.
func DecompressFile(path string) types.Result {
	var r types.Result

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		r.Error = statusInput
		return r
	}
	r.BytesIn = uint32(len(data))

	// JPEG SOI marker: a preview artifact, not a DCT1 container.
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8 {
		r.Error = statusNoJPEGDecoder
		return r
	}
	if len(data) < headerSize || !bytes.Equal(data[:4], magic) {
		r.Error = statusBadHeader
		return r
	}

	width := int(binary.LittleEndian.Uint16(data[4:6]))
	height := int(binary.LittleEndian.Uint16(data[6:8]))
	channels := data[8]
	if width == 0 || height == 0 {
		r.Error = statusBadHeader
		return r
	}
	if channels != 1 {
		r.Error = statusBadChannels
		return r
	}

	pw := (width + blockSize - 1) / blockSize * blockSize
	ph := (height + blockSize - 1) / blockSize * blockSize
	numBlocks := (pw / blockSize) * (ph / blockSize)
	if len(data)-headerSize < numBlocks*blockBytes {
		r.Error = statusTruncated
		return r
	}

	padded := make([]float32, pw*ph)
	pos := headerSize
	var quantized [64]int16
	for by := 0; by < ph/blockSize; by++ {
		for bx := 0; bx < pw/blockSize; bx++ {
			for i := 0; i < 64; i++ {
				quantized[i] = int16(binary.LittleEndian.Uint16(data[pos : pos+2]))
				pos += 2
			}
			coeffs := dequantize(&quantized)
			spatial := inverseDCT(&coeffs)
			for y := 0; y < blockSize; y++ {
				row := (by*blockSize + y) * pw
				for x := 0; x < blockSize; x++ {
					padded[row+bx*blockSize+x] = spatial[y*blockSize+x]
				}
			}
		}
	}

	// Crop to the original dimensions and clamp to [0,255].
	samples := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := math.Round(float64(padded[y*pw+x]))
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			samples[y*width+x] = byte(v)
		}
	}

	pgm := writePGM(width, height, samples)
	if err := os.WriteFile(outpath.DCTDecompressed(path), pgm, 0644); err != nil {
		r.Error = statusOutput
		return r
	}
	r.BytesOut = uint32(len(pgm))
	return r
}

// WriteJPEGPreview re-encodes the source image through the standard
// JPEG encoder at the fixed preview quality, writing path+".jpg". The
// artifact is one-way: DecompressFile refuses it.
func WriteJPEGPreview(path string) types.Result {
	var r types.Result

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		r.Error = statusInput
		return r
	}
	r.BytesIn = uint32(len(data))

	img, status := decodeInput(data)
	if status != 0 {
		r.Error = status
		return r
	}

	rgba := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for i, p := 0, 0; p < len(img.pix); i, p = i+4, p+3 {
		rgba.Pix[i+0] = img.pix[p+0]
		rgba.Pix[i+1] = img.pix[p+1]
		rgba.Pix[i+2] = img.pix[p+2]
		rgba.Pix[i+3] = 0xFF
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgba, &jpeg.Options{Quality: previewQuality}); err != nil {
		r.Error = statusOutput
		return r
	}
	if err := os.WriteFile(outpath.JPEGPreview(path), buf.Bytes(), 0644); err != nil {
		r.Error = statusOutput
		return r
	}
	r.BytesOut = uint32(buf.Len())
	return r
}
