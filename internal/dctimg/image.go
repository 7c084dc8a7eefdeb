package dctimg

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Registered decoders for the non-PPM input path.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var errBadPPM = errors.New("dctimg: malformed PPM")

// rgbBuffer holds decoded RGB samples, one byte per channel.
type rgbBuffer struct {
	width  int
	height int
	pix    []byte // len = width*height*3, interleaved RGB
}

// isPPM reports whether data announces the binary PPM format.
func isPPM(data []byte) bool {
	return len(data) >= 2 && data[0] == 'P' && data[1] == '6'
}

// parsePPM decodes a binary "P6" PPM. This is the native fast path;
// comments are not supported and maxval must fit one byte.
func parsePPM(data []byte) (*rgbBuffer, error) {
	pos := 2 // past "P6"

	readInt := func() (int, error) {
		for pos < len(data) && isSpace(data[pos]) {
			pos++
		}
		start := pos
		for pos < len(data) && data[pos] >= '0' && data[pos] <= '9' {
			pos++
		}
		if pos == start {
			return 0, errBadPPM
		}
		v := 0
		for _, c := range data[start:pos] {
			v = v*10 + int(c-'0')
		}
		return v, nil
	}

	w, err := readInt()
	if err != nil {
		return nil, err
	}
	h, err := readInt()
	if err != nil {
		return nil, err
	}
	maxval, err := readInt()
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 || maxval <= 0 || maxval > 255 {
		return nil, errBadPPM
	}
	// Single whitespace separates the header from the raster.
	if pos >= len(data) || !isSpace(data[pos]) {
		return nil, errBadPPM
	}
	pos++

	need := w * h * 3
	if len(data)-pos < need {
		return nil, fmt.Errorf("dctimg: PPM raster truncated: need %d bytes, have %d", need, len(data)-pos)
	}
	return &rgbBuffer{width: w, height: h, pix: data[pos : pos+need]}, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// decodeRegistered decodes any format the image package has a decoder
// for and flattens it to interleaved RGB.
func decodeRegistered(data []byte) (*rgbBuffer, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := &rgbBuffer{width: w, height: h, pix: make([]byte, w*h*3)}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf.pix[i+0] = byte(r >> 8)
			buf.pix[i+1] = byte(g >> 8)
			buf.pix[i+2] = byte(b >> 8)
			i += 3
		}
	}
	return buf, nil
}

// toLuma converts interleaved RGB to Rec.601 luma samples.
func (b *rgbBuffer) toLuma() []float32 {
	luma := make([]float32, b.width*b.height)
	for i, p := 0, 0; i < len(luma); i, p = i+1, p+3 {
		r := float32(b.pix[p+0])
		g := float32(b.pix[p+1])
		bl := float32(b.pix[p+2])
		luma[i] = 0.299*r + 0.587*g + 0.114*bl
	}
	return luma
}

// padToBlocks zero-pads a luma buffer to the next multiple of the
// block size in each dimension.
func padToBlocks(luma []float32, w, h int) (padded []float32, pw, ph int) {
	pw = (w + blockSize - 1) / blockSize * blockSize
	ph = (h + blockSize - 1) / blockSize * blockSize
	padded = make([]float32, pw*ph)
	for y := 0; y < h; y++ {
		copy(padded[y*pw:y*pw+w], luma[y*w:y*w+w])
	}
	return padded, pw, ph
}

// writePGM serializes an 8-bit grayscale raster as binary PGM (P5).
func writePGM(w, h int, samples []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P5\n%d %d\n255\n", w, h)
	buf.Write(samples)
	return buf.Bytes()
}
