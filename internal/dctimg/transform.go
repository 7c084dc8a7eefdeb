package dctimg

import "math"

// blockSize is the transform block edge; the codec operates on 8x8
// luma blocks throughout.
const blockSize = 8

// quantMatrix is the fixed JPEG-style luminance quantization table,
// shared by quantize and dequantize.
var quantMatrix = [64]int32{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// cosTable[x][u] = cos(((2x+1) * u * pi) / 16), precomputed once.
var cosTable [blockSize][blockSize]float64

func init() {
	for x := 0; x < blockSize; x++ {
		for u := 0; u < blockSize; u++ {
			cosTable[x][u] = math.Cos((2*float64(x) + 1) * float64(u) * math.Pi / 16)
		}
	}
}

func alpha(k int) float64 {
	if k == 0 {
		return 1 / math.Sqrt2
	}
	return 1
}

// forwardDCT computes the 2-D DCT of one spatial block. Samples are
// centered by subtracting 128 before the cosine sum; each coefficient
// is scaled by 0.25 * alpha(u) * alpha(v).
func forwardDCT(in *[64]float32) [64]float32 {
	var out [64]float32
	for v := 0; v < blockSize; v++ {
		for u := 0; u < blockSize; u++ {
			sum := 0.0
			for y := 0; y < blockSize; y++ {
				for x := 0; x < blockSize; x++ {
					sum += (float64(in[y*blockSize+x]) - 128) * cosTable[x][u] * cosTable[y][v]
				}
			}
			out[v*blockSize+u] = float32(0.25 * alpha(u) * alpha(v) * sum)
		}
	}
	return out
}

// inverseDCT reconstructs a spatial block from DCT coefficients,
// re-adding the 128 bias.
func inverseDCT(in *[64]float32) [64]float32 {
	var out [64]float32
	for y := 0; y < blockSize; y++ {
		for x := 0; x < blockSize; x++ {
			sum := 0.0
			for v := 0; v < blockSize; v++ {
				for u := 0; u < blockSize; u++ {
					sum += alpha(u) * alpha(v) * float64(in[v*blockSize+u]) * cosTable[x][u] * cosTable[y][v]
				}
			}
			out[y*blockSize+x] = float32(0.25*sum + 128)
		}
	}
	return out
}

// quantize divides each coefficient by its matrix entry, rounding to
// nearest and clamping to the signed 16-bit range.
func quantize(in *[64]float32) [64]int16 {
	var out [64]int16
	for i := 0; i < 64; i++ {
		q := math.Round(float64(in[i]) / float64(quantMatrix[i]))
		if q > math.MaxInt16 {
			q = math.MaxInt16
		} else if q < math.MinInt16 {
			q = math.MinInt16
		}
		out[i] = int16(q)
	}
	return out
}

// dequantize multiplies each coefficient back by its matrix entry.
func dequantize(in *[64]int16) [64]float32 {
	var out [64]float32
	for i := 0; i < 64; i++ {
		out[i] = float32(int32(in[i]) * quantMatrix[i])
	}
	return out
}
