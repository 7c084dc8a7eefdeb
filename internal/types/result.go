package types

// Result is the uniform outcome of every codec operation. Codecs never
// panic and never surface Go errors to the caller; the Error field
// carries a status code instead (0 = success, negative = failure).
// The meaning of a negative code is local to the operation that
// produced it; see the codec package docs.
type Result struct {
	BytesIn  uint32
	BytesOut uint32
	Error    int32
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Error == 0 }

// Ratio returns the compression ratio bytesOut/bytesIn.
// Defined as 0 when no input bytes were counted.
func (r Result) Ratio() float64 {
	if r.BytesIn == 0 {
		return 0
	}
	return float64(r.BytesOut) / float64(r.BytesIn)
}

// Status codes shared by the dispatcher. Codec-local codes live with
// the codec that produces them.
const (
	StatusOK               int32 = 0
	StatusNotImplemented   int32 = -1  // folder compression is unimplemented upstream
	StatusUnknownAlgorithm int32 = -99 // algorithm value outside the closed enumeration
)

// Failure builds a Result carrying only a status code.
func Failure(status int32) Result {
	return Result{Error: status}
}
