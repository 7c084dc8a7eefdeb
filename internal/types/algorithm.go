package types

import "strings"

// Algorithm selects one of the supported codecs. The enumeration is
// closed: any value outside the three constants below is invalid and
// is rejected by the dispatcher before any filesystem access.
type Algorithm uint8

const (
	AlgoHuffman Algorithm = iota
	AlgoLZSS
	AlgoDCT
)

var algorithmNames = map[Algorithm]string{
	AlgoHuffman: "huffman",
	AlgoLZSS:    "lzss",
	AlgoDCT:     "dct",
}

// Valid reports whether a is a member of the closed enumeration.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// String returns the lowercase algorithm name, or "unknown".
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlgorithm maps a case-insensitive algorithm name to its
// Algorithm value. The second return is false for unrecognized names.
func ParseAlgorithm(name string) (Algorithm, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == lower {
			return a, true
		}
	}
	return 0, false
}
