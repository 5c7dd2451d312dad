package styles

import "unicode/utf16"

// Palette is the fixed set of diagram accents: pink, cyan, green, gold, purple.
var Palette = [5]string{
	"rgba(217,70,141,0.85)",
	"rgba(92,200,255,0.85)",
	"rgba(87,242,135,0.85)",
	"rgba(255,209,102,0.85)",
	"rgba(192,132,252,0.85)",
}

const (
	fnvOffset32 = 0x811c9dc5
	fnvPrime32  = 0x01000193
)

// Seed hashes "systemType::problem" with 32-bit FNV-1a.
//
// The hash runs over UTF-16 code units rather than bytes so that a seed
// computed in a browser for the same input selects the same accent.
// hash/fnv only consumes bytes, hence the manual loop.
func Seed(systemType, problem string) uint32 {
	h := uint32(fnvOffset32)
	for _, u := range utf16.Encode([]rune(systemType + "::" + problem)) {
		h ^= uint32(u)
		h *= fnvPrime32
	}
	return h
}

// Accent picks the diagram accent for an input pair.
func Accent(systemType, problem string) string {
	return Palette[Seed(systemType, problem)%uint32(len(Palette))]
}
