package canon

import (
	"cmp"
	"strings"
	"unicode/utf8"
)

// CompareOrdinal compares a and b character by character, each character
// reduced to the low 8 bits of its code point. It returns -1, 0 or +1.
func CompareOrdinal(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if c := cmp.Compare(byte(ra), byte(rb)); c != 0 {
			return c
		}
		a, b = a[na:], b[nb:]
	}
	return cmp.Compare(len(a), len(b))
}

// compareKeys orders object keys for serialization. Keys that only differ
// above the low 8 bits fall back to byte order so the output stays fixed.
func compareKeys(a, b string) int {
	if c := CompareOrdinal(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
