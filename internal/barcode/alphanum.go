package barcode

import "strings"

// letterDigits is the fixed substitution table used by Taiwan payment barcodes
// to fold letters into digits. It is not a 1-indexed alphabet mapping and must
// not be computed arithmetically.
var letterDigits = map[byte]byte{
	'A': '1', 'B': '2', 'C': '3', 'D': '4', 'E': '5', 'F': '6',
	'G': '7', 'H': '8', 'I': '9', 'J': '1', 'K': '2', 'L': '3',
	'M': '4', 'N': '5', 'O': '6', 'P': '7', 'Q': '8', 'R': '9',
	'S': '2', 'T': '3', 'U': '4', 'V': '5', 'W': '6', 'X': '7',
	'Y': '8', 'Z': '9',
}

// EncodeAlphaNumeric rewrites an alphanumeric identification segment into its
// all-digit form: letters map through letterDigits (case-insensitive), ASCII
// digits pass through, and every other character is silently dropped.
func EncodeAlphaNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if d, ok := letterDigits[c]; ok {
			b.WriteByte(d)
		} else if c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
