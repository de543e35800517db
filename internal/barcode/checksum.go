package barcode

// Parity selects which digit positions a positional sum covers and which
// checksum alphabet applies.
type Parity int

const (
	// ParityOdd covers positions 0, 2, 4, … and the A/B checksum alphabet
	ParityOdd Parity = iota
	// ParityEven covers positions 1, 3, 5, … and the X/Y checksum alphabet
	ParityEven
)

// PositionalSum sums the digit characters of s at every other position,
// starting at index 0 for ParityOdd and index 1 for ParityEven. Non-digit
// characters at a summed position are skipped.
func PositionalSum(s string, p Parity) int {
	start := 0
	if p == ParityEven {
		start = 1
	}
	sum := 0
	for i := start; i < len(s); i += 2 {
		if c := s[i]; c >= '0' && c <= '9' {
			sum += int(c - '0')
		}
	}
	return sum
}

// ChecksumChar maps a positional sum to its checksum character. The sum is
// reduced mod 11; 0 and 10 map to letters (distinct per parity), everything
// else to its decimal digit.
func ChecksumChar(sum int, p Parity) byte {
	switch m := sum % 11; {
	case m == 0 && p == ParityOdd:
		return 'A'
	case m == 10 && p == ParityOdd:
		return 'B'
	case m == 0 && p == ParityEven:
		return 'X'
	case m == 10 && p == ParityEven:
		return 'Y'
	default:
		return byte('0' + sum%11)
	}
}
