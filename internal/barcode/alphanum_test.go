package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeAlphaNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "full alphabet",
			input: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			want:  "12345678912345678923456789",
		},
		{
			name:  "lowercase is uppercased first",
			input: "abcxyz",
			want:  "123789",
		},
		{
			name:  "digits pass through",
			input: "0123456789",
			want:  "0123456789",
		},
		{
			name:  "mixed letters and digits",
			input: "AB12xy",
			want:  "121278",
		},
		{
			name:  "punctuation and spaces dropped",
			input: "A-B 1.2",
			want:  "1212",
		},
		{
			name:  "non-ASCII dropped",
			input: "台A北1",
			want:  "11",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeAlphaNumeric(tt.input))
		})
	}
}

// The table is a fixed industry mapping, not a computable one; pin a few
// entries that an arithmetic mapping would get wrong.
func TestEncodeAlphaNumericIsNotOrdinal(t *testing.T) {
	assert.Equal(t, "1", EncodeAlphaNumeric("J")) // not 10 mod anything obvious
	assert.Equal(t, "2", EncodeAlphaNumeric("S")) // breaks the J..R run
	assert.Equal(t, "9", EncodeAlphaNumeric("Z"))
}
