package barcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	ierr "github.com/paybar/paybar/internal/errors"
)

func TestDecodeROCDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "regular date",
			input: "1130101",
			want:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "end of year",
			input: "1121231",
			want:  time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day",
			input: "1130229",
			want:  time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "month 13 rolls into next year",
			input: "1131301",
			want:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "day 32 rolls into next month",
			input: "1130132",
			want:  time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "too short",
			input:   "113011",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "11301011",
			wantErr: true,
		},
		{
			name:    "non-digit characters",
			input:   "113O101",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeROCDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, ierr.IsInvalidDateFormat(err))
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestDecodeROCDateStrict(t *testing.T) {
	// Valid dates behave exactly like the lenient decoder.
	got, err := DecodeROCDateStrict("1130229")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), got)

	// Rollover inputs are rejected instead of normalized.
	for _, input := range []string{"1131301", "1130132", "1120229", "1130431", "1130001", "1130100"} {
		_, err := DecodeROCDateStrict(input)
		assert.Error(t, err, "input %q", input)
		assert.True(t, ierr.IsInvalidDateFormat(err), "input %q", input)
	}
}

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "ROC year 113",
			date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "130101",
		},
		{
			name: "ROC year 099 keeps its padding",
			date: time.Date(2010, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: "991231",
		},
		{
			name: "single digit ROC year",
			date: time.Date(1916, time.June, 5, 0, 0, 0, 0, time.UTC),
			want: "050605",
		},
		{
			name: "ROC year 100 truncates to last two digits",
			date: time.Date(2011, time.March, 9, 0, 0, 0, 0, time.UTC),
			want: "000309",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeCompact(tt.date))
		})
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	date, err := DecodeROCDate("1130815")
	assert.NoError(t, err)
	assert.Equal(t, "130815", EncodeCompact(date))
}
