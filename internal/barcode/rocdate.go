package barcode

import (
	"fmt"
	"strconv"
	"time"

	ierr "github.com/paybar/paybar/internal/errors"
)

// rocEpochYear is the offset between the Republic-of-China calendar and the
// Gregorian calendar: ROC year 1 is 1912 CE.
const rocEpochYear = 1911

// DecodeROCDate parses a 7-digit ROC date string (YYYMMDD: 3-digit ROC year,
// 2-digit month, 2-digit day) into a calendar date.
//
// Out-of-range month or day values are normalized by the calendar, so "1131301"
// decodes to January of the following year rather than failing. Payment slips
// in the wild rely on this; use DecodeROCDateStrict to reject such input.
func DecodeROCDate(s string) (time.Time, error) {
	return decodeROCDate(s, false)
}

// DecodeROCDateStrict is DecodeROCDate but fails on month or day values that
// the calendar would otherwise roll over.
func DecodeROCDateStrict(s string) (time.Time, error) {
	return decodeROCDate(s, true)
}

func decodeROCDate(s string, strict bool) (time.Time, error) {
	if len(s) != 7 || !isDigits(s) {
		return time.Time{}, ierr.NewError("malformed ROC date string").
			WithHint("Due date must be a 7-digit ROC date (YYYMMDD)").
			WithReportableDetails(map[string]any{
				"due_date": s,
			}).
			Mark(ierr.ErrInvalidDateFormat)
	}

	year, _ := strconv.Atoi(s[0:3])
	month, _ := strconv.Atoi(s[3:5])
	day, _ := strconv.Atoi(s[5:7])

	t := time.Date(year+rocEpochYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if strict && (int(t.Month()) != month || t.Day() != day) {
		return time.Time{}, ierr.NewError("ROC date does not exist on the calendar").
			WithHintf("Due date %q has an out-of-range month or day", s).
			Mark(ierr.ErrInvalidDateFormat)
	}
	return t, nil
}

// EncodeCompact renders a date as the 6-character YYMMDD form used inside
// barcodes, where YY is the last two digits of the zero-padded ROC year.
func EncodeCompact(t time.Time) string {
	rocYear := fmt.Sprintf("%03d", t.Year()-rocEpochYear)
	return fmt.Sprintf("%s%02d%02d", rocYear[len(rocYear)-2:], int(t.Month()), t.Day())
}

// EncodeROCDate renders a date as the full 7-digit YYYMMDD ROC string, the
// inverse of DecodeROCDate for in-range dates.
func EncodeROCDate(t time.Time) string {
	return fmt.Sprintf("%03d%02d%02d", t.Year()-rocEpochYear, int(t.Month()), t.Day())
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
