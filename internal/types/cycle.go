package types

import ierr "github.com/paybar/paybar/internal/errors"

// CycleType selects which 4-digit slice of the compact ROC date appears in a
// barcode and which unit advances between billing cycles.
type CycleType string

const (
	// CycleTypeYearMonth puts YYMM in the barcode and advances one month per cycle
	CycleTypeYearMonth CycleType = "YEAR_MONTH"
	// CycleTypeMonthDay puts MMDD in the barcode and advances one day per cycle
	CycleTypeMonthDay CycleType = "MONTH_DAY"
)

func (t CycleType) Validate() error {
	switch t {
	case CycleTypeYearMonth, CycleTypeMonthDay:
		return nil
	default:
		return ierr.NewError("invalid cycle type").
			WithHint("Cycle type must be YEAR_MONTH or MONTH_DAY").
			WithReportableDetails(map[string]any{
				"cycle_type": string(t),
			}).
			Mark(ierr.ErrValidation)
	}
}
