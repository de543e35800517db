package barcode

import (
	"fmt"
	"time"

	ierr "github.com/paybar/paybar/internal/errors"
	"github.com/paybar/paybar/internal/types"
)

// maxAmount is the largest amount the 9-digit barcode field can carry.
const maxAmount = 999_999_999

// DefaultMaxCycles caps a generation request when no explicit cap is configured.
const DefaultMaxCycles = 120

// Request describes one barcode sequence generation.
type Request struct {
	// SegmentA and SegmentB are the payer's fixed identification segments,
	// emitted verbatim as the first two barcodes of every cycle.
	SegmentA string
	SegmentB string
	// DueDateROC is the first cycle's due date as a 7-digit ROC string (YYYMMDD).
	DueDateROC string
	CycleType  types.CycleType
	CycleCount int
	// InitialAmount is the first cycle's amount in currency minor units.
	InitialAmount int64
	// IncrementAmount is added to the amount after each cycle.
	IncrementAmount int64
}

// Cycle is one generated billing cycle.
type Cycle struct {
	Serial   int
	Amount   int64
	DueDate  time.Time
	Barcodes [3]string
}

// Generator produces barcode sequences. It is stateless and safe for
// concurrent use.
type Generator struct {
	maxCycles   int
	strictDates bool
}

func NewGenerator(maxCycles int, strictDates bool) *Generator {
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	return &Generator{maxCycles: maxCycles, strictDates: strictDates}
}

// Generate produces exactly req.CycleCount cycles with 1-based serials,
// advancing the amount by IncrementAmount and the due date by one month
// (YEAR_MONTH) or one day (MONTH_DAY) between cycles. All failures are
// detected before any cycle is returned.
func (g *Generator) Generate(req Request) ([]Cycle, error) {
	if err := g.validate(req); err != nil {
		return nil, err
	}

	decode := DecodeROCDate
	if g.strictDates {
		decode = DecodeROCDateStrict
	}
	date, err := decode(req.DueDateROC)
	if err != nil {
		return nil, err
	}

	// The identification segments are fixed across cycles, so their digit
	// forms are computed once.
	encA := EncodeAlphaNumeric(req.SegmentA)
	encB := EncodeAlphaNumeric(req.SegmentB)

	cycles := make([]Cycle, 0, req.CycleCount)
	amount := req.InitialAmount
	for i := 0; i < req.CycleCount; i++ {
		if amount < 0 || amount > maxAmount {
			return nil, ierr.NewError("cycle amount out of range").
				WithHintf("Amount of cycle %d does not fit the 9-digit barcode field", i+1).
				WithReportableDetails(map[string]any{
					"serial": i + 1,
					"amount": amount,
				}).
				Mark(ierr.ErrInvalidAmount)
		}

		third := buildThirdSegment(encA, encB, req.CycleType, date, amount)
		cycles = append(cycles, Cycle{
			Serial:   i + 1,
			Amount:   amount,
			DueDate:  date,
			Barcodes: [3]string{req.SegmentA, req.SegmentB, third},
		})

		amount += req.IncrementAmount
		if req.CycleType == types.CycleTypeYearMonth {
			date = date.AddDate(0, 1, 0)
		} else {
			date = date.AddDate(0, 0, 1)
		}
	}
	return cycles, nil
}

func (g *Generator) validate(req Request) error {
	if req.SegmentA == "" || req.SegmentB == "" {
		return ierr.NewError("missing identification segment").
			WithHint("Both barcode segments are required").
			Mark(ierr.ErrValidation)
	}
	if err := req.CycleType.Validate(); err != nil {
		return err
	}
	if req.CycleCount < 1 {
		return ierr.NewError("cycle count must be at least 1").
			WithHint("Cycle count must be a positive integer").
			Mark(ierr.ErrValidation)
	}
	if req.CycleCount > g.maxCycles {
		return ierr.NewError("cycle count exceeds limit").
			WithHintf("At most %d cycles may be generated per request", g.maxCycles).
			WithReportableDetails(map[string]any{
				"cycle_count": req.CycleCount,
				"max_cycles":  g.maxCycles,
			}).
			Mark(ierr.ErrValidation)
	}
	if req.InitialAmount <= 0 {
		return ierr.NewError("amount must be positive").
			WithHint("Payment amount must be greater than zero").
			WithReportableDetails(map[string]any{
				"initial_amount": req.InitialAmount,
			}).
			Mark(ierr.ErrInvalidAmount)
	}
	return nil
}

// buildThirdSegment derives the 15-character checksum segment for one cycle:
// 4-digit date slice, two checksum characters, 9-digit zero-padded amount.
func buildThirdSegment(encA, encB string, ct types.CycleType, date time.Time, amount int64) string {
	padded := fmt.Sprintf("%09d", amount)

	compact := EncodeCompact(date)
	var datePart string
	if ct == types.CycleTypeYearMonth {
		datePart = compact[0:4] // YYMM
	} else {
		datePart = compact[2:6] // MMDD
	}

	tail := datePart + padded
	oddSum := PositionalSum(encA, ParityOdd) + PositionalSum(encB, ParityOdd) + PositionalSum(tail, ParityOdd)
	evenSum := PositionalSum(encA, ParityEven) + PositionalSum(encB, ParityEven) + PositionalSum(tail, ParityEven)

	return datePart + string(ChecksumChar(oddSum, ParityOdd)) + string(ChecksumChar(evenSum, ParityEven)) + padded
}
