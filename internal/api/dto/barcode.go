package dto

import (
	"github.com/paybar/paybar/internal/barcode"
	"github.com/paybar/paybar/internal/types"
	"github.com/paybar/paybar/internal/validator"
)

// GenerateBarcodesRequest represents the request to generate a barcode sequence
type GenerateBarcodesRequest struct {
	SegmentA        string          `json:"segment_a" binding:"required" validate:"required"`
	SegmentB        string          `json:"segment_b" binding:"required" validate:"required"`
	DueDateROC      string          `json:"due_date_roc" binding:"required" validate:"required,len=7"`
	CycleType       types.CycleType `json:"cycle_type" binding:"required" validate:"required"`
	CycleCount      int             `json:"cycle_count" binding:"required" validate:"required,gte=1"`
	InitialAmount   int64           `json:"initial_amount" binding:"required" validate:"required,gt=0"`
	IncrementAmount int64           `json:"increment_amount"`
	IdempotencyKey  string          `json:"idempotency_key" binding:"required" validate:"required"`
}

func (r *GenerateBarcodesRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.CycleType.Validate()
}

// ToGenerationRequest converts the API request into the engine's request
func (r *GenerateBarcodesRequest) ToGenerationRequest() barcode.Request {
	return barcode.Request{
		SegmentA:        r.SegmentA,
		SegmentB:        r.SegmentB,
		DueDateROC:      r.DueDateROC,
		CycleType:       r.CycleType,
		CycleCount:      r.CycleCount,
		InitialAmount:   r.InitialAmount,
		IncrementAmount: r.IncrementAmount,
	}
}

// BarcodeCycleResponse is one billing cycle of a generated sequence
type BarcodeCycleResponse struct {
	Serial     int       `json:"serial"`
	Amount     int64     `json:"amount"`
	DueDateROC string    `json:"due_date_roc"`
	Barcodes   [3]string `json:"barcodes"`
}

// GenerateBarcodesResponse represents a generated barcode sequence
type GenerateBarcodesResponse struct {
	Items          []BarcodeCycleResponse `json:"items"`
	IdempotencyKey string                 `json:"idempotency_key"`
}

// FromCycle converts an engine cycle to its API representation
func FromCycle(c barcode.Cycle) BarcodeCycleResponse {
	return BarcodeCycleResponse{
		Serial:     c.Serial,
		Amount:     c.Amount,
		DueDateROC: barcode.EncodeROCDate(c.DueDate),
		Barcodes:   c.Barcodes,
	}
}
