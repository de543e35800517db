package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/paybar/paybar/internal/api/dto"
	"github.com/paybar/paybar/internal/barcode"
)

// BarcodeService defines the interface for barcode sequence generation
type BarcodeService interface {
	// GenerateSequence produces one barcode triple per billing cycle. It is a
	// pure computation: quota is deducted by a separate, later call against
	// the same idempotency key once the client has the sheets in hand.
	GenerateSequence(ctx context.Context, req *dto.GenerateBarcodesRequest) (*dto.GenerateBarcodesResponse, error)
}

type barcodeService struct {
	ServiceParams
	generator *barcode.Generator
}

// NewBarcodeService creates a new instance of BarcodeService
func NewBarcodeService(params ServiceParams) BarcodeService {
	return &barcodeService{
		ServiceParams: params,
		generator: barcode.NewGenerator(
			params.Config.Barcode.MaxCycles,
			params.Config.Barcode.StrictDates,
		),
	}
}

func (s *barcodeService) GenerateSequence(ctx context.Context, req *dto.GenerateBarcodesRequest) (*dto.GenerateBarcodesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cycles, err := s.generator.Generate(req.ToGenerationRequest())
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("generated barcode sequence",
		"cycle_type", req.CycleType,
		"cycle_count", len(cycles),
		"idempotency_key", req.IdempotencyKey,
	)

	return &dto.GenerateBarcodesResponse{
		Items:          lo.Map(cycles, func(c barcode.Cycle, _ int) dto.BarcodeCycleResponse { return dto.FromCycle(c) }),
		IdempotencyKey: req.IdempotencyKey,
	}, nil
}
