package service

import (
	"context"

	"github.com/paybar/paybar/internal/api/dto"
	ierr "github.com/paybar/paybar/internal/errors"
)

// QuotaService defines the interface for quota account operations
type QuotaService interface {
	// CreateAccount provisions a quota account for a customer
	CreateAccount(ctx context.Context, req *dto.CreateQuotaAccountRequest) (*dto.QuotaAccountResponse, error)

	// GetAccount retrieves a quota account with its current balance
	GetAccount(ctx context.Context, id string) (*dto.QuotaAccountResponse, error)

	// TopUp adds quota to an account and returns the new balance
	TopUp(ctx context.Context, id string, req *dto.TopUpQuotaRequest) (*dto.QuotaBalanceResponse, error)

	// Deduct consumes quota with at-most-once semantics per idempotency key
	Deduct(ctx context.Context, id string, req *dto.DeductQuotaRequest) (*dto.QuotaBalanceResponse, error)
}

type quotaService struct {
	ServiceParams
}

// NewQuotaService creates a new instance of QuotaService
func NewQuotaService(params ServiceParams) QuotaService {
	return &quotaService{ServiceParams: params}
}

func (s *quotaService) CreateAccount(ctx context.Context, req *dto.CreateQuotaAccountRequest) (*dto.QuotaAccountResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account := req.ToAccount(ctx)
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := s.QuotaRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	s.Logger.Infow("created quota account",
		"account_id", account.ID,
		"customer_id", account.CustomerID,
		"balance", account.Balance,
	)
	return dto.FromAccount(account), nil
}

func (s *quotaService) GetAccount(ctx context.Context, id string) (*dto.QuotaAccountResponse, error) {
	account, err := s.QuotaRepo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromAccount(account), nil
}

func (s *quotaService) TopUp(ctx context.Context, id string, req *dto.TopUpQuotaRequest) (*dto.QuotaBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	balance, err := s.QuotaRepo.Credit(ctx, id, req.Amount)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("topped up quota account",
		"account_id", id,
		"amount", req.Amount,
		"balance", balance,
	)
	return &dto.QuotaBalanceResponse{Balance: balance}, nil
}

// Deduct applies the balance deduction at most once per idempotency key. The
// decision runs against a snapshot read, but the write itself is conditional
// on that snapshot still being current, so two racing requests can never both
// deduct: the loser of the race observes a version conflict and re-reads.
func (s *quotaService) Deduct(ctx context.Context, id string, req *dto.DeductQuotaRequest) (*dto.QuotaBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account, err := s.QuotaRepo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Duplicate delivery of the same logical request: the deduction already
	// happened, so return the current balance untouched.
	if account.LastIdempotencyKey == req.IdempotencyKey {
		s.Logger.Infow("skipping duplicate quota deduction",
			"account_id", id,
			"idempotency_key", req.IdempotencyKey,
		)
		return &dto.QuotaBalanceResponse{Balance: account.Balance}, nil
	}

	if account.Balance < req.Amount {
		return nil, ierr.NewError("quota balance too low").
			WithHintf("Balance %d does not cover the requested %d", account.Balance, req.Amount).
			WithReportableDetails(map[string]any{
				"account_id": id,
				"balance":    account.Balance,
				"requested":  req.Amount,
			}).
			Mark(ierr.ErrInsufficientBalance)
	}

	balance, err := s.QuotaRepo.ConditionalDeduct(ctx, id, req.Amount, account.LastIdempotencyKey, req.IdempotencyKey)
	if err == nil {
		s.Logger.Infow("deducted quota",
			"account_id", id,
			"amount", req.Amount,
			"balance", balance,
			"idempotency_key", req.IdempotencyKey,
		)
		return &dto.QuotaBalanceResponse{Balance: balance}, nil
	}
	if !ierr.IsVersionConflict(err) {
		return nil, err
	}

	// The conditional write lost a race. If the winner carried the same
	// idempotency key, the deduction is already applied and both callers
	// must observe the post-deduction balance; anything else is a genuine
	// conflict the caller should retry.
	current, readErr := s.QuotaRepo.GetAccountByID(ctx, id)
	if readErr != nil {
		return nil, readErr
	}
	if current.LastIdempotencyKey == req.IdempotencyKey {
		return &dto.QuotaBalanceResponse{Balance: current.Balance}, nil
	}
	return nil, err
}
