package dto

import (
	"context"
	"time"

	"github.com/paybar/paybar/internal/domain/quota"
	"github.com/paybar/paybar/internal/types"
	"github.com/paybar/paybar/internal/validator"
)

// CreateQuotaAccountRequest represents the request to create a quota account
type CreateQuotaAccountRequest struct {
	CustomerID     string `json:"customer_id" binding:"required" validate:"required"`
	InitialBalance int64  `json:"initial_balance" validate:"gte=0"`
}

func (r *CreateQuotaAccountRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToAccount converts a create request to a quota account
func (r *CreateQuotaAccountRequest) ToAccount(ctx context.Context) *quota.Account {
	return &quota.Account{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTA_ACCOUNT),
		CustomerID: r.CustomerID,
		Balance:    r.InitialBalance,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
}

// TopUpQuotaRequest represents the request to add quota to an account
type TopUpQuotaRequest struct {
	Amount int64 `json:"amount" binding:"required" validate:"required,gt=0"`
}

func (r *TopUpQuotaRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// DeductQuotaRequest represents the request to consume quota from an account
type DeductQuotaRequest struct {
	Amount         int64  `json:"amount" binding:"required" validate:"required,gt=0"`
	IdempotencyKey string `json:"idempotency_key" binding:"required" validate:"required"`
}

func (r *DeductQuotaRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// QuotaAccountResponse represents a quota account in API responses
type QuotaAccountResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Balance    int64     `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// QuotaBalanceResponse carries the balance after a quota mutation
type QuotaBalanceResponse struct {
	Balance int64 `json:"balance"`
}

// FromAccount converts a quota account to its API representation
func FromAccount(a *quota.Account) *QuotaAccountResponse {
	return &QuotaAccountResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Balance:    a.Balance,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
