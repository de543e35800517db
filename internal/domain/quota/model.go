package quota

import (
	ierr "github.com/paybar/paybar/internal/errors"
	"github.com/paybar/paybar/internal/types"
)

// Account is a consumable generation-quota balance for one customer.
// Balance counts whole barcode sheets; LastIdempotencyKey remembers the most
// recent deduction's client token so a retried request is not charged twice.
type Account struct {
	ID                 string `db:"id" json:"id"`
	CustomerID         string `db:"customer_id" json:"customer_id"`
	Balance            int64  `db:"balance" json:"balance"`
	LastIdempotencyKey string `db:"last_idempotency_key" json:"last_idempotency_key"`
	types.BaseModel
}

func (a *Account) TableName() string {
	return "quota_accounts"
}

func (a *Account) Validate() error {
	if a.CustomerID == "" {
		return ierr.NewError("customer_id is required").
			WithHint("Quota account must belong to a customer").
			Mark(ierr.ErrValidation)
	}
	if a.Balance < 0 {
		return ierr.NewError("balance cannot be negative").
			WithReportableDetails(map[string]any{
				"balance": a.Balance,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
