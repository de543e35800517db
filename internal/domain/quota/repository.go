package quota

import "context"

// Repository defines the interface for quota account persistence operations.
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccountByID(ctx context.Context, id string) (*Account, error)

	// Credit adds amount to the account balance and returns the new balance.
	Credit(ctx context.Context, id string, amount int64) (int64, error)

	// ConditionalDeduct subtracts amount and records newKey as the account's
	// last idempotency key in a single atomic write. The write only applies
	// while the stored key still equals expectedPriorKey and the balance
	// covers the amount; otherwise it affects no rows and the implementation
	// returns an error marked ErrVersionConflict. Callers re-read to decide
	// whether a concurrent duplicate already applied the deduction.
	ConditionalDeduct(ctx context.Context, id string, amount int64, expectedPriorKey, newKey string) (int64, error)
}
