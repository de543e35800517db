package postgres

import (
	"context"

	"github.com/paybar/paybar/internal/domain/quota"
	ierr "github.com/paybar/paybar/internal/errors"
	"github.com/paybar/paybar/internal/logger"
	"github.com/paybar/paybar/internal/postgres"
	"github.com/paybar/paybar/internal/types"
)

type quotaRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

// NewQuotaRepository creates a new instance of quota repository
func NewQuotaRepository(db *postgres.DB, logger *logger.Logger) quota.Repository {
	return &quotaRepository{
		db:     db,
		logger: logger,
	}
}

func (r *quotaRepository) CreateAccount(ctx context.Context, a *quota.Account) error {
	query := `
		INSERT INTO quota_accounts (
			id, customer_id, balance, last_idempotency_key,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :customer_id, :balance, :last_idempotency_key,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating quota account",
		"account_id", a.ID,
		"customer_id", a.CustomerID,
		"tenant_id", a.TenantID,
	)

	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create quota account").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *quotaRepository) GetAccountByID(ctx context.Context, id string) (*quota.Account, error) {
	query := `
		SELECT * FROM quota_accounts
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to query quota account").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("quota account not found").
			WithHintf("No quota account with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	var a quota.Account
	if err := rows.StructScan(&a); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan quota account").
			Mark(ierr.ErrDatabase)
	}
	return &a, nil
}

func (r *quotaRepository) Credit(ctx context.Context, id string, amount int64) (int64, error) {
	query := `
		UPDATE quota_accounts
		SET
			balance = balance + :amount,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status
		RETURNING balance`

	params := map[string]interface{}{
		"id":         id,
		"amount":     amount,
		"updated_by": types.GetUserID(ctx),
		"tenant_id":  types.GetTenantID(ctx),
		"status":     types.StatusPublished,
	}

	r.logger.Debugw("crediting quota account",
		"account_id", id,
		"amount", amount,
	)

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to credit quota account").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, ierr.NewError("quota account not found").
			WithHintf("No quota account with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	var balance int64
	if err := rows.Scan(&balance); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to scan quota balance").
			Mark(ierr.ErrDatabase)
	}
	return balance, nil
}

// ConditionalDeduct performs the whole read-decide-write as one statement: the
// predicate re-checks the stored idempotency key and the balance at write
// time, so two racing deductions can never both apply.
func (r *quotaRepository) ConditionalDeduct(ctx context.Context, id string, amount int64, expectedPriorKey, newKey string) (int64, error) {
	query := `
		UPDATE quota_accounts
		SET
			balance = balance - :amount,
			last_idempotency_key = :new_key,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status
		AND last_idempotency_key = :expected_key
		AND balance >= :amount
		RETURNING balance`

	params := map[string]interface{}{
		"id":           id,
		"amount":       amount,
		"new_key":      newKey,
		"expected_key": expectedPriorKey,
		"updated_by":   types.GetUserID(ctx),
		"tenant_id":    types.GetTenantID(ctx),
		"status":       types.StatusPublished,
	}

	r.logger.Debugw("deducting quota",
		"account_id", id,
		"amount", amount,
		"idempotency_key", newKey,
	)

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to deduct quota").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		// Either the key moved under us or the balance no longer covers the
		// amount; the caller re-reads to tell the two apart.
		return 0, ierr.NewError("conditional quota deduction did not apply").
			WithHint("The account changed concurrently, retry the deduction").
			WithReportableDetails(map[string]any{
				"account_id": id,
			}).
			Mark(ierr.ErrVersionConflict)
	}

	var balance int64
	if err := rows.Scan(&balance); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to scan quota balance").
			Mark(ierr.ErrDatabase)
	}
	return balance, nil
}
