package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/paybar/paybar/internal/domain/quota"
	ierr "github.com/paybar/paybar/internal/errors"
)

// InMemoryQuotaStore mirrors the semantics of the postgres quota repository:
// ConditionalDeduct applies its predicate and write under one lock, so it is
// atomic with respect to concurrent callers exactly like the SQL statement.
type InMemoryQuotaStore struct {
	mu       sync.RWMutex
	accounts map[string]*quota.Account
}

func NewInMemoryQuotaStore() *InMemoryQuotaStore {
	return &InMemoryQuotaStore{
		accounts: make(map[string]*quota.Account),
	}
}

func (r *InMemoryQuotaStore) CreateAccount(ctx context.Context, a *quota.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[a.ID]; exists {
		return ierr.NewError("quota account already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	stored := *a
	r.accounts[a.ID] = &stored
	return nil
}

func (r *InMemoryQuotaStore) GetAccountByID(ctx context.Context, id string) (*quota.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.accounts[id]
	if !exists {
		return nil, ierr.NewError("quota account not found").
			WithHintf("No quota account with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	copied := *a
	return &copied, nil
}

func (r *InMemoryQuotaStore) Credit(ctx context.Context, id string, amount int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.accounts[id]
	if !exists {
		return 0, ierr.NewError("quota account not found").
			WithHintf("No quota account with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	a.Balance += amount
	a.UpdatedAt = time.Now().UTC()
	return a.Balance, nil
}

func (r *InMemoryQuotaStore) ConditionalDeduct(ctx context.Context, id string, amount int64, expectedPriorKey, newKey string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.accounts[id]
	if !exists {
		return 0, ierr.NewError("quota account not found").
			WithHintf("No quota account with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	if a.LastIdempotencyKey != expectedPriorKey || a.Balance < amount {
		return 0, ierr.NewError("conditional quota deduction did not apply").
			WithHint("The account changed concurrently, retry the deduction").
			Mark(ierr.ErrVersionConflict)
	}

	a.Balance -= amount
	a.LastIdempotencyKey = newKey
	a.UpdatedAt = time.Now().UTC()
	return a.Balance, nil
}

// Clear removes all accounts
func (r *InMemoryQuotaStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = make(map[string]*quota.Account)
}
