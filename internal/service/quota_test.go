package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/paybar/paybar/internal/api/dto"
	"github.com/paybar/paybar/internal/domain/quota"
	ierr "github.com/paybar/paybar/internal/errors"
	"github.com/paybar/paybar/internal/testutil"
)

type QuotaServiceSuite struct {
	testutil.BaseServiceTestSuite
	service QuotaService
}

func TestQuotaService(t *testing.T) {
	suite.Run(t, new(QuotaServiceSuite))
}

func (s *QuotaServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewQuotaService(s.params())
}

func (s *QuotaServiceSuite) params() ServiceParams {
	return ServiceParams{
		Logger:    s.GetLogger(),
		Config:    s.GetConfig(),
		QuotaRepo: s.GetStores().QuotaRepo,
	}
}

func (s *QuotaServiceSuite) createAccount(balance int64) *dto.QuotaAccountResponse {
	resp, err := s.service.CreateAccount(s.GetContext(), &dto.CreateQuotaAccountRequest{
		CustomerID:     "cust_123",
		InitialBalance: balance,
	})
	s.NoError(err)
	s.NotNil(resp)
	return resp
}

func (s *QuotaServiceSuite) TestCreateAccount() {
	resp := s.createAccount(10)
	s.NotEmpty(resp.ID)
	s.Contains(resp.ID, "acct")
	s.Equal("cust_123", resp.CustomerID)
	s.Equal(int64(10), resp.Balance)
}

func (s *QuotaServiceSuite) TestCreateAccountValidation() {
	resp, err := s.service.CreateAccount(s.GetContext(), &dto.CreateQuotaAccountRequest{})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
}

func (s *QuotaServiceSuite) TestGetAccount() {
	created := s.createAccount(7)

	resp, err := s.service.GetAccount(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(created.ID, resp.ID)
	s.Equal(int64(7), resp.Balance)
}

func (s *QuotaServiceSuite) TestGetAccountNotFound() {
	resp, err := s.service.GetAccount(s.GetContext(), "acct_missing")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *QuotaServiceSuite) TestTopUp() {
	created := s.createAccount(2)

	resp, err := s.service.TopUp(s.GetContext(), created.ID, &dto.TopUpQuotaRequest{Amount: 5})
	s.NoError(err)
	s.Equal(int64(7), resp.Balance)
}

func (s *QuotaServiceSuite) TestTopUpValidation() {
	created := s.createAccount(2)

	resp, err := s.service.TopUp(s.GetContext(), created.ID, &dto.TopUpQuotaRequest{Amount: -1})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
}

func (s *QuotaServiceSuite) TestDeduct() {
	created := s.createAccount(5)

	resp, err := s.service.Deduct(s.GetContext(), created.ID, &dto.DeductQuotaRequest{
		Amount:         3,
		IdempotencyKey: "k1",
	})
	s.NoError(err)
	s.Equal(int64(2), resp.Balance)
}

// A redelivered request with the key of the last applied deduction must be a
// no-op that still reports the post-deduction balance.
func (s *QuotaServiceSuite) TestDeductDuplicateKey() {
	created := s.createAccount(5)

	first, err := s.service.Deduct(s.GetContext(), created.ID, &dto.DeductQuotaRequest{
		Amount:         3,
		IdempotencyKey: "k1",
	})
	s.NoError(err)
	s.Equal(int64(2), first.Balance)

	second, err := s.service.Deduct(s.GetContext(), created.ID, &dto.DeductQuotaRequest{
		Amount:         3,
		IdempotencyKey: "k1",
	})
	s.NoError(err)
	s.Equal(int64(2), second.Balance)

	account, err := s.service.GetAccount(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(int64(2), account.Balance)
}

func (s *QuotaServiceSuite) TestDeductInsufficientBalance() {
	created := s.createAccount(5)

	_, err := s.service.Deduct(s.GetContext(), created.ID, &dto.DeductQuotaRequest{
		Amount:         3,
		IdempotencyKey: "k1",
	})
	s.NoError(err)

	resp, err := s.service.Deduct(s.GetContext(), created.ID, &dto.DeductQuotaRequest{
		Amount:         3,
		IdempotencyKey: "k2",
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsInsufficientBalance(err))

	// A rejected deduction must not touch the balance or the stored key.
	account, err := s.service.GetAccount(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(int64(2), account.Balance)

	again, err := s.service.Deduct(s.GetContext(), created.ID, &dto.DeductQuotaRequest{
		Amount:         2,
		IdempotencyKey: "k1",
	})
	s.NoError(err)
	s.Equal(int64(2), again.Balance)
}

func (s *QuotaServiceSuite) TestDeductValidation() {
	created := s.createAccount(5)

	testCases := []struct {
		name string
		req  *dto.DeductQuotaRequest
	}{
		{name: "zero amount", req: &dto.DeductQuotaRequest{Amount: 0, IdempotencyKey: "k1"}},
		{name: "negative amount", req: &dto.DeductQuotaRequest{Amount: -3, IdempotencyKey: "k1"}},
		{name: "missing idempotency key", req: &dto.DeductQuotaRequest{Amount: 3}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.Deduct(s.GetContext(), created.ID, tc.req)
			s.Error(err)
			s.Nil(resp)
			s.True(ierr.IsValidation(err))
		})
	}
}

func (s *QuotaServiceSuite) TestDeductNotFound() {
	resp, err := s.service.Deduct(s.GetContext(), "acct_missing", &dto.DeductQuotaRequest{
		Amount:         1,
		IdempotencyKey: "k1",
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

// racingRepo lets a test interleave a competing write between the service's
// snapshot read and its conditional deduction.
type racingRepo struct {
	quota.Repository
	beforeDeduct func()
}

func (r *racingRepo) ConditionalDeduct(ctx context.Context, id string, amount int64, expectedPriorKey, newKey string) (int64, error) {
	if r.beforeDeduct != nil {
		hook := r.beforeDeduct
		r.beforeDeduct = nil
		hook()
	}
	return r.Repository.ConditionalDeduct(ctx, id, amount, expectedPriorKey, newKey)
}

// When two requests with the same idempotency key race, exactly one deduction
// is applied and both callers observe the post-deduction balance.
func (s *QuotaServiceSuite) TestDeductConcurrentDuplicate() {
	created := s.createAccount(5)

	store := s.GetStores().QuotaRepo
	racing := &racingRepo{Repository: store}
	racing.beforeDeduct = func() {
		_, err := store.ConditionalDeduct(s.GetContext(), created.ID, 3, "", "k1")
		s.NoError(err)
	}

	params := s.params()
	params.QuotaRepo = racing
	service := NewQuotaService(params)

	resp, err := service.Deduct(s.GetContext(), created.ID, &dto.DeductQuotaRequest{
		Amount:         3,
		IdempotencyKey: "k1",
	})
	s.NoError(err)
	s.Equal(int64(2), resp.Balance)

	account, err := s.service.GetAccount(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(int64(2), account.Balance)
}

// A race against a different idempotency key is a genuine conflict: the loser
// must not deduct and surfaces a retryable error instead.
func (s *QuotaServiceSuite) TestDeductConcurrentConflict() {
	created := s.createAccount(5)

	store := s.GetStores().QuotaRepo
	racing := &racingRepo{Repository: store}
	racing.beforeDeduct = func() {
		_, err := store.ConditionalDeduct(s.GetContext(), created.ID, 1, "", "other")
		s.NoError(err)
	}

	params := s.params()
	params.QuotaRepo = racing
	service := NewQuotaService(params)

	resp, err := service.Deduct(s.GetContext(), created.ID, &dto.DeductQuotaRequest{
		Amount:         3,
		IdempotencyKey: "k1",
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsVersionConflict(err))

	// Only the competing write landed.
	account, err := s.service.GetAccount(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(int64(4), account.Balance)
}
