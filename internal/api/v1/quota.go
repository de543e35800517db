package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paybar/paybar/internal/api/dto"
	ierr "github.com/paybar/paybar/internal/errors"
	"github.com/paybar/paybar/internal/logger"
	"github.com/paybar/paybar/internal/service"
)

type QuotaHandler struct {
	service service.QuotaService
	log     *logger.Logger
}

func NewQuotaHandler(service service.QuotaService, log *logger.Logger) *QuotaHandler {
	return &QuotaHandler{service: service, log: log}
}

// CreateAccount godoc
// @Summary Create a quota account
// @Description Provision a generation-quota account for a customer
// @Tags Quota
// @Accept json
// @Produce json
// @Param request body dto.CreateQuotaAccountRequest true "Create account request"
// @Success 201 {object} dto.QuotaAccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quota/accounts [post]
func (h *QuotaHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateQuotaAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateAccount(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create quota account", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAccount godoc
// @Summary Get a quota account
// @Description Get a quota account and its current balance
// @Tags Quota
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.QuotaAccountResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quota/accounts/{id} [get]
func (h *QuotaHandler) GetAccount(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("account id is required").
			WithHint("Account ID must be present in the URL").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetAccount(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to get quota account", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TopUp godoc
// @Summary Top up a quota account
// @Description Add quota to an account
// @Tags Quota
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.TopUpQuotaRequest true "Top up request"
// @Success 200 {object} dto.QuotaBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quota/accounts/{id}/topup [post]
func (h *QuotaHandler) TopUp(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("account id is required").
			WithHint("Account ID must be present in the URL").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.TopUpQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.TopUp(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("Failed to top up quota account", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Deduct godoc
// @Summary Deduct quota from an account
// @Description Consume quota with at-most-once semantics per idempotency key
// @Tags Quota
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.DeductQuotaRequest true "Deduct request"
// @Success 200 {object} dto.QuotaBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quota/accounts/{id}/deduct [post]
func (h *QuotaHandler) Deduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("account id is required").
			WithHint("Account ID must be present in the URL").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.DeductQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Deduct(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("Failed to deduct quota", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
