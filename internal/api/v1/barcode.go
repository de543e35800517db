package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paybar/paybar/internal/api/dto"
	ierr "github.com/paybar/paybar/internal/errors"
	"github.com/paybar/paybar/internal/logger"
	"github.com/paybar/paybar/internal/service"
)

type BarcodeHandler struct {
	service service.BarcodeService
	log     *logger.Logger
}

func NewBarcodeHandler(service service.BarcodeService, log *logger.Logger) *BarcodeHandler {
	return &BarcodeHandler{service: service, log: log}
}

// GenerateBarcodes godoc
// @Summary Generate a payment barcode sequence
// @Description Generate one barcode triple per billing cycle for the given payer segments
// @Tags Barcodes
// @Accept json
// @Produce json
// @Param request body dto.GenerateBarcodesRequest true "Generation request"
// @Success 200 {object} dto.GenerateBarcodesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /barcodes/generate [post]
func (h *BarcodeHandler) GenerateBarcodes(c *gin.Context) {
	var req dto.GenerateBarcodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GenerateSequence(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to generate barcode sequence", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
