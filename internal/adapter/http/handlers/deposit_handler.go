package handlers

import (
	"errors"
	"log"
	"net/http"

	response "github.com/digilabhq/DCQuoting/internal/adapter/http/dto/response"
	"github.com/digilabhq/DCQuoting/internal/usecase"
	"github.com/digilabhq/DCQuoting/pkg"

	"github.com/gin-gonic/gin"
)

type DepositHandler struct {
	usecase usecase.IDepositUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

// CreateDeposit charges the 50% deposit named in the quote terms. The
// body is forwarded to the payment provider as payer data and may be
// empty.
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	deposit, err := h.usecase.CreateDeposit(c.Request.Context(), payload)
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDeposit(deposit))
}

// ListDeposits returns every deposit recorded for the working quote.
func (h *DepositHandler) ListDeposits(c *gin.Context) {
	deposits, err := h.usecase.ListDeposits(c.Request.Context())
	if err != nil {
		log.Printf("[deposit][handler] list failed: %v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Could not list deposits", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeposits(deposits))
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Payer payload must be a JSON object", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToQuote):
		return pkg.NewDomainErrorSimple("NOTHING_TO_QUOTE", "Enter linear feet or a custom item price before collecting a deposit", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("PAYMENT_FAILED", "Deposit payment could not be processed", err, http.StatusBadGateway)
	}
}
