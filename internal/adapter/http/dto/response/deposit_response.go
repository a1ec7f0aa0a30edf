package response

import (
	"time"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
)

type DepositResponse struct {
	ID                string    `json:"id"`
	QuoteNumber       string    `json:"quote_number"`
	Amount            float64   `json:"amount"`
	Date              time.Time `json:"date"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
}

func FromDeposit(d entities.DepositPayment) DepositResponse {
	return DepositResponse{
		ID:                d.ID,
		QuoteNumber:       d.QuoteNumber,
		Amount:            d.Amount,
		Date:              d.Date,
		Status:            string(d.Status),
		ProviderPaymentID: d.ProviderPaymentID,
	}
}

func FromDeposits(ds []entities.DepositPayment) []DepositResponse {
	out := make([]DepositResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDeposit(d))
	}
	return out
}
