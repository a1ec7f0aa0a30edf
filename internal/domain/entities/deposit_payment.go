package entities

import (
	"encoding/json"
	"time"
)

// DepositStatus represents the deposit processing outcome.

type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusDenied   DepositStatus = "denied"
)

// DepositPayment is a recorded deposit against a quote. The printed
// quote terms ask for a 50% deposit, so Amount is half of the quote
// total at the time the deposit was raised.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Gateway payload:
//   - ProviderResponseRaw keeps the original provider body (JSON) for
//     traceability; schema varies between gateway integrations.
type DepositPayment struct {
	ID          string        `json:"id"`
	QuoteNumber string        `json:"quote_number"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      DepositStatus `json:"status"`

	ProviderPaymentID   string          `json:"provider_payment_id,omitempty"`
	ProviderResponseRaw json.RawMessage `json:"provider_response_raw,omitempty"`
}
