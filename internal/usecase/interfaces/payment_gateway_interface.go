package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment provider used to
// collect quote deposits (e.g. Mercado Pago).
//
// The provider response payload is returned raw so it can be persisted
// for traceability regardless of provider schema.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
