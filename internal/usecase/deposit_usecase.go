package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/digilabhq/DCQuoting/internal/domain/document"
	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/usecase/interfaces"
)

var (
	ErrInvalidDepositPayload = errors.New("invalid deposit payment payload")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
)

// The printed quote terms ask for a 50% deposit.
const depositRate = 0.5

// IDepositUseCase raises and lists deposit payments against the
// working quote.

type IDepositUseCase interface {
	CreateDeposit(ctx context.Context, payerPayload json.RawMessage) (entities.DepositPayment, error)
	ListDeposits(ctx context.Context) ([]entities.DepositPayment, error)
}

type DepositUseCase struct {
	repo    interfaces.IDepositRepository
	quotes  IQuoteUseCase
	gateway interfaces.IPaymentGateway
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, quotes IQuoteUseCase, gateway interfaces.IPaymentGateway) *DepositUseCase {
	return &DepositUseCase{repo: repo, quotes: quotes, gateway: gateway}
}

// CreateDeposit charges half of the current quote total through the
// payment gateway and records the outcome. The payer payload is passed
// through to the provider, enriched with the amount and the quote
// number as external reference; the amount is always computed from the
// quote, never taken from the caller.
func (u *DepositUseCase) CreateDeposit(ctx context.Context, payerPayload json.RawMessage) (entities.DepositPayment, error) {
	if u.gateway == nil {
		return entities.DepositPayment{}, ErrGatewayNotConfigured
	}
	if len(payerPayload) == 0 {
		payerPayload = json.RawMessage("{}")
	}
	if !json.Valid(payerPayload) {
		log.Printf("[deposit][usecase] invalid payer payload (not json)")
		return entities.DepositPayment{}, ErrInvalidDepositPayload
	}

	quote, _ := u.quotes.View()
	if !document.HasPriceableContent(quote) {
		log.Printf("[deposit][usecase] refused: quote %s has no priceable content", quote.QuoteNumber)
		return entities.DepositPayment{}, ErrNothingToQuote
	}
	amount := u.quotes.Totals().Total * depositRate

	var reqMap map[string]any
	if err := json.Unmarshal(payerPayload, &reqMap); err != nil {
		return entities.DepositPayment{}, ErrInvalidDepositPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quote.QuoteNumber
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("50%% deposit for quote %s", quote.QuoteNumber)
	}
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	log.Printf("[deposit][usecase] calling payment gateway quote=%s amount=%.2f", quote.QuoteNumber, amount)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[deposit][usecase] payment gateway failed quote=%s err=%v", quote.QuoteNumber, err)
		return entities.DepositPayment{}, err
	}

	status := entities.DepositStatusPending
	switch providerStatus {
	case "approved":
		status = entities.DepositStatusApproved
	case "rejected", "cancelled":
		status = entities.DepositStatusDenied
	}

	d := entities.DepositPayment{
		ID:                  uuid.NewString(),
		QuoteNumber:         quote.QuoteNumber,
		Amount:              amount,
		Date:                time.Now().UTC(),
		Status:              status,
		ProviderPaymentID:   providerPaymentID,
		ProviderResponseRaw: providerResp,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[deposit][usecase] repository create failed quote=%s deposit_id=%s err=%v", quote.QuoteNumber, d.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[deposit][usecase] deposit recorded quote=%s deposit_id=%s status=%s", quote.QuoteNumber, created.ID, created.Status)
	return created, nil
}

// ListDeposits returns the deposits recorded for the working quote.
func (u *DepositUseCase) ListDeposits(ctx context.Context) ([]entities.DepositPayment, error) {
	quote, _ := u.quotes.View()
	return u.repo.ListByQuoteNumber(ctx, quote.QuoteNumber)
}
