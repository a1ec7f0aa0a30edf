package interfaces

import (
	"context"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositRepository interface {
	Create(ctx context.Context, d entities.DepositPayment) (entities.DepositPayment, error)
	ListByQuoteNumber(ctx context.Context, quoteNumber string) ([]entities.DepositPayment, error)
}
