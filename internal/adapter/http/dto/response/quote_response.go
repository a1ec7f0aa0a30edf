package response

import (
	"github.com/digilabhq/DCQuoting/internal/domain/document"
	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/domain/pricing"
)

// QuoteResponse is the full working-quote view: the estimate, the
// editing cursor and the recomputed totals.
type QuoteResponse struct {
	Client        entities.Client     `json:"client"`
	Items         []ItemResponse      `json:"items"`
	TaxRate       float64             `json:"taxRate"`
	DiscountType  string              `json:"discountType"`
	DiscountValue float64             `json:"discountValue"`
	Revision      int                 `json:"revision"`
	QuoteNumber   string              `json:"quoteNumber"`
	Date          string              `json:"date"`
	CurrentIndex  int                 `json:"currentIndex"`
	Totals        pricing.QuoteTotals `json:"totals"`
}

// ItemResponse is one line item with its variant discriminator.
type ItemResponse struct {
	Type   string                             `json:"type"`
	Name   string                             `json:"name"`
	Notes  string                             `json:"notes"`
	Closet *entities.ClosetSpec               `json:"closet,omitempty"`
	Addons map[string]entities.AddonSelection `json:"addons,omitempty"`

	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

func FromQuote(q *entities.Quote, current int, totals pricing.QuoteTotals) QuoteResponse {
	items := make([]ItemResponse, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, fromItem(item))
	}
	return QuoteResponse{
		Client:        q.Client,
		Items:         items,
		TaxRate:       q.TaxRate,
		DiscountType:  string(q.DiscountType),
		DiscountValue: q.DiscountValue,
		Revision:      q.Revision,
		QuoteNumber:   q.QuoteNumber,
		Date:          q.Date,
		CurrentIndex:  current,
		Totals:        totals,
	}
}

func fromItem(item entities.LineItem) ItemResponse {
	switch it := item.(type) {
	case *entities.RoomItem:
		closet := it.Closet
		return ItemResponse{
			Type:   "room",
			Name:   it.Name,
			Notes:  it.Notes,
			Closet: &closet,
			Addons: it.Addons,
		}
	case *entities.CustomItem:
		return ItemResponse{
			Type:        "custom",
			Name:        it.Name,
			Notes:       it.Notes,
			Description: it.Description,
			Price:       it.Price,
		}
	default:
		return ItemResponse{}
	}
}

// ItemAddedResponse reports the cursor after appending an item.
type ItemAddedResponse struct {
	Index int `json:"index"`
}

// QuoteNumberResponse reports a regenerated quote number.
type QuoteNumberResponse struct {
	QuoteNumber string `json:"quoteNumber"`
}

// DocumentResponse carries the rendered printable quote.
type DocumentResponse struct {
	QuoteNumber  string                 `json:"quoteNumber"`
	Document     string                 `json:"document"`
	Descriptions []document.Description `json:"descriptions"`
}
