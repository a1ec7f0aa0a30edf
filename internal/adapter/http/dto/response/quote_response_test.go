package response

import (
	"testing"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/domain/pricing"
)

func TestFromQuote(t *testing.T) {
	room := entities.NewRoom()
	room.Name = "Primary"
	room.Closet.LinearFeet = 10
	room.Addons["drawers"] = entities.AddonSelection{Enabled: true, Quantity: 3}

	q := &entities.Quote{
		Client:       entities.Client{Name: "Jane Doe"},
		Items:        []entities.LineItem{room, &entities.CustomItem{Name: "Bench", Description: "Window bench", Price: 450}},
		TaxRate:      8,
		DiscountType: entities.DiscountPercent,
		QuoteNumber:  "250307-1405-JD",
		Date:         "2025-03-07",
	}

	got := FromQuote(q, 1, pricing.QuoteTotals{Subtotal: 2600})

	if got.QuoteNumber != "250307-1405-JD" || got.CurrentIndex != 1 || got.Totals.Subtotal != 2600 {
		t.Fatalf("header mismatch: %+v", got)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}

	first := got.Items[0]
	if first.Type != "room" || first.Name != "Primary" || first.Closet == nil {
		t.Fatalf("unexpected room item: %+v", first)
	}
	if first.Closet.LinearFeet != 10 || first.Addons["drawers"].Quantity != 3 {
		t.Fatalf("closet fields not carried: %+v", first)
	}

	second := got.Items[1]
	if second.Type != "custom" || second.Price != 450 || second.Description != "Window bench" {
		t.Fatalf("unexpected custom item: %+v", second)
	}
	if second.Closet != nil {
		t.Fatalf("custom item must not carry a closet: %+v", second)
	}
}
