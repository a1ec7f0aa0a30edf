// Package pricing computes monetary breakdowns for quote line items
// and quote-level totals. All functions are pure: they read the rate
// table and the quote, and never mutate either.
package pricing

import (
	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/domain/rates"
)

// ItemBreakdown is the priced decomposition of one line item. Custom
// items carry their flat price in Total with zero components.
type ItemBreakdown struct {
	Base             float64 `json:"base"`
	MaterialUpcharge float64 `json:"materialUpcharge"`
	Addons           float64 `json:"addons"`
	Total            float64 `json:"total"`
}

// QuoteTotals aggregates every line item of a quote.
//
// Order of application is fixed: subtotal, then discount, then tax on
// the discounted amount. A discount larger than the subtotal legally
// produces a negative after-discount base; no clamping anywhere.
type QuoteTotals struct {
	Base             float64         `json:"base"`
	MaterialUpcharge float64         `json:"materialUpcharge"`
	Addons           float64         `json:"addons"`
	CustomTotal      float64         `json:"customTotal"`
	Subtotal         float64         `json:"subtotal"`
	Discount         float64         `json:"discount"`
	AfterDiscount    float64         `json:"afterDiscount"`
	Tax              float64         `json:"tax"`
	Total            float64         `json:"total"`
	Items            []ItemBreakdown `json:"items"`
}

// PriceItem computes the breakdown of a single line item against the
// rate table. Unknown depth, material or addon keys contribute zero;
// stale configuration references must never block pricing.
func PriceItem(t rates.Table, item entities.LineItem) ItemBreakdown {
	switch it := item.(type) {
	case *entities.CustomItem:
		return ItemBreakdown{Total: it.Price}
	case *entities.RoomItem:
		base := roomBase(t, it)
		upcharge := roomMaterialUpcharge(t, it)
		addons := roomAddons(t, it)
		return ItemBreakdown{
			Base:             base,
			MaterialUpcharge: upcharge,
			Addons:           addons,
			Total:            base + upcharge + addons,
		}
	default:
		return ItemBreakdown{}
	}
}

func roomBase(t rates.Table, r *entities.RoomItem) float64 {
	return r.Closet.LinearFeet * t.BaseRate(r.Closet.Depth)
}

func roomMaterialUpcharge(t rates.Table, r *entities.RoomItem) float64 {
	m, ok := t.MaterialByID(r.Closet.Material)
	if !ok {
		return 0
	}
	return r.Closet.LinearFeet * m.Upcharge
}

func roomAddons(t rates.Table, r *entities.RoomItem) float64 {
	var total float64
	for key, sel := range r.Addons {
		if !sel.Enabled || sel.Quantity <= 0 {
			continue
		}
		cfg, ok := t.AddonByKey(key)
		if !ok {
			continue
		}
		total += sel.Quantity * cfg.Price
	}
	return total
}

// Totals aggregates all line items in list order, then applies discount
// and tax: total = (subtotal - discount) * (1 + taxRate/100).
func Totals(t rates.Table, q *entities.Quote) QuoteTotals {
	out := QuoteTotals{Items: make([]ItemBreakdown, 0, len(q.Items))}

	for _, item := range q.Items {
		b := PriceItem(t, item)
		out.Items = append(out.Items, b)
		out.Base += b.Base
		out.MaterialUpcharge += b.MaterialUpcharge
		out.Addons += b.Addons
		if _, ok := item.(*entities.CustomItem); ok {
			out.CustomTotal += b.Total
		}
	}

	out.Subtotal = out.Base + out.MaterialUpcharge + out.Addons + out.CustomTotal

	if q.DiscountValue > 0 {
		if q.DiscountType == entities.DiscountPercent {
			out.Discount = out.Subtotal * (q.DiscountValue / 100)
		} else {
			out.Discount = q.DiscountValue
		}
	}
	out.AfterDiscount = out.Subtotal - out.Discount
	out.Tax = out.AfterDiscount * (q.TaxRate / 100)
	out.Total = out.AfterDiscount + out.Tax
	return out
}
