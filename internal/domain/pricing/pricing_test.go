package pricing

import (
	"math"
	"testing"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/domain/rates"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func room(linearFeet float64, depth int, material string) *entities.RoomItem {
	r := entities.NewRoom()
	r.Closet.LinearFeet = linearFeet
	r.Closet.Depth = depth
	r.Closet.Material = material
	return r
}

func TestPriceItem(t *testing.T) {
	table := rates.Default()

	t.Run("room base rate by depth", func(t *testing.T) {
		b := PriceItem(table, room(10, 16, "white"))
		if !almostEqual(b.Base, 2150) {
			t.Fatalf("expected base 2150, got %v", b.Base)
		}
		if !almostEqual(b.Total, 2150) {
			t.Fatalf("expected total 2150, got %v", b.Total)
		}
	})

	t.Run("material upcharge per linear foot", func(t *testing.T) {
		b := PriceItem(table, room(5, 19, "regal-cherry"))
		if !almostEqual(b.Base, 1125) {
			t.Fatalf("expected base 1125, got %v", b.Base)
		}
		if !almostEqual(b.MaterialUpcharge, 80) {
			t.Fatalf("expected upcharge 80, got %v", b.MaterialUpcharge)
		}
	})

	t.Run("enabled addon priced by quantity", func(t *testing.T) {
		r := room(5, 19, "regal-cherry")
		r.Addons["drawers"] = entities.AddonSelection{Enabled: true, Quantity: 3}
		b := PriceItem(table, r)
		if !almostEqual(b.Addons, 225) {
			t.Fatalf("expected addons 225, got %v", b.Addons)
		}
		if !almostEqual(b.Total, 1430) {
			t.Fatalf("expected total 1430, got %v", b.Total)
		}
	})

	t.Run("disabled addon contributes nothing", func(t *testing.T) {
		r := room(10, 16, "white")
		r.Addons["drawers"] = entities.AddonSelection{Enabled: false, Quantity: 3}
		r.Addons["hamper"] = entities.AddonSelection{Enabled: true, Quantity: 0}
		b := PriceItem(table, r)
		if !almostEqual(b.Addons, 0) {
			t.Fatalf("expected no addon charge, got %v", b.Addons)
		}
	})

	t.Run("unknown depth and material price to zero", func(t *testing.T) {
		b := PriceItem(table, room(10, 99, "unobtanium"))
		if !almostEqual(b.Total, 0) {
			t.Fatalf("expected total 0, got %v", b.Total)
		}
	})

	t.Run("unknown addon key skipped", func(t *testing.T) {
		r := room(10, 16, "white")
		r.Addons["discontinued"] = entities.AddonSelection{Enabled: true, Quantity: 2}
		b := PriceItem(table, r)
		if !almostEqual(b.Addons, 0) {
			t.Fatalf("expected no addon charge, got %v", b.Addons)
		}
	})

	t.Run("custom item carries flat price", func(t *testing.T) {
		b := PriceItem(table, &entities.CustomItem{Name: "Pantry", Price: 500})
		if !almostEqual(b.Total, 500) || b.Base != 0 || b.Addons != 0 {
			t.Fatalf("unexpected breakdown: %+v", b)
		}
	})
}

func TestTotals(t *testing.T) {
	table := rates.Default()

	t.Run("tax applied after subtotal", func(t *testing.T) {
		q := &entities.Quote{
			Items:        []entities.LineItem{room(10, 16, "white")},
			TaxRate:      8,
			DiscountType: entities.DiscountPercent,
		}
		got := Totals(table, q)
		if !almostEqual(got.Subtotal, 2150) {
			t.Fatalf("expected subtotal 2150, got %v", got.Subtotal)
		}
		if !almostEqual(got.Tax, 172) {
			t.Fatalf("expected tax 172, got %v", got.Tax)
		}
		if !almostEqual(got.Total, 2322) {
			t.Fatalf("expected total 2322, got %v", got.Total)
		}
	})

	t.Run("custom items counted in subtotal before discount", func(t *testing.T) {
		q := &entities.Quote{
			Items: []entities.LineItem{
				room(10, 16, "white"),
				&entities.CustomItem{Name: "Pantry", Price: 500},
			},
			TaxRate:       8,
			DiscountType:  entities.DiscountPercent,
			DiscountValue: 10,
		}
		got := Totals(table, q)
		if !almostEqual(got.Subtotal, 2650) {
			t.Fatalf("expected subtotal 2650, got %v", got.Subtotal)
		}
		if !almostEqual(got.Discount, 265) {
			t.Fatalf("expected discount 265, got %v", got.Discount)
		}
		if !almostEqual(got.AfterDiscount, 2385) {
			t.Fatalf("expected after-discount 2385, got %v", got.AfterDiscount)
		}
		if !almostEqual(got.CustomTotal, 500) {
			t.Fatalf("expected custom total 500, got %v", got.CustomTotal)
		}
	})

	t.Run("dollar discount is flat", func(t *testing.T) {
		q := &entities.Quote{
			Items:         []entities.LineItem{room(10, 16, "white")},
			DiscountType:  entities.DiscountDollar,
			DiscountValue: 150,
		}
		got := Totals(table, q)
		if !almostEqual(got.Discount, 150) {
			t.Fatalf("expected discount 150, got %v", got.Discount)
		}
		if !almostEqual(got.Total, 2000) {
			t.Fatalf("expected total 2000, got %v", got.Total)
		}
	})

	t.Run("zero discount value means no discount", func(t *testing.T) {
		q := &entities.Quote{
			Items:        []entities.LineItem{room(10, 16, "white")},
			DiscountType: entities.DiscountDollar,
		}
		got := Totals(table, q)
		if got.Discount != 0 {
			t.Fatalf("expected no discount, got %v", got.Discount)
		}
	})

	t.Run("oversized discount goes negative without clamping", func(t *testing.T) {
		q := &entities.Quote{
			Items:         []entities.LineItem{&entities.CustomItem{Price: 100}},
			TaxRate:       10,
			DiscountType:  entities.DiscountDollar,
			DiscountValue: 150,
		}
		got := Totals(table, q)
		if !almostEqual(got.AfterDiscount, -50) {
			t.Fatalf("expected after-discount -50, got %v", got.AfterDiscount)
		}
		if !almostEqual(got.Total, -55) {
			t.Fatalf("expected total -55, got %v", got.Total)
		}
	})

	t.Run("subtotal equals sum of item totals", func(t *testing.T) {
		r := room(7, 24, "gray")
		r.Addons["colorChangingLEDs"] = entities.AddonSelection{Enabled: true, Quantity: 7}
		q := &entities.Quote{
			Items: []entities.LineItem{
				r,
				&entities.CustomItem{Price: 321.5},
			},
			DiscountType: entities.DiscountPercent,
		}
		got := Totals(table, q)
		var sum float64
		for _, b := range got.Items {
			sum += b.Total
		}
		if !almostEqual(got.Subtotal, sum) {
			t.Fatalf("subtotal %v does not match item sum %v", got.Subtotal, sum)
		}
	})
}
