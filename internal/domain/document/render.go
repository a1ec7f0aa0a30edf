package document

import (
	"fmt"
	"strings"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/domain/pricing"
	"github.com/digilabhq/DCQuoting/internal/domain/rates"
)

const (
	termsLine    = "Terms: 50% deposit required. Balance due upon completion. Valid for 30 days."
	thanksLine   = "Thank you for your business!"
	contactLine  = "Rangel Pineda · 678-709-3790 · rangelp@desirecabinets.com"
	documentRule = "----------------------------------------------------------------------"
)

// HasPriceableContent reports whether any item would print a non-zero
// price: a room with linear feet or a custom item with a price. Exports
// are withheld when this is false.
func HasPriceableContent(q *entities.Quote) bool {
	for _, item := range q.Items {
		switch it := item.(type) {
		case *entities.RoomItem:
			if it.Closet.LinearFeet > 0 {
				return true
			}
		case *entities.CustomItem:
			if it.Price > 0 {
				return true
			}
		}
	}
	return false
}

// RenderText lays out the printable quote: header with client block and
// quote metadata, one section per line item with its description and
// notes, the totals block, and the fixed terms and footer.
func RenderText(t rates.Table, q *entities.Quote, totals pricing.QuoteTotals) string {
	var b strings.Builder

	b.WriteString("DESIRE CABINETS LLC")
	b.WriteString(strings.Repeat(" ", len(documentRule)-len("DESIRE CABINETS LLC")-len("QUOTE")))
	b.WriteString("QUOTE\n")
	b.WriteString(documentRule + "\n\n")

	quoteNum := q.QuoteNumber
	if q.Revision > 0 {
		quoteNum = fmt.Sprintf("%s (Rev. %d)", q.QuoteNumber, q.Revision)
	}
	clientName := q.Client.Name
	if clientName == "" {
		clientName = "—"
	}
	b.WriteString("CLIENT: " + clientName + "\n")
	for _, line := range []string{q.Client.Address, q.Client.Phone, q.Client.Email} {
		if line != "" {
			b.WriteString("        " + line + "\n")
		}
	}
	b.WriteString("QUOTE #: " + quoteNum + "\n")
	b.WriteString("DATE:    " + q.Date + "\n\n")

	b.WriteString("ITEM DESCRIPTION\n")
	b.WriteString(documentRule + "\n")

	for i, item := range q.Items {
		desc := Describe(t, item)
		b.WriteString(fmt.Sprintf("%s%s\n", desc.Title, amountColumn(desc.Title, totals.Items[i].Total)))
		for _, detail := range desc.Details {
			b.WriteString("  - " + detail + "\n")
		}
		if notes := strings.TrimSpace(item.ItemNotes()); notes != "" {
			b.WriteString("  - Note: " + notes + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(documentRule + "\n")
	writeTotal(&b, "SUBTOTAL", totals.Subtotal)
	if totals.Discount > 0 {
		label := "DISCOUNT"
		if q.DiscountType == entities.DiscountPercent {
			label = fmt.Sprintf("DISCOUNT (%s%%)", trimNumber(q.DiscountValue))
		}
		writeTotal(&b, label, -totals.Discount)
	}
	if q.TaxRate > 0 {
		writeTotal(&b, fmt.Sprintf("TAX (%s%%)", trimNumber(q.TaxRate)), totals.Tax)
	}
	writeTotal(&b, "TOTAL", totals.Total)

	b.WriteString("\n" + termsLine + "\n\n")
	b.WriteString(thanksLine + "\n")
	b.WriteString(contactLine + "\n")
	return b.String()
}

func amountColumn(prefix string, amount float64) string {
	cell := fmt.Sprintf("$%.2f", amount)
	pad := len(documentRule) - len(prefix) - len(cell)
	if pad < 1 {
		pad = 1
	}
	return strings.Repeat(" ", pad) + cell
}

func writeTotal(b *strings.Builder, label string, amount float64) {
	cell := fmt.Sprintf("$%.2f", amount)
	if amount < 0 {
		cell = fmt.Sprintf("-$%.2f", -amount)
	}
	pad := len(documentRule) - len(label) - len(cell)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(label + strings.Repeat(" ", pad) + cell + "\n")
}
