package response

import (
	"testing"
	"time"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
)

func TestFromDeposit(t *testing.T) {
	now := time.Now().UTC()
	got := FromDeposit(entities.DepositPayment{
		ID:                "d-1",
		QuoteNumber:       "250307-1405-JD",
		Amount:            1161,
		Date:              now,
		Status:            entities.DepositStatusApproved,
		ProviderPaymentID: "mp-1",
	})
	if got.ID != "d-1" || got.Status != "approved" || got.Amount != 1161 || !got.Date.Equal(now) {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestFromDeposits(t *testing.T) {
	got := FromDeposits([]entities.DepositPayment{{ID: "d-1"}, {ID: "d-2"}})
	if len(got) != 2 || got[0].ID != "d-1" || got[1].ID != "d-2" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if empty := FromDeposits(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
