package request

import (
	"errors"
	"testing"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestSettingsRequest_Resolve(t *testing.T) {
	t.Run("valid discount types", func(t *testing.T) {
		for _, dt := range []string{"percent", "dollar"} {
			s, err := SettingsRequest{DiscountType: strPtr(dt)}.Resolve()
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", dt, err)
			}
			if string(*s.DiscountType) != dt {
				t.Fatalf("discount type not carried: %v", s.DiscountType)
			}
		}
	})

	t.Run("unknown discount type", func(t *testing.T) {
		if _, err := (SettingsRequest{DiscountType: strPtr("coupon")}).Resolve(); !errors.Is(err, ErrInvalidDiscountType) {
			t.Fatalf("expected ErrInvalidDiscountType, got %v", err)
		}
	})

	t.Run("absent fields stay nil", func(t *testing.T) {
		s, err := SettingsRequest{}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TaxRate != nil || s.DiscountType != nil || s.DiscountValue != nil || s.Revision != nil {
			t.Fatalf("expected all fields nil: %+v", s)
		}
	})
}

func TestRoomRequest_Resolve(t *testing.T) {
	t.Run("valid enums carried", func(t *testing.T) {
		f, err := RoomRequest{ClosetType: strPtr("reach-in"), Mounting: strPtr("wall")}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *f.ClosetType != entities.ClosetReachIn || *f.Mounting != entities.MountingWall {
			t.Fatalf("enums not carried: %+v", f)
		}
	})

	t.Run("unknown closet type", func(t *testing.T) {
		if _, err := (RoomRequest{ClosetType: strPtr("linen")}).Resolve(); !errors.Is(err, ErrInvalidClosetType) {
			t.Fatalf("expected ErrInvalidClosetType, got %v", err)
		}
	})

	t.Run("unknown mounting", func(t *testing.T) {
		if _, err := (RoomRequest{Mounting: strPtr("ceiling")}).Resolve(); !errors.Is(err, ErrInvalidMounting) {
			t.Fatalf("expected ErrInvalidMounting, got %v", err)
		}
	})
}

func TestClientRequest_ToClient(t *testing.T) {
	got := ClientRequest{Name: "Jane Doe", Address: "1 Main St", Phone: "555-0100", Email: "jane@example.com"}.ToClient()
	want := entities.Client{Name: "Jane Doe", Address: "1 Main St", Phone: "555-0100", Email: "jane@example.com"}
	if got != want {
		t.Fatalf("unexpected client: %+v", got)
	}
}
