package document

import (
	"reflect"
	"testing"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/domain/rates"
)

func TestDescribe(t *testing.T) {
	table := rates.Default()

	t.Run("room with name and drawing number", func(t *testing.T) {
		r := entities.NewRoom()
		r.Name = "Primary Bedroom"
		r.Closet.DrawingNumber = "D-7"
		r.Closet.Material = "regal-cherry"

		got := Describe(table, r)
		want := Description{
			Title: "Primary Bedroom - Walk-In",
			Details: []string{
				`16" deep x 96" high`,
				"Drawing # D-7",
				`3/4" Regal Cherry melamine finish`,
				"Pulls/Handles: Black - Style 1",
				"Hanging Rod: Black - Style 1",
				"Installation and delivery included",
			},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("unexpected description:\nwant %+v\ngot  %+v", want, got)
		}
	})

	t.Run("unnamed reach-in uses type as title", func(t *testing.T) {
		r := entities.NewRoom()
		r.Closet.ClosetType = entities.ClosetReachIn

		got := Describe(table, r)
		if got.Title != "Reach-In" {
			t.Fatalf("unexpected title: %s", got.Title)
		}
	})

	t.Run("stale ids fall back to defaults", func(t *testing.T) {
		r := entities.NewRoom()
		r.Closet.Material = "discontinued"
		r.Closet.PullsHandles = "discontinued"
		r.Closet.HangingRods = "discontinued"

		got := Describe(table, r)
		var found int
		for _, d := range got.Details {
			switch d {
			case `3/4" White melamine finish`,
				"Pulls/Handles: Black - Style 1",
				"Hanging Rod: Black - Style 1":
				found++
			}
		}
		if found != 3 {
			t.Fatalf("fallbacks missing from details: %v", got.Details)
		}
	})

	t.Run("addon lines use LF suffix only for per-linear-foot units", func(t *testing.T) {
		r := entities.NewRoom()
		r.Addons["colorChangingLEDs"] = entities.AddonSelection{Enabled: true, Quantity: 12}
		r.Addons["drawers"] = entities.AddonSelection{Enabled: true, Quantity: 4}
		r.Addons["hamper"] = entities.AddonSelection{Enabled: false, Quantity: 1}

		got := Describe(table, r)
		var hasLED, hasDrawers bool
		for _, d := range got.Details {
			switch d {
			case "LED Lighting (12 LF)":
				hasLED = true
			case "Drawers (4)":
				hasDrawers = true
			case "Hamper (1)":
				t.Fatalf("disabled addon should not be described")
			}
		}
		if !hasLED || !hasDrawers {
			t.Fatalf("addon lines missing: %v", got.Details)
		}
	})

	t.Run("custom item with description", func(t *testing.T) {
		got := Describe(table, &entities.CustomItem{Name: "Bench", Description: "Window bench"})
		if got.Title != "Bench" || len(got.Details) != 1 || got.Details[0] != "Window bench" {
			t.Fatalf("unexpected description: %+v", got)
		}
	})

	t.Run("unnamed custom item titled Custom Item", func(t *testing.T) {
		got := Describe(table, &entities.CustomItem{})
		if got.Title != "Custom Item" || len(got.Details) != 0 {
			t.Fatalf("unexpected description: %+v", got)
		}
	})
}

func TestActiveAddons(t *testing.T) {
	table := rates.Default()

	r := entities.NewRoom()
	r.Addons["drawers"] = entities.AddonSelection{Enabled: true, Quantity: 2}
	r.Addons["colorChangingLEDs"] = entities.AddonSelection{Enabled: true, Quantity: 8}
	r.Addons["mirror"] = entities.AddonSelection{Enabled: true, Quantity: 0}
	r.Addons["discontinued"] = entities.AddonSelection{Enabled: true, Quantity: 1}

	got := ActiveAddons(table, r)
	if len(got) != 2 {
		t.Fatalf("expected 2 active addons, got %d: %+v", len(got), got)
	}
	if got[0].Key != "colorChangingLEDs" || got[1].Key != "drawers" {
		t.Fatalf("expected stable key order, got %+v", got)
	}
	if got[0].Unit != rates.UnitPerLinearFoot || got[0].Price != 75 {
		t.Fatalf("catalog fields not resolved: %+v", got[0])
	}
}

func TestTrimNumber(t *testing.T) {
	cases := map[float64]string{
		96:    "96",
		2.5:   "2.5",
		0:     "0",
		12.25: "12.25",
	}
	for in, want := range cases {
		if got := trimNumber(in); got != want {
			t.Fatalf("trimNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
