package snapshot

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
)

func TestDecode(t *testing.T) {
	t.Run("invalid json is rejected", func(t *testing.T) {
		if _, err := Decode([]byte("{")); err == nil {
			t.Fatalf("expected error for truncated snapshot")
		}
	})

	t.Run("legacy snapshot without item types binds rooms", func(t *testing.T) {
		raw := `{
			"client": {"name": "Jane Doe", "phone": "555-0100"},
			"rooms": [{"name": "Primary", "closet": {"closetType": "walk-in", "linearFeet": 12, "depth": 16, "height": 96, "material": "white", "mounting": "floor"}}],
			"taxRate": 8,
			"discountType": "percent",
			"quoteNumber": "250101-0900-JD",
			"date": "2025-01-01"
		}`
		q, err := Decode([]byte(raw))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if q.Client.Name != "Jane Doe" || q.QuoteNumber != "250101-0900-JD" {
			t.Fatalf("unexpected quote header: %+v", q)
		}
		room := q.CurrentRoom(0)
		if room == nil {
			t.Fatalf("expected first item to bind as a room")
		}
		if room.Closet.LinearFeet != 12 || room.Closet.Depth != 16 {
			t.Fatalf("unexpected closet: %+v", room.Closet)
		}
	})

	t.Run("missing hardware backfilled with black style 1", func(t *testing.T) {
		raw := `{"rooms": [{"closet": {"closetType": "reach-in", "depth": 19}}]}`
		q, err := Decode([]byte(raw))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		room := q.CurrentRoom(0)
		if room.Closet.PullsHandles != "black-style-1" || room.Closet.HangingRods != "black-style-1" {
			t.Fatalf("hardware not backfilled: %+v", room.Closet)
		}
	})

	t.Run("superseded hardwareFinish attribute is dropped", func(t *testing.T) {
		raw := `{"rooms": [{"closet": {"depth": 16, "hardwareFinish": "gold"}}]}`
		q, err := Decode([]byte(raw))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		data, err := Encode(q)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		var round map[string]any
		if err := json.Unmarshal(data, &round); err != nil {
			t.Fatalf("re-parse failed: %v", err)
		}
		closet := round["rooms"].([]any)[0].(map[string]any)["closet"].(map[string]any)
		if _, ok := closet["hardwareFinish"]; ok {
			t.Fatalf("hardwareFinish survived re-encode: %v", closet)
		}
	})

	t.Run("empty item list synthesizes one default room", func(t *testing.T) {
		q, err := Decode([]byte(`{"rooms": []}`))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(q.Items) != 1 {
			t.Fatalf("expected one synthesized item, got %d", len(q.Items))
		}
		room := q.CurrentRoom(0)
		if room == nil || room.Closet.Depth != 16 || room.Closet.Height != 96 {
			t.Fatalf("unexpected synthesized room: %+v", room)
		}
	})

	t.Run("numeric strings coerced and junk becomes zero", func(t *testing.T) {
		raw := `{"rooms": [{"closet": {"linearFeet": "12.5", "depth": "16", "height": "tall"}}], "taxRate": "8.25"}`
		q, err := Decode([]byte(raw))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		room := q.CurrentRoom(0)
		if room.Closet.LinearFeet != 12.5 || room.Closet.Depth != 16 || room.Closet.Height != 0 {
			t.Fatalf("unexpected coercion: %+v", room.Closet)
		}
		if q.TaxRate != 8.25 {
			t.Fatalf("expected tax rate 8.25, got %v", q.TaxRate)
		}
	})

	t.Run("custom items bind with defaults", func(t *testing.T) {
		raw := `{"rooms": [{"type": "custom", "name": "Pantry"}, {"type": "custom", "name": "Bench", "description": "Window bench", "price": 450}]}`
		q, err := Decode([]byte(raw))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		first := q.CurrentCustom(0)
		if first == nil || first.Price != 0 || first.Description != "" {
			t.Fatalf("defaults not applied: %+v", first)
		}
		second := q.CurrentCustom(1)
		if second == nil || second.Price != 450 || second.Description != "Window bench" {
			t.Fatalf("unexpected custom item: %+v", second)
		}
	})
}

func TestMigrateIdempotent(t *testing.T) {
	raw := `{"rooms": [{"closet": {"depth": 19, "hardwareFinish": {"id": "gold"}}}, {"type": "custom"}]}`
	var doc quoteDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	Migrate(&doc)
	once := bindQuote(&doc)
	Migrate(&doc)
	twice := bindQuote(&doc)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second migration changed the snapshot:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	room := entities.NewRoom()
	room.Name = "Primary Bedroom"
	room.Closet.LinearFeet = 14.5
	room.Closet.Material = "regal-cherry"
	room.Closet.DrawingNumber = "D-7"
	room.Addons["drawers"] = entities.AddonSelection{Enabled: true, Quantity: 4}
	room.Notes = "Corner unit"

	q := &entities.Quote{
		Client:        entities.Client{Name: "Jane Doe", Email: "jane@example.com"},
		Items:         []entities.LineItem{room, &entities.CustomItem{Name: "Bench", Description: "Window bench", Price: 450, Notes: "White oak"}},
		TaxRate:       8.25,
		DiscountType:  entities.DiscountDollar,
		DiscountValue: 100,
		Revision:      2,
		QuoteNumber:   "250307-1405-JD",
		Date:          "2025-03-07",
	}

	data, err := Encode(q)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(q, got) {
		t.Fatalf("round trip mismatch:\nwant: %+v\ngot:  %+v", q, got)
	}
}

func TestFlexNumber(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", "12.5", 12.5},
		{"integer", "7", 7},
		{"numeric string", `"8.25"`, 8.25},
		{"junk string", `"abc"`, 0},
		{"null", "null", 0},
		{"bool", "true", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n flexNumber
			if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(n) != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, float64(n))
			}
		})
	}
}
