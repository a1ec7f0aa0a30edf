// Package snapshot serializes a quote to the JSON shape shared by
// storage, download and upload, and migrates legacy snapshots forward
// on load. The wire shape keeps the historical field names (the item
// list is stored under "rooms") so older exports keep importing.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
)

// quoteDoc is the wire form of a quote snapshot.
type quoteDoc struct {
	Client        clientDoc  `json:"client"`
	Rooms         []itemDoc  `json:"rooms"`
	TaxRate       flexNumber `json:"taxRate"`
	DiscountType  string     `json:"discountType"`
	DiscountValue flexNumber `json:"discountValue"`
	Revision      flexNumber `json:"revision"`
	QuoteNumber   string     `json:"quoteNumber"`
	Date          string     `json:"date"`
}

type clientDoc struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// itemDoc carries both variants; the migration chain normalizes which
// fields are present before binding resolves the variant.
type itemDoc struct {
	Type        string              `json:"type,omitempty"`
	Name        string              `json:"name"`
	Closet      *closetDoc          `json:"closet,omitempty"`
	Addons      map[string]addonDoc `json:"addons,omitempty"`
	Notes       string              `json:"notes"`
	Description *string             `json:"description,omitempty"`
	Price       *flexNumber         `json:"price,omitempty"`
}

type closetDoc struct {
	ClosetType    string     `json:"closetType"`
	LinearFeet    flexNumber `json:"linearFeet"`
	Depth         flexNumber `json:"depth"`
	Height        flexNumber `json:"height"`
	Material      string     `json:"material"`
	PullsHandles  string     `json:"pullsHandles"`
	HangingRods   string     `json:"hangingRods"`
	Mounting      string     `json:"mounting"`
	DrawingNumber string     `json:"drawingNumber"`

	// Superseded attribute from early snapshots. Decoded so the field
	// is recognized, never re-encoded.
	HardwareFinish json.RawMessage `json:"hardwareFinish,omitempty"`
}

type addonDoc struct {
	Enabled  bool       `json:"enabled"`
	Quantity flexNumber `json:"quantity"`
}

// Decode parses a snapshot, migrates it forward and binds it into the
// typed aggregate. On any parse error the returned quote is nil and the
// caller's in-memory state must stay untouched.
func Decode(data []byte) (*entities.Quote, error) {
	var doc quoteDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	Migrate(&doc)
	return bindQuote(&doc), nil
}

// Encode serializes a quote into the snapshot wire shape. The output
// round-trips losslessly through Decode: migration finds nothing left
// to normalize.
func Encode(q *entities.Quote) ([]byte, error) {
	return json.Marshal(buildDoc(q))
}

// EncodeIndent is Encode with the two-space indentation used for
// downloaded quote files.
func EncodeIndent(q *entities.Quote) ([]byte, error) {
	return json.MarshalIndent(buildDoc(q), "", "  ")
}

func bindQuote(doc *quoteDoc) *entities.Quote {
	q := &entities.Quote{
		Client: entities.Client{
			Name:    doc.Client.Name,
			Address: doc.Client.Address,
			Phone:   doc.Client.Phone,
			Email:   doc.Client.Email,
		},
		Items:         make([]entities.LineItem, 0, len(doc.Rooms)),
		TaxRate:       float64(doc.TaxRate),
		DiscountType:  entities.DiscountType(doc.DiscountType),
		DiscountValue: float64(doc.DiscountValue),
		Revision:      int(doc.Revision),
		QuoteNumber:   doc.QuoteNumber,
		Date:          doc.Date,
	}
	for _, it := range doc.Rooms {
		q.Items = append(q.Items, bindItem(it))
	}
	return q
}

func bindItem(it itemDoc) entities.LineItem {
	if it.Type == "custom" {
		c := &entities.CustomItem{Name: it.Name, Notes: it.Notes}
		if it.Description != nil {
			c.Description = *it.Description
		}
		if it.Price != nil {
			c.Price = float64(*it.Price)
		}
		return c
	}

	r := &entities.RoomItem{
		Name:   it.Name,
		Notes:  it.Notes,
		Addons: map[string]entities.AddonSelection{},
	}
	if it.Closet != nil {
		r.Closet = entities.ClosetSpec{
			ClosetType:    entities.ClosetType(it.Closet.ClosetType),
			LinearFeet:    float64(it.Closet.LinearFeet),
			Depth:         int(it.Closet.Depth),
			Height:        float64(it.Closet.Height),
			Material:      it.Closet.Material,
			PullsHandles:  it.Closet.PullsHandles,
			HangingRods:   it.Closet.HangingRods,
			Mounting:      entities.Mounting(it.Closet.Mounting),
			DrawingNumber: it.Closet.DrawingNumber,
		}
	}
	for key, sel := range it.Addons {
		r.Addons[key] = entities.AddonSelection{Enabled: sel.Enabled, Quantity: float64(sel.Quantity)}
	}
	return r
}

func buildDoc(q *entities.Quote) *quoteDoc {
	doc := &quoteDoc{
		Client: clientDoc{
			Name:    q.Client.Name,
			Address: q.Client.Address,
			Phone:   q.Client.Phone,
			Email:   q.Client.Email,
		},
		Rooms:         make([]itemDoc, 0, len(q.Items)),
		TaxRate:       flexNumber(q.TaxRate),
		DiscountType:  string(q.DiscountType),
		DiscountValue: flexNumber(q.DiscountValue),
		Revision:      flexNumber(q.Revision),
		QuoteNumber:   q.QuoteNumber,
		Date:          q.Date,
	}
	for _, item := range q.Items {
		doc.Rooms = append(doc.Rooms, buildItemDoc(item))
	}
	return doc
}

func buildItemDoc(item entities.LineItem) itemDoc {
	switch it := item.(type) {
	case *entities.CustomItem:
		desc := it.Description
		price := flexNumber(it.Price)
		return itemDoc{
			Type:        "custom",
			Name:        it.Name,
			Notes:       it.Notes,
			Description: &desc,
			Price:       &price,
		}
	case *entities.RoomItem:
		addons := make(map[string]addonDoc, len(it.Addons))
		for key, sel := range it.Addons {
			addons[key] = addonDoc{Enabled: sel.Enabled, Quantity: flexNumber(sel.Quantity)}
		}
		return itemDoc{
			Type: "room",
			Name: it.Name,
			Closet: &closetDoc{
				ClosetType:    string(it.Closet.ClosetType),
				LinearFeet:    flexNumber(it.Closet.LinearFeet),
				Depth:         flexNumber(it.Closet.Depth),
				Height:        flexNumber(it.Closet.Height),
				Material:      it.Closet.Material,
				PullsHandles:  it.Closet.PullsHandles,
				HangingRods:   it.Closet.HangingRods,
				Mounting:      string(it.Closet.Mounting),
				DrawingNumber: it.Closet.DrawingNumber,
			},
			Addons: addons,
			Notes:  it.Notes,
		}
	default:
		return itemDoc{Type: "room"}
	}
}
