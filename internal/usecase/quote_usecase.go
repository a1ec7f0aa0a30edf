package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/digilabhq/DCQuoting/internal/domain/document"
	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/domain/pricing"
	"github.com/digilabhq/DCQuoting/internal/domain/rates"
	"github.com/digilabhq/DCQuoting/internal/domain/snapshot"
	"github.com/digilabhq/DCQuoting/internal/usecase/interfaces"
)

var (
	ErrLastItem          = errors.New("a quote must keep at least one item")
	ErrIndexOutOfRange   = errors.New("item index out of range")
	ErrNotARoom          = errors.New("current item is not a room")
	ErrNotACustomItem    = errors.New("current item is not a custom item")
	ErrMalformedSnapshot = errors.New("malformed quote snapshot")
	ErrNothingToQuote    = errors.New("quote has no priceable content")
)

// IQuoteUseCase is the estimate store: it owns the one working quote,
// exposes the closed set of typed mutation operations the UI drives,
// and answers pricing and document queries.
//
// Mutations that change pricing inputs persist the snapshot afterwards;
// StartAutosave adds the periodic safety-net write on top.

type IQuoteUseCase interface {
	View() (*entities.Quote, int)
	Totals() pricing.QuoteTotals
	Descriptions() []document.Description
	Document(alternate bool, withoutAddon string) (string, error)

	AddRoom(ctx context.Context) int
	AddCustomItem(ctx context.Context) int
	RemoveItem(ctx context.Context, index int) error
	SwitchTo(index int) error

	UpdateClient(ctx context.Context, c entities.Client) bool
	RegenerateQuoteNumber(ctx context.Context) string
	UpdateSettings(ctx context.Context, s QuoteSettings)
	UpdateRoom(ctx context.Context, f RoomFields) error
	UpdateAddon(ctx context.Context, key string, enabled bool, quantity float64) error
	UpdateCustomItem(ctx context.Context, f CustomFields) error

	Reset(ctx context.Context)
	ExportSnapshot() ([]byte, error)
	ImportSnapshot(ctx context.Context, data []byte) error
	LoadFromStorage(ctx context.Context) error
	StartAutosave(ctx context.Context, interval time.Duration)
}

// QuoteSettings groups the quote-level pricing settings. Nil fields are
// left unchanged.
type QuoteSettings struct {
	TaxRate       *float64
	DiscountType  *entities.DiscountType
	DiscountValue *float64
	Revision      *int
}

// RoomFields groups the mutable attributes of the current room. Nil
// fields are left unchanged.
type RoomFields struct {
	Name          *string
	ClosetType    *entities.ClosetType
	LinearFeet    *float64
	Depth         *int
	Height        *float64
	Material      *string
	PullsHandles  *string
	HangingRods   *string
	Mounting      *entities.Mounting
	DrawingNumber *string
	Notes         *string
}

// CustomFields groups the mutable attributes of the current custom
// item. Nil fields are left unchanged.
type CustomFields struct {
	Name        *string
	Description *string
	Price       *float64
	Notes       *string
}

// QuoteUseCase holds the working quote and the cursor identifying the
// item currently being edited. It is the single writer: everything it
// hands out is a copy.
//
// The browser original was single threaded; behind Gin the store must
// serialize access itself, hence the mutex around every operation.
type QuoteUseCase struct {
	mu      sync.Mutex
	table   rates.Table
	repo    interfaces.ISnapshotRepository
	quote   *entities.Quote
	current int
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(table rates.Table, repo interfaces.ISnapshotRepository) *QuoteUseCase {
	return &QuoteUseCase{
		table: table,
		repo:  repo,
		quote: newQuote(),
	}
}

func newQuote() *entities.Quote {
	now := time.Now()
	return &entities.Quote{
		Items:        []entities.LineItem{entities.NewRoom()},
		DiscountType: entities.DiscountPercent,
		QuoteNumber:  GenerateQuoteNumber("", now),
		Date:         now.Format(time.DateOnly),
	}
}

// View returns a copy of the quote plus the current item index.
func (u *QuoteUseCase) View() (*entities.Quote, int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.quote.Clone(), u.current
}

// Totals recomputes the quote aggregate.
func (u *QuoteUseCase) Totals() pricing.QuoteTotals {
	u.mu.Lock()
	defer u.mu.Unlock()
	return pricing.Totals(u.table, u.quote)
}

// Descriptions returns the printable description of every item in list
// order.
func (u *QuoteUseCase) Descriptions() []document.Description {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]document.Description, 0, len(u.quote.Items))
	for _, item := range u.quote.Items {
		out = append(out, document.Describe(u.table, item))
	}
	return out
}

// Document renders the printable quote. The alternate variant disables
// one addon on the current room (LED lighting unless told otherwise)
// and marks the quote number, without touching stored state. Rendering
// is refused while nothing on the quote carries a price.
func (u *QuoteUseCase) Document(alternate bool, withoutAddon string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	q := u.quote
	if alternate {
		if withoutAddon == "" {
			withoutAddon = "colorChangingLEDs"
		}
		q = u.quote.Clone()
		if r := q.CurrentRoom(u.current); r != nil {
			if sel, ok := r.Addons[withoutAddon]; ok {
				sel.Enabled = false
				r.Addons[withoutAddon] = sel
			}
		}
		q.QuoteNumber += "-ALT"
	}

	if !document.HasPriceableContent(q) {
		return "", ErrNothingToQuote
	}
	return document.RenderText(u.table, q, pricing.Totals(u.table, q)), nil
}

// AddRoom appends a default room and moves the cursor to it.
func (u *QuoteUseCase) AddRoom(ctx context.Context) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.quote.Items = append(u.quote.Items, entities.NewRoom())
	u.current = len(u.quote.Items) - 1
	u.persist(ctx)
	return u.current
}

// AddCustomItem appends an empty custom item and moves the cursor to it.
func (u *QuoteUseCase) AddCustomItem(ctx context.Context) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.quote.Items = append(u.quote.Items, entities.NewCustomItem())
	u.current = len(u.quote.Items) - 1
	u.persist(ctx)
	return u.current
}

// RemoveItem deletes the item at index. Deleting the last remaining
// item is rejected; the cursor is clamped when it falls off the end.
func (u *QuoteUseCase) RemoveItem(ctx context.Context, index int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.quote.Items) <= 1 {
		return ErrLastItem
	}
	if index < 0 || index >= len(u.quote.Items) {
		return ErrIndexOutOfRange
	}
	u.quote.Items = append(u.quote.Items[:index], u.quote.Items[index+1:]...)
	if u.current >= len(u.quote.Items) {
		u.current = len(u.quote.Items) - 1
	}
	u.persist(ctx)
	return nil
}

// SwitchTo moves the cursor; out-of-range indexes leave it unchanged.
func (u *QuoteUseCase) SwitchTo(index int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if index < 0 || index >= len(u.quote.Items) {
		return ErrIndexOutOfRange
	}
	u.current = index
	return nil
}

// UpdateClient writes the client block and reports whether the name
// changed. Regenerating the quote number on a name change is the
// caller's explicit call to make, via RegenerateQuoteNumber.
func (u *QuoteUseCase) UpdateClient(ctx context.Context, c entities.Client) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	nameChanged := u.quote.Client.Name != c.Name
	u.quote.Client = c
	u.persist(ctx)
	return nameChanged
}

// RegenerateQuoteNumber derives a fresh quote number from the current
// client name and freezes it into the quote.
func (u *QuoteUseCase) RegenerateQuoteNumber(ctx context.Context) string {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.quote.QuoteNumber = GenerateQuoteNumber(u.quote.Client.Name, time.Now())
	u.persist(ctx)
	return u.quote.QuoteNumber
}

// UpdateSettings writes tax, discount and revision settings.
func (u *QuoteUseCase) UpdateSettings(ctx context.Context, s QuoteSettings) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s.TaxRate != nil {
		u.quote.TaxRate = *s.TaxRate
	}
	if s.DiscountType != nil {
		u.quote.DiscountType = *s.DiscountType
	}
	if s.DiscountValue != nil {
		u.quote.DiscountValue = *s.DiscountValue
	}
	if s.Revision != nil {
		u.quote.Revision = *s.Revision
	}
	u.persist(ctx)
}

// UpdateRoom writes room fields on the current item. Fails when the
// cursor is on a custom item.
func (u *QuoteUseCase) UpdateRoom(ctx context.Context, f RoomFields) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	r := u.quote.CurrentRoom(u.current)
	if r == nil {
		return ErrNotARoom
	}
	if f.Name != nil {
		r.Name = *f.Name
	}
	if f.ClosetType != nil {
		r.Closet.ClosetType = *f.ClosetType
	}
	if f.LinearFeet != nil {
		r.Closet.LinearFeet = *f.LinearFeet
	}
	if f.Depth != nil {
		r.Closet.Depth = *f.Depth
	}
	if f.Height != nil {
		r.Closet.Height = *f.Height
	}
	if f.Material != nil {
		r.Closet.Material = *f.Material
	}
	if f.PullsHandles != nil {
		r.Closet.PullsHandles = *f.PullsHandles
	}
	if f.HangingRods != nil {
		r.Closet.HangingRods = *f.HangingRods
	}
	if f.Mounting != nil {
		r.Closet.Mounting = *f.Mounting
	}
	if f.DrawingNumber != nil {
		r.Closet.DrawingNumber = *f.DrawingNumber
	}
	if f.Notes != nil {
		r.Notes = *f.Notes
	}
	u.persist(ctx)
	return nil
}

// UpdateAddon records one addon selection on the current room.
func (u *QuoteUseCase) UpdateAddon(ctx context.Context, key string, enabled bool, quantity float64) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	r := u.quote.CurrentRoom(u.current)
	if r == nil {
		return ErrNotARoom
	}
	r.Addons[key] = entities.AddonSelection{Enabled: enabled, Quantity: quantity}
	u.persist(ctx)
	return nil
}

// UpdateCustomItem writes custom-item fields on the current item.
// Fails when the cursor is on a room.
func (u *QuoteUseCase) UpdateCustomItem(ctx context.Context, f CustomFields) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	c := u.quote.CurrentCustom(u.current)
	if c == nil {
		return ErrNotACustomItem
	}
	if f.Name != nil {
		c.Name = *f.Name
	}
	if f.Description != nil {
		c.Description = *f.Description
	}
	if f.Price != nil {
		c.Price = *f.Price
	}
	if f.Notes != nil {
		c.Notes = *f.Notes
	}
	u.persist(ctx)
	return nil
}

// Reset replaces the whole estimate with a fresh single-room quote.
func (u *QuoteUseCase) Reset(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.quote = newQuote()
	u.current = 0
	u.persist(ctx)
}

// ExportSnapshot serializes the working quote for download.
func (u *QuoteUseCase) ExportSnapshot() ([]byte, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return snapshot.EncodeIndent(u.quote)
}

// ImportSnapshot replaces the working quote with an uploaded snapshot,
// migrated like any stored one. A parse failure leaves the current
// quote untouched.
func (u *QuoteUseCase) ImportSnapshot(ctx context.Context, data []byte) error {
	q, err := snapshot.Decode(data)
	if err != nil {
		return errors.Join(ErrMalformedSnapshot, err)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.quote = q
	u.current = 0
	u.persist(ctx)
	return nil
}

// LoadFromStorage restores the last saved snapshot, if any. Malformed
// stored data is reported and the in-memory quote stays as it is.
func (u *QuoteUseCase) LoadFromStorage(ctx context.Context) error {
	data, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	q, err := snapshot.Decode(data)
	if err != nil {
		return errors.Join(ErrMalformedSnapshot, err)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.quote = q
	u.current = 0
	return nil
}

// StartAutosave writes the snapshot on a fixed interval until ctx is
// done, as a safety net on top of the per-mutation writes.
func (u *QuoteUseCase) StartAutosave(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				u.mu.Lock()
				u.persist(ctx)
				u.mu.Unlock()
			}
		}
	}()
}

// persist writes the snapshot best-effort; a failed save must never
// fail the mutation that triggered it. Callers hold the mutex.
func (u *QuoteUseCase) persist(ctx context.Context) {
	if u.repo == nil {
		return
	}
	data, err := snapshot.Encode(u.quote)
	if err != nil {
		log.Printf("[quote][usecase] snapshot encode failed: %v", err)
		return
	}
	if err := u.repo.Save(ctx, data); err != nil {
		log.Printf("[quote][usecase] snapshot save failed: %v", err)
	}
}
