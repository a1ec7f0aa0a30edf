package snapshot

import "github.com/digilabhq/DCQuoting/internal/domain/entities"

// A migration is one pure normalization step over the wire form. Steps
// run in order and each must be idempotent, so migrating an already
// current snapshot is a no-op.
type migration struct {
	name  string
	apply func(*quoteDoc)
}

var migrations = []migration{
	{name: "default-item-type", apply: defaultItemType},
	{name: "room-defaults", apply: roomDefaults},
	{name: "custom-defaults", apply: customDefaults},
	{name: "ensure-one-item", apply: ensureOneItem},
}

// Migrate normalizes a decoded snapshot in place.
func Migrate(doc *quoteDoc) {
	for _, m := range migrations {
		m.apply(doc)
	}
}

// Snapshots predating custom items carry no discriminator; they are
// all rooms.
func defaultItemType(doc *quoteDoc) {
	for i := range doc.Rooms {
		if doc.Rooms[i].Type == "" {
			doc.Rooms[i].Type = "room"
		}
	}
}

// Backfill room fields added after the first release: the closet spec
// itself, the hardware selections and the drawing number. The legacy
// hardwareFinish attribute is dropped here (its RawMessage is cleared
// and the field is never re-encoded).
func roomDefaults(doc *quoteDoc) {
	for i := range doc.Rooms {
		it := &doc.Rooms[i]
		if it.Type != "room" {
			continue
		}
		if it.Closet == nil {
			it.Closet = defaultClosetDoc()
		}
		if it.Closet.PullsHandles == "" {
			it.Closet.PullsHandles = "black-style-1"
		}
		if it.Closet.HangingRods == "" {
			it.Closet.HangingRods = "black-style-1"
		}
		it.Closet.HardwareFinish = nil
		if it.Addons == nil {
			it.Addons = map[string]addonDoc{}
		}
	}
}

// Custom items from partial snapshots get an explicit zero price and
// empty description.
func customDefaults(doc *quoteDoc) {
	for i := range doc.Rooms {
		it := &doc.Rooms[i]
		if it.Type != "custom" {
			continue
		}
		if it.Price == nil {
			zero := flexNumber(0)
			it.Price = &zero
		}
		if it.Description == nil {
			empty := ""
			it.Description = &empty
		}
	}
}

// A quote always has at least one item.
func ensureOneItem(doc *quoteDoc) {
	if len(doc.Rooms) == 0 {
		doc.Rooms = []itemDoc{{
			Type:   "room",
			Closet: defaultClosetDoc(),
			Addons: map[string]addonDoc{},
		}}
	}
}

func defaultClosetDoc() *closetDoc {
	def := entities.NewRoom().Closet
	return &closetDoc{
		ClosetType:    string(def.ClosetType),
		LinearFeet:    flexNumber(def.LinearFeet),
		Depth:         flexNumber(def.Depth),
		Height:        flexNumber(def.Height),
		Material:      def.Material,
		PullsHandles:  def.PullsHandles,
		HangingRods:   def.HangingRods,
		Mounting:      string(def.Mounting),
		DrawingNumber: def.DrawingNumber,
	}
}
