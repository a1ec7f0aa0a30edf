package entities

// DiscountType selects how the quote-level discount is interpreted.

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountDollar  DiscountType = "dollar"
)

// ClosetType is the structural style of a closet room.

type ClosetType string

const (
	ClosetWalkIn  ClosetType = "walk-in"
	ClosetReachIn ClosetType = "reach-in"
)

// Mounting is how the closet system attaches to the room.

type Mounting string

const (
	MountingFloor Mounting = "floor"
	MountingWall  Mounting = "wall"
)

// Client is the customer block embedded in a quote. All fields are
// free text and may be empty.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ClosetSpec is the structured specification of one closet room.
//
// Material, PullsHandles and HangingRods reference rate-table ids.
// Stale ids are legal: pricing treats an unknown material as a zero
// upcharge and descriptions fall back to default labels.
type ClosetSpec struct {
	ClosetType    ClosetType `json:"closetType"`
	LinearFeet    float64    `json:"linearFeet"`
	Depth         int        `json:"depth"`
	Height        float64    `json:"height"`
	Material      string     `json:"material"`
	PullsHandles  string     `json:"pullsHandles"`
	HangingRods   string     `json:"hangingRods"`
	Mounting      Mounting   `json:"mounting"`
	DrawingNumber string     `json:"drawingNumber"`
}

// AddonSelection records one addon choice on a room. A disabled addon
// keeps its quantity so re-enabling restores the previous value.
type AddonSelection struct {
	Enabled  bool    `json:"enabled"`
	Quantity float64 `json:"quantity"`
}

// LineItem is one priced position in a quote: either a structured
// closet room or a freeform custom item. Exactly the two concrete
// types below implement it.
type LineItem interface {
	ItemName() string
	ItemNotes() string
	sealed()
}

// RoomItem is the closet-room variant of a line item.
type RoomItem struct {
	Name   string                    `json:"name"`
	Closet ClosetSpec                `json:"closet"`
	Addons map[string]AddonSelection `json:"addons"`
	Notes  string                    `json:"notes"`
}

// CustomItem is the freeform variant: a flat-priced position with a
// description the generator passes through verbatim.
type CustomItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Notes       string  `json:"notes"`
}

func (r *RoomItem) ItemName() string  { return r.Name }
func (r *RoomItem) ItemNotes() string { return r.Notes }
func (r *RoomItem) sealed()           {}

func (c *CustomItem) ItemName() string  { return c.Name }
func (c *CustomItem) ItemNotes() string { return c.Notes }
func (c *CustomItem) sealed()           {}

// Quote is the aggregate root of one estimate.
//
// Ownership:
//   - Only the quote use case (the estimate store) mutates a Quote.
//   - Every other component receives copies or computed summaries.
//
// Items is never empty: construction and snapshot load both guarantee
// at least one room.
type Quote struct {
	Client        Client       `json:"client"`
	Items         []LineItem   `json:"-"`
	TaxRate       float64      `json:"taxRate"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
	Revision      int          `json:"revision"`
	QuoteNumber   string       `json:"quoteNumber"`
	Date          string       `json:"date"`
}

// CurrentRoom returns the item at idx as a room, or nil when the index
// is out of range or the item is a custom item.
func (q *Quote) CurrentRoom(idx int) *RoomItem {
	if idx < 0 || idx >= len(q.Items) {
		return nil
	}
	r, _ := q.Items[idx].(*RoomItem)
	return r
}

// CurrentCustom returns the item at idx as a custom item, or nil.
func (q *Quote) CurrentCustom(idx int) *CustomItem {
	if idx < 0 || idx >= len(q.Items) {
		return nil
	}
	c, _ := q.Items[idx].(*CustomItem)
	return c
}
