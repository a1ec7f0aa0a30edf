package entities

// NewRoom returns a room with the defaults every new tab starts from:
// a walk-in at depth 16, 96" high, white melamine, black style-1
// hardware, floor mounted, nothing measured yet.
func NewRoom() *RoomItem {
	return &RoomItem{
		Closet: ClosetSpec{
			ClosetType:    ClosetWalkIn,
			LinearFeet:    0,
			Depth:         16,
			Height:        96,
			Material:      "white",
			PullsHandles:  "black-style-1",
			HangingRods:   "black-style-1",
			Mounting:      MountingFloor,
			DrawingNumber: "",
		},
		Addons: map[string]AddonSelection{},
	}
}

// NewCustomItem returns an empty freeform item.
func NewCustomItem() *CustomItem {
	return &CustomItem{}
}

// Clone deep-copies a quote so render variants can tweak a copy without
// touching stored state.
func (q *Quote) Clone() *Quote {
	out := *q
	out.Items = make([]LineItem, 0, len(q.Items))
	for _, item := range q.Items {
		switch it := item.(type) {
		case *RoomItem:
			r := *it
			r.Addons = make(map[string]AddonSelection, len(it.Addons))
			for k, v := range it.Addons {
				r.Addons[k] = v
			}
			out.Items = append(out.Items, &r)
		case *CustomItem:
			c := *it
			out.Items = append(out.Items, &c)
		}
	}
	return &out
}
