// Package rates holds the static pricing configuration: base rates by
// closet depth, material upcharges, the addon catalog and the hardware
// option lists. The table is loaded once at startup and read-only
// afterwards.
package rates

// Unit labels used by the addon catalog. Addons priced per linear foot
// render quantities with an "LF" suffix on quote documents.
const (
	UnitEach          = "each"
	UnitPerLinearFoot = "per linear foot"
	UnitPerDoorDrawer = "per door/drawer"
)

// Addon is one optional extra with a unit price.
type Addon struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

// Material is a melamine finish with a per-linear-foot upcharge over
// the base system rate.
type Material struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Upcharge float64 `json:"upcharge"`
}

// Option is a named choice in a hardware or mounting list.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Table is the full rate table. Pure data, no behavior beyond lookups.
type Table struct {
	BaseSystem   map[int]float64  `json:"baseSystem"`
	Addons       map[string]Addon `json:"addons"`
	PullsHandles []Option         `json:"pullsHandles"`
	HangingRods  []Option         `json:"hangingRods"`
	Materials    []Material       `json:"materials"`
	Mounting     []Option         `json:"mounting"`
}

// BaseRate returns the base price per linear foot for a depth. Missing
// depths price as zero, never as an error.
func (t Table) BaseRate(depth int) float64 {
	return t.BaseSystem[depth]
}

// MaterialByID resolves a material id. ok is false for stale ids.
func (t Table) MaterialByID(id string) (Material, bool) {
	for _, m := range t.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// AddonByKey resolves an addon catalog key.
func (t Table) AddonByKey(key string) (Addon, bool) {
	a, ok := t.Addons[key]
	return a, ok
}

func optionByID(opts []Option, id string) (Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// PullsByID resolves a pulls/handles option id.
func (t Table) PullsByID(id string) (Option, bool) {
	return optionByID(t.PullsHandles, id)
}

// RodsByID resolves a hanging-rod option id.
func (t Table) RodsByID(id string) (Option, bool) {
	return optionByID(t.HangingRods, id)
}

// MountingByID resolves a mounting option id.
func (t Table) MountingByID(id string) (Option, bool) {
	return optionByID(t.Mounting, id)
}
