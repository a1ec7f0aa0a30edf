package rates

import (
	"encoding/json"
	"log"
	"os"
)

// Default returns the built-in Desire Cabinets rate table.
func Default() Table {
	return Table{
		BaseSystem: map[int]float64{
			14: 200,
			16: 215,
			19: 225,
			24: 250,
		},
		Addons: map[string]Addon{
			"drawers":           {Name: "Drawers", Price: 75, Unit: UnitEach},
			"colorChangingLEDs": {Name: "LED Lighting", Price: 75, Unit: UnitPerLinearFoot},
			"shakerStyle":       {Name: "Shaker Style Doors/Drawers", Price: 75, Unit: UnitPerDoorDrawer},
			"laminatedTops":     {Name: `Laminated Tops (25" deep)`, Price: 50, Unit: UnitPerLinearFoot},
			"floatingShelves":   {Name: `Floating Shelves (3/4" thick, 12" deep)`, Price: 25, Unit: UnitPerLinearFoot},
			"hamper":            {Name: "Hamper", Price: 175, Unit: UnitEach},
			"mirror":            {Name: "Mirror", Price: 150, Unit: UnitEach},
			"doors":             {Name: "Doors", Price: 45, Unit: UnitEach},
			"ssTops":            {Name: `SS Tops (25" deep)`, Price: 100, Unit: UnitPerLinearFoot},
			"removalDisposal":   {Name: "Removal of Old System & Trash Disposal", Price: 150, Unit: UnitEach},
		},
		PullsHandles: hardwareOptions(),
		HangingRods:  hardwareOptions(),
		Materials: []Material{
			{ID: "white", Name: "White", Upcharge: 0},
			{ID: "black", Name: "Black", Upcharge: 0},
			{ID: "gray", Name: "Gray", Upcharge: 8},
			{ID: "maple", Name: "Maple", Upcharge: 9},
			{ID: "moscato-elme", Name: "Moscato Elme", Upcharge: 15},
			{ID: "regal-cherry", Name: "Regal Cherry", Upcharge: 16},
			{ID: "umbria-elme", Name: "Umbria Elme", Upcharge: 17},
			{ID: "natural-oak", Name: "Natural Oak", Upcharge: 19},
			{ID: "sable-glow", Name: "Sable Glow", Upcharge: 19},
			{ID: "coastland-oak", Name: "Coastland Oak", Upcharge: 21},
			{ID: "pewter-pine", Name: "Pewter Pine", Upcharge: 29},
			{ID: "spring-blossom", Name: "Spring Blossom", Upcharge: 34},
		},
		Mounting: []Option{
			{ID: "floor", Name: "Floor Mounted"},
			{ID: "wall", Name: "Wall Mounted"},
		},
	}
}

// Pulls/handles and hanging rods share the same finish catalog.
func hardwareOptions() []Option {
	return []Option{
		{ID: "black-style-1", Name: "Black - Style 1"},
		{ID: "black-style-2", Name: "Black - Style 2"},
		{ID: "gold-style-1", Name: "Gold - Style 1"},
		{ID: "gold-style-2", Name: "Gold - Style 2"},
		{ID: "chrome-style-1", Name: "Chrome - Style 1"},
		{ID: "chrome-style-2", Name: "Chrome - Style 2"},
		{ID: "brushed-nickel-style-1", Name: "Brushed Nickel - Style 1"},
		{ID: "brushed-nickel-style-2", Name: "Brushed Nickel - Style 2"},
	}
}

// Load resolves the rate table for this process: the JSON file named by
// RATE_TABLE_PATH when set, otherwise the built-in default. A file that
// cannot be read or parsed falls back to the default with a log line;
// pricing must never be blocked by a bad override.
func Load() Table {
	path := os.Getenv("RATE_TABLE_PATH")
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[rates] cannot read %s, using built-in table: %v", path, err)
		return Default()
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		log.Printf("[rates] cannot parse %s, using built-in table: %v", path, err)
		return Default()
	}
	return t
}
