// Package document turns a quote into human-readable output: per-item
// descriptions for the line-item table and the full printable quote
// text. Layout beyond plain text (PDF pagination, styling) is a
// presentation concern of the consumer.
package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/domain/rates"
)

// Labels used when a stored id no longer matches the rate table.
const (
	fallbackMaterialName = "White"
	fallbackHardwareName = "Black - Style 1"
)

// Description is the printable summary of one line item.
type Description struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

// ActiveAddon is one enabled addon with a positive quantity, resolved
// against the catalog.
type ActiveAddon struct {
	Key      string
	Name     string
	Quantity float64
	Unit     string
	Price    float64
}

// ActiveAddons lists a room's enabled, positively-quantified addons in
// stable key order. Stale keys are skipped.
func ActiveAddons(t rates.Table, r *entities.RoomItem) []ActiveAddon {
	keys := make([]string, 0, len(r.Addons))
	for key := range r.Addons {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var active []ActiveAddon
	for _, key := range keys {
		sel := r.Addons[key]
		if !sel.Enabled || sel.Quantity <= 0 {
			continue
		}
		cfg, ok := t.AddonByKey(key)
		if !ok {
			continue
		}
		active = append(active, ActiveAddon{
			Key:      key,
			Name:     cfg.Name,
			Quantity: sel.Quantity,
			Unit:     cfg.Unit,
			Price:    cfg.Price,
		})
	}
	return active
}

// Describe builds the title and detail lines for one line item.
func Describe(t rates.Table, item entities.LineItem) Description {
	switch it := item.(type) {
	case *entities.CustomItem:
		d := Description{Title: it.Name}
		if d.Title == "" {
			d.Title = "Custom Item"
		}
		if it.Description != "" {
			d.Details = []string{it.Description}
		}
		return d
	case *entities.RoomItem:
		return describeRoom(t, it)
	default:
		return Description{}
	}
}

func describeRoom(t rates.Table, r *entities.RoomItem) Description {
	c := r.Closet

	materialName := fallbackMaterialName
	if m, ok := t.MaterialByID(c.Material); ok {
		materialName = m.Name
	}
	pullsName := fallbackHardwareName
	if o, ok := t.PullsByID(c.PullsHandles); ok {
		pullsName = o.Name
	}
	rodsName := fallbackHardwareName
	if o, ok := t.RodsByID(c.HangingRods); ok {
		rodsName = o.Name
	}

	typeName := "Walk-In"
	if c.ClosetType == entities.ClosetReachIn {
		typeName = "Reach-In"
	}
	title := typeName
	if r.Name != "" {
		title = r.Name + " - " + typeName
	}

	details := []string{
		fmt.Sprintf(`%d" deep x %s" high`, c.Depth, trimNumber(c.Height)),
	}
	if dn := strings.TrimSpace(c.DrawingNumber); dn != "" {
		details = append(details, "Drawing # "+dn)
	}
	details = append(details,
		fmt.Sprintf(`3/4" %s melamine finish`, materialName),
		"Pulls/Handles: "+pullsName,
		"Hanging Rod: "+rodsName,
	)
	for _, a := range ActiveAddons(t, r) {
		if a.Unit == rates.UnitPerLinearFoot {
			details = append(details, fmt.Sprintf("%s (%s LF)", a.Name, trimNumber(a.Quantity)))
		} else {
			details = append(details, fmt.Sprintf("%s (%s)", a.Name, trimNumber(a.Quantity)))
		}
	}
	details = append(details, "Installation and delivery included")

	return Description{Title: title, Details: details}
}

// trimNumber renders a float the way the source forms did: no trailing
// zeros, no exponent (96 not 96.000000, 2.5 stays 2.5).
func trimNumber(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
}
