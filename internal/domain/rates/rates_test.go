package rates

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTableLookups(t *testing.T) {
	table := Default()

	t.Run("base rates by depth", func(t *testing.T) {
		cases := map[int]float64{14: 200, 16: 215, 19: 225, 24: 250, 99: 0}
		for depth, want := range cases {
			if got := table.BaseRate(depth); got != want {
				t.Fatalf("BaseRate(%d) = %v, want %v", depth, got, want)
			}
		}
	})

	t.Run("material lookup", func(t *testing.T) {
		m, ok := table.MaterialByID("regal-cherry")
		if !ok || m.Name != "Regal Cherry" || m.Upcharge != 16 {
			t.Fatalf("unexpected material: %+v ok=%v", m, ok)
		}
		if _, ok := table.MaterialByID("discontinued"); ok {
			t.Fatalf("stale id must not resolve")
		}
	})

	t.Run("addon lookup", func(t *testing.T) {
		a, ok := table.AddonByKey("colorChangingLEDs")
		if !ok || a.Name != "LED Lighting" || a.Price != 75 || a.Unit != UnitPerLinearFoot {
			t.Fatalf("unexpected addon: %+v ok=%v", a, ok)
		}
	})

	t.Run("hardware lists share the finish catalog", func(t *testing.T) {
		p, ok := table.PullsByID("brushed-nickel-style-2")
		if !ok || p.Name != "Brushed Nickel - Style 2" {
			t.Fatalf("unexpected pulls option: %+v ok=%v", p, ok)
		}
		r, ok := table.RodsByID("brushed-nickel-style-2")
		if !ok || r.Name != p.Name {
			t.Fatalf("rod catalog diverged: %+v", r)
		}
	})

	t.Run("mounting lookup", func(t *testing.T) {
		m, ok := table.MountingByID("wall")
		if !ok || m.Name != "Wall Mounted" {
			t.Fatalf("unexpected mounting: %+v ok=%v", m, ok)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("without override returns the default", func(t *testing.T) {
		t.Setenv("RATE_TABLE_PATH", "")
		table := Load()
		if table.BaseRate(16) != 215 {
			t.Fatalf("expected built-in table")
		}
	})

	t.Run("override file replaces the table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.json")
		if err := os.WriteFile(path, []byte(`{"baseSystem":{"16":999}}`), 0o600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		t.Setenv("RATE_TABLE_PATH", path)
		if got := Load().BaseRate(16); got != 999 {
			t.Fatalf("expected overridden rate 999, got %v", got)
		}
	})

	t.Run("unreadable override falls back", func(t *testing.T) {
		t.Setenv("RATE_TABLE_PATH", filepath.Join(t.TempDir(), "missing.json"))
		if got := Load().BaseRate(16); got != 215 {
			t.Fatalf("expected fallback to built-in table, got %v", got)
		}
	})

	t.Run("unparseable override falls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.json")
		if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		t.Setenv("RATE_TABLE_PATH", path)
		if got := Load().BaseRate(16); got != 215 {
			t.Fatalf("expected fallback to built-in table, got %v", got)
		}
	})
}
