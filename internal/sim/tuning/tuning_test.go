package tuning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roomkeeper/internal/sim/tasks"
	"roomkeeper/internal/sim/world"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

const sample = `
tick_rate_hz: 5
seed: 42
engine:
  contact_range: 1
  ranged_range: 3
  danger_margin: 1000
  downgrade_danger:
    - {level: 1, below: 9000}
    - {level: 2, below: 4000}
  repair_factor: 0.5
  repair_threshold:
    - {terrain: plain, below: 2000}
    - {terrain: swamp, below: 10000}
  reuse_path:
    HARVEST: 7
  spawn_rules:
    - {max_population: 3, cost: 300, parts: [work, work, carry, move]}
    - {max_population: 6, cost: 200, parts: [work, carry, move]}
world:
  width: 40
  height: 40
  creep_ttl: 900
`

func TestLoad_MapsOntoPolicyAndWorldConfig(t *testing.T) {
	tn, err := Load(writeTuning(t, sample))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tn.Seed != 42 || tn.TickRateHz != 5 {
		t.Fatalf("seed=%d rate=%d, want 42/5", tn.Seed, tn.TickRateHz)
	}

	p := tn.EnginePolicy()
	if p.DangerMargin != 1000 {
		t.Fatalf("margin=%d, want 1000", p.DangerMargin)
	}
	if p.DowngradeDanger[2] != 4000 {
		t.Fatalf("danger[2]=%d, want 4000", p.DowngradeDanger[2])
	}
	if p.RepairThreshold[world.TerrainSwamp] != 10000 {
		t.Fatalf("repair[swamp]=%d, want 10000", p.RepairThreshold[world.TerrainSwamp])
	}
	if p.ReusePath[tasks.KindHarvest] != 7 {
		t.Fatalf("reuse[HARVEST]=%d, want 7", p.ReusePath[tasks.KindHarvest])
	}
	if len(p.SpawnRules) != 2 || p.SpawnRules[1].Cost != 200 {
		t.Fatalf("spawn rules mapped wrong: %+v", p.SpawnRules)
	}

	wc := tn.WorldConfig("room-1")
	if wc.Width != 40 || wc.CreepTTL != 900 || wc.Seed != 42 {
		t.Fatalf("world config mapped wrong: %+v", wc)
	}
}

func TestLoad_SchemaRejectsWrongShape(t *testing.T) {
	bad := strings.Replace(sample, "repair_factor: 0.5", "repair_factor: 1.5", 1)
	if _, err := Load(writeTuning(t, bad)); err == nil {
		t.Fatalf("repair_factor above 1 accepted")
	}

	bad = strings.Replace(sample, "{terrain: plain, below: 2000}", "{terrain: lava, below: 2000}", 1)
	if _, err := Load(writeTuning(t, bad)); err == nil {
		t.Fatalf("unknown terrain accepted")
	}

	bad = strings.Replace(sample, "tick_rate_hz: 5", "tick_rate: 5", 1)
	if _, err := Load(writeTuning(t, bad)); err == nil {
		t.Fatalf("unknown top-level key accepted")
	}
}

func TestLoad_ChecksCrossFieldRules(t *testing.T) {
	// Ceilings out of order.
	bad := strings.Replace(sample, "max_population: 6", "max_population: 2", 1)
	if _, err := Load(writeTuning(t, bad)); err == nil {
		t.Fatalf("descending ceilings accepted")
	}

	// Declared cost disagrees with the parts total.
	bad = strings.Replace(sample, "cost: 200", "cost: 150", 1)
	if _, err := Load(writeTuning(t, bad)); err == nil {
		t.Fatalf("mismatched body cost accepted")
	}
}

func TestEnginePolicy_EmptyTuningKeepsDefaults(t *testing.T) {
	var tn Tuning
	p := tn.EnginePolicy()
	if p.ContactRange != 1 || p.RangedRange != 3 {
		t.Fatalf("ranges %d/%d, want defaults 1/3", p.ContactRange, p.RangedRange)
	}
	if len(p.SpawnRules) == 0 {
		t.Fatalf("default spawn rules missing")
	}
}
