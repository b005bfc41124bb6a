package engine

import (
	"fmt"
	"testing"

	"roomkeeper/internal/sim/world"
)

func TestChooseRule_FirstAffordableAscendingCeiling(t *testing.T) {
	rules := DefaultPolicy().SpawnRules

	r, ok := chooseRule(rules, 0, 1000)
	if !ok || r.Cost != 300 {
		t.Fatalf("pop 0: got cost %d ok=%v, want 300", r.Cost, ok)
	}
	r, ok = chooseRule(rules, 5, 1000)
	if !ok || r.Cost != 250 {
		t.Fatalf("pop 5: got cost %d ok=%v, want 250", r.Cost, ok)
	}
	if _, ok := chooseRule(rules, 12, 1000); ok {
		t.Fatalf("pop at top ceiling still spawned")
	}
}

func TestChooseRule_PopulationMonotonicity(t *testing.T) {
	// Scanning ascending ceilings, a higher population must never buy
	// a larger loadout than a lower one did.
	rules := DefaultPolicy().SpawnRules
	prevCost := int(^uint(0) >> 1)
	for pop := 0; pop < 12; pop++ {
		r, ok := chooseRule(rules, pop, 1000)
		if !ok {
			t.Fatalf("pop %d: no rule under plentiful energy", pop)
		}
		if r.Cost > prevCost {
			t.Fatalf("pop %d chose cost %d, above cost %d at lower population", pop, r.Cost, prevCost)
		}
		prevCost = r.Cost
	}
}

func TestChooseRule_FallsPastUnaffordableRows(t *testing.T) {
	rules := DefaultPolicy().SpawnRules
	r, ok := chooseRule(rules, 0, 220)
	if !ok || r.Cost != 200 {
		t.Fatalf("got cost %d ok=%v, want the 200 row", r.Cost, ok)
	}
	if _, ok := chooseRule(rules, 0, 150); ok {
		t.Fatalf("spawned with energy below every row")
	}
}

func TestRunPopulation_SpawnsWithTickSequenceNames(t *testing.T) {
	w := world.New(world.Config{ID: "test"})
	w.AddSpawn("spawn-1", world.Pos{X: 3, Y: 3}, 300, 300)
	w.AddSpawn("spawn-2", world.Pos{X: 8, Y: 3}, 300, 300)

	e := newTestEngine(1)
	rep := e.RunTick(w)
	if rep.Spawned != 2 {
		t.Fatalf("spawned=%d, want 2", rep.Spawned)
	}
	for i := 0; i < 2; i++ {
		name := fmt.Sprintf("creep-%d-%d", 0, i)
		c, ok := w.Creep(name)
		if !ok {
			t.Fatalf("missing creep %s", name)
		}
		if !c.Spawning {
			t.Fatalf("%s not flagged as spawning", name)
		}
	}
}

func TestRunPopulation_FailureLoggedNotRetried(t *testing.T) {
	w := world.New(world.Config{ID: "test"})
	sp := w.AddSpawn("spawn-1", world.Pos{X: 3, Y: 3}, 300, 300)
	// Occupy the name the controller will generate this tick.
	w.AddCreep("creep-0-0", world.Pos{X: 9, Y: 9}, []world.Part{world.PartWork, world.PartCarry, world.PartMove}, 0)

	e := newTestEngine(1)
	if spawned := e.runPopulation(w, sp); spawned {
		t.Fatalf("spawn succeeded despite name collision")
	}
	if w.CreepCount() != 1 {
		t.Fatalf("creep count %d, want 1", w.CreepCount())
	}
	if e.spawnSeq != 0 {
		t.Fatalf("sequence advanced past a failed attempt")
	}
}

func TestRunPopulation_NoRuleMatchNoCreation(t *testing.T) {
	w := world.New(world.Config{ID: "test"})
	sp := w.AddSpawn("spawn-1", world.Pos{X: 3, Y: 3}, 100, 300) // below every cost row

	e := newTestEngine(1)
	if spawned := e.runPopulation(w, sp); spawned {
		t.Fatalf("spawned without an affordable rule")
	}
	if w.CreepCount() != 0 {
		t.Fatalf("creep count %d, want 0", w.CreepCount())
	}
}
