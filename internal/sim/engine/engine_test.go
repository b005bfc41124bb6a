package engine

import (
	"io"
	"log"
	"testing"

	"roomkeeper/internal/sim/world"
)

func newTestEngine(seed int64) *Engine {
	return New(DefaultPolicy(), seed, log.New(io.Discard, "", 0))
}

func TestRunTick_SingleTaskInvariantAndNoOrphans(t *testing.T) {
	w := world.New(world.Config{ID: "test"})
	w.AddController(world.Pos{X: 14, Y: 10}, 1)
	w.AddSpawn("spawn-1", world.Pos{X: 12, Y: 10}, 0, 300)
	w.AddSource(world.Pos{X: 10, Y: 10}, 3000)
	w.AddCreep("creep-0-0", world.Pos{X: 11, Y: 10}, []world.Part{world.PartWork, world.PartCarry, world.PartMove}, 0)

	e := newTestEngine(7)
	for i := 0; i < 300; i++ {
		e.RunTick(w)
		if e.reg.Len() > w.CreepCount() {
			t.Fatalf("tick %d: %d registry entries for %d creeps", i, e.reg.Len(), w.CreepCount())
		}
		for _, name := range e.reg.Names() {
			if _, ok := w.Creep(name); !ok {
				t.Fatalf("tick %d: registry entry for dead creep %s", i, name)
			}
		}
		w.Step()
	}
	if w.CreepCount() < 2 {
		t.Fatalf("population never grew: %d creeps", w.CreepCount())
	}
}

func TestRunTick_SpawningCreepsAreSkipped(t *testing.T) {
	w := world.New(world.Config{ID: "test"})
	w.AddSource(world.Pos{X: 5, Y: 5}, 3000)
	c := w.AddCreep("c1", world.Pos{X: 1, Y: 1}, []world.Part{world.PartWork, world.PartCarry, world.PartMove}, 0)
	c.Spawning = true

	e := newTestEngine(1)
	rep := e.RunTick(w)
	if rep.Creeps != 0 {
		t.Fatalf("processed %d creeps, want 0", rep.Creeps)
	}
	if e.reg.Len() != 0 {
		t.Fatalf("spawning creep got a task")
	}
}

func TestRunTick_DeadCreepEntryDropped(t *testing.T) {
	cfg := world.Config{ID: "test", CreepTTL: 1}
	w := world.New(cfg)
	w.AddSource(world.Pos{X: 2, Y: 1}, 3000)
	w.AddCreep("shortlived", world.Pos{X: 1, Y: 1}, []world.Part{world.PartWork, world.PartCarry, world.PartMove}, 0)

	e := newTestEngine(1)
	e.RunTick(w)
	if _, ok := e.reg.Lookup("shortlived"); !ok {
		t.Fatalf("expected a harvest task before death")
	}
	w.Step() // TTL hits zero, creep removed
	e.RunTick(w)
	if _, ok := e.reg.Lookup("shortlived"); ok {
		t.Fatalf("registry entry outlived its creep")
	}
}

func TestRunTick_IdempotentIdle(t *testing.T) {
	w := world.New(world.Config{ID: "test"})
	w.AddCreep("idler", world.Pos{X: 1, Y: 1}, []world.Part{world.PartWork, world.PartCarry, world.PartMove}, 0)

	e := newTestEngine(1)
	for i := 0; i < 10; i++ {
		rep := e.RunTick(w)
		if rep.Idle != 1 || rep.Assigned != 0 {
			t.Fatalf("tick %d: idle=%d assigned=%d, want 1/0", i, rep.Idle, rep.Assigned)
		}
		if e.reg.Len() != 0 {
			t.Fatalf("tick %d: idle creep acquired a task", i)
		}
		w.Step()
	}
}
