package engine

import (
	"testing"

	"roomkeeper/internal/sim/world"
)

func TestDefense_TowerAttacksNearestHostile(t *testing.T) {
	w := world.New(world.Config{ID: "test"})
	w.AddTower(world.Pos{X: 10, Y: 10}, 500, 1000)
	far := w.AddHostile(world.Pos{X: 18, Y: 10}, 600)
	near := w.AddHostile(world.Pos{X: 12, Y: 10}, 600)

	e := newTestEngine(1)
	if fired := e.runDefense(w); fired != 1 {
		t.Fatalf("fired=%d, want 1", fired)
	}
	if near.HP != 600-w.Config().TowerDamage {
		t.Fatalf("near hostile HP=%d, want %d", near.HP, 600-w.Config().TowerDamage)
	}
	if far.HP != 600 {
		t.Fatalf("far hostile was hit: HP=%d", far.HP)
	}
}

func TestDefense_OutOfRangeHostileIgnored(t *testing.T) {
	w := world.New(world.Config{ID: "test", Width: 100, Height: 100, TowerRange: 5})
	tw := w.AddTower(world.Pos{X: 10, Y: 10}, 500, 1000)
	h := w.AddHostile(world.Pos{X: 40, Y: 40}, 600)

	e := newTestEngine(1)
	if fired := e.runDefense(w); fired != 0 {
		t.Fatalf("fired=%d at an out-of-range hostile", fired)
	}
	if h.HP != 600 || tw.Used() != 500 {
		t.Fatalf("attack side effects applied: hp=%d tower=%d", h.HP, tw.Used())
	}
}

func TestDefense_KilledHostileRemoved(t *testing.T) {
	w := world.New(world.Config{ID: "test"})
	w.AddTower(world.Pos{X: 10, Y: 10}, 500, 1000)
	h := w.AddHostile(world.Pos{X: 12, Y: 10}, 100) // below one volley

	e := newTestEngine(1)
	if fired := e.runDefense(w); fired != 1 {
		t.Fatalf("fired=%d, want 1", fired)
	}
	if len(w.Hostiles()) != 0 {
		t.Fatalf("dead hostile still present")
	}
	if _, ok := w.Resolve(h.ID()); ok {
		t.Fatalf("dead hostile still resolvable")
	}
}

func TestDefense_EmptyTowerCannotFire(t *testing.T) {
	w := world.New(world.Config{ID: "test"})
	w.AddTower(world.Pos{X: 10, Y: 10}, 0, 1000)
	h := w.AddHostile(world.Pos{X: 12, Y: 10}, 600)

	e := newTestEngine(1)
	if fired := e.runDefense(w); fired != 0 {
		t.Fatalf("fired=%d with an empty store", fired)
	}
	if h.HP != 600 {
		t.Fatalf("hostile HP=%d, want 600", h.HP)
	}
}
