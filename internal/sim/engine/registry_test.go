package engine

import (
	"testing"

	"roomkeeper/internal/sim/tasks"
)

func TestRegistry_OneEntryPerCreep(t *testing.T) {
	r := NewRegistry()
	r.Assign("c1", tasks.Task{Kind: tasks.KindHarvest, Target: "src-1"})
	r.Assign("c1", tasks.Task{Kind: tasks.KindUpgrade, Target: "ctl-1"})

	if r.Len() != 1 {
		t.Fatalf("len=%d, want 1", r.Len())
	}
	got, ok := r.Lookup("c1")
	if !ok || got.Kind != tasks.KindUpgrade {
		t.Fatalf("lookup got %+v ok=%v, want latest assignment", got, ok)
	}
}

func TestRegistry_EvictDuringNameWalk(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"a", "b", "c", "d"} {
		r.Assign(name, tasks.Task{Kind: tasks.KindHarvest, Target: "src-1"})
	}

	// Evicting the entry under visit must not disturb the rest of the
	// walk: names are snapshotted up front.
	visited := 0
	for _, name := range r.Names() {
		if name == "b" {
			r.Evict("b")
		}
		visited++
	}
	if visited != 4 {
		t.Fatalf("visited %d names, want 4", visited)
	}
	if r.Len() != 3 {
		t.Fatalf("len=%d after evicting one of four", r.Len())
	}
}

func TestRegistry_EvictVacantIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Evict("ghost")
	if r.Len() != 0 {
		t.Fatalf("len=%d, want 0", r.Len())
	}
}
