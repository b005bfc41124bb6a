package indexdb

import (
	"context"
	"path/filepath"
	"testing"

	"roomkeeper/internal/sim/engine"
)

func TestIndex_WriteAndQueryRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.db")

	idx, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for tick := uint64(0); tick < 5; tick++ {
		idx.WriteTick(engine.TickReport{Tick: tick, Creeps: int(tick) + 1, ElapsedMS: 0.1})
	}
	// Close drains the async writer before the queries below.
	if err := idx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	idx, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer idx.Close()

	got, err := idx.RecentTicks(context.Background(), 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	for i, rep := range got {
		wantTick := uint64(2 + i) // ascending, highest three ticks
		if rep.Tick != wantTick || rep.Creeps != int(wantTick)+1 {
			t.Fatalf("row %d: tick=%d creeps=%d, want %d/%d", i, rep.Tick, rep.Creeps, wantTick, wantTick+1)
		}
	}
}

func TestIndex_WriteAfterCloseIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.db")
	idx, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// Must not panic on the closed channel.
	idx.WriteTick(engine.TickReport{Tick: 9})
}
