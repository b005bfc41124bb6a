package world

import (
	"fmt"
	"math/rand"
)

// Generate builds a small seeded room for the headless runner: a
// controller, one spawn, a handful of sources, a tower, some swamp
// patches, worn roads and a couple of construction sites. The layout
// is deterministic for a given seed.
func Generate(cfg Config) *World {
	w := New(cfg)
	rng := rand.New(rand.NewSource(w.cfg.Seed))

	cx, cy := w.cfg.Width/2, w.cfg.Height/2
	w.AddController(Pos{X: cx, Y: cy}, 1)
	w.AddSpawn("spawn-1", Pos{X: cx - 5, Y: cy}, 300, 300)
	w.AddTower(Pos{X: cx + 3, Y: cy - 3}, 500, 1000)

	for i := 0; i < 3; i++ {
		p := Pos{X: rng.Intn(w.cfg.Width), Y: rng.Intn(w.cfg.Height)}
		w.AddSource(p, 3000)
	}
	for i := 0; i < 4; i++ {
		w.AddExtension(Pos{X: cx - 7 + i, Y: cy + 2}, 0, 50)
	}
	for i := 0; i < 20; i++ {
		p := Pos{X: rng.Intn(w.cfg.Width), Y: rng.Intn(w.cfg.Height)}
		w.SetTerrain(p, TerrainSwamp)
	}
	for i := 0; i < 6; i++ {
		p := Pos{X: cx - 4 + i, Y: cy}
		hits := roadHitsMax(w.TerrainAt(p))
		w.AddRoad(p, hits/2+rng.Intn(hits/2), hits)
	}
	w.AddSite(Pos{X: cx - 7, Y: cy + 3}, KindExtension, 3000)
	w.AddSite(Pos{X: cx + 1, Y: cy + 1}, KindRoad, 300)

	for i := 0; i < 2; i++ {
		name := fmt.Sprintf("creep-0-%d", i)
		w.AddCreep(name, Pos{X: cx - 5 + i, Y: cy + 1}, []Part{PartWork, PartCarry, PartMove}, 0)
	}
	return w
}
