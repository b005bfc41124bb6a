package engine

import (
	"math/rand"

	"roomkeeper/internal/sim/tasks"
	"roomkeeper/internal/sim/world"
)

// selectTask picks at most one new task for a creep with a vacant
// registry entry. Carrying energy, the scan runs in fixed priority
// order: life-support (controller decay) first, then feeding
// production, then defense upkeep, then infrastructure, then growth,
// then the universal upgrade fallback. Empty-handed creeps go
// harvesting.
func (e *Engine) selectTask(w *world.World, c *world.Creep) (tasks.Task, bool) {
	if c.Carry > 0 {
		return e.selectWork(w)
	}
	return e.selectHarvest(w)
}

func (e *Engine) selectWork(w *world.World) (tasks.Task, bool) {
	if ctl := w.Controller(); ctl != nil && ctl.TicksToDowngrade < e.pol.dangerBelow(ctl.Level) {
		return tasks.Task{Kind: tasks.KindUpgrade, Target: ctl.ID()}, true
	}
	for _, sp := range w.Spawns() {
		if sp.Free() > 0 {
			return tasks.Task{Kind: tasks.KindStore, Target: sp.ID(), Store: tasks.StoreSpawn}, true
		}
	}
	for _, ext := range w.Extensions() {
		if ext.Free() > 0 {
			return tasks.Task{Kind: tasks.KindStore, Target: ext.ID(), Store: tasks.StoreExtension}, true
		}
	}
	for _, t := range w.Towers() {
		if t.Free() > 0 {
			return tasks.Task{Kind: tasks.KindStore, Target: t.ID(), Store: tasks.StoreTower}, true
		}
	}
	for _, r := range w.Roads() {
		if r.Hits < e.pol.wornBelow(w.TerrainAt(r.Pos())) {
			return tasks.Task{Kind: tasks.KindRepair, Target: r.ID()}, true
		}
	}
	if sites := w.Sites(); len(sites) > 0 {
		return tasks.Task{Kind: tasks.KindBuild, Target: sites[0].ID()}, true
	}
	if ctl := w.Controller(); ctl != nil {
		return tasks.Task{Kind: tasks.KindUpgrade, Target: ctl.ID()}, true
	}
	return tasks.Task{}, false
}

func (e *Engine) selectHarvest(w *world.World) (tasks.Task, bool) {
	active := w.ActiveSources()
	if len(active) == 0 {
		return tasks.Task{}, false
	}
	src := active[biasedIndex(e.rng, len(active))]
	return tasks.Task{Kind: tasks.KindHarvest, Target: src.ID()}, true
}

// biasedIndex draws two independent uniform samples and keeps the
// larger, deliberately biasing toward later-indexed sources so the
// population spreads off the first node.
func biasedIndex(rng *rand.Rand, n int) int {
	a, b := rng.Intn(n), rng.Intn(n)
	if b > a {
		return b
	}
	return a
}
