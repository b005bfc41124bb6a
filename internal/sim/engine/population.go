package engine

import (
	"fmt"

	"roomkeeper/internal/sim/world"
)

// runPopulation decides whether one spawn should produce a new creep
// this tick. A failed spawn is logged and retried fresh next tick
// under the same threshold evaluation.
func (e *Engine) runPopulation(w *world.World, sp *world.Spawn) bool {
	rule, ok := chooseRule(e.pol.SpawnRules, w.CreepCount(), w.EnergyAvailable())
	if !ok {
		return false
	}
	name := fmt.Sprintf("creep-%d-%d", w.Time(), e.spawnSeq)
	if code := w.SpawnCreep(sp, rule.Parts, name); code != world.OK {
		e.log.Printf("population: spawn %s at %s: %s", name, sp.Name, code)
		return false
	}
	e.spawnSeq++
	return true
}

// chooseRule scans the threshold rows in ascending ceiling order and
// returns the first whose ceiling exceeds the population and whose
// cost fits the available energy.
func chooseRule(rules []SpawnRule, pop, energy int) (SpawnRule, bool) {
	for _, r := range rules {
		if pop < r.MaxPopulation && r.Cost <= energy {
			return r, true
		}
	}
	return SpawnRule{}, false
}
