package engine

import (
	"log"
	"math/rand"

	"roomkeeper/internal/sim/world"
)

// Engine runs the per-tick task loop for one room: defense first,
// then every live creep executes or selects a task, then each spawn
// consults the population rules. The engine owns the registry and the
// RNG for the life of the process; both reset only on restart.
type Engine struct {
	pol Policy
	reg *Registry
	rng *rand.Rand
	log *log.Logger

	// spawnSeq disambiguates creep names within one tick. It only
	// advances past an attempt that succeeded.
	spawnSeq int
}

func New(pol Policy, seed int64, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		pol: pol,
		reg: NewRegistry(),
		rng: rand.New(rand.NewSource(seed)),
		log: logger,
	}
}

// Registry exposes the task registry, mainly to tests and stats.
func (e *Engine) Registry() *Registry { return e.reg }

// TickReport summarizes one engine pass for logging and indexing.
type TickReport struct {
	Tick      uint64  `json:"tick"`
	Creeps    int     `json:"creeps"`
	Assigned  int     `json:"assigned"`
	Executed  int     `json:"executed"`
	Evicted   int     `json:"evicted"`
	Idle      int     `json:"idle"`
	Spawned   int     `json:"spawned"`
	Attacks   int     `json:"attacks"`
	ElapsedMS float64 `json:"elapsed_ms"`
}

// RunTick executes one full synchronous engine pass. One creep's
// failure never aborts the others: every outcome is handled where it
// is detected.
func (e *Engine) RunTick(w *world.World) TickReport {
	tm := StartTimer("tick", nil)
	rep := TickReport{Tick: w.Time()}

	rep.Attacks = e.runDefense(w)

	e.spawnSeq = 0

	// Snapshot names first: a creep evicting its own entry mid-walk
	// must not disturb iteration over the rest.
	for _, name := range w.CreepNames() {
		c, ok := w.Creep(name)
		if !ok || c.Spawning {
			continue
		}
		rep.Creeps++
		if t, held := e.reg.Lookup(name); held {
			if e.runTask(w, c, t) {
				rep.Executed++
				continue
			}
			e.reg.Evict(name)
			rep.Evicted++
		}
		// Vacant (or just vacated) entry: run the priority scan.
		if t, found := e.selectTask(w, c); found {
			e.reg.Assign(name, t)
			rep.Assigned++
		} else {
			rep.Idle++
		}
	}

	for _, sp := range w.Spawns() {
		if e.runPopulation(w, sp) {
			rep.Spawned++
		}
	}

	e.dropDeadEntries(w)

	rep.ElapsedMS = tm.Stop()
	return rep
}

// dropDeadEntries clears registry entries whose creep is confirmed
// gone, so identities never outlive their agents.
func (e *Engine) dropDeadEntries(w *world.World) {
	for _, name := range e.reg.Names() {
		if _, ok := w.Creep(name); !ok {
			e.reg.Evict(name)
		}
	}
}
