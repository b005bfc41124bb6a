package engine

import (
	"roomkeeper/internal/sim/tasks"
	"roomkeeper/internal/sim/world"
)

// Policy is the engine's externally meaningful configuration: the
// threshold tables and orderings the selector, executor and
// population controller evaluate. The numbers are policy, not law;
// the tuning file overrides them.
type Policy struct {
	// ContactRange gates tasks that need adjacency (harvest, store);
	// RangedRange gates ranged work (upgrade, build, repair).
	ContactRange int
	RangedRange  int

	// DowngradeDanger holds, per controller level, the downgrade
	// countdown below which upgrading preempts everything else.
	// DangerMargin is subtracted from each level's value.
	DowngradeDanger map[int]int
	DangerMargin    int

	// RepairThreshold holds, per terrain class, the road hit level
	// considered worn; each is scaled by RepairFactor.
	RepairThreshold map[world.Terrain]int
	RepairFactor    float64

	// ReusePath is the per-kind path cache lifetime handed to move
	// directives: short for perishable targets, long for stationary
	// ones.
	ReusePath map[tasks.Kind]int

	// SpawnRules is scanned in ascending ceiling order; the first row
	// whose ceiling exceeds the population and whose cost is
	// affordable wins.
	SpawnRules []SpawnRule
}

// SpawnRule is one population threshold row.
type SpawnRule struct {
	MaxPopulation int
	Cost          int
	Parts         []world.Part
}

func DefaultPolicy() Policy {
	return Policy{
		ContactRange: 1,
		RangedRange:  3,
		DowngradeDanger: map[int]int{
			1: 10_000,
			2: 5_000,
			3: 10_000,
			4: 20_000,
			5: 40_000,
			6: 60_000,
			7: 75_000,
			8: 100_000,
		},
		DangerMargin: 2_000,
		RepairThreshold: map[world.Terrain]int{
			world.TerrainPlain: 4_000,
			world.TerrainSwamp: 20_000,
			world.TerrainWall:  600_000,
		},
		RepairFactor: 0.8,
		ReusePath: map[tasks.Kind]int{
			tasks.KindHarvest: 5,
			tasks.KindStore:   10,
			tasks.KindBuild:   15,
			tasks.KindRepair:  15,
			tasks.KindUpgrade: 30,
		},
		SpawnRules: []SpawnRule{
			{MaxPopulation: 4, Cost: 300, Parts: []world.Part{world.PartWork, world.PartWork, world.PartCarry, world.PartMove}},
			{MaxPopulation: 8, Cost: 250, Parts: []world.Part{world.PartWork, world.PartCarry, world.PartCarry, world.PartMove}},
			{MaxPopulation: 12, Cost: 200, Parts: []world.Part{world.PartWork, world.PartCarry, world.PartMove}},
		},
	}
}

// dangerBelow is the effective danger threshold for a controller
// level.
func (p Policy) dangerBelow(level int) int {
	v, ok := p.DowngradeDanger[level]
	if !ok {
		return 0
	}
	v -= p.DangerMargin
	if v < 0 {
		v = 0
	}
	return v
}

// wornBelow is the effective repair threshold for a terrain class.
func (p Policy) wornBelow(t world.Terrain) int {
	return int(float64(p.RepairThreshold[t]) * p.RepairFactor)
}

func (p Policy) reuse(k tasks.Kind) int {
	if n, ok := p.ReusePath[k]; ok {
		return n
	}
	return 5
}
