package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"roomkeeper/internal/sim/engine"
	"roomkeeper/internal/sim/tasks"
	"roomkeeper/internal/sim/world"
)

// Tuning is the on-disk policy configuration. Every threshold the
// engine evaluates lives here; zero values fall back to the built-in
// defaults.
type Tuning struct {
	TickRateHz int   `yaml:"tick_rate_hz"`
	Seed       int64 `yaml:"seed"`

	Engine EngineTuning `yaml:"engine"`
	World  WorldTuning  `yaml:"world"`
}

type EngineTuning struct {
	ContactRange int `yaml:"contact_range"`
	RangedRange  int `yaml:"ranged_range"`

	DangerMargin    int            `yaml:"danger_margin"`
	DowngradeDanger []DangerRow    `yaml:"downgrade_danger"`
	RepairFactor    float64        `yaml:"repair_factor"`
	RepairThreshold []ThresholdRow `yaml:"repair_threshold"`
	ReusePath       map[string]int `yaml:"reuse_path"`
	SpawnRules      []SpawnRow     `yaml:"spawn_rules"`
}

type DangerRow struct {
	Level int `yaml:"level"`
	Below int `yaml:"below"`
}

type ThresholdRow struct {
	Terrain string `yaml:"terrain"`
	Below   int    `yaml:"below"`
}

type SpawnRow struct {
	MaxPopulation int      `yaml:"max_population"`
	Cost          int      `yaml:"cost"`
	Parts         []string `yaml:"parts"`
}

type WorldTuning struct {
	Width             int `yaml:"width"`
	Height            int `yaml:"height"`
	CreepTTL          int `yaml:"creep_ttl"`
	SpawnTicksPerPart int `yaml:"spawn_ticks_per_part"`
	SourceRegenTicks  int `yaml:"source_regen_ticks"`
	RoadDecayEvery    int `yaml:"road_decay_every"`
	RoadDecayHits     int `yaml:"road_decay_hits"`
	TowerRange        int `yaml:"tower_range"`
	TowerDamage       int `yaml:"tower_damage"`
	TowerCost         int `yaml:"tower_cost"`
}

// Load reads, schema-validates and decodes a tuning file.
func Load(path string) (Tuning, error) {
	var t Tuning
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := validate(raw); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	if err := t.check(); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// check enforces the cross-field rules a schema cannot express.
func (t Tuning) check() error {
	prev := 0
	for i, r := range t.Engine.SpawnRules {
		if r.MaxPopulation <= prev {
			return fmt.Errorf("spawn_rules[%d]: ceilings must be strictly ascending", i)
		}
		prev = r.MaxPopulation
		parts, err := parseParts(r.Parts)
		if err != nil {
			return fmt.Errorf("spawn_rules[%d]: %w", i, err)
		}
		if got := world.BodyCost(parts); got != r.Cost {
			return fmt.Errorf("spawn_rules[%d]: cost %d does not match parts total %d", i, r.Cost, got)
		}
	}
	for i, r := range t.Engine.RepairThreshold {
		if _, err := parseTerrain(r.Terrain); err != nil {
			return fmt.Errorf("repair_threshold[%d]: %w", i, err)
		}
	}
	return nil
}

// EnginePolicy maps the file onto an engine policy, filling gaps from
// the defaults.
func (t Tuning) EnginePolicy() engine.Policy {
	p := engine.DefaultPolicy()
	e := t.Engine
	if e.ContactRange > 0 {
		p.ContactRange = e.ContactRange
	}
	if e.RangedRange > 0 {
		p.RangedRange = e.RangedRange
	}
	if e.DangerMargin > 0 {
		p.DangerMargin = e.DangerMargin
	}
	if len(e.DowngradeDanger) > 0 {
		p.DowngradeDanger = map[int]int{}
		for _, r := range e.DowngradeDanger {
			p.DowngradeDanger[r.Level] = r.Below
		}
	}
	if e.RepairFactor > 0 {
		p.RepairFactor = e.RepairFactor
	}
	if len(e.RepairThreshold) > 0 {
		p.RepairThreshold = map[world.Terrain]int{}
		for _, r := range e.RepairThreshold {
			terrain, err := parseTerrain(r.Terrain)
			if err != nil {
				continue // rejected by check at load time
			}
			p.RepairThreshold[terrain] = r.Below
		}
	}
	if len(e.ReusePath) > 0 {
		p.ReusePath = map[tasks.Kind]int{}
		for k, v := range e.ReusePath {
			p.ReusePath[tasks.Kind(k)] = v
		}
	}
	if len(e.SpawnRules) > 0 {
		p.SpawnRules = nil
		for _, r := range e.SpawnRules {
			parts, err := parseParts(r.Parts)
			if err != nil {
				continue // rejected by check at load time
			}
			p.SpawnRules = append(p.SpawnRules, engine.SpawnRule{
				MaxPopulation: r.MaxPopulation,
				Cost:          r.Cost,
				Parts:         parts,
			})
		}
	}
	return p
}

// WorldConfig maps the file onto a world config; zero values keep the
// world package defaults.
func (t Tuning) WorldConfig(id string) world.Config {
	w := t.World
	return world.Config{
		ID:                id,
		Width:             w.Width,
		Height:            w.Height,
		Seed:              t.Seed,
		CreepTTL:          w.CreepTTL,
		SpawnTicksPerPart: w.SpawnTicksPerPart,
		SourceRegenTicks:  w.SourceRegenTicks,
		RoadDecayEvery:    w.RoadDecayEvery,
		RoadDecayHits:     w.RoadDecayHits,
		TowerRange:        w.TowerRange,
		TowerDamage:       w.TowerDamage,
		TowerCost:         w.TowerCost,
	}
}

func parseParts(names []string) ([]world.Part, error) {
	parts := make([]world.Part, 0, len(names))
	for _, n := range names {
		p := world.Part(n)
		if world.PartCost(p) == 0 {
			return nil, fmt.Errorf("unknown body part %q", n)
		}
		parts = append(parts, p)
	}
	return parts, nil
}

func parseTerrain(name string) (world.Terrain, error) {
	switch name {
	case "plain":
		return world.TerrainPlain, nil
	case "swamp":
		return world.TerrainSwamp, nil
	case "wall":
		return world.TerrainWall, nil
	}
	return 0, fmt.Errorf("unknown terrain %q", name)
}
