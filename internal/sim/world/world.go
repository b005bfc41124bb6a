package world

import (
	"fmt"
	"sort"
)

type Config struct {
	ID     string
	Width  int
	Height int
	Seed   int64

	CreepTTL          int
	SpawnTicksPerPart int
	SourceRegenTicks  int
	RoadDecayEvery    int
	RoadDecayHits     int

	HarvestPower int // energy per WORK part per harvest
	BuildPower   int // progress per WORK part per build
	RepairPower  int // hits per WORK part per repair
	UpgradePower int // progress per WORK part per upgrade

	TowerRange  int
	TowerDamage int
	TowerCost   int

	UpgradeRestoreTicks int // downgrade countdown restored per upgrade action
}

func (c *Config) applyDefaults() {
	if c.Width <= 0 {
		c.Width = 50
	}
	if c.Height <= 0 {
		c.Height = 50
	}
	if c.CreepTTL <= 0 {
		c.CreepTTL = 1500
	}
	if c.SpawnTicksPerPart <= 0 {
		c.SpawnTicksPerPart = 3
	}
	if c.SourceRegenTicks <= 0 {
		c.SourceRegenTicks = 300
	}
	if c.RoadDecayEvery <= 0 {
		c.RoadDecayEvery = 50
	}
	if c.RoadDecayHits <= 0 {
		c.RoadDecayHits = 100
	}
	if c.HarvestPower <= 0 {
		c.HarvestPower = 2
	}
	if c.BuildPower <= 0 {
		c.BuildPower = 5
	}
	if c.RepairPower <= 0 {
		c.RepairPower = 100
	}
	if c.UpgradePower <= 0 {
		c.UpgradePower = 1
	}
	if c.TowerRange <= 0 {
		c.TowerRange = 20
	}
	if c.TowerDamage <= 0 {
		c.TowerDamage = 150
	}
	if c.TowerCost <= 0 {
		c.TowerCost = 10
	}
	if c.UpgradeRestoreTicks <= 0 {
		c.UpgradeRestoreTicks = 100
	}
}

// World is a single-threaded authoritative room simulation: the host
// collaborator the engine queries and acts against. All state must be
// accessed from one goroutine.
type World struct {
	cfg  Config
	tick uint64

	controller *Controller
	sources    []*Source
	spawns     []*Spawn
	extensions []*Extension
	towers     []*Tower
	roads      []*Road
	sites      []*Site
	hostiles   []*Hostile
	creeps     map[string]*Creep

	objects map[ObjectID]Object
	terrain map[Pos]Terrain

	nextObj     uint64
	movesIssued int
}

func New(cfg Config) *World {
	cfg.applyDefaults()
	return &World{
		cfg:     cfg,
		creeps:  map[string]*Creep{},
		objects: map[ObjectID]Object{},
		terrain: map[Pos]Terrain{},
	}
}

func (w *World) Config() Config { return w.cfg }

// Time is the monotonically increasing tick counter.
func (w *World) Time() uint64 { return w.tick }

func (w *World) newID(prefix string) ObjectID {
	w.nextObj++
	return ObjectID(fmt.Sprintf("%s-%d", prefix, w.nextObj))
}

// Resolve turns a stable ID into a live, tick-scoped handle. A false
// return is not an error: it is the normal signal that the world
// changed and the object is gone.
func (w *World) Resolve(id ObjectID) (Object, bool) {
	o, ok := w.objects[id]
	return o, ok
}

// SetTerrain classifies a tile; unclassified tiles are plain.
func (w *World) SetTerrain(p Pos, t Terrain) { w.terrain[p] = t }

func (w *World) TerrainAt(p Pos) Terrain { return w.terrain[p] }

func (w *World) AddController(p Pos, level int) *Controller {
	c := &Controller{
		obj:              obj{id: w.newID("ctl"), pos: p, kind: KindController},
		Level:            level,
		TicksToDowngrade: downgradeTotal(level),
	}
	w.controller = c
	w.objects[c.id] = c
	return c
}

func (w *World) AddSource(p Pos, energy int) *Source {
	s := &Source{
		obj:       obj{id: w.newID("src"), pos: p, kind: KindSource},
		Energy:    energy,
		EnergyCap: energy,
	}
	w.sources = append(w.sources, s)
	w.objects[s.id] = s
	return s
}

func (w *World) AddSpawn(name string, p Pos, used, cap int) *Spawn {
	s := &Spawn{
		obj:   obj{id: w.newID("spawn"), pos: p, kind: KindSpawn},
		store: store{used: used, cap: cap},
		Name:  name,
	}
	w.spawns = append(w.spawns, s)
	w.objects[s.id] = s
	return s
}

func (w *World) AddExtension(p Pos, used, cap int) *Extension {
	e := &Extension{
		obj:   obj{id: w.newID("ext"), pos: p, kind: KindExtension},
		store: store{used: used, cap: cap},
	}
	w.extensions = append(w.extensions, e)
	w.objects[e.id] = e
	return e
}

func (w *World) AddTower(p Pos, used, cap int) *Tower {
	t := &Tower{
		obj:   obj{id: w.newID("tower"), pos: p, kind: KindTower},
		store: store{used: used, cap: cap},
	}
	w.towers = append(w.towers, t)
	w.objects[t.id] = t
	return t
}

func (w *World) AddRoad(p Pos, hits, hitsMax int) *Road {
	r := &Road{
		obj:     obj{id: w.newID("road"), pos: p, kind: KindRoad},
		Hits:    hits,
		HitsMax: hitsMax,
	}
	w.roads = append(w.roads, r)
	w.objects[r.id] = r
	return r
}

func (w *World) AddSite(p Pos, builds StructureKind, total int) *Site {
	s := &Site{
		obj:    obj{id: w.newID("site"), pos: p, kind: KindSite},
		Builds: builds,
		Total:  total,
	}
	w.sites = append(w.sites, s)
	w.objects[s.id] = s
	return s
}

func (w *World) AddHostile(p Pos, hp int) *Hostile {
	h := &Hostile{
		obj: obj{id: w.newID("hostile"), pos: p, kind: KindHostile},
		HP:  hp,
	}
	w.hostiles = append(w.hostiles, h)
	w.objects[h.id] = h
	return h
}

// AddCreep places a live creep directly, bypassing spawn production.
// Tests and worldgen use it; the engine spawns through SpawnCreep.
func (w *World) AddCreep(name string, p Pos, body []Part, carry int) *Creep {
	c := &Creep{
		Name:        name,
		Pos:         p,
		Body:        body,
		Carry:       carry,
		CarryCap:    carryPerPart * countParts(body, PartCarry),
		TicksToLive: w.cfg.CreepTTL,
	}
	w.creeps[name] = c
	return c
}

func countParts(body []Part, p Part) int {
	n := 0
	for _, b := range body {
		if b == p {
			n++
		}
	}
	return n
}

// Controller returns the room controller, or nil for an unowned room.
func (w *World) Controller() *Controller { return w.controller }

func (w *World) Sources() []*Source { return w.sources }

// ActiveSources is the harvestable subset: sources currently holding
// energy.
func (w *World) ActiveSources() []*Source {
	var out []*Source
	for _, s := range w.sources {
		if s.Active() {
			out = append(out, s)
		}
	}
	return out
}

func (w *World) Spawns() []*Spawn         { return w.spawns }
func (w *World) Extensions() []*Extension { return w.extensions }
func (w *World) Towers() []*Tower         { return w.towers }
func (w *World) Roads() []*Road           { return w.roads }
func (w *World) Sites() []*Site           { return w.sites }
func (w *World) Hostiles() []*Hostile     { return w.hostiles }

func (w *World) Creep(name string) (*Creep, bool) {
	c, ok := w.creeps[name]
	return c, ok
}

// CreepNames returns all creep names in deterministic order. Callers
// iterate names and re-look-up each creep so removals during the walk
// cannot disturb it.
func (w *World) CreepNames() []string {
	names := make([]string, 0, len(w.creeps))
	for name := range w.creeps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (w *World) CreepCount() int { return len(w.creeps) }

// EnergyAvailable is the energy usable for spawning: the sum over
// spawn and extension stores.
func (w *World) EnergyAvailable() int {
	sum := 0
	for _, s := range w.spawns {
		sum += s.Used()
	}
	for _, e := range w.extensions {
		sum += e.Used()
	}
	return sum
}

// MovesIssued counts move directives recorded since the last Step.
func (w *World) MovesIssued() int { return w.movesIssued }

func (w *World) removeRoad(r *Road) {
	delete(w.objects, r.id)
	w.roads = removeObj(w.roads, r)
}

func (w *World) removeSite(s *Site) {
	delete(w.objects, s.id)
	w.sites = removeObj(w.sites, s)
}

func (w *World) removeHostile(h *Hostile) {
	delete(w.objects, h.id)
	w.hostiles = removeObj(w.hostiles, h)
}

func removeObj[T comparable](list []T, v T) []T {
	for i, x := range list {
		if x == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
