package world

// Action directives. Each attempts one unit of work synchronously and
// returns a result code; geometry and resource checks happen here so
// the caller only has to classify the outcome.

const (
	contactRange = 1
	actionRange  = 3
)

// MoveTo records a move-toward directive for this tick. reusePath is
// the path cache lifetime in ticks; path-finding itself is opaque to
// callers. The single step is applied at Step.
func (w *World) MoveTo(c *Creep, target Pos, reusePath int) {
	w.movesIssued++
	if c.moveIntent != nil && c.moveIntent.target == target && w.tick < c.moveIntent.reuseUntil {
		return
	}
	c.moveIntent = &moveIntent{
		target:     target,
		reuseUntil: w.tick + uint64(reusePath),
	}
}

// Harvest draws energy from a source into the creep. Requires
// adjacency.
func (w *World) Harvest(c *Creep, s *Source) Code {
	if c.Spawning {
		return ErrBusy
	}
	if Chebyshev(c.Pos, s.Pos()) > contactRange {
		return ErrNotInRange
	}
	work := c.CountParts(PartWork)
	if work == 0 {
		return ErrNoBodypart
	}
	if s.Energy <= 0 {
		return ErrNotEnough
	}
	if c.Free() <= 0 {
		return ErrFull
	}
	n := w.cfg.HarvestPower * work
	if n > s.Energy {
		n = s.Energy
	}
	if n > c.Free() {
		n = c.Free()
	}
	s.Energy -= n
	c.Carry += n
	if s.Energy == 0 {
		s.regenIn = w.cfg.SourceRegenTicks
	}
	return OK
}

// Transfer moves carried energy into a storable structure. Requires
// adjacency.
func (w *World) Transfer(c *Creep, t StoreTarget) Code {
	if c.Spawning {
		return ErrBusy
	}
	if Chebyshev(c.Pos, t.Pos()) > contactRange {
		return ErrNotInRange
	}
	if c.Carry <= 0 {
		return ErrNotEnough
	}
	if t.Free() <= 0 {
		return ErrFull
	}
	n := c.Carry
	if n > t.Free() {
		n = t.Free()
	}
	t.fill(n)
	c.Carry -= n
	return OK
}

// Build spends carried energy on a construction site. Ranged.
func (w *World) Build(c *Creep, s *Site) Code {
	if c.Spawning {
		return ErrBusy
	}
	if Chebyshev(c.Pos, s.Pos()) > actionRange {
		return ErrNotInRange
	}
	work := c.CountParts(PartWork)
	if work == 0 {
		return ErrNoBodypart
	}
	if c.Carry <= 0 {
		return ErrNotEnough
	}
	n := w.cfg.BuildPower * work
	if n > c.Carry {
		n = c.Carry
	}
	remaining := s.Total - s.Progress
	if n > remaining {
		n = remaining
	}
	s.Progress += n
	c.Carry -= n
	if s.Progress >= s.Total {
		w.completeSite(s)
	}
	return OK
}

// completeSite replaces a finished site with the structure it builds.
func (w *World) completeSite(s *Site) {
	w.removeSite(s)
	switch s.Builds {
	case KindExtension:
		w.AddExtension(s.Pos(), 0, 50)
	case KindTower:
		w.AddTower(s.Pos(), 0, 1000)
	default:
		hits := roadHitsMax(w.TerrainAt(s.Pos()))
		w.AddRoad(s.Pos(), hits, hits)
	}
}

func roadHitsMax(t Terrain) int {
	switch t {
	case TerrainSwamp:
		return 25_000
	case TerrainWall:
		return 750_000
	}
	return 5_000
}

// Repair restores hits on a road. Ranged; costs one energy per action.
func (w *World) Repair(c *Creep, r *Road) Code {
	if c.Spawning {
		return ErrBusy
	}
	if Chebyshev(c.Pos, r.Pos()) > actionRange {
		return ErrNotInRange
	}
	work := c.CountParts(PartWork)
	if work == 0 {
		return ErrNoBodypart
	}
	if c.Carry <= 0 {
		return ErrNotEnough
	}
	if r.Hits >= r.HitsMax {
		return ErrFull
	}
	n := w.cfg.RepairPower * work
	if n > r.HitsMax-r.Hits {
		n = r.HitsMax - r.Hits
	}
	r.Hits += n
	c.Carry--
	return OK
}

// Upgrade spends carried energy on controller progress and tops up
// the downgrade countdown. Ranged.
func (w *World) Upgrade(c *Creep, ctl *Controller) Code {
	if c.Spawning {
		return ErrBusy
	}
	if Chebyshev(c.Pos, ctl.Pos()) > actionRange {
		return ErrNotInRange
	}
	work := c.CountParts(PartWork)
	if work == 0 {
		return ErrNoBodypart
	}
	if c.Carry <= 0 {
		return ErrNotEnough
	}
	n := w.cfg.UpgradePower * work
	if n > c.Carry {
		n = c.Carry
	}
	ctl.Progress += n
	c.Carry -= n
	ctl.TicksToDowngrade += w.cfg.UpgradeRestoreTicks
	if limit := downgradeTotal(ctl.Level); ctl.TicksToDowngrade > limit {
		ctl.TicksToDowngrade = limit
	}
	if total := ctl.ProgressTotal(); total > 0 && ctl.Progress >= total {
		ctl.Progress -= total
		ctl.Level++
		ctl.TicksToDowngrade = downgradeTotal(ctl.Level)
	}
	return OK
}

// Attack fires a tower at a hostile, spending tower energy.
func (w *World) Attack(t *Tower, h *Hostile) Code {
	if Chebyshev(t.Pos(), h.Pos()) > w.cfg.TowerRange {
		return ErrNotInRange
	}
	if t.Used() < w.cfg.TowerCost {
		return ErrNotEnough
	}
	t.drain(w.cfg.TowerCost)
	h.HP -= w.cfg.TowerDamage
	if h.HP <= 0 {
		w.removeHostile(h)
	}
	return OK
}

// SpawnCreep starts producing a new creep at a spawn. The creep
// exists immediately with its Spawning flag set and becomes active
// when the job completes.
func (w *World) SpawnCreep(sp *Spawn, parts []Part, name string) Code {
	if len(parts) == 0 || name == "" {
		return ErrInvalidTarget
	}
	if _, exists := w.creeps[name]; exists {
		return ErrNameExists
	}
	if sp.job != nil {
		return ErrBusy
	}
	cost := BodyCost(parts)
	if cost > w.EnergyAvailable() {
		return ErrNotEnough
	}
	w.drainEnergy(cost)
	c := w.AddCreep(name, Pos{X: sp.Pos().X, Y: sp.Pos().Y + 1}, parts, 0)
	c.Spawning = true
	sp.job = &spawnJob{creep: c, remaining: w.cfg.SpawnTicksPerPart * len(parts)}
	return OK
}

// drainEnergy takes cost from spawn stores first, then extensions.
// Callers check affordability beforehand.
func (w *World) drainEnergy(cost int) {
	for _, s := range w.spawns {
		cost -= s.drain(cost)
		if cost == 0 {
			return
		}
	}
	for _, e := range w.extensions {
		cost -= e.drain(cost)
		if cost == 0 {
			return
		}
	}
}
