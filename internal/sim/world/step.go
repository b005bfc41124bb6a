package world

// Step advances the room by one tick after the engine has run:
// pending moves apply, roads decay, the controller counts down,
// dry sources regenerate, spawn jobs progress and creeps age out.
func (w *World) Step() {
	w.stepMovement()
	w.stepRoads()
	w.stepController()
	w.stepSources()
	w.stepSpawns()
	w.stepCreeps()

	w.movesIssued = 0
	w.tick++
}

func (w *World) stepMovement() {
	for _, name := range w.CreepNames() {
		c := w.creeps[name]
		if c.moveIntent == nil || c.Spawning {
			continue
		}
		// Swamp halves travel speed.
		if w.TerrainAt(c.Pos) == TerrainSwamp && w.tick%2 == 0 {
			continue
		}
		target := c.moveIntent.target
		c.Pos = stepToward(c.Pos, target)
		c.Pos = w.clamp(c.Pos)
		// One step per directive; the engine re-issues while the task
		// is still out of range.
		if w.tick >= c.moveIntent.reuseUntil || c.Pos == target {
			c.moveIntent = nil
		}
	}
}

func stepToward(from, to Pos) Pos {
	if from.X < to.X {
		from.X++
	} else if from.X > to.X {
		from.X--
	}
	if from.Y < to.Y {
		from.Y++
	} else if from.Y > to.Y {
		from.Y--
	}
	return from
}

func (w *World) clamp(p Pos) Pos {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.X >= w.cfg.Width {
		p.X = w.cfg.Width - 1
	}
	if p.Y >= w.cfg.Height {
		p.Y = w.cfg.Height - 1
	}
	return p
}

func (w *World) stepRoads() {
	if w.tick == 0 || w.tick%uint64(w.cfg.RoadDecayEvery) != 0 {
		return
	}
	for _, r := range append([]*Road(nil), w.roads...) {
		r.Hits -= w.cfg.RoadDecayHits
		if r.Hits <= 0 {
			w.removeRoad(r)
		}
	}
}

func (w *World) stepController() {
	if w.controller == nil {
		return
	}
	if w.controller.TicksToDowngrade > 0 {
		w.controller.TicksToDowngrade--
		return
	}
	if w.controller.Level > 1 {
		w.controller.Level--
		w.controller.Progress = 0
		w.controller.TicksToDowngrade = downgradeTotal(w.controller.Level)
	}
}

func (w *World) stepSources() {
	for _, s := range w.sources {
		if s.Energy > 0 || s.regenIn == 0 {
			continue
		}
		s.regenIn--
		if s.regenIn == 0 {
			s.Energy = s.EnergyCap
		}
	}
}

func (w *World) stepSpawns() {
	for _, sp := range w.spawns {
		if sp.job == nil {
			continue
		}
		sp.job.remaining--
		if sp.job.remaining <= 0 {
			sp.job.creep.Spawning = false
			sp.job = nil
		}
	}
}

func (w *World) stepCreeps() {
	for _, name := range w.CreepNames() {
		c := w.creeps[name]
		if c.Spawning {
			continue
		}
		c.TicksToLive--
		if c.TicksToLive <= 0 {
			delete(w.creeps, name)
		}
	}
}
