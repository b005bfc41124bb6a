package world

// Controller is the room's central structure. It downgrades when its
// countdown reaches zero and levels up as upgrade progress accrues.
type Controller struct {
	obj
	Level            int
	TicksToDowngrade int
	Progress         int
}

// ProgressTotal is the upgrade progress needed to reach the next level.
func (c *Controller) ProgressTotal() int { return progressTotal(c.Level) }

func progressTotal(level int) int {
	switch level {
	case 1:
		return 200
	case 2:
		return 45_000
	case 3:
		return 135_000
	case 4:
		return 405_000
	case 5:
		return 1_215_000
	case 6:
		return 3_645_000
	case 7:
		return 10_935_000
	}
	return 0 // level 8 is terminal
}

// downgradeTotal is the full downgrade countdown for a level; the
// countdown is topped back up toward this cap by upgrade actions.
func downgradeTotal(level int) int {
	switch level {
	case 1:
		return 20_000
	case 2:
		return 10_000
	case 3:
		return 20_000
	case 4:
		return 40_000
	case 5:
		return 80_000
	case 6:
		return 120_000
	case 7:
		return 150_000
	case 8:
		return 200_000
	}
	return 20_000
}

// Source is a harvestable energy node. It is active while it holds
// energy and refills a fixed period after running dry.
type Source struct {
	obj
	Energy    int
	EnergyCap int
	regenIn   int
}

func (s *Source) Active() bool { return s.Energy > 0 }

// Spawn produces new creeps and stores energy.
type Spawn struct {
	obj
	store
	Name string
	job  *spawnJob
}

type spawnJob struct {
	creep     *Creep
	remaining int
}

// SpawningName reports the creep under production, if any.
func (s *Spawn) SpawningName() (string, bool) {
	if s.job == nil {
		return "", false
	}
	return s.job.creep.Name, true
}

// Extension extends the room's spawn energy pool.
type Extension struct {
	obj
	store
}

// Tower stores energy and attacks hostiles.
type Tower struct {
	obj
	store
}

// Road is passable-terrain infrastructure that decays and can be
// repaired.
type Road struct {
	obj
	Hits    int
	HitsMax int
}

// Site is a pending construction site. When progress completes, the
// structure it builds materializes in its place.
type Site struct {
	obj
	Builds   StructureKind
	Progress int
	Total    int
}

// Hostile is an enemy creep; only its position and hit points matter
// to this room.
type Hostile struct {
	obj
	HP int
}
