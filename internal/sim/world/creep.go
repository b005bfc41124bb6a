package world

// Part is one body segment of a creep; the loadout fixes what the
// creep can do and how much it cost to spawn.
type Part string

const (
	PartWork   Part = "work"
	PartCarry  Part = "carry"
	PartMove   Part = "move"
	PartAttack Part = "attack"
	PartTough  Part = "tough"
)

func PartCost(p Part) int {
	switch p {
	case PartWork:
		return 100
	case PartCarry:
		return 50
	case PartMove:
		return 50
	case PartAttack:
		return 80
	case PartTough:
		return 10
	}
	return 0
}

func BodyCost(parts []Part) int {
	sum := 0
	for _, p := range parts {
		sum += PartCost(p)
	}
	return sum
}

const carryPerPart = 50

// Creep is one worker agent. Its name is the stable, process-unique
// identity used as the registry key.
type Creep struct {
	Name     string
	Pos      Pos
	Body     []Part
	Carry    int
	CarryCap int
	// Spawning creeps are skipped entirely by the engine until the
	// spawn job completes.
	Spawning    bool
	TicksToLive int

	moveIntent *moveIntent
}

type moveIntent struct {
	target     Pos
	reuseUntil uint64
}

func (c *Creep) CountParts(p Part) int {
	n := 0
	for _, b := range c.Body {
		if b == p {
			n++
		}
	}
	return n
}

func (c *Creep) Free() int { return c.CarryCap - c.Carry }

// HasMoveIntent reports whether a move directive is pending for this
// tick.
func (c *Creep) HasMoveIntent() bool { return c.moveIntent != nil }

// MoveTarget returns the pending move destination.
func (c *Creep) MoveTarget() (Pos, bool) {
	if c.moveIntent == nil {
		return Pos{}, false
	}
	return c.moveIntent.target, true
}
