package engine

import (
	"roomkeeper/internal/sim/tasks"
	"roomkeeper/internal/sim/world"
)

// runTask drives one creep one step along its current task and
// reports whether the task should be kept. Flow per variant: guard
// against the creep's load state, resolve the stable target, act if
// in range, otherwise move toward it. A false return evicts.
func (e *Engine) runTask(w *world.World, c *world.Creep, t tasks.Task) bool {
	switch t.Kind {
	case tasks.KindHarvest:
		// Stale once the creep is full.
		if c.Free() <= 0 {
			return false
		}
		src, ok := resolveAs[*world.Source](w, t.Target)
		if !ok {
			return false
		}
		return e.approachAndDo(w, c, t, src.Pos(), e.pol.ContactRange, func() world.Code {
			return w.Harvest(c, src)
		})

	case tasks.KindUpgrade:
		// Stale once the creep runs empty.
		if c.Carry <= 0 {
			return false
		}
		ctl, ok := resolveAs[*world.Controller](w, t.Target)
		if !ok {
			return false
		}
		return e.approachAndDo(w, c, t, ctl.Pos(), e.pol.RangedRange, func() world.Code {
			return w.Upgrade(c, ctl)
		})

	case tasks.KindStore:
		target, ok := e.resolveStore(w, t)
		if !ok {
			return false
		}
		return e.approachAndDo(w, c, t, target.Pos(), e.pol.ContactRange, func() world.Code {
			return w.Transfer(c, target)
		})

	case tasks.KindBuild:
		site, ok := resolveAs[*world.Site](w, t.Target)
		if !ok {
			return false
		}
		return e.approachAndDo(w, c, t, site.Pos(), e.pol.RangedRange, func() world.Code {
			return w.Build(c, site)
		})

	case tasks.KindRepair:
		road, ok := resolveAs[*world.Road](w, t.Target)
		if !ok {
			return false
		}
		if world.Chebyshev(c.Pos, road.Pos()) <= e.pol.RangedRange {
			code := w.Repair(c, road)
			switch code {
			case world.OK:
				// Repair is single-shot: one successful action, then
				// re-selection decides whether more is needed.
				return false
			case world.ErrNotInRange:
			default:
				e.log.Printf("executor: repair %s %s: %s", c.Name, t.Target, code)
				return false
			}
		}
		w.MoveTo(c, road.Pos(), e.pol.reuse(t.Kind))
		return true
	}

	// Unrecognized variant or guard fallthrough: the stale-task
	// catch-all.
	return false
}

// approachAndDo handles the shared act-or-move shape: within reach,
// attempt the terminal action; ErrNotInRange falls through to a move,
// any other failure logs and evicts.
func (e *Engine) approachAndDo(w *world.World, c *world.Creep, t tasks.Task, target world.Pos, reach int, act func() world.Code) bool {
	if world.Chebyshev(c.Pos, target) <= reach {
		code := act()
		switch code {
		case world.OK:
			return true
		case world.ErrNotInRange:
			// Geometry said close enough but the action disagreed
			// (e.g. diagonal wall); fall through to the move step.
		default:
			e.log.Printf("executor: %s %s %s: %s", t.Kind, c.Name, t.Target, code)
			return false
		}
	}
	w.MoveTo(c, target, e.pol.reuse(t.Kind))
	return true
}

// resolveStore resolves a STORE task against its structure kind. A
// target that is gone, or that stopped being a store, reads the same
// as never having existed.
func (e *Engine) resolveStore(w *world.World, t tasks.Task) (world.StoreTarget, bool) {
	switch t.Store {
	case tasks.StoreSpawn:
		if sp, ok := resolveAs[*world.Spawn](w, t.Target); ok {
			return sp, true
		}
	case tasks.StoreExtension:
		if ext, ok := resolveAs[*world.Extension](w, t.Target); ok {
			return ext, true
		}
	case tasks.StoreTower:
		if tw, ok := resolveAs[*world.Tower](w, t.Target); ok {
			return tw, true
		}
	}
	return nil, false
}

// resolveAs resolves a stable ID and narrows it to the expected
// concrete type.
func resolveAs[T world.Object](w *world.World, id world.ObjectID) (T, bool) {
	var zero T
	o, ok := w.Resolve(id)
	if !ok {
		return zero, false
	}
	v, ok := o.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
