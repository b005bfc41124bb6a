package engine

import "roomkeeper/internal/sim/world"

// runDefense points every tower at the nearest hostile. Stateless:
// nothing persists between ticks and the registry is never touched.
func (e *Engine) runDefense(w *world.World) int {
	hostiles := w.Hostiles()
	if len(hostiles) == 0 {
		return 0
	}
	fired := 0
	for _, t := range w.Towers() {
		var nearest *world.Hostile
		best := 0
		for _, h := range hostiles {
			d := world.Chebyshev(t.Pos(), h.Pos())
			if nearest == nil || d < best {
				nearest, best = h, d
			}
		}
		switch code := w.Attack(t, nearest); code {
		case world.OK:
			fired++
		case world.ErrNotInRange:
			// Nothing in reach of this tower.
		default:
			e.log.Printf("defense: tower %s: %s", t.ID(), code)
		}
		// Attack may remove the hostile; re-read the live set for the
		// next tower.
		hostiles = w.Hostiles()
		if len(hostiles) == 0 {
			break
		}
	}
	return fired
}
