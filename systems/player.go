package systems

import (
	"github.com/automoto/hallpass/collision"
	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/automoto/hallpass/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayers moves every player by its held intent.
func UpdatePlayers(w donburi.World, dt float64) {
	obstacles := activeObstacles(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		updatePlayer(w, e, obstacles, dt)
	})
}

func updatePlayer(w donburi.World, e *donburi.Entry, obstacles *collision.Set, dt float64) {
	intent := components.Intent.Get(e)
	mv := components.Movement.Get(e)

	ix, iy := intent.Held.Axis()
	dx, dy := gamemath.DirectDelta(ix, iy, mv.Speed, dt)
	if dx == 0 && dy == 0 {
		mv.Moving = false
		recordMove(mv, false, 0, 0)
		return
	}

	mv.Moving = true
	fp := components.Footprint.Get(e)
	committed := moveActor(e, obstacles, nearestNPC(w, fp.Bounds()), dx, dy)
	recordMove(mv, committed, dx, dy)

	components.Facing.Get(e).ApplyIntent(intent.Held)
}

// nearestNPC returns the bounds of the NPC whose centre is closest to the
// centre of from, or nil when there are none.
func nearestNPC(w donburi.World, from gamemath.Rect) *gamemath.Rect {
	x, y := from.Center()
	var nearest *gamemath.Rect
	best := -1.0
	tags.NPC.Each(w, func(e *donburi.Entry) {
		b := components.Footprint.Get(e).Bounds()
		cx, cy := b.Center()
		d := (cx-x)*(cx-x) + (cy-y)*(cy-y)
		if best < 0 || d < best {
			best = d
			nearest = &b
		}
	})
	return nearest
}
