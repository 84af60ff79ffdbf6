package systems

import (
	"github.com/automoto/hallpass/collision"
	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/automoto/hallpass/tags"
	"github.com/yohamta/donburi"
)

// UpdateNPCs walks every NPC that can walk towards its waypoint target.
func UpdateNPCs(w donburi.World, dt float64) {
	obstacles := activeObstacles(w)
	player := playerBounds(w)
	tags.NPC.Each(w, func(e *donburi.Entry) {
		updateNPC(e, obstacles, player, dt)
	})
}

func updateNPC(e *donburi.Entry, obstacles *collision.Set, player *gamemath.Rect, dt float64) {
	mv := components.Movement.Get(e)
	wp := components.Waypoint.Get(e)

	if mv.Type != config.MovementWaypoint || !wp.CanWalk || !wp.HasTarget {
		mv.Moving = false
		recordMove(mv, false, 0, 0)
		return
	}

	fp := components.Footprint.Get(e)
	dx, dy, arrived := gamemath.WaypointDelta(
		fp.X(), fp.Y(),
		wp.Target.X, wp.Target.Y,
		mv.Speed, dt,
		config.Movement.WaypointTolerance,
	)
	if arrived || (dx == 0 && dy == 0) {
		mv.Moving = false
		recordMove(mv, false, 0, 0)
		return
	}

	mv.Moving = true
	committed := moveActor(e, obstacles, player, dx, dy)
	recordMove(mv, committed, dx, dy)

	// Facing follows the displacement that actually happened.
	components.Facing.Get(e).ApplyDelta(mv.LastDX, mv.LastDY)
}

// playerBounds returns the first player's full bounds, or nil when there is
// no player.
func playerBounds(w donburi.World) *gamemath.Rect {
	entry, ok := tags.Player.First(w)
	if !ok {
		return nil
	}
	b := components.Footprint.Get(entry).Bounds()
	return &b
}
