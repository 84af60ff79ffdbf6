package systems

import (
	"math"

	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdatePatrols feeds each patrolling NPC its next waypoint, waiting
// config.Movement.PatrolDwell seconds at every point.
func UpdatePatrols(w donburi.World, dt float64) {
	components.Patrol.Each(w, func(e *donburi.Entry) {
		updatePatrol(e, dt)
	})
}

func updatePatrol(e *donburi.Entry, dt float64) {
	patrol := components.Patrol.Get(e)
	wp := components.Waypoint.Get(e)
	if patrol.Finished {
		return
	}

	if patrol.Dwell != nil {
		if _, done := patrol.Dwell.Update(float32(dt)); !done {
			return
		}
		patrol.Dwell = nil
		if !patrol.Advance() {
			patrol.Finished = true
			wp.ClearTarget()
			log.WithField("npc", components.Actor.Get(e).Name).
				WithField("path", patrol.PathName).
				Debug("patrol finished")
			return
		}
	}

	point, ok := patrol.Current()
	if !ok {
		return
	}
	if !wp.HasTarget || wp.Target != point {
		wp.SetTarget(point.X, point.Y)
	}

	fp := components.Footprint.Get(e)
	if math.Hypot(point.X-fp.X(), point.Y-fp.Y()) <= config.Movement.WaypointTolerance {
		patrol.Dwell = gween.New(0, 1, float32(config.Movement.PatrolDwell), ease.Linear)
	}
}
