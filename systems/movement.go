package systems

import (
	"github.com/automoto/hallpass/collision"
	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

var log = logrus.WithField("pkg", "systems")

// activeObstacles returns the obstacle set of the loaded level, or nil when
// no level is loaded or it has no collision layer.
func activeObstacles(w donburi.World) *collision.Set {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Obstacles
}

// moveActor applies one frame's displacement to an actor and keeps it only
// if the new footprint is clear. other is the full bounds of the one other
// actor the mover must not walk into, if any. Returns whether the move was
// committed.
func moveActor(e *donburi.Entry, obstacles *collision.Set, other *gamemath.Rect, dx, dy float64) bool {
	fp := components.Footprint.Get(e)
	corrector := components.Corrector.Get(e)

	corrector.Begin(fp)
	fp.Translate(dx, dy)

	hit, blocked := obstacles.FirstHit(collision.Query{
		Box:     fp.CollisionBox(),
		Polygon: fp.CollisionPolygon(),
		Object:  fp.Object(),
		Other:   other,
	})
	if blocked && config.Debug.LogCollisions {
		fields := logrus.Fields{
			"actor": components.Actor.Get(e).Name,
			"dx":    dx,
			"dy":    dy,
		}
		if hit.Obstacle != nil {
			fields["obstacle"] = hit.Obstacle.ID
			fields["shape"] = hit.Obstacle.Shape.String()
		} else {
			fields["obstacle"] = "actor"
		}
		log.WithFields(fields).Debug("move reverted")
	}

	return corrector.Resolve(fp, blocked)
}

func recordMove(mv *components.MovementData, committed bool, dx, dy float64) {
	if committed {
		mv.LastDX, mv.LastDY = dx, dy
		return
	}
	mv.LastDX, mv.LastDY = 0, 0
}
