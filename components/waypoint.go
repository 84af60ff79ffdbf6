package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WaypointData is an NPC's optional straight-line target. Reaching the target
// does not clear it.
type WaypointData struct {
	Target    math.Vec2
	HasTarget bool
	CanWalk   bool // Fixed at creation
}

var Waypoint = donburi.NewComponentType[WaypointData]()

// SetTarget gives the NPC a new target.
func (w *WaypointData) SetTarget(x, y float64) {
	w.Target = math.Vec2{X: x, Y: y}
	w.HasTarget = true
}

// ClearTarget drops the target.
func (w *WaypointData) ClearTarget() {
	w.Target = math.Vec2{}
	w.HasTarget = false
}
