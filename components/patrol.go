package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PatrolData walks an NPC through a list of points by feeding its waypoint
// target. Dwell is non-nil while the NPC waits at a point.
type PatrolData struct {
	PathName string
	Points   []math.Vec2
	Index    int
	Loop     bool
	Dwell    *gween.Tween
	Finished bool // Set once a non-looping patrol has dwelt at its last point
}

var Patrol = donburi.NewComponentType[PatrolData]()

// Current returns the point the NPC is heading to.
func (p *PatrolData) Current() (math.Vec2, bool) {
	if len(p.Points) == 0 {
		return math.Vec2{}, false
	}
	return p.Points[p.Index], true
}

// Advance moves to the next point. It returns false when a non-looping
// patrol has reached its last point.
func (p *PatrolData) Advance() bool {
	if len(p.Points) == 0 {
		return false
	}
	if p.Index+1 < len(p.Points) {
		p.Index++
		return true
	}
	if !p.Loop {
		return false
	}
	p.Index = 0
	return true
}
