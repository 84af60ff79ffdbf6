package components

import (
	"math"

	"github.com/automoto/hallpass/config"
	"github.com/yohamta/donburi"
)

// FacingData holds the actor's eight-way facing. It persists while the actor
// is idle.
type FacingData struct {
	Current config.Facing
}

var Facing = donburi.NewComponentType[FacingData]()

// ApplyDelta updates the facing from a frame's realized displacement. Axis
// components smaller than the dead-zone count as zero; if both do, the
// facing is left unchanged. Returns whether the facing was updated.
func (f *FacingData) ApplyDelta(dx, dy float64) bool {
	dz := config.Movement.FacingDeadZone
	return f.set(config.FacingFromSigns(deadZoneSign(dx, dz), deadZoneSign(dy, dz)))
}

// ApplyIntent updates the facing from held directions. No usable intent
// leaves the facing unchanged.
func (f *FacingData) ApplyIntent(held config.Direction) bool {
	return f.set(held.Facing())
}

func (f *FacingData) set(next config.Facing, ok bool) bool {
	if !ok {
		return false
	}
	f.Current = next
	return true
}

func deadZoneSign(v, deadZone float64) int {
	if math.Abs(v) < deadZone {
		return 0
	}
	if v > 0 {
		return 1
	}
	return -1
}
