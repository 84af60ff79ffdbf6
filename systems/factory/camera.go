package factory

import (
	"github.com/automoto/hallpass/archetypes"
	"github.com/automoto/hallpass/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera looking at (x, y).
func CreateCamera(w donburi.World, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
	return camera
}
