package systems

import (
	"math"

	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the camera towards the player's centre, keeping the
// view inside the level.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	bounds := components.Footprint.Get(playerEntry).Bounds()
	targetX := bounds.X + bounds.W/2
	targetY := bounds.Y + bounds.H/2

	if levelEntry, ok := components.Level.First(w); ok {
		level := components.Level.Get(levelEntry)
		targetX = clampAxis(targetX, float64(config.C.Width), float64(level.Width))
		targetY = clampAxis(targetY, float64(config.C.Height), float64(level.Height))
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps a camera centre far enough from the level edges that the
// level fills the screen. Levels smaller than the screen are centred.
func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}
