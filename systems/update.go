package systems

import (
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Update runs one frame of motion: patrols pick targets, NPCs walk, then
// players move. dt is clamped to [0, config.Movement.MaxFrameDelta].
func Update(w donburi.World, dt float64) {
	dt = gamemath.ClampFloat(dt, 0, config.Movement.MaxFrameDelta)

	UpdatePatrols(w, dt)
	UpdateNPCs(w, dt)
	UpdatePlayers(w, dt)
}
