package factory

import (
	"github.com/automoto/hallpass/archetypes"
	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/config"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player at (x, y) facing front.
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	kind := config.Kinds[config.KindPlayer]
	components.Actor.SetValue(player, components.ActorData{
		Name:   kind.Name,
		Kind:   config.KindPlayer,
		Config: &kind,
	})

	fp := components.NewFootprint(x, y, kind.Width, kind.Height)
	components.Footprint.SetValue(player, fp)
	components.Movement.SetValue(player, components.MovementData{
		Type:  kind.MovementType,
		Speed: kind.Speed,
	})
	components.Facing.SetValue(player, components.FacingData{
		Current: config.FacingFront,
	})
	components.Corrector.SetValue(player, components.CorrectorData{PrevX: x, PrevY: y})
	components.Intent.SetValue(player, components.IntentData{})

	track(w, player)
	return player
}
