package archetypes

import (
	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Footprint,
		components.Movement,
		components.Facing,
		components.Corrector,
		components.Intent,
	)
	NPC = newArchetype(
		tags.NPC,
		components.Actor,
		components.Footprint,
		components.Movement,
		components.Facing,
		components.Corrector,
		components.Waypoint,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
