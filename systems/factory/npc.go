package factory

import (
	"fmt"

	"github.com/automoto/hallpass/archetypes"
	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateNPC spawns an NPC of the given kind at (x, y). It has no target until
// one is set.
func CreateNPC(w donburi.World, x, y float64, kind config.ActorKind, name string) (*donburi.Entry, error) {
	kindConfig, err := config.KindConfigFor(kind)
	if err != nil {
		return nil, err
	}
	return spawnNPC(w, x, y, kind, kindConfig, name, nil), nil
}

// CreateNPCFromSpawn spawns the NPC a map places. When the spawn names a path
// found in paths the NPC patrols it, looping.
func CreateNPCFromSpawn(w donburi.World, spawn leveldata.NPCSpawn, paths map[string][]math.Vec2) (*donburi.Entry, error) {
	kind, err := config.KindByName(spawn.Kind)
	if err != nil {
		return nil, err
	}
	kindConfig, err := config.KindConfigFor(kind)
	if err != nil {
		return nil, err
	}

	var patrol *components.PatrolData
	if spawn.Path != "" {
		points, ok := paths[spawn.Path]
		if !ok {
			return nil, fmt.Errorf("npc %q: path %q not found", spawn.Name, spawn.Path)
		}
		patrol = &components.PatrolData{
			PathName: spawn.Path,
			Points:   points,
			Loop:     true,
		}
	}

	name := spawn.Name
	if name == "" {
		name = kindConfig.Name
	}
	return spawnNPC(w, spawn.X, spawn.Y, kind, kindConfig, name, patrol), nil
}

func spawnNPC(w donburi.World, x, y float64, kind config.ActorKind, kindConfig config.KindConfig, name string, patrol *components.PatrolData) *donburi.Entry {
	var npc *donburi.Entry
	if patrol != nil {
		npc = archetypes.NPC.Spawn(w, components.Patrol)
		components.Patrol.Set(npc, patrol)
	} else {
		npc = archetypes.NPC.Spawn(w)
	}

	components.Actor.SetValue(npc, components.ActorData{
		Name:   name,
		Kind:   kind,
		Config: &kindConfig,
	})
	fp := components.NewFootprint(x, y, kindConfig.Width, kindConfig.Height)
	components.Footprint.SetValue(npc, fp)
	components.Movement.SetValue(npc, components.MovementData{
		Type:  kindConfig.MovementType,
		Speed: kindConfig.Speed,
	})
	components.Facing.SetValue(npc, components.FacingData{
		Current: config.FacingFront,
	})
	components.Corrector.SetValue(npc, components.CorrectorData{PrevX: x, PrevY: y})
	components.Waypoint.SetValue(npc, components.WaypointData{CanWalk: kindConfig.CanWalk})

	track(w, npc)
	return npc
}
