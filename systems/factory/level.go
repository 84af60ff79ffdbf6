package factory

import (
	"github.com/automoto/hallpass/archetypes"
	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/shared/leveldata"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

var log = logrus.WithField("pkg", "factory")

// CreateLevel spawns the level entity for loaded map data. A map without a
// collision layer gets no obstacle set, so nothing in it blocks.
func CreateLevel(w donburi.World, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	levelData := components.LevelData{
		Name:   data.Name,
		Width:  data.MapWidth,
		Height: data.MapHeight,
		Paths:  data.Paths,
	}
	if data.HasCollisionLayer {
		levelData.Obstacles = CreateObstacles(data)
	} else {
		log.WithField("level", data.Name).Warn("level has no collision layer, actors will not be blocked")
	}

	components.Level.SetValue(level, levelData)
	return level
}

// SpawnLevel creates the level, the player at the leftmost spawn point, a
// camera on the player, and every NPC the map places. NPC spawns naming an unknown kind are skipped.
func SpawnLevel(w donburi.World, data *leveldata.CollisionData) *donburi.Entry {
	level := CreateLevel(w, data)

	px, py := float64(data.MapWidth)/2, float64(data.MapHeight)/2
	if len(data.SpawnPoints) > 0 {
		px, py = data.SpawnPoints[0].X, data.SpawnPoints[0].Y
	} else {
		log.WithField("level", data.Name).Warn("level has no player spawn, using map centre")
	}
	player := CreatePlayer(w, px, py)
	b := components.Footprint.Get(player).Bounds()
	CreateCamera(w, b.X+b.W/2, b.Y+b.H/2)

	for _, spawn := range data.NPCSpawns {
		if _, err := CreateNPCFromSpawn(w, spawn, data.Paths); err != nil {
			log.WithFields(logrus.Fields{
				"level": data.Name,
				"npc":   spawn.Name,
			}).WithError(err).Warn("skipping NPC spawn")
		}
	}

	return level
}

// activeLevel returns the loaded level's data, or nil.
func activeLevel(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}
