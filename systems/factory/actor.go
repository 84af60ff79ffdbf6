package factory

import (
	"github.com/automoto/hallpass/components"
	"github.com/yohamta/donburi"
)

// track adds an actor's collision box to the level's broad phase.
func track(w donburi.World, e *donburi.Entry) {
	level := activeLevel(w)
	if level == nil {
		return
	}
	level.Obstacles.Track(components.Footprint.Get(e).Object())
}

// DespawnActor removes an actor from the broad phase and the world.
func DespawnActor(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if level := activeLevel(w); level != nil && e.HasComponent(components.Footprint) {
		level.Obstacles.Untrack(components.Footprint.Get(e).Object())
	}
	w.Remove(e.Entity())
}
